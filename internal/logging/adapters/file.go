package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"independent-director/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for file output with
// size-based rotation
type FileAdapter struct {
	name    string
	config  FileConfig
	file    *os.File
	written int64
	mu      sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string `yaml:"file_path"`
	Format     string `yaml:"format"`      // json or text
	MaxSize    int64  `yaml:"max_size"`    // bytes before rotation, 0 disables
	MaxBackups int    `yaml:"max_backups"` // rotated files to keep
	CreateDirs bool   `yaml:"create_dirs"`
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	a := &FileAdapter{name: name, config: config}
	if err := a.open(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *FileAdapter) open() error {
	file, err := os.OpenFile(a.config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", a.config.FilePath, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	a.file = file
	a.written = info.Size()
	return nil
}

// Write writes a log entry to the file, rotating first if the size limit
// would be exceeded
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return fmt.Errorf("file adapter %s is closed", a.name)
	}

	line, err := a.format(entry)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	if a.config.MaxSize > 0 && a.written+int64(len(line))+1 > a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return err
		}
	}

	n, err := fmt.Fprintln(a.file, line)
	a.written += int64(n)
	return err
}

func (a *FileAdapter) rotate() error {
	if err := a.file.Close(); err != nil {
		return err
	}

	// Shift existing backups: app.log.2 -> app.log.3, app.log.1 -> app.log.2
	backups := a.config.MaxBackups
	if backups <= 0 {
		backups = 10
	}
	for i := backups - 1; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", a.config.FilePath, i)
		dst := fmt.Sprintf("%s.%d", a.config.FilePath, i+1)
		if _, err := os.Stat(src); err == nil {
			_ = os.Rename(src, dst)
		}
	}
	if err := os.Rename(a.config.FilePath, a.config.FilePath+".1"); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	return a.open()
}

func (a *FileAdapter) format(entry *types.LogEntry) (string, error) {
	if a.config.Format == "text" {
		out := fmt.Sprintf("%s [%s] %s",
			entry.Timestamp.Format(time.RFC3339), entry.Level.String(), entry.Message)
		for k, v := range entry.Fields {
			out += fmt.Sprintf(" %s=%v", k, v)
		}
		return out, nil
	}

	logData := map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Timestamp.Format(time.RFC3339),
	}
	for k, v := range entry.Fields {
		logData[k] = v
	}

	data, err := json.Marshal(logData)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close flushes and closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}
