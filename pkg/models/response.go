package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// DirectorsResponse wraps a director list result
type DirectorsResponse struct {
	Directors []Director `json:"directors"`
	Total     int        `json:"total"`
	Query     string     `json:"query,omitempty"`
}

// JobsResponse wraps a job list result
type JobsResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

// SessionResponse is returned by login, signup and session restore
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          *User  `json:"user,omitempty"`
	Token         string `json:"token,omitempty"`
}

// ChatResponse is a single assistant reply
type ChatResponse struct {
	Reply    string `json:"reply"`
	ThreadID string `json:"thread_id,omitempty"`
}
