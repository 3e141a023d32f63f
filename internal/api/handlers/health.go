package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"independent-director/internal/assistant"
	"independent-director/internal/directory"
	"independent-director/internal/logging"
	"independent-director/pkg/models"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID(c)})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0", // TODO: Get from build info
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the directory cache and assistant are
// ready to serve
func ReadinessHandler(cache *directory.Cache, assistantManager *assistant.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID(c)})

		checks := map[string]string{"api": "ok"}
		status := "ready"

		if cache.Loaded() {
			checks["directory"] = "ok"
		} else {
			checks["directory"] = "not_loaded"
			status = "degraded"
		}

		if assistantManager != nil && assistantManager.IsHealthy() {
			checks["assistant"] = "ok"
		} else {
			checks["assistant"] = "unavailable"
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// StatusHandler provides detailed service status
func StatusHandler(cache *directory.Cache, assistantManager *assistant.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":   "independent-director",
			"status":    "running",
			"version":   "1.0.0",
			"uptime":    time.Since(startTime).String(),
			"timestamp": time.Now(),
			"directory": map[string]interface{}{
				"loaded":    cache.Loaded(),
				"directors": len(cache.All()),
			},
			"assistant": map[string]interface{}{
				"provider": assistantManager.ProviderName(),
				"healthy":  assistantManager.IsHealthy(),
			},
		})
	}
}

// RootHandler serves the service banner
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "independent-director",
		"version": "1.0.0",
		"docs":    "/api/v1",
	})
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
