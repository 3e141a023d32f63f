package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsAIPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "assistant search", path: "/api/v1/assistant/search", want: true},
		{name: "assistant chat", path: "/api/v1/assistant/chat", want: true},
		{name: "director summary", path: "/api/v1/directors/3/summary", want: true},
		{name: "director similar", path: "/api/v1/directors/3/similar", want: true},
		{name: "director listing", path: "/api/v1/directors", want: false},
		{name: "director detail", path: "/api/v1/directors/3", want: false},
		{name: "jobs", path: "/api/v1/jobs", want: false},
		{name: "health", path: "/health", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAIPath(tt.path))
		})
	}
}

func TestSelectiveTimeoutBudgets(t *testing.T) {
	slow := func(c echo.Context) error {
		time.Sleep(80 * time.Millisecond)
		return c.NoContent(http.StatusOK)
	}

	e := echo.New()
	e.Use(SelectiveTimeoutConfig(20*time.Millisecond, time.Second))
	e.GET("/api/v1/directors", slow)
	e.GET("/api/v1/directors/:id/summary", slow)
	e.POST("/api/v1/assistant/search", slow)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "plain listing hits the short budget", method: http.MethodGet, path: "/api/v1/directors", want: http.StatusServiceUnavailable},
		{name: "summary gets the long budget", method: http.MethodGet, path: "/api/v1/directors/3/summary", want: http.StatusOK},
		{name: "assistant gets the long budget", method: http.MethodPost, path: "/api/v1/assistant/search", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
