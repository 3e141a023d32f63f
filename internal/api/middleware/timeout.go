package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// aiPathPrefixes lists endpoints that call the LLM and need a longer budget
var aiPathPrefixes = []string{
	"/api/v1/assistant",
}

// aiPathSuffixes catches the LLM-backed routes nested under the directors
// resource (/:id/summary, /:id/similar)
var aiPathSuffixes = []string{
	"/summary",
	"/similar",
}

func isAIPath(path string) bool {
	for _, prefix := range aiPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if strings.HasPrefix(path, "/api/v1/directors/") {
		for _, suffix := range aiPathSuffixes {
			if strings.HasSuffix(path, suffix) {
				return true
			}
		}
	}
	return false
}

// SelectiveTimeoutConfig applies the default timeout to most endpoints and
// a longer one to AI-intensive endpoints
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	standard := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: defaultTimeout})
	extended := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: aiTimeout})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isAIPath(c.Request().URL.Path) {
				return extended(next)(c)
			}
			return standard(next)(c)
		}
	}
}
