package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"independent-director/internal/gateway"
	"independent-director/internal/logging"
	"independent-director/internal/session"
	"independent-director/pkg/models"
)

// ListJobsHandler serves the open board positions
func ListJobsHandler(client *gateway.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		jobs, err := client.ListJobs(c.Request().Context())
		if err != nil {
			logger.Error("Failed to fetch jobs", map[string]interface{}{
				"request_id": reqID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		return c.JSON(http.StatusOK, models.JobsResponse{Jobs: jobs, Total: len(jobs)})
	}
}

// GetJobHandler serves a single job by ID from a fresh listing
func GetJobHandler(client *gateway.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		jobs, err := client.ListJobs(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		id := c.Param("id")
		for _, job := range jobs {
			if job.ID == id {
				return c.JSON(http.StatusOK, job)
			}
		}
		return c.JSON(http.StatusNotFound, errorBody("not_found", "Job not found", reqID))
	}
}

// PostJobHandler publishes a new board position. Requires an authenticated
// session; the poster email is taken from the session, never the payload.
func PostJobHandler(client *gateway.Client, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to post a position", reqID))
		}

		var req models.JobPosting
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		req.PosterEmail = user.Email

		if err := directorValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Request validation failed: "+err.Error(), reqID))
		}

		if err := client.PostJob(c.Request().Context(), req); err != nil {
			logger.Error("Job posting failed", map[string]interface{}{
				"request_id": reqID,
				"poster":     user.Email,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		logger.Info("Job posted", map[string]interface{}{
			"request_id": reqID,
			"title":      req.Title,
			"company":    req.Company,
			"poster":     user.Email,
		})
		return c.JSON(http.StatusOK, map[string]string{"status": "posted"})
	}
}
