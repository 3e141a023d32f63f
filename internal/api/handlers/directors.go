package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"independent-director/internal/api/validation"
	"independent-director/internal/directory"
	"independent-director/internal/gateway"
	"independent-director/internal/logging"
	"independent-director/internal/session"
	"independent-director/pkg/models"
)

var directorValidator = validator.New()

func init() {
	validation.RegisterDirectorValidators(directorValidator)
}

// ListDirectorsHandler serves the cached directory, optionally filtered by
// the q parameter (case-insensitive substring over name, industry and
// description)
func ListDirectorsHandler(cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")
		directors := cache.Search(query)

		return c.JSON(http.StatusOK, models.DirectorsResponse{
			Directors: directors,
			Total:     len(directors),
			Query:     query,
		})
	}
}

// GetDirectorHandler serves a single director profile by ID
func GetDirectorHandler(cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		director, ok := cache.ByID(id)
		if !ok {
			return c.JSON(http.StatusNotFound, errorBody("not_found", "Director not found", requestID(c)))
		}
		return c.JSON(http.StatusOK, director)
	}
}

// RegisterDirectorHandler handles profile registration and updates. The
// submission is validated locally before the backend is contacted; a
// successful write triggers a directory reload.
func RegisterDirectorHandler(client *gateway.Client, cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.DirectorUpsert
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}

		if err := directorValidator.Struct(&req); err != nil {
			logger.Error("Director registration validation failed", map[string]interface{}{
				"request_id": reqID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Request validation failed: "+err.Error(), reqID))
		}

		if err := client.RegisterDirector(c.Request().Context(), req); err != nil {
			logger.Error("Director registration failed", map[string]interface{}{
				"request_id": reqID,
				"email":      req.Email,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		logger.Info("Director registered", map[string]interface{}{
			"request_id": reqID,
			"email":      req.Email,
		})

		// The sheet is the source of truth; reload so the new profile shows up
		if err := cache.LoadAll(c.Request().Context()); err != nil {
			logger.Warn("Directory reload after registration failed", map[string]interface{}{
				"request_id": reqID,
				"error":      err.Error(),
			})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "registered"})
	}
}

// DeleteDirectorHandler removes the authenticated user's own profile
func DeleteDirectorHandler(client *gateway.Client, cache *directory.Cache, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to manage your profile", reqID))
		}

		if err := client.DeleteDirector(c.Request().Context(), user.Email); err != nil {
			logger.Error("Director deletion failed", map[string]interface{}{
				"request_id": reqID,
				"email":      user.Email,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		if err := cache.LoadAll(c.Request().Context()); err != nil {
			logger.Warn("Directory reload after deletion failed", map[string]interface{}{
				"request_id": reqID,
				"error":      err.Error(),
			})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// MyProfileHandler returns the directory entry matching the authenticated
// user's email, if one exists
func MyProfileHandler(cache *directory.Cache, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to view your profile", reqID))
		}

		director, found := cache.ByEmail(user.Email)
		if !found {
			return c.JSON(http.StatusOK, map[string]interface{}{"registered": false})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"registered": true, "director": director})
	}
}
