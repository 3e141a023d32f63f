package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"independent-director/internal/logging"
	"independent-director/internal/session"
	"independent-director/internal/viewstate"
	"independent-director/pkg/models"
)

// LoginHandler authenticates credentials against the backend and issues a
// session token. A login while on the sign-in view also moves the view
// state back home.
func LoginHandler(sessions *session.Store, views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.Credentials
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		if err := directorValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Request validation failed: "+err.Error(), reqID))
		}

		user, token, err := sessions.LoginWithEmail(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			logger.Warn("Login failed", map[string]interface{}{
				"request_id": reqID,
				"email":      req.Email,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusUnauthorized, errorBody("login_failed", err.Error(), reqID))
		}

		views.Machine(token).LoginSucceeded()

		return c.JSON(http.StatusOK, models.SessionResponse{
			Authenticated: true,
			User:          &user,
			Token:         token,
		})
	}
}

// SignupHandler registers an account and logs straight in, since the
// backend issues no session on signup
func SignupHandler(sessions *session.Store, views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.Credentials
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		if err := directorValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Request validation failed: "+err.Error(), reqID))
		}
		if req.Name == "" {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Name is required", reqID))
		}

		user, token, err := sessions.SignupWithEmail(c.Request().Context(), req.Email, req.Password, req.Name)
		if err != nil {
			logger.Warn("Signup failed", map[string]interface{}{
				"request_id": reqID,
				"email":      req.Email,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadRequest, errorBody("signup_failed", err.Error(), reqID))
		}

		views.Machine(token).LoginSucceeded()

		return c.JSON(http.StatusOK, models.SessionResponse{
			Authenticated: true,
			User:          &user,
			Token:         token,
		})
	}
}

// SessionHandler restores the session for a token. An unknown or corrupt
// session is simply unauthenticated, never an error.
func SessionHandler(sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusOK, models.SessionResponse{Authenticated: false})
		}
		return c.JSON(http.StatusOK, models.SessionResponse{Authenticated: true, User: user})
	}
}

// LogoutHandler clears the session blob and drops the per-session view
// state. No backend call is made.
func LogoutHandler(sessions *session.Store, views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if err := sessions.Logout(c.Request().Context(), token); err != nil {
			logging.GetGlobalLogger().Warn("Logout cleanup failed", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
		}
		views.Drop(token)
		return c.JSON(http.StatusOK, models.SessionResponse{Authenticated: false})
	}
}
