package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"independent-director/internal/directory"
	"independent-director/internal/logging"
	"independent-director/internal/session"
	"independent-director/internal/viewstate"
)

// uiStateResponse is the view machine snapshot resolved against the session
type uiStateResponse struct {
	View  viewstate.View  `json:"view"`
	State viewstate.State `json:"state"`
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type selectRequest struct {
	ID string `json:"id" validate:"required"`
}

type legalRequest struct {
	Section string `json:"section" validate:"required,oneof=privacy terms disclaimer"`
}

// UIStateHandler returns the current view, with the profile guard applied
// against the live session
func UIStateHandler(views *viewstate.Registry, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		machine := views.Machine(token)

		_, authenticated := sessions.Restore(c.Request().Context(), token)
		return c.JSON(http.StatusOK, uiStateResponse{
			View:  machine.Resolve(authenticated),
			State: machine.State(),
		})
	}
}

// NavigateHandler moves the session's view machine to a named view
func NavigateHandler(views *viewstate.Registry, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req navigateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}

		token := sessionToken(c)
		machine := views.Machine(token)
		if err := machine.Navigate(viewstate.View(req.View)); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("unknown_view", err.Error(), reqID))
		}

		_, authenticated := sessions.Restore(c.Request().Context(), token)
		return c.JSON(http.StatusOK, uiStateResponse{
			View:  machine.Resolve(authenticated),
			State: machine.State(),
		})
	}
}

// SelectDirectorHandler records a director selection and opens the detail view
func SelectDirectorHandler(views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req selectRequest
		if err := c.Bind(&req); err != nil || req.ID == "" {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Director ID is required", reqID))
		}

		machine := views.Machine(sessionToken(c))
		machine.SelectDirector(req.ID)
		return c.JSON(http.StatusOK, uiStateResponse{View: machine.State().View, State: machine.State()})
	}
}

// SelectJobHandler records a job selection and opens the job detail view
func SelectJobHandler(views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req selectRequest
		if err := c.Bind(&req); err != nil || req.ID == "" {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Job ID is required", reqID))
		}

		machine := views.Machine(sessionToken(c))
		machine.SelectJob(req.ID)
		return c.JSON(http.StatusOK, uiStateResponse{View: machine.State().View, State: machine.State()})
	}
}

// OpenLegalHandler opens the legal view on a named section
func OpenLegalHandler(views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req legalRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		if err := directorValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Unknown legal section", reqID))
		}

		machine := views.Machine(sessionToken(c))
		machine.OpenLegal(viewstate.LegalSection(req.Section))
		return c.JSON(http.StatusOK, uiStateResponse{View: machine.State().View, State: machine.State()})
	}
}

// BackHandler returns from a detail view to its parent listing
func BackHandler(views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		machine := views.Machine(sessionToken(c))
		machine.Back()
		return c.JSON(http.StatusOK, uiStateResponse{View: machine.State().View, State: machine.State()})
	}
}

// RegistrationDoneHandler applies the post-registration transition and
// performs its reload effect
func RegistrationDoneHandler(views *viewstate.Registry, cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		machine := views.Machine(sessionToken(c))

		if machine.RegistrationSucceeded() == viewstate.EffectReloadDirectors {
			if err := cache.LoadAll(c.Request().Context()); err != nil {
				logging.GetGlobalLogger().Warn("Directory reload failed", map[string]interface{}{
					"request_id": requestID(c),
					"error":      err.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, uiStateResponse{View: machine.State().View, State: machine.State()})
	}
}

// ResetHandler returns the machine to home, mirroring a page reload
func ResetHandler(views *viewstate.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		machine := views.Machine(sessionToken(c))
		machine.Reset()
		return c.JSON(http.StatusOK, uiStateResponse{View: machine.State().View, State: machine.State()})
	}
}
