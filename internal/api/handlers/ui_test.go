package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"independent-director/internal/config"
	"independent-director/internal/session"
	"independent-director/internal/viewstate"
	"independent-director/pkg/models"
)

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, email, _ string) (models.BackendUser, error) {
	return models.BackendUser{ID: "u1", Email: email, Name: "Asha Menon"}, nil
}

func (stubAuth) Signup(context.Context, string, string, string) error { return nil }

func testSessions(t *testing.T) *session.Store {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return session.NewStore(cfg, session.NewMemoryBlobs(), stubAuth{})
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(sessionTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func setupUIRoutes(sessions *session.Store, views *viewstate.Registry) *echo.Echo {
	e := echo.New()
	e.GET("/ui/state", UIStateHandler(views, sessions))
	e.POST("/ui/navigate", NavigateHandler(views, sessions))
	e.POST("/ui/select/director", SelectDirectorHandler(views))
	e.POST("/ui/back", BackHandler(views))
	e.POST("/ui/legal", OpenLegalHandler(views))
	return e
}

func TestUIStateStartsAtHome(t *testing.T) {
	e := setupUIRoutes(testSessions(t), viewstate.NewRegistry())

	rec := doJSON(e, http.MethodGet, "/ui/state", "visitor-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uiStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewHome, resp.View)
}

func TestNavigateAndBack(t *testing.T) {
	e := setupUIRoutes(testSessions(t), viewstate.NewRegistry())

	rec := doJSON(e, http.MethodPost, "/ui/navigate", "visitor-1", `{"view":"directory"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/ui/select/director", "visitor-1", `{"id":"3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uiStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewDetail, resp.View)
	assert.Equal(t, "3", resp.State.SelectedDirectorID)

	rec = doJSON(e, http.MethodPost, "/ui/back", "visitor-1", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewDirectory, resp.View)
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	e := setupUIRoutes(testSessions(t), viewstate.NewRegistry())

	rec := doJSON(e, http.MethodPost, "/ui/navigate", "visitor-1", `{"view":"dashboard"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileGuardRendersLoginForAnonymous(t *testing.T) {
	sessions := testSessions(t)
	views := viewstate.NewRegistry()
	e := setupUIRoutes(sessions, views)

	rec := doJSON(e, http.MethodPost, "/ui/navigate", "visitor-1", `{"view":"profile"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uiStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewLogin, resp.View, "anonymous profile renders login")
	assert.Equal(t, viewstate.ViewProfile, resp.State.View, "the stored view stays profile")
}

func TestProfileGuardLiftsAfterLogin(t *testing.T) {
	sessions := testSessions(t)
	views := viewstate.NewRegistry()
	e := setupUIRoutes(sessions, views)

	_, token, err := sessions.LoginWithEmail(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)

	doJSON(e, http.MethodPost, "/ui/navigate", token, `{"view":"profile"}`)
	rec := doJSON(e, http.MethodGet, "/ui/state", token, "")

	var resp uiStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewProfile, resp.View)
}

func TestOpenLegalValidatesSection(t *testing.T) {
	e := setupUIRoutes(testSessions(t), viewstate.NewRegistry())

	rec := doJSON(e, http.MethodPost, "/ui/legal", "visitor-1", `{"section":"terms"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uiStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewLegal, resp.View)
	assert.Equal(t, viewstate.LegalTerms, resp.State.LegalSection)

	rec = doJSON(e, http.MethodPost, "/ui/legal", "visitor-1", `{"section":"cookies"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsSessionAndViewState(t *testing.T) {
	sessions := testSessions(t)
	views := viewstate.NewRegistry()

	e := setupUIRoutes(sessions, views)
	e.POST("/auth/logout", LogoutHandler(sessions, views))
	e.GET("/auth/session", SessionHandler(sessions))

	_, token, err := sessions.LoginWithEmail(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	doJSON(e, http.MethodPost, "/ui/navigate", token, `{"view":"directory"}`)

	rec := doJSON(e, http.MethodPost, "/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/auth/session", token, "")
	var sess models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.False(t, sess.Authenticated)

	rec = doJSON(e, http.MethodGet, "/ui/state", token, "")
	var resp uiStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, viewstate.ViewHome, resp.View, "view state resets with the session")
}
