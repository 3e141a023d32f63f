package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"independent-director/internal/config"
	"independent-director/internal/directory"
	"independent-director/internal/gateway"
)

// countingBackend stands in for the spreadsheet backend and counts every
// request that reaches it
type countingBackend struct {
	hits   atomic.Int64
	server *httptest.Server
}

func newCountingBackend(t *testing.T) *countingBackend {
	t.Helper()

	b := &countingBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   []map[string]any{},
		})
	}))
	t.Cleanup(b.server.Close)
	return b
}

func setupRegisterRoute(t *testing.T, backend *countingBackend) *echo.Echo {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Gateway.BaseURL = backend.server.URL

	client := gateway.NewClient(cfg)
	cache := directory.NewCache(client, nil)

	e := echo.New()
	e.POST("/directors", RegisterDirectorHandler(client, cache))
	return e
}

func TestRegisterDirectorRejectsMissingNameLocally(t *testing.T) {
	backend := newCountingBackend(t)
	e := setupRegisterRoute(t, backend)

	body := `{"email":"asha@example.com","age":"54","industry":"Healthcare","yearsOfExperience":"12","description":"Hospital governance veteran"}`
	rec := doJSON(e, http.MethodPost, "/directors", "", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int64(0), backend.hits.Load(), "validation failures must not reach the backend")
}

func TestRegisterDirectorRejectsIncompleteSubmissions(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing email",
			body: `{"name":"Asha Menon","age":"54","industry":"Healthcare","yearsOfExperience":"12","description":"Veteran"}`,
		},
		{
			name: "malformed email",
			body: `{"name":"Asha Menon","email":"not-an-email","age":"54","industry":"Healthcare","yearsOfExperience":"12","description":"Veteran"}`,
		},
		{
			name: "malformed DIN",
			body: `{"name":"Asha Menon","email":"asha@example.com","age":"54","industry":"Healthcare","yearsOfExperience":"12","description":"Veteran","dinNumber":"12AB"}`,
		},
		{
			name: "yes-no field outside Yes/No",
			body: `{"name":"Asha Menon","email":"asha@example.com","age":"54","industry":"Healthcare","yearsOfExperience":"12","description":"Veteran","isCurrentDirector":"maybe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newCountingBackend(t)
			e := setupRegisterRoute(t, backend)

			rec := doJSON(e, http.MethodPost, "/directors", "", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, int64(0), backend.hits.Load())
		})
	}
}

func TestRegisterDirectorForwardsValidSubmission(t *testing.T) {
	backend := newCountingBackend(t)
	e := setupRegisterRoute(t, backend)

	body := `{"name":"Asha Menon","email":"asha@example.com","age":"54","industry":"Healthcare","yearsOfExperience":"12","description":"Hospital governance veteran","dinNumber":"01234567","isCurrentDirector":"Yes"}`
	rec := doJSON(e, http.MethodPost, "/directors", "", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	// one register_director call plus the directory reload
	assert.Equal(t, int64(2), backend.hits.Load())
}
