package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"independent-director/internal/assistant"
	"independent-director/internal/directory"
	"independent-director/internal/logging"
	"independent-director/pkg/models"
)

// AISearchHandler ranks the directory against a natural-language query.
// Falls back on nothing: an unavailable assistant is a 503, the plain
// substring search stays on /directors.
func AISearchHandler(manager *assistant.Manager, cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.AssistantSearchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		if err := directorValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Query is required", reqID))
		}

		ranked, err := manager.RankDirectors(c.Request().Context(), req.Query, cache.All())
		if err != nil {
			return assistantError(c, reqID, err)
		}

		logger.Info("AI search completed", map[string]interface{}{
			"request_id": reqID,
			"query":      req.Query,
			"matches":    len(ranked),
		})

		return c.JSON(http.StatusOK, models.DirectorsResponse{
			Directors: ranked,
			Total:     len(ranked),
			Query:     req.Query,
		})
	}
}

// DirectorSummaryHandler generates an AI summary for one profile
func DirectorSummaryHandler(manager *assistant.Manager, cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		director, ok := cache.ByID(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, errorBody("not_found", "Director not found", reqID))
		}

		summary, err := manager.SummarizeDirector(c.Request().Context(), director)
		if err != nil {
			return assistantError(c, reqID, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"id":      director.ID,
			"summary": summary,
		})
	}
}

// SimilarDirectorsHandler recommends up to three similar profiles
func SimilarDirectorsHandler(manager *assistant.Manager, cache *directory.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		subject, ok := cache.ByID(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, errorBody("not_found", "Director not found", reqID))
		}

		similar, err := manager.SimilarDirectors(c.Request().Context(), subject, cache.All())
		if err != nil {
			return assistantError(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.DirectorsResponse{
			Directors: similar,
			Total:     len(similar),
		})
	}
}

// ChatHandler answers one chatbot turn. History comes from the server-side
// thread when a thread ID is given, otherwise from the request body; the
// exchange is appended to the thread either way.
func ChatHandler(manager *assistant.Manager, cache *directory.Cache, history *assistant.HistoryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		if err := directorValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Message is required", reqID))
		}

		threadID := req.ThreadID
		if threadID == "" {
			threadID = uuid.New().String()
		}

		turns := req.History
		if req.ThreadID != "" {
			thread, err := history.Thread(c.Request().Context(), threadID)
			if err != nil {
				logger.Warn("Chat history load failed, continuing without it", map[string]interface{}{
					"request_id": reqID,
					"thread_id":  threadID,
					"error":      err.Error(),
				})
			} else if len(thread.Entries) > 0 {
				turns = thread.Entries
			}
		}

		reply, err := manager.ChatReply(c.Request().Context(), turns, req.Message, cache.All())
		if err != nil {
			return assistantError(c, reqID, err)
		}

		if err := history.Append(c.Request().Context(), threadID,
			models.ChatMessage{Role: "user", Parts: req.Message},
			models.ChatMessage{Role: "model", Parts: reply},
		); err != nil {
			logger.Warn("Chat history save failed", map[string]interface{}{
				"request_id": reqID,
				"thread_id":  threadID,
				"error":      err.Error(),
			})
		}

		return c.JSON(http.StatusOK, models.ChatResponse{Reply: reply, ThreadID: threadID})
	}
}

func assistantError(c echo.Context, reqID string, err error) error {
	if errors.Is(err, assistant.ErrBusy) {
		return c.JSON(http.StatusTooManyRequests, errorBody("assistant_busy", err.Error(), reqID))
	}

	logging.GetGlobalLogger().Error("Assistant call failed", map[string]interface{}{
		"request_id": reqID,
		"error":      err.Error(),
	})
	return c.JSON(http.StatusServiceUnavailable, errorBody("assistant_unavailable", err.Error(), reqID))
}
