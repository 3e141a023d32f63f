package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

// sessionTokenHeader carries the opaque session token between the client
// and this service
const sessionTokenHeader = "X-Session-Token"

// requestID returns the ID assigned by the validation middleware, minting
// one when the middleware did not run (tests)
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

func sessionToken(c echo.Context) string {
	return c.Request().Header.Get(sessionTokenHeader)
}

func errorBody(errCode, message, requestID string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     errCode,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}
