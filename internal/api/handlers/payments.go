package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"independent-director/internal/logging"
	"independent-director/internal/payments"
	"independent-director/internal/session"
)

// CreateOrderHandler opens a payment order for the fixed application fee.
// The amount is never taken from the client.
func CreateOrderHandler(svc *payments.Service, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		if _, ok := sessions.Restore(c.Request().Context(), sessionToken(c)); !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to start a payment", reqID))
		}

		order, err := svc.CreateOrder(c.Request().Context())
		if err != nil {
			logger.Error("Order creation failed", map[string]interface{}{
				"request_id": reqID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("payment_order_failed", err.Error(), reqID))
		}

		return c.JSON(http.StatusOK, order)
	}
}
