package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"independent-director/internal/gateway"
	"independent-director/internal/logging"
	"independent-director/internal/payments"
	"independent-director/internal/session"
	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

// certificationRequest pairs the payment proof with the certification
// program application it pays for
type certificationRequest struct {
	Payment     models.PaymentProof             `json:"payment"`
	Application models.CertificationApplication `json:"application"`
}

// SubmitCertificationHandler verifies the checkout payment and submits the
// certification application
func SubmitCertificationHandler(svc *payments.Service, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to apply for certification", reqID))
		}

		var req certificationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		req.Application.Email = user.Email
		req.Application.PaymentID = req.Payment.PaymentID

		if err := directorValidator.Struct(&req.Payment); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Payment proof incomplete: "+err.Error(), reqID))
		}
		if req.Application.FullName == "" {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Full name is required", reqID))
		}

		if err := svc.SubmitCertification(c.Request().Context(), req.Payment, req.Application); err != nil {
			var customErr *utils.CustomError
			if errors.As(err, &customErr) && customErr.Code == http.StatusPaymentRequired {
				return c.JSON(http.StatusPaymentRequired, errorBody("payment_failed", customErr.Error(), reqID))
			}
			logger.Error("Certification submission failed", map[string]interface{}{
				"request_id": reqID,
				"applicant":  user.Email,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "submitted"})
	}
}

// MyCertificationsHandler lists the authenticated user's certification
// applications
func MyCertificationsHandler(client *gateway.Client, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to view certifications", reqID))
		}

		certs, err := client.MyCertifications(c.Request().Context(), user.Email)
		if err != nil {
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"certifications": certs,
			"total":          len(certs),
		})
	}
}
