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

// jobApplicationRequest pairs the payment proof with the application it pays
// for. The proof is verified before anything is written.
type jobApplicationRequest struct {
	Payment     models.PaymentProof             `json:"payment" validate:"required"`
	Application models.JobApplicationSubmission `json:"application" validate:"required"`
}

// ApplyJobHandler verifies the checkout payment and submits the job
// application in one call
func ApplyJobHandler(svc *payments.Service, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to apply", reqID))
		}

		var req jobApplicationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid_request", "Invalid request body: "+err.Error(), reqID))
		}
		req.Application.ApplicantEmail = user.Email
		req.Application.PaymentID = req.Payment.PaymentID

		if err := directorValidator.Struct(&req.Payment); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Payment proof incomplete: "+err.Error(), reqID))
		}
		if err := directorValidator.Struct(&req.Application); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("validation_failed", "Request validation failed: "+err.Error(), reqID))
		}

		if err := svc.ApplyToJob(c.Request().Context(), req.Payment, req.Application); err != nil {
			var customErr *utils.CustomError
			if errors.As(err, &customErr) && customErr.Code == http.StatusPaymentRequired {
				return c.JSON(http.StatusPaymentRequired, errorBody("payment_failed", customErr.Error(), reqID))
			}
			logger.Error("Job application failed", map[string]interface{}{
				"request_id": reqID,
				"job_id":     req.Application.JobID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "applied"})
	}
}

// MyApplicationsHandler lists the authenticated user's job applications
func MyApplicationsHandler(client *gateway.Client, sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		user, ok := sessions.Restore(c.Request().Context(), sessionToken(c))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("unauthorized", "Sign in to view applications", reqID))
		}

		apps, err := client.MyApplications(c.Request().Context(), user.Email)
		if err != nil {
			return c.JSON(http.StatusBadGateway, errorBody("backend_error", err.Error(), reqID))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"applications": apps,
			"total":        len(apps),
		})
	}
}
