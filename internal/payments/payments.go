package payments

import (
	"context"
	"fmt"

	"independent-director/internal/logging"
	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

// Gateway is the slice of the remote gateway the payment flows need
type Gateway interface {
	CreateOrder(ctx context.Context) (models.PaymentOrder, error)
	VerifyPayment(ctx context.Context, proof models.PaymentProof) error
	SubmitJobApplication(ctx context.Context, sub models.JobApplicationSubmission) error
	SubmitCertificationApplication(ctx context.Context, app models.CertificationApplication) error
}

// Service orchestrates paid submissions. An application or certification is
// submitted only after the payment proof verifies; a failed verification
// leaves no trace on the backend.
type Service struct {
	gateway Gateway
	logger  logging.Logger
}

// NewService creates a payment service on top of the gateway
func NewService(gateway Gateway) *Service {
	return &Service{
		gateway: gateway,
		logger:  logging.GetGlobalLogger(),
	}
}

// CreateOrder opens a payment order for the fixed application fee
func (s *Service) CreateOrder(ctx context.Context) (models.PaymentOrder, error) {
	order, err := s.gateway.CreateOrder(ctx)
	if err != nil {
		s.logger.Error("Failed to create payment order", map[string]interface{}{
			"error": err.Error(),
		})
		return models.PaymentOrder{}, err
	}

	s.logger.Info("Payment order created", map[string]interface{}{
		"order_id": order.ID,
		"amount":   order.Amount,
	})
	return order, nil
}

// ApplyToJob verifies the payment proof and then submits the job
// application. Verification failure aborts before any submission.
func (s *Service) ApplyToJob(ctx context.Context, proof models.PaymentProof, sub models.JobApplicationSubmission) error {
	if err := s.gateway.VerifyPayment(ctx, proof); err != nil {
		s.logger.Warn("Payment verification failed for job application", map[string]interface{}{
			"order_id":  proof.OrderID,
			"job_id":    sub.JobID,
			"applicant": sub.ApplicantEmail,
			"error":     err.Error(),
		})
		return utils.NewPaymentError(fmt.Sprintf("payment verification failed: %v", err))
	}

	if err := s.gateway.SubmitJobApplication(ctx, sub); err != nil {
		// Payment went through but the submission did not; surface the
		// order ID so support can reconcile manually.
		s.logger.Error("Job application submission failed after payment", map[string]interface{}{
			"order_id":  proof.OrderID,
			"job_id":    sub.JobID,
			"applicant": sub.ApplicantEmail,
			"error":     err.Error(),
		})
		return err
	}

	s.logger.Info("Job application submitted", map[string]interface{}{
		"job_id":    sub.JobID,
		"applicant": sub.ApplicantEmail,
		"order_id":  proof.OrderID,
	})
	return nil
}

// SubmitCertification verifies the payment proof and then submits the
// certification application
func (s *Service) SubmitCertification(ctx context.Context, proof models.PaymentProof, app models.CertificationApplication) error {
	if err := s.gateway.VerifyPayment(ctx, proof); err != nil {
		s.logger.Warn("Payment verification failed for certification", map[string]interface{}{
			"order_id":  proof.OrderID,
			"applicant": app.Email,
			"error":     err.Error(),
		})
		return utils.NewPaymentError(fmt.Sprintf("payment verification failed: %v", err))
	}

	if err := s.gateway.SubmitCertificationApplication(ctx, app); err != nil {
		s.logger.Error("Certification submission failed after payment", map[string]interface{}{
			"order_id":  proof.OrderID,
			"applicant": app.Email,
			"error":     err.Error(),
		})
		return err
	}

	s.logger.Info("Certification application submitted", map[string]interface{}{
		"applicant": app.Email,
		"order_id":  proof.OrderID,
	})
	return nil
}
