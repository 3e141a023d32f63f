package payments

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

// fakeGateway records the order of calls so the verify-before-submit
// contract can be asserted
type fakeGateway struct {
	verifyErr error
	submitErr error
	orderErr  error
	calls     []string
}

func (f *fakeGateway) CreateOrder(context.Context) (models.PaymentOrder, error) {
	f.calls = append(f.calls, "create_order")
	if f.orderErr != nil {
		return models.PaymentOrder{}, f.orderErr
	}
	return models.PaymentOrder{ID: "order_1", Amount: 99, Currency: "INR", Key: "rzp_test_key"}, nil
}

func (f *fakeGateway) VerifyPayment(context.Context, models.PaymentProof) error {
	f.calls = append(f.calls, "verify")
	return f.verifyErr
}

func (f *fakeGateway) SubmitJobApplication(context.Context, models.JobApplicationSubmission) error {
	f.calls = append(f.calls, "apply_job")
	return f.submitErr
}

func (f *fakeGateway) SubmitCertificationApplication(context.Context, models.CertificationApplication) error {
	f.calls = append(f.calls, "submit_certification")
	return f.submitErr
}

func proofFixture() models.PaymentProof {
	return models.PaymentProof{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
}

func TestApplyToJobVerifiesBeforeSubmitting(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	err := svc.ApplyToJob(context.Background(), proofFixture(), models.JobApplicationSubmission{JobID: "j1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"verify", "apply_job"}, gw.calls)
}

func TestApplyToJobFailedVerificationLeavesNoTrace(t *testing.T) {
	gw := &fakeGateway{verifyErr: fmt.Errorf("signature mismatch")}
	svc := NewService(gw)

	err := svc.ApplyToJob(context.Background(), proofFixture(), models.JobApplicationSubmission{JobID: "j1"})
	require.Error(t, err)

	var customErr *utils.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusPaymentRequired, customErr.Code)

	assert.Equal(t, []string{"verify"}, gw.calls, "nothing is submitted after a failed verification")
}

func TestApplyToJobSubmissionErrorPropagates(t *testing.T) {
	gw := &fakeGateway{submitErr: fmt.Errorf("sheet write failed")}
	svc := NewService(gw)

	err := svc.ApplyToJob(context.Background(), proofFixture(), models.JobApplicationSubmission{JobID: "j1"})
	require.Error(t, err)
	assert.Equal(t, []string{"verify", "apply_job"}, gw.calls)
}

func TestSubmitCertificationVerifiesFirst(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	err := svc.SubmitCertification(context.Background(), proofFixture(), models.CertificationApplication{FullName: "Asha Menon"})
	require.NoError(t, err)
	assert.Equal(t, []string{"verify", "submit_certification"}, gw.calls)
}

func TestSubmitCertificationFailedVerification(t *testing.T) {
	gw := &fakeGateway{verifyErr: fmt.Errorf("signature mismatch")}
	svc := NewService(gw)

	err := svc.SubmitCertification(context.Background(), proofFixture(), models.CertificationApplication{FullName: "Asha Menon"})
	require.Error(t, err)
	assert.Equal(t, []string{"verify"}, gw.calls)
}

func TestCreateOrderPassesThrough(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	order, err := svc.CreateOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, 99, order.Amount)
}
