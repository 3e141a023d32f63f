package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"independent-director/internal/config"
	"independent-director/internal/logging"
	"independent-director/pkg/models"
)

// Operation names understood by the remote script endpoint
const (
	opDirectors        = "directors"
	opRegisterDirector = "register_director"
	opDeleteDirector   = "delete_director"
	opJobs             = "jobs"
	opPostJob          = "post_job"
	opApplyJob         = "apply_job"
	opMyApplications   = "my_applications"
	opMyCertifications = "my_certifications"
	opSubmitCert       = "submit_certification_application"
	opCreateOrder      = "razorpay/create_order"
	opVerifyPayment    = "razorpay/verify_payment"
	opAuthSignup       = "auth/signup"
	opAuthLogin        = "auth/login"
)

// Client talks to the single fixed backend endpoint. Every request is tagged
// with a logical operation name via the "path" field (POST body) or query
// parameter (GET). No operation is retried automatically.
type Client struct {
	baseURL string
	fee     int
	http    *http.Client
	logger  logging.Logger
}

// NewClient creates a gateway client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Gateway.BaseURL,
		fee:     cfg.Payments.ApplicationFee,
		http:    &http.Client{Timeout: cfg.Gateway.Timeout},
		logger:  logging.GetGlobalLogger(),
	}
}

// Fee returns the client-side application fee constant that overrides any
// backend-computed amount
func (c *Client) Fee() int {
	return c.fee
}

type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// get performs a GET request for the given operation, decoding the full
// response body into out when out is non-nil
func (c *Client) get(ctx context.Context, op string, params map[string]string, out any) error {
	q := url.Values{"path": {op}}
	for k, v := range params {
		q.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	return c.do(op, req, out)
}

// post performs a POST request for the given operation. The payload is
// flattened into the JSON body alongside the "path" selector.
func (c *Client) post(ctx context.Context, op string, payload any, out any) error {
	body, err := mergePath(op, payload)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	// The script endpoint expects a text/plain body to avoid a CORS preflight
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed", map[string]interface{}{
			"operation": op,
			"error":     err.Error(),
		})
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("malformed response: %w", err)}
	}

	if env.Status == "error" {
		c.logger.Warn("Backend declared error", map[string]interface{}{
			"operation": op,
			"message":   env.Message,
		})
		return &BackendError{Op: op, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("malformed response: %w", err)}
		}
	}

	return nil
}

// mergePath flattens a payload struct or map into a JSON object carrying the
// operation selector
func mergePath(op string, payload any) ([]byte, error) {
	body := map[string]any{}
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(encoded, &body); err != nil {
			return nil, err
		}
	}
	body["path"] = op
	return json.Marshal(body)
}

// ListDirectors fetches and normalizes the full director list. Records that
// fail to decode are dropped and logged; IDs are unique within the result.
func (c *Client) ListDirectors(ctx context.Context) ([]models.Director, error) {
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.get(ctx, opDirectors, nil, &resp); err != nil {
		return nil, err
	}

	directors, dropped := NormalizeDirectors(resp.Data)
	for _, err := range dropped {
		c.logger.Warn("Dropped malformed director record", map[string]interface{}{
			"operation": opDirectors,
			"error":     err.Error(),
		})
	}
	return directors, nil
}

// RegisterDirector creates or updates a director profile. A non-empty ID on
// the payload signals an update.
func (c *Client) RegisterDirector(ctx context.Context, payload models.DirectorUpsert) error {
	return c.post(ctx, opRegisterDirector, payload, nil)
}

// DeleteDirector removes the director profile keyed by email
func (c *Client) DeleteDirector(ctx context.Context, email string) error {
	return c.post(ctx, opDeleteDirector, map[string]string{"email": email}, nil)
}

// ListJobs fetches the posted jobs. The application fee on every job is the
// client-side constant, not whatever the backend stored.
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.get(ctx, opJobs, nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(resp.Data))
	for _, rec := range resp.Data {
		jobs = append(jobs, normalizeJob(rec, c.fee))
	}
	return jobs, nil
}

// PostJob submits a new job posting with the fee constant attached
func (c *Client) PostJob(ctx context.Context, posting models.JobPosting) error {
	body, err := toMap(posting)
	if err != nil {
		return &TransportError{Op: opPostJob, Err: err}
	}
	body["fee"] = c.fee
	return c.post(ctx, opPostJob, body, nil)
}

// SubmitJobApplication stores a job application. The amount is always the
// fee constant regardless of what the caller supplied.
func (c *Client) SubmitJobApplication(ctx context.Context, sub models.JobApplicationSubmission) error {
	body, err := toMap(sub)
	if err != nil {
		return &TransportError{Op: opApplyJob, Err: err}
	}
	body["amount"] = c.fee
	return c.post(ctx, opApplyJob, body, nil)
}

// MyApplications lists the stored applications for an applicant email
func (c *Client) MyApplications(ctx context.Context, email string) ([]models.JobApplication, error) {
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.get(ctx, opMyApplications, map[string]string{"email": email}, &resp); err != nil {
		return nil, err
	}

	apps := make([]models.JobApplication, 0, len(resp.Data))
	for _, rec := range resp.Data {
		apps = append(apps, normalizeApplication(rec, c.fee))
	}
	return apps, nil
}

// MyCertifications lists the stored certification applications for an email
func (c *Client) MyCertifications(ctx context.Context, email string) ([]models.CertificationApplication, error) {
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.get(ctx, opMyCertifications, map[string]string{"email": email}, &resp); err != nil {
		return nil, err
	}

	certs := make([]models.CertificationApplication, 0, len(resp.Data))
	for _, rec := range resp.Data {
		certs = append(certs, normalizeCertification(rec))
	}
	return certs, nil
}

// SubmitCertificationApplication stores a certification application
func (c *Client) SubmitCertificationApplication(ctx context.Context, app models.CertificationApplication) error {
	return c.post(ctx, opSubmitCert, certificationPayload(app), nil)
}

// CreateOrder creates a payment order for the fee constant. A success
// envelope without an order id or checkout key is treated as a failure.
func (c *Client) CreateOrder(ctx context.Context) (models.PaymentOrder, error) {
	var resp struct {
		statusEnvelope
		ID       string `json:"id"`
		Amount   int    `json:"amount"`
		Currency string `json:"currency"`
		Key      string `json:"key"`
	}
	if err := c.post(ctx, opCreateOrder, map[string]int{"amount": c.fee}, &resp); err != nil {
		return models.PaymentOrder{}, err
	}

	if resp.ID == "" || resp.Key == "" {
		return models.PaymentOrder{}, &BackendError{
			Op:      opCreateOrder,
			Message: "payment order response is missing the order id or checkout key",
		}
	}

	order := models.PaymentOrder{
		ID:       resp.ID,
		Amount:   resp.Amount,
		Currency: resp.Currency,
		Key:      resp.Key,
	}
	if order.Amount == 0 {
		order.Amount = c.fee
	}
	return order, nil
}

// VerifyPayment forwards the checkout callback payload verbatim for
// server-side signature verification
func (c *Client) VerifyPayment(ctx context.Context, proof models.PaymentProof) error {
	return c.post(ctx, opVerifyPayment, proof, nil)
}

// Signup registers a new account. The backend returns no session, so callers
// follow up with Login.
func (c *Client) Signup(ctx context.Context, email, password, name string) error {
	return c.post(ctx, opAuthSignup, map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, nil)
}

// Login authenticates the credentials and returns the backend identity
func (c *Client) Login(ctx context.Context, email, password string) (models.BackendUser, error) {
	var resp struct {
		statusEnvelope
		User *models.BackendUser `json:"user"`
	}
	err := c.post(ctx, opAuthLogin, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return models.BackendUser{}, err
	}

	if resp.User == nil {
		return models.BackendUser{}, &BackendError{Op: opAuthLogin, Message: "invalid response from server"}
	}
	return *resp.User, nil
}

func toMap(v any) (map[string]any, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}
