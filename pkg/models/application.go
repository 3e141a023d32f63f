package models

// JobApplication is the stored record of a paid application to a posted job.
// Field order mirrors the backend sheet columns (A through AE).
type JobApplication struct {
	ID                string `json:"id"`
	ApplicationID     string `json:"application_id"`
	JobID             string `json:"job_id"`
	JobTitle          string `json:"job_title"`
	CompanyName       string `json:"company_name"`
	DirectorEmail     string `json:"director_email"`
	ApplicantName     string `json:"applicant_name"`
	ApplicantEmail    string `json:"applicant_email"`
	ApplicantPhone    string `json:"applicant_phone"`
	ApplicantIndustry string `json:"applicant_industry"`
	Experience        string `json:"experience"`
	CurrentLocation   string `json:"current_location"`
	PreferredLocation string `json:"preferred_location"`
	CurrentCTC        string `json:"current_ctc"`
	ExpectedCTC       string `json:"expected_ctc"`
	NoticePeriod      string `json:"notice_period"`
	ResumeURL         string `json:"resume_url"`
	LinkedinURL       string `json:"linkedin_url"`
	Summary           string `json:"summary"`
	Message           string `json:"message"`
	PaymentStatus     string `json:"payment_status"`
	Amount            int    `json:"amount"`
	PaymentID         string `json:"payment_id"`
	PaymentMethod     string `json:"payment_method"`
	TransactionStatus string `json:"transaction_status"`
	PaymentDate       string `json:"payment_date"`
	RefundStatus      string `json:"refund_status"`
	Status            string `json:"status"`
	AppliedFrom       string `json:"applied_from"`
	AppliedAt         string `json:"applied_at"`
	UpdatedAt         string `json:"updated_at"`
}
