package models

// DirectorUpsert is the registration/update submission for a director
// profile. JSON tags match the backend sheet columns; a non-empty ID signals
// an update rather than a create.
type DirectorUpsert struct {
	ID                  string `json:"id,omitempty"`
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Age                 string `json:"age" validate:"required"`
	Industry            string `json:"industry" validate:"required"`
	YearsOfExperience   string `json:"yearsOfExperience" validate:"required"`
	Description         string `json:"description" validate:"required"`
	DINNumber           string `json:"dinNumber,omitempty" validate:"omitempty,din"`
	IsCurrentDirector   string `json:"isCurrentDirector,omitempty" validate:"omitempty,yesno"`
	IsIODCertified      string `json:"isIODCertified,omitempty" validate:"omitempty,yesno"`
	IODCertificateURL   string `json:"iodCertificateUrl,omitempty"`
	SectorsServed       string `json:"sectorsServed,omitempty"`
	CurrentSectors      string `json:"currentSectors,omitempty"`
	InternationalBoards string `json:"internationalBoards,omitempty"`
	CommitteeCount      string `json:"committeeCount,omitempty"`
	SubCommitteeCount   string `json:"subCommitteeCount,omitempty"`
	LitigationDetails   string `json:"litigationDetails,omitempty"`
	LogoURL             string `json:"logoUrl,omitempty"`
}

// JobPosting is the submission payload for a new board position
type JobPosting struct {
	Title            string `json:"title" validate:"required"`
	Company          string `json:"company" validate:"required"`
	Industry         string `json:"industry" validate:"required"`
	RoleType         string `json:"type" validate:"required,oneof=Independent Advisory Mentor"`
	Experience       string `json:"experience" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Responsibilities string `json:"responsibilities,omitempty"`
	Expectations     string `json:"expectations,omitempty"`
	Remuneration     string `json:"remuneration,omitempty"`
	PosterEmail      string `json:"posteremail" validate:"required,email"`
}

// JobApplicationSubmission is the payload forwarded to apply_job after a
// successful payment verification
type JobApplicationSubmission struct {
	JobID             string `json:"jobId" validate:"required"`
	JobTitle          string `json:"jobTitle" validate:"required"`
	CompanyName       string `json:"companyName"`
	PosterEmail       string `json:"posterEmail"`
	ApplicantName     string `json:"applicantName" validate:"required"`
	ApplicantEmail    string `json:"applicantEmail" validate:"required,email"`
	Phone             string `json:"phone"`
	Industry          string `json:"industry"`
	Experience        string `json:"experience"`
	CurrentLocation   string `json:"currentLocation"`
	PreferredLocation string `json:"preferredLocation"`
	CurrentCTC        string `json:"currentCTC"`
	ExpectedCTC       string `json:"expectedCTC"`
	NoticePeriod      string `json:"noticePeriod"`
	ResumeURL         string `json:"resumeUrl"`
	LinkedinURL       string `json:"linkedinUrl"`
	Summary           string `json:"summary"`
	Message           string `json:"message"`
	Amount            int    `json:"amount"`
	PaymentID         string `json:"paymentId"`
}

// PaymentProof carries the checkout callback payload forwarded verbatim to
// razorpay/verify_payment
type PaymentProof struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// PaymentOrder is the order created ahead of checkout
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// Credentials is the login/signup request body
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name,omitempty"`
}

// AssistantSearchRequest asks for a natural-language ranked director search
type AssistantSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// ChatRequest is a single chatbot turn with optional client-held history
// and an optional server-side thread to append to
type ChatRequest struct {
	Message  string        `json:"message" validate:"required"`
	History  []ChatMessage `json:"history,omitempty"`
	ThreadID string        `json:"thread_id,omitempty"`
}
