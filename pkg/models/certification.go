package models

// CertificationApplication captures a director certification program
// submission. Created once after a successful payment verification and
// read-only afterwards.
type CertificationApplication struct {
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	Mobile               string `json:"mobile"`
	CityCountry          string `json:"city_country"`
	YearsOfExperience    string `json:"years_of_experience"`
	Designation          string `json:"designation"`
	IndustryExpertise    string `json:"industry_expertise"`
	FunctionalExpertise  string `json:"functional_expertise"`
	PriorBoardExperience string `json:"prior_board_experience"`
	InterestedRole       string `json:"interested_role"`
	AreasOfInterest      string `json:"areas_of_interest"`
	DIN                  string `json:"din"`
	PAN                  string `json:"pan"`
	MCARegistered        string `json:"mca_registered"`
	WillingToTest        string `json:"willing_to_test"`
	CVURL                string `json:"cv_url"`
	InterestStatement    string `json:"interest_statement"`
	PaymentID            string `json:"payment_id,omitempty"`
}
