package models

// RoleType enumerates the board-level positions a job can advertise
type RoleType string

const (
	RoleIndependent RoleType = "Independent"
	RoleAdvisory    RoleType = "Advisory"
	RoleMentor      RoleType = "Mentor"
)

// JobStatus represents the lifecycle status of a posted job
type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"
)

// Job represents a board-level position listed on the job portal
type Job struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Industry           string    `json:"industry"`
	RoleType           RoleType  `json:"role_type"`
	ExperienceRequired string    `json:"experience_required"`
	Location           string    `json:"location"`
	Description        string    `json:"description"`
	Responsibilities   string    `json:"responsibilities"`
	Expectations       string    `json:"expectations"`
	Remuneration       string    `json:"remuneration,omitempty"`
	ApplicationFee     int       `json:"application_fee"`
	Status             JobStatus `json:"status"`
	CreatedAt          string    `json:"created_at"`
	PosterEmail        string    `json:"poster_email,omitempty"`
}
