package leads

import "time"

// Lead is a validated, normalized registration record.
type Lead struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Company         string    `json:"company,omitempty"`
	JobTitle        string    `json:"job_title,omitempty"`
	Country         string    `json:"country"`
	InvestmentRange string    `json:"investment_range,omitempty"`
	Interests       string    `json:"interests,omitempty"`
	HowHeard        string    `json:"how_heard,omitempty"`
	IsValidated     bool      `json:"is_validated"`
	CreatedAt       time.Time `json:"created_at"`
}

// Submission carries the raw form fields exactly as submitted.
type Submission struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	Country         string `json:"country"`
	InvestmentRange string `json:"investment_range"`
	Interests       string `json:"interests"`
	HowHeard        string `json:"how_heard"`
}
