package models

import "time"

// Job is stored at "job:<id>". ApplicantCount is a cached count derived
// from the job's applicant index; the index is the source of truth.
type Job struct {
	ID             string       `json:"id"`
	EmployerID     string       `json:"employerId"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Location       string       `json:"location"`
	Salary         float64      `json:"salary"`
	SalaryPeriod   SalaryPeriod `json:"salaryPeriod"`
	Category       JobCategory  `json:"category"`
	Type           string       `json:"type"`
	PostedTime     time.Time    `json:"postedTime"`
	Status         JobStatus    `json:"status"`
	ApplicantCount int          `json:"applicantCount"`
	Requirements   []string     `json:"requirements"`

	// Joined from the employer's profile at read time, never persisted.
	Company       string `json:"company,omitempty"`
	EmployerEmail string `json:"employerEmail,omitempty"`
	EmployerPhone string `json:"employerPhone,omitempty"`
}
