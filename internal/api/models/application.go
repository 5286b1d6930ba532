package models

import "time"

// Application is stored at "application:<id>".
//
// JobTitle and Company are snapshots of the job as the applicant saw it at
// apply time — they deliberately do not track later edits to the job.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	UserID      string            `json:"userId"`
	JobTitle    string            `json:"jobTitle"`
	Company     string            `json:"company"`
	Motivation  string            `json:"motivation"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	AppliedDate time.Time         `json:"appliedDate"`
	Status      ApplicationStatus `json:"status"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}
