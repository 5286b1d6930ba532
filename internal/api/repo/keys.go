package repo

import "strings"

// Key scheme of the flat namespace. Entities live at "<kind>:<id>",
// index lists at "<ownerKind>:<ownerId>:<relation>".

func UserKey(id string) string {
	return "user:" + id
}

func AccountKey(email string) string {
	return "account:" + strings.ToLower(strings.TrimSpace(email))
}

func JobKey(id string) string {
	return "job:" + id
}

func ApplicationKey(id string) string {
	return "application:" + id
}

func FeedbackKey(id string) string {
	return "feedback:" + id
}

// EmployerJobsKey indexes every job an employer created.
func EmployerJobsKey(employerID string) string {
	return "employer:" + employerID + ":jobs"
}

// UserApplicationsKey indexes every application a job seeker submitted.
func UserApplicationsKey(userID string) string {
	return "user:" + userID + ":applications"
}

// JobApplicantsKey indexes every application submitted to a job.
func JobApplicantsKey(jobID string) string {
	return "job:" + jobID + ":applicants"
}
