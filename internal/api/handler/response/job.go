package response

import "joblink/internal/api/models"

type JobResponse struct {
	Success bool       `json:"success"`
	Job     models.Job `json:"job"`
}

type JobListResponse struct {
	Success bool         `json:"success"`
	Jobs    []models.Job `json:"jobs"`
}
