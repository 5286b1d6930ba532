package response

import "joblink/internal/api/models"

type ApplicationResponse struct {
	Success     bool               `json:"success"`
	Application models.Application `json:"application"`
}

type ApplicationListResponse struct {
	Success      bool                 `json:"success"`
	Applications []models.Application `json:"applications"`
}

// ApplicantListResponse is the employer-facing view of a job's inbox.
type ApplicantListResponse struct {
	Success    bool                 `json:"success"`
	Applicants []models.Application `json:"applicants"`
}
