package response

import "joblink/internal/api/models"

type FeedbackResponse struct {
	Success  bool            `json:"success"`
	Feedback models.Feedback `json:"feedback"`
}
