package response

import "joblink/internal/api/models"

type AuthResponse struct {
	Success     bool        `json:"success"`
	User        models.User `json:"user"`
	UserID      string      `json:"userId,omitempty"`
	AccessToken string      `json:"accessToken,omitempty"`
}

type SessionResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}
