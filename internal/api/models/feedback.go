package models

import "time"

// Feedback is stored at "feedback:<id>". UserID is optional; anonymous
// feedback is accepted.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
