package request

type FeedbackDTO struct {
	UserID  string `json:"userId" validate:"omitempty"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Message string `json:"message" validate:"required,min=2"`
}
