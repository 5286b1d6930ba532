package request

type SubmitApplicationDTO struct {
	JobID      string `json:"jobId" validate:"required"`
	Motivation string `json:"motivation" validate:"required,min=20"`
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,min=5"`
}

type UpdateApplicationDTO struct {
	Motivation string `json:"motivation" validate:"required,min=20"`
}

type UpdateApplicationStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}
