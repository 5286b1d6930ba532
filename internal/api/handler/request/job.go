package request

type CreateJobDTO struct {
	Title        string   `json:"title" validate:"required,min=2"`
	Description  string   `json:"description" validate:"required,min=10"`
	Location     string   `json:"location" validate:"required,min=2"`
	Salary       float64  `json:"salary" validate:"required,gt=0"`
	SalaryPeriod string   `json:"salaryPeriod" validate:"omitempty,oneof=weekly monthly"`
	Category     string   `json:"category" validate:"required"`
	Type         string   `json:"type" validate:"omitempty,min=2"`
	Requirements []string `json:"requirements" validate:"omitempty,dive,min=2"`
}

// UpdateJobDTO is a partial patch; nil fields are left untouched.
type UpdateJobDTO struct {
	Title        *string  `json:"title" validate:"omitempty,min=2"`
	Description  *string  `json:"description" validate:"omitempty,min=10"`
	Location     *string  `json:"location" validate:"omitempty,min=2"`
	Salary       *float64 `json:"salary" validate:"omitempty,gt=0"`
	SalaryPeriod *string  `json:"salaryPeriod" validate:"omitempty,oneof=weekly monthly"`
	Category     *string  `json:"category" validate:"omitempty"`
	Type         *string  `json:"type" validate:"omitempty,min=2"`
	Requirements []string `json:"requirements" validate:"omitempty,dive,min=2"`
}

type UpdateJobStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=active closed"`
}
