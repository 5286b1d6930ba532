package request

type SignupDTO struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Name         string `json:"name" validate:"required,min=2"`
	UserType     string `json:"userType" validate:"required,oneof=jobseeker employer"`
	Phone        string `json:"phone" validate:"omitempty,min=5"`
	Location     string `json:"location" validate:"omitempty,min=2"`
	BusinessName string `json:"businessName" validate:"omitempty,min=2"`
}

type SigninDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
