package models

import "time"

// User is the public profile stored at "user:<id>". Identity fields are
// immutable after signup.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	UserType     UserType  `json:"userType"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	BusinessName string    `json:"businessName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DisplayCompany is the name shown for a user acting as an employer.
func (u *User) DisplayCompany() string {
	if u == nil {
		return "Anonymous Employer"
	}
	if u.BusinessName != "" {
		return u.BusinessName
	}
	if u.Name != "" {
		return u.Name
	}
	return "Anonymous Employer"
}

// Account holds the credentials for an email address, stored at
// "account:<email>". It never leaves the auth service.
type Account struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}
