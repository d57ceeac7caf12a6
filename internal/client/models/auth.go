package models

// SignUpRequest is the registration form.
type SignUpRequest struct {
	FullName   string `json:"full_name"  validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year"       validate:"required"`
}
