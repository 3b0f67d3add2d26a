package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignupRequest is the signup form.
type SignupRequest struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

// validationMessage turns the first failed rule into text for a flash.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the form and try again."
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Email":
		return "Please enter a valid email address."
	case "Password":
		switch fe.Tag() {
		case "min":
			return "Password must be at least 8 characters long."
		case "max":
			return "Password must be at most 72 characters long."
		}
		return "Please enter your password."
	case "PasswordConfirm":
		return "Passwords do not match."
	default:
		return "Please check the form and try again."
	}
}
