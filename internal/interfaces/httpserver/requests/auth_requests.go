package requests

import (
	"net/mail"
	"strings"
	"unicode"

	"foodatlas-server/internal/interfaces/httpserver/responses"
)

// RegisterRequest carries the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the registration field constraints and returns one message
// per invalid field.
func (r *RegisterRequest) Validate() []responses.FieldError {
	var errs []responses.FieldError

	r.Username = strings.TrimSpace(r.Username)
	switch {
	case r.Username == "":
		errs = append(errs, responses.FieldError{Field: "username", Message: "Username is required"})
	case len(r.Username) < 3 || len(r.Username) > 20:
		errs = append(errs, responses.FieldError{Field: "username", Message: "Username must be between 3 and 20 characters"})
	}

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	switch {
	case r.Email == "":
		errs = append(errs, responses.FieldError{Field: "email", Message: "Email is required"})
	case !validEmail(r.Email):
		errs = append(errs, responses.FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	switch {
	case r.Password == "":
		errs = append(errs, responses.FieldError{Field: "password", Message: "Password is required"})
	case len(r.Password) < 6:
		errs = append(errs, responses.FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	case !containsDigit(r.Password):
		errs = append(errs, responses.FieldError{Field: "password", Message: "Password must contain at least one number"})
	}

	return errs
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the login field constraints.
func (r *LoginRequest) Validate() []responses.FieldError {
	var errs []responses.FieldError

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	switch {
	case r.Email == "":
		errs = append(errs, responses.FieldError{Field: "email", Message: "Email is required"})
	case !validEmail(r.Email):
		errs = append(errs, responses.FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	if r.Password == "" {
		errs = append(errs, responses.FieldError{Field: "password", Message: "Password is required"})
	}

	return errs
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
