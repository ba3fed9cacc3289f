package auth

import (
	"github.com/daymentor/mentor-backend/internal/domain"
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	FirstName       string
	LastName        string
	MentorStyle     string
	MentorIntensity *int
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 80 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}

	if i.MentorStyle != "" && !domain.MentorStyle(i.MentorStyle).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mentor_style", Message: "must be one of strict, gentle, balanced, hilarious"})
	}

	if i.MentorIntensity != nil && (*i.MentorIntensity < 1 || *i.MentorIntensity > 10) {
		errs = append(errs, domain.FieldError{Field: "mentor_intensity", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds parameters for profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName       *string
	LastName        *string
	Bio             *string
	Goals           *string
	MentorStyle     *string
	MentorIntensity *int
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.MentorStyle != nil && !domain.MentorStyle(*i.MentorStyle).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mentor_style", Message: "must be one of strict, gentle, balanced, hilarious"})
	}
	if i.MentorIntensity != nil && (*i.MentorIntensity < 1 || *i.MentorIntensity > 10) {
		errs = append(errs, domain.FieldError{Field: "mentor_intensity", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
