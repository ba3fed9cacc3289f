package routine

import (
	"github.com/daymentor/mentor-backend/internal/domain"
)

// CreateInput holds parameters for creating a routine. Zero values for
// optional fields are replaced with defaults before persisting.
type CreateInput struct {
	Name           string
	Description    string
	Category       string
	Frequency      string
	TargetDuration *int
	ScheduledTime  *string
	Priority       *int
	Difficulty     *int
}

// Validate validates the creation input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.TargetDuration != nil && *i.TargetDuration < 1 {
		errs = append(errs, domain.FieldError{Field: "target_duration", Message: "must be positive"})
	}
	if i.Priority != nil && (*i.Priority < 1 || *i.Priority > 10) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 1 and 10"})
	}
	if i.Difficulty != nil && (*i.Difficulty < 1 || *i.Difficulty > 10) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be between 1 and 10"})
	}
	if i.ScheduledTime != nil && !validClock(*i.ScheduledTime) {
		errs = append(errs, domain.FieldError{Field: "scheduled_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a routine.
// Nil fields are left unchanged.
type UpdateInput struct {
	Name           *string
	Description    *string
	Category       *string
	Frequency      *string
	TargetDuration *int
	ScheduledTime  *string
	Priority       *int
	Difficulty     *int
	IsActive       *bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.TargetDuration != nil && *i.TargetDuration < 1 {
		errs = append(errs, domain.FieldError{Field: "target_duration", Message: "must be positive"})
	}
	if i.Priority != nil && (*i.Priority < 1 || *i.Priority > 10) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 1 and 10"})
	}
	if i.Difficulty != nil && (*i.Difficulty < 1 || *i.Difficulty > 10) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be between 1 and 10"})
	}
	if i.ScheduledTime != nil && !validClock(*i.ScheduledTime) {
		errs = append(errs, domain.FieldError{Field: "scheduled_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateInput holds the free-text answers driving routine generation.
type GenerateInput struct {
	Goals            string
	Challenges       string
	UnavailableTimes string
	DesiredRoutines  string
}

// validClock reports whether s is a 24-hour "HH:MM" clock value.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h < 24 && m < 60
}
