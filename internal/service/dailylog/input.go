package dailylog

import (
	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// CreateLogInput holds parameters for creating a daily log. LogDate is a
// "YYYY-MM-DD" string; empty means today.
type CreateLogInput struct {
	LogDate     string
	Mood        *int
	EnergyLevel *int
	StressLevel *int
	Notes       string
	Highlights  string
	Challenges  string
}

// Validate validates the log creation input.
func (i CreateLogInput) Validate() error {
	errs := scaleErrors(i.Mood, i.EnergyLevel, i.StressLevel)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLogInput holds parameters for updating a daily log.
// Nil fields are left unchanged.
type UpdateLogInput struct {
	Mood        *int
	EnergyLevel *int
	StressLevel *int
	Notes       *string
	Highlights  *string
	Challenges  *string
}

// Validate validates the log update input.
func (i UpdateLogInput) Validate() error {
	errs := scaleErrors(i.Mood, i.EnergyLevel, i.StressLevel)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateEntryInput holds parameters for attaching a routine entry to a log.
type CreateEntryInput struct {
	RoutineID            uuid.UUID
	Status               string
	CompletionPercentage *int
	ActualDuration       *int
	DifficultyFelt       *int
	Notes                string
}

// Validate validates the entry creation input.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.RoutineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "routine_id", Message: "required"})
	}
	if i.Status != "" && !domain.EntryStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of completed, partial, skipped, not_done"})
	}
	if i.CompletionPercentage != nil && (*i.CompletionPercentage < 0 || *i.CompletionPercentage > 100) {
		errs = append(errs, domain.FieldError{Field: "completion_percentage", Message: "must be between 0 and 100"})
	}
	if i.DifficultyFelt != nil && (*i.DifficultyFelt < 1 || *i.DifficultyFelt > 10) {
		errs = append(errs, domain.FieldError{Field: "difficulty_felt", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds parameters for updating a routine entry.
// Nil fields are left unchanged.
type UpdateEntryInput struct {
	Status               *string
	CompletionPercentage *int
	ActualDuration       *int
	DifficultyFelt       *int
	Notes                *string
}

// Validate validates the entry update input.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !domain.EntryStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of completed, partial, skipped, not_done"})
	}
	if i.CompletionPercentage != nil && (*i.CompletionPercentage < 0 || *i.CompletionPercentage > 100) {
		errs = append(errs, domain.FieldError{Field: "completion_percentage", Message: "must be between 0 and 100"})
	}
	if i.DifficultyFelt != nil && (*i.DifficultyFelt < 1 || *i.DifficultyFelt > 10) {
		errs = append(errs, domain.FieldError{Field: "difficulty_felt", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// scaleErrors validates nil-able 1-10 scale ratings shared by log inputs.
func scaleErrors(mood, energy, stress *int) []domain.FieldError {
	var errs []domain.FieldError
	check := func(v *int, field string) {
		if v != nil && (*v < 1 || *v > 10) {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be between 1 and 10"})
		}
	}
	check(mood, "mood")
	check(energy, "energy_level")
	check(stress, "stress_level")
	return errs
}
