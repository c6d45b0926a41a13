package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a recipient as accepted by the recipient form.
type Gender string

// Supported genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Budget is the spend range for a gift, in dollars.
type Budget struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Recipient is the profile of a person a user is shopping for.
// The suggestion pipeline reads it and never mutates it.
type Recipient struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Gender       Gender    `json:"gender"`
	Relationship string    `json:"relationship"`
	Interests    []string  `json:"interests"`
	Occasion     string    `json:"occasion"`
	Budget       Budget    `json:"budget"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewRecipient creates a Recipient owned by userID from the given profile fields
// and validates it.
func NewRecipient(userID uuid.UUID, profile Recipient) (*Recipient, error) {
	r := profile
	r.ID = uuid.New()
	r.UserID = userID
	r.CreatedAt = time.Now().UTC()
	if r.Interests == nil {
		r.Interests = []string{}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the recipient's required fields and budget invariant.
func (r *Recipient) Validate() error {
	if r.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if r.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrEmptyUserID)
	}
	if r.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if r.Age < 0 {
		return NewValidationError("age", "cannot be negative", ErrValidation)
	}
	switch r.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return NewValidationError("gender", "must be one of male, female, other", ErrValidation)
	}
	if r.Relationship == "" {
		return NewValidationError("relationship", "cannot be empty", ErrValidation)
	}
	if r.Occasion == "" {
		return NewValidationError("occasion", "cannot be empty", ErrValidation)
	}
	if r.Budget.Min < 0 || r.Budget.Max < 0 {
		return NewValidationError("budget", "cannot be negative", ErrValidation)
	}
	if r.Budget.Min > r.Budget.Max {
		return NewValidationError("budget", "min cannot exceed max", ErrValidation)
	}
	return nil
}
