package model

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for calendar dates such as date_of_birth
const DateLayout = "2006-01-02"

// Patient represents a patient record
type Patient struct {
	ID               int64     `json:"id"`
	UserID           *int64    `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	EmergencyContact *string   `json:"emergency_contact"`
	Email            *string   `json:"email"` // Resolved from the linked user, read-only
}

// FullName is the display name embedded in appointment views
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Patient) MarshalJSON() ([]byte, error) {
	type alias Patient
	return json.Marshal(struct {
		alias
		DateOfBirth string `json:"date_of_birth"`
	}{
		alias:       alias(p),
		DateOfBirth: p.DateOfBirth.Format(DateLayout),
	})
}

// CreatePatientRequest is used for creating a new patient
type CreatePatientRequest struct {
	UserID           *int64  `json:"user_id"`
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         string  `json:"last_name" binding:"required"`
	DateOfBirth      string  `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	Gender           string  `json:"gender" binding:"required"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
}

// UpdatePatientRequest only changes the keys present in the body
type UpdatePatientRequest struct {
	FirstName        Optional[string]  `json:"first_name"`
	LastName         Optional[string]  `json:"last_name"`
	DateOfBirth      Optional[string]  `json:"date_of_birth"`
	Gender           Optional[string]  `json:"gender"`
	Phone            Optional[*string] `json:"phone"`
	Address          Optional[*string] `json:"address"`
	EmergencyContact Optional[*string] `json:"emergency_contact"`
}
