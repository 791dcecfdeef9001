package model

import "time"

// Appointment statuses. These are conventions only; any string is stored.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	// AppointmentInputLayout is the format clients send appointment_date in
	AppointmentInputLayout = "2006-01-02 15:04"
	// AppointmentOutputLayout is the format appointment_date is returned in
	AppointmentOutputLayout = "2006-01-02T15:04:05"
)

// Appointment ties a patient and a doctor to a time slot
type Appointment struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          *string   `json:"reason"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
}

// AppointmentView is the wire form of an appointment with the display names
// of the referenced patient and doctor. Listings scoped to one patient leave
// the patient fields out, and likewise for doctors.
type AppointmentView struct {
	ID              int64   `json:"id"`
	PatientID       *int64  `json:"patient_id,omitempty"`
	PatientName     *string `json:"patient_name,omitempty"`
	DoctorID        *int64  `json:"doctor_id,omitempty"`
	DoctorName      *string `json:"doctor_name,omitempty"`
	AppointmentDate string  `json:"appointment_date"`
	Reason          *string `json:"reason"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

// NewAppointmentView builds the view without any embedded names
func NewAppointmentView(a *Appointment) AppointmentView {
	return AppointmentView{
		ID:              a.ID,
		AppointmentDate: a.AppointmentDate.Format(AppointmentOutputLayout),
		Reason:          a.Reason,
		Status:          a.Status,
		Notes:           a.Notes,
	}
}

// WithPatient embeds the patient reference and display name
func (v AppointmentView) WithPatient(p *Patient) AppointmentView {
	id, name := p.ID, p.FullName()
	v.PatientID = &id
	v.PatientName = &name
	return v
}

// WithDoctor embeds the doctor reference and display name
func (v AppointmentView) WithDoctor(d *Doctor) AppointmentView {
	id, name := d.ID, d.FullName()
	v.DoctorID = &id
	v.DoctorName = &name
	return v
}

// CreateAppointmentRequest is used for booking an appointment
type CreateAppointmentRequest struct {
	PatientID       *int64  `json:"patient_id" binding:"required"`
	DoctorID        *int64  `json:"doctor_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"` // YYYY-MM-DD HH:MM
	Reason          *string `json:"reason"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

// UpdateAppointmentRequest only changes the keys present in the body
type UpdateAppointmentRequest struct {
	AppointmentDate Optional[string]  `json:"appointment_date"`
	Reason          Optional[*string] `json:"reason"`
	Status          Optional[string]  `json:"status"`
	Notes           Optional[*string] `json:"notes"`
}

// ParseAppointmentDate parses the client appointment_date format
func ParseAppointmentDate(s string) (time.Time, error) {
	return time.Parse(AppointmentInputLayout, s)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
