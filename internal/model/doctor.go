package model

// Doctor represents a doctor record
type Doctor struct {
	ID             int64   `json:"id"`
	UserID         *int64  `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Specialization string  `json:"specialization"`
	LicenseNumber  string  `json:"license_number"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
}

// FullName is the display name embedded in appointment views
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// CreateDoctorRequest is used for creating a new doctor
type CreateDoctorRequest struct {
	UserID         *int64  `json:"user_id"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Specialization string  `json:"specialization" binding:"required"`
	LicenseNumber  string  `json:"license_number" binding:"required"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
}

// UpdateDoctorRequest only changes the keys present in the body
type UpdateDoctorRequest struct {
	FirstName      Optional[string]  `json:"first_name"`
	LastName       Optional[string]  `json:"last_name"`
	Specialization Optional[string]  `json:"specialization"`
	LicenseNumber  Optional[string]  `json:"license_number"`
	Phone          Optional[*string] `json:"phone"`
	Email          Optional[*string] `json:"email"`
}
