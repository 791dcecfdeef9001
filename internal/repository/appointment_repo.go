package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital_management/internal/model"

	"github.com/jackc/pgx/v5"
)

// AppointmentFilters narrows an appointment listing. Nil fields do not filter.
type AppointmentFilters struct {
	PatientID *int64
	DoctorID  *int64
}

// AppointmentRepository defines operations for appointment data
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id int64) (*model.Appointment, error)
	FindAll(ctx context.Context, filters AppointmentFilters) ([]model.Appointment, error)
	FindByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type appointmentRepository struct {
	db DBTX
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DBTX) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentSelect = `SELECT a.id, a.patient_id, a.doctor_id, a.appointment_date, a.reason, a.status, a.notes
                           FROM appointments a`

func scanAppointment(row pgx.Row, a *model.Appointment) error {
	return row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate, &a.Reason, &a.Status, &a.Notes)
}

// Create inserts a new appointment. Patient and doctor ids are stored as given.
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	sql := `INSERT INTO appointments (patient_id, doctor_id, appointment_date, reason, status, notes)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, a.PatientID, a.DoctorID, a.AppointmentDate, a.Reason, a.Status, a.Notes).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// FindByID retrieves an appointment by its ID
func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*model.Appointment, error) {
	a := &model.Appointment{}
	if err := scanAppointment(r.db.QueryRow(ctx, appointmentSelect+` WHERE a.id = $1`, id), a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}
	return a, nil
}

// FindAll retrieves appointments with optional filters
func (r *appointmentRepository) FindAll(ctx context.Context, filters AppointmentFilters) ([]model.Appointment, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(appointmentSelect)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.PatientID != nil {
		conditions = append(conditions, fmt.Sprintf("a.patient_id = $%d", argCount))
		args = append(args, *filters.PatientID)
		argCount++
	}
	if filters.DoctorID != nil {
		conditions = append(conditions, fmt.Sprintf("a.doctor_id = $%d", argCount))
		args = append(args, *filters.DoctorID)
		//argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY a.id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	appointments := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}

// FindByPatient retrieves the appointments booked for one patient
func (r *appointmentRepository) FindByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error) {
	return r.FindAll(ctx, AppointmentFilters{PatientID: &patientID})
}

// FindByDoctor retrieves the appointments booked with one doctor
func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	return r.FindAll(ctx, AppointmentFilters{DoctorID: &doctorID})
}

// Update overwrites the mutable columns of an existing appointment
func (r *appointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	sql := `UPDATE appointments
            SET appointment_date = $1, reason = $2, status = $3, notes = $4
            WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, a.AppointmentDate, a.Reason, a.Status, a.Notes, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %d: %w", a.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an appointment from the database
func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of appointments
func (r *appointmentRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return n, nil
}
