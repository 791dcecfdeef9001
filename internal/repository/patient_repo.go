package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital_management/internal/model"

	"github.com/jackc/pgx/v5"
)

// PatientRepository defines operations for patient data
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	FindByID(ctx context.Context, id int64) (*model.Patient, error)
	FindAll(ctx context.Context) ([]model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type patientRepository struct {
	db DBTX
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(db DBTX) PatientRepository {
	return &patientRepository{db: db}
}

// The linked user's email is part of the patient view
const patientSelect = `SELECT p.id, p.user_id, p.first_name, p.last_name, p.date_of_birth, p.gender,
            p.phone, p.address, p.emergency_contact, u.email
            FROM patients p LEFT JOIN users u ON u.id = p.user_id`

func scanPatient(row pgx.Row, p *model.Patient) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Phone, &p.Address, &p.EmergencyContact, &p.Email,
	)
}

// Create inserts a new patient into the database
func (r *patientRepository) Create(ctx context.Context, p *model.Patient) error {
	sql := `INSERT INTO patients (user_id, first_name, last_name, date_of_birth, gender, phone, address, emergency_contact)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, sql, p.UserID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone, p.Address, p.EmergencyContact).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// FindByID retrieves a patient by its ID
func (r *patientRepository) FindByID(ctx context.Context, id int64) (*model.Patient, error) {
	p := &model.Patient{}
	err := scanPatient(r.db.QueryRow(ctx, patientSelect+` WHERE p.id = $1`, id), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find patient by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves every patient
func (r *patientRepository) FindAll(ctx context.Context) ([]model.Patient, error) {
	rows, err := r.db.Query(ctx, patientSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	patients := []model.Patient{}
	for rows.Next() {
		var p model.Patient
		if err := scanPatient(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", err)
	}
	return patients, nil
}

// Update overwrites the mutable columns of an existing patient
func (r *patientRepository) Update(ctx context.Context, p *model.Patient) error {
	sql := `UPDATE patients
            SET first_name = $1, last_name = $2, date_of_birth = $3, gender = $4, phone = $5, address = $6, emergency_contact = $7
            WHERE id = $8`
	cmdTag, err := r.db.Exec(ctx, sql, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone, p.Address, p.EmergencyContact, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("patient %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a patient from the database
func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("patient %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of patients
func (r *patientRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return n, nil
}
