package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital_management/internal/model"

	"github.com/jackc/pgx/v5"
)

// DoctorRepository defines operations for doctor data
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	FindByID(ctx context.Context, id int64) (*model.Doctor, error)
	FindAll(ctx context.Context) ([]model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type doctorRepository struct {
	db DBTX
}

// NewDoctorRepository creates a new DoctorRepository
func NewDoctorRepository(db DBTX) DoctorRepository {
	return &doctorRepository{db: db}
}

const doctorSelect = `SELECT id, user_id, first_name, last_name, specialization, license_number, phone, email FROM doctors`

func scanDoctor(row pgx.Row, d *model.Doctor) error {
	return row.Scan(&d.ID, &d.UserID, &d.FirstName, &d.LastName, &d.Specialization, &d.LicenseNumber, &d.Phone, &d.Email)
}

// Create inserts a new doctor into the database
func (r *doctorRepository) Create(ctx context.Context, d *model.Doctor) error {
	sql := `INSERT INTO doctors (user_id, first_name, last_name, specialization, license_number, phone, email)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, sql, d.UserID, d.FirstName, d.LastName, d.Specialization, d.LicenseNumber, d.Phone, d.Email).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// FindByID retrieves a doctor by its ID
func (r *doctorRepository) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	d := &model.Doctor{}
	if err := scanDoctor(r.db.QueryRow(ctx, doctorSelect+` WHERE id = $1`, id), d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find doctor by ID: %w", err)
	}
	return d, nil
}

// FindAll retrieves every doctor
func (r *doctorRepository) FindAll(ctx context.Context) ([]model.Doctor, error) {
	rows, err := r.db.Query(ctx, doctorSelect+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	doctors := []model.Doctor{}
	for rows.Next() {
		var d model.Doctor
		if err := scanDoctor(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan doctor row: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctor rows: %w", err)
	}
	return doctors, nil
}

// Update overwrites the mutable columns of an existing doctor
func (r *doctorRepository) Update(ctx context.Context, d *model.Doctor) error {
	sql := `UPDATE doctors
            SET first_name = $1, last_name = $2, specialization = $3, license_number = $4, phone = $5, email = $6
            WHERE id = $7`
	cmdTag, err := r.db.Exec(ctx, sql, d.FirstName, d.LastName, d.Specialization, d.LicenseNumber, d.Phone, d.Email, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("doctor %d: %w", d.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a doctor from the database
func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("doctor %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of doctors
func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return n, nil
}
