package service

import (
	"context"
	"errors"
	"fmt"

	"hospital_management/internal/model"
	"hospital_management/internal/repository"
)

// PatientService defines operations for patients
type PatientService interface {
	CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]model.Patient, error)
	UpdatePatient(ctx context.Context, id int64, req model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService creates a new PatientService
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	dob, err := model.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, validationError("date_of_birth must be YYYY-MM-DD")
	}

	patient := &model.Patient{
		UserID:           req.UserID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient in repo: %w", err)
	}
	return patient, nil
}

func (s *patientService) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find patient by ID: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (s *patientService) ListPatients(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients from repo: %w", err)
	}
	return patients, nil
}

func (s *patientService) UpdatePatient(ctx context.Context, id int64, req model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	req.FirstName.Apply(&patient.FirstName)
	req.LastName.Apply(&patient.LastName)
	req.Gender.Apply(&patient.Gender)
	req.Phone.Apply(&patient.Phone)
	req.Address.Apply(&patient.Address)
	req.EmergencyContact.Apply(&patient.EmergencyContact)
	if req.DateOfBirth.Set {
		dob, err := model.ParseDate(req.DateOfBirth.Value)
		if err != nil {
			return nil, validationError("date_of_birth must be YYYY-MM-DD")
		}
		patient.DateOfBirth = dob
	}

	if err := requireNonEmpty(
		[2]string{"first_name", patient.FirstName},
		[2]string{"last_name", patient.LastName},
		[2]string{"gender", patient.Gender},
	); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to update patient in repo: %w", err)
	}
	return patient, nil
}

func (s *patientService) DeletePatient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("failed to delete patient in repo: %w", err)
	}
	return nil
}
