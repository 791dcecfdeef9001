package service

import (
	"context"
	"errors"
	"fmt"

	"hospital_management/internal/model"
	"hospital_management/internal/repository"
)

// DoctorService defines operations for doctors
type DoctorService interface {
	CreateDoctor(ctx context.Context, req model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	UpdateDoctor(ctx context.Context, id int64, req model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error
}

type doctorService struct {
	repo repository.DoctorRepository
}

// NewDoctorService creates a new DoctorService
func NewDoctorService(repo repository.DoctorRepository) DoctorService {
	return &doctorService{repo: repo}
}

func (s *doctorService) CreateDoctor(ctx context.Context, req model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		UserID:         req.UserID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		Phone:          req.Phone,
		Email:          req.Email,
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor in repo: %w", err)
	}
	return doctor, nil
}

func (s *doctorService) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find doctor by ID: %w", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (s *doctorService) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	doctors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors from repo: %w", err)
	}
	return doctors, nil
}

func (s *doctorService) UpdateDoctor(ctx context.Context, id int64, req model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	req.FirstName.Apply(&doctor.FirstName)
	req.LastName.Apply(&doctor.LastName)
	req.Specialization.Apply(&doctor.Specialization)
	req.LicenseNumber.Apply(&doctor.LicenseNumber)
	req.Phone.Apply(&doctor.Phone)
	req.Email.Apply(&doctor.Email)

	if err := requireNonEmpty(
		[2]string{"first_name", doctor.FirstName},
		[2]string{"last_name", doctor.LastName},
		[2]string{"specialization", doctor.Specialization},
		[2]string{"license_number", doctor.LicenseNumber},
	); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to update doctor in repo: %w", err)
	}
	return doctor, nil
}

func (s *doctorService) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to delete doctor in repo: %w", err)
	}
	return nil
}
