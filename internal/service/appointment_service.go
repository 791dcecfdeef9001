package service

import (
	"context"
	"errors"
	"fmt"

	"hospital_management/internal/model"
	"hospital_management/internal/repository"
)

// AppointmentService defines operations for appointments. Bookings are not
// checked for overlaps, and patient/doctor ids are not checked on create.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*model.AppointmentView, error)
	ListAppointments(ctx context.Context) ([]model.AppointmentView, error)
	ListPatientAppointments(ctx context.Context, patientID int64) ([]model.AppointmentView, error)
	ListDoctorAppointments(ctx context.Context, doctorID int64) ([]model.AppointmentView, error)
	UpdateAppointment(ctx context.Context, id int64, req model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentService struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo repository.AppointmentRepository, patients repository.PatientRepository, doctors repository.DoctorRepository) AppointmentService {
	return &appointmentService{repo: repo, patients: patients, doctors: doctors}
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	if req.PatientID == nil || req.DoctorID == nil {
		return nil, validationError("patient_id and doctor_id are required")
	}
	when, err := model.ParseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, validationError("appointment_date must be YYYY-MM-DD HH:MM")
	}

	status := model.AppointmentStatusScheduled
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	appointment := &model.Appointment{
		PatientID:       *req.PatientID,
		DoctorID:        *req.DoctorID,
		AppointmentDate: when,
		Reason:          req.Reason,
		Status:          status,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment in repo: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) GetAppointment(ctx context.Context, id int64) (*model.AppointmentView, error) {
	appointment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.newLookup().views(ctx, []model.Appointment{*appointment}, true, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *appointmentService) ListAppointments(ctx context.Context) ([]model.AppointmentView, error) {
	appointments, err := s.repo.FindAll(ctx, repository.AppointmentFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments from repo: %w", err)
	}
	return s.newLookup().views(ctx, appointments, true, true)
}

// ListPatientAppointments returns a patient's appointments with the doctor
// name embedded and the patient fields left out
func (s *appointmentService) ListPatientAppointments(ctx context.Context, patientID int64) ([]model.AppointmentView, error) {
	appointments, err := s.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments from repo: %w", err)
	}
	return s.newLookup().views(ctx, appointments, false, true)
}

// ListDoctorAppointments returns a doctor's appointments with the patient
// name embedded and the doctor fields left out
func (s *appointmentService) ListDoctorAppointments(ctx context.Context, doctorID int64) ([]model.AppointmentView, error) {
	appointments, err := s.repo.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments from repo: %w", err)
	}
	return s.newLookup().views(ctx, appointments, true, false)
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, id int64, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AppointmentDate.Set {
		when, err := model.ParseAppointmentDate(req.AppointmentDate.Value)
		if err != nil {
			return nil, validationError("appointment_date must be YYYY-MM-DD HH:MM")
		}
		appointment.AppointmentDate = when
	}
	if req.Status.Set && req.Status.Value == "" {
		return nil, validationError("status must not be empty")
	}
	req.Reason.Apply(&appointment.Reason)
	req.Status.Apply(&appointment.Status)
	req.Notes.Apply(&appointment.Notes)

	if err := s.repo.Update(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment in repo: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to delete appointment in repo: %w", err)
	}
	return nil
}

func (s *appointmentService) find(ctx context.Context, id int64) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (s *appointmentService) newLookup() *participantLookup {
	return &participantLookup{
		patients:     s.patients,
		doctors:      s.doctors,
		patientCache: make(map[int64]*model.Patient),
		doctorCache:  make(map[int64]*model.Doctor),
	}
}

// participantLookup resolves the patient and doctor an appointment points
// at. Results are memoised for the lifetime of one call.
type participantLookup struct {
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	patientCache map[int64]*model.Patient
	doctorCache  map[int64]*model.Doctor
}

func (l *participantLookup) patient(ctx context.Context, id int64) (*model.Patient, error) {
	if p, ok := l.patientCache[id]; ok {
		return p, nil
	}
	p, err := l.patients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient %d: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: patient %d", ErrDanglingReference, id)
	}
	l.patientCache[id] = p
	return p, nil
}

func (l *participantLookup) doctor(ctx context.Context, id int64) (*model.Doctor, error) {
	if d, ok := l.doctorCache[id]; ok {
		return d, nil
	}
	d, err := l.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor %d: %w", id, err)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: doctor %d", ErrDanglingReference, id)
	}
	l.doctorCache[id] = d
	return d, nil
}

// views composes one view per appointment. Either every appointment
// resolves or the whole call fails.
func (l *participantLookup) views(ctx context.Context, appointments []model.Appointment, withPatient, withDoctor bool) ([]model.AppointmentView, error) {
	views := make([]model.AppointmentView, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		view := model.NewAppointmentView(a)
		if withPatient {
			p, err := l.patient(ctx, a.PatientID)
			if err != nil {
				return nil, fmt.Errorf("appointment %d: %w", a.ID, err)
			}
			view = view.WithPatient(p)
		}
		if withDoctor {
			d, err := l.doctor(ctx, a.DoctorID)
			if err != nil {
				return nil, fmt.Errorf("appointment %d: %w", a.ID, err)
			}
			view = view.WithDoctor(d)
		}
		views = append(views, view)
	}
	return views, nil
}
