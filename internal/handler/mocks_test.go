package handler

import (
	"context"

	"hospital_management/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockPatientService struct{ mock.Mock }

func (m *mockPatientService) CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*model.Patient)
	return p, args.Error(1)
}

func (m *mockPatientService) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Patient)
	return p, args.Error(1)
}

func (m *mockPatientService) ListPatients(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Patient)
	return ps, args.Error(1)
}

func (m *mockPatientService) UpdatePatient(ctx context.Context, id int64, req model.UpdatePatientRequest) (*model.Patient, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*model.Patient)
	return p, args.Error(1)
}

func (m *mockPatientService) DeletePatient(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockDoctorService struct{ mock.Mock }

func (m *mockDoctorService) CreateDoctor(ctx context.Context, req model.CreateDoctorRequest) (*model.Doctor, error) {
	args := m.Called(ctx, req)
	d, _ := args.Get(0).(*model.Doctor)
	return d, args.Error(1)
}

func (m *mockDoctorService) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.Doctor)
	return d, args.Error(1)
}

func (m *mockDoctorService) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]model.Doctor)
	return ds, args.Error(1)
}

func (m *mockDoctorService) UpdateDoctor(ctx context.Context, id int64, req model.UpdateDoctorRequest) (*model.Doctor, error) {
	args := m.Called(ctx, id, req)
	d, _ := args.Get(0).(*model.Doctor)
	return d, args.Error(1)
}

func (m *mockDoctorService) DeleteDoctor(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAppointmentService struct{ mock.Mock }

func (m *mockAppointmentService) CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*model.Appointment)
	return a, args.Error(1)
}

func (m *mockAppointmentService) GetAppointment(ctx context.Context, id int64) (*model.AppointmentView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.AppointmentView)
	return v, args.Error(1)
}

func (m *mockAppointmentService) ListAppointments(ctx context.Context) ([]model.AppointmentView, error) {
	args := m.Called(ctx)
	vs, _ := args.Get(0).([]model.AppointmentView)
	return vs, args.Error(1)
}

func (m *mockAppointmentService) ListPatientAppointments(ctx context.Context, patientID int64) ([]model.AppointmentView, error) {
	args := m.Called(ctx, patientID)
	vs, _ := args.Get(0).([]model.AppointmentView)
	return vs, args.Error(1)
}

func (m *mockAppointmentService) ListDoctorAppointments(ctx context.Context, doctorID int64) ([]model.AppointmentView, error) {
	args := m.Called(ctx, doctorID)
	vs, _ := args.Get(0).([]model.AppointmentView)
	return vs, args.Error(1)
}

func (m *mockAppointmentService) UpdateAppointment(ctx context.Context, id int64, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	args := m.Called(ctx, id, req)
	a, _ := args.Get(0).(*model.Appointment)
	return a, args.Error(1)
}

func (m *mockAppointmentService) DeleteAppointment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
