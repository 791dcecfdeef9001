package service

import (
	"context"
	"fmt"
	"sort"

	"hospital_management/internal/model"
	"hospital_management/internal/repository"
)

// -- In-memory repositories --

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range m.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int, error) {
	return len(m.users), nil
}

type mockPatientRepo struct {
	patients map[int64]*model.Patient
	nextID   int64
	lookups  int
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[int64]*model.Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *model.Patient) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockPatientRepo) FindByID(_ context.Context, id int64) (*model.Patient, error) {
	m.lookups++
	p, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockPatientRepo) FindAll(_ context.Context) ([]model.Patient, error) {
	result := []model.Patient{}
	for _, p := range m.patients {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *model.Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.patients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) Count(_ context.Context) (int, error) {
	return len(m.patients), nil
}

type mockDoctorRepo struct {
	doctors map[int64]*model.Doctor
	nextID  int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*model.Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	m.nextID++
	d.ID = m.nextID
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id int64) (*model.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]model.Doctor, error) {
	result := []model.Doctor{}
	for _, d := range m.doctors {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *model.Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.doctors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) Count(_ context.Context) (int, error) {
	return len(m.doctors), nil
}

type mockAppointmentRepo struct {
	appointments map[int64]*model.Appointment
	nextID       int64
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*model.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ context.Context, id int64) (*model.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *mockAppointmentRepo) FindAll(_ context.Context, filters repository.AppointmentFilters) ([]model.Appointment, error) {
	result := []model.Appointment{}
	for _, a := range m.appointments {
		if filters.PatientID != nil && a.PatientID != *filters.PatientID {
			continue
		}
		if filters.DoctorID != nil && a.DoctorID != *filters.DoctorID {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAppointmentRepo) FindByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error) {
	return m.FindAll(ctx, repository.AppointmentFilters{PatientID: &patientID})
}

func (m *mockAppointmentRepo) FindByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	return m.FindAll(ctx, repository.AppointmentFilters{DoctorID: &doctorID})
}

func (m *mockAppointmentRepo) Update(_ context.Context, a *model.Appointment) error {
	if _, ok := m.appointments[a.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *mockAppointmentRepo) Count(_ context.Context) (int, error) {
	return len(m.appointments), nil
}

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }
