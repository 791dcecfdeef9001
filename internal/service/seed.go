package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"hospital_management/internal/model"
	"hospital_management/internal/repository"
	"hospital_management/internal/utils"

	"github.com/rs/zerolog"
)

const seedAppointmentCount = 20

var (
	seedUsers = []model.RegisterRequest{
		{Username: "john_doe", Email: "john@example.com", Role: model.RolePatient},
		{Username: "jane_smith", Email: "jane@example.com", Role: model.RolePatient},
		{Username: "bob_wilson", Email: "bob@example.com", Role: model.RolePatient},
		{Username: "dr_brown", Email: "brown@example.com", Role: model.RoleDoctor},
		{Username: "dr_davis", Email: "davis@example.com", Role: model.RoleDoctor},
	}
	seedReasons = []string{
		"Regular checkup", "Chest pain", "Headache", "Fever",
		"Back pain", "Annual physical", "Follow-up visit", "Urgent consultation",
	}
	seedStatuses = []string{
		model.AppointmentStatusScheduled,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	}
)

// SeedResult reports the row counts after seeding
type SeedResult struct {
	Skipped      bool
	Users        int
	Patients     int
	Doctors      int
	Appointments int
}

// Seeder fills an empty database with sample users, patients, doctors and
// appointments. It does nothing once any appointment exists.
type Seeder struct {
	users        repository.UserRepository
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	password     string
	rng          *rand.Rand
	now          func() time.Time
}

// NewSeeder creates a Seeder. Sample users get password as their password.
func NewSeeder(users repository.UserRepository, patients repository.PatientRepository, doctors repository.DoctorRepository, appointments repository.AppointmentRepository, password string) *Seeder {
	return &Seeder{
		users:        users,
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		password:     password,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}
}

// Seed inserts the sample data
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	log := zerolog.Ctx(ctx)

	n, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		log.Info().Int("appointments", n).Msg("sample data already exists")
		return s.result(ctx, true)
	}

	users, err := s.seedUsers(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.seedPatients(ctx, users[:3])
	if err != nil {
		return nil, err
	}
	doctors, err := s.seedDoctors(ctx, users[3:5])
	if err != nil {
		return nil, err
	}
	if err := s.seedAppointments(ctx, patients, doctors); err != nil {
		return nil, err
	}

	res, err := s.result(ctx, false)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("patients", res.Patients).
		Int("doctors", res.Doctors).
		Int("appointments", res.Appointments).
		Msg("sample data added")
	return res, nil
}

// seedUsers creates the sample accounts, reusing any that already exist
func (s *Seeder) seedUsers(ctx context.Context) ([]*model.User, error) {
	hash, err := utils.HashPassword(s.password)
	if err != nil {
		return nil, err
	}
	users := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := s.users.FindByUsername(ctx, su.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			users = append(users, existing)
			continue
		}
		u := &model.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: hash,
			Role:         su.Role,
			CreatedAt:    s.now(),
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", su.Username, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) seedPatients(ctx context.Context, users []*model.User) ([]model.Patient, error) {
	existing, err := s.patients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) >= 3 {
		return existing, nil
	}

	firstNames := []string{"John", "Jane", "Bob"}
	lastNames := []string{"Doe", "Smith", "Wilson"}
	genders := []string{"Male", "Female", "Male"}
	for i, u := range users {
		userID := u.ID
		phone := fmt.Sprintf("555-010%d", i+1)
		address := fmt.Sprintf("%d Main St, City, State", i+100)
		contact := fmt.Sprintf("Emergency Contact %d: 555-999%d", i+1, i+1)
		p := &model.Patient{
			UserID:           &userID,
			FirstName:        firstNames[i],
			LastName:         lastNames[i],
			DateOfBirth:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*365),
			Gender:           genders[i],
			Phone:            &phone,
			Address:          &address,
			EmergencyContact: &contact,
		}
		if err := s.patients.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed patient %s: %w", p.FullName(), err)
		}
	}
	return s.patients.FindAll(ctx)
}

func (s *Seeder) seedDoctors(ctx context.Context, users []*model.User) ([]model.Doctor, error) {
	existing, err := s.doctors.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) >= 2 {
		return existing, nil
	}

	firstNames := []string{"Michael", "Sarah"}
	lastNames := []string{"Brown", "Davis"}
	specializations := []string{"Cardiology", "General Medicine"}
	for i, u := range users {
		userID := u.ID
		phone := fmt.Sprintf("555-020%d", i+1)
		email := fmt.Sprintf("dr.%s@hospital.com", []string{"brown", "davis"}[i])
		d := &model.Doctor{
			UserID:         &userID,
			FirstName:      firstNames[i],
			LastName:       lastNames[i],
			Specialization: specializations[i],
			LicenseNumber:  fmt.Sprintf("LICENSE-%d", 1000+i),
			Phone:          &phone,
			Email:          &email,
		}
		if err := s.doctors.Create(ctx, d); err != nil {
			return nil, fmt.Errorf("seed doctor %s: %w", d.FullName(), err)
		}
	}
	return s.doctors.FindAll(ctx)
}

// seedAppointments books appointments between five days ago and thirty days
// ahead, on the hour or half hour between 09:00 and 17:30
func (s *Seeder) seedAppointments(ctx context.Context, patients []model.Patient, doctors []model.Doctor) error {
	if len(patients) == 0 || len(doctors) == 0 {
		return nil
	}
	today := s.now()
	for i := 0; i < seedAppointmentCount; i++ {
		day := today.AddDate(0, 0, s.rng.Intn(36)-5)
		when := time.Date(day.Year(), day.Month(), day.Day(), 9+s.rng.Intn(9), 30*s.rng.Intn(2), 0, 0, time.UTC)
		reason := seedReasons[s.rng.Intn(len(seedReasons))]
		notes := fmt.Sprintf("Patient notes for appointment %d", i+1)
		a := &model.Appointment{
			PatientID:       patients[s.rng.Intn(len(patients))].ID,
			DoctorID:        doctors[s.rng.Intn(len(doctors))].ID,
			AppointmentDate: when,
			Reason:          &reason,
			Status:          seedStatuses[s.rng.Intn(len(seedStatuses))],
			Notes:           &notes,
		}
		if err := s.appointments.Create(ctx, a); err != nil {
			return fmt.Errorf("seed appointment %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Seeder) result(ctx context.Context, skipped bool) (*SeedResult, error) {
	res := &SeedResult{Skipped: skipped}
	var err error
	if res.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if res.Patients, err = s.patients.Count(ctx); err != nil {
		return nil, err
	}
	if res.Doctors, err = s.doctors.Count(ctx); err != nil {
		return nil, err
	}
	if res.Appointments, err = s.appointments.Count(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
