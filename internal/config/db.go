package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ConnectDB establishes a connection pool to PostgreSQL, retrying while the
// database comes up
func ConnectDB(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	log := zerolog.Ctx(ctx)

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.DBMaxConns
	poolCfg.MinConns = cfg.DBMinConns

	for i := 0; i < cfg.DBConnectRetries; i++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().Msg("Successfully connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).
			Int("attempt", i+1).
			Int("max_attempts", cfg.DBConnectRetries).
			Dur("retry_in", cfg.DBConnectRetryPeriod).
			Msg("Failed to connect to database")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBConnectRetryPeriod):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", cfg.DBConnectRetries, err)
}

// Appointments carry no foreign keys: ids are stored as given and a missing
// patient or doctor is reported when the appointment is read.
const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(80) UNIQUE NOT NULL,
		email VARCHAR(120) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role VARCHAR(20) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		date_of_birth DATE NOT NULL,
		gender VARCHAR(10) NOT NULL,
		phone VARCHAR(20),
		address TEXT,
		emergency_contact VARCHAR(100)
	);

	CREATE TABLE IF NOT EXISTS doctors (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		specialization VARCHAR(100) NOT NULL,
		license_number VARCHAR(50) NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(120)
	);

	CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL,
		doctor_id BIGINT NOT NULL,
		appointment_date TIMESTAMP NOT NULL,
		reason TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		notes TEXT
	);

	-- Indexes for the per-patient and per-doctor listings
	CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments(patient_id);
	CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments(doctor_id);
	CREATE INDEX IF NOT EXISTS idx_patients_user_id ON patients(user_id);
	`

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	zerolog.Ctx(ctx).Info().Msg("AutoMigrate applied successfully")
	return nil
}
