package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital_management/internal/config"
	"hospital_management/internal/handler"
	"hospital_management/internal/middleware"
	"hospital_management/internal/repository"
	"hospital_management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hospital-server",
		Short:         "Hospital management API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, logger zerolog.Logger, pool *pgxpool.Pool) error {
				if err := config.AutoMigrate(ctx, pool); err != nil {
					return err
				}
				return runServer(cfg, logger, pool)
			})
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, _ *config.Config, _ zerolog.Logger, pool *pgxpool.Pool) error {
				return config.AutoMigrate(ctx, pool)
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample users, patients, doctors and appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, logger zerolog.Logger, pool *pgxpool.Pool) error {
				if err := config.AutoMigrate(ctx, pool); err != nil {
					return err
				}
				seeder := service.NewSeeder(
					repository.NewUserRepository(pool),
					repository.NewPatientRepository(pool),
					repository.NewDoctorRepository(pool),
					repository.NewAppointmentRepository(pool),
					cfg.SeedPassword,
				)
				res, err := seeder.Seed(ctx)
				if err != nil {
					return err
				}
				logger.Info().
					Bool("skipped", res.Skipped).
					Int("users", res.Users).
					Int("patients", res.Patients).
					Int("doctors", res.Doctors).
					Int("appointments", res.Appointments).
					Msg("Seeding finished")
				return nil
			})
		},
	}
}

// withDB loads config, builds the logger and opens the pool for fn
func withDB(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, logger zerolog.Logger, pool *pgxpool.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx)

	pool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, cfg, logger, pool)
}

// appDB is what the router needs from the pool: queries for the
// repositories and Ping for the health check
type appDB interface {
	repository.DBTX
	handler.Pinger
}

func runServer(cfg *config.Config, logger zerolog.Logger, pool *pgxpool.Pool) error {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(cfg, logger, pool)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info().Msg("Server exiting")
	return nil
}

func newRouter(cfg *config.Config, logger zerolog.Logger, db appDB) *gin.Engine {
	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo)
	patientService := service.NewPatientService(patientRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	// --- Register Routes ---
	handler.NewHealthHandler(db).RegisterHealthRoutes(router)
	apiGroup := router.Group("/api")
	handler.NewAuthHandler(authService).RegisterAuthRoutes(apiGroup)
	handler.NewPatientHandler(patientService).RegisterPatientRoutes(apiGroup)
	handler.NewDoctorHandler(doctorService).RegisterDoctorRoutes(apiGroup)
	handler.NewAppointmentHandler(appointmentService).RegisterAppointmentRoutes(apiGroup)

	return router
}
