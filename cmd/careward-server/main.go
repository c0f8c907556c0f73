package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/careward/careward/internal/config"
	"github.com/careward/careward/internal/domain/clinical"
	"github.com/careward/careward/internal/domain/facility"
	"github.com/careward/careward/internal/domain/medication"
	"github.com/careward/careward/internal/domain/patient"
	"github.com/careward/careward/internal/domain/scheduling"
	"github.com/careward/careward/internal/domain/staff"
	"github.com/careward/careward/internal/domain/surgery"
	"github.com/careward/careward/internal/platform/auth"
	"github.com/careward/careward/internal/platform/db"
	"github.com/careward/careward/internal/platform/middleware"
	"github.com/careward/careward/internal/platform/seed"
	"github.com/careward/careward/internal/platform/weather"
	"github.com/careward/careward/internal/platform/worldclock"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "careward-server",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the baseline hospital data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			facilitySvc := facility.NewService(
				facility.NewHospitalRepoPG(pool),
				facility.NewWardRepoPG(pool),
				db.PoolRunner(pool),
			)
			return seed.Run(ctx, facilitySvc)
		},
	}
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
			JWKSURL:  cfg.AuthJWKSURL,
		}))
	}

	e.GET("/health", db.HealthHandler(pool))

	api := e.Group("/api")
	runTx := db.PoolRunner(pool)

	// Facility domain owns the ward-hospital association; every other domain
	// resolves references through it.
	hospitalRepo := facility.NewHospitalRepoPG(pool)
	wardRepo := facility.NewWardRepoPG(pool)
	facilitySvc := facility.NewService(hospitalRepo, wardRepo, runTx)
	facility.NewHandler(facilitySvc).RegisterRoutes(api)

	affiliation := facility.NewAffiliation(wardRepo, hospitalRepo)

	doctorRepo := staff.NewDoctorRepoPG(pool)
	nurseRepo := staff.NewNurseRepoPG(pool)
	staffSvc := staff.NewService(doctorRepo, nurseRepo, affiliation)
	staff.NewHandler(staffSvc).RegisterRoutes(api)

	diagnosisRepo := clinical.NewDiagnosisRepoPG(pool)
	clinicalSvc := clinical.NewService(diagnosisRepo, doctorRepo)
	clinical.NewHandler(clinicalSvc).RegisterRoutes(api)

	patientRepo := patient.NewPatientRepoPG(pool)
	patientSvc := patient.NewService(patientRepo, diagnosisRepo, affiliation, runTx)
	patient.NewHandler(patientSvc).RegisterRoutes(api)

	appointmentRepo := scheduling.NewAppointmentRepoPG(pool)
	schedulingSvc := scheduling.NewService(appointmentRepo, patientRepo, doctorRepo, nurseRepo)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(api)

	medicationRepo := medication.NewMedicationRepoPG(pool)
	prescriptionRepo := medication.NewPrescriptionRepoPG(pool)
	medicationSvc := medication.NewService(medicationRepo, prescriptionRepo, patientRepo, doctorRepo)
	medication.NewHandler(medicationSvc).RegisterRoutes(api)

	surgeryRepo := surgery.NewSurgeryRepoPG(pool)
	surgerySvc := surgery.NewService(surgeryRepo, patientRepo, doctorRepo)
	surgery.NewHandler(surgerySvc).RegisterRoutes(api)

	worldclock.NewHandler(worldclock.NewClient(cfg.TimeAPIURL, cfg.DefaultTimezone)).RegisterRoutes(api)
	weather.NewHandler(weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.DefaultCity)).RegisterRoutes(api)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}
