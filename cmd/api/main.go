package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/handler"
	"github.com/jwalitptl/hospital-api/internal/handler/health"
	"github.com/jwalitptl/hospital-api/internal/handler/patient"
	promhandler "github.com/jwalitptl/hospital-api/internal/handler/prometheus"
	"github.com/jwalitptl/hospital-api/internal/handler/provider"
	"github.com/jwalitptl/hospital-api/internal/repository/sqlstore"
	"github.com/jwalitptl/hospital-api/internal/router"
	"github.com/jwalitptl/hospital-api/internal/server"
	"github.com/jwalitptl/hospital-api/pkg/logger"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(&logger.Config{
		Level: logger.ParseLevel(cfg.Log.Level),
		JSON:  cfg.Log.Format == "json",
	})

	m := metrics.NewMetrics(cfg.Metrics.Prefix)

	// Initialize database
	db, err := sqlstore.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	db.Instrument(m)

	// A failed connect leaves the API up; data routes answer 500 and
	// readiness reports DOWN until the store is reachable.
	if err := db.Connect(context.Background()); err != nil {
		if cfg.Database.FailFast {
			_ = db.Close()
			log.Fatal().Err(err).Msg("Error connecting to the database")
		}
		log.Error().Err(err).Msg("Error connecting to the database")
	} else {
		log.Info().Str("driver", db.DriverName()).Msg("Connected to the database")
	}

	// Initialize repositories and handlers
	patientRepo := sqlstore.NewPatientRepository(db)
	providerRepo := sqlstore.NewProviderRepository(db)

	r := router.NewRouter(m,
		handler.NewHandler(),
		health.NewHandler(db),
		promhandler.New(m),
		patient.NewHandler(patientRepo),
		provider.NewHandler(providerRepo),
	).Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(fmt.Sprintf(":%d", cfg.Server.Port), r.Handler(), db)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}

	log.Info().Msg("server exited properly")
}
