package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/infrastructure/database/postgres"
	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo"
	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo/studdeoclient"
	"github.com/studdeo/admin-api/infrastructure/repository"
	"github.com/studdeo/admin-api/internal/api"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/scheduler"
	"github.com/studdeo/admin-api/internal/usecases/authenticating"
	"github.com/studdeo/admin-api/internal/usecases/cataloging"
	"github.com/studdeo/admin-api/internal/usecases/provisioning"
	"github.com/studdeo/admin-api/internal/usecases/reporting"
	"github.com/studdeo/admin-api/pkg/cache"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	adminRepo := repository.NewAdministratorRepository(pgConn)
	contractRepo := repository.NewContractRepository(pgConn)
	summaryRepo := repository.NewSalesSummaryRepository(pgConn)

	studdeoClient := studdeoclient.NewClient(cfg)
	studdeoIntegrator := studdeo.New(cfg, studdeoClient)

	store := cache.New(time.Duration(cfg.Cache.TTLMinutes) * time.Minute)

	authenticator := authenticating.NewService(adminRepo, studdeoIntegrator, cfg)
	reporter := reporting.NewService(studdeoIntegrator, store, cfg)
	cataloger := cataloging.NewService(studdeoIntegrator, store)
	provisioner := provisioning.NewService(studdeoIntegrator, contractRepo)

	salesSnapshotSyncService := scheduler.NewSalesSnapshotSyncService(
		studdeoIntegrator,
		summaryRepo,
		cfg,
	)

	if err := salesSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el scheduler de fotos de ventas")
	} else {
		logrus.Info("Scheduler de fotos de ventas iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		reporter,
		cataloger,
		provisioner,
		authenticator,
		salesSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión a PostgreSQL")
	}

	logrus.Info("Conexión a PostgreSQL establecida con éxito")
	return conn
}
