package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/database/postgres"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/ecos"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/ecos/ecosclient"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/fssclient"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository"
	"github.com/jmpark86/solvency-monitor-api/internal/api"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
	"github.com/jmpark86/solvency-monitor-api/internal/scheduler"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/acquiring"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/charting"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/company"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	companyRepo := repository.NewCompanyRepository(pgConn)
	capitalRecordRepo := repository.NewCapitalRecordRepository(pgConn)

	fssClient := fssclient.NewClient(cfg)
	fssIntegrator := fss.New(cfg, fssClient)

	ecosClient := ecosclient.NewClient(cfg)
	ecosIntegrator := ecos.New(cfg, ecosClient)

	companyService := company.New(companyRepo, fssIntegrator)
	acquiringService := acquiring.New(capitalRecordRepo, fssIntegrator)
	chartService := charting.New(cfg, companyRepo, capitalRecordRepo, acquiringService, ecosIntegrator)

	backfillSyncService := scheduler.NewCapitalBackfillSyncService(
		companyRepo,
		acquiringService,
		cfg,
	)

	if err := backfillSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting capital backfill scheduler")
	} else {
		logrus.Info("Capital backfill scheduler started successfully")
	}

	server, err := api.New(
		cfg,
		companyService,
		chartService,
		backfillSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens and verifies the database connection.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established successfully")
	return conn
}
