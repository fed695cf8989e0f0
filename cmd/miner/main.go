// Package main provides the entry point for the mining daemon. It runs
// scheduled mining passes, persists approved rules and serves health and
// metrics endpoints.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/lay-scout/internal/config"
	"github.com/yourusername/lay-scout/internal/database"
	"github.com/yourusername/lay-scout/internal/datasource"
	"github.com/yourusername/lay-scout/internal/health"
	"github.com/yourusername/lay-scout/internal/logger"
	"github.com/yourusername/lay-scout/internal/metrics"
	"github.com/yourusername/lay-scout/internal/report"
	"github.com/yourusername/lay-scout/internal/repository"
	"github.com/yourusername/lay-scout/internal/scheduler"
	"github.com/yourusername/lay-scout/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	runOnce    bool
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	svc        *service.MiningService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVar(&runOnce, "once", false, "Run a single mining pass immediately and exit")
}

var rootCmd = &cobra.Command{
	Use:   "miner",
	Short: "Lay Scout rule mining daemon",
	Long: `Runs lay rule mining on a cron schedule, persists approved rules
and exposes health and Prometheus metrics endpoints.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if runOnce {
			return runMiningPass(cmd.Context())
		}
		return runDaemon()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLog = logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
		"commit":      GitCommit,
	}).Info("Lay Scout miner starting")

	var repo repository.RunRepository
	if cfg.Database.Enabled {
		var err error
		db, err = database.Initialize(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		repos, err := repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to initialize repositories: %w", err)
		}
		repo = repos.Run
		appLog.Info("Database connection established")
	}

	var source datasource.Source
	if cfg.Data.Source == "remote" {
		client := datasource.NewRateLimitedHTTPClient(datasource.DefaultHTTPClientConfig(), appLog)
		source = datasource.NewRemoteCSVSource(client, cfg.Data.URL, cfg.CacheTTL(), appLog)
	} else {
		source = datasource.NewFileSource(cfg.Data.Path)
	}

	var err error
	svc, err = service.NewMiningService(cfg, source, repo, appLog)
	if err != nil {
		return fmt.Errorf("failed to build mining service: %w", err)
	}

	return nil
}

// runMiningPass executes one full mining pass and exports the run CSV.
func runMiningPass(ctx context.Context) error {
	runReport, err := svc.RunMining(ctx)
	if err != nil {
		return err
	}

	appLog.WithFields(logrus.Fields{
		"run_id":   runReport.RunID.String(),
		"approved": len(runReport.Approved()),
		"failed":   runReport.FailedCount(),
	}).Info("Mining pass completed")

	name := cfg.Output.RunCSV
	if name == "" {
		name = "run.csv"
	}
	path := filepath.Join(cfg.Output.Dir, name)
	if err := report.ExportRunCSV(runReport, path); err != nil {
		return fmt.Errorf("exporting run CSV: %w", err)
	}

	return nil
}

func runDaemon() error {
	if !cfg.Scheduler.Enabled {
		return fmt.Errorf("scheduler is disabled in configuration; use --once for a single pass")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(appLog)
	if err := sched.ScheduleMiningRun(cfg.Scheduler.CronSpec, runMiningPass); err != nil {
		return fmt.Errorf("scheduling mining run: %w", err)
	}
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Logger:      appLog,
		DB:          dbPinger(),
		Scheduler:   sched,
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("starting health server: %w", err)
	}
	healthServer.SetReady(true)

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer()
	}

	appLog.WithFields(logrus.Fields{
		"cron":     cfg.Scheduler.CronSpec,
		"next_run": sched.GetNextRun().UTC().Format(time.RFC3339),
	}).Info("Miner daemon running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig.String()).Info("Shutdown signal received")

	healthServer.SetReady(false)
	cancel()

	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error stopping scheduler")
	}
	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("Error stopping metrics server")
		}
	}
	if db != nil {
		db.Close()
	}

	appLog.Info("Miner daemon shut down")
	return nil
}

func startMetricsServer() *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		appLog.WithFields(logrus.Fields{
			"port": cfg.Metrics.Port,
			"path": cfg.Metrics.Path,
		}).Info("Metrics server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Error("Metrics server error")
		}
	}()

	return server
}

func dbPinger() health.DatabasePinger {
	if db == nil {
		return nil
	}
	return db
}
