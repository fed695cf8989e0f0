// Package main provides the entry point for the one-shot mining CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/lay-scout/internal/config"
	"github.com/yourusername/lay-scout/internal/database"
	"github.com/yourusername/lay-scout/internal/datasource"
	"github.com/yourusername/lay-scout/internal/logger"
	"github.com/yourusername/lay-scout/internal/report"
	"github.com/yourusername/lay-scout/internal/repository"
	"github.com/yourusername/lay-scout/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		tablePath  = flag.String("table", "", "Override path to a local CSV match table")
		rulesPath  = flag.String("rules", "", "Override path to a YAML rule catalog")
		outputDir  = flag.String("output", "", "Override output directory for CSV exports")
		noExport   = flag.Bool("no-export", false, "Skip CSV export, console report only")
	)
	flag.Parse()

	ctx := context.Background()

	cfg := loadConfigWithSecrets(*configPath)
	applyOverrides(cfg, *tablePath, *rulesPath, *outputDir)
	log := logger.NewLogger(cfg.App.LogLevel)

	source := buildSource(cfg, log)
	repo := buildRepository(ctx, cfg, log)

	svc, err := service.NewMiningService(cfg, source, repo, log)
	if err != nil {
		log.Fatalf("Failed to build mining service: %v", err)
	}

	log.WithFields(logrus.Fields{
		"source": source.Name(),
		"rules":  cfg.Mining.RulesPath,
	}).Info("Starting mining run")

	runReport, err := svc.RunMining(ctx)
	if err != nil {
		log.Fatalf("Mining run failed: %v", err)
	}

	fmt.Print(report.GenerateConsoleReport(runReport))

	if !*noExport {
		path := filepath.Join(cfg.Output.Dir, exportName(cfg.Output.RunCSV, "run.csv"))
		if err := report.ExportRunCSV(runReport, path); err != nil {
			log.Fatalf("Failed to export run CSV: %v", err)
		}
		log.WithField("path", path).Info("Exported run CSV")
	}
}

func loadConfigWithSecrets(path string) *config.Config {
	boot := logrus.New()

	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		boot.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			boot.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			boot.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		boot.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func applyOverrides(cfg *config.Config, tablePath, rulesPath, outputDir string) {
	if tablePath != "" {
		cfg.Data.Source = "file"
		cfg.Data.Path = tablePath
	}
	if rulesPath != "" {
		cfg.Mining.RulesPath = rulesPath
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
}

func buildSource(cfg *config.Config, log *logrus.Logger) datasource.Source {
	if cfg.Data.Source == "remote" {
		client := datasource.NewRateLimitedHTTPClient(datasource.DefaultHTTPClientConfig(), log)
		return datasource.NewRemoteCSVSource(client, cfg.Data.URL, cfg.CacheTTL(), log)
	}
	return datasource.NewFileSource(cfg.Data.Path)
}

func buildRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) repository.RunRepository {
	if !cfg.Database.Enabled {
		return nil
	}
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	repos, err := repository.NewRepositories(db)
	if err != nil {
		log.Fatalf("Failed to build repositories: %v", err)
	}
	return repos.Run
}

func exportName(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}
