// Package main provides the entry point for the recommendation CLI. It
// mines the historical part of the table and tags upcoming fixtures with
// the approved rules, or reuses the latest persisted rule set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/lay-scout/internal/config"
	"github.com/yourusername/lay-scout/internal/database"
	"github.com/yourusername/lay-scout/internal/datasource"
	"github.com/yourusername/lay-scout/internal/logger"
	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/recommend"
	"github.com/yourusername/lay-scout/internal/report"
	"github.com/yourusername/lay-scout/internal/repository"
	"github.com/yourusername/lay-scout/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		tablePath  = flag.String("table", "", "Override path to a local CSV match table")
		fromStore  = flag.Bool("from-store", false, "Use the latest persisted approved rules instead of mining first")
		noExport   = flag.Bool("no-export", false, "Skip CSV export, console output only")
	)
	flag.Parse()

	ctx := context.Background()

	cfg := loadConfig(*configPath)
	if *tablePath != "" {
		cfg.Data.Source = "file"
		cfg.Data.Path = *tablePath
	}
	log := logger.NewLogger(cfg.App.LogLevel)

	source := buildSource(cfg, log)
	repo := buildRepository(ctx, cfg, log)

	svc, err := service.NewMiningService(cfg, source, repo, log)
	if err != nil {
		log.Fatalf("Failed to build mining service: %v", err)
	}

	recs := produceRecommendations(ctx, svc, *fromStore, log)
	fmt.Print(report.GenerateConsoleRecommendations(recs))

	if !*noExport && len(recs) > 0 {
		name := cfg.Output.RecommendationsCSV
		if name == "" {
			name = "recommendations.csv"
		}
		path := filepath.Join(cfg.Output.Dir, name)
		if err := report.ExportRecommendationsCSV(recs, path); err != nil {
			log.Fatalf("Failed to export recommendations CSV: %v", err)
		}
		log.WithField("path", path).Info("Exported recommendations CSV")
	}
}

func produceRecommendations(ctx context.Context, svc *service.MiningService, fromStore bool, log *logrus.Logger) []recommend.Recommendation {
	if fromStore {
		recs, err := svc.RecommendFromStore(ctx)
		if err != nil {
			if errors.Is(err, models.ErrNoApprovedRules) {
				log.Info("No approved rules in store")
				return nil
			}
			log.Fatalf("Recommendation from store failed: %v", err)
		}
		return recs
	}

	runReport, err := svc.RunMining(ctx)
	if err != nil {
		log.Fatalf("Mining run failed: %v", err)
	}
	log.WithField("approved", len(runReport.Approved())).Info("Mining run completed")

	recs, err := svc.Recommend(ctx, runReport)
	if err != nil {
		log.Fatalf("Recommendation failed: %v", err)
	}
	return recs
}

func loadConfig(path string) *config.Config {
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
