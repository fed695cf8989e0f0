// Package service wires the data source, rule catalogs and evaluator into
// the full mining and recommendation workflows.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/lay-scout/internal/config"
	"github.com/yourusername/lay-scout/internal/dataset"
	"github.com/yourusername/lay-scout/internal/datasource"
	"github.com/yourusername/lay-scout/internal/metrics"
	"github.com/yourusername/lay-scout/internal/mining"
	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/outcome"
	"github.com/yourusername/lay-scout/internal/recommend"
	"github.com/yourusername/lay-scout/internal/repository"
	"github.com/yourusername/lay-scout/internal/rules"
	"github.com/yourusername/lay-scout/internal/signal"
)

// MiningService runs the full pipeline: fetch table, filter leagues, derive
// signals, evaluate the cross product and apply approved rules to upcoming
// fixtures.
type MiningService struct {
	cfg       *config.Config
	source    datasource.Source
	catalog   *rules.Catalog
	registry  *outcome.Registry
	evaluator *mining.Evaluator
	applier   *recommend.Applier
	repo      repository.RunRepository
	logger    *logrus.Logger
}

// NewMiningService builds the service from configuration. repo may be nil
// when run persistence is disabled.
func NewMiningService(cfg *config.Config, source datasource.Source, repo repository.RunRepository, log *logrus.Logger) (*MiningService, error) {
	if log == nil {
		log = logrus.New()
	}

	catalog, err := rules.LoadCatalog(cfg.Mining.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rule catalog: %w", err)
	}

	payout := mining.PayoutRule{
		WinProfit:  cfg.Mining.WinProfit,
		LossAmount: cfg.Mining.LossAmount,
	}
	windows := mining.WindowSpec{
		SmallLabel: cfg.Mining.SmallWindow,
		SmallCap:   cfg.Mining.SmallCap,
		LargeLabel: cfg.Mining.LargeWindow,
		LargeCap:   cfg.Mining.LargeCap,
		MinHitRate: cfg.Mining.MinHitRate,
	}

	return &MiningService{
		cfg:       cfg,
		source:    source,
		catalog:   catalog,
		registry:  outcome.NewRegistry(),
		evaluator: mining.NewEvaluator(payout, windows, cfg.Mining.Workers, log),
		applier:   recommend.NewApplier(catalog, log),
		repo:      repo,
		logger:    log,
	}, nil
}

// RunMining fetches the table and evaluates every configured combination
// over the finished matches.
func (s *MiningService) RunMining(ctx context.Context) (*mining.RunReport, error) {
	historical, _, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	if len(historical) == 0 {
		return nil, models.ErrEmptyTable
	}

	if err := signal.DeriveTable(historical); err != nil {
		return nil, fmt.Errorf("deriving signals: %w", err)
	}
	metrics.HistoricalRows.Set(float64(len(historical)))

	report, err := s.evaluator.Run(ctx, historical, s.catalog, s.cfg.Mining.Contexts, s.registry, s.cfg.Mining.Outcomes)
	if err != nil {
		return nil, err
	}

	// Persistence failures do not void a completed run.
	if s.repo != nil {
		if err := s.repo.SaveRun(ctx, report); err != nil {
			s.logger.WithField("error", err.Error()).Error("Failed to persist mining run")
		}
	}

	return report, nil
}

// Recommend applies a run's approved rules to the table's upcoming
// fixtures. An empty approved set yields no recommendations, not an error.
func (s *MiningService) Recommend(ctx context.Context, report *mining.RunReport) ([]recommend.Recommendation, error) {
	_, upcoming, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	return s.applier.Apply(upcoming, report.Approved())
}

// RecommendFromStore applies the latest persisted approved rules to the
// table's upcoming fixtures.
func (s *MiningService) RecommendFromStore(ctx context.Context) ([]recommend.Recommendation, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("run persistence is disabled")
	}

	approved, err := s.repo.GetLatestApprovedRules(ctx)
	if err != nil {
		return nil, err
	}
	if len(approved) == 0 {
		return nil, models.ErrNoApprovedRules
	}

	_, upcoming, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	return s.applier.Apply(upcoming, approved)
}

// loadTable fetches, league-filters and splits the match table.
func (s *MiningService) loadTable(ctx context.Context) (historical, upcoming []models.MatchRecord, err error) {
	rows, err := s.source.FetchTable(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching table from %s: %w", s.source.Name(), err)
	}

	rows = dataset.FilterLeagues(rows, s.leagueSet())
	dataset.SortByDate(rows)
	historical, upcoming = dataset.Split(rows)

	s.logger.WithFields(logrus.Fields{
		"historical": len(historical),
		"upcoming":   len(upcoming),
	}).Debug("Loaded match table")

	return historical, upcoming, nil
}

func (s *MiningService) leagueSet() dataset.LeagueSet {
	if len(s.cfg.Data.Leagues) > 0 {
		return dataset.NewLeagueSet(s.cfg.Data.Leagues)
	}
	if s.cfg.Data.UseDefaultLeagues {
		return dataset.NewLeagueSet(dataset.DefaultLeagues)
	}
	return nil
}
