package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/travel-planner/pkg/metrics"
)

// Quick plan defaults used by the destination call to action.
const (
	QuickPlanTravelers = 2
	QuickPlanBudget    = BudgetModerate
)

// QuickPlanInterests are the interests preselected for destination quick plans.
var QuickPlanInterests = []Interest{InterestCulture, InterestFood}

// Service exposes trip planning capabilities.
type Service interface {
	Plan(ctx context.Context, req Request) (TripPlan, error)
	QuickPlan(ctx context.Context, destination string) (TripPlan, error)
	Trending(ctx context.Context) ([]metrics.Counter, error)
	Catalog() *Catalog
}

type service struct {
	cfg       Config
	validator *Validator
	generator *Generator
	trending  TrendingStore
	logger    *slog.Logger
}

// NewService wires up the planner domain.
func NewService(cfg Config, generator *Generator, trending TrendingStore, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		validator: NewValidator(cfg.Location, time.Now),
		generator: generator,
		trending:  trending,
		logger:    logger.With("component", "planner.service"),
	}
}

// Plan validates the form values and generates a plan. Validation failures
// are returned before any waiting or generation happens.
func (s *service) Plan(ctx context.Context, req Request) (TripPlan, error) {
	trip, err := s.validator.Validate(req)
	if err != nil {
		s.logger.Debug("planner request rejected", "error", err)
		return TripPlan{}, err
	}
	return s.generate(ctx, trip)
}

// QuickPlan skips validation and uses the fixed defaults without dates.
func (s *service) QuickPlan(ctx context.Context, destination string) (TripPlan, error) {
	trip := TripRequest{
		Destination: destination,
		Travelers:   QuickPlanTravelers,
		Budget:      QuickPlanBudget,
		Interests:   append([]Interest(nil), QuickPlanInterests...),
	}
	return s.generate(ctx, trip)
}

func (s *service) Trending(ctx context.Context) ([]metrics.Counter, error) {
	if s.trending == nil {
		return []metrics.Counter{}, nil
	}
	limit := s.cfg.TrendingLimit
	if limit <= 0 {
		limit = 5
	}
	return s.trending.Top(ctx, limit)
}

func (s *service) Catalog() *Catalog {
	return s.generator.Catalog()
}

func (s *service) generate(ctx context.Context, trip TripRequest) (TripPlan, error) {
	if err := s.wait(ctx); err != nil {
		return TripPlan{}, err
	}

	plan := s.generator.Generate(trip)
	s.logger.Info("trip plan generated",
		"destination", plan.Destination,
		"days", plan.Days,
		"travelers", plan.Travelers,
		"budget", plan.Budget,
		"nearby_places", len(plan.NearbyPlaces),
	)

	if s.trending != nil {
		key := NormalizeDestination(plan.Destination)
		if err := s.trending.Increment(ctx, key, plan.Destination); err != nil {
			s.logger.Warn("trending increment failed", "destination", key, "error", err)
		}
	}
	return plan, nil
}

func (s *service) wait(ctx context.Context) error {
	if s.cfg.SimulatedLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.SimulatedLatency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
