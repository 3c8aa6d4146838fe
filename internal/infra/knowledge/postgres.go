package knowledge

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/travel-planner/internal/domain/destination"
	"github.com/yanqian/travel-planner/internal/domain/planner"
)

// PostgresSource reads the knowledge base from the tables created by
// migrations/001_knowledge.sql.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) (Document, error) {
	doc := Document{
		CatalogData: planner.CatalogData{
			Activities: map[planner.Interest][]string{},
			Places:     map[string][]planner.NearbyPlace{},
			Budgets:    map[planner.BudgetTier]planner.CostBreakdown{},
		},
		Destinations: map[string]destination.Detail{},
	}
	steps := []struct {
		name string
		fn   func(context.Context, *Document) error
	}{
		{"activities", s.loadActivities},
		{"budgets", s.loadBudgets},
		{"places", s.loadPlaces},
		{"destinations", s.loadDestinations},
		{"destination places", s.loadDestinationPlaces},
	}
	for _, step := range steps {
		if err := step.fn(ctx, &doc); err != nil {
			return Document{}, fmt.Errorf("load %s: %w", step.name, err)
		}
	}
	return doc, nil
}

func (s *PostgresSource) loadActivities(ctx context.Context, doc *Document) error {
	rows, err := s.pool.Query(ctx, `
		SELECT interest, description
		FROM planner_activities
		ORDER BY interest, position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var interest, description string
		if err := rows.Scan(&interest, &description); err != nil {
			return err
		}
		key := planner.Interest(interest)
		doc.Activities[key] = append(doc.Activities[key], description)
	}
	return rows.Err()
}

func (s *PostgresSource) loadBudgets(ctx context.Context, doc *Document) error {
	rows, err := s.pool.Query(ctx, `
		SELECT tier, accommodation, food, activities, transport
		FROM planner_budget_tiers
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			tier string
			cost planner.CostBreakdown
		)
		if err := rows.Scan(&tier, &cost.Accommodation, &cost.Food, &cost.Activities, &cost.Transport); err != nil {
			return err
		}
		doc.Budgets[planner.BudgetTier(tier)] = cost
	}
	return rows.Err()
}

func (s *PostgresSource) loadPlaces(ctx context.Context, doc *Document) error {
	rows, err := s.pool.Query(ctx, `
		SELECT destination, name, description, photos, rate, distance, rating
		FROM planner_nearby_places
		ORDER BY destination, position
	`)
	if err != nil {
		return err
	}
	places, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (keyedPlace, error) {
		var p keyedPlace
		err := row.Scan(&p.key, &p.place.Name, &p.place.Description, &p.place.Photos, &p.place.Rate, &p.place.Distance, &p.place.Rating)
		return p, err
	})
	if err != nil {
		return err
	}
	for _, p := range places {
		doc.Places[p.key] = append(doc.Places[p.key], p.place)
	}
	return nil
}

type keyedPlace struct {
	key   string
	place planner.NearbyPlace
}

func (s *PostgresSource) loadDestinations(ctx context.Context, doc *Document) error {
	rows, err := s.pool.Query(ctx, `
		SELECT code, name, subtitle, image, price, rating, description,
		       highlights, duration, best_time, included
		FROM destinations
		ORDER BY featured_rank NULLS LAST, code
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var d destination.Detail
		if err := rows.Scan(&d.Code, &d.Name, &d.Subtitle, &d.Image, &d.Price, &d.Rating, &d.Description,
			&d.Highlights, &d.Duration, &d.BestTime, &d.Included); err != nil {
			return err
		}
		doc.Destinations[d.Code] = d
		doc.Featured = append(doc.Featured, d.Code)
	}
	return rows.Err()
}

func (s *PostgresSource) loadDestinationPlaces(ctx context.Context, doc *Document) error {
	rows, err := s.pool.Query(ctx, `
		SELECT code, name, rate, distance
		FROM destination_places
		ORDER BY code, position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			code  string
			place destination.PlaceRate
		)
		if err := rows.Scan(&code, &place.Name, &place.Rate, &place.Distance); err != nil {
			return err
		}
		d, ok := doc.Destinations[code]
		if !ok {
			continue
		}
		d.NearbyPlaces = append(d.NearbyPlaces, place)
		doc.Destinations[code] = d
	}
	return rows.Err()
}

var _ Source = (*PostgresSource)(nil)
