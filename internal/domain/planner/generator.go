package planner

import (
	"math/rand/v2"
	"slices"
)

// MaxItineraryDays caps generated itinerary content. Longer trips are still
// billed for their full length.
const MaxItineraryDays = 7

// OnboardingActivities are appended to day one after the interest picks.
var OnboardingActivities = []string{"Check into accommodation", "Explore local area"}

// Generator builds TripPlans from a catalog. It never mutates the catalog.
type Generator struct {
	catalog *Catalog
	intn    func(n int) int
}

// NewGenerator wires a generator. intn must return a uniform value in [0, n);
// nil selects the package level math/rand/v2 source, which is safe for concurrent use.
func NewGenerator(catalog *Catalog, intn func(n int) int) *Generator {
	if intn == nil {
		intn = rand.IntN
	}
	return &Generator{catalog: catalog, intn: intn}
}

// Catalog exposes the knowledge base the generator was built with.
func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// Generate produces a fresh plan. The budget tier must already be validated.
func (g *Generator) Generate(req TripRequest) TripPlan {
	days := req.TripLength()
	daily, _ := g.catalog.Budget(req.Budget)

	plan := TripPlan{
		Destination:  req.Destination,
		Days:         days,
		Travelers:    req.Travelers,
		Budget:       req.Budget,
		Interests:    slices.Clone(req.Interests),
		Itinerary:    g.itinerary(days, req.Interests),
		DailyCost:    daily,
		TotalCost:    daily.Daily() * int64(days) * int64(req.Travelers),
		NearbyPlaces: g.catalog.NearbyPlaces(req.Destination),
	}
	if req.HasDates() {
		plan.StartDate = req.StartDate.Format(DateLayout)
		plan.EndDate = req.EndDate.Format(DateLayout)
	}
	if plan.Interests == nil {
		plan.Interests = []Interest{}
	}
	return plan
}

func (g *Generator) itinerary(days int, interests []Interest) []ItineraryDay {
	count := min(days, MaxItineraryDays)
	out := make([]ItineraryDay, 0, count)
	for day := 1; day <= count; day++ {
		activities := make([]string, 0, len(interests)+len(OnboardingActivities))
		for _, interest := range interests {
			candidates := g.catalog.activities[interest]
			if len(candidates) == 0 {
				continue
			}
			activities = append(activities, candidates[g.intn(len(candidates))])
		}
		if day == 1 {
			activities = append(activities, OnboardingActivities...)
		}
		out = append(out, ItineraryDay{Day: day, Activities: activities})
	}
	return out
}
