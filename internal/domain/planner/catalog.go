package planner

import (
	"fmt"
	"slices"
)

// Catalog is the read-only knowledge base the generator draws from.
// Build it once with NewCatalog; accessors return copies so callers cannot mutate it.
type Catalog struct {
	activities map[Interest][]string
	places     map[string][]NearbyPlace
	budgets    map[BudgetTier]CostBreakdown
}

// CatalogData is the raw table shape supplied by a knowledge source.
type CatalogData struct {
	Activities map[Interest][]string        `yaml:"activities"`
	Places     map[string][]NearbyPlace     `yaml:"places"`
	Budgets    map[BudgetTier]CostBreakdown `yaml:"budgets"`
}

// NewCatalog validates the tables and takes a private copy of them.
// Every budget tier must be priced and every interest must have at least one activity.
func NewCatalog(data CatalogData) (*Catalog, error) {
	c := &Catalog{
		activities: make(map[Interest][]string, len(data.Activities)),
		places:     make(map[string][]NearbyPlace, len(data.Places)),
		budgets:    make(map[BudgetTier]CostBreakdown, len(data.Budgets)),
	}
	for _, tier := range BudgetTiers {
		cost, ok := data.Budgets[tier]
		if !ok {
			return nil, fmt.Errorf("budget tier %q is not priced", tier)
		}
		if cost.Accommodation < 0 || cost.Food < 0 || cost.Activities < 0 || cost.Transport < 0 {
			return nil, fmt.Errorf("budget tier %q has negative costs", tier)
		}
		c.budgets[tier] = cost
	}
	for _, interest := range Interests {
		list := data.Activities[interest]
		if len(list) == 0 {
			return nil, fmt.Errorf("interest %q has no activities", interest)
		}
		c.activities[interest] = slices.Clone(list)
	}
	for key, list := range data.Places {
		c.places[NormalizeDestination(key)] = clonePlaces(list)
	}
	return c, nil
}

// Activities returns the candidate activities for an interest.
func (c *Catalog) Activities(interest Interest) []string {
	return slices.Clone(c.activities[interest])
}

// NearbyPlaces looks up a destination case-insensitively.
// Unknown destinations yield an empty, non-nil list.
func (c *Catalog) NearbyPlaces(destination string) []NearbyPlace {
	list, ok := c.places[NormalizeDestination(destination)]
	if !ok {
		return []NearbyPlace{}
	}
	return clonePlaces(list)
}

// Budget returns the cost breakdown for a tier.
func (c *Catalog) Budget(tier BudgetTier) (CostBreakdown, bool) {
	cost, ok := c.budgets[tier]
	return cost, ok
}

// Destinations returns the keys known to the place catalog, sorted.
func (c *Catalog) Destinations() []string {
	keys := make([]string, 0, len(c.places))
	for key := range c.places {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func clonePlaces(list []NearbyPlace) []NearbyPlace {
	out := make([]NearbyPlace, len(list))
	for i, place := range list {
		place.Photos = slices.Clone(place.Photos)
		out[i] = place
	}
	return out
}
