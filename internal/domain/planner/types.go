package planner

import (
	"net/url"
	"strings"
	"time"
)

// BudgetTier selects a daily per-traveler cost profile.
type BudgetTier string

const (
	BudgetBudget   BudgetTier = "budget"
	BudgetModerate BudgetTier = "moderate"
	BudgetLuxury   BudgetTier = "luxury"
	BudgetPremium  BudgetTier = "premium"
)

// BudgetTiers lists the recognized tiers in display order.
var BudgetTiers = []BudgetTier{BudgetBudget, BudgetModerate, BudgetLuxury, BudgetPremium}

// Valid reports whether the tier belongs to the closed enumeration.
func (b BudgetTier) Valid() bool {
	for _, tier := range BudgetTiers {
		if tier == b {
			return true
		}
	}
	return false
}

// Interest selects candidate activities.
type Interest string

const (
	InterestCulture   Interest = "culture"
	InterestAdventure Interest = "adventure"
	InterestFood      Interest = "food"
	InterestNature    Interest = "nature"
)

// Interests lists the recognized interest tags in display order.
var Interests = []Interest{InterestCulture, InterestAdventure, InterestFood, InterestNature}

// Valid reports whether the tag belongs to the closed enumeration.
func (i Interest) Valid() bool {
	for _, tag := range Interests {
		if tag == i {
			return true
		}
	}
	return false
}

// Request carries the raw planner form values before validation.
type Request struct {
	Destination string   `json:"destination" form:"destination"`
	StartDate   string   `json:"startDate" form:"startDate"`
	EndDate     string   `json:"endDate" form:"endDate"`
	Travelers   string   `json:"travelers" form:"travelers"`
	Budget      string   `json:"budget" form:"budget"`
	Interests   []string `json:"interests" form:"interests"`
}

// Values encodes the request as a query string so a plan can be rebuilt later.
func (r Request) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}
	set("destination", r.Destination)
	set("startDate", r.StartDate)
	set("endDate", r.EndDate)
	set("travelers", r.Travelers)
	set("budget", r.Budget)
	for _, interest := range r.Interests {
		if interest = strings.TrimSpace(interest); interest != "" {
			values.Add("interests", interest)
		}
	}
	return values
}

// TripRequest is a validated planner request.
// Zero dates mean the trip has no fixed dates (destination quick plans).
type TripRequest struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Budget      BudgetTier
	Interests   []Interest
}

// TripLength is the whole-day span between start and end, rounded up.
// The span is measured on UTC wall clocks, so a DST shift in the dates'
// own location does not add a day.
func (r TripRequest) TripLength() int {
	if r.StartDate.IsZero() || r.EndDate.IsZero() || !r.EndDate.After(r.StartDate) {
		return 0
	}
	start := asUTCWallClock(r.StartDate)
	end := asUTCWallClock(r.EndDate)
	return int((end.Sub(start) + 24*time.Hour - 1) / (24 * time.Hour))
}

func asUTCWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// HasDates reports whether both trip dates were supplied.
func (r TripRequest) HasDates() bool {
	return !r.StartDate.IsZero() && !r.EndDate.IsZero()
}

// CostBreakdown is the per-day per-traveler cost of a budget tier.
type CostBreakdown struct {
	Accommodation int64 `json:"accommodation" yaml:"accommodation"`
	Food          int64 `json:"food" yaml:"food"`
	Activities    int64 `json:"activities" yaml:"activities"`
	Transport     int64 `json:"transport" yaml:"transport"`
}

// Daily sums the four components.
func (c CostBreakdown) Daily() int64 {
	return c.Accommodation + c.Food + c.Activities + c.Transport
}

// NearbyPlace is a gallery entry shown with a plan.
type NearbyPlace struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Photos      []string `json:"photos" yaml:"photos"`
	Rate        string   `json:"rate" yaml:"rate"`
	Distance    string   `json:"distance" yaml:"distance"`
	Rating      string   `json:"rating" yaml:"rating"`
}

// ItineraryDay lists the activities planned for one day.
type ItineraryDay struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// TripPlan is the generated plan for a single submission.
type TripPlan struct {
	Destination  string         `json:"destination"`
	StartDate    string         `json:"startDate,omitempty"`
	EndDate      string         `json:"endDate,omitempty"`
	Days         int            `json:"days"`
	Travelers    int            `json:"travelers"`
	Budget       BudgetTier     `json:"budget"`
	Interests    []Interest     `json:"interests"`
	Itinerary    []ItineraryDay `json:"itinerary"`
	DailyCost    CostBreakdown  `json:"dailyCost"`
	TotalCost    int64          `json:"totalCost"`
	NearbyPlaces []NearbyPlace  `json:"nearbyPlaces"`
}

// NormalizeDestination produces the lookup key used by the place catalog.
func NormalizeDestination(destination string) string {
	return strings.ToLower(strings.TrimSpace(destination))
}
