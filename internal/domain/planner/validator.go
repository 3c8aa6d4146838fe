package planner

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
	"github.com/yanqian/travel-planner/pkg/util"
)

// DateLayout is the wire format of trip dates.
const DateLayout = "2006-01-02"

// User facing validation messages.
const (
	MsgMissingFields    = "Please fill in all required fields"
	MsgStartInPast      = "Start date cannot be in the past"
	MsgEndBeforeStart   = "End date must be after start date"
	MsgInvalidDate      = "Please enter dates as YYYY-MM-DD"
	MsgInvalidBudget    = "Please choose a valid budget level"
	MsgInvalidTravelers = "Travelers must be a positive number"
	MsgInvalidInterest  = "Please choose interests from the list"
)

// Validator turns raw form values into a TripRequest.
type Validator struct {
	loc *time.Location
	now func() time.Time
}

// NewValidator builds a validator evaluating "today" in loc.
func NewValidator(loc *time.Location, now func() time.Time) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Validator{loc: loc, now: now}
}

// Validate checks the request and stops at the first failing rule.
// The returned error is an invalid_input AppError whose message is shown to the user as is.
func (v *Validator) Validate(req Request) (TripRequest, error) {
	destination := strings.TrimSpace(req.Destination)
	startRaw := strings.TrimSpace(req.StartDate)
	endRaw := strings.TrimSpace(req.EndDate)
	budgetRaw := strings.TrimSpace(req.Budget)
	if destination == "" || startRaw == "" || endRaw == "" || budgetRaw == "" {
		return TripRequest{}, invalid(MsgMissingFields)
	}

	// Trip dates are calendar dates held at UTC midnight so day spans never
	// pick up a DST hour. The configured location only decides "today".
	start, err := time.Parse(DateLayout, startRaw)
	if err != nil {
		return TripRequest{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidDate, err)
	}
	end, err := time.Parse(DateLayout, endRaw)
	if err != nil {
		return TripRequest{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidDate, err)
	}

	if start.Before(v.today()) {
		return TripRequest{}, invalid(MsgStartInPast)
	}
	if !end.After(start) {
		return TripRequest{}, invalid(MsgEndBeforeStart)
	}

	budget := BudgetTier(strings.ToLower(budgetRaw))
	if !budget.Valid() {
		return TripRequest{}, invalid(MsgInvalidBudget)
	}

	travelers, err := parseTravelers(req.Travelers)
	if err != nil {
		return TripRequest{}, err
	}

	interests, err := ParseInterests(req.Interests)
	if err != nil {
		return TripRequest{}, err
	}

	return TripRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   travelers,
		Budget:      budget,
		Interests:   interests,
	}, nil
}

// today is the current calendar day in the validator's location, as a UTC date.
func (v *Validator) today() time.Time {
	local := util.StartOfDay(v.now(), v.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseInterests keeps caller order and drops blanks and repeats.
func ParseInterests(raw []string) ([]Interest, error) {
	out := make([]Interest, 0, len(raw))
	seen := make(map[Interest]struct{}, len(raw))
	for _, item := range raw {
		clean := strings.ToLower(strings.TrimSpace(item))
		if clean == "" {
			continue
		}
		interest := Interest(clean)
		if !interest.Valid() {
			return nil, invalid(MsgInvalidInterest)
		}
		if _, dup := seen[interest]; dup {
			continue
		}
		seen[interest] = struct{}{}
		out = append(out, interest)
	}
	return out, nil
}

// parseTravelers defaults an empty field to a single traveler.
func parseTravelers(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidTravelers, err)
	}
	return n, nil
}

func invalid(message string) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, message, nil)
}
