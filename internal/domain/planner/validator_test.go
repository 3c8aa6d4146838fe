package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

func newTestValidator() *Validator {
	return NewValidator(time.UTC, func() time.Time {
		return time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)
	})
}

func validRequest() Request {
	return Request{
		Destination: "bali",
		StartDate:   "2026-10-19",
		EndDate:     "2026-10-22",
		Travelers:   "2",
		Budget:      "moderate",
		Interests:   []string{"food"},
	}
}

func TestValidatorAcceptsValidRequest(t *testing.T) {
	trip, err := newTestValidator().Validate(validRequest())
	require.NoError(t, err)
	require.Equal(t, "bali", trip.Destination)
	require.Equal(t, 2, trip.Travelers)
	require.Equal(t, BudgetModerate, trip.Budget)
	require.Equal(t, []Interest{InterestFood}, trip.Interests)
	require.Equal(t, 3, trip.TripLength())
}

func TestValidatorAcceptsToday(t *testing.T) {
	req := validRequest()
	req.StartDate = "2026-10-18"

	_, err := newTestValidator().Validate(req)
	require.NoError(t, err)
}

func TestValidatorRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Request)
		message string
	}{
		{"missing destination", func(r *Request) { r.Destination = "  " }, MsgMissingFields},
		{"missing start", func(r *Request) { r.StartDate = "" }, MsgMissingFields},
		{"missing end", func(r *Request) { r.EndDate = "" }, MsgMissingFields},
		{"missing budget", func(r *Request) { r.Budget = "" }, MsgMissingFields},
		{"start yesterday", func(r *Request) { r.StartDate = "2026-10-17" }, MsgStartInPast},
		{"end equals start", func(r *Request) { r.EndDate = r.StartDate }, MsgEndBeforeStart},
		{"end before start", func(r *Request) { r.EndDate = "2026-10-19"; r.StartDate = "2026-10-20" }, MsgEndBeforeStart},
		{"bad date", func(r *Request) { r.StartDate = "19/10/2026" }, MsgInvalidDate},
		{"unknown tier", func(r *Request) { r.Budget = "shoestring" }, MsgInvalidBudget},
		{"zero travelers", func(r *Request) { r.Travelers = "0" }, MsgInvalidTravelers},
		{"text travelers", func(r *Request) { r.Travelers = "two" }, MsgInvalidTravelers},
		{"unknown interest", func(r *Request) { r.Interests = []string{"food", "shopping"} }, MsgInvalidInterest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := newTestValidator().Validate(req)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Equal(t, tc.message, apperrors.MessageOf(err, ""))
		})
	}
}

func TestValidatorMissingFieldsWinsOverPastDate(t *testing.T) {
	req := validRequest()
	req.StartDate = "2020-01-01"
	req.Budget = ""

	_, err := newTestValidator().Validate(req)
	require.Equal(t, MsgMissingFields, apperrors.MessageOf(err, ""))
}

func TestValidatorDefaultsTravelersAndKeepsInterestOrder(t *testing.T) {
	req := validRequest()
	req.Travelers = ""
	req.Budget = "Luxury"
	req.Interests = []string{"nature", "culture", "", "nature"}

	trip, err := newTestValidator().Validate(req)
	require.NoError(t, err)
	require.Equal(t, 1, trip.Travelers)
	require.Equal(t, BudgetLuxury, trip.Budget)
	require.Equal(t, []Interest{InterestNature, InterestCulture}, trip.Interests)
}

func TestValidatorUsesLocationForToday(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-10-18 20:00 UTC is already 2026-10-19 in UTC+10.
	v := NewValidator(loc, func() time.Time { return time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC) })

	_, err := v.Validate(validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartDate = "2026-10-18"
	_, err = v.Validate(req)
	require.Equal(t, MsgStartInPast, apperrors.MessageOf(err, ""))
}

func TestTripLengthRoundsUp(t *testing.T) {
	start := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	trip := TripRequest{StartDate: start, EndDate: start.Add(49 * time.Hour)}
	require.Equal(t, 3, trip.TripLength())

	trip.EndDate = start.Add(48 * time.Hour)
	require.Equal(t, 2, trip.TripLength())

	require.Equal(t, 0, TripRequest{}.TripLength())
}

func TestValidatorTripLengthAcrossDSTChange(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	v := NewValidator(paris, func() time.Time { return time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC) })

	// Clocks go back on 2026-10-25 in Paris; the night is 25 hours long.
	trip, err := v.Validate(Request{Destination: "paris", StartDate: "2026-10-25", EndDate: "2026-10-26", Budget: "moderate"})
	require.NoError(t, err)
	require.Equal(t, 1, trip.TripLength())

	// Spring forward on 2027-03-28; the night is 23 hours long.
	trip, err = v.Validate(Request{Destination: "paris", StartDate: "2027-03-27", EndDate: "2027-03-29", Budget: "moderate"})
	require.NoError(t, err)
	require.Equal(t, 2, trip.TripLength())
}

func TestTripLengthIgnoresLocationOffsetChanges(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	trip := TripRequest{
		StartDate: time.Date(2026, 10, 25, 0, 0, 0, 0, paris),
		EndDate:   time.Date(2026, 10, 26, 0, 0, 0, 0, paris),
	}
	require.Equal(t, 1, trip.TripLength())
}
