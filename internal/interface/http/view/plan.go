package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/pkg/util"
)

// PlanOptions controls how a plan is presented. Query is the encoded trip
// request the export and share actions rebuild the plan from.
type PlanOptions struct {
	Currency string
	Query    string
}

// PlanResults renders the results fragment for a generated plan.
func PlanResults(plan planner.TripPlan, opts PlanOptions) g.Node {
	return Div(
		Data("fragment", "results"),
		Div(
			Class("grid grid-cols-1 lg:grid-cols-2 gap-8"),
			Div(
				H4(Class("font-bold text-lg mb-4"), g.Text("Trip Summary")),
				Div(
					Class("space-y-3"),
					summaryRow("Destination", g.Text(plan.Destination)),
					summaryRow("Dates", g.Text(tripDates(plan))),
					summaryRow("Duration", g.Text(pluralDays(plan.Days))),
					summaryRow("Travelers", g.Textf("%d", plan.Travelers)),
					summaryRow("Budget Level", Span(Class("capitalize"), g.Text(string(plan.Budget)))),
					summaryRow("Estimated Cost", Span(Class("text-green-600"), ID("totalCost"), g.Text(util.FormatMoney(opts.Currency, plan.TotalCost)))),
				),
				Div(
					Class("mt-6"),
					H4(Class("font-bold text-lg mb-4"), g.Text("Interests")),
					Div(
						Class("flex flex-wrap gap-2"),
						g.Group(g.Map(plan.Interests, func(interest planner.Interest) g.Node {
							return Span(Class("bg-blue-100 text-blue-800 px-3 py-1 rounded-full text-sm"), g.Text(string(interest)))
						})),
					),
				),
			),
			Div(
				H4(Class("font-bold text-lg mb-4"), g.Text("Daily Itinerary")),
				itinerary(plan.Itinerary),
			),
		),
		nearbyGallery(plan.NearbyPlaces),
		planActions(opts.Query),
	)
}

func summaryRow(label string, value g.Node) g.Node {
	return Div(
		Class("flex justify-between"),
		Span(Class("text-gray-600"), g.Text(label+":")),
		Span(Class("font-semibold"), value),
	)
}

func itinerary(days []planner.ItineraryDay) g.Node {
	if len(days) == 0 {
		return P(Class("text-gray-600 italic"), g.Text("Pick travel dates to get a day-by-day itinerary."))
	}
	return g.Group(g.Map(days, func(day planner.ItineraryDay) g.Node {
		return Div(
			Class("mb-4 p-4 bg-white rounded-lg"),
			Data("day", fmt.Sprint(day.Day)),
			H5(Class("font-semibold text-blue-600 mb-2"), g.Textf("Day %d", day.Day)),
			Ul(
				Class("space-y-1 text-sm"),
				g.Group(g.Map(day.Activities, func(activity string) g.Node {
					return Li(Class("flex items-center"), I(Class("fas fa-check-circle text-green-500 mr-2")), g.Text(activity))
				})),
			),
		)
	}))
}

func nearbyGallery(places []planner.NearbyPlace) g.Node {
	if len(places) == 0 {
		return nil
	}
	return Div(
		Class("mt-8"),
		ID("nearbyPlaces"),
		H4(Class("font-bold text-2xl mb-6"), g.Text("Nearby Places to Visit")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
			g.Group(g.Map(places, nearbyCard)),
		),
	)
}

func nearbyCard(place planner.NearbyPlace) g.Node {
	return Div(
		Class("bg-white rounded-lg shadow-lg overflow-hidden"),
		Div(
			Class("relative"),
			Div(
				Class("flex overflow-x-auto space-x-2 p-4 bg-gray-100"),
				g.Group(g.Map(place.Photos, func(photo string) g.Node {
					return Img(Src(photo), Alt(place.Name), g.Attr("loading", "lazy"), Class("w-32 h-24 object-cover rounded-lg flex-shrink-0"))
				})),
			),
			Div(Class("absolute top-2 right-2 bg-yellow-400 text-black px-2 py-1 rounded-full text-sm font-bold"), g.Text(place.Rating+" ★")),
		),
		Div(
			Class("p-4"),
			H5(Class("font-bold text-lg mb-2"), g.Text(place.Name)),
			P(Class("text-gray-600 text-sm mb-3"), g.Text(place.Description)),
			Div(
				Class("flex justify-between items-center"),
				Span(Class("text-green-600 font-bold text-lg"), g.Text(place.Rate)),
				Span(Class("text-blue-600 text-sm"), g.Text(place.Distance)),
			),
			A(
				Href("https://www.google.com/maps/search/?api=1&query="+queryEscape(place.Name)),
				Target("_blank"),
				Rel("noopener"),
				Class("block text-center w-full mt-3 bg-blue-600 text-white py-2 rounded-lg"),
				I(Class("fas fa-map-marker-alt mr-2")),
				g.Text("View Details"),
			),
		),
	)
}

func planActions(query string) g.Node {
	suffix := ""
	if query != "" {
		suffix = "?" + query
	}
	return Div(
		Class("mt-8 flex flex-col sm:flex-row gap-4"),
		A(
			Href("/planner/export.pdf"+suffix),
			Class("bg-blue-600 text-white px-6 py-3 rounded-lg text-center"),
			I(Class("fas fa-download mr-2")),
			g.Text("Download PDF"),
		),
		A(
			Href("/planner/share.png"+suffix),
			Target("_blank"),
			Class("bg-green-600 text-white px-6 py-3 rounded-lg text-center"),
			I(Class("fas fa-share mr-2")),
			g.Text("Share Plan"),
		),
		A(
			Href("#planner"),
			Class("bg-purple-600 text-white px-6 py-3 rounded-lg text-center"),
			Data("scroll", "travelForm"),
			I(Class("fas fa-edit mr-2")),
			g.Text("Edit Plan"),
		),
	)
}

func tripDates(plan planner.TripPlan) string {
	if plan.StartDate == "" || plan.EndDate == "" {
		return "Flexible dates"
	}
	return plan.StartDate + " to " + plan.EndDate
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
