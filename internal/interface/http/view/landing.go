package view

import (
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yanqian/travel-planner/internal/domain/destination"
	"github.com/yanqian/travel-planner/internal/domain/notify"
	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/pkg/metrics"
)

// LandingData is everything the landing page can show. Plan and Modal are
// optional; they are set when the page answers a form post without scripts.
type LandingData struct {
	Currency      string
	Today         string
	Featured      []destination.Summary
	Trending      []metrics.Counter
	Form          planner.Request
	Plan          *PlanView
	Modal         *destination.Detail
	Notifications []notify.Notification
}

// PlanView is a generated plan plus the query string that rebuilds it.
type PlanView struct {
	Plan  planner.TripPlan
	Query string
}

var budgetLabels = map[planner.BudgetTier]string{
	planner.BudgetBudget:   "Budget",
	planner.BudgetModerate: "Moderate",
	planner.BudgetLuxury:   "Luxury",
	planner.BudgetPremium:  "Premium",
}

var interestIcons = map[planner.Interest]string{
	planner.InterestCulture:   "fa-landmark",
	planner.InterestAdventure: "fa-mountain",
	planner.InterestFood:      "fa-utensils",
	planner.InterestNature:    "fa-leaf",
}

// Landing renders the full page.
func Landing(data LandingData) g.Node {
	return Layout(PageConfig{},
		navbar(),
		hero(),
		destinationsSection(data.Featured, data.Trending),
		plannerSection(data),
		modalContainer(data),
		Div(ID("notifications"), Toasts(data.Notifications...)),
		footer(),
	)
}

func destinationsSection(featured []destination.Summary, trending []metrics.Counter) g.Node {
	return Section(
		ID("destinations"),
		Class("container mx-auto px-6 py-20"),
		H2(Class("text-4xl font-bold text-center mb-4"), g.Text("Popular Destinations")),
		P(Class("text-center text-gray-600 mb-12"), g.Text("Tap a destination for details and a one-click plan.")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
			g.Group(g.Map(featured, DestinationCard)),
		),
		TrendingStrip(trending),
	)
}

// TrendingStrip lists the most planned destinations. It renders nothing when
// nobody has planned a trip yet.
func TrendingStrip(items []metrics.Counter) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(
		ID("trending"),
		Class("mt-12 flex flex-wrap items-center gap-3"),
		Span(Class("font-semibold text-gray-700"), I(Class("fas fa-fire text-orange-500 mr-2")), g.Text("Trending:")),
		g.Group(g.Map(items, func(item metrics.Counter) g.Node {
			return A(
				Href("/?destination="+queryEscape(item.Label)+"#planner"),
				Class("bg-orange-100 text-orange-800 px-3 py-1 rounded-full text-sm"),
				g.Textf("%s (%d)", item.Label, item.Count),
			)
		})),
	)
}

func plannerSection(data LandingData) g.Node {
	form := data.Form
	travelers := form.Travelers
	if travelers == "" {
		travelers = "1"
	}
	selected := planner.BudgetTier(strings.ToLower(strings.TrimSpace(form.Budget)))

	return Section(
		ID("planner"),
		Class("bg-white py-20"),
		Div(
			Class("container mx-auto px-6 max-w-4xl"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("Plan Your Trip")),
			Form(
				ID("travelForm"),
				Action("/planner"),
				Method("post"),
				Class("space-y-6"),
				Data("async", "true"),
				Div(
					Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
					field("destination", "Destination", Input(Type("text"), ID("destination"), Name("destination"), Value(form.Destination), Placeholder("Where do you want to go?"), Class("w-full border rounded-lg px-4 py-3"))),
					field("travelers", "Travelers", Input(Type("number"), ID("travelers"), Name("travelers"), Min("1"), Value(travelers), Class("w-full border rounded-lg px-4 py-3"))),
					field("startDate", "Start Date", Input(Type("date"), ID("startDate"), Name("startDate"), Min(data.Today), Value(form.StartDate), Class("w-full border rounded-lg px-4 py-3"))),
					field("endDate", "End Date", Input(Type("date"), ID("endDate"), Name("endDate"), Min(data.Today), Value(form.EndDate), Class("w-full border rounded-lg px-4 py-3"))),
				),
				g.El("fieldset",
					g.El("legend", Class("font-semibold mb-3"), g.Text("Budget")),
					Div(
						Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
						g.Group(g.Map(planner.BudgetTiers, func(tier planner.BudgetTier) g.Node {
							return Label(
								Class("flex items-center gap-2 border rounded-lg px-4 py-3 cursor-pointer"),
								Input(Type("radio"), Name("budget"), Value(string(tier)), g.If(tier == selected, Checked())),
								Span(g.Text(budgetLabels[tier])),
							)
						})),
					),
				),
				g.El("fieldset",
					g.El("legend", Class("font-semibold mb-3"), g.Text("Interests")),
					Div(
						Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
						g.Group(g.Map(planner.Interests, func(interest planner.Interest) g.Node {
							return Label(
								Class("flex items-center gap-2 border rounded-lg px-4 py-3 cursor-pointer"),
								Input(Type("checkbox"), Name("interests"), Value(string(interest)), g.If(slices.Contains(form.Interests, string(interest)), Checked())),
								I(Class("fas "+interestIcons[interest]+" text-blue-500")),
								Span(Class("capitalize"), g.Text(string(interest))),
							)
						})),
					),
				),
				Button(
					Type("submit"),
					Class("w-full bg-gradient-to-r from-blue-600 to-purple-600 text-white py-4 rounded-lg font-semibold"),
					I(Class("fas fa-magic mr-2")),
					g.Text("Generate Travel Plan"),
				),
			),
			resultsContainer(data),
		),
	)
}

func field(id, label string, input g.Node) g.Node {
	return Div(
		Label(For(id), Class("block font-semibold mb-2"), g.Text(label)),
		input,
	)
}

func resultsContainer(data LandingData) g.Node {
	classes := "mt-12 bg-gray-50 rounded-2xl p-8"
	var content g.Node
	if data.Plan == nil {
		classes += " hidden"
	} else {
		content = PlanResults(data.Plan.Plan, PlanOptions{Currency: data.Currency, Query: data.Plan.Query})
	}
	return Div(
		ID("results"),
		Class(classes),
		H3(Class("text-2xl font-bold mb-6"), g.Text("Your Travel Plan")),
		Div(ID("planContent"), content),
	)
}

func modalContainer(data LandingData) g.Node {
	classes := "fixed inset-0 z-40 bg-black/50 overflow-y-auto"
	var content g.Node
	if data.Modal == nil {
		classes += " hidden"
	} else {
		content = DestinationModal(*data.Modal)
	}
	return Div(
		ID("destinationModal"),
		Class(classes),
		Data("modal", "destination"),
		Div(
			Class("bg-white max-w-5xl mx-auto my-12 rounded-2xl p-8 relative"),
			A(
				Href("/#destinations"),
				Class("absolute top-4 right-4 text-gray-500 hover:text-gray-800"),
				Data("modal-close", "true"),
				Aria("label", "Close"),
				I(Class("fas fa-times text-2xl")),
			),
			Div(ID("destinationContent"), content),
		),
	)
}
