package view

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yanqian/travel-planner/internal/domain/destination"
)

// DestinationCard is one tile in the destinations grid. Without scripts the
// link loads the page with the modal open.
func DestinationCard(s destination.Summary) g.Node {
	return A(
		Href("/destinations/"+s.Code),
		Class("destination-card block bg-white rounded-2xl shadow-lg overflow-hidden"),
		Data("destination", s.Code),
		Div(
			Class("relative h-56"),
			Img(Src(s.Image), Alt(s.Name), g.Attr("loading", "lazy"), Class("w-full h-full object-cover")),
			Div(Class("absolute top-4 right-4 bg-white/90 px-2 py-1 rounded-full text-sm font-semibold"), I(Class("fas fa-star text-yellow-400 mr-1")), g.Text(s.Rating)),
		),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-bold"), g.Text(s.Name)),
			P(Class("text-gray-600 mb-3"), g.Text(s.Subtitle)),
			Span(Class("text-blue-600 font-bold"), g.Text(s.Price)),
		),
	)
}

// DestinationModal renders the detail panel for the modal overlay.
func DestinationModal(d destination.Detail) g.Node {
	return Div(
		Data("fragment", "modal"),
		Data("destination", d.Code),
		Class("grid grid-cols-1 lg:grid-cols-2 gap-8"),
		Div(
			Div(
				Class("relative h-80 rounded-2xl overflow-hidden mb-6"),
				Img(Src(d.Image), Alt(d.Name), Class("w-full h-full object-cover")),
				Div(Class("absolute inset-0 bg-gradient-to-t from-black/50 to-transparent")),
				Div(
					Class("absolute bottom-4 left-4 text-white"),
					H2(Class("text-3xl font-bold"), g.Text(d.Name)),
					P(Class("text-lg opacity-90"), g.Text(d.Subtitle)),
				),
			),
			Div(
				Class("bg-gradient-to-r from-blue-50 to-purple-50 rounded-2xl p-6 mb-6 border-2 border-blue-200"),
				Div(
					Class("flex items-center justify-between mb-4"),
					Div(
						Span(Class("text-4xl font-bold text-blue-600"), g.Text(d.Price)),
						Span(Class("text-gray-600 ml-2"), g.Text("per person")),
					),
					Div(
						Class("text-right"),
						Div(Class("flex items-center text-yellow-400 mb-1"), g.Raw(strings.Repeat(`<i class="fas fa-star"></i>`, 5))),
						Span(Class("text-lg font-semibold text-gray-700"), g.Text(d.Rating+"/5")),
					),
				),
				Div(
					Class("grid grid-cols-2 gap-4 text-sm"),
					fact("Duration", d.Duration),
					fact("Best Time", d.BestTime),
				),
			),
			Div(
				Class("bg-white rounded-2xl p-6 border border-gray-200"),
				H3(Class("text-xl font-bold mb-4"), g.Text("Nearby Places & Rates")),
				Div(
					Class("space-y-3"),
					g.Group(g.Map(d.NearbyPlaces, func(place destination.PlaceRate) g.Node {
						return Div(
							Class("flex items-center justify-between p-3 bg-gray-50 rounded-lg"),
							Div(
								Div(Class("font-semibold"), g.Text(place.Name)),
								Div(Class("text-sm text-gray-600"), g.Text(place.Distance+" away")),
							),
							Div(Class("font-bold text-green-600"), g.Text(place.Rate)),
						)
					})),
				),
			),
		),
		Div(
			panel("Description", P(Class("text-gray-700 leading-relaxed"), g.Text(d.Description))),
			panel("Highlights", checklist(d.Highlights, "fa-check-circle text-green-500")),
			panel("What's Included", checklist(d.Included, "fa-check text-blue-500")),
			Form(
				Action("/destinations/"+d.Code+"/plan"),
				Method("post"),
				Data("async", "true"),
				Class("mt-6"),
				Button(
					Type("submit"),
					Class("w-full bg-gradient-to-r from-blue-600 to-purple-600 text-white py-4 rounded-2xl font-semibold"),
					I(Class("fas fa-magic mr-2")),
					g.Text("Generate Travel Plan"),
				),
			),
		),
	)
}

func fact(label, value string) g.Node {
	return Div(
		Class("text-center"),
		Div(Class("font-semibold text-gray-700"), g.Text(label)),
		Div(Class("text-blue-600"), g.Text(value)),
	)
}

func panel(title string, body g.Node) g.Node {
	return Div(
		Class("bg-white rounded-2xl p-6 border border-gray-200 mb-6"),
		H3(Class("text-xl font-bold mb-4"), g.Text(title)),
		body,
	)
}

func checklist(items []string, icon string) g.Node {
	return Div(
		Class("grid grid-cols-1 gap-2"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Div(Class("flex items-center"), I(Class("fas "+icon+" mr-3")), Span(g.Text(item)))
		})),
	)
}
