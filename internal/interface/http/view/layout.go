// Package view renders the travel planner pages and fragments with gomponents.
package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageConfig carries the document metadata.
type PageConfig struct {
	Title       string
	Description string
}

// Layout wraps content in the full HTML document.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "TravelPlanner - Plan Your Perfect Trip"
	}
	if config.Description == "" {
		config.Description = "Build a day-by-day itinerary and cost estimate for your next trip."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css")),
				Link(Rel("stylesheet"), Href("/static/css/planner.css")),
			),
			Body(
				Class("bg-gray-50 text-gray-800"),
				g.Group(content),
				Script(Src("/static/js/planner.js"), Defer()),
			),
		),
	})
}

func navbar() g.Node {
	return Nav(
		Class("fixed top-0 inset-x-0 z-30 bg-white/90 backdrop-blur shadow-sm"),
		Div(
			Class("container mx-auto px-6 py-4 flex items-center justify-between"),
			A(
				Href("#home"),
				Class("flex items-center space-x-2"),
				I(Class("fas fa-globe-americas text-2xl text-blue-500")),
				Span(Class("text-xl font-bold"), g.Text("TravelPlanner")),
			),
			Div(
				Class("hidden md:flex space-x-8"),
				A(Href("#home"), Class("hover:text-blue-500"), g.Text("Home")),
				A(Href("#destinations"), Class("hover:text-blue-500"), g.Text("Destinations")),
				A(Href("#planner"), Class("hover:text-blue-500"), g.Text("Planner")),
			),
		),
	)
}

func hero() g.Node {
	return Section(
		ID("home"),
		Class("hero-bg pt-32 pb-24 text-white text-center"),
		H1(Class("text-5xl font-bold mb-6"), g.Text("Plan Your Perfect Trip")),
		P(Class("text-xl opacity-90 mb-8"), g.Text("Tell us where you want to go and we will build the itinerary.")),
		A(Href("#planner"), Class("bg-white text-blue-600 px-8 py-4 rounded-full font-semibold"), g.Text("Start Planning")),
	)
}

func footer() g.Node {
	return Footer(
		Class("bg-gray-900 text-gray-400 py-8 text-center text-sm"),
		g.Text("TravelPlanner. Estimates are indicative only."),
	)
}
