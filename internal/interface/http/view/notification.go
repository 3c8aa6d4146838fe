package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yanqian/travel-planner/internal/domain/notify"
)

// Toast renders one auto-dismissing banner. The client removes it after its TTL.
func Toast(n notify.Notification) g.Node {
	ttl := n.TTL
	if ttl <= 0 {
		ttl = notify.DefaultTTL
	}
	return Div(
		Class("toast fixed top-20 right-4 z-50 px-6 py-3 rounded-lg shadow-lg "+n.Style()),
		g.Attr("role", "status"),
		Data("toast", string(n.Severity)),
		Data("ttl", strconv.FormatInt(ttl.Milliseconds(), 10)),
		Div(
			Class("flex items-center"),
			I(Class("fas fa-"+n.Icon()+" mr-2")),
			Span(g.Text(n.Message)),
		),
	)
}

// Toasts renders independent banners; nothing is merged or deduplicated.
func Toasts(items ...notify.Notification) g.Node {
	return g.Group(g.Map(items, Toast))
}
