package notify

import (
	"strings"
	"time"
)

// Severity selects the styling of a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// DefaultTTL is how long a toast stays on screen.
const DefaultTTL = 3 * time.Second

// Notification is a transient banner. Each one is independent; nothing is
// queued or deduplicated.
type Notification struct {
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	TTL      time.Duration `json:"-"`
}

// New builds a notification; unknown severities fall back to Info.
func New(message string, severity Severity) Notification {
	switch severity {
	case Success, Error, Info:
	default:
		severity = Info
	}
	return Notification{Message: strings.TrimSpace(message), Severity: severity, TTL: DefaultTTL}
}

// Icon names the icon shown next to the message.
func (n Notification) Icon() string {
	switch n.Severity {
	case Success:
		return "check-circle"
	case Error:
		return "exclamation-circle"
	default:
		return "info-circle"
	}
}

// Style returns the colour classes for the banner.
func (n Notification) Style() string {
	switch n.Severity {
	case Success:
		return "bg-green-500 text-white"
	case Error:
		return "bg-red-500 text-white"
	default:
		return "bg-blue-500 text-white"
	}
}

// Common notifications raised by the planner flows.
var (
	PlanGenerated = New("Travel plan generated successfully!", Success)
)
