package planner

import "time"

// Config holds runtime knobs for the planner service.
type Config struct {
	Location         *time.Location
	SimulatedLatency time.Duration
	TrendingLimit    int
}
