package metrics

// Counter is a named tally surfaced to API consumers.
type Counter struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}
