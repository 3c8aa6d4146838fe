package trending

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/pkg/metrics"
)

// MemoryStore keeps destination counters in process memory for tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
	labels map[string]string
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]int64),
		labels: make(map[string]string),
	}
}

// Increment bumps the counter for key and remembers the first label seen.
func (s *MemoryStore) Increment(_ context.Context, key, label string) error {
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	if _, exists := s.labels[key]; !exists && label != "" {
		s.labels[key] = label
	}
	return nil
}

// Top returns the most planned destinations, ties broken by key.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]metrics.Counter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]metrics.Counter, 0, len(s.counts))
	for key, count := range s.counts {
		label := s.labels[key]
		if label == "" {
			label = key
		}
		items = append(items, metrics.Counter{Key: key, Label: label, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Key < items[j].Key
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ planner.TrendingStore = (*MemoryStore)(nil)
