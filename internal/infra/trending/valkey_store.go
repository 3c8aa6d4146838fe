package trending

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/pkg/metrics"
)

// ValkeyStore keeps destination counters in a sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "planner"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Increment(ctx context.Context, key, label string) error {
	if key == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(key).Build()).Error(); err != nil {
		return err
	}
	if label != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.labelKey(key)).Value(label).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) Top(ctx context.Context, limit int) ([]metrics.Counter, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]metrics.Counter, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, metrics.Counter{Key: member, Label: member, Count: int64(score)})
	}
	s.fillLabels(ctx, out)
	return out, nil
}

// fillLabels resolves display labels with a single MGET. Missing labels keep
// the counter key.
func (s *ValkeyStore) fillLabels(ctx context.Context, counters []metrics.Counter) {
	if len(counters) == 0 {
		return
	}
	keys := make([]string, len(counters))
	for i, c := range counters {
		keys[i] = s.labelKey(c.Key)
	}
	values, err := s.client.Do(ctx, s.client.B().Mget().Key(keys...).Build()).ToArray()
	if err != nil {
		return
	}
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i], _ = v.ToString()
	}
	applyLabels(counters, labels)
}

// applyLabels copies non-empty labels onto counters by position.
func applyLabels(counters []metrics.Counter, labels []string) {
	for i := range counters {
		if i < len(labels) && labels[i] != "" {
			counters[i].Label = labels[i]
		}
	}
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) labelKey(key string) string {
	return fmt.Sprintf("%s:label:%s", s.prefix, key)
}

var _ planner.TrendingStore = (*ValkeyStore)(nil)
