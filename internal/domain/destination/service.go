package destination

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

// MsgComingSoon is shown when a destination has no detail panel yet.
const MsgComingSoon = "Destination details coming soon!"

// Service exposes the destination detail catalog.
type Service interface {
	Lookup(ctx context.Context, code string) (Detail, error)
	Featured(ctx context.Context) []Summary
}

type service struct {
	details map[string]Detail
	order   []string
	logger  *slog.Logger
}

// NewService copies details keyed by code. order fixes the card order;
// codes missing from order are appended alphabetically.
func NewService(details map[string]Detail, order []string, logger *slog.Logger) (Service, error) {
	s := &service{
		details: make(map[string]Detail, len(details)),
		logger:  logger.With("component", "destination.service"),
	}
	for code, detail := range details {
		key := normalizeCode(code)
		if key == "" {
			return nil, fmt.Errorf("destination code cannot be empty")
		}
		if strings.TrimSpace(detail.Name) == "" {
			return nil, fmt.Errorf("destination %q has no name", key)
		}
		detail.Code = key
		detail.Highlights = slices.Clone(detail.Highlights)
		detail.Included = slices.Clone(detail.Included)
		detail.NearbyPlaces = slices.Clone(detail.NearbyPlaces)
		s.details[key] = detail
	}

	seen := make(map[string]struct{}, len(s.details))
	for _, code := range order {
		key := normalizeCode(code)
		if _, ok := s.details[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		s.order = append(s.order, key)
	}
	rest := make([]string, 0, len(s.details))
	for key := range s.details {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)
	s.order = append(s.order, rest...)
	return s, nil
}

// Lookup returns a not_found AppError carrying MsgComingSoon for unknown codes.
func (s *service) Lookup(_ context.Context, code string) (Detail, error) {
	key := normalizeCode(code)
	detail, ok := s.details[key]
	if !ok {
		s.logger.Debug("destination lookup miss", "code", key)
		return Detail{}, apperrors.Wrap(apperrors.CodeNotFound, MsgComingSoon, nil)
	}
	detail.Highlights = slices.Clone(detail.Highlights)
	detail.Included = slices.Clone(detail.Included)
	detail.NearbyPlaces = slices.Clone(detail.NearbyPlaces)
	return detail, nil
}

func (s *service) Featured(_ context.Context) []Summary {
	out := make([]Summary, 0, len(s.order))
	for _, key := range s.order {
		d := s.details[key]
		out = append(out, Summary{
			Code:     d.Code,
			Name:     d.Name,
			Subtitle: d.Subtitle,
			Image:    d.Image,
			Price:    d.Price,
			Rating:   d.Rating,
		})
	}
	return out
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
