package stats

import (
	"context"
	"fmt"

	"file-storage/core/server"
)

// AggregateStats are the site-wide totals shown by the gallery.
type AggregateStats struct {
	Downloads      int64 `json:"downloads"`
	UniquePackages int   `json:"unique_packages"`
	TotalPackages  int   `json:"total_packages"`
}

// Service provides aggregate statistics. A nil result with a nil error means
// no statistics are available.
type Service interface {
	GetAggregateStats(ctx context.Context) (*AggregateStats, error)
}

// NullService never has statistics.
type NullService struct{}

// GetAggregateStats always returns nil.
func (NullService) GetAggregateStats(context.Context) (*AggregateStats, error) {
	return nil, nil
}

// NewService returns the statistics service selected by provider.
func NewService(provider string) (Service, error) {
	switch provider {
	case "", server.StatsProviderNull:
		return NullService{}, nil
	default:
		return nil, fmt.Errorf("unknown stats provider %q", provider)
	}
}
