package zigzag

import (
	"context"
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/tick"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

// RepositorySource reads ticks from the tick repository.
type RepositorySource struct {
	repository tick.TickRepository
}

// NewRepositorySource creates a tick source backed by repository.
func NewRepositorySource(repository tick.TickRepository) *RepositorySource {
	return &RepositorySource{repository: repository}
}

// Ticks returns the ticks of symbol inside [from, to].
func (s *RepositorySource) Ticks(ctx context.Context, symbol string, from, to *time.Time) ([]barv1.Tick, error) {
	rows, err := s.repository.GetByFilter(ctx, tick.Filter{Symbol: symbol, From: from, To: to})
	if err != nil {
		return nil, errors.NewErrorDetails("failed to load ticks: "+err.Error(), string(errors.TickSourceError), symbol)
	}

	ticks := make([]barv1.Tick, len(rows))
	for i, row := range rows {
		ticks[i] = row.ToDomain()
	}
	return ticks, nil
}
