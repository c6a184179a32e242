package tick

import (
	"context"
)

// TickRepository is the interface for the tick repository.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type TickRepository interface {
	GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error)
	StoreBatch(ctx context.Context, ticks []*Tick) (int64, error)
}
