package zigzag

import (
	"context"
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
)

// Request selects the ticks of one run.
type Request struct {
	// RunID is generated when empty.
	RunID    string
	Symbol   string
	Interval string
	From     *time.Time
	To       *time.Time
}

// Result is the outcome of a successful run.
type Result struct {
	Run        *swingv1.Run
	Swings     []swingv1.Point
	ExportPath string
}

// Usecase turns ticks into an intra-bar zigzag.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Usecase interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// IngestUsecase copies ticks from a source into the tick store.
type IngestUsecase interface {
	Ingest(ctx context.Context, symbol string, from, to *time.Time) (int64, error)
}

// TickSource yields the ticks of a symbol in ascending time order.
type TickSource interface {
	Ticks(ctx context.Context, symbol string, from, to *time.Time) ([]barv1.Tick, error)
}

// Publisher streams the swings of a run.
type Publisher interface {
	Publish(ctx context.Context, run *swingv1.Run, points []swingv1.Point) error
}

// Cache keeps the latest run per symbol and interval.
type Cache interface {
	StoreLatest(ctx context.Context, run *swingv1.Run, points []swingv1.Point) error
}

// Exporter writes the swings of a run to a file and returns its path.
type Exporter interface {
	Export(run *swingv1.Run, points []swingv1.Point) (string, error)
}
