package swing

import (
	"context"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
)

// SwingRepository persists runs and their swings.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type SwingRepository interface {
	StoreRun(ctx context.Context, run *swingv1.Run) error
	StoreBatch(ctx context.Context, swings []*Swing) error
	GetByRunID(ctx context.Context, runID string) ([]*Swing, error)
}
