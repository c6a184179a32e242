package ingest

import (
	"context"
	"time"

	"github.com/JieiGarcia/market-microstructure-research/internal/domain/zigzag"
	"github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/tick"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
)

const defaultBatchSize = 10000

// Usecase copies ticks from a source into the tick repository.
type Usecase struct {
	source         zigzag.TickSource
	tickRepository tick.TickRepository
	batchSize      int
	logger         logger.Interface
}

// NewUsecase creates a new ingest usecase.
func NewUsecase(source zigzag.TickSource, tickRepository tick.TickRepository, batchSize int, logger logger.Interface) *Usecase {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Usecase{
		source:         source,
		tickRepository: tickRepository,
		batchSize:      batchSize,
		logger:         logger,
	}
}

// Ingest stores the ticks of symbol inside [from, to] and returns how many were copied.
func (u *Usecase) Ingest(ctx context.Context, symbol string, from, to *time.Time) (int64, error) {
	ticks, err := u.source.Ticks(ctx, symbol, from, to)
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	var stored int64
	batch := make([]*tick.Tick, 0, u.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := u.tickRepository.StoreBatch(ctx, batch)
		if err != nil {
			return err
		}
		stored += n
		batch = batch[:0]
		return nil
	}

	for _, t := range ticks {
		batch = append(batch, &tick.Tick{Timestamp: t.Timestamp, Symbol: symbol, Price: t.Price})
		if len(batch) < u.batchSize {
			continue
		}
		if err := flush(); err != nil {
			u.logger.ErrorContext(ctx, err, logger.NewField("stored", stored))
			return stored, errors.TracerFromError(err)
		}
	}
	if err := flush(); err != nil {
		u.logger.ErrorContext(ctx, err, logger.NewField("stored", stored))
		return stored, errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "ticks ingested", logger.NewField("symbol", symbol), logger.NewField("count", stored))
	return stored, nil
}
