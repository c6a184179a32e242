package zigzag

import (
	"context"

	"github.com/JieiGarcia/market-microstructure-research/internal/domain/zigzag"
	swingRepo "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/swing"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
)

func (u *Usecase) deliver(ctx context.Context, result *zigzag.Result) error {
	run, points := result.Run, result.Swings

	if u.sinks.Swings != nil {
		store := func(ctx context.Context) error {
			if err := u.sinks.Swings.StoreRun(ctx, run); err != nil {
				return err
			}
			return u.sinks.Swings.StoreBatch(ctx, swingRepo.FromPoints(run, points))
		}

		var err error
		if u.sinks.Transaction != nil {
			err = u.sinks.Transaction.WithinTransaction(ctx, store)
		} else {
			err = store(ctx)
		}
		if err != nil {
			u.logger.ErrorContext(ctx, err, logger.NewField("sink", "questdb"))
			return errors.TracerFromError(err)
		}
	}

	if u.sinks.Publisher != nil {
		if err := u.sinks.Publisher.Publish(ctx, run, points); err != nil {
			return errors.TracerFromError(err)
		}
	}

	if u.sinks.Cache != nil {
		if err := u.sinks.Cache.StoreLatest(ctx, run, points); err != nil {
			return errors.TracerFromError(err)
		}
	}

	if u.sinks.Exporter != nil {
		path, err := u.sinks.Exporter.Export(run, points)
		if err != nil {
			u.logger.ErrorContext(ctx, err, logger.NewField("sink", "parquet"))
			return errors.TracerFromError(err)
		}
		result.ExportPath = path
		u.logger.InfoContext(ctx, "swings exported", logger.NewField("path", path))
	}

	return nil
}
