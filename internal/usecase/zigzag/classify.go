package zigzag

import (
	"context"
	stderrors "errors"

	"golang.org/x/sync/errgroup"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/internal/usecase/classifier"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

// classifyAll classifies descs on a bounded pool. Every failing bar is
// reported in a single BaseError and no records are returned in that case.
func classifyAll(ctx context.Context, descs []barv1.Descriptor, workers int) ([]*barv1.Record, error) {
	records := make([]*barv1.Record, len(descs))
	failures := make([]error, len(descs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range descs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i], failures[i] = classifier.Classify(descs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.TracerFromError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	base := errors.NewBaseError()
	for _, err := range failures {
		if err == nil {
			continue
		}
		var details *errors.ErrorDetails
		if stderrors.As(err, &details) {
			base.AddErrorDetails(details)
			continue
		}
		base.AddErrorDetails(errors.NewErrorDetails(err.Error(), string(errors.GeneralInternalServerError), ""))
	}
	if base.HasDetails() {
		return nil, base
	}
	return records, nil
}
