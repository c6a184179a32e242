package zigzag

import (
	"context"
	"time"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/internal/domain/zigzag"
	swingRepo "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/swing"
	"github.com/JieiGarcia/market-microstructure-research/internal/usecase/resample"
	"github.com/JieiGarcia/market-microstructure-research/internal/usecase/swing"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/interval"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
	"github.com/JieiGarcia/market-microstructure-research/pkg/util"
)

// Options tunes a run.
type Options struct {
	// Workers bounds the classification pool. Values below 1 mean one worker.
	Workers int
	// MaxGapRun is the longest run of empty bars kept. Zero means one day of
	// bars at the run interval, a negative value keeps every gap.
	MaxGapRun int
}

// Sinks receive the result of every successful run. Nil sinks are skipped.
type Sinks struct {
	Swings      swingRepo.SwingRepository
	Transaction questdb.Transaction
	Publisher   zigzag.Publisher
	Cache       zigzag.Cache
	Exporter    zigzag.Exporter
}

// Usecase is the zigzag pipeline.
type Usecase struct {
	source  zigzag.TickSource
	sinks   Sinks
	options Options
	logger  logger.Interface
	now     func() time.Time
}

// NewUsecase creates a new zigzag usecase.
func NewUsecase(source zigzag.TickSource, sinks Sinks, options Options, logger logger.Interface) *Usecase {
	if options.Workers < 1 {
		options.Workers = 1
	}
	return &Usecase{
		source:  source,
		sinks:   sinks,
		options: options,
		logger:  logger,
		now:     time.Now,
	}
}

// Run loads the ticks of req, builds the swings and hands them to the sinks.
func (u *Usecase) Run(ctx context.Context, req zigzag.Request) (*zigzag.Result, error) {
	if err := interval.ValidateTimeRange(req.From, req.To, req.Interval); err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.InvalidConfigError), "interval")
	}
	iv, _ := interval.GetInterval(req.Interval)

	ctx = util.WithRunID(ctx, req.RunID)
	run := &swingv1.Run{
		ID:        util.GetRunID(ctx),
		Symbol:    req.Symbol,
		Interval:  iv.Name,
		StartedAt: u.now().UTC(),
	}

	ticks, err := u.source.Ticks(ctx, req.Symbol, req.From, req.To)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	u.logger.InfoContext(ctx, "ticks loaded", logger.NewField("count", len(ticks)))
	if err := ctx.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	maxRun := u.options.MaxGapRun
	if maxRun == 0 {
		maxRun = iv.BarsPerDay()
	}
	descs, gaps := resample.ExcludeLongGaps(resample.Group(ticks, iv), maxRun)
	run.GapBarsRemoved = gaps.Removed
	u.logger.InfoContext(ctx, "long gaps removed",
		logger.NewField("bars", gaps.Total),
		logger.NewField("removed", gaps.Removed),
		logger.NewField("runs", gaps.Runs),
		logger.NewField("percent", gaps.Percent()),
	)

	records, err := classifyAll(ctx, descs, u.options.Workers)
	if err != nil {
		return nil, err
	}

	points, stats, err := swing.Build(records, u.logger)
	if err != nil {
		return nil, err
	}
	run.Bars = stats.Bars
	run.Swings = len(points)
	run.EmptySkipped = stats.EmptySkipped
	run.LeadingSingleSkipped = stats.LeadingSingleEventSkipped
	u.logger.InfoContext(ctx, "swings built",
		logger.NewField("bars", stats.Bars),
		logger.NewField("swings", len(points)),
		logger.NewField("empty_skipped", stats.EmptySkipped),
	)

	result := &zigzag.Result{Run: run, Swings: points}
	if err := u.deliver(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}
