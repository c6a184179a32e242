package swing

import (
	"context"

	"github.com/jackc/pgx/v5"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
)

// Repository stores swing runs in QuestDB.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new swing repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{client: client}
}

// StoreRun records the run metadata.
func (r *Repository) StoreRun(ctx context.Context, run *swingv1.Run) error {
	query := `INSERT INTO swing_runs (started_at, run_id, symbol, interval, bars, swings, empty_skipped, leading_single_skipped, gap_bars_removed)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	err := r.client.Exec(ctx, query,
		run.StartedAt, run.ID, run.Symbol, run.Interval,
		run.Bars, run.Swings, run.EmptySkipped, run.LeadingSingleSkipped, run.GapBarsRemoved)
	if err != nil {
		return errors.NewTracer("failed to store swing run").Wrap(err)
	}

	return nil
}

// StoreBatch bulk inserts swing rows.
func (r *Repository) StoreBatch(ctx context.Context, swings []*Swing) error {
	if len(swings) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"swings"},
		[]string{"timestamp", "run_id", "symbol", "interval", "price", "direction"},
		pgx.CopyFromSlice(len(swings), func(i int) ([]any, error) {
			s := swings[i]
			return []any{s.Timestamp, s.RunID, s.Symbol, s.Interval, s.Price, s.Direction}, nil
		}),
	)
	if err != nil {
		return errors.NewTracer("failed to copy swings").Wrap(err)
	}

	return nil
}

// GetByRunID returns the swings of a run in time order.
func (r *Repository) GetByRunID(ctx context.Context, runID string) ([]*Swing, error) {
	query := `SELECT timestamp, run_id, symbol, interval, price, direction
			  FROM swings
			  WHERE run_id = $1
			  ORDER BY timestamp ASC`

	rows, err := r.client.Query(ctx, query, runID)
	if err != nil {
		return nil, errors.NewTracer("failed to query swings").Wrap(err)
	}
	defer rows.Close()

	var swings []*Swing
	for rows.Next() {
		s := &Swing{}
		if err := rows.Scan(&s.Timestamp, &s.RunID, &s.Symbol, &s.Interval, &s.Price, &s.Direction); err != nil {
			return nil, errors.NewTracer("failed to scan swing").Wrap(err)
		}
		swings = append(swings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewTracer("error iterating swing rows").Wrap(err)
	}

	return swings, nil
}
