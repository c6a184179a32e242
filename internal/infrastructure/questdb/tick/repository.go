package tick

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
)

// Repository represents the repository for tick data.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new tick repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// StoreBatch bulk inserts ticks and returns how many rows were copied.
func (r *Repository) StoreBatch(ctx context.Context, ticks []*Tick) (int64, error) {
	if len(ticks) == 0 {
		return 0, nil
	}

	copyCount, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"ticks"},
		[]string{"timestamp", "symbol", "price"},
		pgx.CopyFromSlice(len(ticks), func(i int) ([]any, error) {
			tick := ticks[i]
			return []any{tick.Timestamp, tick.Symbol, tick.Price}, nil
		}),
	)
	if err != nil {
		return 0, errors.NewTracer("failed to copy ticks").Wrap(err)
	}

	return copyCount, nil
}

// GetByFilter retrieves ticks in ascending time order.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error) {
	query := "SELECT timestamp, symbol, price FROM ticks WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY timestamp ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.NewTracer("failed to query ticks").Wrap(err)
	}
	defer rows.Close()

	var ticks []*Tick
	for rows.Next() {
		tick := &Tick{}
		if err := rows.Scan(&tick.Timestamp, &tick.Symbol, &tick.Price); err != nil {
			return nil, errors.NewTracer("failed to scan tick").Wrap(err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewTracer("error iterating tick rows").Wrap(err)
	}

	return ticks, nil
}
