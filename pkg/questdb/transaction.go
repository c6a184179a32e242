package questdb

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

type contextKey string

const txKey contextKey = "questdb_transaction"

// Begin starts a transaction and returns a context carrying it.
func Begin(ctx context.Context, client QuestDBClient) (context.Context, error) {
	tx, err := client.Begin(ctx)
	if err != nil {
		return nil, errors.NewTracer("failed to begin transaction").Wrap(err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction from context.
func Commit(ctx context.Context) error {
	tx, ok := GetTx(ctx)
	if !ok {
		return errors.NewTracer("no transaction found in context")
	}
	return tx.Commit(ctx)
}

// Rollback rolls back the transaction from context.
func Rollback(ctx context.Context) error {
	tx, ok := GetTx(ctx)
	if !ok {
		return errors.NewTracer("no transaction found in context")
	}
	return tx.Rollback(ctx)
}

// GetTx extracts the transaction from context.
func GetTx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey).(pgx.Tx)
	return tx, ok
}

type transaction struct {
	client QuestDBClient
}

// NewTransaction returns a Transaction backed by client.
func NewTransaction(client QuestDBClient) Transaction {
	return &transaction{client: client}
}

// WithinTransaction commits when fn succeeds and rolls back otherwise.
// A context that already carries a transaction is reused as is.
func (t *transaction) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := GetTx(ctx); ok {
		return fn(ctx)
	}

	txCtx, err := Begin(ctx, t.client)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := Rollback(txCtx); rbErr != nil {
			return errors.NewTracer("rollback failed: " + rbErr.Error()).Wrap(err)
		}
		return err
	}

	if err := Commit(txCtx); err != nil {
		return errors.NewTracer("failed to commit transaction").Wrap(err)
	}
	return nil
}
