package questdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb/mock"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

func TestTransaction_WithinTransaction(t *testing.T) {
	errFn := errors.New("store failed")

	testCases := []struct {
		name     string
		mockFn   func(client *mock.MockQuestDBClient, tx *fakeTx)
		fn       func(ctx context.Context) error
		assertFn func(t *testing.T, tx *fakeTx, err error)
	}{
		{
			name: "commits on success",
			mockFn: func(client *mock.MockQuestDBClient, tx *fakeTx) {
				client.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			},
			fn: func(ctx context.Context) error {
				_, ok := questdb.GetTx(ctx)
				if !ok {
					return errors.New("missing transaction")
				}
				return nil
			},
			assertFn: func(t *testing.T, tx *fakeTx, err error) {
				require.NoError(t, err)
				assert.True(t, tx.committed)
				assert.False(t, tx.rolledBack)
			},
		},
		{
			name: "rolls back on failure",
			mockFn: func(client *mock.MockQuestDBClient, tx *fakeTx) {
				client.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			},
			fn: func(ctx context.Context) error { return errFn },
			assertFn: func(t *testing.T, tx *fakeTx, err error) {
				assert.ErrorIs(t, err, errFn)
				assert.False(t, tx.committed)
				assert.True(t, tx.rolledBack)
			},
		},
		{
			name: "begin failure",
			mockFn: func(client *mock.MockQuestDBClient, tx *fakeTx) {
				client.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			fn: func(ctx context.Context) error {
				t.Fatal("fn must not run")
				return nil
			},
			assertFn: func(t *testing.T, tx *fakeTx, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			tx := &fakeTx{}
			tc.mockFn(client, tx)

			err := questdb.NewTransaction(client).WithinTransaction(context.Background(), tc.fn)
			tc.assertFn(t, tx, err)
		})
	}
}

func TestTransaction_ReusesContextTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	outer := &fakeTx{}
	client.EXPECT().Begin(gomock.Any()).Return(outer, nil).Times(1)

	txn := questdb.NewTransaction(client)
	err := txn.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return txn.WithinTransaction(ctx, func(ctx context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.True(t, outer.committed)
}

func TestCommit_NoTransaction(t *testing.T) {
	assert.Error(t, questdb.Commit(context.Background()))
	assert.Error(t, questdb.Rollback(context.Background()))
}
