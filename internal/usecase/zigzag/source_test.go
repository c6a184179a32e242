package zigzag

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/tick"
	tickMock "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/tick/mock"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

func TestRepositorySource_Ticks(t *testing.T) {
	from := base
	to := base.Add(time.Hour)

	testCases := []struct {
		name     string
		mockFn   func(repo *tickMock.MockTickRepository)
		assertFn func(t *testing.T, ticks []barv1.Tick, err error)
	}{
		{
			name: "maps rows to ticks",
			mockFn: func(repo *tickMock.MockTickRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), tick.Filter{Symbol: "EURUSD", From: &from, To: &to}).
					Return([]*tick.Tick{{Timestamp: base, Symbol: "EURUSD", Price: 1.1}}, nil)
			},
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				require.NoError(t, err)
				assert.Equal(t, []barv1.Tick{{Timestamp: base, Price: 1.1}}, ticks)
			},
		},
		{
			name: "repository failure",
			mockFn: func(repo *tickMock.MockTickRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), gomock.Any()).Return(nil, stderrors.New("timeout"))
			},
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.TickSourceError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := tickMock.NewMockTickRepository(ctrl)
			tc.mockFn(repo)

			ticks, err := NewRepositorySource(repo).Ticks(context.Background(), "EURUSD", &from, &to)
			tc.assertFn(t, ticks, err)
		})
	}
}
