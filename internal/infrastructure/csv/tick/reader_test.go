package tick

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	pkgerrors "github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/util"
)

func newUTCReader(t *testing.T) *Reader {
	t.Helper()
	r, err := NewReader(Config{TimeColumn: "Time (EET)", PriceColumn: "Bid", Location: "UTC"})
	require.NoError(t, err)
	return r
}

func TestReader_Read(t *testing.T) {
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		input    string
		assertFn func(t *testing.T, ticks []barv1.Tick, err error)
	}{
		{
			name: "dukascopy layout sorted stably",
			input: "Time (EET),Ask,Bid,AskVolume,BidVolume\n" +
				"2024.03.04 10:00:01.500,1.1,1.05,1,1\n" +
				"2024.03.04 10:00:00.000,1.1,1.01,1,1\n" +
				"2024.03.04 10:00:00.000,1.1,1.02,1,1\n",
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				require.NoError(t, err)
				assert.Equal(t, []barv1.Tick{
					{Timestamp: base, Price: 1.01},
					{Timestamp: base, Price: 1.02},
					{Timestamp: base.Add(1500 * time.Millisecond), Price: 1.05},
				}, ticks)
			},
		},
		{
			name:  "iso layouts",
			input: "Bid,Time (EET)\n1.5,2024-03-04 10:00:00\n1.6,2024-03-04T10:00:02Z\n",
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				require.NoError(t, err)
				require.Len(t, ticks, 2)
				assert.True(t, ticks[1].Timestamp.Equal(base.Add(2*time.Second)))
			},
		},
		{
			name:  "missing column",
			input: "Time,Ask\n2024-03-04 10:00:00,1\n",
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.TickSourceError))
			},
		},
		{
			name:  "bad time",
			input: "Time (EET),Bid\nyesterday,1\n",
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.TickSourceError))
			},
		},
		{
			name:  "bad price",
			input: "Time (EET),Bid\n2024-03-04 10:00:00,abc\n",
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.TickSourceError))
			},
		},
		{
			name:  "header only",
			input: "Time (EET),Bid\n",
			assertFn: func(t *testing.T, ticks []barv1.Tick, err error) {
				require.NoError(t, err)
				assert.Empty(t, ticks)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ticks, err := newUTCReader(t).Read(context.Background(), strings.NewReader(tc.input))
			tc.assertFn(t, ticks, err)
		})
	}
}

func TestReader_LocationApplied(t *testing.T) {
	r, err := NewReader(Config{TimeColumn: "Time (EET)", PriceColumn: "Bid", Location: "EET"})
	require.NoError(t, err)

	ticks, err := r.Read(context.Background(), strings.NewReader("Time (EET),Bid\n2024.01.15 12:00:00.000,1\n"))
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), ticks[0].Timestamp.UTC())
}

func TestNewReader_UnknownLocation(t *testing.T) {
	_, err := NewReader(Config{Location: "Mars/Olympus"})
	assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.InvalidConfigError))
}

func TestReader_Ticks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.csv")
	content := "Time (EET),Bid\n" +
		"2024-03-04 10:00:00,1\n" +
		"2024-03-04 10:01:00,2\n" +
		"2024-03-04 10:02:00,3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := NewReader(Config{Path: path, TimeColumn: "Time (EET)", PriceColumn: "Bid", Location: "UTC"})
	require.NoError(t, err)

	from := util.TimePointer(time.Date(2024, 3, 4, 10, 1, 0, 0, time.UTC))
	ticks, err := r.Ticks(context.Background(), "EURUSD", from, nil)
	require.NoError(t, err)
	require.Len(t, ticks, 2)
	assert.Equal(t, 2.0, ticks[0].Price)

	_, err = mustReader(t, filepath.Join(t.TempDir(), "missing.csv")).Ticks(context.Background(), "", nil, nil)
	assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.TickSourceError))
}

func mustReader(t *testing.T, path string) *Reader {
	t.Helper()
	r, err := NewReader(Config{Path: path, TimeColumn: "Time (EET)", PriceColumn: "Bid"})
	require.NoError(t, err)
	return r
}
