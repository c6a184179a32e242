package resample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/interval"
)

var base = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func tick(offset time.Duration, price float64) barv1.Tick {
	return barv1.Tick{Timestamp: base.Add(offset), Price: price}
}

func TestGroup(t *testing.T) {
	testCases := []struct {
		name     string
		ticks    []barv1.Tick
		iv       interval.Interval
		assertFn func(t *testing.T, got []barv1.Descriptor)
	}{
		{
			name: "no ticks",
			iv:   interval.Interval1m,
			assertFn: func(t *testing.T, got []barv1.Descriptor) {
				assert.Empty(t, got)
			},
		},
		{
			name: "ohlc with first occurrence of extremes",
			iv:   interval.Interval1m,
			ticks: []barv1.Tick{
				tick(1*time.Second, 1.0),
				tick(10*time.Second, 1.2),
				tick(20*time.Second, 0.9),
				tick(30*time.Second, 1.2),
				tick(40*time.Second, 0.9),
				tick(50*time.Second, 1.1),
			},
			assertFn: func(t *testing.T, got []barv1.Descriptor) {
				require.Len(t, got, 1)
				d := got[0]
				assert.Equal(t, base, d.Start)
				assert.False(t, d.Empty)
				assert.Equal(t, 1.0, d.Open)
				assert.Equal(t, 1.2, d.High)
				assert.Equal(t, 0.9, d.Low)
				assert.Equal(t, 1.1, d.Close)
				assert.Equal(t, base.Add(time.Second), d.OpenTime)
				assert.Equal(t, base.Add(10*time.Second), d.HighTime)
				assert.Equal(t, base.Add(20*time.Second), d.LowTime)
				assert.Equal(t, base.Add(50*time.Second), d.CloseTime)
				assert.Len(t, d.Ticks, 6)
			},
		},
		{
			name: "empty buckets between ticks are kept",
			iv:   interval.Interval1m,
			ticks: []barv1.Tick{
				tick(5*time.Second, 1.0),
				tick(3*time.Minute+5*time.Second, 1.1),
			},
			assertFn: func(t *testing.T, got []barv1.Descriptor) {
				require.Len(t, got, 4)
				assert.False(t, got[0].Empty)
				assert.True(t, got[1].Empty)
				assert.True(t, got[2].Empty)
				assert.False(t, got[3].Empty)
				assert.Equal(t, base.Add(2*time.Minute), got[2].Start)
				assert.Equal(t, base.Add(3*time.Minute), got[3].Start)
			},
		},
		{
			name: "five minute buckets",
			iv:   interval.Interval5m,
			ticks: []barv1.Tick{
				tick(1*time.Minute, 1.0),
				tick(4*time.Minute, 1.3),
				tick(6*time.Minute, 1.2),
			},
			assertFn: func(t *testing.T, got []barv1.Descriptor) {
				require.Len(t, got, 2)
				assert.Equal(t, 1.3, got[0].Close)
				assert.Equal(t, base.Add(5*time.Minute), got[1].Start)
				assert.Equal(t, got[1].OpenTime, got[1].CloseTime)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.assertFn(t, Group(tc.ticks, tc.iv))
		})
	}
}

func descs(pattern string) []barv1.Descriptor {
	out := make([]barv1.Descriptor, 0, len(pattern))
	for i, c := range pattern {
		out = append(out, barv1.Descriptor{Start: base.Add(time.Duration(i) * time.Minute), Empty: c == '.'})
	}
	return out
}

func pattern(got []barv1.Descriptor) string {
	s := make([]byte, 0, len(got))
	for _, d := range got {
		if d.Empty {
			s = append(s, '.')
		} else {
			s = append(s, 'x')
		}
	}
	return string(s)
}

func TestExcludeLongGaps(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		maxRun  int
		want    string
		removed int
		runs    int
	}{
		{name: "short runs kept", input: "x..x.x", maxRun: 2, want: "x..x.x"},
		{name: "run equal to limit kept", input: "x...x", maxRun: 3, want: "x...x"},
		{name: "long run removed", input: "x....x", maxRun: 3, want: "xx", removed: 4, runs: 1},
		{name: "leading and trailing runs", input: "...x.x...", maxRun: 2, want: "x.x", removed: 6, runs: 2},
		{name: "disabled", input: "x.....x", maxRun: 0, want: "x.....x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, report := ExcludeLongGaps(descs(tc.input), tc.maxRun)
			assert.Equal(t, tc.want, pattern(got))
			assert.Equal(t, tc.removed, report.Removed)
			assert.Equal(t, tc.runs, report.Runs)
			assert.Equal(t, len(tc.input), report.Total)
		})
	}
}

func TestGapReport_Percent(t *testing.T) {
	assert.Equal(t, 0.0, GapReport{}.Percent())
	assert.InDelta(t, 25.0, GapReport{Total: 8, Removed: 2}.Percent(), 1e-9)
}
