// Package resample groups ticks into fixed-interval bar descriptors and
// removes market closures from the resulting bar sequence.
package resample

import (
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/interval"
)

// Group buckets time-ordered ticks into contiguous bars of iv, from the
// bucket of the first tick to the bucket of the last. Buckets without ticks
// are returned as empty descriptors.
func Group(ticks []barv1.Tick, iv interval.Interval) []barv1.Descriptor {
	if len(ticks) == 0 {
		return nil
	}

	first := iv.CalculateBucketTime(ticks[0].Timestamp)
	last := iv.CalculateBucketTime(ticks[len(ticks)-1].Timestamp)
	out := make([]barv1.Descriptor, 0, iv.CountBuckets(first, last))

	cur := first
	var pending []barv1.Tick
	for _, tick := range ticks {
		bucket := iv.CalculateBucketTime(tick.Timestamp)
		if bucket.Equal(cur) {
			pending = append(pending, tick)
			continue
		}

		out = append(out, describe(cur, pending))
		pending = nil
		for next := cur.Add(iv.Duration); next.Before(bucket); next = next.Add(iv.Duration) {
			out = append(out, barv1.Descriptor{Start: next, Empty: true})
		}
		cur = bucket
		pending = append(pending, tick)
	}
	out = append(out, describe(cur, pending))

	return out
}

// describe builds the descriptor of one bucket. The first tick reaching the
// high or low marks its time.
func describe(start time.Time, ticks []barv1.Tick) barv1.Descriptor {
	if len(ticks) == 0 {
		return barv1.Descriptor{Start: start, Empty: true}
	}

	open, last := ticks[0], ticks[len(ticks)-1]
	desc := barv1.Descriptor{
		Start:     start,
		Open:      open.Price,
		High:      open.Price,
		Low:       open.Price,
		Close:     last.Price,
		OpenTime:  open.Timestamp,
		HighTime:  open.Timestamp,
		LowTime:   open.Timestamp,
		CloseTime: last.Timestamp,
		Ticks:     ticks,
	}

	for _, tick := range ticks[1:] {
		if tick.Price > desc.High {
			desc.High, desc.HighTime = tick.Price, tick.Timestamp
		}
		if tick.Price < desc.Low {
			desc.Low, desc.LowTime = tick.Price, tick.Timestamp
		}
	}

	return desc
}
