package classifier

import (
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
)

// window is an inclusive time range of the bar's ticks.
type window struct {
	from time.Time
	to   time.Time
}

func (w window) contains(at time.Time) bool {
	return !at.Before(w.from) && !at.After(w.to)
}

// extremeIn returns the first tick inside w holding the highest (or lowest) price.
func extremeIn(ticks []barv1.Tick, w window, highest bool) (barv1.Tick, bool) {
	var (
		best  barv1.Tick
		found bool
	)
	for _, tick := range ticks {
		if !w.contains(tick.Timestamp) {
			continue
		}
		if !found || (highest && tick.Price > best.Price) || (!highest && tick.Price < best.Price) {
			best = tick
			found = true
		}
	}
	return best, found
}

// refine searches the wick regions of a base shape for significant secondary
// extrema and returns the refined key with the extrema in time order.
func refine(desc barv1.Descriptor, base barv1.ShapeKey) (barv1.ShapeKey, []barv1.SecondaryExtremum) {
	allowLeading, allowTrailing := barv1.Refinements(base)
	if !allowLeading && !allowTrailing {
		return base, nil
	}

	key := base
	var extrema []barv1.SecondaryExtremum

	switch base.Order {
	case barv1.OrderLH:
		if allowLeading {
			if t, ok := extremeIn(desc.Ticks, window{desc.OpenTime, desc.LowTime}, true); ok && t.Price > desc.Open {
				key.Leading = true
				extrema = append(extrema, barv1.SecondaryExtremum{
					Role: barv1.PivotHighBetweenOpenLow, Time: t.Timestamp, Price: t.Price,
				})
			}
		}
		if allowTrailing {
			if t, ok := extremeIn(desc.Ticks, window{desc.HighTime, desc.CloseTime}, false); ok && t.Price < desc.Close {
				key.Trailing = true
				extrema = append(extrema, barv1.SecondaryExtremum{
					Role: barv1.PivotLowBetweenHighClose, Time: t.Timestamp, Price: t.Price,
				})
			}
		}
	case barv1.OrderHL:
		if allowLeading {
			if t, ok := extremeIn(desc.Ticks, window{desc.OpenTime, desc.HighTime}, false); ok && t.Price < desc.Open {
				key.Leading = true
				extrema = append(extrema, barv1.SecondaryExtremum{
					Role: barv1.PivotLowBetweenOpenHigh, Time: t.Timestamp, Price: t.Price,
				})
			}
		}
		if allowTrailing {
			if t, ok := extremeIn(desc.Ticks, window{desc.LowTime, desc.CloseTime}, true); ok && t.Price > desc.Close {
				key.Trailing = true
				extrema = append(extrema, barv1.SecondaryExtremum{
					Role: barv1.PivotHighBetweenLowClose, Time: t.Timestamp, Price: t.Price,
				})
			}
		}
	}

	return key, extrema
}
