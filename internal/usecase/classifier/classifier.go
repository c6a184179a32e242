// Package classifier derives the shape category of a single bar.
//
// Classification runs in three stages: the initial shape from the bar's
// open/close relation, extreme ordering and wicks; the refinement that
// looks for significant secondary extrema inside the wick regions; and the
// connector lookup in the bar table. Classify has no shared state and may be
// called from many goroutines at once.
package classifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

// Classify turns a bar descriptor into an immutable bar record.
func Classify(desc barv1.Descriptor) (*barv1.Record, error) {
	if desc.Empty {
		return &barv1.Record{Start: desc.Start, Category: barv1.CategoryEmpty}, nil
	}

	if err := validate(desc); err != nil {
		return nil, err
	}

	rec := &barv1.Record{
		Start:     desc.Start,
		Open:      desc.Open,
		High:      desc.High,
		Low:       desc.Low,
		Close:     desc.Close,
		OpenTime:  desc.OpenTime,
		HighTime:  desc.HighTime,
		LowTime:   desc.LowTime,
		CloseTime: desc.CloseTime,
	}

	base, single, err := initialShape(desc)
	if err != nil {
		return nil, err
	}
	if single {
		rec.Category = barv1.CategorySingleEvent
		return rec, nil
	}

	key, extrema := refine(desc, base)
	category, ok := barv1.Lookup(key)
	if !ok {
		return nil, barError(desc, errors.ErrMissingConnectorEntry,
			fmt.Sprintf("no connector entry for shape %s", key.Name()))
	}

	rec.Category = category
	rec.SecondaryExtrema = extrema
	return rec, nil
}

// validate checks the OHLC price and time invariants of a non-empty bar.
func validate(desc barv1.Descriptor) error {
	for _, p := range []float64{desc.Open, desc.High, desc.Low, desc.Close} {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return barError(desc, errors.ErrInvalidBar, "bar has a non-finite price")
		}
	}

	if desc.Low > math.Min(desc.Open, desc.Close) || desc.High < math.Max(desc.Open, desc.Close) {
		return barError(desc, errors.ErrInvalidBar,
			fmt.Sprintf("bar prices break low <= open, close <= high (o=%v h=%v l=%v c=%v)",
				desc.Open, desc.High, desc.Low, desc.Close))
	}

	if desc.HighTime.Before(desc.OpenTime) || desc.LowTime.Before(desc.OpenTime) ||
		desc.CloseTime.Before(desc.HighTime) || desc.CloseTime.Before(desc.LowTime) {
		return barError(desc, errors.ErrInvalidBar, "bar times break open <= high, low <= close")
	}

	return nil
}

// initialShape applies the exact equality tests of the first stage. It reports
// single when a doji's high and low happened at the same instant.
func initialShape(desc barv1.Descriptor) (key barv1.ShapeKey, single bool, err error) {
	switch {
	case desc.Close > desc.Open:
		key.Body = barv1.BodyBullish
	case desc.Close < desc.Open:
		key.Body = barv1.BodyBearish
	default:
		key.Body = barv1.BodyDoji
	}

	switch {
	case desc.LowTime.Before(desc.HighTime):
		key.Order = barv1.OrderLH
	case desc.HighTime.Before(desc.LowTime):
		key.Order = barv1.OrderHL
	case key.Body == barv1.BodyDoji:
		return key, true, nil
	default:
		return key, false, unclassifiable(desc, fmt.Sprintf("%s_UNKNOWN", strings.ToLower(key.Body.String())))
	}

	top := desc.High > math.Max(desc.Open, desc.Close)
	bottom := desc.Low < math.Min(desc.Open, desc.Close)
	switch {
	case top && bottom:
		key.Wick = barv1.WickFull
	case top:
		key.Wick = barv1.WickTop
	case bottom:
		key.Wick = barv1.WickBottom
	default:
		key.Wick = barv1.WickNone
	}

	// A body/order pair only admits the wick patterns the table defines for it.
	if _, ok := barv1.Lookup(key); !ok {
		return key, false, unclassifiable(desc,
			fmt.Sprintf("%s_%s_UNKNOWN", strings.ToLower(key.Body.String()), key.Order))
	}

	return key, false, nil
}

func unclassifiable(desc barv1.Descriptor, shape string) error {
	return errors.NewErrorDetailsWithObject(
		fmt.Sprintf("bar shape is not classifiable: %s", shape),
		string(errors.ErrUnclassifiableBar),
		desc.Start.Format(time.RFC3339Nano),
		shape,
	)
}

func barError(desc barv1.Descriptor, code errors.ErrorCode, message string) error {
	return errors.NewErrorDetails(message, string(code), desc.Start.Format(time.RFC3339Nano))
}
