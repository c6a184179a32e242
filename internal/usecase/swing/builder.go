// Package swing turns classified bars into the zigzag swing sequence.
package swing

import (
	"fmt"
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
)

// Stats counts the bars the builder consumed and skipped.
type Stats struct {
	Bars                      int
	EmptySkipped              int
	LeadingSingleEventSkipped int
}

// resolved is a record together with the connectors it takes part in links
// with. Only a single event ends up with connectors different from its table entry.
type resolved struct {
	rec  *barv1.Record
	conn barv1.Connectors
}

// link is the (previous exit, current entry) connector pair of two bars.
type link struct {
	exit  barv1.Connector
	entry barv1.Connector
}

type handler func(prev resolved, curr *barv1.Record) (barv1.Connectors, []swingv1.Point)

var handlers = map[link]handler{
	{barv1.ConnectorUp, barv1.ConnectorUp}:     continuation,
	{barv1.ConnectorDown, barv1.ConnectorDown}: continuation,
	{barv1.ConnectorUp, barv1.ConnectorDown}:   reversal,
	{barv1.ConnectorDown, barv1.ConnectorUp}:   reversal,
	{barv1.ConnectorUp, barv1.ConnectorNone}:   singleEvent,
	{barv1.ConnectorDown, barv1.ConnectorNone}: singleEvent,
}

// Builder walks classified bars in time order and emits the swing sequence.
// A Builder is not safe for concurrent use; use a fresh one per run.
type Builder struct {
	logger logger.Interface

	prev   *resolved
	swings []swingv1.Point
	stats  Stats
}

// NewBuilder creates an empty builder.
func NewBuilder(logger logger.Interface) *Builder {
	return &Builder{logger: logger}
}

// Push consumes the next bar. On error the builder state is left unchanged.
func (b *Builder) Push(rec *barv1.Record) error {
	if rec == nil || rec.IsEmpty() {
		b.stats.EmptySkipped++
		if rec != nil {
			b.logger.Debug("skipping empty bar", logger.NewField("start", rec.Start))
		}
		return nil
	}

	props, ok := rec.Category.Properties()
	if !ok {
		return errors.NewErrorDetails(
			fmt.Sprintf("no connector entry for category %s", rec.Category),
			string(errors.ErrMissingConnectorEntry),
			rec.Start.Format(time.RFC3339Nano),
		)
	}

	if b.prev == nil {
		if rec.IsSingleEvent() {
			b.stats.LeadingSingleEventSkipped++
			b.logger.Debug("skipping single event without predecessor", logger.NewField("start", rec.Start))
			return nil
		}
		b.prev = &resolved{rec: rec, conn: props.Connectors}
		b.stats.Bars++
		return nil
	}

	l := link{exit: b.prev.conn.Exit, entry: props.Connectors.Entry}
	handle, ok := handlers[l]
	if !ok {
		return errors.NewErrorDetails(
			fmt.Sprintf("no handler for link (%s, %s)", l.exit, l.entry),
			string(errors.ErrUnknownLink),
			rec.Start.Format(time.RFC3339Nano),
		)
	}

	conn, points := handle(*b.prev, rec)
	if conn == (barv1.Connectors{}) {
		conn = props.Connectors
	}

	for _, role := range props.Pivots {
		at, price, ok := rec.Point(role)
		if !ok {
			return errors.NewErrorDetails(
				fmt.Sprintf("bar %s carries no point for pivot %s", rec.Category, role),
				string(errors.ErrUnresolvedPivot),
				rec.Start.Format(time.RFC3339Nano),
			)
		}
		if role.IsHigh() {
			points = append(points, swingv1.High(at, price))
		} else {
			points = append(points, swingv1.Low(at, price))
		}
	}

	b.swings = append(b.swings, points...)
	b.prev = &resolved{rec: rec, conn: conn}
	b.stats.Bars++
	return nil
}

// Swings returns the swings emitted so far.
func (b *Builder) Swings() []swingv1.Point {
	out := make([]swingv1.Point, len(b.swings))
	copy(out, b.swings)
	return out
}

// Stats returns the counters of the bars consumed so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Build runs a fresh builder over records.
func Build(records []*barv1.Record, logger logger.Interface) ([]swingv1.Point, Stats, error) {
	b := NewBuilder(logger)
	for _, rec := range records {
		if err := b.Push(rec); err != nil {
			return nil, b.Stats(), err
		}
	}
	return b.Swings(), b.Stats(), nil
}

// continuation joins two bars that move the same way. A price gap against
// the direction becomes a swing pair ahead of the current bar's pivots.
func continuation(prev resolved, curr *barv1.Record) (barv1.Connectors, []swingv1.Point) {
	switch {
	case prev.conn.Exit == barv1.ConnectorUp && curr.Open < prev.rec.Close:
		return barv1.Connectors{}, []swingv1.Point{
			swingv1.High(prev.rec.CloseTime, prev.rec.Close),
			swingv1.Low(curr.OpenTime, curr.Open),
		}
	case prev.conn.Exit == barv1.ConnectorDown && curr.Open > prev.rec.Close:
		return barv1.Connectors{}, []swingv1.Point{
			swingv1.Low(prev.rec.CloseTime, prev.rec.Close),
			swingv1.High(curr.OpenTime, curr.Open),
		}
	}
	return barv1.Connectors{}, nil
}

// reversal places the turning swing on the more extreme side of the boundary.
// Ties go to the previous close.
func reversal(prev resolved, curr *barv1.Record) (barv1.Connectors, []swingv1.Point) {
	if prev.conn.Exit == barv1.ConnectorUp {
		if prev.rec.Close >= curr.Open {
			return barv1.Connectors{}, []swingv1.Point{swingv1.High(prev.rec.CloseTime, prev.rec.Close)}
		}
		return barv1.Connectors{}, []swingv1.Point{swingv1.High(curr.OpenTime, curr.Open)}
	}

	if prev.rec.Close <= curr.Open {
		return barv1.Connectors{}, []swingv1.Point{swingv1.Low(prev.rec.CloseTime, prev.rec.Close)}
	}
	return barv1.Connectors{}, []swingv1.Point{swingv1.Low(curr.OpenTime, curr.Open)}
}

// singleEvent gives a single event bar the connectors implied by its price
// relative to the previous close.
func singleEvent(prev resolved, curr *barv1.Record) (barv1.Connectors, []swingv1.Point) {
	up := barv1.Connectors{Entry: barv1.ConnectorUp, Exit: barv1.ConnectorUp}
	down := barv1.Connectors{Entry: barv1.ConnectorDown, Exit: barv1.ConnectorDown}

	if prev.conn.Exit == barv1.ConnectorUp {
		if prev.rec.Close <= curr.Open {
			return up, nil
		}
		return down, []swingv1.Point{swingv1.High(prev.rec.CloseTime, prev.rec.Close)}
	}

	if prev.rec.Close >= curr.Open {
		return down, nil
	}
	return up, []swingv1.Point{swingv1.Low(prev.rec.CloseTime, prev.rec.Close)}
}
