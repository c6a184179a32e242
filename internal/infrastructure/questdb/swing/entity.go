package swing

import (
	"time"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
)

// Swing is a row of the swings table.
type Swing struct {
	Timestamp time.Time
	RunID     string
	Symbol    string
	Interval  string
	Price     float64
	Direction string
}

// FromPoints maps the swings of one run to table rows.
func FromPoints(run *swingv1.Run, points []swingv1.Point) []*Swing {
	rows := make([]*Swing, 0, len(points))
	for _, p := range points {
		rows = append(rows, &Swing{
			Timestamp: p.Time,
			RunID:     run.ID,
			Symbol:    run.Symbol,
			Interval:  run.Interval,
			Price:     p.Price,
			Direction: string(p.Direction),
		})
	}
	return rows
}

// ToDomain maps the row back to a swing point.
func (s *Swing) ToDomain() swingv1.Point {
	return swingv1.Point{Time: s.Timestamp, Price: s.Price, Direction: swingv1.Direction(s.Direction)}
}
