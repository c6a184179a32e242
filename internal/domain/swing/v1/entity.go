package swingv1

import (
	"time"
)

// Direction marks a swing as a local high or a local low.
type Direction string

const (
	DirectionHigh Direction = "high"
	DirectionLow  Direction = "low"
)

// Point is one swing of the zigzag sequence.
type Point struct {
	Time      time.Time `json:"time"`
	Price     float64   `json:"price"`
	Direction Direction `json:"direction"`
}

// High returns a high swing at the given time and price.
func High(at time.Time, price float64) Point {
	return Point{Time: at, Price: price, Direction: DirectionHigh}
}

// Low returns a low swing at the given time and price.
func Low(at time.Time, price float64) Point {
	return Point{Time: at, Price: price, Direction: DirectionLow}
}

// Run describes one execution of the zigzag pipeline.
type Run struct {
	ID        string    `json:"run_id"`
	Symbol    string    `json:"symbol"`
	Interval  string    `json:"interval"`
	StartedAt time.Time `json:"started_at"`

	Bars                 int `json:"bars"`
	Swings               int `json:"swings"`
	EmptySkipped         int `json:"empty_skipped"`
	LeadingSingleSkipped int `json:"leading_single_skipped"`
	GapBarsRemoved       int `json:"gap_bars_removed"`
}

// Event is the message published for every swing of a run.
type Event struct {
	RunID    string `json:"run_id"`
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
	Seq      int    `json:"seq"`
	Point
}
