package barv1

import (
	"time"
)

// Tick is a single price observation.
type Tick struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// Descriptor is one fixed-interval bar as handed to the classifier.
// An Empty descriptor carries only its bucket start; every other descriptor
// carries its OHLC prices, their timestamps and the time-ordered ticks of the bucket.
type Descriptor struct {
	Start time.Time
	Empty bool

	Open  float64
	High  float64
	Low   float64
	Close float64

	OpenTime  time.Time
	HighTime  time.Time
	LowTime   time.Time
	CloseTime time.Time

	Ticks []Tick
}

// SecondaryExtremum is a local high or low found inside one of the bar's wick regions.
type SecondaryExtremum struct {
	Role  PivotRole
	Time  time.Time
	Price float64
}

// Record is a classified bar. It is created once by the classifier and never
// changed afterwards.
type Record struct {
	Start    time.Time
	Category Category

	Open  float64
	High  float64
	Low   float64
	Close float64

	OpenTime  time.Time
	HighTime  time.Time
	LowTime   time.Time
	CloseTime time.Time

	// SecondaryExtrema holds only the significant wick extrema, in time order.
	SecondaryExtrema []SecondaryExtremum
}

// IsEmpty reports whether the record is the skip signal of a bar without ticks.
func (r *Record) IsEmpty() bool {
	return r.Category == CategoryEmpty
}

// IsSingleEvent reports whether the bar's high and low happened at the same instant.
func (r *Record) IsSingleEvent() bool {
	return r.Category == CategorySingleEvent
}

// Connectors returns the entry and exit connectors of the record's category.
func (r *Record) Connectors() Connectors {
	props, ok := r.Category.Properties()
	if !ok {
		return Connectors{Entry: ConnectorNone, Exit: ConnectorNone}
	}
	return props.Connectors
}

// Pivots returns the ordered pivot roles the record contributes to the swing sequence.
func (r *Record) Pivots() []PivotRole {
	props, ok := r.Category.Properties()
	if !ok {
		return nil
	}
	return props.Pivots
}

// Extremum returns the secondary extremum recorded for role.
func (r *Record) Extremum(role PivotRole) (SecondaryExtremum, bool) {
	for _, ext := range r.SecondaryExtrema {
		if ext.Role == role {
			return ext, true
		}
	}
	return SecondaryExtremum{}, false
}

// Point resolves a pivot role to the time and price it marks on this bar.
func (r *Record) Point(role PivotRole) (time.Time, float64, bool) {
	switch role {
	case PivotHigh:
		return r.HighTime, r.High, true
	case PivotLow:
		return r.LowTime, r.Low, true
	}

	ext, ok := r.Extremum(role)
	if !ok {
		return time.Time{}, 0, false
	}
	return ext.Time, ext.Price, true
}
