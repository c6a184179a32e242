package tick

import (
	"time"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
)

// Tick is a row of the ticks table.
type Tick struct {
	Timestamp time.Time
	Symbol    string
	Price     float64
}

// ToDomain drops the symbol.
func (t *Tick) ToDomain() barv1.Tick {
	return barv1.Tick{Timestamp: t.Timestamp, Price: t.Price}
}

// Filter represents the filter criteria for tick data.
type Filter struct {
	Symbol string
	From   *time.Time
	To     *time.Time
	Limit  int
}
