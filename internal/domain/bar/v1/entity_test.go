package barv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Point(t *testing.T) {
	t0 := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	rec := &Record{
		Category: BullishLHFullWickOpenUpDownToLow,
		High:     1.2,
		Low:      1.0,
		HighTime: t0.Add(40 * time.Second),
		LowTime:  t0.Add(20 * time.Second),
		SecondaryExtrema: []SecondaryExtremum{
			{Role: PivotHighBetweenOpenLow, Time: t0.Add(5 * time.Second), Price: 1.15},
		},
	}

	at, price, ok := rec.Point(PivotHigh)
	assert.True(t, ok)
	assert.Equal(t, rec.HighTime, at)
	assert.Equal(t, 1.2, price)

	at, price, ok = rec.Point(PivotHighBetweenOpenLow)
	assert.True(t, ok)
	assert.Equal(t, t0.Add(5*time.Second), at)
	assert.Equal(t, 1.15, price)

	_, _, ok = rec.Point(PivotLowBetweenHighClose)
	assert.False(t, ok)

	assert.Equal(t, Connectors{Entry: ConnectorUp, Exit: ConnectorDown}, rec.Connectors())
	assert.Equal(t, []PivotRole{PivotHighBetweenOpenLow, PivotLow, PivotHigh}, rec.Pivots())
}

func TestRecord_Flags(t *testing.T) {
	assert.True(t, (&Record{Category: CategoryEmpty}).IsEmpty())
	assert.True(t, (&Record{Category: CategorySingleEvent}).IsSingleEvent())

	unknown := &Record{Category: CategoryUnknown}
	assert.Equal(t, Connectors{Entry: ConnectorNone, Exit: ConnectorNone}, unknown.Connectors())
	assert.Nil(t, unknown.Pivots())
}

func TestPivotRole_IsHigh(t *testing.T) {
	assert.True(t, PivotHigh.IsHigh())
	assert.True(t, PivotHighBetweenOpenLow.IsHigh())
	assert.True(t, PivotHighBetweenLowClose.IsHigh())
	assert.False(t, PivotLow.IsHigh())
	assert.False(t, PivotLowBetweenOpenHigh.IsHigh())
	assert.False(t, PivotLowBetweenHighClose.IsHigh())
}
