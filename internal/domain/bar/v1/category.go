package barv1

import "fmt"

// Category is a leaf bar shape. Every value except CategoryUnknown and
// CategoryEmpty has an entry in the connector table.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryEmpty
	CategorySingleEvent

	BullishLHFullWick
	BullishLHFullWickOpenUpDownToLowPostHighDipBelowClose
	BullishLHFullWickOpenUpDownToLow
	BullishLHFullWickPostHighDipBelowClose
	BullishLHTopWick
	BullishLHTopWickPostHighDipBelowClose
	BullishLHBottomWick
	BullishLHBottomWickOpenUpDownToLow
	BullishLHNoWick

	BullishHLFullWick
	BullishHLFullWickOpenDownThenUpToHighPostLowRallyAboveClose
	BullishHLFullWickOpenDownThenUpToHigh
	BullishHLFullWickPostLowRallyAboveClose
	BullishHLBottomWick
	BullishHLBottomWickOpenDownThenUpToHigh

	BearishHLFullWick
	BearishHLFullWickOpenDownThenUpToHighPostLowRallyAboveClose
	BearishHLFullWickOpenDownThenUpToHigh
	BearishHLFullWickPostLowRallyAboveClose
	BearishHLBottomWick
	BearishHLBottomWickPostLowRallyAboveClose
	BearishHLTopWick
	BearishHLTopWickOpenDownThenUpToHigh
	BearishHLNoWick

	BearishLHFullWick
	BearishLHFullWickOpenUpDownToLowPostHighDipBelowClose
	BearishLHFullWickOpenUpDownToLow
	BearishLHFullWickPostHighDipBelowClose
	BearishLHTopWick
	BearishLHTopWickOpenUpDownToLow

	DojiLHFullWick
	DojiLHFullWickOpenUpDownToLowPostHighDipBelowClose
	DojiLHFullWickOpenUpDownToLow
	DojiLHFullWickPostHighDipBelowClose
	DojiLHTopWick

	DojiHLFullWick
	DojiHLFullWickOpenDownThenUpToHighPostLowRallyAboveClose
	DojiHLFullWickOpenDownThenUpToHigh
	DojiHLFullWickPostLowRallyAboveClose
	DojiHLBottomWick
)

// Properties is the data associated with a leaf category.
type Properties struct {
	Key        ShapeKey
	Connectors Connectors
	Pivots     []PivotRole
}

// Properties returns the connector table entry of the category.
func (c Category) Properties() (Properties, bool) {
	props, ok := connectorTable[c]
	return props, ok
}

// Key returns the shape key of the category.
func (c Category) Key() (ShapeKey, bool) {
	props, ok := connectorTable[c]
	if !ok || c == CategorySingleEvent {
		return ShapeKey{}, false
	}
	return props.Key, true
}

func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return "UNKNOWN"
	case CategoryEmpty:
		return "Empty"
	case CategorySingleEvent:
		return "Single_Event"
	}

	props, ok := connectorTable[c]
	if !ok {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return props.Key.Name()
}

// MarshalText renders the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Name renders the key the way categories are named, e.g.
// "Bullish_LH_FullWick_OpenUpDownToLow".
func (k ShapeKey) Name() string {
	name := fmt.Sprintf("%s_%s_%s", k.Body, k.Order, k.Wick)

	switch k.Order {
	case OrderLH:
		if k.Leading {
			name += "_OpenUpDownToLow"
		}
		if k.Trailing {
			name += "_PostHighDipBelowClose"
		}
	case OrderHL:
		if k.Leading {
			name += "_OpenDownThenUpToHigh"
		}
		if k.Trailing {
			name += "_PostLowRallyAboveClose"
		}
	}

	return name
}

// Lookup returns the leaf category for a fully refined shape key.
func Lookup(key ShapeKey) (Category, bool) {
	c, ok := shapeIndex[key]
	return c, ok
}

// Refinements reports which wick searches are defined for a base shape.
// A base with neither is terminal.
func Refinements(base ShapeKey) (leading, trailing bool) {
	r := refinementIndex[base.Base()]
	return r.leading, r.trailing
}

// Categories returns every category with a connector table entry.
func Categories() []Category {
	out := make([]Category, 0, len(connectorTable))
	for c := CategorySingleEvent; c <= DojiHLBottomWick; c++ {
		if _, ok := connectorTable[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
