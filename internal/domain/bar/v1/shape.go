package barv1

// Body is the sign of close minus open.
type Body int

const (
	BodyBullish Body = iota + 1
	BodyBearish
	BodyDoji
)

func (b Body) String() string {
	switch b {
	case BodyBullish:
		return "Bullish"
	case BodyBearish:
		return "Bearish"
	case BodyDoji:
		return "Doji"
	default:
		return "Unknown"
	}
}

// Order is the time order of the bar's low and high.
type Order int

const (
	// OrderLH means the low happened before the high.
	OrderLH Order = iota + 1
	// OrderHL means the high happened before the low.
	OrderHL
)

func (o Order) String() string {
	switch o {
	case OrderLH:
		return "LH"
	case OrderHL:
		return "HL"
	default:
		return "Unknown"
	}
}

// Wick describes which ends of the bar extend beyond its body.
type Wick int

const (
	WickFull Wick = iota + 1
	WickTop
	WickBottom
	WickNone
)

func (w Wick) String() string {
	switch w {
	case WickFull:
		return "FullWick"
	case WickTop:
		return "TopWick"
	case WickBottom:
		return "BottomWick"
	case WickNone:
		return "NoWick"
	default:
		return "Unknown"
	}
}

// ShapeKey identifies a leaf category: the three classification axes plus the
// refinement flags. Leading is the extremum between open and the first extreme,
// Trailing the one between the second extreme and close.
type ShapeKey struct {
	Body     Body
	Order    Order
	Wick     Wick
	Leading  bool
	Trailing bool
}

// Base returns the key without refinement flags.
func (k ShapeKey) Base() ShapeKey {
	return ShapeKey{Body: k.Body, Order: k.Order, Wick: k.Wick}
}

// Connector summarises the directional state at a bar's entry or exit.
type Connector string

const (
	ConnectorUp   Connector = "up"
	ConnectorDown Connector = "down"
	ConnectorNone Connector = "none"
)

// Connectors is the ordered (entry, exit) pair of a bar.
type Connectors struct {
	Entry Connector
	Exit  Connector
}

// PivotRole names a point of a bar that may become a swing.
type PivotRole string

const (
	PivotHigh PivotRole = "high"
	PivotLow  PivotRole = "low"

	// LH family
	PivotHighBetweenOpenLow  PivotRole = "high_between_open_low"
	PivotLowBetweenHighClose PivotRole = "low_between_high_close"

	// HL family
	PivotLowBetweenOpenHigh  PivotRole = "low_between_open_high"
	PivotHighBetweenLowClose PivotRole = "high_between_low_close"
)

// IsHigh reports whether the role marks a high swing.
func (p PivotRole) IsHigh() bool {
	switch p {
	case PivotHigh, PivotHighBetweenOpenLow, PivotHighBetweenLowClose:
		return true
	default:
		return false
	}
}
