package barv1

var (
	up   = ConnectorUp
	down = ConnectorDown

	hBOL = PivotHighBetweenOpenLow
	lBHC = PivotLowBetweenHighClose
	lBOH = PivotLowBetweenOpenHigh
	hBLC = PivotHighBetweenLowClose
	hi   = PivotHigh
	lo   = PivotLow
)

func key(b Body, o Order, w Wick, leading, trailing bool) ShapeKey {
	return ShapeKey{Body: b, Order: o, Wick: w, Leading: leading, Trailing: trailing}
}

func conn(entry, exit Connector) Connectors {
	return Connectors{Entry: entry, Exit: exit}
}

func pivots(roles ...PivotRole) []PivotRole {
	return roles
}

// connectorTable is read-only after package initialisation.
var connectorTable = map[Category]Properties{
	CategorySingleEvent: {Connectors: conn(ConnectorNone, ConnectorNone)},

	// Bullish LH
	BullishLHFullWick:                                     {key(BodyBullish, OrderLH, WickFull, false, false), conn(down, down), pivots(lo, hi)},
	BullishLHFullWickOpenUpDownToLowPostHighDipBelowClose: {key(BodyBullish, OrderLH, WickFull, true, true), conn(up, up), pivots(hBOL, lo, hi, lBHC)},
	BullishLHFullWickOpenUpDownToLow:                      {key(BodyBullish, OrderLH, WickFull, true, false), conn(up, down), pivots(hBOL, lo, hi)},
	BullishLHFullWickPostHighDipBelowClose:                {key(BodyBullish, OrderLH, WickFull, false, true), conn(down, up), pivots(lo, hi, lBHC)},
	BullishLHTopWick:                                      {key(BodyBullish, OrderLH, WickTop, false, false), conn(up, down), pivots(hi)},
	BullishLHTopWickPostHighDipBelowClose:                 {key(BodyBullish, OrderLH, WickTop, false, true), conn(up, up), pivots(hi, lBHC)},
	BullishLHBottomWick:                                   {key(BodyBullish, OrderLH, WickBottom, false, false), conn(down, up), pivots(lo)},
	BullishLHBottomWickOpenUpDownToLow:                    {key(BodyBullish, OrderLH, WickBottom, true, false), conn(up, up), pivots(hBOL, lo)},
	BullishLHNoWick:                                       {key(BodyBullish, OrderLH, WickNone, false, false), conn(up, up), nil},

	// Bullish HL
	BullishHLFullWick: {key(BodyBullish, OrderHL, WickFull, false, false), conn(up, up), pivots(hi, lo)},
	BullishHLFullWickOpenDownThenUpToHighPostLowRallyAboveClose: {key(BodyBullish, OrderHL, WickFull, true, true), conn(down, down), pivots(lBOH, hi, lo, hBLC)},
	BullishHLFullWickOpenDownThenUpToHigh:                       {key(BodyBullish, OrderHL, WickFull, true, false), conn(down, up), pivots(lBOH, hi, lo)},
	BullishHLFullWickPostLowRallyAboveClose:                     {key(BodyBullish, OrderHL, WickFull, false, true), conn(up, down), pivots(hi, lo, hBLC)},
	BullishHLBottomWick:                                         {key(BodyBullish, OrderHL, WickBottom, false, false), conn(up, up), pivots(hi, lo)},
	BullishHLBottomWickOpenDownThenUpToHigh:                     {key(BodyBullish, OrderHL, WickBottom, true, false), conn(down, up), pivots(lBOH, hi, lo)},

	// Bearish HL
	BearishHLFullWick: {key(BodyBearish, OrderHL, WickFull, false, false), conn(up, up), pivots(hi, lo)},
	BearishHLFullWickOpenDownThenUpToHighPostLowRallyAboveClose: {key(BodyBearish, OrderHL, WickFull, true, true), conn(down, down), pivots(lBOH, hi, lo, hBLC)},
	BearishHLFullWickOpenDownThenUpToHigh:                       {key(BodyBearish, OrderHL, WickFull, true, false), conn(down, up), pivots(lBOH, hi, lo)},
	BearishHLFullWickPostLowRallyAboveClose:                     {key(BodyBearish, OrderHL, WickFull, false, true), conn(up, down), pivots(hi, lo, hBLC)},
	BearishHLBottomWick:                                         {key(BodyBearish, OrderHL, WickBottom, false, false), conn(down, up), pivots(lo)},
	BearishHLBottomWickPostLowRallyAboveClose:                   {key(BodyBearish, OrderHL, WickBottom, false, true), conn(down, down), pivots(lo, hBLC)},
	BearishHLTopWick:                                            {key(BodyBearish, OrderHL, WickTop, false, false), conn(up, down), pivots(hi)},
	BearishHLTopWickOpenDownThenUpToHigh:                        {key(BodyBearish, OrderHL, WickTop, true, false), conn(down, down), pivots(lBOH, hi)},
	BearishHLNoWick:                                             {key(BodyBearish, OrderHL, WickNone, false, false), conn(down, down), nil},

	// Bearish LH
	BearishLHFullWick:                                     {key(BodyBearish, OrderLH, WickFull, false, false), conn(down, down), pivots(lo, hi)},
	BearishLHFullWickOpenUpDownToLowPostHighDipBelowClose: {key(BodyBearish, OrderLH, WickFull, true, true), conn(up, up), pivots(hBOL, lo, hi, lBHC)},
	BearishLHFullWickOpenUpDownToLow:                      {key(BodyBearish, OrderLH, WickFull, true, false), conn(up, down), pivots(hBOL, lo, hi)},
	BearishLHFullWickPostHighDipBelowClose:                {key(BodyBearish, OrderLH, WickFull, false, true), conn(down, up), pivots(lo, hi, lBHC)},
	BearishLHTopWick:                                      {key(BodyBearish, OrderLH, WickTop, false, false), conn(down, down), pivots(lo, hi)},
	BearishLHTopWickOpenUpDownToLow:                       {key(BodyBearish, OrderLH, WickTop, true, false), conn(up, down), pivots(hBOL, lo, hi)},

	// Doji LH
	DojiLHFullWick:                                     {key(BodyDoji, OrderLH, WickFull, false, false), conn(down, down), pivots(lo, hi)},
	DojiLHFullWickOpenUpDownToLowPostHighDipBelowClose: {key(BodyDoji, OrderLH, WickFull, true, true), conn(up, up), pivots(hBOL, lo, hi, lBHC)},
	DojiLHFullWickOpenUpDownToLow:                      {key(BodyDoji, OrderLH, WickFull, true, false), conn(up, down), pivots(hBOL, lo, hi)},
	DojiLHFullWickPostHighDipBelowClose:                {key(BodyDoji, OrderLH, WickFull, false, true), conn(down, up), pivots(lo, hi, lBHC)},
	DojiLHTopWick:                                      {key(BodyDoji, OrderLH, WickTop, false, false), conn(up, down), pivots(hi)},

	// Doji HL
	DojiHLFullWick: {key(BodyDoji, OrderHL, WickFull, false, false), conn(up, up), pivots(hi, lo)},
	DojiHLFullWickOpenDownThenUpToHighPostLowRallyAboveClose: {key(BodyDoji, OrderHL, WickFull, true, true), conn(down, down), pivots(lBOH, hi, lo, hBLC)},
	DojiHLFullWickOpenDownThenUpToHigh:                       {key(BodyDoji, OrderHL, WickFull, true, false), conn(down, up), pivots(lBOH, hi, lo)},
	DojiHLFullWickPostLowRallyAboveClose:                     {key(BodyDoji, OrderHL, WickFull, false, true), conn(up, down), pivots(hi, lo, hBLC)},
	DojiHLBottomWick:                                         {key(BodyDoji, OrderHL, WickBottom, false, false), conn(down, up), pivots(lo)},
}

type refinements struct {
	leading  bool
	trailing bool
}

var (
	shapeIndex      = make(map[ShapeKey]Category, len(connectorTable))
	refinementIndex = make(map[ShapeKey]refinements)
)

func init() {
	for c, props := range connectorTable {
		if c == CategorySingleEvent {
			continue
		}
		shapeIndex[props.Key] = c

		r := refinementIndex[props.Key.Base()]
		r.leading = r.leading || props.Key.Leading
		r.trailing = r.trailing || props.Key.Trailing
		refinementIndex[props.Key.Base()] = r
	}
}
