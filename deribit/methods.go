package deribit

// JSON-RPC method names.
const (
	MethodPrivateBuy          = "private/buy"
	MethodPrivateSell         = "private/sell"
	MethodPrivateEdit         = "private/edit"
	MethodPrivateCancel       = "private/cancel"
	MethodPrivateGetPositions = "private/get_positions"
)

// Order types accepted by the place methods.
const (
	OrderTypeLimit      = "limit"
	OrderTypeMarket     = "market"
	OrderTypeStopLimit  = "stop_limit"
	OrderTypeStopMarket = "stop_market"
)

// Time-in-force values.
const (
	TimeInForceGTC = "good_til_cancelled"
	TimeInForceIOC = "immediate_or_cancel"
	TimeInForceFOK = "fill_or_kill"
)
