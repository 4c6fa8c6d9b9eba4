package deribit

// OrderRequest is the payload for the buy and sell methods. Requests are
// plain records; each one is immutable input to a single serialization call.
type OrderRequest struct {
	AccessToken    string
	InstrumentName string
	Amount         float64
	Label          int64
	Price          float64
	PostOnly       bool
	RejectPostOnly bool
	ReduceOnly     bool
	TimeInForce    string

	// Members below are only emitted by the legacy schema shape, which
	// predates per-request access tokens.
	Type    string
	MaxShow float64
}

// EditRequest is the payload for modifying an open order.
type EditRequest struct {
	AccessToken string
	OrderID     string
	Amount      float64
	Price       float64
	PostOnly    bool
	ReduceOnly  bool

	// MaxShow is only emitted by the legacy schema shape.
	MaxShow float64
}

// CancelRequest is the payload for cancelling an open order.
type CancelRequest struct {
	AccessToken string
	OrderID     string
}
