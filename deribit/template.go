package deribit

import (
	"strings"

	"github.com/0x5487/order-codec"
)

// Template field identifiers.
const (
	FieldMethod codec.FieldID = iota
	FieldRequestID
	FieldAccessToken
	FieldInstrument
	FieldAmount
	FieldLabel
	FieldPrice
	FieldPostOnly
	FieldRejectPostOnly
	FieldReduceOnly
	FieldTimeInForce
	FieldOrderID
)

// Span widths per field. The method span must fit the longest method name;
// boolean spans must fit "false". Values wider than their span are truncated
// by the template writer, so these are sized for the overwhelming majority
// of real values, not for every representable one.
const (
	methodWidth     = 24
	requestIDWidth  = 12
	tokenWidth      = 48
	instrumentWidth = 32
	numericWidth    = 16
	labelWidth      = 12
	boolWidth       = 8
	tifWidth        = 24
	orderIDWidth    = 24
)

func ph(n int) string {
	return strings.Repeat("#", n)
}

var placeSkeleton = `{"jsonrpc":"2.0","method":"` + ph(methodWidth) +
	`","id":` + ph(requestIDWidth) +
	`,"params":{"access_token":"` + ph(tokenWidth) +
	`","instrument_name":"` + ph(instrumentWidth) +
	`","amount":` + ph(numericWidth) +
	`,"label":` + ph(labelWidth) +
	`,"price":` + ph(numericWidth) +
	`,"post_only":` + ph(boolWidth) +
	`,"reject_post_only":` + ph(boolWidth) +
	`,"reduce_only":` + ph(boolWidth) +
	`,"time_in_force":"` + ph(tifWidth) + `"}}`

var cancelSkeleton = `{"jsonrpc":"2.0","method":"` + ph(methodWidth) +
	`","id":` + ph(requestIDWidth) +
	`,"params":{"access_token":"` + ph(tokenWidth) +
	`","order_id":"` + ph(orderIDWidth) + `"}}`

var editSkeleton = `{"jsonrpc":"2.0","method":"` + ph(methodWidth) +
	`","id":` + ph(requestIDWidth) +
	`,"params":{"access_token":"` + ph(tokenWidth) +
	`","order_id":"` + ph(orderIDWidth) +
	`","amount":` + ph(numericWidth) +
	`,"price":` + ph(numericWidth) +
	`,"post_only":` + ph(boolWidth) +
	`,"reduce_only":` + ph(boolWidth) + `}}`

// PlaceTemplate, CancelTemplate and EditTemplate are the pre-rendered
// skeletons for the template-overwrite strategy. Offsets are derived from
// the skeleton text at init, never hand-maintained.
var (
	PlaceTemplate = mustTemplate(placeSkeleton, []codec.FieldID{
		FieldMethod, FieldRequestID, FieldAccessToken, FieldInstrument,
		FieldAmount, FieldLabel, FieldPrice, FieldPostOnly,
		FieldRejectPostOnly, FieldReduceOnly, FieldTimeInForce,
	})

	CancelTemplate = mustTemplate(cancelSkeleton, []codec.FieldID{
		FieldMethod, FieldRequestID, FieldAccessToken, FieldOrderID,
	})

	EditTemplate = mustTemplate(editSkeleton, []codec.FieldID{
		FieldMethod, FieldRequestID, FieldAccessToken, FieldOrderID,
		FieldAmount, FieldPrice, FieldPostOnly, FieldReduceOnly,
	})
)

func mustTemplate(skeleton string, order []codec.FieldID) *codec.Template {
	t, err := codec.NewTemplate(skeleton, order)
	if err != nil {
		panic(err)
	}
	return t
}
