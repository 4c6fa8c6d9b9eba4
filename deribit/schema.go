package deribit

import "github.com/0x5487/order-codec"

// Schema declaration order is wire order. Changing a list below changes the
// wire layout; there is no other way to do so.

// PlaceSchema is the current buy/sell params shape with the access token and
// the reject_post_only flag inside params.
var PlaceSchema = codec.NewSchema(
	codec.StringField("access_token", func(r *OrderRequest) string { return r.AccessToken }),
	codec.StringField("instrument_name", func(r *OrderRequest) string { return r.InstrumentName }),
	codec.FloatField("amount", func(r *OrderRequest) float64 { return r.Amount }),
	codec.IntField("label", func(r *OrderRequest) int64 { return r.Label }),
	codec.FloatField("price", func(r *OrderRequest) float64 { return r.Price }),
	codec.BoolField("post_only", func(r *OrderRequest) bool { return r.PostOnly }),
	codec.BoolField("reject_post_only", func(r *OrderRequest) bool { return r.RejectPostOnly }),
	codec.BoolField("reduce_only", func(r *OrderRequest) bool { return r.ReduceOnly }),
	codec.StringField("time_in_force", func(r *OrderRequest) string { return r.TimeInForce }),
)

// PlaceLegacySchema is the older buy/sell shape: session-level auth, so no
// access token, and the order type and max_show members instead of
// reject_post_only.
var PlaceLegacySchema = codec.NewSchema(
	codec.StringField("instrument_name", func(r *OrderRequest) string { return r.InstrumentName }),
	codec.FloatField("amount", func(r *OrderRequest) float64 { return r.Amount }),
	codec.FloatField("price", func(r *OrderRequest) float64 { return r.Price }),
	codec.StringField("type", func(r *OrderRequest) string { return r.Type }),
	codec.IntField("label", func(r *OrderRequest) int64 { return r.Label }),
	codec.BoolField("reduce_only", func(r *OrderRequest) bool { return r.ReduceOnly }),
	codec.BoolField("post_only", func(r *OrderRequest) bool { return r.PostOnly }),
	codec.StringField("time_in_force", func(r *OrderRequest) string { return r.TimeInForce }),
	codec.FloatField("max_show", func(r *OrderRequest) float64 { return r.MaxShow }),
)

// EditSchema is the current edit params shape.
var EditSchema = codec.NewSchema(
	codec.StringField("access_token", func(r *EditRequest) string { return r.AccessToken }),
	codec.StringField("order_id", func(r *EditRequest) string { return r.OrderID }),
	codec.FloatField("amount", func(r *EditRequest) float64 { return r.Amount }),
	codec.FloatField("price", func(r *EditRequest) float64 { return r.Price }),
	codec.BoolField("post_only", func(r *EditRequest) bool { return r.PostOnly }),
	codec.BoolField("reduce_only", func(r *EditRequest) bool { return r.ReduceOnly }),
)

// EditLegacySchema is the older edit shape with max_show and no access
// token.
var EditLegacySchema = codec.NewSchema(
	codec.StringField("order_id", func(r *EditRequest) string { return r.OrderID }),
	codec.FloatField("amount", func(r *EditRequest) float64 { return r.Amount }),
	codec.FloatField("price", func(r *EditRequest) float64 { return r.Price }),
	codec.BoolField("post_only", func(r *EditRequest) bool { return r.PostOnly }),
	codec.FloatField("max_show", func(r *EditRequest) float64 { return r.MaxShow }),
)

// CancelSchema is the current cancel params shape.
var CancelSchema = codec.NewSchema(
	codec.StringField("access_token", func(r *CancelRequest) string { return r.AccessToken }),
	codec.StringField("order_id", func(r *CancelRequest) string { return r.OrderID }),
)

// CancelLegacySchema is the older cancel shape without the access token.
var CancelLegacySchema = codec.NewSchema(
	codec.StringField("order_id", func(r *CancelRequest) string { return r.OrderID }),
)
