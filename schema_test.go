package codec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type sampleOrder struct {
	Symbol string
	Price  float64
	Size   uint64
	Label  int64
	Hidden bool
	Exact  decimal.Decimal
}

func TestSchemaDeclarationOrderIsWireOrder(t *testing.T) {
	schema := NewSchema(
		ConstField[sampleOrder]("request_type", "place"),
		StringField("symbol", func(o *sampleOrder) string { return o.Symbol }),
		FloatField("price", func(o *sampleOrder) float64 { return o.Price }),
		UintField("size", func(o *sampleOrder) uint64 { return o.Size }),
		IntField("label", func(o *sampleOrder) int64 { return o.Label }),
		BoolField("hidden", func(o *sampleOrder) bool { return o.Hidden }),
	)
	assert.Equal(t, 6, schema.Len())

	order := sampleOrder{Symbol: "BTC-USDT", Price: 42069.25, Size: 3, Label: -7, Hidden: true}

	buf := NewBuffer(256)
	w := NewWriter(buf)
	w.BeginObject()
	schema.Serialize(&order, w)
	w.EndObject()

	assert.Equal(t,
		`{"request_type":"place","symbol":"BTC-USDT","price":42069.25,"size":3,"label":-7,"hidden":true}`,
		buf.String())
}

func TestSchemaReorderingChangesWireOrder(t *testing.T) {
	schema := NewSchema(
		FloatField("price", func(o *sampleOrder) float64 { return o.Price }),
		StringField("symbol", func(o *sampleOrder) string { return o.Symbol }),
	)

	order := sampleOrder{Symbol: "ETH-USDT", Price: 10}

	buf := NewBuffer(128)
	w := NewWriter(buf)
	w.BeginObject()
	schema.Serialize(&order, w)
	w.EndObject()

	assert.Equal(t, `{"price":10,"symbol":"ETH-USDT"}`, buf.String())
}

func TestSchemaDecimalField(t *testing.T) {
	schema := NewSchema(
		DecimalField("exact", func(o *sampleOrder) decimal.Decimal { return o.Exact }),
	)

	order := sampleOrder{Exact: decimal.RequireFromString("0.00000001")}

	buf := NewBuffer(64)
	w := NewWriter(buf)
	w.BeginObject()
	schema.Serialize(&order, w)
	w.EndObject()

	assert.Equal(t, `{"exact":0.00000001}`, buf.String())
}
