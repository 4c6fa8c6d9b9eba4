package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerWriteRequest(t *testing.T) {
	s := NewSerializer(256)

	out := s.WriteRequest("private/buy", 17, func(w *Writer) {
		w.WriteString("instrument_name", "BTC-PERPETUAL")
		w.WriteFloat("amount", 100.0)
	})

	assert.Equal(t,
		`{"jsonrpc":"2.0","method":"private/buy","id":17,"params":{"instrument_name":"BTC-PERPETUAL","amount":100}}`,
		string(out))
}

func TestSerializerReuseIsIdempotent(t *testing.T) {
	s := NewSerializer(64)

	write := func() string {
		out := s.WriteRequest("private/cancel", 5, func(w *Writer) {
			w.WriteString("order_id", "ETH-281234")
		})
		return string(out)
	}

	first := write()
	second := write()
	assert.Equal(t, first, second)
	require.True(t, json.Valid([]byte(second)))
}

func TestSerializerViewInvalidatedByNextWrite(t *testing.T) {
	s := NewSerializer(256)

	first := s.WriteRequest("private/buy", 1, func(w *Writer) {
		w.WriteString("instrument_name", "BTC-PERPETUAL")
	})
	keep := string(first) // copy before the next call

	_ = s.WriteRequest("private/cancel", 2, func(w *Writer) {
		w.WriteString("order_id", "X")
	})

	assert.NotEqual(t, keep, string(first))
	assert.Contains(t, keep, "BTC-PERPETUAL")
}

func TestSerializerSchemaWrite(t *testing.T) {
	schema := NewSchema(
		StringField("symbol", func(o *sampleOrder) string { return o.Symbol }),
		FloatField("price", func(o *sampleOrder) float64 { return o.Price }),
	)
	order := sampleOrder{Symbol: "BTC-USDT", Price: 99993}

	s := NewSerializer(256)
	out := Serialize(s, "private/buy", 3, schema, &order)

	assert.Equal(t,
		`{"jsonrpc":"2.0","method":"private/buy","id":3,"params":{"symbol":"BTC-USDT","price":99993}}`,
		string(out))
}

func TestSerializerRawWrite(t *testing.T) {
	s := NewSerializer(64)
	out := s.Write(func(w *Writer) {
		w.BeginObject()
		w.WriteBool("ok", true)
		w.EndObject()
	})
	assert.Equal(t, `{"ok":true}`, string(out))
}

func TestTemplateSerializerCapacitySizedFromTemplate(t *testing.T) {
	tmpl, err := NewTemplate(`{"a":####}`, []FieldID{fieldA})
	require.NoError(t, err)

	s := NewTemplateSerializer(tmpl)
	out, err := s.Write(func(w *TemplateWriter) {
		w.SetInt(fieldA, 42)
	})
	require.NoError(t, err)
	assert.Equal(t, tmpl.Size(), len(out))
}
