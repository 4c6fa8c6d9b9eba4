package deribit

import (
	"testing"

	"github.com/rs/xid"
)

func BenchmarkClientBuy(b *testing.B) {
	c := NewClient()
	req := OrderRequest{
		AccessToken:    "thisismyreallylongaccesstokenstoredontheheap",
		InstrumentName: "BTC-PERPETUAL",
		Amount:         100,
		Label:          23,
		Price:          99993,
		PostOnly:       true,
		TimeInForce:    TimeInForceIOC,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := c.Buy(&req)
		if len(out) == 0 {
			b.Fatal("empty output")
		}
	}
}

func BenchmarkClientCancel(b *testing.B) {
	c := NewClient()
	req := CancelRequest{
		AccessToken: "thisismyreallylongaccesstokenstoredontheheap",
		OrderID:     xid.New().String(),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := c.Cancel(&req)
		if len(out) == 0 {
			b.Fatal("empty output")
		}
	}
}

func BenchmarkTemplateClientBuy(b *testing.B) {
	c := NewTemplateClient()
	req := OrderRequest{
		AccessToken:    "short_token",
		InstrumentName: "BTC-PERPETUAL",
		Amount:         100,
		Label:          23,
		Price:          99993,
		PostOnly:       true,
		TimeInForce:    TimeInForceIOC,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := c.Buy(&req)
		if err != nil || len(out) == 0 {
			b.Fatal("bad output")
		}
	}
}

func BenchmarkTemplateClientEdit(b *testing.B) {
	c := NewTemplateClient()
	req := EditRequest{
		AccessToken: "short_token",
		OrderID:     xid.New().String(),
		Amount:      150,
		Price:       98765,
		PostOnly:    true,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := c.Edit(&req)
		if err != nil || len(out) == 0 {
			b.Fatal("bad output")
		}
	}
}
