package deribit

import "github.com/0x5487/order-codec"

// SchemaVariant selects which params shape a client emits.
type SchemaVariant uint8

const (
	// VariantAuthParams carries the access token inside params. This is
	// the current wire shape and the default.
	VariantAuthParams SchemaVariant = 0

	// VariantLegacy is the older shape: no access token, order type and
	// max_show members instead.
	VariantLegacy SchemaVariant = 1
)

// Option configures a Client.
type Option func(*Client)

// WithSchemaVariant selects the params shape.
func WithSchemaVariant(v SchemaVariant) Option {
	return func(c *Client) { c.variant = v }
}

// WithFloatFormat selects the float rendering strategy.
func WithFloatFormat(f codec.FloatFormat) Option {
	return func(c *Client) { c.floatFmt = f }
}

// WithBufferCapacity sets the initial output buffer capacity.
func WithBufferCapacity(n int) Option {
	return func(c *Client) { c.capacity = n }
}

// Client builds JSON-RPC request payloads using the growable-buffer
// strategy. Request ids increase monotonically per client.
//
// Returned slices alias the client's buffer and stay valid only until the
// next request on the same client. A Client is single-threaded; use one per
// goroutine.
type Client struct {
	s        *codec.Serializer
	id       int64
	variant  SchemaVariant
	floatFmt codec.FloatFormat
	capacity int
}

// NewClient creates a client with the default variant and the precise float
// format.
func NewClient(opts ...Option) *Client {
	c := &Client{capacity: 8192}
	for _, opt := range opts {
		opt(c)
	}
	c.s = codec.NewSerializer(c.capacity)
	c.s.SetFloatFormat(c.floatFmt)
	return c
}

// Buy builds a private/buy request.
func (c *Client) Buy(req *OrderRequest) []byte {
	return c.place(MethodPrivateBuy, req)
}

// Sell builds a private/sell request.
func (c *Client) Sell(req *OrderRequest) []byte {
	return c.place(MethodPrivateSell, req)
}

// Edit builds a private/edit request.
func (c *Client) Edit(req *EditRequest) []byte {
	if c.variant == VariantLegacy {
		return codec.Serialize(c.s, MethodPrivateEdit, c.nextID(), EditLegacySchema, req)
	}
	return codec.Serialize(c.s, MethodPrivateEdit, c.nextID(), EditSchema, req)
}

// Cancel builds a private/cancel request.
func (c *Client) Cancel(req *CancelRequest) []byte {
	if c.variant == VariantLegacy {
		return codec.Serialize(c.s, MethodPrivateCancel, c.nextID(), CancelLegacySchema, req)
	}
	return codec.Serialize(c.s, MethodPrivateCancel, c.nextID(), CancelSchema, req)
}

// GetPositions builds a private/get_positions request. Its params object is
// present but empty.
func (c *Client) GetPositions() []byte {
	return c.s.WriteRequest(MethodPrivateGetPositions, c.nextID(), nil)
}

func (c *Client) place(method string, req *OrderRequest) []byte {
	if c.variant == VariantLegacy {
		return codec.Serialize(c.s, method, c.nextID(), PlaceLegacySchema, req)
	}
	return codec.Serialize(c.s, method, c.nextID(), PlaceSchema, req)
}

func (c *Client) nextID() int64 {
	c.id++
	return c.id
}

// TemplateClient builds request payloads with the template-overwrite
// strategy. Every output has its template's fixed length, with values
// space-padded inside their spans; see the Template docs for when that is
// acceptable. The returned error is codec.ErrValueTruncated when a value
// did not fit its span.
//
// Returned slices alias the per-method buffer and stay valid until the next
// request of the same method family. A TemplateClient is single-threaded.
type TemplateClient struct {
	place  *codec.TemplateSerializer
	cancel *codec.TemplateSerializer
	edit   *codec.TemplateSerializer
	id     int64
}

// NewTemplateClient creates a client with one pre-sized buffer per method
// family.
func NewTemplateClient() *TemplateClient {
	return &TemplateClient{
		place:  codec.NewTemplateSerializer(PlaceTemplate),
		cancel: codec.NewTemplateSerializer(CancelTemplate),
		edit:   codec.NewTemplateSerializer(EditTemplate),
	}
}

// Buy builds a private/buy request.
func (c *TemplateClient) Buy(req *OrderRequest) ([]byte, error) {
	return c.placeRequest(MethodPrivateBuy, req)
}

// Sell builds a private/sell request.
func (c *TemplateClient) Sell(req *OrderRequest) ([]byte, error) {
	return c.placeRequest(MethodPrivateSell, req)
}

// Edit builds a private/edit request.
func (c *TemplateClient) Edit(req *EditRequest) ([]byte, error) {
	id := c.nextID()
	return c.edit.Write(func(w *codec.TemplateWriter) {
		w.SetString(FieldMethod, MethodPrivateEdit)
		w.SetInt(FieldRequestID, id)
		w.SetString(FieldAccessToken, req.AccessToken)
		w.SetString(FieldOrderID, req.OrderID)
		w.SetFloat(FieldAmount, req.Amount)
		w.SetFloat(FieldPrice, req.Price)
		w.SetBool(FieldPostOnly, req.PostOnly)
		w.SetBool(FieldReduceOnly, req.ReduceOnly)
	})
}

// Cancel builds a private/cancel request.
func (c *TemplateClient) Cancel(req *CancelRequest) ([]byte, error) {
	id := c.nextID()
	return c.cancel.Write(func(w *codec.TemplateWriter) {
		w.SetString(FieldMethod, MethodPrivateCancel)
		w.SetInt(FieldRequestID, id)
		w.SetString(FieldAccessToken, req.AccessToken)
		w.SetString(FieldOrderID, req.OrderID)
	})
}

func (c *TemplateClient) placeRequest(method string, req *OrderRequest) ([]byte, error) {
	id := c.nextID()
	return c.place.Write(func(w *codec.TemplateWriter) {
		w.SetString(FieldMethod, method)
		w.SetInt(FieldRequestID, id)
		w.SetString(FieldAccessToken, req.AccessToken)
		w.SetString(FieldInstrument, req.InstrumentName)
		w.SetFloat(FieldAmount, req.Amount)
		w.SetInt(FieldLabel, req.Label)
		w.SetFloat(FieldPrice, req.Price)
		w.SetBool(FieldPostOnly, req.PostOnly)
		w.SetBool(FieldRejectPostOnly, req.RejectPostOnly)
		w.SetBool(FieldReduceOnly, req.ReduceOnly)
		w.SetString(FieldTimeInForce, req.TimeInForce)
	})
}

func (c *TemplateClient) nextID() int64 {
	c.id++
	return c.id
}
