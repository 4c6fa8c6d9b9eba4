package codec

import "github.com/shopspring/decimal"

// ByteSink is the append surface the incremental writer emits into. Both
// Buffer and StaticBuffer satisfy it.
type ByteSink interface {
	AppendByte(c byte)
	AppendBytes(p []byte)
	AppendString(s string)
}

// maxDepth is the deepest container nesting the writer supports. The
// JSON-RPC envelope needs two levels; a little headroom is left for arrays
// inside params.
const maxDepth = 8

// Fragments of the JSON-RPC 2.0 envelope, emitted verbatim.
const (
	rpcVersionField = `"jsonrpc":"2.0"`
	rpcMethodKey    = `"method":`
	rpcIDKey        = `"id":`
	rpcParamsKey    = `"params":`
)

// Writer emits JSON incrementally into a ByteSink. It tracks a first-field
// flag per nesting level so commas land between fields and never before the
// first or after the last.
//
// String values use a minimal escaping policy: quote, backslash, newline,
// carriage return and tab. Trading identifiers never contain anything else;
// callers feeding untrusted text must escape it beforehand.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	sink     ByteSink
	floatFmt FloatFormat
	depth    int
	inRPC    bool
	first    [maxDepth + 1]bool
	scratch  [maxNumericChars]byte
}

// NewWriter creates a writer over the given sink using the precise float
// format.
func NewWriter(sink ByteSink) *Writer {
	w := &Writer{}
	w.Bind(sink)
	return w
}

// Bind points the writer at a sink and clears all nesting state. It allows a
// writer value to be reused without allocating.
func (w *Writer) Bind(sink ByteSink) {
	w.sink = sink
	w.depth = 0
	w.inRPC = false
}

// SetFloatFormat selects the float rendering strategy for subsequent values.
func (w *Writer) SetFloatFormat(f FloatFormat) {
	w.floatFmt = f
}

// BeginObject opens an object and starts a fresh field level.
func (w *Writer) BeginObject() {
	w.push()
	w.sink.AppendByte('{')
}

// EndObject closes the current object.
func (w *Writer) EndObject() {
	w.pop()
	w.sink.AppendByte('}')
}

// BeginArray opens an array and starts a fresh element level.
func (w *Writer) BeginArray() {
	w.push()
	w.sink.AppendByte('[')
}

// EndArray closes the current array.
func (w *Writer) EndArray() {
	w.pop()
	w.sink.AppendByte(']')
}

// WriteString emits a key and an escaped string value.
func (w *Writer) WriteString(key, value string) {
	w.writeKey(key)
	w.writeEscapedString(value)
}

// WriteInt emits a key and a signed integer value.
func (w *Writer) WriteInt(key string, value int64) {
	w.writeKey(key)
	w.sink.AppendBytes(appendInt(w.scratch[:0], value))
}

// WriteUint emits a key and an unsigned integer value.
func (w *Writer) WriteUint(key string, value uint64) {
	w.writeKey(key)
	w.sink.AppendBytes(appendUint(w.scratch[:0], value))
}

// WriteFloat emits a key and a float value using the selected format.
func (w *Writer) WriteFloat(key string, value float64) {
	w.writeKey(key)
	w.sink.AppendBytes(appendFloat(w.scratch[:0], value, w.floatFmt))
}

// WriteBool emits a key and a boolean value.
func (w *Writer) WriteBool(key string, value bool) {
	w.writeKey(key)
	if value {
		w.sink.AppendString("true")
	} else {
		w.sink.AppendString("false")
	}
}

// WriteNull emits a key with an explicit null value.
func (w *Writer) WriteNull(key string) {
	w.writeKey(key)
	w.sink.AppendString("null")
}

// WriteDecimal emits a key and an exact decimal value. This is the precise
// path for prices where float64 rendering is unacceptable; it pays one
// allocation for the decimal's string form.
func (w *Writer) WriteDecimal(key string, value decimal.Decimal) {
	w.writeKey(key)
	w.sink.AppendString(value.String())
}

// BeginRequest opens a JSON-RPC 2.0 request envelope: the outer object, the
// jsonrpc/method/id fields, and the params object. Every BeginRequest must
// be paired with exactly one EndRequest.
func (w *Writer) BeginRequest(method string, id int64) {
	w.BeginObject()
	w.first[w.depth] = false
	w.sink.AppendString(rpcVersionField)

	w.sink.AppendByte(',')
	w.sink.AppendString(rpcMethodKey)
	w.writeEscapedString(method)

	w.sink.AppendByte(',')
	w.sink.AppendString(rpcIDKey)
	w.sink.AppendBytes(appendInt(w.scratch[:0], id))

	w.sink.AppendByte(',')
	w.sink.AppendString(rpcParamsKey)
	w.BeginObject()
	w.inRPC = true
}

// EndRequest closes the params object and the envelope. Calling it without a
// matching BeginRequest is a programmer error and panics.
func (w *Writer) EndRequest() {
	if !w.inRPC {
		panic("codec: EndRequest without BeginRequest")
	}
	w.inRPC = false
	w.EndObject() // params
	w.EndObject() // envelope
}

func (w *Writer) push() {
	if w.depth >= maxDepth {
		panic("codec: container nesting too deep")
	}
	w.depth++
	w.first[w.depth] = true
}

func (w *Writer) pop() {
	if w.depth == 0 {
		panic("codec: close without matching open")
	}
	w.depth--
}

func (w *Writer) writeKey(key string) {
	if w.first[w.depth] {
		w.first[w.depth] = false
	} else {
		w.sink.AppendByte(',')
	}
	w.sink.AppendByte('"')
	w.sink.AppendString(key)
	w.sink.AppendByte('"')
	w.sink.AppendByte(':')
}

// writeEscapedString emits a quoted string, escaping quote, backslash and
// the common control characters. Clean runs are flushed in one append.
func (w *Writer) writeEscapedString(s string) {
	w.sink.AppendByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		var esc byte
		switch s[i] {
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		default:
			continue
		}
		if start < i {
			w.sink.AppendString(s[start:i])
		}
		w.sink.AppendByte('\\')
		w.sink.AppendByte(esc)
		start = i + 1
	}
	if start < len(s) {
		w.sink.AppendString(s[start:])
	}
	w.sink.AppendByte('"')
}
