package codec

// Serializer binds a growable buffer to the incremental writer. It resets
// the buffer before every request so a warm serializer produces output
// without allocating.
//
// The returned views alias the buffer and stay valid only until the next
// call on the same serializer. Callers needing the bytes longer must copy.
// A Serializer is single-threaded; use one per goroutine.
type Serializer struct {
	buf *Buffer
	w   Writer
}

// NewSerializer creates a serializer over a fresh buffer with the given
// initial capacity.
func NewSerializer(capacity int) *Serializer {
	s := &Serializer{buf: NewBuffer(capacity)}
	s.w.Bind(s.buf)
	return s
}

// SetFloatFormat selects the float rendering strategy for all subsequent
// requests.
func (s *Serializer) SetFloatFormat(f FloatFormat) {
	s.w.SetFloatFormat(f)
}

// Write resets the buffer, hands the writer to fn, and returns a view of the
// produced bytes. fn is responsible for the full document structure.
func (s *Serializer) Write(fn func(*Writer)) []byte {
	s.buf.Reset()
	s.w.Bind(s.buf)
	fn(&s.w)
	return s.buf.View()
}

// WriteRequest produces one JSON-RPC request. fn writes the params fields;
// the envelope is handled here.
func (s *Serializer) WriteRequest(method string, id int64, fn func(*Writer)) []byte {
	s.buf.Reset()
	s.w.Bind(s.buf)
	s.w.BeginRequest(method, id)
	if fn != nil {
		fn(&s.w)
	}
	s.w.EndRequest()
	return s.buf.View()
}

// Serialize produces one JSON-RPC request whose params fields come from the
// schema, in declaration order.
func Serialize[T any](s *Serializer, method string, id int64, schema Schema[T], req *T) []byte {
	return s.WriteRequest(method, id, func(w *Writer) {
		schema.Serialize(req, w)
	})
}

// TemplateSerializer binds a fixed-capacity buffer to one template. Every
// Write recopies the skeleton and overwrites field spans in place, so the
// output always has the skeleton's length.
type TemplateSerializer struct {
	buf      *StaticBuffer
	tmpl     *Template
	floatFmt FloatFormat
	tw       TemplateWriter
}

// NewTemplateSerializer creates a serializer for tmpl. The buffer is sized
// to the skeleton, which makes capacity exhaustion unreachable by
// construction.
func NewTemplateSerializer(tmpl *Template) *TemplateSerializer {
	return &TemplateSerializer{
		buf: NewStaticBuffer(tmpl.Size()),
		// Spans are width-bounded, so the truncating formatter is the
		// only float strategy that makes sense here.
		floatFmt: FloatTruncate,
		tmpl:     tmpl,
	}
}

// SetFloatFormat overrides the float strategy for the template path.
func (s *TemplateSerializer) SetFloatFormat(f FloatFormat) {
	s.floatFmt = f
}

// Write renders one request: the skeleton is copied into the buffer, fn
// overwrites the variable spans, and a view of the full skeleton length is
// returned. The error is ErrValueTruncated when any value lost bytes to its
// span, or ErrCapacityExceeded when the buffer cannot hold the skeleton.
//
// The view aliases the buffer and is invalidated by the next Write.
func (s *TemplateSerializer) Write(fn func(*TemplateWriter)) ([]byte, error) {
	s.buf.Reset()
	s.buf.AppendBytes(s.tmpl.skeleton)
	if err := s.buf.Err(); err != nil {
		return nil, err
	}

	s.tw = TemplateWriter{t: s.tmpl, buf: s.buf.Bytes(), floatFmt: s.floatFmt}
	fn(&s.tw)

	if s.tw.Truncated() {
		return s.buf.View(), ErrValueTruncated
	}
	return s.buf.View(), nil
}
