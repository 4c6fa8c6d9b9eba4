package codec

import "fmt"

// FieldID identifies one variable field of a template. The values are
// defined by the package that owns the template, e.g. the deribit package.
type FieldID uint8

// maxFieldID bounds the span lookup tables. FieldID is a byte, so a flat
// array beats a map in the overwrite hot path.
const maxFieldID = 256

// placeholderByte marks variable spans inside a template skeleton.
const placeholderByte = '#'

type span struct {
	off   int
	width int
}

// Template is a pre-rendered JSON skeleton in which every variable field is
// a fixed-width run of placeholder bytes. Offsets and widths are derived by
// scanning the skeleton at construction, so the skeleton and the span table
// cannot drift apart.
//
// The rendered output always has the skeleton's exact length. Values shorter
// than their span are space-padded, longer ones are truncated. Padding
// around numeric and boolean tokens is insignificant whitespace to any JSON
// parser; padding inside a quoted string span becomes part of the string
// value, so string spans are only safe when the consumer trims them.
type Template struct {
	skeleton []byte
	spans    [maxFieldID]span
	bound    [maxFieldID]bool
}

// NewTemplate scans skeleton for placeholder runs and binds them, left to
// right, to the given field order. It returns ErrTemplateMismatch when the
// run count and the field count disagree or a field appears twice.
func NewTemplate(skeleton string, order []FieldID) (*Template, error) {
	t := &Template{skeleton: []byte(skeleton)}

	next := 0
	for i := 0; i < len(skeleton); {
		if skeleton[i] != placeholderByte {
			i++
			continue
		}
		j := i
		for j < len(skeleton) && skeleton[j] == placeholderByte {
			j++
		}
		if next >= len(order) {
			return nil, fmt.Errorf("%w: skeleton has more placeholder runs than fields", ErrTemplateMismatch)
		}
		id := order[next]
		if t.bound[id] {
			return nil, fmt.Errorf("%w: field %d bound twice", ErrTemplateMismatch, id)
		}
		t.spans[id] = span{off: i, width: j - i}
		t.bound[id] = true
		next++
		i = j
	}
	if next != len(order) {
		return nil, fmt.Errorf("%w: skeleton has %d placeholder runs, %d fields declared", ErrTemplateMismatch, next, len(order))
	}
	return t, nil
}

// Size returns the skeleton length, which is also the length of every
// rendered output.
func (t *Template) Size() int {
	return len(t.skeleton)
}

// Span returns the offset and width bound to id.
func (t *Template) Span(id FieldID) (off, width int) {
	s := t.span(id)
	return s.off, s.width
}

func (t *Template) span(id FieldID) span {
	if !t.bound[id] {
		panic("codec: field not bound in template")
	}
	return t.spans[id]
}

// TemplateWriter overwrites field spans of one rendered skeleton in place.
// It is handed to the callback of TemplateSerializer.Write and must not be
// retained after the callback returns.
type TemplateWriter struct {
	t         *Template
	buf       []byte
	floatFmt  FloatFormat
	truncated bool
	scratch   [maxNumericChars]byte
}

// SetString copies value into the field's span and space-pads the remainder.
// Value is not escaped; the skeleton's quoting is static, so string spans
// must not carry quotes, backslashes or control characters.
func (tw *TemplateWriter) SetString(id FieldID, value string) {
	s := tw.t.span(id)
	n := copy(tw.buf[s.off:s.off+s.width], value)
	if n < len(value) {
		tw.markTruncated(id, s.width, len(value))
	}
	for i := s.off + n; i < s.off+s.width; i++ {
		tw.buf[i] = ' '
	}
}

// SetInt renders value right-aligned within the field's span.
func (tw *TemplateWriter) SetInt(id FieldID, value int64) {
	tw.setNumeric(id, appendInt(tw.scratch[:0], value))
}

// SetUint renders value right-aligned within the field's span.
func (tw *TemplateWriter) SetUint(id FieldID, value uint64) {
	tw.setNumeric(id, appendUint(tw.scratch[:0], value))
}

// SetFloat renders value right-aligned within the field's span using the
// writer's float format.
func (tw *TemplateWriter) SetFloat(id FieldID, value float64) {
	tw.setNumeric(id, appendFloat(tw.scratch[:0], value, tw.floatFmt))
}

// SetBool copies true/false into the field's span and space-pads the
// remainder.
func (tw *TemplateWriter) SetBool(id FieldID, value bool) {
	lit := "false"
	if value {
		lit = "true"
	}
	s := tw.t.span(id)
	n := copy(tw.buf[s.off:s.off+s.width], lit)
	if n < len(lit) {
		tw.markTruncated(id, s.width, len(lit))
	}
	for i := s.off + n; i < s.off+s.width; i++ {
		tw.buf[i] = ' '
	}
}

// Truncated reports whether any value written so far lost bytes to its span
// width.
func (tw *TemplateWriter) Truncated() bool {
	return tw.truncated
}

func (tw *TemplateWriter) setNumeric(id FieldID, digits []byte) {
	s := tw.t.span(id)
	if len(digits) <= s.width {
		pad := s.width - len(digits)
		for i := s.off; i < s.off+pad; i++ {
			tw.buf[i] = ' '
		}
		copy(tw.buf[s.off+pad:], digits)
		return
	}
	copy(tw.buf[s.off:s.off+s.width], digits[:s.width])
	tw.markTruncated(id, s.width, len(digits))
}

func (tw *TemplateWriter) markTruncated(id FieldID, width, got int) {
	tw.truncated = true
	logger.Debug("template value truncated",
		"field", int(id), "width", width, "len", got)
}
