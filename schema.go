package codec

import "github.com/shopspring/decimal"

// FieldKind tags the value type a field descriptor reads.
type FieldKind uint8

const (
	KindString FieldKind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindDecimal
	KindConst
)

// Field describes one JSON field of a request type: its wire name, its value
// kind, and an accessor closure reading the value from the request. Only the
// accessor matching the kind is set.
type Field[T any] struct {
	Name string
	Kind FieldKind

	str   func(*T) string
	i64   func(*T) int64
	u64   func(*T) uint64
	f64   func(*T) float64
	b     func(*T) bool
	dec   func(*T) decimal.Decimal
	konst string
}

// StringField describes a string member.
func StringField[T any](name string, get func(*T) string) Field[T] {
	return Field[T]{Name: name, Kind: KindString, str: get}
}

// IntField describes a signed integer member.
func IntField[T any](name string, get func(*T) int64) Field[T] {
	return Field[T]{Name: name, Kind: KindInt, i64: get}
}

// UintField describes an unsigned integer member.
func UintField[T any](name string, get func(*T) uint64) Field[T] {
	return Field[T]{Name: name, Kind: KindUint, u64: get}
}

// FloatField describes a float member.
func FloatField[T any](name string, get func(*T) float64) Field[T] {
	return Field[T]{Name: name, Kind: KindFloat, f64: get}
}

// BoolField describes a boolean member.
func BoolField[T any](name string, get func(*T) bool) Field[T] {
	return Field[T]{Name: name, Kind: KindBool, b: get}
}

// DecimalField describes an exact decimal member.
func DecimalField[T any](name string, get func(*T) decimal.Decimal) Field[T] {
	return Field[T]{Name: name, Kind: KindDecimal, dec: get}
}

// ConstField describes a field whose value is the same string for every
// request, e.g. a request type discriminator.
func ConstField[T any](name, value string) Field[T] {
	return Field[T]{Name: name, Kind: KindConst, konst: value}
}

// Schema is an ordered list of field descriptors for one request type.
// Declaration order is emission order; every field is always emitted. There
// are no optional fields.
type Schema[T any] struct {
	fields []Field[T]
}

// NewSchema builds a schema from the given fields, in order.
func NewSchema[T any](fields ...Field[T]) Schema[T] {
	return Schema[T]{fields: fields}
}

// Len returns the number of declared fields.
func (s Schema[T]) Len() int {
	return len(s.fields)
}

// Serialize emits every field of req into w, in declaration order.
func (s Schema[T]) Serialize(req *T, w *Writer) {
	for i := range s.fields {
		f := &s.fields[i]
		switch f.Kind {
		case KindString:
			w.WriteString(f.Name, f.str(req))
		case KindInt:
			w.WriteInt(f.Name, f.i64(req))
		case KindUint:
			w.WriteUint(f.Name, f.u64(req))
		case KindFloat:
			w.WriteFloat(f.Name, f.f64(req))
		case KindBool:
			w.WriteBool(f.Name, f.b(req))
		case KindDecimal:
			w.WriteDecimal(f.Name, f.dec(req))
		case KindConst:
			w.WriteString(f.Name, f.konst)
		}
	}
}
