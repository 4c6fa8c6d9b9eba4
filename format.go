package codec

import "strconv"

// FloatFormat selects how float64 values are rendered.
type FloatFormat uint8

const (
	// FloatPrecise renders the shortest decimal that round-trips back to
	// the same float64. This is the default.
	FloatPrecise FloatFormat = 0

	// FloatTruncate renders the integer part plus at most one truncated
	// fractional digit. It is lossy and exists for the hot path; opt in
	// only when the consumer tolerates single-digit precision.
	FloatTruncate FloatFormat = 1
)

// maxNumericChars bounds the rendered length of any numeric value.
const maxNumericChars = 32

// appendInt appends the decimal form of v. Digits are produced in reverse by
// repeated division and flipped in place.
func appendInt(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		// Negating min int64 overflows; go through uint64 instead.
		return appendUint(dst, uint64(-(v+1))+1)
	}
	return appendUint(dst, uint64(v))
}

// appendUint appends the decimal form of v.
func appendUint(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [maxNumericChars]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = '0' + byte(v%10)
		v /= 10
	}
	return append(dst, tmp[i:]...)
}

// floatEpsilon is the threshold below which a fractional remainder is
// dropped entirely by the truncating formatter.
const floatEpsilon = 1e-4

// appendFloatTruncate appends the integer part of v and, when the fractional
// remainder exceeds the epsilon, a decimal point and the first fractional
// digit. The digit is truncated, not rounded.
func appendFloatTruncate(dst []byte, v float64) []byte {
	intPart := int64(v)
	frac := v - float64(intPart)
	if frac < 0 {
		frac = -frac
	}
	hasFrac := frac > floatEpsilon

	// A zero integer part drops the sign, so restore it for values in
	// (-1, 0) that still render a fraction.
	if v < 0 && intPart == 0 && hasFrac {
		dst = append(dst, '-')
	}
	dst = appendInt(dst, intPart)
	if hasFrac {
		dst = append(dst, '.', '0'+byte(int64(frac*10)%10))
	}
	return dst
}

// appendFloatPrecise appends the shortest decimal representation that parses
// back to exactly v. Whole numbers render without a fractional part.
func appendFloatPrecise(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', -1, 64)
}

// appendFloat dispatches on the selected format.
func appendFloat(dst []byte, v float64, f FloatFormat) []byte {
	if f == FloatTruncate {
		return appendFloatTruncate(dst, v)
	}
	return appendFloatPrecise(dst, v)
}
