package codec

import "errors"

var (
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")
	ErrValueTruncated   = errors.New("value truncated to field width")
	ErrTemplateMismatch = errors.New("template does not match declared fields")
)
