package codec

// StaticBuffer is a byte buffer with a fixed capacity set at construction.
// It never reallocates, which makes it suitable for the template-overwrite
// strategy where the output length is known up front.
//
// Unlike the growable Buffer, appends are bounds-checked: once an append
// would exceed the capacity the buffer drops the bytes and latches an
// overflow flag. Err reports ErrCapacityExceeded afterwards. Call sites that
// size the buffer from the template length never hit this path.
type StaticBuffer struct {
	buf      []byte
	len      int
	overflow bool
}

// NewStaticBuffer creates a buffer with the given fixed capacity.
func NewStaticBuffer(capacity int) *StaticBuffer {
	return &StaticBuffer{buf: make([]byte, capacity)}
}

// AppendByte appends a single byte.
func (b *StaticBuffer) AppendByte(c byte) {
	if b.len >= len(b.buf) {
		b.overflow = true
		return
	}
	b.buf[b.len] = c
	b.len++
}

// AppendBytes appends a chunk of bytes.
func (b *StaticBuffer) AppendBytes(p []byte) {
	if b.len+len(p) > len(b.buf) {
		b.overflow = true
		return
	}
	copy(b.buf[b.len:], p)
	b.len += len(p)
}

// AppendString appends a string.
func (b *StaticBuffer) AppendString(s string) {
	if b.len+len(s) > len(b.buf) {
		b.overflow = true
		return
	}
	copy(b.buf[b.len:], s)
	b.len += len(s)
}

// Reset empties the buffer and clears the overflow flag.
func (b *StaticBuffer) Reset() {
	b.len = 0
	b.overflow = false
}

// SetLen sets the valid length directly. Used by the template writer after
// copying a skeleton into the buffer. Lengths beyond capacity latch the
// overflow flag.
func (b *StaticBuffer) SetLen(n int) {
	if n > len(b.buf) {
		b.overflow = true
		return
	}
	b.len = n
}

// Bytes exposes the full backing storage for in-place overwrites.
func (b *StaticBuffer) Bytes() []byte {
	return b.buf
}

// View returns the valid byte range. The slice aliases the buffer's storage
// and is invalidated by the next Reset or write.
func (b *StaticBuffer) View() []byte {
	return b.buf[:b.len]
}

// Len returns the number of valid bytes.
func (b *StaticBuffer) Len() int {
	return b.len
}

// Cap returns the fixed capacity.
func (b *StaticBuffer) Cap() int {
	return len(b.buf)
}

// Err reports whether any append was dropped for lack of capacity.
func (b *StaticBuffer) Err() error {
	if b.overflow {
		return ErrCapacityExceeded
	}
	return nil
}
