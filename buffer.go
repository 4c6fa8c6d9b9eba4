package codec

import (
	"io"
	"sync"
	"unsafe"
)

// Buffer is a growable byte buffer used as the output target of the
// incremental writer. It keeps its capacity across Reset calls so a warm
// buffer serializes without allocating.
type Buffer struct {
	buf []byte
}

var _ io.Writer = (*Buffer)(nil)

// NewBuffer creates a buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// grow ensures room for n more bytes. The new capacity is the larger of the
// needed size and twice the current capacity.
func (b *Buffer) grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := 2 * cap(b.buf)
	if newCap < need {
		newCap = need
	}
	nb := make([]byte, len(b.buf), newCap)
	copy(nb, b.buf)
	b.buf = nb
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	if len(b.buf) == cap(b.buf) {
		b.grow(1)
	}
	b.buf = append(b.buf, c)
}

// AppendBytes appends a chunk of bytes.
func (b *Buffer) AppendBytes(p []byte) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
}

// AppendString appends a string without converting it to a byte slice first.
func (b *Buffer) AppendString(s string) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// Reset empties the buffer but keeps its capacity for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// View returns the valid byte range. The slice aliases the buffer's storage
// and is invalidated by the next Reset or append.
func (b *Buffer) View() []byte {
	return b.buf
}

// String returns the buffer contents as a string without copying.
// The same aliasing rules as View apply.
func (b *Buffer) String() string {
	return *(*string)(unsafe.Pointer(&b.buf))
}

// Len returns the number of valid bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

var bufPool = sync.Pool{
	New: func() any { return NewBuffer(defaultBufferCapacity) },
}

// NewBufferFromPool returns an empty buffer, possibly warm from the pool.
// Call ReturnToPool when done with it.
func NewBufferFromPool() *Buffer {
	b := bufPool.Get().(*Buffer)
	b.Reset()
	return b
}

// ReturnToPool gives the buffer back. Oversized buffers are dropped so one
// huge request does not pin memory forever.
func ReturnToPool(b *Buffer) {
	if b.Cap() <= maxPooledCapacity {
		bufPool.Put(b)
	}
}
