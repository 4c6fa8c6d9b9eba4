package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferGrowthPreservesContents(t *testing.T) {
	b := NewBuffer(64)

	var want []byte
	chunk := []byte("0123456789abcdef")
	for b.Len() < 10000 {
		b.AppendBytes(chunk)
		want = append(want, chunk...)
	}

	assert.Equal(t, len(want), b.Len())
	assert.True(t, bytes.Equal(want, b.View()))
	assert.GreaterOrEqual(t, b.Cap(), b.Len())
}

func TestBufferAppendVariants(t *testing.T) {
	b := NewBuffer(4)
	b.AppendByte('{')
	b.AppendString(`"a":`)
	b.AppendBytes([]byte("1}"))

	assert.Equal(t, `{"a":1}`, b.String())
	assert.Equal(t, 7, b.Len())
}

func TestBufferResetKeepsCapacity(t *testing.T) {
	b := NewBuffer(8)
	b.AppendString("some longer payload that forces growth")
	grown := b.Cap()

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, grown, b.Cap())

	b.AppendString("x")
	assert.Equal(t, "x", b.String())
}

func TestBufferDoublingPolicy(t *testing.T) {
	b := NewBuffer(64)
	b.AppendBytes(make([]byte, 65))

	// Needed 65, doubling gives 128.
	assert.Equal(t, 128, b.Cap())

	b.AppendBytes(make([]byte, 1000))
	// Needed 1065, more than doubling (256); capacity jumps straight to it.
	assert.Equal(t, 1065, b.Cap())
}

func TestBufferWriter(t *testing.T) {
	b := NewBuffer(16)
	n, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(b.View()))
}

func TestBufferPoolRoundTrip(t *testing.T) {
	b := NewBufferFromPool()
	b.AppendString("pooled")
	assert.Equal(t, "pooled", b.String())
	ReturnToPool(b)

	b2 := NewBufferFromPool()
	assert.Equal(t, 0, b2.Len())
	ReturnToPool(b2)
}
