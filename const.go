package codec

const (
	// CodecVersion is the current version of the codec
	CodecVersion = "v1.0.0"

	// defaultBufferCapacity is the initial capacity of pooled buffers.
	// Large enough for any single order request after escaping.
	defaultBufferCapacity = 2048

	// maxPooledCapacity caps what goes back into the pool.
	maxPooledCapacity = 64 * 1024
)
