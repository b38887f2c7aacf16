package bytable

import "sync"

// maxPooledSize keeps one oversized Marshal from pinning its storage in the pool.
const maxPooledSize = 64 * 1024

// byteBufferPool reuses scratch buffers for Marshal and MarshalValue.
var byteBufferPool = sync.Pool{
	New: func() any {
		return NewByteBufferSize(BUFFER_SIZE)
	},
}

func getByteBuffer() *ByteBuffer {
	return byteBufferPool.Get().(*ByteBuffer)
}

func putByteBuffer(b *ByteBuffer) {
	if cap(b.elems) > maxPooledSize {
		return
	}
	b.Reset()
	byteBufferPool.Put(b)
}
