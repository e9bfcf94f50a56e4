package handler

import (
	"bytes"
	"sync"
)

// Snapshots with a full daycare run a few KB; buffers that grew past
// maxPooledBuffer are dropped instead of pinned in the pool.
const (
	initialBufferSize = 2 << 10
	maxPooledBuffer   = 64 << 10
)

// bufferPool reuses JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
