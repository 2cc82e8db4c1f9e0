package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 1024
	// maxPooledBufferSize keeps one oversized item listing from pinning
	// its buffer in the pool
	maxPooledBufferSize = 64 * 1024
)

var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer returns buf for reuse unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
