package scanner

import "sync"

// ReadBufferSize is a multiple of every kernel's block size.
const ReadBufferSize = 64 * 1024

var readBufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, ReadBufferSize)
		return &b
	},
}

// GetReadBuffer returns a ReadBufferSize scratch buffer for streaming input.
func GetReadBuffer() *[]byte {
	return readBufferPool.Get().(*[]byte)
}

func PutReadBuffer(b *[]byte) {
	if cap(*b) != ReadBufferSize { // Don't pool foreign slices
		return
	}
	*b = (*b)[:ReadBufferSize]
	readBufferPool.Put(b)
}
