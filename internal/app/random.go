package app

import (
	"io"
	"sync"
)

// lockedReader serializes reads from a shared randomness source.
// Every engine built by one CryptoAlgorithms draws from the same reader.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
