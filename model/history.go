package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// DefaultHistoryDepth catches still lifes and oscillators up to period 3
const DefaultHistoryDepth = 3

// History remembers digests of recent live sets for stagnation detection
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps the last depth digests; depth below 1 uses DefaultHistoryDepth
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Observe records live and reports whether it repeats one of the remembered sets
func (h *History) Observe(live LiveSet) bool {
	current := LiveSetHash(live)

	repeated := false
	for _, prev := range h.hashes {
		if prev == current {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets every recorded digest
func (h *History) Reset() {
	h.hashes = nil
}

// LiveSetHash returns an MD5 digest of the set, independent of iteration order
func LiveSetHash(live LiveSet) string {
	var (
		h   = md5.New()
		buf [8]byte
	)
	for _, c := range live.Sorted() {
		binary.BigEndian.PutUint32(buf[:4], uint32(c.Row))
		binary.BigEndian.PutUint32(buf[4:], uint32(c.Col))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
