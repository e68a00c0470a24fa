package ui

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a widget, panel or area across frames.
type ID uint64

func IDFrom(s string) ID { return ID(xxhash.Sum64String(s)) }

// With derives a child id scoped under id.
func (id ID) With(s string) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(s)
	return ID(d.Sum64())
}

// WithIndex derives the id of the n-th auto-allocated child.
func (id ID) WithIndex(n int) ID {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))
	return ID(xxhash.Sum64(buf[:]))
}
