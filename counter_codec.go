package timermath

import (
	"fmt"

	"github.com/asticode/go-astikit"
)

// ByteLength returns the number of bytes a counter of the domain is serialized on
func (d Domain) ByteLength() int {
	return (d.Bits() + 7) / 8
}

// WriteCounter writes v as a big-endian integer on d.ByteLength() bytes
func WriteCounter(w *astikit.BitsWriter, d Domain, v uint32) (int, error) {
	if v > d.MaxValue() {
		return 0, fmt.Errorf("timermath: writing %d failed: %w", v, ErrCounterOverflow)
	}

	var bb [4]byte
	bb[0] = uint8(v >> 24)
	bb[1] = uint8(v >> 16)
	bb[2] = uint8(v >> 8)
	bb[3] = uint8(v)

	n := d.ByteLength()
	if err := w.Write(bb[4-n:]); err != nil {
		return 0, fmt.Errorf("timermath: writing %d failed: %w", v, err)
	}
	return n, nil
}

// ParseCounter parses a counter written by WriteCounter
func ParseCounter(i *astikit.BytesIterator, d Domain) (v uint32, err error) {
	n := d.ByteLength()

	var bs []byte
	if bs, err = i.NextBytesNoCopy(n); err != nil || len(bs) < n {
		err = fmt.Errorf("timermath: fetching next bytes failed: %w", err)
		return
	}

	for _, b := range bs {
		v = v<<8 | uint32(b)
	}

	if v > d.MaxValue() {
		err = fmt.Errorf("timermath: parsing %d failed: %w", v, ErrCounterOverflow)
		v = 0
	}
	return
}
