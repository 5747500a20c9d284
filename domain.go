package timermath

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Errors
var (
	ErrInvalidBitWidth = errors.New("timermath: bit width must be between 1 and 32")
)

// domainKind is the arithmetic regime selected for a domain
type domainKind uint8

const (
	// Zero value so that Domain{} is the masked domain [0, 0]
	kindMasked domainKind = iota
	kindModulo
	kindFullWidth
)

// Domain represents a cyclic counter space [0, MaxValue] where arithmetic wraps modulo MaxValue+1
// A Domain is an immutable value and can be shared between goroutines
// Values above MaxValue are a caller contract violation and are not checked
type Domain struct {
	kind     domainKind
	maxValue uint32
}

// NewDomain creates a new domain whose largest counter value is maxValue
func NewDomain(maxValue uint32) Domain {
	d := Domain{maxValue: maxValue}
	switch {
	case maxValue == math.MaxUint32:
		d.kind = kindFullWidth
	case maxValue&(maxValue+1) == 0:
		d.kind = kindMasked
	default:
		d.kind = kindModulo
	}
	return d
}

// NewDomainBits creates the masked domain [0, 2^n - 1]
func NewDomainBits(n uint) (Domain, error) {
	if n == 0 || n > 32 {
		return Domain{}, fmt.Errorf("%w: got %d", ErrInvalidBitWidth, n)
	}
	return NewDomain(uint32(math.MaxUint32) >> (32 - n)), nil
}

// MaxValue returns the largest counter value of the domain
func (d Domain) MaxValue() uint32 { return d.maxValue }

// Modulus returns the size of the domain. It is 2^32 for the full-width domain.
func (d Domain) Modulus() uint64 { return uint64(d.maxValue) + 1 }

// Bits returns the number of bits needed to encode MaxValue
func (d Domain) Bits() int {
	if d.maxValue == 0 {
		return 1
	}
	return bits.Len32(d.maxValue)
}

// IsMasked returns whether the modulus is a power of two
func (d Domain) IsMasked() bool { return d.kind != kindModulo }

// IsFullWidth returns whether the domain spans every uint32 value
func (d Domain) IsFullWidth() bool { return d.kind == kindFullWidth }

func (d Domain) String() string {
	return fmt.Sprintf("[0, %d]", d.maxValue)
}

// Offset returns (v + delta) mod Modulus, delta may be negative
func (d Domain) Offset(v uint32, delta int64) uint32 {
	switch d.kind {
	case kindFullWidth:
		// Truncating delta to 32 bits keeps it congruent modulo 2^32
		return v + uint32(delta)
	case kindMasked:
		return (v + uint32(delta)) & d.maxValue
	}

	m := int64(d.Modulus())
	r := int64(v) + delta%m
	if r < 0 {
		r += m
	} else if r >= m {
		r -= m
	}
	return uint32(r)
}

// Distance returns the forward distance from b to a, that is (a - b) mod Modulus
func (d Domain) Distance(a, b uint32) uint32 {
	switch d.kind {
	case kindFullWidth:
		return a - b
	case kindMasked:
		return (a - b) & d.maxValue
	}
	if a >= b {
		return a - b
	}
	return uint32(d.Modulus() - uint64(b-a))
}

// Diff returns the shortest signed distance from b to a around the cycle
// A positive result means a is ahead of b, a negative one that a is behind b
// When a and b are exactly half the modulus apart the result is +Modulus/2, whatever the argument order
func (d Domain) Diff(a, b uint32) int64 {
	raw := uint64(d.Distance(a, b))
	if 2*raw > d.Modulus() {
		return int64(raw) - int64(d.Modulus())
	}
	return int64(raw)
}

// Compare returns -1 if a is behind b, 0 if they are equal and +1 if a is ahead of b
func (d Domain) Compare(a, b uint32) int {
	switch diff := d.Diff(a, b); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}

// IsLess returns whether a is behind b
func (d Domain) IsLess(a, b uint32) bool { return d.Diff(a, b) < 0 }

// IsGreater returns whether a is ahead of b
func (d Domain) IsGreater(a, b uint32) bool { return d.Diff(a, b) > 0 }

// IsLessOrEqual returns whether a is behind or equal to b
func (d Domain) IsLessOrEqual(a, b uint32) bool { return d.Diff(a, b) <= 0 }

// IsGreaterOrEqual returns whether a is ahead of or equal to b
func (d Domain) IsGreaterOrEqual(a, b uint32) bool { return d.Diff(a, b) >= 0 }

// InRange returns whether v lies on the forward arc going from first to last, both included
func (d Domain) InRange(v, first, last uint32) bool {
	return d.Distance(v, first) <= d.Distance(last, first)
}
