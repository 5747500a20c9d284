package timermath

import (
	"errors"
	"fmt"
)

var ErrCounterOverflow = errors.New("timermath: counter overflow")

// Counter is a counter wrapping around the values of a domain
// It is not safe for concurrent use
type Counter struct {
	d     Domain
	value uint32
}

// NewCounter creates a new counter starting at initial
func NewCounter(d Domain, initial uint32) (*Counter, error) {
	c := &Counter{d: d}
	if err := c.Set(initial); err != nil {
		return nil, err
	}
	return c, nil
}

// Domain returns the domain the counter wraps in
func (c *Counter) Domain() Domain {
	return c.d
}

func (c *Counter) Get() uint32 {
	return c.value
}

func (c *Counter) Set(v uint32) error {
	if v > c.d.MaxValue() {
		return fmt.Errorf("%w: %d is above %d", ErrCounterOverflow, v, c.d.MaxValue())
	}
	c.value = v
	return nil
}

func (c *Counter) Inc() uint32 {
	return c.Add(1)
}

func (c *Counter) Dec() uint32 {
	return c.Add(-1)
}

// Add moves the counter by delta and returns its new value
func (c *Counter) Add(delta int64) uint32 {
	c.value = c.d.Offset(c.value, delta)
	return c.value
}

// Since returns the shortest signed distance from v to the current value
func (c *Counter) Since(v uint32) int64 {
	return c.d.Diff(c.value, v)
}
