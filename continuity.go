package timermath

import "fmt"

// ContinuityStatus describes how a counter value relates to the previously tracked one
type ContinuityStatus uint8

// Continuity statuses
const (
	ContinuityFirst ContinuityStatus = iota
	ContinuityInSequence
	ContinuityDuplicate
	ContinuityGap
	ContinuityLate
)

func (s ContinuityStatus) String() string {
	switch s {
	case ContinuityFirst:
		return "first"
	case ContinuityInSequence:
		return "in_sequence"
	case ContinuityDuplicate:
		return "duplicate"
	case ContinuityGap:
		return "gap"
	case ContinuityLate:
		return "late"
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

// ContinuityResult is the outcome of tracking a counter value
type ContinuityResult struct {
	Status ContinuityStatus
	// Number of values skipped when Status is ContinuityGap
	Lost uint32
}

// HasDiscontinuity returns whether the result breaks the sequence
func (r ContinuityResult) HasDiscontinuity() bool {
	return r.Status == ContinuityGap || r.Status == ContinuityLate
}

// ContinuityTracker checks that successive counter values follow each other, rollover included
// Late values, i.e. values behind the last tracked one, don't move the tracker backwards
// It is not safe for concurrent use
type ContinuityTracker struct {
	c       Counter
	started bool
}

// NewContinuityTracker creates a new continuity tracker
func NewContinuityTracker(d Domain) *ContinuityTracker {
	return &ContinuityTracker{c: Counter{d: d}}
}

// Last returns the last tracked value, if any
func (t *ContinuityTracker) Last() (v uint32, ok bool) {
	return t.c.Get(), t.started
}

// Reset forgets the last tracked value
func (t *ContinuityTracker) Reset() {
	t.c.value = 0
	t.started = false
}

// Track checks v against the last tracked value
func (t *ContinuityTracker) Track(v uint32) (r ContinuityResult, err error) {
	if v > t.c.Domain().MaxValue() {
		err = fmt.Errorf("timermath: tracking %d failed: %w", v, ErrCounterOverflow)
		return
	}

	// First value
	if !t.started {
		t.c.value = v
		t.started = true
		r.Status = ContinuityFirst
		return
	}

	switch diff := t.c.Since(v); {
	case diff == 0:
		r.Status = ContinuityDuplicate
		return
	case diff < -1:
		r.Status = ContinuityGap
		r.Lost = uint32(-diff - 1)
	case diff == -1:
		r.Status = ContinuityInSequence
	default:
		r.Status = ContinuityLate
		return
	}
	t.c.value = v
	return
}
