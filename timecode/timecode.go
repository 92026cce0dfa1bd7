package timecode

import "fmt"

// Timecode is a validated hours:minutes:seconds:frames position at a
// given framerate. It is immutable; arithmetic returns new values.
//
// The framerate travels in the type parameter, so positions at
// different fixed rates cannot be mixed by construction. Use
// Timecode[Rate] when the rate is only known at runtime; its
// operations check the rates and report ErrMismatch instead.
type Timecode[FR Framerate] struct {
	h, m, s uint8
	f       uint32
	rate    FR
}

// New parses and validates a timecode string at the given framerate.
func New[FR Framerate](s string, fr FR) (Timecode[FR], error) {
	raw, err := Parse(s)
	if err != nil {
		return Timecode[FR]{}, err
	}
	return FromRaw(raw, fr)
}

// NewWithWarnings is New plus any non-fatal validation warnings.
func NewWithWarnings[FR Framerate](s string, fr FR) (Timecode[FR], []Warning, error) {
	raw, err := Parse(s)
	if err != nil {
		return Timecode[FR]{}, nil, err
	}
	return FromRawWithWarnings(raw, fr)
}

// NewDyn builds a runtime-rate timecode from separate timecode and
// framerate strings, e.g. ("01:02:15;23", "29.97").
func NewDyn(tc, rate string) (Timecode[Rate], error) {
	r, err := ParseRate(rate)
	if err != nil {
		return Timecode[Rate]{}, err
	}
	return New(tc, r)
}

// ParseDyn builds a runtime-rate timecode from the composite form
// "<timecode>@<framerate>", e.g. "01:02:15;23@29.97".
func ParseDyn(s string) (Timecode[Rate], error) {
	tc, rate, err := SplitComposite(s)
	if err != nil {
		return Timecode[Rate]{}, err
	}
	return NewDyn(tc, rate)
}

// Dyn erases the fixed framerate type, re-expressing t as a
// runtime-rate timecode.
func Dyn[FR Framerate](t Timecode[FR]) Timecode[Rate] {
	return Timecode[Rate]{h: t.h, m: t.m, s: t.s, f: t.f, rate: t.rate.Rate()}
}

func (t Timecode[FR]) H() uint8 { return t.h }
func (t Timecode[FR]) M() uint8 { return t.m }
func (t Timecode[FR]) S() uint8 { return t.s }

// F returns the frames field, not the absolute count; see FrameCount.
func (t Timecode[FR]) F() uint32 { return t.f }

// Framerate returns the framerate the timecode is bound to.
func (t Timecode[FR]) Framerate() FR { return t.rate }

// String formats the timecode as HH:MM:SS:FF, with the frame
// separator taken from the framerate convention regardless of what
// any source string used.
func (t Timecode[FR]) String() string {
	return fmt.Sprintf("%02d:%02d:%02d%c%02d", t.h, t.m, t.s, t.rate.Rate().Sep(), t.f)
}

// Add returns t advanced by the absolute frame count of o. The two
// timecodes must share a framerate; for runtime rates a difference is
// reported as ErrMismatch.
func (t Timecode[FR]) Add(o Timecode[FR]) (Timecode[FR], error) {
	if t.rate.Rate() != o.rate.Rate() {
		return Timecode[FR]{}, fmt.Errorf("%w: %v + %v", ErrMismatch, t.rate.Rate(), o.rate.Rate())
	}
	n, err := o.FrameCount()
	if err != nil {
		return Timecode[FR]{}, err
	}
	return t.AddFrames(n)
}

// AddFrames returns t advanced by n frames.
func (t Timecode[FR]) AddFrames(n Frames) (Timecode[FR], error) {
	c, err := t.FrameCount()
	if err != nil {
		return Timecode[FR]{}, err
	}
	sum := uint64(c) + uint64(n)
	return fromCount(sum, t.rate)
}

// SubFrames returns t moved back by n frames. Going past zero is
// reported as ErrUnderflow.
func (t Timecode[FR]) SubFrames(n Frames) (Timecode[FR], error) {
	c, err := t.FrameCount()
	if err != nil {
		return Timecode[FR]{}, err
	}
	if n > c {
		return Timecode[FR]{}, fmt.Errorf("%w: %d frames from %s", ErrUnderflow, n, t)
	}
	return fromCount(uint64(c-n), t.rate)
}

// Equal reports whether two timecodes name the same position. Rates
// must match; comparing across runtime rates is ErrMismatch, never a
// silent false.
func (t Timecode[FR]) Equal(o Timecode[FR]) (bool, error) {
	if t.rate.Rate() != o.rate.Rate() {
		return false, fmt.Errorf("%w: %v == %v", ErrMismatch, t.rate.Rate(), o.rate.Rate())
	}
	return t.h == o.h && t.m == o.m && t.s == o.s && t.f == o.f, nil
}
