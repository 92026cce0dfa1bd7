package timecode

import (
	"fmt"
	"math"
)

// Frames is an absolute frame count: the number of frames elapsed
// since timecode zero. It is the canonical interchange value between
// framerates. 24 hours at 120fps still fits a uint32 with room to
// spare; intermediates are widened to uint64 and narrowing is
// checked.
type Frames uint32

// FrameCount converts the timecode to its absolute frame count.
//
// For drop-frame rates the nominal count over-counts by the skipped
// frame numbers, k per minute except minutes divisible by 10, so
// exactly that many are subtracted for the minutes elapsed strictly
// before t.
func (t Timecode[FR]) FrameCount() (Frames, error) {
	rate := t.rate.Rate()
	mf := uint64(rate.MaxFrame())
	if mf == 0 {
		return 0, fmt.Errorf("%w: zero frame count", ErrFramerate)
	}
	n := uint64(t.h)*3600*mf + uint64(t.m)*60*mf + uint64(t.s)*mf + uint64(t.f)
	if k, df := rate.DropFrames(); df {
		mins := uint64(t.h)*60 + uint64(t.m)
		n -= (mins - mins/10) * uint64(k)
	}
	if n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s at %v", ErrOverflow, t, rate)
	}
	return Frames(n), nil
}

// FromFrames converts an absolute frame count back into a timecode at
// the given framerate. It is the exact inverse of FrameCount: for
// every representable count n, FromFrames(n, fr).FrameCount() == n.
func FromFrames[FR Framerate](n Frames, fr FR) (Timecode[FR], error) {
	return fromCount(uint64(n), fr)
}

// fromCount splits a widened sequential frame count into h/m/s/f.
// The input counts real frames, the output encoding has gaps at
// drop-frame minute boundaries, so drop-frame rates first push the
// count forward by the frame numbers skipped before it.
func fromCount[FR Framerate](c uint64, fr FR) (Timecode[FR], error) {
	rate := fr.Rate()
	mf := uint64(rate.MaxFrame())
	if mf == 0 {
		return Timecode[FR]{}, fmt.Errorf("%w: zero frame count", ErrFramerate)
	}
	if k32, df := rate.DropFrames(); df {
		k := uint64(k32)
		// 8991k frames in each full 10-minute block: 10 nominal
		// minutes minus the 9 skips of k. 17982 for the classic
		// 29.97 case.
		per10 := 8991 * k
		d, m := c/per10, c%per10
		if m < k {
			m += k
		}
		c += 9*k*d + k*((m-k)/(per10/10))
	}
	f := c % mf
	c /= mf
	s := c % 60
	c /= 60
	m := c % 60
	c /= 60
	if c > math.MaxUint8 {
		return Timecode[FR]{}, fmt.Errorf("%w: %d hours", ErrOverflow, c)
	}
	return Timecode[FR]{h: uint8(c), m: uint8(m), s: uint8(s), f: uint32(f), rate: fr}, nil
}
