package timecode

import (
	"fmt"
	"math"
	"math/bits"
)

// ConvertTo re-expresses a timecode in another framerate, assuming
// both streams started at timecode zero. The absolute frame count is
// rescaled by the exact rational ratio of the two rates, rounding
// down; no floating point is involved.
func ConvertTo[FR, TO Framerate](t Timecode[FR], target TO) (Timecode[TO], error) {
	c, err := t.FrameCount()
	if err != nil {
		return Timecode[TO]{}, err
	}
	n, err := rescale(c, t.rate.Rate(), target.Rate())
	if err != nil {
		return Timecode[TO]{}, err
	}
	return fromCount(uint64(n), target)
}

// ConvertWithStart converts t into the target framerate relative to a
// shared start position: the elapsed delta from start is converted
// and re-added to start itself converted to the target rate. This
// anchors the conversion to the reference point both streams share,
// which matters whenever source material was shot with a non-zero
// starting timecode. A t before start is reported as ErrUnderflow.
func ConvertWithStart[FR, TO Framerate](t, start Timecode[FR], target TO) (Timecode[TO], error) {
	if t.rate.Rate() != start.rate.Rate() {
		return Timecode[TO]{}, fmt.Errorf("%w: %v vs start %v", ErrMismatch, t.rate.Rate(), start.rate.Rate())
	}
	tc, err := t.FrameCount()
	if err != nil {
		return Timecode[TO]{}, err
	}
	sc, err := start.FrameCount()
	if err != nil {
		return Timecode[TO]{}, err
	}
	if tc < sc {
		return Timecode[TO]{}, fmt.Errorf("%w: %s is before start %s", ErrUnderflow, t, start)
	}
	delta, err := rescale(tc-sc, t.rate.Rate(), target.Rate())
	if err != nil {
		return Timecode[TO]{}, err
	}
	base, err := ConvertTo(start, target)
	if err != nil {
		return Timecode[TO]{}, err
	}
	return base.AddFrames(delta)
}

// rescale computes floor(n * to.num * from.denom / (to.denom *
// from.num)) on widened integers. The widening is load-bearing:
// numerators reach the tens of thousands against counts in the
// millions, well past 32 bits.
func rescale(n Frames, from, to Rate) (Frames, error) {
	if from.MaxFrame() == 0 || to.MaxFrame() == 0 {
		return 0, fmt.Errorf("%w: zero frame count", ErrFramerate)
	}
	hi, num := bits.Mul64(uint64(n), to.Numerator())
	if hi != 0 {
		return 0, fmt.Errorf("%w: rescaling %d frames", ErrOverflow, n)
	}
	hi, num = bits.Mul64(num, from.Denominator())
	if hi != 0 {
		return 0, fmt.Errorf("%w: rescaling %d frames", ErrOverflow, n)
	}
	v := num / (to.Denominator() * from.Numerator())
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: rescaling %d frames", ErrOverflow, n)
	}
	return Frames(v), nil
}
