package timecode

import (
	"fmt"
	"math"
	"strconv"
)

// Framerate is implemented by every framerate flavor, fixed or
// dynamic. The single method funnels all of them into Rate, which
// holds the actual dispatch and arithmetic, so validation and
// frame-count logic exist exactly once.
type Framerate interface {
	Rate() Rate
}

// Rate is a framerate carried at runtime, used when the rate comes
// from configuration or user input. The zero Rate is not valid; build
// one with NewNDF, NewDF, MustDF or ParseRate.
type Rate struct {
	count uint32
	df    bool
}

// NewNDF returns a non-drop framerate counting count frames per second.
func NewNDF(count uint32) Rate {
	return Rate{count: count}
}

// NewDF returns a drop-frame framerate. Drop-frame timecodes only
// exist for NTSC-family rates, so count must be a positive multiple
// of 30.
func NewDF(count uint32) (Rate, error) {
	if count == 0 || count%30 != 0 {
		return Rate{}, fmt.Errorf("%w: drop-frame count %d is not a multiple of 30", ErrFramerate, count)
	}
	return Rate{count: count, df: true}, nil
}

// MustDF is NewDF for programming-time constants; it panics instead
// of returning an error.
func MustDF(count uint32) Rate {
	r, err := NewDF(count)
	if err != nil {
		panic(err)
	}
	return r
}

// Rate implements Framerate.
func (r Rate) Rate() Rate { return r }

// Sep returns the canonical frame separator, ';' for drop-frame and
// ':' otherwise.
func (r Rate) Sep() rune {
	if r.df {
		return ';'
	}
	return ':'
}

// MaxFrame is the exclusive upper bound for the frames field.
func (r Rate) MaxFrame() uint32 { return r.count }

// DropFrames reports the number of frame numbers skipped at the start
// of each non-exempt minute, and whether the rate is drop-frame at
// all.
func (r Rate) DropFrames() (uint32, bool) {
	if !r.df {
		return 0, false
	}
	return r.count / 15, true // 30=2, 60=4, etc
}

// DropFrame reports whether the rate uses drop-frame counting.
func (r Rate) DropFrame() bool { return r.df }

// Numerator returns the numerator of the exact rational framerate,
// e.g. 30000 for 29.97.
func (r Rate) Numerator() uint64 {
	if r.df {
		return uint64(r.count) * 1000
	}
	return uint64(r.count)
}

// Denominator returns the denominator of the exact rational
// framerate, e.g. 1001 for 29.97.
func (r Rate) Denominator() uint64 {
	if r.df {
		return 1001
	}
	return 1
}

// Ratio returns the framerate as a float. Display only; frame
// arithmetic uses Numerator and Denominator exactly.
func (r Rate) Ratio() float64 {
	return float64(r.Numerator()) / float64(r.Denominator())
}

// String returns the conventional label for the rate: "25", "30",
// "29.97", "59.94" and so on. The label round-trips through
// ParseRate.
func (r Rate) String() string {
	if r.df {
		return strconv.FormatFloat(r.Ratio(), 'f', 2, 64)
	}
	return strconv.Itoa(int(r.count))
}

// parseEpsilon is how close a parsed float must be to a whole rate or
// to a multiple of 29.97 to be recognized.
const parseEpsilon = 0.01

// ParseRate interprets framerate strings such as "30", "29.97",
// "23.98" or "59.94". Integers parse as non-drop at that rate. Floats
// within 0.01 of a whole number parse as that whole non-drop rate,
// known NTSC rates map to their conventional encodings (23.98 is 24
// NDF, 29.97 is 30 DF, 59.94 is 60 DF), and any other float near a
// multiple of 29.97 parses as drop-frame at 30 times that multiple.
//
// The heuristic is inherently ambiguous for rates outside that table;
// treat it as an approximation, not a guarantee.
func ParseRate(s string) (Rate, error) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil && n > 0 {
		return NewNDF(uint32(n)), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return Rate{}, fmt.Errorf("%w: %q", ErrFramerate, s)
	}

	if math.Abs(f-math.Round(f)) < parseEpsilon {
		return NewNDF(uint32(math.Round(f))), nil
	}

	special := []struct {
		fps  float64
		rate Rate
	}{
		{23.98, NewNDF(24)},
		{29.97, MustDF(30)},
		{59.94, MustDF(60)},
		{59.97, MustDF(60)},
	}
	for _, sp := range special {
		if math.Abs(f-sp.fps) < parseEpsilon {
			return sp.rate, nil
		}
	}

	// close to a multiple of 29.97 means the NTSC drop-frame family
	if k := f / 29.97; math.Abs(k-math.Round(k)) < parseEpsilon {
		return NewDF(uint32(math.Round(k)) * 30)
	}
	return Rate{}, fmt.Errorf("%w: %q", ErrFramerate, s)
}

// DynOf re-expresses any framerate as its runtime Rate value.
func DynOf(fr Framerate) Rate { return fr.Rate() }

// Fixed converts a runtime Rate to the fixed framerate type FR. It
// fails when the frame counts or drop-frame flags differ.
func Fixed[FR Framerate](r Rate) (FR, bool) {
	var fr FR
	if p, ok := any(&fr).(*Rate); ok {
		*p = r
		return fr, true
	}
	return fr, fr.Rate() == r
}

// Fixed framerates for callers that know the rate at compile time.
// Each is a zero-size type whose value is baked into the type itself;
// mixing two differently-typed timecodes is then a compile error
// rather than a runtime one.
type (
	// NDF24 is 24fps non-drop, also used for 23.98 material.
	NDF24 struct{}
	// NDF25 is 25fps non-drop (PAL).
	NDF25 struct{}
	// NDF30 is 30fps non-drop.
	NDF30 struct{}
	// NDF50 is 50fps non-drop (PAL).
	NDF50 struct{}
	// NDF60 is 60fps non-drop.
	NDF60 struct{}
	// DF2997 is 29.97fps drop-frame (NTSC).
	DF2997 struct{}
	// DF5994 is 59.94fps drop-frame (NTSC).
	DF5994 struct{}
)

// NDF2398 is the 23.98 label for NDF24.
type NDF2398 = NDF24

func (NDF24) Rate() Rate  { return Rate{count: 24} }
func (NDF25) Rate() Rate  { return Rate{count: 25} }
func (NDF30) Rate() Rate  { return Rate{count: 30} }
func (NDF50) Rate() Rate  { return Rate{count: 50} }
func (NDF60) Rate() Rate  { return Rate{count: 60} }
func (DF2997) Rate() Rate { return Rate{count: 30, df: true} }
func (DF5994) Rate() Rate { return Rate{count: 60, df: true} }
