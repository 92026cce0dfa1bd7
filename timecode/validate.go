package timecode

import "fmt"

// FromRaw checks a tokenized record against the framerate's rules and
// returns the validated timecode. The checks run in a fixed order and
// the first failure wins: minutes range, seconds range, drop-frame
// skip window, frames range. Separator mismatches never fail
// validation; use FromRawWithWarnings to observe them.
func FromRaw[FR Framerate](r Raw, fr FR) (Timecode[FR], error) {
	t, _, err := FromRawWithWarnings(r, fr)
	return t, err
}

// FromRawWithWarnings is FromRaw plus the non-fatal observations made
// along the way, currently only MismatchSep.
func FromRawWithWarnings[FR Framerate](r Raw, fr FR) (Timecode[FR], []Warning, error) {
	rate := fr.Rate()
	if err := check(rate, r); err != nil {
		return Timecode[FR]{}, nil, err
	}
	var warns []Warning
	if r.Sep != rate.Sep() {
		warns = append(warns, MismatchSep)
	}
	return Unchecked(r, fr), warns, nil
}

// Unchecked builds a Timecode with no validation at all. It exists
// for callers that can prove the invariants hold already, e.g. values
// round-tripped through FromFrames. Feeding it an invalid record is a
// logic error: the resulting timecode silently breaks frame-count
// arithmetic and is not detected later.
func Unchecked[FR Framerate](r Raw, fr FR) Timecode[FR] {
	return Timecode[FR]{h: r.H, m: r.M, s: r.S, f: r.F, rate: fr}
}

func check(rate Rate, r Raw) error {
	if r.M >= 60 {
		return fmt.Errorf("%w: %d", ErrMinutes, r.M)
	}
	if r.S >= 60 {
		return fmt.Errorf("%w: %d", ErrSeconds, r.S)
	}
	if k, df := rate.DropFrames(); df {
		// the first k frame numbers of each non-exempt minute are
		// skipped and can never appear in a real encoding
		if r.M%10 != 0 && r.S == 0 && r.F < k {
			return fmt.Errorf("%w: %02d is dropped at minute %d", ErrFrames, r.F, r.M)
		}
	}
	if r.F >= rate.MaxFrame() {
		return fmt.Errorf("%w: %d", ErrFrames, r.F)
	}
	return nil
}
