package timecode

// Serialization uses the canonical display string for everything: a
// structured format carries exactly what a human would type, and
// deserializing re-runs the full parse+validate pipeline rather than
// trusting unchecked fields. Runtime-rate timecodes round-trip the
// composite "<timecode>@<framerate>" form so the rate survives.

// MarshalText renders the framerate label, e.g. "29.97".
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a framerate label via ParseRate.
func (r *Rate) UnmarshalText(p []byte) error {
	v, err := ParseRate(string(p))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalText renders the canonical display form, with @framerate
// appended when the framerate only exists at runtime.
func (t Timecode[FR]) MarshalText() ([]byte, error) {
	if r, dyn := any(t.rate).(Rate); dyn {
		return []byte(t.String() + "@" + r.String()), nil
	}
	return []byte(t.String()), nil
}

// UnmarshalText re-parses and re-validates the display form. For
// fixed framerate types the rate is the type itself; Timecode[Rate]
// expects the composite @framerate form.
func (t *Timecode[FR]) UnmarshalText(p []byte) error {
	if _, dyn := any(t.rate).(Rate); dyn {
		v, err := ParseDyn(string(p))
		if err != nil {
			return err
		}
		*t = any(v).(Timecode[FR])
		return nil
	}
	v, err := New(string(p), t.rate)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
