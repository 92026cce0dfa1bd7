package timecode

import "errors"

var (
	// ErrParse means the input did not match the timecode grammar.
	ErrParse = errors.New("unparsed timecode")
	// ErrMinutes means the minutes field is 60 or more.
	ErrMinutes = errors.New("invalid minutes")
	// ErrSeconds means the seconds field is 60 or more.
	ErrSeconds = errors.New("invalid seconds")
	// ErrFrames means the frames field is out of range for the
	// framerate, or falls inside a drop-frame skip window and so can
	// never occur in a real drop-frame encoding.
	ErrFrames = errors.New("invalid frames")
	// ErrFramerate means a framerate string or value could not be
	// interpreted.
	ErrFramerate = errors.New("invalid framerate")
	// ErrMismatch means arithmetic or equality was attempted between
	// two timecodes with different framerates.
	ErrMismatch = errors.New("framerate mismatch")
	// ErrOverflow means a frame-count computation left the
	// representable range.
	ErrOverflow = errors.New("frame count overflow")
	// ErrUnderflow means a subtraction would need a negative frame
	// count, e.g. a timecode precedes its start anchor.
	ErrUnderflow = errors.New("timecode precedes start")
)

// Warning is a non-fatal observation made during validation. Warnings
// never block construction and are collected only by the
// *WithWarnings constructors.
type Warning string

// MismatchSep is reported when a timecode's separator does not match
// the framerate convention (';' drop-frame, ':' non-drop). Real-world
// sources mix the two loosely, so this is not an error.
const MismatchSep Warning = "mismatched separator"
