package timecode

import (
	"fmt"
	"strings"
)

// Raw is the structural result of tokenizing a timecode string. Its
// fields are digit-exact copies of the input with no range or
// drop-frame rules applied yet; a Raw becomes a Timecode only through
// validation.
type Raw struct {
	H, M, S uint8
	F       uint32
	Sep     rune
}

// Parse tokenizes a timecode string of the form HH:MM:SS:FF or
// HH:MM:SS;FF. Each field may be two or three digits, hours must fit
// in a byte, and no leading or trailing characters are allowed; a
// partial match is a failure. Range rules are not checked here.
func Parse(s string) (Raw, error) {
	p := scanner{src: s}
	h := p.digits("hours")
	p.sep(':')
	m := p.digits("minutes")
	p.sep(':')
	sec := p.digits("seconds")
	fsep := p.frameSep()
	f := p.digits("frames")
	p.eof()
	if p.err != nil {
		return Raw{}, p.err
	}
	if h > 255 || m > 255 || sec > 255 {
		return Raw{}, fmt.Errorf("%w: %q: field too large", ErrParse, s)
	}
	return Raw{H: uint8(h), M: uint8(m), S: uint8(sec), F: f, Sep: fsep}, nil
}

// SplitComposite splits the dynamic-framerate composite form
// "<timecode>@<framerate>", e.g. "01:02:15;23@29.97", on the first
// '@'. Neither half is parsed or validated.
func SplitComposite(s string) (tc, rate string, err error) {
	i := strings.IndexByte(s, '@')
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q: missing @framerate", ErrParse, s)
	}
	return s[:i], s[i+1:], nil
}

type scanner struct {
	src string
	pos int
	err error
}

// digits consumes two or three ASCII digits and returns their value.
func (p *scanner) digits(field string) uint32 {
	if p.err != nil {
		return 0
	}
	var v uint32
	n := 0
	for p.pos < len(p.src) && n < 3 {
		c := p.src[p.pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + uint32(c-'0')
		p.pos++
		n++
	}
	if n < 2 {
		p.fail(field)
		return 0
	}
	return v
}

func (p *scanner) sep(want byte) {
	if p.err != nil {
		return
	}
	if p.pos >= len(p.src) || p.src[p.pos] != want {
		p.fail("separator")
		return
	}
	p.pos++
}

func (p *scanner) frameSep() rune {
	if p.err != nil {
		return 0
	}
	if p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case ':', ';':
			p.pos++
			return rune(c)
		}
	}
	p.fail("separator")
	return 0
}

func (p *scanner) eof() {
	if p.err == nil && p.pos != len(p.src) {
		p.fail("trailing characters")
	}
}

func (p *scanner) fail(what string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %q: bad %s at offset %d", ErrParse, p.src, what, p.pos)
	}
}
