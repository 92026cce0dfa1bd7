package timecode

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tc, err := New("01:02:00:25", NDF30{})
	if err != nil {
		t.Fatal(err)
	}
	if tc.String() != "01:02:00:25" {
		t.Errorf("String() = %q", tc)
	}
	if tc.H() != 1 || tc.M() != 2 || tc.S() != 0 || tc.F() != 25 {
		t.Errorf("components = %d %d %d %d", tc.H(), tc.M(), tc.S(), tc.F())
	}
	if _, err := New("01:02:00:25", NDF24{}); !errors.Is(err, ErrFrames) {
		t.Errorf("frame 25 at 24fps: err = %v, want ErrFrames", err)
	}
	if _, err := New("bogus", NDF30{}); !errors.Is(err, ErrParse) {
		t.Errorf("New(bogus): err = %v, want ErrParse", err)
	}
}

func TestNewDyn(t *testing.T) {
	tc, err := NewDyn("01:02:15;23", "29.97")
	if err != nil {
		t.Fatal(err)
	}
	if tc.Framerate() != MustDF(30) {
		t.Errorf("Framerate() = %v", tc.Framerate())
	}
	if _, err := NewDyn("01:02:15;23", "PAL"); !errors.Is(err, ErrFramerate) {
		t.Errorf("bad rate: err = %v, want ErrFramerate", err)
	}
}

func TestParseDyn(t *testing.T) {
	tc, err := ParseDyn("01:02:15;23@29.97")
	if err != nil {
		t.Fatal(err)
	}
	if tc.String() != "01:02:15;23" || tc.Framerate() != MustDF(30) {
		t.Errorf("ParseDyn = %q at %v", tc, tc.Framerate())
	}
}

func TestAdd(t *testing.T) {
	a, err := New("01:00:00:00", NDF30{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("00:00:30:15", NDF30{})
	if err != nil {
		t.Fatal(err)
	}
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "01:00:30:15" {
		t.Errorf("Add = %q, want 01:00:30:15", sum)
	}
}

func TestAddDynMismatch(t *testing.T) {
	a, err := NewDyn("01:00:00:00", "30")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDyn("00:00:01:00", "25")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Add(b); !errors.Is(err, ErrMismatch) {
		t.Errorf("30fps + 25fps: err = %v, want ErrMismatch", err)
	}
	if _, err := a.Equal(b); !errors.Is(err, ErrMismatch) {
		t.Errorf("30fps == 25fps: err = %v, want ErrMismatch", err)
	}
}

func TestDynErasure(t *testing.T) {
	fixed, err := New("01:02:03;04", DF2997{})
	if err != nil {
		t.Fatal(err)
	}
	dyn := Dyn(fixed)
	if dyn.String() != fixed.String() {
		t.Errorf("Dyn = %q, want %q", dyn, fixed)
	}
	if dyn.Framerate() != MustDF(30) {
		t.Errorf("Dyn rate = %v", dyn.Framerate())
	}
}

func TestEqual(t *testing.T) {
	a, err := NewDyn("01:02:15;23", "29.97")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDyn("01:02:15:23", "29.97") // separator does not matter
	if err != nil {
		t.Fatal(err)
	}
	eq, err := a.Equal(b)
	if err != nil || !eq {
		t.Errorf("Equal = %v, %v", eq, err)
	}
}
