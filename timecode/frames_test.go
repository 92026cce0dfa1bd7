package timecode

import (
	"errors"
	"testing"
)

func TestFrameCount(t *testing.T) {
	tests := []struct {
		in   string
		rate Rate
		want Frames
	}{
		{"00:01:02:00", NewNDF(30), 1860},
		{"00:01:02:29", NewNDF(30), 1860 + 29},
		{"00:01:59:29", NewNDF(30), 1860 + 29 + 57*30},
		{"00:59:59:29", NewNDF(30), 59*60*30 + 59*30 + 29},
		{"00:00:00;01", MustDF(30), 1},
		{"00:08:59;29", MustDF(30), 16183},
		{"00:09:00;02", MustDF(30), 16184},
		{"00:10:00;00", MustDF(30), 17982},
	}
	for _, tt := range tests {
		tc, err := New(tt.in, tt.rate)
		if err != nil {
			t.Fatalf("New(%q, %v): %v", tt.in, tt.rate, err)
		}
		got, err := tc.FrameCount()
		if err != nil {
			t.Fatalf("FrameCount(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("FrameCount(%q@%v) = %d, want %d", tt.in, tt.rate, got, tt.want)
		}
	}
}

func TestAddSingleFrame(t *testing.T) {
	tests := []struct {
		in   string
		rate Rate
		want string
	}{
		{"00:01:02:00", NewNDF(30), "00:01:02:01"},
		{"00:01:02:29", NewNDF(30), "00:01:03:00"},
		{"00:01:59:29", NewNDF(30), "00:02:00:00"},
		{"00:59:59:29", NewNDF(30), "01:00:00:00"},
		{"00:01:02;00", MustDF(30), "00:01:02;01"},
		// ;00 and ;01 are skipped entering minute nine
		{"00:08:59;29", MustDF(30), "00:09:00;02"},
		// minute ten is exempt, nothing skipped
		{"00:09:59;29", MustDF(30), "00:10:00;00"},
	}
	for _, tt := range tests {
		tc, err := New(tt.in, tt.rate)
		if err != nil {
			t.Fatalf("New(%q, %v): %v", tt.in, tt.rate, err)
		}
		got, err := tc.AddFrames(1)
		if err != nil {
			t.Fatalf("AddFrames(%q, 1): %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("%q + 1 frame = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestRoundTrip24h checks FrameCount is the exact inverse of
// FromFrames over a full day for each framerate family, including
// both NTSC drop-frame generalizations.
func TestRoundTrip24h(t *testing.T) {
	rates := []Rate{NewNDF(30), MustDF(30), NewNDF(25), MustDF(60)}
	for _, rate := range rates {
		end := Frames(24 * 3600 * rate.MaxFrame())
		for n := Frames(0); n < end; n++ {
			tc, err := FromFrames(n, rate)
			if err != nil {
				t.Fatalf("FromFrames(%d, %v): %v", n, rate, err)
			}
			back, err := tc.FrameCount()
			if err != nil {
				t.Fatalf("FrameCount(%s@%v): %v", tc, rate, err)
			}
			if back != n {
				t.Fatalf("round trip at %v: %d -> %s -> %d", rate, n, tc, back)
			}
		}
	}
}

func TestRoundTripTimecodes(t *testing.T) {
	// the reverse property: every valid timecode survives a pass
	// through its frame count
	tests := []struct {
		in   string
		rate Rate
	}{
		{"23:59:59:29", NewNDF(30)},
		{"23:59:59;29", MustDF(30)},
		{"01:10:00;12", MustDF(30)},
		{"00:10:00;00", MustDF(30)},
		{"15:30:00;04", MustDF(60)},
	}
	for _, tt := range tests {
		tc, err := New(tt.in, tt.rate)
		if err != nil {
			t.Fatalf("New(%q, %v): %v", tt.in, tt.rate, err)
		}
		n, err := tc.FrameCount()
		if err != nil {
			t.Fatal(err)
		}
		back, err := FromFrames(n, tt.rate)
		if err != nil {
			t.Fatal(err)
		}
		if back.String() != tt.in {
			t.Errorf("%q -> %d -> %q", tt.in, n, back)
		}
	}
}

func TestFromFramesOverflow(t *testing.T) {
	// 256 hours does not fit the hours field
	_, err := FromFrames(256*3600*30, NewNDF(30))
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("FromFrames past 255h: err = %v, want ErrOverflow", err)
	}
}

func TestSubFramesUnderflow(t *testing.T) {
	tc, err := New("00:00:01:00", NewNDF(30))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tc.SubFrames(31); !errors.Is(err, ErrUnderflow) {
		t.Errorf("SubFrames past zero: err = %v, want ErrUnderflow", err)
	}
	got, err := tc.SubFrames(30)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "00:00:00:00" {
		t.Errorf("SubFrames(30) = %q, want 00:00:00:00", got)
	}
}
