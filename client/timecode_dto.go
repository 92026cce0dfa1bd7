package client

import (
	"github.com/cbsinteractive/timecode-api/timecode"
)

// TimecodeRequest names a single timecode: either a display string or
// an absolute frame count, at the given framerate.
type TimecodeRequest struct {
	Timecode   string           `json:"timecode,omitempty"`
	FrameCount *timecode.Frames `json:"frame_count,omitempty"`
	Framerate  string           `json:"framerate"`
}

// ArithRequest adds a timecode or frame count to the named timecode,
// or subtracts a frame count from it.
type ArithRequest struct {
	TimecodeRequest
	AddTimecode string           `json:"add_timecode,omitempty"`
	AddFrames   *timecode.Frames `json:"add_frames,omitempty"`
	SubFrames   *timecode.Frames `json:"sub_frames,omitempty"`
}

// ConvertRequest rescales the named timecode to the target framerate.
// Start anchors the conversion at an explicit shared start timecode;
// Anchor looks one up by name instead.
type ConvertRequest struct {
	TimecodeRequest
	Target string `json:"target"`
	Start  string `json:"start,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

// AnchorRequest stores a named start timecode.
type AnchorRequest struct {
	Timecode  string `json:"timecode"`
	Framerate string `json:"framerate"`
}

// Report is the wire form of a timecode: the display string plus
// everything a caller needs to query without re-parsing.
type Report struct {
	Timecode   string             `json:"timecode"`
	Composite  string             `json:"composite"`
	Framerate  string             `json:"framerate"`
	FPS        float64            `json:"fps"`
	DropFrame  bool               `json:"drop_frame"`
	Hours      uint8              `json:"hours"`
	Minutes    uint8              `json:"minutes"`
	Seconds    uint8              `json:"seconds"`
	Frames     uint32             `json:"frames"`
	FrameCount timecode.Frames    `json:"frame_count"`
	Warnings   []timecode.Warning `json:"warnings,omitempty"`
}
