// Package service exposes the timecode library over HTTP, the
// binding surface for non-Go callers. Every fallible library
// operation surfaces as an error response carrying a readable
// message; the service never panics on input.
package service

import (
	"encoding/json"
	"net/http"

	"github.com/cbsinteractive/timecode-api/config"
	"github.com/cbsinteractive/timecode-api/db"
	"github.com/cbsinteractive/timecode-api/service/exceptions"
	"github.com/cbsinteractive/timecode-api/timecode"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Config      *config.Config
	DB          *db.Client
	Logger      *logrus.Logger
	ErrReporter exceptions.Reporter

	request
}

func (s Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.request = newRequest(rw, r, s.Logger)
	s.serve()
	s.request.finalize()
}

func (s *Server) serve() bool {
	switch s.chop() {
	case "timecodes":
		if s.method() != "POST" {
			return s.writeerror("bad method", 405, nil)
		}
		switch op := s.chop(); op {
		case "":
			return s.describe0()
		case "add":
			return s.add0()
		case "sub":
			return s.sub0()
		case "convert":
			return s.convert0()
		}
	case "anchors":
		name := s.chop()
		if name == "" {
			return s.writeerror("anchor name required", 400, nil)
		}
		switch s.method() {
		case "POST", "PUT":
			return s.putAnchor0(name)
		case "GET":
			return s.getAnchor0(name)
		case "DELETE":
			return s.delAnchor0(name)
		}
	}
	return s.writeerror("bad request path", 400, nil)
}

// TimecodeRequest names a single timecode: either a display string or
// an absolute frame count, at the given framerate.
type TimecodeRequest struct {
	Timecode   string           `json:"timecode,omitempty"`
	FrameCount *timecode.Frames `json:"frame_count,omitempty"`
	Framerate  string           `json:"framerate"`
}

type ArithRequest struct {
	TimecodeRequest
	AddTimecode string           `json:"add_timecode,omitempty"`
	AddFrames   *timecode.Frames `json:"add_frames,omitempty"`
	SubFrames   *timecode.Frames `json:"sub_frames,omitempty"`
}

type ConvertRequest struct {
	TimecodeRequest
	Target string `json:"target"`
	// Start anchors the conversion at an explicit shared start
	// timecode; Anchor looks one up by name instead.
	Start  string `json:"start,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

type AnchorRequest struct {
	Timecode  string `json:"timecode"`
	Framerate string `json:"framerate"`
}

// Report is the wire form of a timecode: the display string plus
// everything a binding needs to query without re-parsing.
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

func report(tc timecode.Timecode[timecode.Rate], warns []timecode.Warning) (Report, error) {
	n, err := tc.FrameCount()
	if err != nil {
		return Report{}, err
	}
	rate := tc.Framerate()
	return Report{
		Timecode:   tc.String(),
		Composite:  tc.String() + "@" + rate.String(),
		Framerate:  rate.String(),
		FPS:        rate.Ratio(),
		DropFrame:  rate.DropFrame(),
		Hours:      tc.H(),
		Minutes:    tc.M(),
		Seconds:    tc.S(),
		Frames:     tc.F(),
		FrameCount: n,
		Warnings:   warns,
	}, nil
}

// resolve builds the timecode a request names, from either its
// display string or its frame count.
func resolve(req TimecodeRequest) (timecode.Timecode[timecode.Rate], []timecode.Warning, error) {
	rate, err := timecode.ParseRate(req.Framerate)
	if err != nil {
		return timecode.Timecode[timecode.Rate]{}, nil, err
	}
	if req.FrameCount != nil {
		tc, err := timecode.FromFrames(*req.FrameCount, rate)
		return tc, nil, err
	}
	return timecode.NewWithWarnings(req.Timecode, rate)
}

func (s *Server) describe0() bool {
	var req TimecodeRequest
	if !s.unmarshalJSON(&req) {
		return s.writeerror("bad request body", 400, s.err)
	}
	tc, warns, err := resolve(req)
	if err != nil {
		return s.writeerror("bad timecode", 400, err)
	}
	rep, err := report(tc, warns)
	if err != nil {
		return s.writeerror("bad timecode", 400, err)
	}
	return s.writebody(rep)
}

func (s *Server) add0() bool {
	var req ArithRequest
	if !s.unmarshalJSON(&req) {
		return s.writeerror("bad request body", 400, s.err)
	}
	tc, _, err := resolve(req.TimecodeRequest)
	if err != nil {
		return s.writeerror("bad timecode", 400, err)
	}
	switch {
	case req.AddTimecode != "":
		other, err := timecode.New(req.AddTimecode, tc.Framerate())
		if err != nil {
			return s.writeerror("bad addend", 400, err)
		}
		tc, err = tc.Add(other)
		if err != nil {
			return s.writeerror("add failed", 400, err)
		}
	case req.AddFrames != nil:
		tc, err = tc.AddFrames(*req.AddFrames)
		if err != nil {
			return s.writeerror("add failed", 400, err)
		}
	default:
		return s.writeerror("nothing to add", 400, nil)
	}
	rep, err := report(tc, nil)
	if err != nil {
		return s.writeerror("add failed", 400, err)
	}
	return s.writebody(rep)
}

func (s *Server) sub0() bool {
	var req ArithRequest
	if !s.unmarshalJSON(&req) {
		return s.writeerror("bad request body", 400, s.err)
	}
	tc, _, err := resolve(req.TimecodeRequest)
	if err != nil {
		return s.writeerror("bad timecode", 400, err)
	}
	if req.SubFrames == nil {
		return s.writeerror("nothing to subtract", 400, nil)
	}
	tc, err = tc.SubFrames(*req.SubFrames)
	if err != nil {
		return s.writeerror("sub failed", 400, err)
	}
	rep, err := report(tc, nil)
	if err != nil {
		return s.writeerror("sub failed", 400, err)
	}
	return s.writebody(rep)
}

func (s *Server) convert0() bool {
	var req ConvertRequest
	if !s.unmarshalJSON(&req) {
		return s.writeerror("bad request body", 400, s.err)
	}
	tc, _, err := resolve(req.TimecodeRequest)
	if err != nil {
		return s.writeerror("bad timecode", 400, err)
	}
	target, err := timecode.ParseRate(req.Target)
	if err != nil {
		return s.writeerror("bad target framerate", 400, err)
	}

	var out timecode.Timecode[timecode.Rate]
	switch {
	case req.Anchor != "":
		a, err := s.DB.Anchor(req.Anchor)
		if err == db.ErrAnchorNotFound {
			return s.writeerror("anchor not found", 404, err)
		} else if err != nil {
			err = errors.Wrap(err, "loading anchor")
			s.exception(err)
			return s.writeerror("storage error", 500, err)
		}
		out, err = timecode.ConvertWithStart(tc, a.Start, target)
		if err != nil {
			return s.writeerror("convert failed", 400, err)
		}
	case req.Start != "":
		start, err := timecode.New(req.Start, tc.Framerate())
		if err != nil {
			return s.writeerror("bad start timecode", 400, err)
		}
		out, err = timecode.ConvertWithStart(tc, start, target)
		if err != nil {
			return s.writeerror("convert failed", 400, err)
		}
	default:
		out, err = timecode.ConvertTo(tc, target)
		if err != nil {
			return s.writeerror("convert failed", 400, err)
		}
	}
	rep, err := report(out, nil)
	if err != nil {
		return s.writeerror("convert failed", 400, err)
	}
	return s.writebody(rep)
}

func (s *Server) putAnchor0(name string) bool {
	var req AnchorRequest
	if !s.unmarshalJSON(&req) {
		return s.writeerror("bad request body", 400, s.err)
	}
	start, err := timecode.NewDyn(req.Timecode, req.Framerate)
	if err != nil {
		return s.writeerror("bad anchor timecode", 400, err)
	}
	a := db.Anchor{Name: name, Start: start}
	if err := s.DB.PutAnchor(a); err != nil {
		err = errors.Wrap(err, "storing anchor")
		s.exception(err)
		return s.writeerror("storage error", 500, err)
	}
	rep, err := report(start, nil)
	if err != nil {
		return s.writeerror("bad anchor timecode", 400, err)
	}
	return s.writebody(rep)
}

func (s *Server) getAnchor0(name string) bool {
	a, err := s.DB.Anchor(name)
	if err == db.ErrAnchorNotFound {
		return s.writeerror("anchor not found", 404, err)
	} else if err != nil {
		err = errors.Wrap(err, "loading anchor")
		s.exception(err)
		return s.writeerror("storage error", 500, err)
	}
	rep, err := report(a.Start, nil)
	if err != nil {
		return s.writeerror("bad anchor", 400, err)
	}
	return s.writebody(rep)
}

func (s *Server) delAnchor0(name string) bool {
	err := s.DB.DeleteAnchor(name)
	if err == db.ErrAnchorNotFound {
		return s.writeerror("anchor not found", 404, err)
	} else if err != nil {
		err = errors.Wrap(err, "deleting anchor")
		s.exception(err)
		return s.writeerror("storage error", 500, err)
	}
	return s.writebody(map[string]bool{"ok": true})
}

// exception forwards an infrastructure failure to the configured
// reporter, if any.
func (s *Server) exception(err error) {
	if s.ErrReporter != nil {
		s.ErrReporter.ReportException(err)
	}
}

func (s *Server) method() string {
	return s.request.r.Method
}

// PlatformError implements a well-known error response for http clients
// encountering an error when using the service.
type PlatformError struct {
	Ok     bool   `json:"ok"`
	Status int    `json:"status"`
	Rid    uint64 `json:"rid"`
	Msg    string `json:"msg,omitempty"`
}

// String returns the json-formatted platform response
func (p PlatformError) String() string {
	data, _ := json.Marshal(p)
	return string(data)
}
