package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultMaxBodyLen = 1024 * 1024

// request is always scoped to a single http request handled by the server
type request struct {
	file, path string

	ctx context.Context
	w   http.ResponseWriter
	r   *http.Request

	log logrus.FieldLogger

	body []byte

	start       time.Time
	rid         uint64 // random request id
	read, wrote int
	ip, port    string
	err, logerr error
}

// newRequest initializes request scoped structures, counters and the
// request-scoped logger; finalize logs the outcome when the request
// is done.
func newRequest(w http.ResponseWriter, rq *http.Request, log logrus.FieldLogger) request {
	r := request{
		path:  rq.URL.Path,
		ctx:   rq.Context(),
		r:     rq,
		w:     w,
		start: time.Now(),
		rid:   rand.Uint64(),
	}
	r.rid |= 1 << 63 // sacrifice one bit of entropy so they always have the same # digits
	r.ip = r.r.Header.Get("X-Forwarded-For")
	r.port = r.r.Header.Get("X-Forwarded-Port")
	if r.ip == "" {
		r.ip, r.port, _ = net.SplitHostPort(r.r.RemoteAddr)
	}
	r.log = log.WithFields(logrus.Fields{
		"rid":    fmt.Sprintf("%x", r.rid),
		"ip":     r.ip,
		"method": r.r.Method,
		"path":   r.r.URL.Path,
	})
	r.log.Debug("request started")
	return r
}

func (r *request) finalize() {
	if r.logerr == nil {
		r.logerr = r.err
	}
	f := r.log.WithFields(logrus.Fields{
		"rx":  r.read,
		"tx":  r.wrote,
		"dur": time.Since(r.start).String(),
	})
	if r.logerr != nil {
		f.WithError(r.logerr).Info("request failed")
		return
	}
	f.Info("request served")
}

func (s *request) ok() bool {
	return s.err == nil
}

// Body reads the request body at most once and
// returns it.
func (s *request) Body() []byte {
	if !s.ok() {
		return nil
	}
	if s.body != nil {
		return s.body
	}
	s.body, s.err = io.ReadAll(io.LimitReader(s.r.Body, defaultMaxBodyLen))
	s.read = len(s.body)
	return s.body
}

func (s *request) writeerror(msg string, code int, err error) bool {
	s.logerr = err
	s.log.WithError(err).WithField("code", code).Info(msg)
	s.w.Header().Set("content-type", "application/json")
	s.w.WriteHeader(code)
	fmt.Fprintln(s.w, PlatformError{
		Ok:     false,
		Status: code,
		Rid:    s.rid,
		Msg:    msg,
	}.String())
	return false
}

func (s *request) writebody(data interface{}, mimeType ...string) bool {
	if len(mimeType) != 0 {
		s.w.Header().Set("Content-Type", mimeType[0])
	}
	switch t := data.(type) {
	case io.WriterTo:
		n, err := t.WriteTo(s.w)
		s.wrote, s.err = int(n), err
	case []byte:
		s.wrote, s.err = s.w.Write(t)
	case string:
		s.wrote, s.err = s.w.Write([]byte(t))
	case interface{}:
		data, _ := json.Marshal(t)
		s.wrote, s.err = s.w.Write(data)
	}
	return s.ok()
}

func (s *request) unmarshalJSON(body interface{}) (ok bool) {
	data := s.Body()
	if !s.ok() {
		return false
	}
	if s.err = json.Unmarshal(data, body); s.err != nil {
		return false
	}
	return s.ok()
}

func (s *request) chop() string {
	s.file, s.path = chop(s.path)
	return s.file
}

func chop(p string) (file, next string) {
	p = path.Clean(p)[1:]
	if n := strings.Index(p, "/"); n >= 0 {
		return p[:n], p[n:]
	}
	return p, "/"
}
