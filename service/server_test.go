package service

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cbsinteractive/timecode-api/config"
	"github.com/cbsinteractive/timecode-api/db"
	"github.com/cbsinteractive/timecode-api/service/exceptions"
	"github.com/cbsinteractive/timecode-api/test"
	"github.com/sirupsen/logrus"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mr := miniredis.RunT(t)
	dbc, err := db.NewClient(&db.Options{Addr: mr.Addr()})
	if err != nil {
		t.Fatal(err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	srv := httptest.NewServer(Server{
		Config:      &config.Config{},
		DB:          dbc,
		Logger:      logger,
		ErrReporter: &exceptions.NoopReporter{},
	})
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestDescribe(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/timecodes", `{"timecode":"00:09:00;02","framerate":"29.97"}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.FrameCount != 16184 || !rep.DropFrame {
		t.Errorf("report = %+v", rep)
	}
	if rep.Composite != "00:09:00;02@29.97" {
		t.Errorf("composite = %q", rep.Composite)
	}
	if rep.Minutes != 9 || rep.Frames != 2 {
		t.Errorf("components = %+v", rep)
	}
}

func TestDescribeFromFrames(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/timecodes", `{"frame_count":16184,"framerate":"29.97"}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "00:09:00;02" {
		t.Errorf("timecode = %q", rep.Timecode)
	}
}

func TestDescribeWarnings(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/timecodes", `{"timecode":"01:02:00:25","framerate":"29.97"}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "01:02:00;25" {
		t.Errorf("timecode = %q", rep.Timecode)
	}
	if len(rep.Warnings) != 1 {
		t.Errorf("warnings = %v", rep.Warnings)
	}
}

func TestDescribeInvalid(t *testing.T) {
	srv := testServer(t)
	for _, body := range []string{
		`{"timecode":"00:01:00;00","framerate":"29.97"}`, // dropped frame number
		`{"timecode":"00:61:00:00","framerate":"30"}`,
		`{"timecode":"junk","framerate":"30"}`,
		`{"timecode":"00:00:00:00","framerate":"PAL"}`,
		`not json`,
	} {
		resp := post(t, srv, "/timecodes", body)
		test.AssertStatus(resp, 400, t)
	}
}

func TestAdd(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/timecodes/add", `{"timecode":"00:08:59;29","framerate":"29.97","add_frames":1}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "00:09:00;02" {
		t.Errorf("timecode = %q", rep.Timecode)
	}

	resp = post(t, srv, "/timecodes/add", `{"timecode":"01:00:00:00","framerate":"30","add_timecode":"00:00:30:15"}`)
	test.AssertStatus(resp, 200, t)
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "01:00:30:15" {
		t.Errorf("timecode = %q", rep.Timecode)
	}
}

func TestSubInsufficientFrames(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/timecodes/sub", `{"timecode":"00:00:01:00","framerate":"30","sub_frames":31}`)
	test.AssertStatus(resp, 400, t)

	resp = post(t, srv, "/timecodes/sub", `{"timecode":"00:00:01:00","framerate":"30","sub_frames":30}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "00:00:00:00" {
		t.Errorf("timecode = %q", rep.Timecode)
	}
}

func TestConvert(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/timecodes/convert", `{"timecode":"01:00:00:00","framerate":"30","target":"29.97"}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "01:00:00;00" {
		t.Errorf("timecode = %q", rep.Timecode)
	}
}

func TestConvertWithAnchor(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/anchors/reel-a", `{"timecode":"01:00:00:00","framerate":"30"}`)
	test.AssertStatus(resp, 200, t)
	resp.Body.Close()

	resp = post(t, srv, "/timecodes/convert", `{"timecode":"01:00:00:00","framerate":"30","target":"29.97","anchor":"reel-a"}`)
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "01:00:00;00" {
		t.Errorf("timecode = %q", rep.Timecode)
	}

	resp = post(t, srv, "/timecodes/convert", `{"timecode":"01:00:00:00","framerate":"30","target":"29.97","anchor":"missing"}`)
	test.AssertStatus(resp, 404, t)
}

func TestAnchorLifecycle(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/anchors/reel-b", `{"timecode":"09:59:00;00","framerate":"29.97"}`)
	test.AssertStatus(resp, 200, t)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/anchors/reel-b")
	if err != nil {
		t.Fatal(err)
	}
	test.AssertStatus(resp, 200, t)
	var rep Report
	test.DecodeJSON(resp, &rep, t)
	if rep.Timecode != "09:59:00;00" {
		t.Errorf("timecode = %q", rep.Timecode)
	}

	req, err := http.NewRequest("DELETE", srv.URL+"/anchors/reel-b", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	test.AssertStatus(resp, 200, t)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/anchors/reel-b")
	if err != nil {
		t.Fatal(err)
	}
	test.AssertStatus(resp, 404, t)
	resp.Body.Close()
}

func TestBadRoutes(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv, "/nope", `{}`)
	test.AssertStatus(resp, 400, t)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/timecodes")
	if err != nil {
		t.Fatal(err)
	}
	test.AssertStatus(resp, 405, t)
	resp.Body.Close()
}
