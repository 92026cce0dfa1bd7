// Package test holds small assertion helpers shared by the http
// service and client tests.
package test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func AssertWantErr(err error, wantErr, caller string, t *testing.T) bool {
	t.Helper()
	if err != nil {
		if wantErr != err.Error() {
			t.Errorf("%s error = %v, wantErr %q", caller, err, wantErr)
		}

		return true
	} else if wantErr != "" {
		t.Errorf("%s expected error %q, did not receive an error", caller, wantErr)
		return true
	}

	return false
}

// AssertStatus fails the test when the response status differs from
// want, logging the body to ease debugging.
func AssertStatus(resp *http.Response, want int, t *testing.T) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d; body: %s", resp.StatusCode, want, body)
	}
}

// DecodeJSON reads and decodes a response body into dst.
func DecodeJSON(resp *http.Response, dst interface{}, t *testing.T) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}
