package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  *RelayError
		want int
	}{
		{NewBadRequest("x"), http.StatusBadRequest},
		{NewUnauthorized("x"), http.StatusUnauthorized},
		{newMisconfigured("x"), http.StatusInternalServerError},
		{newUnreachable("op", errors.New("dial tcp: refused")), http.StatusBadGateway},
		{newProtocolError("op", 200, []byte("<html>")), http.StatusBadGateway},
		{newRejected("invalid_grant", 400, nil), http.StatusBadRequest},
		{newRejected("nope", 429, nil), http.StatusTooManyRequests},
		// a rejection carrying a 2xx upstream status cannot be mirrored
		{newRejected("embedded error", 200, nil), http.StatusBadGateway},
	}
	for i, tt := range tests {
		if got := tt.err.HTTPStatus(); got != tt.want {
			t.Errorf("case %d (%s): status = %d, want %d", i, tt.err.Kind, got, tt.want)
		}
	}
}

func TestKindStrings(t *testing.T) {
	tests := map[ErrorKind]string{
		KindBadRequest:            "bad_request",
		KindUnauthorized:          "unauthorized",
		KindMisconfigured:         "misconfigured",
		KindUpstreamUnreachable:   "upstream_unreachable",
		KindUpstreamProtocolError: "upstream_protocol_error",
		KindUpstreamRejected:      "upstream_rejected",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(k), k.String(), want)
		}
	}
}

func TestAsRelay(t *testing.T) {
	re := NewBadRequest("missing code")
	if got := AsRelay(fmt.Errorf("handler: %w", re)); got != re {
		t.Errorf("AsRelay did not unwrap the relay error, got %+v", got)
	}

	plain := errors.New("boom")
	got := AsRelay(plain)
	if got.Kind != KindUpstreamUnreachable || got.Message != "boom" {
		t.Errorf("AsRelay(plain) = %+v, want unreachable wrap", got)
	}
	if got.HTTPStatus() != http.StatusBadGateway {
		t.Errorf("wrapped plain error status = %d", got.HTTPStatus())
	}
}

func TestRejectionDetails(t *testing.T) {
	msg, raw := rejectionDetails([]byte(`{"error":"invalid_grant","error_description":"Invalid code"}`))
	if msg != "Invalid code" {
		t.Errorf("msg = %q, want error_description", msg)
	}
	if raw == nil {
		t.Error("raw should carry the parsed body")
	}

	msg, _ = rejectionDetails([]byte(`{"error":"invalid_grant"}`))
	if msg != "invalid_grant" {
		t.Errorf("msg = %q, want error field", msg)
	}

	msg, _ = rejectionDetails([]byte(`{"message":"401: Unauthorized","code":0}`))
	if msg != "401: Unauthorized" {
		t.Errorf("msg = %q, want message field", msg)
	}

	msg, raw = rejectionDetails([]byte("<html>bad gateway</html>"))
	if msg != "discord rejected the request" {
		t.Errorf("msg = %q, want generic fallback", msg)
	}
	if raw != "<html>bad gateway</html>" {
		t.Errorf("raw = %v, want body snippet", raw)
	}
}

func TestSnippetTruncates(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'a'
	}
	if got := snippet(long); len(got) != 256 {
		t.Errorf("snippet length = %d, want 256", len(got))
	}
	if got := snippet([]byte("short")); got != "short" {
		t.Errorf("snippet = %q", got)
	}
}
