package discord

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a relay failure well enough for the HTTP layer to
// choose a response status without re-inspecting upstream details.
type ErrorKind int

const (
	// KindBadRequest is caller input missing or invalid; no upstream call
	// was attempted.
	KindBadRequest ErrorKind = iota
	// KindUnauthorized is a missing, malformed, or empty bearer token.
	KindUnauthorized
	// KindMisconfigured means the relay lacks the Discord credentials the
	// requested operation needs.
	KindMisconfigured
	// KindUpstreamUnreachable is a transport-level failure reaching Discord
	// (dial, TLS, timeout).
	KindUpstreamUnreachable
	// KindUpstreamProtocolError means Discord answered but the body did not
	// parse as JSON.
	KindUpstreamProtocolError
	// KindUpstreamRejected means Discord returned a well-formed error.
	KindUpstreamRejected
)

var kindNames = [...]string{
	KindBadRequest:            "bad_request",
	KindUnauthorized:          "unauthorized",
	KindMisconfigured:         "misconfigured",
	KindUpstreamUnreachable:   "upstream_unreachable",
	KindUpstreamProtocolError: "upstream_protocol_error",
	KindUpstreamRejected:      "upstream_rejected",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// RelayError is the uniform error the relay client returns. It is never
// thrown across the endpoint boundary; handlers translate it into a status
// code and JSON envelope.
type RelayError struct {
	Kind    ErrorKind
	Message string

	// UpstreamStatus is the Discord status code, when a response arrived.
	UpstreamStatus int

	// Raw carries the upstream body for rejected calls (parsed JSON when
	// possible, else a truncated string) so the frontend can surface
	// Discord's own error description.
	Raw any
}

func (e *RelayError) Error() string {
	if e.UpstreamStatus != 0 {
		return fmt.Sprintf("%s: %s (discord status %d)", e.Kind, e.Message, e.UpstreamStatus)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus maps the error onto the status the relay answers with. A
// rejection mirrors Discord's own status; a rejection that claims success
// (embedded error field on a 2xx) is treated as a gateway failure instead,
// since answering 200 with an error envelope would be a contradiction.
func (e *RelayError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindMisconfigured:
		return http.StatusInternalServerError
	case KindUpstreamUnreachable, KindUpstreamProtocolError:
		return http.StatusBadGateway
	case KindUpstreamRejected:
		if e.UpstreamStatus >= http.StatusBadRequest {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// NewBadRequest flags invalid caller input, before any upstream call.
func NewBadRequest(msg string) *RelayError {
	return &RelayError{Kind: KindBadRequest, Message: msg}
}

// NewUnauthorized flags a missing or malformed bearer token.
func NewUnauthorized(msg string) *RelayError {
	return &RelayError{Kind: KindUnauthorized, Message: msg}
}

func newMisconfigured(msg string) *RelayError {
	return &RelayError{Kind: KindMisconfigured, Message: msg}
}

func newUnreachable(op string, err error) *RelayError {
	return &RelayError{
		Kind:    KindUpstreamUnreachable,
		Message: fmt.Sprintf("discord was unreachable during %s: %v", op, err),
	}
}

func newBodyReadError(op string, status int, err error) *RelayError {
	return &RelayError{
		Kind:           KindUpstreamProtocolError,
		Message:        fmt.Sprintf("reading the discord response failed during %s: %v", op, err),
		UpstreamStatus: status,
	}
}

func newProtocolError(op string, status int, body []byte) *RelayError {
	return &RelayError{
		Kind:           KindUpstreamProtocolError,
		Message:        fmt.Sprintf("discord returned an unparseable response during %s", op),
		UpstreamStatus: status,
		Raw:            snippet(body),
	}
}

func newRejected(msg string, status int, raw any) *RelayError {
	return &RelayError{
		Kind:           KindUpstreamRejected,
		Message:        msg,
		UpstreamStatus: status,
		Raw:            raw,
	}
}

// AsRelay extracts a *RelayError from err so handlers always have a status
// and message to send. Anything else is wrapped as an unreachable upstream.
func AsRelay(err error) *RelayError {
	var re *RelayError
	if errors.As(err, &re) {
		return re
	}
	return &RelayError{Kind: KindUpstreamUnreachable, Message: err.Error()}
}
