package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
	"time"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestShouldRetry(t *testing.T) {
	retry := []error{
		timeoutErr{},
		&net.OpError{Op: "dial", Err: errors.New("connection refused")},
		&url.Error{Op: "Post", URL: "https://api.telegram.org", Err: timeoutErr{}},
		fmt.Errorf("wrapped: %w", &net.OpError{Op: "read", Err: timeoutErr{}}),
	}
	for _, err := range retry {
		if !ShouldRetry(err) {
			t.Fatalf("expected retry for %v", err)
		}
	}

	noRetry := []error{
		nil,
		errors.New("telegram: Bad Request: chat not found (400)"),
		context.Canceled,
	}
	for _, err := range noRetry {
		if ShouldRetry(err) {
			t.Fatalf("did not expect retry for %v", err)
		}
	}
}

func TestRetryAfterWithoutFlood(t *testing.T) {
	if d, ok := RetryAfter(errors.New("boom")); ok || d != time.Duration(0) {
		t.Fatalf("unexpected retry after %v", d)
	}
}

func TestIsNotModified(t *testing.T) {
	err := errors.New("telegram: Bad Request: message is not modified: specified new message content and reply markup are exactly the same (400)")
	if !IsNotModified(err) {
		t.Fatal("expected not-modified")
	}
	if IsNotModified(errors.New("telegram: Bad Request: message to edit not found (400)")) {
		t.Fatal("unexpected not-modified")
	}
	if IsNotModified(nil) {
		t.Fatal("nil is not an error")
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]error{
		"":          nil,
		KindTimeout: &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: timeoutErr{}},
		KindDial:    &net.OpError{Op: "dial", Err: errors.New("connection refused")},
		KindDNS:     &net.DNSError{Err: "no such host", Name: "api.telegram.org"},
		KindHTTP4xx: errors.New("telegram: Bad Request: chat not found (400)"),
		KindHTTP5xx: errors.New("telegram: Internal Server Error (502)"),
		KindUnknown: errors.New("boom"),
	}
	for want, err := range cases {
		if got := Classify(err); got != want {
			t.Fatalf("Classify(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(errors.New("telegram: Forbidden: bot was blocked by the user (403)")); got != 403 {
		t.Fatalf("status = %d", got)
	}
	if got := StatusCode(errors.New("telegram: no code (abc)")); got != 0 {
		t.Fatalf("status = %d", got)
	}
}
