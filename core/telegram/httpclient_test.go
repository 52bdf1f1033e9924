package telegram

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
)

type scriptedTransport struct {
	fails  int
	calls  int
	bodies []string
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		s.bodies = append(s.bodies, string(b))
	}
	if s.calls <= s.fails {
		return nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	}
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}")), Request: req}, nil
}

func TestRetryTransportReplaysBody(t *testing.T) {
	base := &scriptedTransport{fails: 2}
	client := BuildHTTPClient(HTTPOptions{Retries: 2, Backoff: time.Millisecond, Base: base})

	resp, err := client.Post("http://api.invalid/sendMessage", "application/json", strings.NewReader(`{"text":"hi"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	if base.calls != 3 {
		t.Fatalf("calls = %d, want 3", base.calls)
	}
	for _, b := range base.bodies {
		if b != `{"text":"hi"}` {
			t.Fatalf("body = %q", b)
		}
	}
}

func TestRetryTransportGivesUp(t *testing.T) {
	base := &scriptedTransport{fails: 5}
	client := BuildHTTPClient(HTTPOptions{Retries: 1, Backoff: time.Millisecond, Base: base})
	if _, err := client.Get("http://api.invalid/getMe"); err == nil {
		t.Fatal("expected error")
	}
	if base.calls != 2 {
		t.Fatalf("calls = %d, want 2", base.calls)
	}
}

func TestHTTPOptionsFrom(t *testing.T) {
	opts := HTTPOptionsFrom(coreconfig.TelegramConfig{HTTPTimeoutSeconds: 10, LongPollTimeoutSeconds: 20, HTTPRetries: 1})
	if opts.Timeout != 25*time.Second || opts.Retries != 1 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts := HTTPOptionsFrom(coreconfig.TelegramConfig{}); opts.Timeout != 0 {
		t.Fatalf("zero config must keep defaults, got %v", opts.Timeout)
	}
}
