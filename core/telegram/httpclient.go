package telegram

import (
	"net"
	"net/http"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	"github.com/m3rciful/cryptonews/core/telegram/netutil"
)

// HTTPOptions tunes the Bot API client.
type HTTPOptions struct {
	Timeout time.Duration
	Retries int
	Backoff time.Duration
	// Base replaces the pooled transport, mainly in tests.
	Base http.RoundTripper
}

// HTTPOptionsFrom maps the telegram config section. Long polling holds the
// request open, so the timeout never drops below the poll timeout plus slack.
func HTTPOptionsFrom(cfg coreconfig.TelegramConfig) HTTPOptions {
	opts := HTTPOptions{
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		Retries: cfg.HTTPRetries,
	}
	if poll := time.Duration(cfg.LongPollTimeoutSeconds) * time.Second; poll > 0 && opts.Timeout > 0 && opts.Timeout < poll+5*time.Second {
		opts.Timeout = poll + 5*time.Second
	}
	return opts
}

// BuildHTTPClient returns a pooled client that resends requests failing with
// retryable transport errors.
func BuildHTTPClient(opts HTTPOptions) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Retries <= 0 {
		opts.Retries = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 2 * time.Second
	}
	base := opts.Base
	if base == nil {
		base = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: time.Second,
		}
	}
	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: &retryTransport{base: base, retries: opts.Retries, backoff: opts.Backoff},
	}
}

type retryTransport struct {
	base    http.RoundTripper
	retries int
	backoff time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	for n := 1; err != nil && n <= t.retries && netutil.ShouldRetry(err); n++ {
		next, rewindErr := rewind(req)
		if rewindErr != nil || next == nil {
			return nil, err
		}

		timer := time.NewTimer(t.backoff * time.Duration(n))
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
		resp, err = t.base.RoundTrip(next)
	}
	return resp, err
}

// rewind clones req with a fresh body. A nil request means the body cannot be
// replayed.
func rewind(req *http.Request) (*http.Request, error) {
	next := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return next, nil
	}
	if req.GetBody == nil {
		return nil, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	next.Body = body
	return next, nil
}
