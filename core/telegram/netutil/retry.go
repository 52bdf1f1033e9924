// Package netutil classifies errors returned by Bot API calls.
package netutil

import (
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Error kinds reported by Classify.
const (
	KindFlood   = "flood"
	KindTimeout = "timeout"
	KindDial    = "dial"
	KindDNS     = "dns"
	KindTLS     = "tls"
	KindHTTP4xx = "http_4xx"
	KindHTTP5xx = "http_5xx"
	KindUnknown = "unknown"
)

// Classify buckets err for logs and retry decisions. Nil yields "".
func Classify(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := RetryAfter(err); ok {
		return KindFlood
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindDial
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindDNS
	}
	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return KindTLS
	}

	switch status := StatusCode(err); {
	case status >= 500:
		return KindHTTP5xx
	case status >= 400:
		return KindHTTP4xx
	}
	return KindUnknown
}

// ShouldRetry reports whether another attempt may succeed: flood control,
// timeouts and refused dials.
func ShouldRetry(err error) bool {
	switch Classify(err) {
	case KindFlood, KindTimeout, KindDial:
		return true
	}
	return false
}

// RetryAfter extracts the wait Telegram asked for in a 429 response.
func RetryAfter(err error) (time.Duration, bool) {
	var flood tele.FloodError
	if errors.As(err, &flood) && flood.RetryAfter > 0 {
		return time.Duration(flood.RetryAfter) * time.Second, true
	}
	return 0, false
}

// StatusCode returns the HTTP status carried by a Bot API error, or 0.
// telebot formats unknown API errors as "telegram: <description> (<code>)".
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var floodErr tele.FloodError
	if errors.As(err, &floodErr) {
		return http.StatusTooManyRequests
	}

	msg := strings.TrimSpace(err.Error())
	if !strings.HasSuffix(msg, ")") {
		return 0
	}
	open := strings.LastIndexByte(msg, '(')
	if open < 0 {
		return 0
	}
	code, convErr := strconv.Atoi(msg[open+1 : len(msg)-1])
	if convErr != nil {
		return 0
	}
	return code
}

// IsNotModified reports Telegram's refusal to edit a message into identical
// content. Re-rendering the same view (home twice, a refresh that drew the
// same figures) produces it, and it is not a failure.
func IsNotModified(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "message is not modified")
}
