package router

import (
	"errors"
	"testing"
)

type codedErr struct{}

func (codedErr) Error() string { return "rate limited" }
func (codedErr) Code() string  { return "rate limited" }

type plainErr struct{}

func (*plainErr) Error() string { return "plain" }

func TestNormalizeHandlerName(t *testing.T) {
	cases := map[string]string{
		"/start":     "start",
		" Top News ": "top_news",
		"":           "unknown",
		"/":          "unknown",
	}
	for in, want := range cases {
		if got := normalizeHandlerName(in); got != want {
			t.Fatalf("normalizeHandlerName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorCode(t *testing.T) {
	if got := errorCode(codedErr{}); got != "RATE_LIMITED" {
		t.Fatalf("coded = %q", got)
	}
	if got := errorCode(&plainErr{}); got != "PLAINERR" {
		t.Fatalf("typed = %q", got)
	}
	if got := errorCode(errors.New("x")); got != "ERRORSTRING" {
		t.Fatalf("errors.New = %q", got)
	}
}
