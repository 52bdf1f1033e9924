package callbacks

import "testing"

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		in, unique, payload string
	}{
		{"featured:1", "", "featured:1"},
		{"back_home", "", "back_home"},
		{"\fnav|featured:1", "nav", "featured:1"},
		{"\fnav", "nav", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		u, p := ParseCallbackData(tc.in)
		if u != tc.unique || p != tc.payload {
			t.Fatalf("ParseCallbackData(%q) = %q, %q; want %q, %q", tc.in, u, p, tc.unique, tc.payload)
		}
	}
}
