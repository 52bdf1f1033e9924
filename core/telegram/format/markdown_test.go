package format

import "testing"

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in      string
		version int
		want    string
	}{
		{"plain", MarkdownV1, "plain"},
		{"a_b*c`d[e]", MarkdownV1, `a\_b\*c\` + "`" + `d\[e]`},
		{"1.5 (x)", MarkdownV2, `1\.5 \(x\)`},
		{"EIP-1559!", MarkdownV2, `EIP\-1559\!`},
	}
	for _, tt := range tests {
		got, err := EscapeMarkdown(tt.in, tt.version)
		if err != nil {
			t.Fatalf("EscapeMarkdown(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("EscapeMarkdown(%q, %d) = %q, want %q", tt.in, tt.version, got, tt.want)
		}
	}
	if _, err := EscapeMarkdown("x", 3); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestEntities(t *testing.T) {
	if got := Bold("a*b"); got != "*ab*" {
		t.Fatalf("Bold = %q", got)
	}
	if got := Italic("snake_case"); got != "_snakecase_" {
		t.Fatalf("Italic = %q", got)
	}
	if got := MD("x_y"); got != `x\_y` {
		t.Fatalf("MD = %q", got)
	}
}
