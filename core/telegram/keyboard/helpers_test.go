package keyboard

import "testing"

func TestInlineButtonsRows(t *testing.T) {
	m := InlineButtonsRows(
		[]InlineBtn{{Text: "Prev", Data: "featured:0"}, {Text: "Next", Data: "featured:2"}},
		nil,
		[]InlineBtn{{Text: "Site", URL: "https://t.me/x"}},
	)
	if m == nil || len(m.InlineKeyboard) != 2 {
		t.Fatalf("unexpected keyboard %+v", m)
	}
	first := m.InlineKeyboard[0]
	if len(first) != 2 || first[0].Data != "featured:0" || first[0].Unique != "" {
		t.Fatalf("callback buttons must carry raw data: %+v", first)
	}
	link := m.InlineKeyboard[1][0]
	if link.URL != "https://t.me/x" || link.Data != "" {
		t.Fatalf("link button = %+v", link)
	}
}

func TestInlineButtonsRowsEmpty(t *testing.T) {
	if m := InlineButtonsRows(); m != nil {
		t.Fatalf("expected nil markup, got %+v", m)
	}
	if m := InlineButtonsRows([]InlineBtn{}); m != nil {
		t.Fatalf("expected nil markup, got %+v", m)
	}
}
