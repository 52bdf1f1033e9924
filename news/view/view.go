// Package view turns navigation actions into message text and inline keyboards.
package view

// Button is a single inline button: either an external link or a callback token.
type Button struct {
	Label string
	URL   string
	Token string
}

// Callback builds a button that sends token back to the bot.
func Callback(label, token string) Button { return Button{Label: label, Token: token} }

// Link builds a button that opens url.
func Link(label, url string) Button { return Button{Label: label, URL: url} }

// IsLink reports whether the button opens an external URL.
func (b Button) IsLink() bool { return b.URL != "" }

// View is the rendered reply: Markdown text plus ordered rows of buttons.
// A non-empty Notice marks a transient acknowledgement that leaves the
// current message untouched.
type View struct {
	Text    string
	Buttons [][]Button
	Notice  string
}

// IsNotice reports whether the view is an acknowledgement rather than a message body.
func (v View) IsNotice() bool { return v.Notice != "" }

// Find returns the first button whose token equals token.
func (v View) Find(token string) (Button, bool) {
	for _, row := range v.Buttons {
		for _, b := range row {
			if b.Token == token {
				return b, true
			}
		}
	}
	return Button{}, false
}

// RowOf returns the index of the row holding a button with token, or -1.
func (v View) RowOf(token string) int {
	for i, row := range v.Buttons {
		for _, b := range row {
			if b.Token == token {
				return i
			}
		}
	}
	return -1
}

// pairs splits buttons into rows of two.
func pairs(buttons []Button) [][]Button {
	var rows [][]Button
	for i := 0; i < len(buttons); i += 2 {
		end := i + 2
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}
