package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/m3rciful/cryptonews/news/nav"
	"github.com/m3rciful/cryptonews/news/view"
)

var (
	selectedStyle = buttonStyle.BorderForeground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).Bold(true)
	helpLine      = dimStyle.Render("←/→/↑/↓ move • enter press • s start • q quit")
)

func newBrowseCmd() *cobra.Command {
	opts := PreviewOptions{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Click through the bot's menus in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newBrowser(opts)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "catalog variant (default crypto)")
	cmd.Flags().Float64Var(&opts.Market, "market", -1, "fixed market source value in [0,1]; negative for random")
	cmd.Flags().StringVar(&opts.Style, "style", "auto", "glamour style: auto, dark, light, notty")
	return cmd
}

// browser is a bubbletea model that plays the Telegram client: it shows the
// current message and feeds button presses back through the router.
type browser struct {
	router *nav.Router
	opts   PreviewOptions

	current view.View
	body    string
	cursor  int
	toast   string
	err     error
}

func newBrowser(opts PreviewOptions) (*browser, error) {
	router, err := previewRouter(opts)
	if err != nil {
		return nil, err
	}
	b := &browser{router: router, opts: opts}
	b.route(nav.Input{Origin: nav.Command, Raw: nav.CmdStart})
	return b, nil
}

func (b *browser) Init() tea.Cmd { return nil }

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.opts.Width = msg.Width
		b.rerender()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "up", "h", "k", "shift+tab":
			b.move(-1)
		case "right", "down", "l", "j", "tab":
			b.move(1)
		case "s":
			b.route(nav.Input{Origin: nav.Command, Raw: nav.CmdStart})
		case "enter", " ":
			b.press()
		}
	}
	return b, nil
}

func (b *browser) View() string {
	var sb strings.Builder
	if b.err != nil {
		sb.WriteString(noticeStyle.Render("render error: "+b.err.Error()) + "\n")
	}
	sb.WriteString(b.body)
	sb.WriteString(b.grid())
	sb.WriteString("\n")
	if b.toast != "" {
		sb.WriteString(noticeStyle.Render("toast: "+b.toast) + "\n")
	}
	sb.WriteString(helpLine + "\n")
	return sb.String()
}

func (b *browser) buttons() []view.Button {
	var out []view.Button
	for _, row := range b.current.Buttons {
		out = append(out, row...)
	}
	return out
}

func (b *browser) move(delta int) {
	n := len(b.buttons())
	if n == 0 {
		return
	}
	b.cursor = (b.cursor + delta + n) % n
}

func (b *browser) press() {
	btns := b.buttons()
	if len(btns) == 0 {
		return
	}
	btn := btns[b.cursor]
	if btn.IsLink() {
		b.toast = "opens " + btn.URL
		return
	}
	b.route(nav.Input{Origin: nav.ButtonPress, Raw: btn.Token})
}

// route applies a result the way the bot client would: a notice on an
// edit only shows a toast and keeps the message.
func (b *browser) route(in nav.Input) {
	res := b.router.Route(context.Background(), in)
	b.toast = ""
	if res.View.IsNotice() && res.Mode == nav.EditInPlace {
		b.toast = res.View.Notice
		return
	}
	b.current = res.View
	b.cursor = 0
	b.rerender()
}

func (b *browser) rerender() {
	b.body, b.err = renderMarkdown(b.current.Text, b.opts)
}

// grid draws the keyboard with the selected button highlighted.
func (b *browser) grid() string {
	var rows []string
	i := 0
	for _, row := range b.current.Buttons {
		cells := make([]string, 0, len(row))
		for _, btn := range row {
			style := buttonStyle
			if i == b.cursor {
				style = selectedStyle
			}
			cells = append(cells, style.Render(btn.Label))
			i++
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
