package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/m3rciful/cryptonews/news/bot"
	"github.com/m3rciful/cryptonews/news/market"
	"github.com/m3rciful/cryptonews/news/nav"
	"github.com/m3rciful/cryptonews/news/view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"})
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}).
			Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"})
)

// PreviewOptions controls one offline render.
type PreviewOptions struct {
	Variant string
	// Market pins the synthetic figures to one value in [0,1]; negative means random.
	Market float64
	Style  string
	Width  int
}

func newPreviewCmd() *cobra.Command {
	opts := PreviewOptions{}
	cmd := &cobra.Command{
		Use:   "preview <token|/command>",
		Short: "Render what the bot would answer, in the terminal",
		Long: "preview routes one input through the navigation engine and prints the view.\n" +
			"Inputs starting with / are treated as commands, anything else as a button token.",
		Example: "  cryptonews preview /start\n  cryptonews preview featured:1 --market 0.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Preview(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "catalog variant (default crypto)")
	cmd.Flags().Float64Var(&opts.Market, "market", -1, "fixed market source value in [0,1]; negative for random")
	cmd.Flags().StringVar(&opts.Style, "style", "auto", "glamour style: auto, dark, light, notty")
	cmd.Flags().IntVar(&opts.Width, "width", 80, "word wrap width")
	return cmd
}

// Preview routes input and writes the rendered view to w.
func Preview(w io.Writer, input string, opts PreviewOptions) error {
	router, err := previewRouter(opts)
	if err != nil {
		return err
	}

	in := nav.Input{Origin: nav.ButtonPress, Raw: strings.TrimSpace(input)}
	if strings.HasPrefix(in.Raw, "/") {
		in.Origin = nav.Command
	}
	res := router.Route(context.Background(), in)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s %q", in.Origin, in.Raw)))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("entry=%s action=%s mode=%s", res.Entry, res.Action, res.Mode)))

	if res.View.IsNotice() && res.Mode == nav.EditInPlace {
		fmt.Fprintln(w, noticeStyle.Render("toast: "+res.View.Notice))
		return nil
	}

	body, err := renderMarkdown(res.View.Text, opts)
	if err != nil {
		return err
	}
	fmt.Fprint(w, body)
	if grid := renderButtons(res.View); grid != "" {
		fmt.Fprintln(w, grid)
	}
	return nil
}

// previewRouter wires the bot without Telegram or a database.
func previewRouter(opts PreviewOptions) (*nav.Router, error) {
	var src market.Source
	if opts.Market >= 0 {
		src = market.Constant(opts.Market)
	}
	app, err := bot.New(&bot.Config{Content: bot.ContentConfig{Catalog: opts.Variant}}, bot.Deps{Source: src})
	if err != nil {
		return nil, err
	}
	return app.Router(), nil
}

func renderMarkdown(text string, opts PreviewOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	return out, nil
}

// renderButtons draws the inline keyboard as boxed rows showing each
// button's label and the token or URL it carries.
func renderButtons(v view.View) string {
	rows := make([]string, 0, len(v.Buttons))
	for _, row := range v.Buttons {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			target := b.Token
			if b.IsLink() {
				target = b.URL
			}
			cells = append(cells, buttonStyle.Render(b.Label+"\n"+dimStyle.Render(target)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
