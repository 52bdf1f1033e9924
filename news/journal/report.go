package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/m3rciful/cryptonews/core/telegram/format"
)

// TitleFunc resolves an article id to a display title.
type TitleFunc func(id int) (string, bool)

const topLimit = 3

// Report renders the admin summary as Telegram Markdown.
func (s *Store) Report(ctx context.Context, title TitleFunc) (string, error) {
	if !s.Enabled() {
		return "📈 " + format.Bold("Stats") + "\n\nThe interaction journal is disabled.", nil
	}
	counts, err := s.Counts(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("📈 " + format.Bold("Stats") + "\n")
	if len(counts) == 0 {
		b.WriteString("\nNo bookmarks or shares recorded yet.")
		return b.String(), nil
	}
	for _, c := range counts {
		fmt.Fprintf(&b, "\n%s: %d\n", format.Bold(c.Kind), c.Total)
		top, err := s.TopArticles(ctx, c.Kind, topLimit)
		if err != nil {
			return "", err
		}
		for _, a := range top {
			name := fmt.Sprintf("#%d", a.ArticleID)
			if title != nil {
				if t, ok := title(a.ArticleID); ok {
					name = format.MD(t)
				}
			}
			fmt.Fprintf(&b, "• %s (%d)\n", name, a.Total)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
