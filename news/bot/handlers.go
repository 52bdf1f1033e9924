package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m3rciful/cryptonews/core/logger"
	tghelpers "github.com/m3rciful/cryptonews/core/telegram/helpers"
	"github.com/m3rciful/cryptonews/core/telegram/callbacks"
	"github.com/m3rciful/cryptonews/core/telegram/keyboard"
	"github.com/m3rciful/cryptonews/news/action"
	"github.com/m3rciful/cryptonews/news/nav"
	"github.com/m3rciful/cryptonews/news/view"

	tele "gopkg.in/telebot.v4"
)

// HintText answers plain text that is not a command.
const HintText = "I only understand commands and buttons. Send /help to see what I can do."

func (a *App) handleCommand(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	res := a.router.Route(ctx, nav.Input{Origin: nav.Command, Raw: c.Text()})
	return a.deliver(ctx, c, res)
}

func (a *App) handleCallback(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	res := a.router.Route(ctx, nav.Input{Origin: nav.ButtonPress, Raw: callbacks.Token(c)})
	return a.deliver(ctx, c, res)
}

// handleText routes unknown slash commands through the engine so they get the
// coming-soon reply; anything else gets a hint.
func (a *App) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return a.handleCommand(c)
	}
	return tghelpers.SendText(c, HintText)
}

func (a *App) handleStats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	report, err := a.journal.Report(ctx, a.title)
	if err != nil {
		return err
	}
	return tghelpers.SendMD(c, report)
}

// deliver shows res the way its origin asks for: commands get a new message,
// button presses edit the pressed message or answer with a toast.
func (a *App) deliver(ctx context.Context, c tele.Context, res nav.Result) error {
	tghelpers.AddSummaryAttrs(c,
		slog.String("entry", res.Entry),
		slog.String("action", res.Action.String()),
		slog.String("mode", res.Mode.String()),
	)
	a.record(ctx, c, res.Action)

	v := res.View
	if res.Mode == nav.Reply {
		return tghelpers.SendMD(c, v.Text, Markup(v))
	}
	if v.IsNotice() {
		return tghelpers.Ack(c, v.Notice)
	}
	if err := tghelpers.EditMD(c, v.Text, Markup(v)); err != nil {
		_ = tghelpers.Ack(c, "")
		return err
	}
	return tghelpers.Ack(c, "")
}

// record journals bookmark and share presses for articles that exist.
func (a *App) record(ctx context.Context, c tele.Context, act action.Action) {
	if !a.journal.Enabled() {
		return
	}
	if act.Kind != action.Bookmark && act.Kind != action.Share {
		return
	}
	if _, ok := a.repo.Article(act.ArticleID); !ok {
		return
	}
	var userID, chatID int64
	if u := c.Sender(); u != nil {
		userID = u.ID
	}
	if ch := c.Chat(); ch != nil {
		chatID = ch.ID
	}
	if _, _, err := a.journal.Record(ctx, act, userID, chatID); err != nil {
		logger.Warn(ctx, component, "journal.skip", slog.String("err", err.Error()))
	}
}

// Markup converts the view's buttons into an inline keyboard. Views without
// buttons produce nil.
func Markup(v view.View) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(v.Buttons))
	for _, row := range v.Buttons {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, b := range row {
			r = append(r, keyboard.InlineBtn{Text: b.Label, URL: b.URL, Data: b.Token})
		}
		rows = append(rows, r)
	}
	return keyboard.InlineButtonsRows(rows...)
}

// UnknownText implements ui.FallbackProvider.
func (a *App) UnknownText() tele.HandlerFunc { return a.handleText }

// UnknownDocument implements ui.FallbackProvider.
func (a *App) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error { return tghelpers.SendText(c, HintText) }
}

// UnknownCallback implements ui.FallbackProvider.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error { return tghelpers.Ack(c, view.NoticeComingSoon) }
}

func (a *App) rejectAdmin(c tele.Context) error {
	logger.Info(tghelpers.BuildContext(c), component, "admin.reject")
	return tghelpers.SendText(c, "This command is for the bot admin only.")
}
