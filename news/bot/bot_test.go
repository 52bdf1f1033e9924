package bot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/cryptonews/core/database"
	"github.com/m3rciful/cryptonews/news/action"
	"github.com/m3rciful/cryptonews/news/journal"
	"github.com/m3rciful/cryptonews/news/market"
	"github.com/m3rciful/cryptonews/news/nav"
	"github.com/m3rciful/cryptonews/news/view"
)

func newApp(t *testing.T, deps Deps) *App {
	t.Helper()
	if deps.Source == nil {
		deps.Source = market.Constant(0.5)
	}
	a, err := New(&Config{}, deps)
	require.NoError(t, err)
	return a
}

func firstArticleID(t *testing.T, a *App) int {
	t.Helper()
	art, ok := a.repo.Featured(0)
	require.True(t, ok)
	return art.ID
}

func TestNewRegistersCommands(t *testing.T) {
	a := newApp(t, Deps{})
	for _, cmd := range []string{nav.CmdStart, nav.CmdHelp, nav.CmdNews, nav.CmdMarket, nav.CmdCategories, CmdStats} {
		_, _, ok := a.Registry().LookupCommand(cmd)
		assert.True(t, ok, cmd)
	}
	var visible []string
	for _, c := range a.Registry().ListCommands(true) {
		visible = append(visible, c.Text)
	}
	assert.NotContains(t, visible, "stats")
	assert.Contains(t, visible, "start")
	assert.NotNil(t, a.Registry().CallbackHandler())
}

func TestCommandRepliesWithNewMessage(t *testing.T) {
	a := newApp(t, Deps{})
	c := command("/start")
	require.NoError(t, a.handleCommand(c))

	require.Len(t, c.sends, 1)
	assert.Empty(t, c.edits)
	assert.Contains(t, c.sends[0].text, "Crypto News Hub")
	require.NotNil(t, c.sends[0].opts)
	assert.Equal(t, tele.ModeMarkdown, c.sends[0].opts.ParseMode)
	require.NotNil(t, c.sends[0].opts.ReplyMarkup)
	assert.NotEmpty(t, c.sends[0].opts.ReplyMarkup.InlineKeyboard)
}

func TestButtonPressEditsInPlace(t *testing.T) {
	a := newApp(t, Deps{})
	c := press(action.Encode(action.ShowFeatured(0)))
	require.NoError(t, a.handleCallback(c))

	assert.Empty(t, c.sends)
	require.Len(t, c.edits, 1)
	assert.Equal(t, []string{""}, c.acks)

	want := a.Router().Route(context.Background(), nav.Input{Origin: nav.ButtonPress, Raw: "featured:0"})
	assert.Equal(t, want.View.Text, c.edits[0].text)
}

func TestUnknownTokenGetsComingSoonToast(t *testing.T) {
	a := newApp(t, Deps{})
	c := press("no_such_token")
	require.NoError(t, a.handleCallback(c))

	assert.Empty(t, c.edits)
	assert.Empty(t, c.sends)
	assert.Equal(t, []string{view.NoticeComingSoon}, c.acks)
}

func TestUnknownCommandRepliesComingSoon(t *testing.T) {
	a := newApp(t, Deps{})
	c := command("/nope")
	require.NoError(t, a.handleText(c))
	require.Len(t, c.sends, 1)
	assert.Equal(t, view.NoticeComingSoon, c.sends[0].text)
}

func TestPlainTextGetsHint(t *testing.T) {
	a := newApp(t, Deps{})
	c := command("hello there")
	require.NoError(t, a.handleText(c))
	require.Len(t, c.sends, 1)
	assert.Equal(t, HintText, c.sends[0].text)
}

func TestBookmarkIsJournaled(t *testing.T) {
	ctx := context.Background()
	cfg := database.Config{Enabled: true, Driver: database.DriverSQLite, Path: ":memory:"}
	db, err := database.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(ctx, cfg, db, journal.Migrations()))

	a := newApp(t, Deps{DB: db})
	id := firstArticleID(t, a)

	c := press(action.Encode(action.BookmarkArticle(id)))
	require.NoError(t, a.handleCallback(c))
	require.Len(t, c.acks, 1)
	assert.Contains(t, c.acks[0], "Bookmarked")
	assert.Empty(t, c.edits)

	// a missing article is acknowledged but not journaled
	missing := press(action.Encode(action.ShareArticle(999999)))
	require.NoError(t, a.handleCallback(missing))
	assert.Equal(t, []string{view.NoticeNotFound}, missing.acks)

	counts, err := a.journal.Counts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, journal.KindBookmark, counts[0].Kind)
	assert.Equal(t, 1, counts[0].Total)

	stats := command(CmdStats)
	require.NoError(t, a.handleStats(stats))
	require.Len(t, stats.sends, 1)
	assert.Contains(t, stats.sends[0].text, "*bookmark*: 1")
}

func TestStatsWithoutJournal(t *testing.T) {
	a := newApp(t, Deps{})
	c := command(CmdStats)
	require.NoError(t, a.handleStats(c))
	require.Len(t, c.sends, 1)
	assert.Contains(t, c.sends[0].text, "disabled")
}

func TestMarkup(t *testing.T) {
	assert.Nil(t, Markup(view.View{Text: "x"}))

	m := Markup(view.View{Buttons: [][]view.Button{
		{view.Callback("A", "a"), view.Link("B", "https://example.com")},
		{view.Callback("C", "c")},
	}})
	require.NotNil(t, m)
	require.Len(t, m.InlineKeyboard, 2)
	assert.Equal(t, "a", m.InlineKeyboard[0][0].Data)
	assert.Equal(t, "https://example.com", m.InlineKeyboard[0][1].URL)
	assert.Equal(t, "c", m.InlineKeyboard[1][0].Data)
}

func TestTelegramRunOptions(t *testing.T) {
	a := newApp(t, Deps{})
	opts, err := a.TelegramRunOptions()
	require.NoError(t, err)
	assert.Same(t, a.Registry(), opts.Registry)
	assert.Len(t, opts.Routes, len(a.Registry().Commands())+1+2)
	assert.NotEmpty(t, opts.Middlewares)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "telegram:\n  token: \"123:abc\"\ncontent:\n  catalog: \" Bitcoin \"\nlinks:\n  home_url: https://example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", cfg.Content.Catalog)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, "https://example.com", cfg.Links.HomeURL)
	assert.False(t, cfg.Database.Enabled)
	assert.Same(t, &cfg.Config, cfg.CoreConfig())
}

func TestLoadConfigRejectsUnknownCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "telegram:\n  token: \"123:abc\"\ncontent:\n  catalog: dogecoin\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
