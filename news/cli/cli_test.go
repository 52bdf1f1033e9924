package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/cryptonews/core/buildinfo"
	"github.com/m3rciful/cryptonews/news/view"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, "preview", "/start", "--style", "notty", "--market", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "action=home")
	assert.Contains(t, out, "mode=reply")
	assert.Contains(t, out, "Crypto News Hub")
	assert.Contains(t, out, "featured:0")
}

func TestPreviewButtonEdits(t *testing.T) {
	out, err := execute(t, "preview", "featured:0", "--style", "notty", "--market", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "mode=edit")
	assert.Contains(t, out, "featured:1")
}

func TestPreviewUnknownTokenShowsToast(t *testing.T) {
	out, err := execute(t, "preview", "nope", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "toast: "+view.NoticeComingSoon)
}

func TestPreviewRejectsUnknownVariant(t *testing.T) {
	_, err := execute(t, "preview", "/start", "--variant", "dogecoin")
	require.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog", "--variant", "bitcoin")
	require.NoError(t, err)
	assert.Contains(t, out, "* bitcoin")
	assert.Contains(t, out, "Dispatch")
	assert.NotContains(t, out, "/categories")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cryptonews "+buildinfo.Version))
}

func TestRunRequiresReadableConfig(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	_, err := execute(t, "run", "--config", "/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestBrowserNavigates(t *testing.T) {
	b, err := newBrowser(PreviewOptions{Market: 0.5, Style: "notty", Width: 80})
	require.NoError(t, err)
	assert.Contains(t, b.View(), "Crypto News Hub")

	// the first button on home is Read Featured
	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first, ok := b.current.Find("featured:1")
	require.True(t, ok, "featured article shows a Next button")
	assert.Equal(t, view.LabelNext, first.Label)

	// bookmark answers with a toast and keeps the article on screen
	before := b.current
	for i, btn := range b.buttons() {
		if strings.HasPrefix(btn.Token, "bookmark:") {
			b.cursor = i
		}
	}
	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, before, b.current)
	assert.NotEmpty(t, b.toast)

	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Contains(t, b.body, "Crypto News Hub")

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}

func TestBrowserCursorWraps(t *testing.T) {
	b, err := newBrowser(PreviewOptions{Market: 0.5, Style: "notty"})
	require.NoError(t, err)
	n := len(b.buttons())
	require.Positive(t, n)
	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, n-1, b.cursor)
	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, b.cursor)
}

func TestLoadEnvFile(t *testing.T) {
	const key = "CRYPTONEWS_ENV_FILE_TEST"
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv(key))
	require.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
