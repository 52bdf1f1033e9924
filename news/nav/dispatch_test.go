package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/cryptonews/news/action"
)

func home(string) action.Action { return action.ShowHome() }

func TestDefaultEntriesBuild(t *testing.T) {
	table, err := NewTable(DefaultEntries()...)
	require.NoError(t, err)
	assert.Equal(t, []string{CmdStart, CmdHelp, CmdNews, CmdMarket, CmdCategories}, table.Commands())
	assert.Len(t, table.Entries(), 5+len(action.Prefixes())+1)
}

func TestTableRejectsConflicts(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{
			name: "duplicate command",
			entries: []Entry{
				{Name: "a", Kind: MatchCommand, Pattern: "/start", Resolve: home},
				{Name: "b", Kind: MatchCommand, Pattern: "/start", Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name: "duplicate token",
			entries: []Entry{
				{Name: "a", Kind: MatchToken, Pattern: "market", Resolve: home},
				{Name: "b", Kind: MatchToken, Pattern: "market", Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name: "nested prefixes",
			entries: []Entry{
				{Name: "a", Kind: MatchPrefix, Pattern: "feat", Resolve: home},
				{Name: "b", Kind: MatchPrefix, Pattern: "featured:", Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name: "nested prefixes reversed",
			entries: []Entry{
				{Name: "a", Kind: MatchPrefix, Pattern: "featured:", Resolve: home},
				{Name: "b", Kind: MatchPrefix, Pattern: "feat", Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name: "token shadowed by prefix",
			entries: []Entry{
				{Name: "a", Kind: MatchPrefix, Pattern: "share:", Resolve: home},
				{Name: "b", Kind: MatchToken, Pattern: "share:all", Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name: "prefix shadowing token",
			entries: []Entry{
				{Name: "a", Kind: MatchToken, Pattern: "share:all", Resolve: home},
				{Name: "b", Kind: MatchPrefix, Pattern: "share:", Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name: "two catch-alls",
			entries: []Entry{
				{Name: "a", Kind: MatchCatchAll, Resolve: home},
				{Name: "b", Kind: MatchCatchAll, Resolve: home},
			},
			want: ErrConflict,
		},
		{
			name:    "empty pattern",
			entries: []Entry{{Name: "a", Kind: MatchToken, Resolve: home}},
			want:    ErrInvalidEntry,
		},
		{
			name:    "missing resolver",
			entries: []Entry{{Name: "a", Kind: MatchToken, Pattern: "x"}},
			want:    ErrInvalidEntry,
		},
		{
			name:    "command without slash",
			entries: []Entry{{Name: "a", Kind: MatchCommand, Pattern: "start", Resolve: home}},
			want:    ErrInvalidEntry,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.entries...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAddingDuplicateStockEntryFails(t *testing.T) {
	table, err := NewTable(DefaultEntries()...)
	require.NoError(t, err)
	err = table.Add(Entry{Name: "again", Kind: MatchPrefix, Pattern: action.PrefixFeatured, Resolve: action.Decode})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "featured:")
}

func TestMatchPrecedence(t *testing.T) {
	table, err := NewTable(
		Entry{Name: "exact", Kind: MatchToken, Pattern: "go", Resolve: home},
		Entry{Name: "short", Kind: MatchPrefix, Pattern: "a:", Resolve: home},
		Entry{Name: "long", Kind: MatchPrefix, Pattern: "b:c:", Resolve: home},
		Entry{Name: "cmd", Kind: MatchCommand, Pattern: "/go", Resolve: home},
		Entry{Name: "rest", Kind: MatchCatchAll, Resolve: action.NotHandled},
	)
	require.NoError(t, err)

	match := func(o Origin, raw string) string {
		e, ok := table.Match(o, raw)
		require.True(t, ok)
		return e.Name
	}
	assert.Equal(t, "exact", match(ButtonPress, "go"))
	assert.Equal(t, "short", match(ButtonPress, "a:1"))
	assert.Equal(t, "long", match(ButtonPress, "b:c:1"))
	assert.Equal(t, "rest", match(ButtonPress, "b:x"))
	assert.Equal(t, "rest", match(ButtonPress, "/go"), "commands never match buttons")
	assert.Equal(t, "cmd", match(Command, "/go"))
	assert.Equal(t, "cmd", match(Command, "/GO@SomeBot extra"))
	assert.Equal(t, "rest", match(Command, "go"), "tokens never match commands")
}

func TestMatchWithoutCatchAll(t *testing.T) {
	table, err := NewTable(Entry{Name: "x", Kind: MatchToken, Pattern: "x", Resolve: home})
	require.NoError(t, err)
	_, ok := table.Match(ButtonPress, "y")
	assert.False(t, ok)
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "/start", CommandName("/start"))
	assert.Equal(t, "/start", CommandName("  /Start@CryptoBot payload"))
	assert.Equal(t, "", CommandName("   "))
}
