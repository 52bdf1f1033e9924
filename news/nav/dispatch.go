package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m3rciful/cryptonews/news/action"
)

var (
	// ErrConflict reports two dispatch entries that would claim the same input.
	ErrConflict = errors.New("nav: dispatch conflict")
	// ErrInvalidEntry reports a malformed dispatch entry.
	ErrInvalidEntry = errors.New("nav: invalid dispatch entry")
)

// MatchKind selects how an entry matches its input.
type MatchKind int

const (
	// MatchCommand matches a slash command exactly (Command origin only).
	MatchCommand MatchKind = iota
	// MatchToken matches a whole callback token (ButtonPress origin only).
	MatchToken
	// MatchPrefix matches callback tokens starting with Pattern (ButtonPress origin only).
	MatchPrefix
	// MatchCatchAll matches anything the other entries did not.
	MatchCatchAll
)

func (k MatchKind) String() string {
	switch k {
	case MatchCommand:
		return "command"
	case MatchToken:
		return "token"
	case MatchPrefix:
		return "prefix"
	case MatchCatchAll:
		return "catch_all"
	}
	return fmt.Sprintf("match(%d)", int(k))
}

// Resolver turns the raw input matched by an entry into an Action.
type Resolver func(raw string) action.Action

// Entry is one row of the dispatch table.
type Entry struct {
	Name    string
	Kind    MatchKind
	Pattern string
	Resolve Resolver
}

// Table is an ordered, validated set of entries. It is built at startup
// and read concurrently afterwards.
type Table struct {
	entries  []Entry
	commands map[string]int
	tokens   map[string]int
	prefixes []int
	catchAll int
}

// NewTable validates entries in order and builds a table.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		commands: make(map[string]int),
		tokens:   make(map[string]int),
		catchAll: -1,
	}
	for _, e := range entries {
		if err := t.Add(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add appends an entry, rejecting anything that collides with existing entries.
func (t *Table) Add(e Entry) error {
	if e.Resolve == nil {
		return fmt.Errorf("%w: %q has no resolver", ErrInvalidEntry, e.Name)
	}
	if e.Kind != MatchCatchAll && e.Pattern == "" {
		return fmt.Errorf("%w: %q has an empty pattern", ErrInvalidEntry, e.Name)
	}

	idx := len(t.entries)
	switch e.Kind {
	case MatchCommand:
		if !strings.HasPrefix(e.Pattern, "/") {
			return fmt.Errorf("%w: command %q must start with '/'", ErrInvalidEntry, e.Pattern)
		}
		if prev, ok := t.commands[e.Pattern]; ok {
			return t.conflict(e, prev)
		}
		t.commands[e.Pattern] = idx
	case MatchToken:
		if prev, ok := t.tokens[e.Pattern]; ok {
			return t.conflict(e, prev)
		}
		for _, p := range t.prefixes {
			if strings.HasPrefix(e.Pattern, t.entries[p].Pattern) {
				return t.conflict(e, p)
			}
		}
		t.tokens[e.Pattern] = idx
	case MatchPrefix:
		for _, p := range t.prefixes {
			other := t.entries[p].Pattern
			if strings.HasPrefix(e.Pattern, other) || strings.HasPrefix(other, e.Pattern) {
				return t.conflict(e, p)
			}
		}
		for tok, p := range t.tokens {
			if strings.HasPrefix(tok, e.Pattern) {
				return t.conflict(e, p)
			}
		}
		t.prefixes = append(t.prefixes, idx)
	case MatchCatchAll:
		if t.catchAll >= 0 {
			return t.conflict(e, t.catchAll)
		}
		t.catchAll = idx
	default:
		return fmt.Errorf("%w: %q has unknown kind %v", ErrInvalidEntry, e.Name, e.Kind)
	}

	t.entries = append(t.entries, e)
	return nil
}

func (t *Table) conflict(e Entry, prev int) error {
	p := t.entries[prev]
	return fmt.Errorf("%w: %s %q (%s) collides with %s %q (%s)",
		ErrConflict, e.Kind, e.Pattern, e.Name, p.Kind, p.Pattern, p.Name)
}

// Match finds the entry for raw input arriving from origin: exact command or
// token first, then the longest matching prefix, then the catch-all.
func (t *Table) Match(origin Origin, raw string) (Entry, bool) {
	if origin == Command {
		if i, ok := t.commands[CommandName(raw)]; ok {
			return t.entries[i], true
		}
	} else {
		if i, ok := t.tokens[raw]; ok {
			return t.entries[i], true
		}
		best := -1
		for _, p := range t.prefixes {
			pat := t.entries[p].Pattern
			if strings.HasPrefix(raw, pat) && (best < 0 || len(pat) > len(t.entries[best].Pattern)) {
				best = p
			}
		}
		if best >= 0 {
			return t.entries[best], true
		}
	}
	if t.catchAll >= 0 {
		return t.entries[t.catchAll], true
	}
	return Entry{}, false
}

// Entries returns the entries in registration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Commands lists the registered command names in registration order.
func (t *Table) Commands() []string {
	var out []string
	for _, e := range t.entries {
		if e.Kind == MatchCommand {
			out = append(out, e.Pattern)
		}
	}
	return out
}

// CommandName extracts "/cmd" from message text such as "/cmd@MyBot arg".
func CommandName(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	name := fields[0]
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name)
}

func fixed(a action.Action) Resolver {
	return func(string) action.Action { return a }
}

// Command names understood by the default table.
const (
	CmdStart      = "/start"
	CmdHelp       = "/help"
	CmdNews       = "/news"
	CmdMarket     = "/market"
	CmdCategories = "/categories"
)

// DefaultEntries returns the stock dispatch table: the slash commands, one
// entry per token family of the codec, and a catch-all yielding Unhandled.
func DefaultEntries() []Entry {
	entries := []Entry{
		{Name: "start", Kind: MatchCommand, Pattern: CmdStart, Resolve: fixed(action.ShowHome())},
		{Name: "help", Kind: MatchCommand, Pattern: CmdHelp, Resolve: fixed(action.ShowHelp())},
		{Name: "news", Kind: MatchCommand, Pattern: CmdNews, Resolve: fixed(action.ShowFeatured(0))},
		{Name: "market", Kind: MatchCommand, Pattern: CmdMarket, Resolve: fixed(action.ShowMarket())},
		{Name: "categories", Kind: MatchCommand, Pattern: CmdCategories, Resolve: fixed(action.ShowHome())},
	}
	for _, p := range action.Prefixes() {
		kind := MatchPrefix
		if p.Exact {
			kind = MatchToken
		}
		entries = append(entries, Entry{
			Name:    p.Kind.String(),
			Kind:    kind,
			Pattern: p.Pattern,
			Resolve: action.Decode,
		})
	}
	return append(entries, Entry{Name: "unhandled", Kind: MatchCatchAll, Resolve: action.NotHandled})
}
