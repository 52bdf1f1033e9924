package nav

import (
	"fmt"
	"slices"
	"strings"

	"github.com/m3rciful/cryptonews/news/action"
	"github.com/m3rciful/cryptonews/news/content"
)

// TokenRefreshNews is the legacy refresh button token; it now reopens home.
const TokenRefreshNews = "refresh_news"

// Variant is a named bot flavour: a catalog plus the dispatch entries it serves.
type Variant struct {
	Name    string
	Catalog string
	// Omit lists stock entry names left out of the table.
	Omit  []string
	Extra []Entry
}

var variants = []Variant{
	{
		Name:    "crypto",
		Catalog: "crypto",
		Extra: []Entry{
			{Name: "refresh_news", Kind: MatchToken, Pattern: TokenRefreshNews, Resolve: fixed(action.ShowHome())},
		},
	},
	{
		Name:    "bitcoin",
		Catalog: "bitcoin",
		Omit:    []string{"categories"},
	},
}

// Variants lists the built-in variant names.
func Variants() []string {
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		out = append(out, v.Name)
	}
	return out
}

// LookupVariant returns the variant called name (case-insensitive). An empty
// name selects the default catalog's variant.
func LookupVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = content.DefaultCatalog
	}
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("nav: unknown variant %q (have %s)", name, strings.Join(Variants(), ", "))
}

// Table builds the dispatch table for the variant. The catch-all always stays
// last so extra entries are validated against the stock ones first.
func (v Variant) Table() (*Table, error) {
	var entries []Entry
	var catchAll []Entry
	for _, e := range DefaultEntries() {
		if slices.Contains(v.Omit, e.Name) {
			continue
		}
		if e.Kind == MatchCatchAll {
			catchAll = append(catchAll, e)
			continue
		}
		entries = append(entries, e)
	}
	entries = append(entries, v.Extra...)
	t, err := NewTable(append(entries, catchAll...)...)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Name, err)
	}
	return t, nil
}

// Repository opens the variant's catalog and checks that every category key
// survives the token codec.
func (v Variant) Repository() (*content.Repository, error) {
	repo, err := content.Open(v.Catalog)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Name, err)
	}
	if err := CheckCategories(repo); err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Name, err)
	}
	return repo, nil
}

// CheckCategories fails when a category key cannot be carried in a callback token.
func CheckCategories(repo *content.Repository) error {
	for _, c := range repo.Categories() {
		a := action.ShowCategory(c.Key)
		if got := action.Decode(action.Encode(a)); got != a {
			return fmt.Errorf("%w: category %q does not round-trip through the token codec", ErrInvalidEntry, c.Key)
		}
	}
	return nil
}
