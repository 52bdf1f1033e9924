package action

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxTokenLen is the Telegram callback_data limit in bytes.
const MaxTokenLen = 64

// Delimiter separates a token prefix from its argument.
const Delimiter = ":"

const (
	TokenHome           = "back_home"
	TokenBackCategories = "back_categories"
	TokenHomeAlias      = "home"
	TokenMarket         = "market"
	TokenHelp           = "help"

	PrefixFeatured = "featured" + Delimiter
	PrefixCategory = "category" + Delimiter
	PrefixBookmark = "bookmark" + Delimiter
	PrefixShare    = "share" + Delimiter
)

var categoryNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// ValidCategoryName reports whether name fits the token argument charset.
func ValidCategoryName(name string) bool {
	return categoryNameRe.MatchString(name)
}

// Encode renders an action as a callback token.
func Encode(a Action) string {
	switch a.Kind {
	case Home:
		return TokenHome
	case Featured:
		return PrefixFeatured + strconv.Itoa(a.Index)
	case Category:
		return PrefixCategory + a.Category
	case Market:
		return TokenMarket
	case Help:
		return TokenHelp
	case Bookmark:
		return PrefixBookmark + strconv.Itoa(a.ArticleID)
	case Share:
		return PrefixShare + strconv.Itoa(a.ArticleID)
	default:
		return a.Raw
	}
}

// Decode parses a callback token. It never fails: anything it does not
// recognise comes back as an Unhandled action carrying the raw token.
func Decode(token string) Action {
	if token == "" || len(token) > MaxTokenLen {
		return NotHandled(token)
	}

	switch token {
	case TokenHome, TokenBackCategories, TokenHomeAlias:
		return ShowHome()
	case TokenMarket:
		return ShowMarket()
	case TokenHelp:
		return ShowHelp()
	}

	switch {
	case strings.HasPrefix(token, PrefixFeatured):
		if i, ok := parseInt(strings.TrimPrefix(token, PrefixFeatured)); ok {
			return ShowFeatured(i)
		}
	case strings.HasPrefix(token, PrefixCategory):
		if name := strings.TrimPrefix(token, PrefixCategory); ValidCategoryName(name) {
			return ShowCategory(name)
		}
	case strings.HasPrefix(token, PrefixBookmark):
		if id, ok := parseInt(strings.TrimPrefix(token, PrefixBookmark)); ok {
			return BookmarkArticle(id)
		}
	case strings.HasPrefix(token, PrefixShare):
		if id, ok := parseInt(strings.TrimPrefix(token, PrefixShare)); ok {
			return ShareArticle(id)
		}
	}
	return NotHandled(token)
}

// parseInt accepts only the canonical decimal form so that Encode(Decode(t)) == t.
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}

// Prefix describes one token family understood by Decode.
type Prefix struct {
	Kind    Kind
	Pattern string
	// Exact is set when the pattern is a whole token rather than a prefix.
	Exact bool
}

// Prefixes lists the token families in the order Decode checks them.
func Prefixes() []Prefix {
	return []Prefix{
		{Kind: Home, Pattern: TokenHome, Exact: true},
		{Kind: Home, Pattern: TokenBackCategories, Exact: true},
		{Kind: Home, Pattern: TokenHomeAlias, Exact: true},
		{Kind: Market, Pattern: TokenMarket, Exact: true},
		{Kind: Help, Pattern: TokenHelp, Exact: true},
		{Kind: Featured, Pattern: PrefixFeatured},
		{Kind: Category, Pattern: PrefixCategory},
		{Kind: Bookmark, Pattern: PrefixBookmark},
		{Kind: Share, Pattern: PrefixShare},
	}
}
