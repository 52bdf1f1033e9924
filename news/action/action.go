// Package action defines the navigation actions a user can trigger and the
// compact callback tokens that carry them through Telegram inline buttons.
package action

import "fmt"

// Kind enumerates the action variants.
type Kind int

const (
	// Unhandled wraps a token nothing else understood.
	Unhandled Kind = iota
	// Home shows the landing view.
	Home
	// Featured shows a featured article by index.
	Featured
	// Category lists the articles of a category.
	Category
	// Market shows the synthetic market analysis.
	Market
	// Help shows the static help text.
	Help
	// Bookmark acknowledges a bookmark press for an article.
	Bookmark
	// Share acknowledges a share press for an article.
	Share
)

var kindNames = map[Kind]string{
	Unhandled: "unhandled",
	Home:      "home",
	Featured:  "featured",
	Category:  "category",
	Market:    "market",
	Help:      "help",
	Bookmark:  "bookmark",
	Share:     "share",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is a request-scoped description of what the user wants to see next.
// Only the fields relevant to Kind are set.
type Action struct {
	Kind      Kind
	Index     int
	Category  string
	ArticleID int
	Raw       string
}

// ShowHome builds a Home action.
func ShowHome() Action { return Action{Kind: Home} }

// ShowFeatured builds a Featured action for index i.
func ShowFeatured(i int) Action { return Action{Kind: Featured, Index: i} }

// ShowCategory builds a Category action.
func ShowCategory(name string) Action { return Action{Kind: Category, Category: name} }

// ShowMarket builds a Market action.
func ShowMarket() Action { return Action{Kind: Market} }

// ShowHelp builds a Help action.
func ShowHelp() Action { return Action{Kind: Help} }

// BookmarkArticle builds a Bookmark action.
func BookmarkArticle(id int) Action { return Action{Kind: Bookmark, ArticleID: id} }

// ShareArticle builds a Share action.
func ShareArticle(id int) Action { return Action{Kind: Share, ArticleID: id} }

// NotHandled wraps a raw token that could not be decoded.
func NotHandled(raw string) Action { return Action{Kind: Unhandled, Raw: raw} }

// String renders the action for logs.
func (a Action) String() string {
	switch a.Kind {
	case Featured:
		return fmt.Sprintf("featured(%d)", a.Index)
	case Category:
		return fmt.Sprintf("category(%s)", a.Category)
	case Bookmark, Share:
		return fmt.Sprintf("%s(%d)", a.Kind, a.ArticleID)
	case Unhandled:
		return fmt.Sprintf("unhandled(%q)", a.Raw)
	default:
		return a.Kind.String()
	}
}
