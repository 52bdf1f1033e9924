package view

import (
	"fmt"
	"strings"

	"github.com/m3rciful/cryptonews/core/telegram/format"
	"github.com/m3rciful/cryptonews/news/action"
	"github.com/m3rciful/cryptonews/news/content"
	"github.com/m3rciful/cryptonews/news/market"
)

// Repository is the read-only catalog surface the renderer needs.
type Repository interface {
	Featured(i int) (*content.Article, bool)
	FeaturedCount() int
	FeaturedIndex(id int) (int, bool)
	Article(id int) (*content.Article, bool)
	CategoryInfo(name string) (content.Category, bool)
	Categories() []content.Category
	Latest(n int) []*content.Article
}

// Links configures the fixed external link shown on the home view.
type Links struct {
	HomeLabel string
	HomeURL   string
}

// DefaultLinks is used when configuration leaves links empty.
var DefaultLinks = Links{
	HomeLabel: "🤖 Check This Bot",
	HomeURL:   "https://t.me/polyssightsbot22",
}

const (
	// CategoryPreviewLimit caps how many articles a category view lists.
	CategoryPreviewLimit = 5
	homeHeadlines        = 2
	dateLayout           = "Jan 2, 2006"
)

// Button labels.
const (
	LabelReadFeatured   = "📰 Read Featured"
	LabelMarket         = "📊 Market Analysis"
	LabelRefreshMarket  = "🔄 Refresh"
	LabelPrevious       = "⬅️ Previous"
	LabelNext           = "Next ➡️"
	LabelBookmark       = "🔖 Bookmark"
	LabelShare          = "📤 Share"
	LabelHome           = "🏠 Back to Home"
	LabelBackCategories = "🔙 Back to Categories"
	LabelReadFirst      = "📖 Read Article 1"
)

// Notices shown as toasts.
const (
	NoticeComingSoon = "🚧 This feature is coming soon!"
	NoticeNotFound   = "❌ Article not found"
)

// Renderer builds views. It holds no per-request state and is safe for concurrent use
// as long as its Source is.
type Renderer struct {
	repo  Repository
	src   market.Source
	links Links
}

// NewRenderer wires a renderer. A nil src falls back to market.NewRand.
func NewRenderer(repo Repository, src market.Source, links Links) *Renderer {
	if src == nil {
		src = market.NewRand()
	}
	if strings.TrimSpace(links.HomeURL) == "" {
		links = DefaultLinks
	}
	if strings.TrimSpace(links.HomeLabel) == "" {
		links.HomeLabel = DefaultLinks.HomeLabel
	}
	return &Renderer{repo: repo, src: src, links: links}
}

// Render produces the view for a.
func (r *Renderer) Render(a action.Action) View {
	switch a.Kind {
	case action.Home:
		return r.home()
	case action.Featured:
		return r.featured(a.Index)
	case action.Category:
		return r.category(a.Category)
	case action.Market:
		return r.market()
	case action.Help:
		return r.help()
	case action.Bookmark:
		return r.bookmark(a.ArticleID)
	case action.Share:
		return r.share(a.ArticleID)
	case action.Unhandled:
		return ComingSoon()
	}
	return ComingSoon()
}

// ComingSoon is the acknowledgement for anything the bot does not support.
func ComingSoon() View {
	return View{Text: NoticeComingSoon, Notice: NoticeComingSoon}
}

func homeButton() []Button {
	return []Button{Callback(LabelHome, action.Encode(action.ShowHome()))}
}

func (r *Renderer) home() View {
	var b strings.Builder
	b.WriteString("📰 " + format.Bold("Crypto News Hub") + "\n\n")
	b.WriteString(format.Bold("Latest headlines") + "\n")
	for i, a := range r.repo.Latest(homeHeadlines) {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, format.Bold(a.Title), format.MD(a.Summary))
	}

	t := market.NewTicker(r.src)
	b.WriteString("\n📊 " + format.Bold("Market snapshot") + "\n")
	fmt.Fprintf(&b, "₿ BTC: %s (%s)\n", market.USD(t.BTCPrice, 2), market.Percent(t.BTCChange))
	fmt.Fprintf(&b, "Ξ ETH: %s\n", market.USD(t.ETHPrice, 2))
	fmt.Fprintf(&b, "🌍 Market cap: $%sT\n", t.MarketCap.StringFixed(2))
	fmt.Fprintf(&b, "💹 24h volume: $%sB\n", t.Volume.StringFixed(1))
	b.WriteString("\nPick a category or start with the featured stories.")

	rows := [][]Button{{Callback(LabelReadFeatured, action.Encode(action.ShowFeatured(0)))}}

	cats := r.repo.Categories()
	catButtons := make([]Button, 0, len(cats))
	for _, c := range cats {
		catButtons = append(catButtons, Callback("📂 "+c.Name, action.Encode(action.ShowCategory(c.Key))))
	}
	rows = append(rows, pairs(catButtons)...)
	rows = append(rows,
		[]Button{Callback(LabelMarket, action.Encode(action.ShowMarket()))},
		[]Button{Link(r.links.HomeLabel, r.links.HomeURL)},
	)

	return View{Text: b.String(), Buttons: rows}
}

func (r *Renderer) featured(i int) View {
	count := r.repo.FeaturedCount()
	a, ok := r.repo.Featured(i)
	if !ok {
		return View{
			Text:    "❌ " + format.Bold("Article not found") + "\n\nThe article you are looking for is not available.",
			Buttons: [][]Button{homeButton()},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📰 %s\n\n", format.Bold(fmt.Sprintf("Featured %d/%d", i+1, count)))
	b.WriteString(format.Bold(a.Title) + "\n\n")
	fmt.Fprintf(&b, "✍️ %s · ⏱ %d min read · 📅 %s\n",
		format.MD(a.Author), a.ReadMinutes(), a.PublishedAt.Format(dateLayout))
	if c, ok := r.repo.CategoryInfo(a.Category); ok {
		fmt.Fprintf(&b, "📂 %s\n", format.MD(c.Name))
	}
	if len(a.Tags) > 0 {
		tags := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			tags = append(tags, "#"+format.MD(strings.ReplaceAll(t, " ", "")))
		}
		fmt.Fprintf(&b, "🏷 %s\n", strings.Join(tags, " "))
	}
	b.WriteString("\n" + format.MD(a.Body))

	var rows [][]Button
	var nav []Button
	if i > 0 {
		nav = append(nav, Callback(LabelPrevious, action.Encode(action.ShowFeatured(i-1))))
	}
	if i < count-1 {
		nav = append(nav, Callback(LabelNext, action.Encode(action.ShowFeatured(i+1))))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows,
		[]Button{
			Callback(LabelBookmark, action.Encode(action.BookmarkArticle(a.ID))),
			Callback(LabelShare, action.Encode(action.ShareArticle(a.ID))),
		},
		homeButton(),
	)

	return View{Text: b.String(), Buttons: rows}
}

func (r *Renderer) category(name string) View {
	back := []Button{Callback(LabelBackCategories, action.TokenBackCategories)}

	c, ok := r.repo.CategoryInfo(name)
	if !ok {
		return View{
			Text: "📂 " + format.Bold("No results") + "\n\nThere is no news for category " +
				format.MD(strings.ToLower(name)) + " yet.",
			Buttons: [][]Button{back},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📂 %s\n\n", format.Bold(c.Name+" News"))
	if len(c.Articles) == 0 {
		b.WriteString("No articles in this category yet.")
		return View{Text: b.String(), Buttons: [][]Button{back}}
	}

	shown := c.Articles
	if len(shown) > CategoryPreviewLimit {
		shown = shown[:CategoryPreviewLimit]
	}
	for i, a := range shown {
		fmt.Fprintf(&b, "%d. %s\n   ⏱ %d min read\n", i+1, format.Bold(a.Title), a.ReadMinutes())
	}
	if extra := len(c.Articles) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "\n…and %d more", extra)
	}

	var rows [][]Button
	if idx, ok := r.repo.FeaturedIndex(shown[0].ID); ok {
		rows = append(rows, []Button{Callback(LabelReadFirst, action.Encode(action.ShowFeatured(idx)))})
	}
	rows = append(rows, back)
	return View{Text: strings.TrimRight(b.String(), "\n"), Buttons: rows}
}

func (r *Renderer) market() View {
	a := market.NewAnalysis(r.src)

	var b strings.Builder
	b.WriteString("📊 " + format.Bold("Market Analysis") + "\n\n")
	b.WriteString("🚀 " + format.Bold("Top gainers (24h)") + "\n")
	for _, m := range a.Gainers {
		fmt.Fprintf(&b, "• %s %s\n", m.Symbol, market.Percent(m.Change))
	}
	b.WriteString("\n📉 " + format.Bold("Top losers (24h)") + "\n")
	for _, m := range a.Losers {
		fmt.Fprintf(&b, "• %s %s\n", m.Symbol, market.Percent(m.Change))
	}
	fmt.Fprintf(&b, "\n😀 %s %d (%s)\n", format.Bold("Fear & Greed:"), a.FearGreed, market.Sentiment(a.FearGreed))
	fmt.Fprintf(&b, "₿ %s support %s · resistance %s\n", format.Bold("BTC"),
		market.USD(a.BTCSupport, 0), market.USD(a.BTCResistance, 0))
	fmt.Fprintf(&b, "Ξ %s support %s · resistance %s\n", format.Bold("ETH"),
		market.USD(a.ETHSupport, 0), market.USD(a.ETHResistance, 0))
	fmt.Fprintf(&b, "👑 %s %s%%\n\n", format.Bold("BTC dominance:"), a.BTCDominance.StringFixed(1))
	b.WriteString(format.Italic("Figures are synthetic and for demonstration only."))

	return View{
		Text: b.String(),
		Buttons: [][]Button{{
			Callback(LabelRefreshMarket, action.Encode(action.ShowMarket())),
			Callback(LabelHome, action.Encode(action.ShowHome())),
		}},
	}
}

// HelpText is the static help message.
const HelpText = "ℹ️ *Help*\n\n" +
	"/start - open the news hub\n" +
	"/news - read the featured articles\n" +
	"/market - synthetic market analysis\n" +
	"/categories - browse categories\n" +
	"/help - show this message\n\n" +
	"Use the buttons under each message to navigate. The message updates in place."

func (r *Renderer) help() View {
	return View{Text: HelpText, Buttons: [][]Button{homeButton()}}
}

func (r *Renderer) bookmark(id int) View {
	a, ok := r.repo.Article(id)
	if !ok {
		return View{Notice: NoticeNotFound}
	}
	return View{Notice: "🔖 Bookmarked: " + a.Title}
}

func (r *Renderer) share(id int) View {
	a, ok := r.repo.Article(id)
	if !ok {
		return View{Notice: NoticeNotFound}
	}
	return View{Notice: "📤 Ready to share: " + a.Title}
}
