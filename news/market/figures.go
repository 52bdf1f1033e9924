package market

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds of every synthetic field. Rendered values always fall inside [Lo, Hi].
var (
	BTCPriceRange      = Range{42000, 48000}
	ETHPriceRange      = Range{2800, 3400}
	BTCChangeRange     = Range{-3, 6}
	MarketCapRange     = Range{1.60, 1.90}
	VolumeRange        = Range{60, 95}
	GainerRange        = Range{5, 25}
	LoserRange         = Range{-15, -2}
	FearGreedRange     = Range{55, 92}
	BTCSupportRange    = Range{40000, 43000}
	BTCResistanceRange = Range{46000, 50000}
	ETHSupportRange    = Range{2600, 2900}
	ETHResistanceRange = Range{3200, 3600}
	DominanceRange     = Range{48, 54}
)

// Range is an inclusive numeric interval.
type Range struct {
	Lo, Hi float64
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool { return v >= r.Lo && v <= r.Hi }

func (r Range) draw(src Source, places int32) decimal.Decimal {
	return decimal.NewFromFloat(Between(src, r.Lo, r.Hi)).Round(places)
}

// Coins is the pool gainers and losers are drawn from.
var Coins = []string{"SOL", "ADA", "DOT", "AVAX", "MATIC", "LINK", "ATOM", "XRP", "DOGE", "LTC"}

// Ticker is the compact market summary shown on the home view.
type Ticker struct {
	BTCPrice  decimal.Decimal
	BTCChange decimal.Decimal
	ETHPrice  decimal.Decimal
	MarketCap decimal.Decimal // trillions of USD
	Volume    decimal.Decimal // billions of USD
}

// NewTicker draws a Ticker from src.
func NewTicker(src Source) Ticker {
	return Ticker{
		BTCPrice:  BTCPriceRange.draw(src, 2),
		BTCChange: BTCChangeRange.draw(src, 2),
		ETHPrice:  ETHPriceRange.draw(src, 2),
		MarketCap: MarketCapRange.draw(src, 2),
		Volume:    VolumeRange.draw(src, 1),
	}
}

// Mover is a coin with its 24h change in percent.
type Mover struct {
	Symbol string
	Change decimal.Decimal
}

// Analysis is the full synthetic market report.
type Analysis struct {
	Gainers       []Mover
	Losers        []Mover
	FearGreed     int
	BTCSupport    decimal.Decimal
	BTCResistance decimal.Decimal
	ETHSupport    decimal.Decimal
	ETHResistance decimal.Decimal
	BTCDominance  decimal.Decimal
}

// NewAnalysis draws an Analysis from src. Gainers and losers are distinct coins.
func NewAnalysis(src Source) Analysis {
	pool := append([]string(nil), Coins...)
	take := func() string {
		i := Pick(src, len(pool))
		sym := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		return sym
	}

	a := Analysis{}
	for i := 0; i < 3; i++ {
		a.Gainers = append(a.Gainers, Mover{Symbol: take(), Change: GainerRange.draw(src, 2)})
	}
	for i := 0; i < 3; i++ {
		a.Losers = append(a.Losers, Mover{Symbol: take(), Change: LoserRange.draw(src, 2)})
	}
	sort.SliceStable(a.Gainers, func(i, j int) bool { return a.Gainers[i].Change.GreaterThan(a.Gainers[j].Change) })
	sort.SliceStable(a.Losers, func(i, j int) bool { return a.Losers[i].Change.LessThan(a.Losers[j].Change) })

	span := int(FearGreedRange.Hi - FearGreedRange.Lo)
	a.FearGreed = int(FearGreedRange.Lo) + Pick(src, span+1)
	a.BTCSupport = BTCSupportRange.draw(src, -2)
	a.BTCResistance = BTCResistanceRange.draw(src, -2)
	a.ETHSupport = ETHSupportRange.draw(src, -1)
	a.ETHResistance = ETHResistanceRange.draw(src, -1)
	a.BTCDominance = DominanceRange.draw(src, 1)
	return a
}

// Sentiment labels a Fear & Greed value.
func Sentiment(index int) string {
	switch {
	case index >= 75:
		return "Extreme Greed"
	case index >= 55:
		return "Greed"
	case index >= 45:
		return "Neutral"
	case index >= 25:
		return "Fear"
	default:
		return "Extreme Fear"
	}
}

// USD formats d with thousands separators and the given number of decimals.
func USD(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// Percent formats d as a signed percentage with two decimals.
func Percent(d decimal.Decimal) string {
	s := d.StringFixed(2) + "%"
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
