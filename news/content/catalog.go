package content

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultCatalog is the catalog used when configuration does not name one.
const DefaultCatalog = "crypto"

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

var cryptoCategories = []CategoryDef{
	{Key: "bitcoin", Name: "Bitcoin"},
	{Key: "ethereum", Name: "Ethereum"},
	{Key: "defi", Name: "DeFi"},
	{Key: "nft", Name: "NFT"},
	{Key: "regulation", Name: "Regulation"},
	{Key: "altcoins", Name: "Altcoins"},
}

var cryptoArticles = []Article{
	{
		ID:          1,
		Title:       "🚀 Bitcoin Surges Past $45,000",
		Summary:     "BTC broke through the $45,000 resistance level, up 15% in 24 hours.",
		Body:        "Bitcoin has broken through the $45,000 resistance level, marking a 15% increase in the past 24 hours. Analysts point to renewed institutional inflows and shrinking exchange balances as the main drivers. Options desks report heavy call buying at the $50,000 strike for the end of the quarter.",
		Category:    "bitcoin",
		Tags:        []string{"BTC", "price", "institutional"},
		Author:      "Maria Chen",
		ReadTime:    3 * time.Minute,
		PublishedAt: day(2024, time.January, 15, 9, 30),
	},
	{
		ID:          2,
		Title:       "💎 Ethereum London Upgrade Success",
		Summary:     "The London hard fork went live and introduced EIP-1559.",
		Body:        "Ethereum's London hard fork has been successfully implemented, introducing EIP-1559. A portion of every transaction fee is now burned, which changes the supply dynamics of ETH. Client teams reported a smooth transition with no consensus issues across the major implementations.",
		Category:    "ethereum",
		Tags:        []string{"ETH", "EIP-1559", "upgrade"},
		Author:      "James Okafor",
		ReadTime:    4 * time.Minute,
		PublishedAt: day(2024, time.January, 14, 16, 0),
	},
	{
		ID:          3,
		Title:       "🏦 DeFi Lending Volumes Hit Yearly High",
		Summary:     "Total value locked in lending protocols crossed $30B.",
		Body:        "Decentralized lending protocols recorded their busiest week of the year as total value locked crossed $30 billion. Stablecoin borrowing rates climbed above 8% on several venues, pulling fresh liquidity from centralized desks.",
		Category:    "defi",
		Tags:        []string{"lending", "TVL", "stablecoins"},
		Author:      "Priya Nair",
		ReadTime:    5 * time.Minute,
		PublishedAt: day(2024, time.January, 13, 11, 15),
	},
	{
		ID:          4,
		Title:       "⚖️ Regulators Publish Stablecoin Framework",
		Summary:     "A draft framework sets reserve and audit rules for issuers.",
		Body:        "Financial regulators released a draft framework requiring stablecoin issuers to hold fully segregated reserves and publish monthly attestations. The consultation period runs for ninety days, and industry groups have already signalled broad support for the reserve rules.",
		Category:    "regulation",
		Tags:        []string{"stablecoins", "policy"},
		Author:      "Lukas Berg",
		ReadTime:    6 * time.Minute,
		PublishedAt: day(2024, time.January, 12, 8, 45),
	},
	{
		ID:          5,
		Title:       "🖼 NFT Marketplace Volumes Recover",
		Summary:     "Monthly NFT trading volume rose 40% from its low.",
		Body:        "NFT marketplaces reported a 40% rebound in monthly trading volume, led by gaming collections and on-chain art. Royalty enforcement remains contested, but creators say secondary sales are picking up again.",
		Category:    "nft",
		Tags:        []string{"NFT", "marketplaces"},
		Author:      "Sofia Alvarez",
		ReadTime:    3 * time.Minute,
		PublishedAt: day(2024, time.January, 11, 19, 20),
	},
	{
		ID:          6,
		Title:       "⚡ Lightning Network Capacity Doubles",
		Summary:     "Public channel capacity on Lightning passed 5,000 BTC.",
		Body:        "Public channel capacity on the Lightning Network passed 5,000 BTC, roughly double the figure from two years ago. Payment processors credit better liquidity tooling and wider wallet support for the growth.",
		Category:    "bitcoin",
		Tags:        []string{"BTC", "lightning", "payments"},
		Author:      "Maria Chen",
		ReadTime:    4 * time.Minute,
		PublishedAt: day(2024, time.January, 10, 14, 5),
	},
	{
		ID:          7,
		Title:       "🌐 Solana Validators Ship Fee Market Update",
		Summary:     "Localized fee markets aim to reduce congestion spikes.",
		Body:        "Solana validators rolled out an update introducing localized fee markets, so that congestion around a single popular program no longer raises fees network-wide. Early data shows fewer dropped transactions during peak hours.",
		Category:    "altcoins",
		Tags:        []string{"SOL", "fees"},
		Author:      "Daniel Kim",
		ReadTime:    4 * time.Minute,
		PublishedAt: day(2024, time.January, 9, 10, 0),
	},
	{
		ID:          8,
		Title:       "🔐 Ethereum Staking Withdrawals Stabilize",
		Summary:     "The validator exit queue has cleared after two weeks.",
		Body:        "The Ethereum validator exit queue cleared for the first time in two weeks as withdrawal demand eased. Net staking deposits turned positive again, with liquid staking protocols absorbing most of the inflow.",
		Category:    "ethereum",
		Tags:        []string{"ETH", "staking"},
		Author:      "James Okafor",
		ReadTime:    3 * time.Minute,
		PublishedAt: day(2024, time.January, 8, 7, 50),
	},
}

var bitcoinCategories = []CategoryDef{
	{Key: "bitcoin", Name: "Bitcoin"},
	{Key: "mining", Name: "Mining"},
}

var bitcoinArticles = []Article{
	cryptoArticles[0],
	{
		ID:          101,
		Title:       "⛏ Hashrate Sets New All-Time High",
		Summary:     "Network hashrate crossed 500 EH/s for the first time.",
		Body:        "Bitcoin's network hashrate crossed 500 EH/s as new-generation machines came online ahead of the halving. Miners with older fleets are increasingly turning to hosting deals to stay profitable.",
		Category:    "mining",
		Tags:        []string{"BTC", "hashrate"},
		Author:      "Omar Haddad",
		ReadTime:    3 * time.Minute,
		PublishedAt: day(2024, time.January, 16, 6, 10),
	},
	cryptoArticles[5],
}

var catalogs = map[string]Catalog{
	"crypto":  {Name: "crypto", Categories: cryptoCategories, Featured: cryptoArticles},
	"bitcoin": {Name: "bitcoin", Categories: bitcoinCategories, Featured: bitcoinArticles},
}

// Catalogs lists the names of the compiled-in catalogs.
func Catalogs() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the compiled-in catalog registered under name.
func Lookup(name string) (Catalog, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultCatalog
	}
	c, ok := catalogs[key]
	if !ok {
		return Catalog{}, fmt.Errorf("content: unknown catalog %q; available: %s", name, strings.Join(Catalogs(), ", "))
	}
	return c, nil
}

// Open loads the compiled-in catalog registered under name.
func Open(name string) (*Repository, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Load(c)
}

// Default loads the default compiled-in catalog.
func Default() (*Repository, error) {
	return Open(DefaultCatalog)
}
