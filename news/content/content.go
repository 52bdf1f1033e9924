// Package content holds the read-only article catalog browsed by the bot.
// A Repository is built once at startup and shared by every request without locking.
package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no featured articles.
	ErrEmptyCatalog = errors.New("content: catalog has no featured articles")
	// ErrInvalidCatalog wraps structural problems such as duplicate IDs or orphaned categories.
	ErrInvalidCatalog = errors.New("content: invalid catalog")
)

// Article is a single news item. Values are never mutated after Load.
type Article struct {
	ID          int
	Title       string
	Summary     string
	Body        string
	Category    string
	Tags        []string
	Author      string
	ReadTime    time.Duration
	PublishedAt time.Time
}

// ReadMinutes returns the read time rounded up to whole minutes, at least one.
func (a *Article) ReadMinutes() int {
	m := int((a.ReadTime + time.Minute - 1) / time.Minute)
	if m < 1 {
		return 1
	}
	return m
}

// CategoryDef declares a category key and its display name in a catalog.
type CategoryDef struct {
	Key  string
	Name string
}

// Catalog is the raw data a Repository is loaded from.
type Catalog struct {
	Name       string
	Categories []CategoryDef
	Featured   []Article
}

// Category is a loaded category with its member articles in featured order.
type Category struct {
	Key      string
	Name     string
	Articles []*Article
}

// Repository serves lookups over a loaded catalog.
type Repository struct {
	name       string
	featured   []*Article
	position   map[int]int
	categories []Category
	byKey      map[string]int
}

// Load validates the catalog and builds a Repository.
func Load(c Catalog) (*Repository, error) {
	if len(c.Featured) == 0 {
		return nil, ErrEmptyCatalog
	}

	r := &Repository{
		name:       c.Name,
		featured:   make([]*Article, 0, len(c.Featured)),
		position:   make(map[int]int, len(c.Featured)),
		categories: make([]Category, 0, len(c.Categories)),
		byKey:      make(map[string]int, len(c.Categories)),
	}

	for _, def := range c.Categories {
		key := normalizeKey(def.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: empty category key", ErrInvalidCatalog)
		}
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, key)
		}
		name := strings.TrimSpace(def.Name)
		if name == "" {
			name = def.Key
		}
		r.byKey[key] = len(r.categories)
		r.categories = append(r.categories, Category{Key: key, Name: name})
	}

	for i := range c.Featured {
		a := c.Featured[i]
		if _, dup := r.position[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate article id %d", ErrInvalidCatalog, a.ID)
		}
		key := normalizeKey(a.Category)
		idx, ok := r.byKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: article %d references unknown category %q", ErrInvalidCatalog, a.ID, a.Category)
		}
		a.Category = key
		a.Tags = append([]string(nil), a.Tags...)

		art := &a
		r.position[a.ID] = len(r.featured)
		r.featured = append(r.featured, art)
		r.categories[idx].Articles = append(r.categories[idx].Articles, art)
	}

	return r, nil
}

// Name returns the catalog name the repository was loaded from.
func (r *Repository) Name() string { return r.name }

// Featured returns the article at index i of the featured list.
func (r *Repository) Featured(i int) (*Article, bool) {
	if i < 0 || i >= len(r.featured) {
		return nil, false
	}
	return r.featured[i], true
}

// FeaturedCount returns the number of featured articles.
func (r *Repository) FeaturedCount() int { return len(r.featured) }

// FeaturedIndex returns the featured position of an article ID.
func (r *Repository) FeaturedIndex(id int) (int, bool) {
	i, ok := r.position[id]
	return i, ok
}

// Article looks an article up by ID.
func (r *Repository) Article(id int) (*Article, bool) {
	i, ok := r.position[id]
	if !ok {
		return nil, false
	}
	return r.featured[i], true
}

// Category returns the articles filed under name. Unknown names yield an empty slice.
func (r *Repository) Category(name string) []*Article {
	c, ok := r.CategoryInfo(name)
	if !ok {
		return nil
	}
	return c.Articles
}

// CategoryInfo returns the category registered under name, matched case-insensitively.
func (r *Repository) CategoryInfo(name string) (Category, bool) {
	idx, ok := r.byKey[normalizeKey(name)]
	if !ok {
		return Category{}, false
	}
	return r.categories[idx], true
}

// Categories lists categories in declaration order.
func (r *Repository) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Latest returns up to n featured articles, newest first.
// Articles published at the same instant keep their featured order.
func (r *Repository) Latest(n int) []*Article {
	if n <= 0 {
		return nil
	}
	sorted := make([]*Article, len(r.featured))
	copy(sorted, r.featured)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
