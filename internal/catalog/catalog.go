// Package catalog holds the static buyer catalog and its category taxonomy.
//
// Both are built once when the package is initialised and never change
// afterwards, so every accessor is safe for concurrent use without locking.
package catalog

import (
	"iter"

	"github.com/drstein77/marketcatalog/internal/models"
)

// Entry is one category slug together with its products in authored order.
type Entry struct {
	Slug     string
	Products []models.Product
}

// Catalog maps category slugs to ordered product lists. Slug order and
// product order are kept exactly as authored.
type Catalog struct {
	entries []Entry
	index   map[string]int
	byID    map[int]position
}

type position struct {
	entry   int
	product int
}

var defaultCatalog = New(builtin)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// ProductsByCategory looks categorySlug up in the built-in catalog.
func ProductsByCategory(categorySlug string) []models.Product {
	return defaultCatalog.ProductsByCategory(categorySlug)
}

// New builds a catalog from entries. The input is copied. A slug repeated
// later in entries replaces the earlier product list but keeps its position.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		byID:    make(map[int]position),
	}

	for _, e := range entries {
		if i, ok := c.index[e.Slug]; ok {
			c.entries[i].Products = clone(e.Products)
			continue
		}
		c.index[e.Slug] = len(c.entries)
		c.entries = append(c.entries, Entry{Slug: e.Slug, Products: clone(e.Products)})
	}

	for i, e := range c.entries {
		for j, p := range e.Products {
			if _, ok := c.byID[p.ID]; !ok {
				c.byID[p.ID] = position{entry: i, product: j}
			}
		}
	}

	return c
}

// ProductsByCategory returns the products listed under categorySlug in
// authored order. Any slug that is not in the catalog, including the empty
// string, yields an empty non-nil slice. The result is a copy and may be
// modified by the caller.
func (c *Catalog) ProductsByCategory(categorySlug string) []models.Product {
	if c == nil {
		return []models.Product{}
	}
	i, ok := c.index[categorySlug]
	if !ok {
		return []models.Product{}
	}
	return clone(c.entries[i].Products)
}

// Has reports whether categorySlug is a key of the catalog.
func (c *Catalog) Has(categorySlug string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[categorySlug]
	return ok
}

// Slugs returns the category slugs in authored order.
func (c *Catalog) Slugs() []string {
	if c == nil {
		return []string{}
	}
	slugs := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}

// Len returns the number of category slugs.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// All yields every slug with a copy of its products, in authored order.
func (c *Catalog) All() iter.Seq2[string, []models.Product] {
	return func(yield func(string, []models.Product) bool) {
		if c == nil {
			return
		}
		for _, e := range c.entries {
			if !yield(e.Slug, clone(e.Products)) {
				return
			}
		}
	}
}

// ProductByID finds a product by id. Cross-listed items have distinct ids, so
// the slug returned is the one the id was authored under.
func (c *Catalog) ProductByID(id int) (models.Product, string, bool) {
	if c == nil {
		return models.Product{}, "", false
	}
	pos, ok := c.byID[id]
	if !ok {
		return models.Product{}, "", false
	}
	e := c.entries[pos.entry]
	return e.Products[pos.product], e.Slug, true
}

// Summary counts items, categories, the sum of current prices and the
// number of in-stock items.
func (c *Catalog) Summary() models.CatalogSummary {
	var s models.CatalogSummary
	if c == nil {
		return s
	}
	s.TotalCategories = len(c.entries)
	for _, e := range c.entries {
		for _, p := range e.Products {
			s.TotalItems++
			s.TotalPrice += p.Price
			if p.InStock {
				s.InStock++
			}
		}
	}
	return s
}

func clone(products []models.Product) []models.Product {
	return append(make([]models.Product, 0, len(products)), products...)
}
