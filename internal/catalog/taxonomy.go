package catalog

import "github.com/drstein77/marketcatalog/internal/models"

// Node is a resolved taxonomy position. A leaf has no children and lists the
// products of its slug; any other node lists its children.
type Node struct {
	Category models.Category
	Leaf     bool
}

// Taxonomy is the category tree shown on the buyer storefront.
type Taxonomy struct {
	roots []models.Category
}

var defaultTaxonomy = NewTaxonomy(taxonomy)

// DefaultTaxonomy returns the built-in category tree.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy
}

// NewTaxonomy builds a taxonomy from a deep copy of roots.
func NewTaxonomy(roots []models.Category) *Taxonomy {
	return &Taxonomy{roots: cloneCategories(roots)}
}

// Categories returns the top-level categories with their subtrees.
func (t *Taxonomy) Categories() []models.Category {
	return cloneCategories(t.roots)
}

// FindCategory searches the whole tree depth first.
func (t *Taxonomy) FindCategory(slug string) (models.Category, bool) {
	path := findPath(t.roots, slug)
	if len(path) == 0 {
		return models.Category{}, false
	}
	return cloneCategory(*path[len(path)-1]), true
}

// Resolve walks path from a top-level slug down through its descendants.
func (t *Taxonomy) Resolve(path ...string) (Node, bool) {
	if len(path) == 0 {
		return Node{}, false
	}

	level := t.roots
	var cur *models.Category
	for _, slug := range path {
		cur = nil
		for i := range level {
			if level[i].Slug == slug {
				cur = &level[i]
				break
			}
		}
		if cur == nil {
			return Node{}, false
		}
		level = cur.Children
	}

	return Node{Category: cloneCategory(*cur), Leaf: len(cur.Children) == 0}, true
}

// Breadcrumb returns the ancestors of slug and the node itself, root first.
func (t *Taxonomy) Breadcrumb(slug string) []models.CategoryRef {
	path := findPath(t.roots, slug)
	refs := make([]models.CategoryRef, 0, len(path))
	for _, c := range path {
		refs = append(refs, models.CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return refs
}

// LeafSlugs returns the slugs of every node without children, in tree order.
func (t *Taxonomy) LeafSlugs() []string {
	var slugs []string
	var walk func([]models.Category)
	walk = func(level []models.Category) {
		for _, c := range level {
			if len(c.Children) == 0 {
				slugs = append(slugs, c.Slug)
				continue
			}
			walk(c.Children)
		}
	}
	walk(t.roots)
	return slugs
}

// AllSlugs returns every slug in the tree, in depth-first order.
func (t *Taxonomy) AllSlugs() []string {
	var slugs []string
	var walk func([]models.Category)
	walk = func(level []models.Category) {
		for _, c := range level {
			slugs = append(slugs, c.Slug)
			walk(c.Children)
		}
	}
	walk(t.roots)
	return slugs
}

func findPath(level []models.Category, slug string) []*models.Category {
	for i := range level {
		c := &level[i]
		if c.Slug == slug {
			return []*models.Category{c}
		}
		if sub := findPath(c.Children, slug); len(sub) > 0 {
			return append([]*models.Category{c}, sub...)
		}
	}
	return nil
}

func cloneCategories(in []models.Category) []models.Category {
	if in == nil {
		return nil
	}
	out := make([]models.Category, len(in))
	for i, c := range in {
		out[i] = cloneCategory(c)
	}
	return out
}

func cloneCategory(c models.Category) models.Category {
	c.Children = cloneCategories(c.Children)
	return c
}
