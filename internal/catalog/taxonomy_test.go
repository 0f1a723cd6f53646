package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drstein77/marketcatalog/internal/models"
)

func TestTaxonomy_TopLevelOrder(t *testing.T) {
	cats := DefaultTaxonomy().Categories()
	require.Len(t, cats, 9)
	assert.Equal(t, "electronics", cats[0].Slug)
	assert.Equal(t, "fashion", cats[1].Slug)
	assert.Equal(t, "health-medical", cats[8].Slug)
}

func TestTaxonomy_CategoriesIsADeepCopy(t *testing.T) {
	cats := DefaultTaxonomy().Categories()
	cats[1].Children[0].Children[0].Name = "changed"

	again := DefaultTaxonomy().Categories()
	assert.Equal(t, "Clothing", again[1].Children[0].Children[0].Name)
}

func TestTaxonomy_FindCategory(t *testing.T) {
	c, ok := DefaultTaxonomy().FindCategory("womens-clothing")
	require.True(t, ok)
	assert.Equal(t, 2011, c.ID)

	c, ok = DefaultTaxonomy().FindCategory("fashion")
	require.True(t, ok)
	assert.Len(t, c.Children, 3)

	_, ok = DefaultTaxonomy().FindCategory("nope")
	assert.False(t, ok)
}

func TestTaxonomy_Resolve(t *testing.T) {
	tests := []struct {
		name string
		path []string
		ok   bool
		leaf bool
		slug string
	}{
		{"top level", []string{"fashion"}, true, false, "fashion"},
		{"parent subcategory", []string{"fashion", "womens-fashion"}, true, false, "womens-fashion"},
		{"child", []string{"fashion", "womens-fashion", "womens-clothing"}, true, true, "womens-clothing"},
		{"leaf subcategory", []string{"electronics", "mobiles-tablets"}, true, true, "mobiles-tablets"},
		{"skipped level", []string{"fashion", "womens-clothing"}, false, false, ""},
		{"wrong parent", []string{"electronics", "womens-fashion"}, false, false, ""},
		{"empty path", nil, false, false, ""},
		{"too deep", []string{"electronics", "mobiles-tablets", "x"}, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := DefaultTaxonomy().Resolve(tt.path...)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.leaf, node.Leaf)
			assert.Equal(t, tt.slug, node.Category.Slug)
		})
	}
}

func TestTaxonomy_Breadcrumb(t *testing.T) {
	got := DefaultTaxonomy().Breadcrumb("womens-clothing")
	assert.Equal(t, []models.CategoryRef{
		{ID: 2, Name: "Fashion", Slug: "fashion"},
		{ID: 201, Name: "Women's Fashion", Slug: "womens-fashion"},
		{ID: 2011, Name: "Clothing", Slug: "womens-clothing"},
	}, got)

	empty := DefaultTaxonomy().Breadcrumb("unknown")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTaxonomy_LeafSlugs(t *testing.T) {
	leaves := DefaultTaxonomy().LeafSlugs()
	assert.Contains(t, leaves, "mobiles-tablets")
	assert.Contains(t, leaves, "womens-clothing")
	assert.NotContains(t, leaves, "womens-fashion")
	assert.NotContains(t, leaves, "fashion")
}

func TestTaxonomy_AllSlugsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range DefaultTaxonomy().AllSlugs() {
		assert.False(t, seen[s], "duplicate slug %q", s)
		seen[s] = true
	}
}
