package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/models"
)

func sample() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Blue Shirt", Price: 120, Rating: 4.2},
		{ID: 2, Name: "Red Shirt", Price: 40, Rating: 0},
		{ID: 3, Name: "Green Hat", Price: 75, Rating: 4.9},
		{ID: 4, Name: "Yellow shirt", Price: 250, Rating: 3.5},
		{ID: 5, Name: "Black Hat", Price: 75, Rating: 4.2},
	}
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// ============================================================================
// Query validation
// ============================================================================

func TestQueryValidate(t *testing.T) {
	assert.NoError(t, Query{}.Validate())
	assert.NoError(t, Query{PriceBand: Price200Plus, SortBy: SortRating}.Validate())
	assert.Error(t, Query{PriceBand: "cheap"}.Validate())
	assert.Error(t, Query{SortBy: "newest"}.Validate())
}

// ============================================================================
// Apply
// ============================================================================

func TestApply_EmptyQueryKeepsOrder(t *testing.T) {
	got := Apply(sample(), Query{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got))
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	got := Apply(sample(), Query{Search: "  SHIRT "})
	assert.Equal(t, []int{1, 2, 4}, ids(got))
}

func TestApply_PriceBands(t *testing.T) {
	tests := []struct {
		band string
		want []int
	}{
		{PriceAll, []int{1, 2, 3, 4, 5}},
		{PriceUnder50, []int{2}},
		{Price50to100, []int{3, 5}},
		{Price100to200, []int{1}},
		{Price200Plus, []int{4}},
	}
	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(sample(), Query{PriceBand: tt.band})))
		})
	}
}

func TestApply_Sorting(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 1, 4}, ids(Apply(sample(), Query{SortBy: SortPriceLowHigh})))
	assert.Equal(t, []int{4, 1, 3, 5, 2}, ids(Apply(sample(), Query{SortBy: SortPriceHighLow})))
	// the unrated item ranks as 4.0, between 4.2 and 3.5
	assert.Equal(t, []int{3, 1, 5, 2, 4}, ids(Apply(sample(), Query{SortBy: SortRating})))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(sample(), Query{SortBy: SortFeatured})))
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	in := sample()
	_ = Apply(in, Query{SortBy: SortPriceHighLow})
	assert.Equal(t, sample(), in)
}

// ============================================================================
// Search
// ============================================================================

func TestSearch_AcrossCatalog(t *testing.T) {
	got := Search(catalog.Default(), Query{Search: "iphone"})
	require.NotEmpty(t, got)
	assert.Equal(t, 1, got[0].ID)
}

func TestSearch_BlankTermIsEmpty(t *testing.T) {
	got := Search(catalog.Default(), Query{Search: "   "})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(catalog.Default(), Query{Search: "zzzz-not-a-product"}))
}
