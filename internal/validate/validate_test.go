package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/models"
)

func validProduct(id int) models.Product {
	return models.Product{
		ID:            id,
		Name:          "Thing",
		Price:         100,
		OriginalPrice: 150,
		Rating:        4.5,
		ReviewCount:   3,
		Image:         "https://images.example.com/thing.jpg",
		Brand:         "Acme",
		InStock:       true,
	}
}

func TestRun_BuiltinCatalogHasNoErrors(t *testing.T) {
	r := Run(catalog.Default(), catalog.DefaultTaxonomy())
	assert.Equal(t, 61, r.Products)
	assert.Empty(t, r.Errors())
	assert.NoError(t, r.Err())
}

func TestRun_BuiltinParentListingsAreWarnings(t *testing.T) {
	r := Run(catalog.Default(), catalog.DefaultTaxonomy())

	var cats []string
	for _, w := range r.Warnings() {
		cats = append(cats, w.Category)
	}
	assert.ElementsMatch(t, []string{"womens-fashion", "mens-fashion", "kids-baby"}, cats)
}

func TestRun_FieldViolations(t *testing.T) {
	bad := validProduct(7)
	bad.Name = ""
	bad.OriginalPrice = 50
	bad.Rating = 5.5
	bad.Image = "not a url"

	r := Run(catalog.New([]catalog.Entry{{Slug: "x", Products: []models.Product{bad}}}), nil)

	fields := make(map[string]bool)
	for _, i := range r.Errors() {
		assert.Equal(t, 7, i.ProductID)
		fields[i.Field] = true
	}
	assert.True(t, fields["Name"])
	assert.True(t, fields["OriginalPrice"])
	assert.True(t, fields["Rating"])
	assert.True(t, fields["Image"])
	assert.Error(t, r.Err())
}

func TestRun_DuplicateIDs(t *testing.T) {
	c := catalog.New([]catalog.Entry{
		{Slug: "a", Products: []models.Product{validProduct(1)}},
		{Slug: "b", Products: []models.Product{validProduct(1)}},
	})

	r := Run(c, nil)
	require.Len(t, r.Errors(), 1)
	assert.Equal(t, "ID", r.Errors()[0].Field)
	assert.Equal(t, "b", r.Errors()[0].Category)
	assert.Contains(t, r.Err().Error(), `already used in "a"`)
}

func TestRun_UnknownCategoryWarning(t *testing.T) {
	c := catalog.New([]catalog.Entry{{Slug: "orphan", Products: []models.Product{validProduct(1)}}})
	r := Run(c, catalog.DefaultTaxonomy())

	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "orphan", r.Warnings()[0].Category)
	assert.NoError(t, r.Err())
}

func TestRun_EmptySlug(t *testing.T) {
	c := catalog.New([]catalog.Entry{{Slug: "", Products: []models.Product{validProduct(1)}}})
	r := Run(c, nil)
	assert.Error(t, r.Err())
}
