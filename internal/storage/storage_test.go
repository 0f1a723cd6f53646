package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drstein77/marketcatalog/internal/browse"
	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/logger"
	"github.com/drstein77/marketcatalog/internal/metrics"
	"github.com/drstein77/marketcatalog/internal/models"
)

func newStorage() *MemoryStorage {
	return NewMemoryStorage(nil, nil, logger.NewNop())
}

func TestGetProductsByCategory_CountsHitsAndMisses(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	hits := testutil.ToFloat64(metrics.CatalogLookups.WithLabelValues(metrics.ResultHit))
	misses := testutil.ToFloat64(metrics.CatalogLookups.WithLabelValues(metrics.ResultMiss))

	assert.Len(t, s.GetProductsByCategory(ctx, "mobiles-tablets"), 5)
	got := s.GetProductsByCategory(ctx, "nonexistent-category")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CatalogLookups.WithLabelValues(metrics.ResultHit)))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CatalogLookups.WithLabelValues(metrics.ResultMiss)))
}

func TestGetCatalog_Order(t *testing.T) {
	listings := newStorage().GetCatalog(context.Background())
	require.Len(t, listings, 27)
	assert.Equal(t, "mobiles-tablets", listings[0].Slug)
	assert.Len(t, listings[0].Products, 5)
}

func TestResolveCategory(t *testing.T) {
	s := newStorage()

	node, crumbs, err := s.ResolveCategory(context.Background(), []string{"fashion", "mens-fashion", "mens-shoes"})
	require.NoError(t, err)
	assert.True(t, node.Leaf)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "fashion", crumbs[0].Slug)

	_, _, err = s.ResolveCategory(context.Background(), []string{"nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProduct(t *testing.T) {
	s := newStorage()

	p, slug, err := s.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "mobiles-tablets", slug)
	assert.Equal(t, "iPhone 15 Pro Max", p.Name)

	_, _, err = s.GetProduct(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	got := newStorage().Search(context.Background(), browse.Query{Search: "macbook"})
	require.Len(t, got, 1)
	assert.Equal(t, 101, got[0].ID)
}

func TestExportCSV(t *testing.T) {
	s := newStorage()
	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(context.Background(), &buf))

	var rows []models.ExportRow
	require.NoError(t, gocsv.Unmarshal(&buf, &rows))
	require.Len(t, rows, 61)
	assert.Equal(t, "mobiles-tablets", rows[0].Category)
	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, int64(39999), rows[0].Price)
	assert.Equal(t, 4.8, rows[0].Rating)
	assert.True(t, rows[0].InStock)
	assert.Equal(t, "school-bags", rows[len(rows)-1].Category)
}

func TestExportCSV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	assert.ErrorIs(t, newStorage().ExportCSV(ctx, &buf), context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestNewMemoryStorage_CustomCatalog(t *testing.T) {
	c := catalog.New([]catalog.Entry{{Slug: "only", Products: []models.Product{{ID: 9, Name: "x"}}}})
	s := NewMemoryStorage(c, nil, logger.NewNop())

	assert.Equal(t, 1, s.GetSummary(context.Background()).TotalItems)
	assert.Empty(t, s.GetProductsByCategory(context.Background(), "mobiles-tablets"))
}
