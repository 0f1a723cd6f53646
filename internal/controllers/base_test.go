package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drstein77/marketcatalog/internal/compress"
	"github.com/drstein77/marketcatalog/internal/logger"
	"github.com/drstein77/marketcatalog/internal/models"
	"github.com/drstein77/marketcatalog/internal/storage"
)

func newRouter() http.Handler {
	log := logger.NewNop()
	store := storage.NewMemoryStorage(nil, nil, log)
	return NewBaseController(store, log, "test", "products.csv").Route()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}

// ============================================================================
// Catalog lookup
// ============================================================================

func TestGetProductsByCategory_Known(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/catalog/mobiles-tablets")
	require.Equal(t, http.StatusOK, rr.Code)

	var products []models.Product
	decode(t, rr, &products)
	require.Len(t, products, 5)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "iPhone 15 Pro Max", products[0].Name)
	assert.Equal(t, int64(39999), products[0].Price)
	assert.Equal(t, int64(45999), products[0].OriginalPrice)
}

func TestGetProductsByCategory_UnknownIsEmptyList(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/catalog/nonexistent-category")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetCatalog(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/catalog")
	require.Equal(t, http.StatusOK, rr.Code)

	var listings []models.Listing
	decode(t, rr, &listings)
	require.Len(t, listings, 27)
	assert.Equal(t, "mobiles-tablets", listings[0].Slug)
}

// ============================================================================
// Taxonomy
// ============================================================================

func TestGetCategories(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/categories")
	require.Equal(t, http.StatusOK, rr.Code)

	var cats []models.Category
	decode(t, rr, &cats)
	assert.Len(t, cats, 9)
}

func TestResolveCategory_Parent(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/categories/fashion/womens-fashion")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp categoryListing
	decode(t, rr, &resp)
	assert.Equal(t, "womens-fashion", resp.Category.Slug)
	assert.Len(t, resp.Children, 4)
	assert.Len(t, resp.Breadcrumb, 2)
}

func TestResolveCategory_LeafSorted(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/categories/electronics/mobiles-tablets?sort=priceHighLow")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp categoryProducts
	decode(t, rr, &resp)
	require.Len(t, resp.Products, 5)
	for i := 1; i < len(resp.Products); i++ {
		assert.GreaterOrEqual(t, resp.Products[i-1].Price, resp.Products[i].Price)
	}
}

func TestResolveCategory_LeafWithoutProducts(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/categories/home-kitchen/furniture")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"products":[]`)
}

func TestResolveCategory_NotFound(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/categories/electronics/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResolveCategory_BadQuery(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/categories/electronics/mobiles-tablets?sort=newest")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ============================================================================
// Products, search, summary
// ============================================================================

func TestGetProduct(t *testing.T) {
	h := newRouter()

	rr := get(t, h, "/api/v0/products/101")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp productResponse
	decode(t, rr, &resp)
	assert.Equal(t, "laptops-computers", resp.Category)
	assert.Equal(t, 101, resp.Product.ID)

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/v0/products/abc").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v0/products/424242").Code)
}

func TestSearch(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/search?q=iphone")
	require.Equal(t, http.StatusOK, rr.Code)

	var products []models.Product
	decode(t, rr, &products)
	require.NotEmpty(t, products)
	assert.Equal(t, 1, products[0].ID)
}

func TestSearch_BadPriceBand(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/search?q=iphone&price=free")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetSummary(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/summary")
	require.Equal(t, http.StatusOK, rr.Code)

	var s models.CatalogSummary
	decode(t, rr, &s)
	assert.Equal(t, 61, s.TotalItems)
	assert.Equal(t, 27, s.TotalCategories)
}

// ============================================================================
// Export, ping, metrics
// ============================================================================

func TestExport(t *testing.T) {
	for _, typ := range []string{compress.TypeZip, compress.TypeTar} {
		t.Run(typ, func(t *testing.T) {
			rr := get(t, newRouter(), "/api/v0/export?archiveType="+typ)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, compress.ContentType(typ), rr.Header().Get("Content-Type"))

			r, err := compress.NewReader(typ, io.NopCloser(rr.Body), "products.csv")
			require.NoError(t, err)

			var rows []models.ExportRow
			require.NoError(t, gocsv.Unmarshal(r, &rows))
			assert.Len(t, rows, 61)
		})
	}
}

func TestExport_UnknownArchiveType(t *testing.T) {
	rr := get(t, newRouter(), "/api/v0/export?archiveType=7z")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

type failingExport struct {
	Storage
}

func (failingExport) ExportCSV(context.Context, io.Writer) error {
	return errors.New("disk on fire")
}

func TestExport_Failure(t *testing.T) {
	log := logger.NewNop()
	store := failingExport{Storage: storage.NewMemoryStorage(nil, nil, log)}
	h := NewBaseController(store, log, "test", "products.csv").Route()

	rr := get(t, h, "/api/v0/export")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "disk on fire")
}

func TestPing(t *testing.T) {
	rr := get(t, newRouter(), "/ping")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newRouter()
	get(t, h, "/api/v0/catalog/nonexistent-category")

	rr := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `catalog_lookups_total{result="miss"}`)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}
