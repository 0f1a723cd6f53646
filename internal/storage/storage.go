package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/drstein77/marketcatalog/internal/browse"
	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/metrics"
	"github.com/drstein77/marketcatalog/internal/models"
)

// ErrNotFound is returned when a product id or taxonomy path does not exist.
// Unknown category slugs are not errors.
var ErrNotFound = errors.New("not found")

type Log interface {
	Debug(string, ...zap.Field)
	Info(string, ...zap.Field)
}

// MemoryStorage serves the static catalog and taxonomy. Both are immutable,
// so no locking is needed.
type MemoryStorage struct {
	catalog  *catalog.Catalog
	taxonomy *catalog.Taxonomy
	log      Log
}

// NewMemoryStorage creates a new MemoryStorage instance. Nil arguments fall
// back to the built-in catalog and taxonomy.
func NewMemoryStorage(c *catalog.Catalog, t *catalog.Taxonomy, log Log) *MemoryStorage {
	if c == nil {
		c = catalog.Default()
	}
	if t == nil {
		t = catalog.DefaultTaxonomy()
	}

	summary := c.Summary()
	log.Info("catalog loaded",
		zap.Int("categories", summary.TotalCategories),
		zap.Int("products", summary.TotalItems),
	)

	return &MemoryStorage{
		catalog:  c,
		taxonomy: t,
		log:      log,
	}
}

// GetProductsByCategory returns the products of slug in authored order, or
// an empty list for a slug the catalog does not know.
func (s *MemoryStorage) GetProductsByCategory(_ context.Context, slug string) []models.Product {
	if !s.catalog.Has(slug) {
		metrics.CatalogLookups.WithLabelValues(metrics.ResultMiss).Inc()
		s.log.Debug("unknown category slug", zap.String("slug", slug))
		return []models.Product{}
	}
	metrics.CatalogLookups.WithLabelValues(metrics.ResultHit).Inc()
	return s.catalog.ProductsByCategory(slug)
}

// GetCatalog enumerates every category with its products.
func (s *MemoryStorage) GetCatalog(_ context.Context) []models.Listing {
	listings := make([]models.Listing, 0, s.catalog.Len())
	for slug, products := range s.catalog.All() {
		listings = append(listings, models.Listing{Slug: slug, Products: products})
	}
	return listings
}

func (s *MemoryStorage) GetCategories(_ context.Context) []models.Category {
	return s.taxonomy.Categories()
}

// ResolveCategory resolves a taxonomy path such as fashion/womens-fashion.
func (s *MemoryStorage) ResolveCategory(_ context.Context, path []string) (catalog.Node, []models.CategoryRef, error) {
	node, ok := s.taxonomy.Resolve(path...)
	if !ok {
		return catalog.Node{}, nil, fmt.Errorf("category %v: %w", path, ErrNotFound)
	}
	return node, s.taxonomy.Breadcrumb(node.Category.Slug), nil
}

// GetProduct returns a product by id together with the slug it is listed under.
func (s *MemoryStorage) GetProduct(_ context.Context, id int) (models.Product, string, error) {
	p, slug, ok := s.catalog.ProductByID(id)
	if !ok {
		return models.Product{}, "", fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return p, slug, nil
}

func (s *MemoryStorage) Search(_ context.Context, q browse.Query) []models.Product {
	return browse.Search(s.catalog, q)
}

func (s *MemoryStorage) GetSummary(_ context.Context) models.CatalogSummary {
	return s.catalog.Summary()
}

// ExportRows flattens the catalog into one row per listed product.
func (s *MemoryStorage) ExportRows(_ context.Context) []models.ExportRow {
	var rows []models.ExportRow
	for slug, products := range s.catalog.All() {
		for _, p := range products {
			rows = append(rows, models.ExportRow{
				Category:      slug,
				ID:            p.ID,
				Name:          p.Name,
				Brand:         p.Brand,
				Price:         p.Price,
				OriginalPrice: p.OriginalPrice,
				Rating:        p.Rating,
				ReviewCount:   p.ReviewCount,
				InStock:       p.InStock,
				Delivery:      p.Delivery,
				Image:         p.Image,
			})
		}
	}
	return rows
}

// ExportCSV writes the export rows as CSV with a header line.
func (s *MemoryStorage) ExportCSV(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := s.ExportRows(ctx)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	s.log.Info("catalog exported", zap.Int("rows", len(rows)))
	return nil
}
