// Package browse filters and orders product listings for the storefront.
// It works on copies returned by the catalog and never changes the catalog.
package browse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/models"
)

// Price bands.
const (
	PriceAll      = "all"
	PriceUnder50  = "under50"
	Price50to100  = "50to100"
	Price100to200 = "100to200"
	Price200Plus  = "200plus"
)

// Sort orders. SortFeatured keeps the authored order.
const (
	SortFeatured     = "featured"
	SortPriceLowHigh = "priceLowHigh"
	SortPriceHighLow = "priceHighLow"
	SortRating       = "rating"
)

// unratedScore is used in place of a zero rating when sorting by rating.
const unratedScore = 4.0

var validate = validator.New(validator.WithRequiredStructEnabled())

// Query describes a listing request. Empty fields mean no filtering and the
// featured order.
type Query struct {
	Search    string `json:"q"`
	PriceBand string `json:"price" validate:"omitempty,oneof=all under50 50to100 100to200 200plus"`
	SortBy    string `json:"sort" validate:"omitempty,oneof=featured priceLowHigh priceHighLow rating"`
}

// Validate rejects unknown price bands and sort orders.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s %q: must be one of %s", fe.Field(), fe.Value(), fe.Param())
		}
		return err
	}
	return nil
}

// Apply filters by name and price band, then sorts. The input slice is not
// modified.
func Apply(products []models.Product, q Query) []models.Product {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if !inBand(p.Price, q.PriceBand) {
			continue
		}
		out = append(out, p)
	}

	switch q.SortBy {
	case SortPriceLowHigh:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmpInt64(a.Price, b.Price)
		})
	case SortPriceHighLow:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmpInt64(b.Price, a.Price)
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			ra, rb := score(a.Rating), score(b.Rating)
			switch {
			case ra > rb:
				return -1
			case ra < rb:
				return 1
			}
			return 0
		})
	}

	return out
}

// Search looks for term in product names across the whole catalog. Results
// follow catalog order; a product id is reported once.
func Search(c *catalog.Catalog, q Query) []models.Product {
	if strings.TrimSpace(q.Search) == "" {
		return []models.Product{}
	}

	seen := make(map[int]struct{})
	var all []models.Product
	for _, products := range c.All() {
		for _, p := range products {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			all = append(all, p)
		}
	}
	return Apply(all, q)
}

func inBand(price int64, band string) bool {
	switch band {
	case PriceUnder50:
		return price < 50
	case Price50to100:
		return price >= 50 && price < 100
	case Price100to200:
		return price >= 100 && price < 200
	case Price200Plus:
		return price >= 200
	default:
		return true
	}
}

func score(r float64) float64 {
	if r == 0 {
		return unratedScore
	}
	return r
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
