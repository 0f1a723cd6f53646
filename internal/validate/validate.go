// Package validate checks the authored catalog data at load time. Lookups
// never depend on it; the app only reports what it finds.
package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/drstein77/marketcatalog/internal/catalog"
)

// Severity of an Issue.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Issue is a single data-quality finding.
type Issue struct {
	Severity  string
	Category  string
	ProductID int
	Field     string
	Message   string
}

func (i Issue) Error() string {
	if i.ProductID != 0 {
		return fmt.Sprintf("%s: %s/%d: %s %s", i.Severity, i.Category, i.ProductID, i.Field, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Category, i.Message)
}

// Report collects the issues found by Run.
type Report struct {
	Products int
	Issues   []Issue
}

// Errors returns only issues of error severity.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns only issues of warning severity.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Err joins every error-severity issue, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, i := range r.Errors() {
		errs = append(errs, i)
	}
	return errors.Join(errs...)
}

func (r *Report) filter(severity string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == severity {
			out = append(out, i)
		}
	}
	return out
}

func (r *Report) add(severity, category string, productID int, field, msg string) {
	r.Issues = append(r.Issues, Issue{
		Severity:  severity,
		Category:  category,
		ProductID: productID,
		Field:     field,
		Message:   msg,
	})
}

// Run validates every product of c and cross-checks c against the taxonomy t.
// A nil taxonomy skips the cross-checks.
func Run(c *catalog.Catalog, t *catalog.Taxonomy) *Report {
	r := &Report{}
	owner := make(map[int]string)

	for slug, products := range c.All() {
		if slug == "" {
			r.add(SeverityError, slug, 0, "", "empty category slug")
		}
		for _, p := range products {
			r.Products++

			if err := validate.Struct(p); err != nil {
				var verrs validator.ValidationErrors
				if !errors.As(err, &verrs) {
					r.add(SeverityError, slug, p.ID, "", err.Error())
					continue
				}
				for _, fe := range verrs {
					r.add(SeverityError, slug, p.ID, fe.Field(), message(fe))
				}
			}

			if prev, dup := owner[p.ID]; dup {
				r.add(SeverityError, slug, p.ID, "ID", fmt.Sprintf("already used in %q", prev))
				continue
			}
			owner[p.ID] = slug
		}
	}

	if t != nil {
		checkTaxonomy(r, c, t)
	}

	return r
}

func checkTaxonomy(r *Report, c *catalog.Catalog, t *catalog.Taxonomy) {
	seen := make(map[string]bool)
	for _, slug := range t.AllSlugs() {
		if seen[slug] {
			r.add(SeverityError, slug, 0, "", "duplicate taxonomy slug")
		}
		seen[slug] = true
	}

	leaves := make(map[string]bool)
	for _, slug := range t.LeafSlugs() {
		leaves[slug] = true
	}

	for _, slug := range c.Slugs() {
		switch {
		case !seen[slug]:
			r.add(SeverityWarning, slug, 0, "", "category is not in the taxonomy")
		case !leaves[slug]:
			r.add(SeverityWarning, slug, 0, "", "products listed under a category that shows subcategories")
		}
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
