package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/drstein77/marketcatalog/internal/browse"
	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/middleware"
	"github.com/drstein77/marketcatalog/internal/models"
	"github.com/drstein77/marketcatalog/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Storage interface for catalog reads
type Storage interface {
	GetProductsByCategory(context.Context, string) []models.Product
	GetCatalog(context.Context) []models.Listing
	GetCategories(context.Context) []models.Category
	ResolveCategory(context.Context, []string) (catalog.Node, []models.CategoryRef, error)
	GetProduct(context.Context, int) (models.Product, string, error)
	Search(context.Context, browse.Query) []models.Product
	GetSummary(context.Context) models.CatalogSummary
	ExportCSV(context.Context, io.Writer) error
}

// Log interface for logging
type Log interface {
	Info(string, ...zapcore.Field)
	Error(string, ...zapcore.Field)
}

// BaseController struct for handling requests
type BaseController struct {
	storage     Storage
	log         Log
	serviceName string
	exportFile  string
}

// NewBaseController creates a new BaseController instance
func NewBaseController(storage Storage, log Log, serviceName, exportFile string) *BaseController {
	return &BaseController{
		storage:     storage,
		log:         log,
		serviceName: serviceName,
		exportFile:  exportFile,
	}
}

// Route sets up the routes for the BaseController
func (h *BaseController) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(h.log))
	r.Use(middleware.PrometheusMetrics(h.serviceName))

	r.Get("/ping", h.ping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chimw.Compress(5, "application/json"))
			r.Get("/categories", h.getCategories)
			r.Get("/categories/*", h.resolveCategory)
			r.Get("/catalog", h.getCatalog)
			r.Get("/catalog/{slug}", h.getProductsByCategory)
			r.Get("/products/{id}", h.getProduct)
			r.Get("/search", h.search)
			r.Get("/summary", h.getSummary)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.ArchiveTypeMiddleware)
			r.Use(middleware.CreateArchiveMiddleware(h.exportFile))
			r.Get("/export", h.export)
		})
	})

	return r
}

type categoryListing struct {
	Category   models.Category      `json:"category"`
	Breadcrumb []models.CategoryRef `json:"breadcrumb"`
	Children   []models.Category    `json:"children"`
}

type categoryProducts struct {
	Category   models.Category      `json:"category"`
	Breadcrumb []models.CategoryRef `json:"breadcrumb"`
	Products   []models.Product     `json:"products"`
}

type productResponse struct {
	Product  models.Product `json:"product"`
	Category string         `json:"category"`
}

func (h *BaseController) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "pong")
}

func (h *BaseController) getCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.storage.GetCategories(r.Context()))
}

// resolveCategory shows the children of a parent category, or the products of
// a leaf filtered and sorted by the q, price and sort query parameters.
func (h *BaseController) resolveCategory(w http.ResponseWriter, r *http.Request) {
	var path []string
	for _, part := range strings.Split(chi.URLParam(r, "*"), "/") {
		if part != "" {
			path = append(path, part)
		}
	}

	node, crumbs, err := h.storage.ResolveCategory(r.Context(), path)
	if err != nil {
		h.writeError(w, err)
		return
	}

	category := node.Category
	children := category.Children
	category.Children = nil

	if !node.Leaf {
		h.writeJSON(w, http.StatusOK, categoryListing{Category: category, Breadcrumb: crumbs, Children: children})
		return
	}

	q, err := parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	products := browse.Apply(h.storage.GetProductsByCategory(r.Context(), category.Slug), q)
	h.writeJSON(w, http.StatusOK, categoryProducts{Category: category, Breadcrumb: crumbs, Products: products})
}

func (h *BaseController) getCatalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.storage.GetCatalog(r.Context()))
}

// getProductsByCategory never fails: unknown slugs answer with an empty list.
func (h *BaseController) getProductsByCategory(w http.ResponseWriter, r *http.Request) {
	products := h.storage.GetProductsByCategory(r.Context(), chi.URLParam(r, "slug"))
	h.writeJSON(w, http.StatusOK, products)
}

func (h *BaseController) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "product id must be an integer", http.StatusBadRequest)
		return
	}

	product, slug, err := h.storage.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, productResponse{Product: product, Category: slug})
}

func (h *BaseController) search(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.storage.Search(r.Context(), q))
}

func (h *BaseController) getSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.storage.GetSummary(r.Context()))
}

func (h *BaseController) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	if err := h.storage.ExportCSV(r.Context(), w); err != nil {
		h.log.Error("Failed to export catalog", zap.Error(err))
		http.Error(w, fmt.Sprintf("Failed to export catalog: %v", err), http.StatusInternalServerError)
	}
}

func parseQuery(r *http.Request) (browse.Query, error) {
	values := r.URL.Query()
	q := browse.Query{
		Search:    values.Get("q"),
		PriceBand: values.Get("price"),
		SortBy:    values.Get("sort"),
	}
	return q, q.Validate()
}

func (h *BaseController) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *BaseController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.log.Error("Request failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
