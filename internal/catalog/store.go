// Package catalog holds the remote-backed paginated product collection with
// search and category cursors.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sam-arth07/Phermo/internal/backend"
)

const (
	msgFetchProducts   = "Failed to fetch products"
	msgAddProduct      = "Failed to add product"
	msgUpdateProduct   = "Failed to update product"
	msgDeleteProduct   = "Failed to delete product"
	msgFetchCategories = "Failed to fetch categories"
)

// CatalogBackend is the slice of the backend API this store needs.
type CatalogBackend interface {
	Products(ctx context.Context, limit, skip int) (backend.ProductPage, error)
	SearchProducts(ctx context.Context, query string, limit, skip int) (backend.ProductPage, error)
	AddProduct(ctx context.Context, product backend.Product) (backend.Product, error)
	UpdateProduct(ctx context.Context, id int, product backend.Product) (backend.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]string, error)
}

// State is a snapshot of the catalog page. Items never exceeds PageSize;
// Page resets to 1 whenever SearchTerm or SelectedCategory changes.
type State struct {
	Items            []backend.Product
	Categories       []string
	Total            int
	Page             int
	PageSize         int
	SearchTerm       string
	SelectedCategory string
	IsLoading        bool
	Error            string
}

type Store struct {
	mu      sync.Mutex
	state   State
	backend CatalogBackend
	log     zerolog.Logger

	// generation stamps each issued fetch; responses from superseded fetches
	// are discarded so a slow early request cannot overwrite fresher data.
	generation uint64
}

func New(catalog CatalogBackend, pageSize int, log zerolog.Logger) *Store {
	return &Store{
		state: State{
			Page:             1,
			PageSize:         pageSize,
			SelectedCategory: "all",
		},
		backend: catalog,
		log:     log.With().Str("store", "catalog").Logger(),
	}
}

// State returns a copy of the current catalog state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	state.Items = append([]backend.Product(nil), s.state.Items...)
	state.Categories = append([]string(nil), s.state.Categories...)
	return state
}

// SetSearchTerm updates the free-text search cursor and resets to the first
// page.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchTerm = term
	s.state.Page = 1
}

// SetSelectedCategory updates the category facet and resets to the first
// page.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCategory = category
	s.state.Page = 1
}

// SetPage moves the page cursor. Filters are untouched.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page = page
}

// Reset clears the fetched collection and returns to the first page.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = nil
	s.state.Total = 0
	s.state.Page = 1
}

// Fetch loads the page addressed by the current cursors, choosing the search
// endpoint when a search term is set. The result replaces Items and Total
// wholesale. Stale responses (superseded by a later Fetch) are discarded.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	term := s.state.SearchTerm
	limit := s.state.PageSize
	skip := (s.state.Page - 1) * s.state.PageSize
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	var page backend.ProductPage
	var err error
	if term != "" {
		page, err = s.backend.SearchProducts(ctx, term, limit, skip)
	} else {
		page, err = s.backend.Products(ctx, limit, skip)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.log.Debug().Uint64("generation", gen).Msg("discarding stale fetch")
		return nil
	}

	s.state.IsLoading = false
	if err != nil {
		s.state.Error = msgFetchProducts
		return fmt.Errorf("fetch products: %w", err)
	}

	s.state.Items = page.Products
	s.state.Total = page.Total
	return nil
}

// FetchCategories replaces the category list on success.
func (s *Store) FetchCategories(ctx context.Context) error {
	categories, err := s.backend.Categories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Error = msgFetchCategories
		return fmt.Errorf("fetch categories: %w", err)
	}
	s.state.Categories = categories
	return nil
}

// Add issues the mutation and, only on success, prepends the created product
// and bumps the total.
func (s *Store) Add(ctx context.Context, product backend.Product) (backend.Product, error) {
	s.setLoading()

	created, err := s.backend.AddProduct(ctx, product)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	if err != nil {
		s.state.Error = msgAddProduct
		return backend.Product{}, fmt.Errorf("add product: %w", err)
	}

	s.state.Items = append([]backend.Product{created}, s.state.Items...)
	s.state.Total++
	return created, nil
}

// Update issues the mutation and, only on success, replaces the matching item
// in place.
func (s *Store) Update(ctx context.Context, id int, product backend.Product) (backend.Product, error) {
	s.setLoading()

	updated, err := s.backend.UpdateProduct(ctx, id, product)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	if err != nil {
		s.state.Error = msgUpdateProduct
		return backend.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}

	for i, item := range s.state.Items {
		if item.ID == updated.ID {
			s.state.Items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete issues the mutation and, only on success, filters the item out and
// decrements the total.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.setLoading()

	err := s.backend.DeleteProduct(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	if err != nil {
		s.state.Error = msgDeleteProduct
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	filtered := s.state.Items[:0]
	for _, item := range s.state.Items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.state.Items = filtered
	s.state.Total--
	return nil
}

// ClearError dismisses the current error banner.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

func (s *Store) setLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = true
	s.state.Error = ""
}
