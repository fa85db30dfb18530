// Package view derives the filtered subset a list page shows: a facet filter
// ANDed with a free-text search, both pure functions of the record list.
package view

import (
	"strings"

	"github.com/sam-arth07/Phermo/internal/inventory"
)

// FilterAll is the facet sentinel that matches every record.
const FilterAll = "all"

// Query is the pair of predicates a page applies.
type Query struct {
	ActiveFilter string
	SearchTerm   string
}

// Spec adapts one record type to the filter: which values the facet matches
// against and which fields the search scans.
type Spec[T any] struct {
	FacetValues  func(T) []string
	SearchFields func(T) []string
}

// Filter returns the records matching both predicates, in input order. It is
// idempotent: filtering a filtered result with the same query is a no-op.
func Filter[T any](records []T, q Query, spec Spec[T]) []T {
	needle := strings.ToLower(q.SearchTerm)

	out := make([]T, 0, len(records))
	for _, record := range records {
		if !matchesFacet(record, q.ActiveFilter, spec) {
			continue
		}
		if !matchesSearch(record, needle, spec) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesFacet[T any](record T, facet string, spec Spec[T]) bool {
	if facet == "" || facet == FilterAll {
		return true
	}
	for _, value := range spec.FacetValues(record) {
		if value == facet {
			return true
		}
	}
	return false
}

func matchesSearch[T any](record T, needle string, spec Spec[T]) bool {
	if needle == "" {
		return true
	}
	for _, field := range spec.SearchFields(record) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Medicines searches name, manufacturer and category; the facet is the
// derived stock status.
func Medicines() Spec[inventory.Medicine] {
	return Spec[inventory.Medicine]{
		FacetValues: func(m inventory.Medicine) []string {
			return []string{string(m.Status)}
		},
		SearchFields: func(m inventory.Medicine) []string {
			return []string{m.Name, m.Manufacturer, m.Category}
		},
	}
}

// Customers searches name and email; the facet is the customer status.
func Customers() Spec[inventory.Customer] {
	return Spec[inventory.Customer]{
		FacetValues: func(c inventory.Customer) []string {
			return []string{string(c.Status)}
		},
		SearchFields: func(c inventory.Customer) []string {
			return []string{c.Name, c.Email}
		},
	}
}

// Suppliers match the facet against status or category.
func Suppliers() Spec[inventory.Supplier] {
	return Spec[inventory.Supplier]{
		FacetValues: func(s inventory.Supplier) []string {
			return []string{string(s.Status), s.Category}
		},
		SearchFields: func(s inventory.Supplier) []string {
			return []string{s.Name, s.Email}
		},
	}
}

// Sales searches customer name and sale id; the facet is the sale status.
func Sales() Spec[inventory.Sale] {
	return Spec[inventory.Sale]{
		FacetValues: func(s inventory.Sale) []string {
			return []string{string(s.Status)}
		},
		SearchFields: func(s inventory.Sale) []string {
			return []string{s.Customer, s.ID}
		},
	}
}

// Purchases searches supplier name and purchase id; the facet is the
// purchase status.
func Purchases() Spec[inventory.Purchase] {
	return Spec[inventory.Purchase]{
		FacetValues: func(p inventory.Purchase) []string {
			return []string{string(p.Status)}
		},
		SearchFields: func(p inventory.Purchase) []string {
			return []string{p.Supplier, p.ID}
		},
	}
}
