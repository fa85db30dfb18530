package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sam-arth07/Phermo/internal/inventory"
)

func TestFilterAllWithEmptySearchReturnsEverything(t *testing.T) {
	records := inventory.SeedMedicines()

	got := Filter(records, Query{ActiveFilter: FilterAll}, Medicines())

	assert.Equal(t, records, got)
}

func TestFilterByStatus(t *testing.T) {
	records := inventory.SeedMedicines()

	got := Filter(records, Query{ActiveFilter: "low_stock"}, Medicines())

	assert.Len(t, got, 1)
	assert.Equal(t, "MED-002", got[0].ID)
}

func TestSearchIsCaseInsensitiveOrAcrossFields(t *testing.T) {
	records := inventory.SeedMedicines()

	// "pharma" matches PharmaCorp by manufacturer.
	got := Filter(records, Query{ActiveFilter: FilterAll, SearchTerm: "PHARMA"}, Medicines())
	assert.NotEmpty(t, got)
	for _, m := range got {
		assert.Contains(t, m.Manufacturer, "Pharma")
	}

	// Predicates are ANDed.
	got = Filter(records, Query{ActiveFilter: "out_of_stock", SearchTerm: "metformin"}, Medicines())
	assert.Len(t, got, 1)
	assert.Equal(t, "MED-005", got[0].ID)

	got = Filter(records, Query{ActiveFilter: "in_stock", SearchTerm: "metformin"}, Medicines())
	assert.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	records := inventory.SeedMedicines()
	q := Query{ActiveFilter: "in_stock", SearchTerm: "m"}

	once := Filter(records, q, Medicines())
	twice := Filter(once, q, Medicines())

	assert.Equal(t, once, twice)
}

func TestSupplierFacetMatchesStatusOrCategory(t *testing.T) {
	records := inventory.SeedSuppliers()

	byStatus := Filter(records, Query{ActiveFilter: "inactive"}, Suppliers())
	assert.Len(t, byStatus, 1)
	assert.Equal(t, "SUP-004", byStatus[0].ID)

	byCategory := Filter(records, Query{ActiveFilter: "pharmaceuticals"}, Suppliers())
	assert.Len(t, byCategory, 3)
}

func TestSaleSearchMatchesIDOrCustomer(t *testing.T) {
	records := inventory.SeedSales()

	byID := Filter(records, Query{ActiveFilter: FilterAll, SearchTerm: "sale-003"}, Sales())
	assert.Len(t, byID, 1)
	assert.Equal(t, "Mike Wilson", byID[0].Customer)

	byCustomer := Filter(records, Query{ActiveFilter: FilterAll, SearchTerm: "john"}, Sales())
	assert.Len(t, byCustomer, 2) // John Doe and Sarah Johnson
}

func TestFilterPreservesOriginalOrder(t *testing.T) {
	records := inventory.SeedCustomers()

	got := Filter(records, Query{ActiveFilter: "active"}, Customers())

	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"CUST-001", "CUST-002", "CUST-005"}, ids)
}
