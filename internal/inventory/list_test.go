package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, "MED-004", NextID("MED", []string{"MED-001", "MED-003"}))
	assert.Equal(t, "MED-001", NextID("MED", nil))
	assert.Equal(t, "CUST-100", NextID("CUST", []string{"CUST-099"}))

	// Malformed ids are skipped, not fatal.
	assert.Equal(t, "SUP-002", NextID("SUP", []string{"SUP-001", "garbage", "SUP-abc"}))
}

func fixedTime(list *List[Medicine], at time.Time) {
	list.now = func() time.Time { return at }
}

func TestMedicineAdd(t *testing.T) {
	list := NewMedicineList(SeedMedicines())
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	fixedTime(list, today)

	created, err := list.Add(Medicine{
		Name:         "Aspirin 100mg",
		Category:     "Pain Relief",
		Manufacturer: "PharmaCorp",
		Stock:        200,
		MinStock:     40,
		ExpiryDate:   "2026-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "MED-006", created.ID)
	assert.Equal(t, StatusInStock, created.Status)
	assert.Equal(t, "2024-06-15", created.LastRestocked)
	assert.Equal(t, 6, list.Len())
}

func TestMedicineAddValidation(t *testing.T) {
	list := NewMedicineList(SeedMedicines())

	_, err := list.Add(Medicine{Name: "Nameless", Category: "", Manufacturer: ""})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"category", "manufacturer"}, validationErr.Fields)

	// Nothing was appended.
	assert.Equal(t, 5, list.Len())
}

func TestMedicineUpdateRecomputesStatus(t *testing.T) {
	list := NewMedicineList(SeedMedicines())
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	fixedTime(list, today)

	med, ok := list.Get("MED-001")
	require.True(t, ok)
	med.Stock = 0

	updated, err := list.Update("MED-001", med)
	require.NoError(t, err)
	assert.Equal(t, StatusOutOfStock, updated.Status)

	stored, ok := list.Get("MED-001")
	require.True(t, ok)
	assert.Equal(t, StatusOutOfStock, stored.Status)
}

func TestUpdateMissingRecord(t *testing.T) {
	list := NewMedicineList(SeedMedicines())

	med, _ := list.Get("MED-001")
	_, err := list.Update("MED-999", med)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	list := NewMedicineList(SeedMedicines())

	deleted, err := list.Delete("MED-001", func(string) bool { return false })
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 5, list.Len())

	deleted, err = list.Delete("MED-001", func(string) bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 4, list.Len())

	_, ok := list.Get("MED-001")
	assert.False(t, ok)
}

func TestDeleteNilConfirmer(t *testing.T) {
	list := NewMedicineList(SeedMedicines())

	deleted, err := list.Delete("MED-001", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 5, list.Len())
}

func TestIDGenerationAfterDelete(t *testing.T) {
	// max+1, not count+1: deleting a middle record must not reuse its id.
	list := NewMedicineList(SeedMedicines())
	_, err := list.Delete("MED-002", func(string) bool { return true })
	require.NoError(t, err)

	created, err := list.Add(Medicine{Name: "X", Category: "Y", Manufacturer: "Z"})
	require.NoError(t, err)
	assert.Equal(t, "MED-006", created.ID)
}
