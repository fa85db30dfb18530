package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-arth07/Phermo/internal/inventory"
)

func TestCSVEmptyData(t *testing.T) {
	_, err := CSV(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = CSV([]Record{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCSVEscaping(t *testing.T) {
	records := []Record{
		{
			{Key: "Name", Value: "A,B"},
			{Key: "Stock", Value: 5},
		},
	}

	got, err := CSV(records)
	require.NoError(t, err)

	assert.Equal(t, "Name,Stock\n\"A,B\",5", got)

	// A standard CSV parser recovers the original values.
	parsed, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "Stock"}, {"A,B", "5"}}, parsed)
}

func TestCSVQuoteAndNewlineEscaping(t *testing.T) {
	records := []Record{
		{
			{Key: "Description", Value: `say "hi"` + "\nthen leave"},
			{Key: "Price", Value: 12.5},
		},
	}

	got, err := CSV(records)
	require.NoError(t, err)

	parsed, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "say \"hi\"\nthen leave", parsed[1][0])
	assert.Equal(t, "12.5", parsed[1][1])
}

func TestFormatMedicines(t *testing.T) {
	meds := []inventory.Medicine{
		{
			ID: "MED-001", Name: "Paracetamol 500mg", Category: "Pain Relief",
			Status: inventory.StatusLowStock, Stock: 25, MinStock: 30, Price: 8.75,
		},
	}

	records := FormatMedicines(meds)
	require.Len(t, records, 1)

	assert.Equal(t, "ID", records[0][0].Key)
	assert.Equal(t, "MED-001", records[0][0].Value)

	byKey := map[string]any{}
	for _, field := range records[0] {
		byKey[field.Key] = field.Value
	}
	assert.Equal(t, "LOW STOCK", byKey["Status"])
	assert.Equal(t, 25, byKey["Current Stock"])
	assert.Equal(t, 8.75, byKey["Price ($)"])
}

func TestSaveCSV(t *testing.T) {
	saver := &memSaver{}
	records := FormatMedicines(inventory.SeedMedicines())

	require.NoError(t, SaveCSV(saver, records, "medicines.csv"))

	assert.Equal(t, "medicines.csv", saver.filename)
	assert.Equal(t, "text/csv;charset=utf-8", saver.contentType)

	lines := strings.Split(string(saver.data), "\n")
	assert.Len(t, lines, 6) // header plus five records
	assert.True(t, strings.HasPrefix(lines[0], "ID,Name,Category"))
}

func TestJSONExport(t *testing.T) {
	_, err := JSON(nil)
	assert.ErrorIs(t, err, ErrNoData)

	got, err := JSON(map[string]int{"stock": 5})
	require.NoError(t, err)
	assert.Contains(t, got, `"stock": 5`)
}

type memSaver struct {
	filename    string
	contentType string
	data        []byte
}

func (m *memSaver) Save(filename, contentType string, data []byte) error {
	m.filename = filename
	m.contentType = contentType
	m.data = data
	return nil
}
