// Package export serializes flat records for download. Column order follows
// the record's field order; the first record defines the header row.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sam-arth07/Phermo/internal/inventory"
)

// ErrNoData is returned when an export is attempted on zero records.
var ErrNoData = errors.New("no data to export")

// Field is one named cell of an export record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered set of fields. All records in one export are assumed
// homogeneous: same keys, same order.
type Record []Field

// CSV renders the records. String cells containing a comma, double quote or
// newline are wrapped in double quotes with inner quotes doubled; every other
// value is emitted via its default string conversion, unescaped.
func CSV(records []Record) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, records); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteCSV streams the CSV rendering of records to w.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return ErrNoData
	}

	headers := make([]string, len(records[0]))
	for i, field := range records[0] {
		headers[i] = field.Key
	}
	if _, err := io.WriteString(w, strings.Join(headers, ",")); err != nil {
		return err
	}

	for _, record := range records {
		cells := make([]string, len(record))
		for i, field := range record {
			cells[i] = formatCell(field.Value)
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

func formatCell(value any) string {
	switch v := value.(type) {
	case string:
		return escape(v)
	case inventory.Status:
		return escape(string(v))
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func escape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// JSON renders any record set as indented JSON.
func JSON(data any) (string, error) {
	if data == nil {
		return "", ErrNoData
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return string(encoded), nil
}

// FormatMedicines reshapes medicines into human-readable CSV columns.
func FormatMedicines(medicines []inventory.Medicine) []Record {
	records := make([]Record, 0, len(medicines))
	for _, m := range medicines {
		records = append(records, Record{
			{Key: "ID", Value: m.ID},
			{Key: "Name", Value: m.Name},
			{Key: "Category", Value: m.Category},
			{Key: "Manufacturer", Value: m.Manufacturer},
			{Key: "Batch Number", Value: m.BatchNumber},
			{Key: "Expiry Date", Value: m.ExpiryDate},
			{Key: "Current Stock", Value: m.Stock},
			{Key: "Minimum Stock", Value: m.MinStock},
			{Key: "Price ($)", Value: m.Price},
			{Key: "Supplier", Value: m.Supplier},
			{Key: "Status", Value: statusLabel(m.Status)},
			{Key: "Last Restocked", Value: m.LastRestocked},
			{Key: "Dosage", Value: m.Dosage},
			{Key: "Active Ingredient", Value: m.ActiveIngredient},
			{Key: "Description", Value: m.Description},
		})
	}
	return records
}

// statusLabel turns "low_stock" into "LOW STOCK".
func statusLabel(status inventory.Status) string {
	return strings.ToUpper(strings.ReplaceAll(string(status), "_", " "))
}
