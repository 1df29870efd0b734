package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []models.BillRecord {
	return []models.BillRecord{
		{
			Vendor:      "ACME Power & Light",
			Amount:      "142.50",
			Date:        "04/05/2023",
			Category:    models.CategoryUtilities,
			Description: "Electricity charges for March",
		},
		{
			Vendor:      "Sharma General Store",
			Amount:      "Rs. 1,250",
			Date:        "12/08/2023",
			Category:    models.CategoryShopping,
			Description: "Household purchase",
		},
	}
}

func TestWriteRecordsAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.WriteRecords(sampleRecords(), path))

	rows, err := w.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.NotEmpty(t, rows[0].ID)
	assert.NotEmpty(t, rows[1].ID)
	assert.NotEqual(t, rows[0].ID, rows[1].ID, "each row gets its own identifier")

	assert.Equal(t, "ACME Power & Light", rows[0].Vendor)
	assert.Equal(t, "142.50", rows[0].Amount)
	assert.Equal(t, "142.50", rows[0].NormalizedAmount)
	assert.Equal(t, "04/05/2023", rows[0].Date)
	assert.Equal(t, models.CategoryUtilities, rows[0].Category)

	assert.Equal(t, "Rs. 1,250", rows[1].Amount, "amount column keeps the extracted form")
	assert.Equal(t, "1250.00", rows[1].NormalizedAmount, "normalized column is a plain decimal")
}

func TestWriteRecordsCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "ledger.csv")
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.WriteRecords(sampleRecords(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteRecordsNil(t *testing.T) {
	w := NewWriter(',', &logging.MockLogger{})
	assert.Error(t, w.WriteRecords(nil, filepath.Join(t.TempDir(), "ledger.csv")))
}

func TestWriteRecordsEmptySlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.WriteRecords([]models.BillRecord{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "ID,Vendor,Amount"), "header row is still written")
}

func TestWriteRecordsCustomDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	w := NewWriter(';', &logging.MockLogger{})

	require.NoError(t, w.WriteRecords(sampleRecords()[:1], path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID;Vendor;Amount")

	rows, err := w.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ACME Power & Light", rows[0].Vendor)
}

func TestWriteRecordsUnparseableAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	w := NewWriter(',', &logging.MockLogger{})

	records := []models.BillRecord{
		{Vendor: "V", Amount: "", Date: "04/05/2023", Category: models.CategoryOthers},
	}
	require.NoError(t, w.WriteRecords(records, path))

	rows, err := w.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].NormalizedAmount)
}
