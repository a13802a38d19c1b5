package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/yuvrxj-24/sales-analytics-system/models"
)

// enrichedHeader is the fixed 12-column layout of the enriched snapshot:
// the original record fields followed by the catalog columns.
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// EnrichedWriter writes enriched transactions to a pipe-delimited file.
// It is safe for concurrent use.
type EnrichedWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewEnrichedWriter creates (or truncates) the file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewEnrichedWriter(path string) (*EnrichedWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("enriched: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("enriched: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = '|'

	if err := w.Write(enrichedHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("enriched: write header: %w", err)
	}
	w.Flush()

	return &EnrichedWriter{file: f, writer: w}, nil
}

// WriteEnriched appends one row per enriched transaction. Unmatched records
// carry empty strings in the three catalog columns.
func (e *EnrichedWriter) WriteEnriched(txns []*models.EnrichedTransaction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, t := range txns {
		category, brand, rating := "", "", ""
		if t.Matched {
			category = t.Category
			brand = t.Brand
			rating = strconv.FormatFloat(t.Rating, 'f', -1, 64)
		}

		row := []string{
			t.TransactionID,
			t.Date,
			t.ProductID,
			t.ProductName,
			strconv.Itoa(t.Quantity),
			strconv.FormatFloat(t.UnitPrice, 'f', -1, 64),
			t.CustomerID,
			t.Region,
			category,
			brand,
			rating,
			strconv.FormatBool(t.Matched),
		}
		if err := e.writer.Write(row); err != nil {
			return fmt.Errorf("enriched: write row: %w", err)
		}
	}

	e.writer.Flush()
	return e.writer.Error()
}

// Close flushes and closes the underlying file.
func (e *EnrichedWriter) Close() error {
	e.writer.Flush()
	return e.file.Close()
}
