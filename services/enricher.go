package services

import (
	"strconv"
	"strings"

	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

// Enricher attaches catalog metadata to validated transactions. The source
// transactions are copied, never mutated.
type Enricher struct {
	logger *utils.Logger
}

// NewEnricher creates an Enricher with the given logger.
func NewEnricher(logger *utils.Logger) *Enricher {
	return &Enricher{logger: logger}
}

// Enrich produces an enriched copy of every transaction. A transaction
// matches when its ProductID is "P" followed by digits (prefix checked
// case-insensitively) and that number exists in the catalog mapping;
// otherwise the copy carries empty catalog fields and Matched=false.
func (e *Enricher) Enrich(txns []*models.Transaction, catalog map[int]models.CatalogProduct) []*models.EnrichedTransaction {
	enriched := make([]*models.EnrichedTransaction, 0, len(txns))
	matched := 0

	for _, t := range txns {
		et := &models.EnrichedTransaction{Transaction: *t}

		if id, ok := numericProductID(t.ProductID); ok {
			if p, found := catalog[id]; found {
				et.Category = p.Category
				et.Brand = p.Brand
				et.Rating = p.Rating
				et.Matched = true
				matched++
			}
		}

		enriched = append(enriched, et)
	}

	e.logger.Info("[enricher] Enriched %d/%d transactions (%.1f%%)",
		matched, len(enriched), MatchRate(enriched))
	return enriched
}

// MatchRate is the percentage of enriched transactions that found a catalog
// record, 0 for an empty set.
func MatchRate(enriched []*models.EnrichedTransaction) float64 {
	if len(enriched) == 0 {
		return 0
	}
	matched := 0
	for _, et := range enriched {
		if et.Matched {
			matched++
		}
	}
	return float64(matched) / float64(len(enriched)) * 100
}

// numericProductID extracts the catalog ID from a ProductID like "P101".
// The part after the prefix must be digits only.
func numericProductID(productID string) (int, bool) {
	if !strings.HasPrefix(strings.ToUpper(productID), "P") {
		return 0, false
	}
	digits := productID[1:]
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return id, true
}
