package services

import (
	"testing"

	"github.com/yuvrxj-24/sales-analytics-system/models"
)

func sampleCatalog() map[int]models.CatalogProduct {
	return map[int]models.CatalogProduct{
		101: {ID: 101, Title: "Wireless Mouse", Category: "electronics", Brand: "Logi", Rating: 4.5},
		102: {ID: 102, Title: "Keyboard", Category: "electronics", Brand: "Das", Rating: 4.8},
	}
}

func TestEnricherMatch(t *testing.T) {
	e := NewEnricher(newTestLogger())

	enriched := e.Enrich([]*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),
	}, sampleCatalog())

	if len(enriched) != 1 {
		t.Fatalf("got %d records, want 1", len(enriched))
	}
	et := enriched[0]
	if !et.Matched {
		t.Fatal("expected a catalog match for P101")
	}
	if et.Category != "electronics" || et.Brand != "Logi" || et.Rating != 4.5 {
		t.Errorf("catalog fields: %+v", et)
	}
}

func TestEnricherNoMatch(t *testing.T) {
	e := NewEnricher(newTestLogger())

	tests := []struct {
		name string
		pid  string
	}{
		{"unknown id", "P999"},
		{"no digits", "P"},
		{"non-digit suffix", "PX1"},
		{"signed digits", "P+101"},
		{"wrong prefix", "101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enriched := e.Enrich([]*models.Transaction{
				tx("T1", "2024-01-01", tt.pid, "Mouse", 5, 200, "C1", "North"),
			}, sampleCatalog())

			et := enriched[0]
			if et.Matched {
				t.Errorf("ProductID %q should not match", tt.pid)
			}
			if et.Category != "" || et.Brand != "" || et.Rating != 0 {
				t.Errorf("unmatched record should carry empty catalog fields: %+v", et)
			}
		})
	}
}

func TestEnricherLowercasePrefix(t *testing.T) {
	e := NewEnricher(newTestLogger())

	enriched := e.Enrich([]*models.Transaction{
		tx("T1", "2024-01-01", "p101", "Mouse", 5, 200, "C1", "North"),
	}, sampleCatalog())

	if !enriched[0].Matched {
		t.Error("prefix check should be case-insensitive")
	}
}

func TestEnricherDoesNotMutateSource(t *testing.T) {
	e := NewEnricher(newTestLogger())

	original := tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North")
	snapshot := *original

	e.Enrich([]*models.Transaction{original}, sampleCatalog())

	if *original != snapshot {
		t.Errorf("source transaction mutated: %+v != %+v", *original, snapshot)
	}
}

func TestEnricherEmptyCatalog(t *testing.T) {
	e := NewEnricher(newTestLogger())

	enriched := e.Enrich([]*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),
	}, map[int]models.CatalogProduct{})

	if enriched[0].Matched {
		t.Error("empty catalog should match nothing")
	}
}

func TestMatchRate(t *testing.T) {
	e := NewEnricher(newTestLogger())

	enriched := e.Enrich([]*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),
		tx("T2", "2024-01-01", "P999", "Widget", 1, 100, "C2", "South"),
	}, sampleCatalog())

	if got := MatchRate(enriched); got != 50 {
		t.Errorf("MatchRate: got %.2f, want 50", got)
	}
	if got := MatchRate(nil); got != 0 {
		t.Errorf("MatchRate(nil): got %.2f, want 0", got)
	}
}
