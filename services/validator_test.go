package services

import (
	"reflect"
	"testing"

	"github.com/yuvrxj-24/sales-analytics-system/models"
)

func tx(id, date, pid, name string, qty int, price float64, cid, region string) *models.Transaction {
	return &models.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     pid,
		ProductName:   name,
		Quantity:      qty,
		UnitPrice:     price,
		CustomerID:    cid,
		Region:        region,
	}
}

func TestValidatorInvalidRecords(t *testing.T) {
	v := NewValidator(newTestLogger())

	tests := []struct {
		name string
		txn  *models.Transaction
	}{
		{"empty customer id", tx("T1", "2024-01-01", "P1", "Mouse", 5, 200, "", "North")},
		{"customer id wrong prefix", tx("T1", "2024-01-01", "P1", "Mouse", 5, 200, "X1", "North")},
		{"transaction id wrong prefix", tx("X1", "2024-01-01", "P1", "Mouse", 5, 200, "C1", "North")},
		{"product id wrong prefix", tx("T1", "2024-01-01", "Q1", "Mouse", 5, 200, "C1", "North")},
		{"empty region", tx("T1", "2024-01-01", "P1", "Mouse", 5, 200, "C1", "")},
		{"empty date", tx("T1", "", "P1", "Mouse", 5, 200, "C1", "North")},
		{"empty product name", tx("T1", "2024-01-01", "P1", "", 5, 200, "C1", "North")},
		{"zero quantity", tx("T1", "2024-01-01", "P1", "Mouse", 0, 200, "C1", "North")},
		{"negative quantity", tx("T1", "2024-01-01", "P1", "Mouse", -5, 200, "C1", "North")},
		{"zero price", tx("T1", "2024-01-01", "P1", "Mouse", 5, 0, "C1", "North")},
		{"negative price", tx("T1", "2024-01-01", "P1", "Mouse", 5, -1, "C1", "North")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, invalid, summary := v.ValidateAndFilter([]*models.Transaction{tt.txn}, models.FilterOptions{})
			if len(valid) != 0 {
				t.Errorf("record should have been rejected: %+v", tt.txn)
			}
			if invalid != 1 || summary.Invalid != 1 {
				t.Errorf("invalid count: got %d/%d, want 1/1", invalid, summary.Invalid)
			}
		})
	}
}

func TestValidatorKeepsValidRecords(t *testing.T) {
	v := NewValidator(newTestLogger())

	input := []*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),
		tx("T2", "2024-01-01", "P102", "Keyboard", 3, 500, "C2", "South"),
	}
	valid, invalid, summary := v.ValidateAndFilter(input, models.FilterOptions{})

	if len(valid) != 2 || invalid != 0 {
		t.Fatalf("got %d valid / %d invalid, want 2 / 0", len(valid), invalid)
	}
	if summary.TotalInput != 2 || summary.FinalCount != 2 {
		t.Errorf("summary counts: %+v", summary)
	}
	if !reflect.DeepEqual(summary.Regions, []string{"North", "South"}) {
		t.Errorf("Regions: got %v, want [North South]", summary.Regions)
	}
	if !summary.HasAmount || summary.MinAmount != 1000 || summary.MaxAmount != 1500 {
		t.Errorf("amount range: got (%.2f, %.2f, %v), want (1000, 1500, true)",
			summary.MinAmount, summary.MaxAmount, summary.HasAmount)
	}
}

func TestValidatorRegionFilter(t *testing.T) {
	v := NewValidator(newTestLogger())
	region := "North"

	input := []*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),
		tx("T2", "2024-01-01", "P102", "Keyboard", 3, 500, "C2", "South"),
		tx("T3", "2024-01-02", "P103", "Monitor", 2, 800, "C3", "North"),
	}
	valid, _, summary := v.ValidateAndFilter(input, models.FilterOptions{Region: &region})

	if len(valid) != 2 {
		t.Fatalf("got %d records, want 2", len(valid))
	}
	for _, txn := range valid {
		if txn.Region != "North" {
			t.Errorf("unexpected region %q", txn.Region)
		}
	}
	if summary.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion: got %d, want 1", summary.FilteredByRegion)
	}
	if summary.FinalCount != 2 {
		t.Errorf("FinalCount: got %d, want 2", summary.FinalCount)
	}
}

func TestValidatorRegionFilterExactMatch(t *testing.T) {
	// The match is exact: an all-caps stored region never matches a
	// title-cased query. Kept as observed behaviour.
	v := NewValidator(newTestLogger())
	region := "North"

	input := []*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "NORTH"),
	}
	valid, _, summary := v.ValidateAndFilter(input, models.FilterOptions{Region: &region})

	if len(valid) != 0 {
		t.Errorf("exact match should not allow case-insensitive hits")
	}
	if summary.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion: got %d, want 1", summary.FilteredByRegion)
	}
}

func TestValidatorAmountFilter(t *testing.T) {
	v := NewValidator(newTestLogger())

	input := []*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),    // 1000
		tx("T2", "2024-01-01", "P102", "Keyboard", 3, 500, "C2", "South"), // 1500
		tx("T3", "2024-01-02", "P103", "Monitor", 2, 800, "C3", "North"),  // 1600
	}

	min, max := 1000.0, 1500.0
	tests := []struct {
		name    string
		opts    models.FilterOptions
		want    int
		removed int
	}{
		{"min only", models.FilterOptions{MinAmount: &min}, 3, 0},
		{"max only", models.FilterOptions{MaxAmount: &max}, 2, 1},
		{"both bounds inclusive", models.FilterOptions{MinAmount: &min, MaxAmount: &max}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _, summary := v.ValidateAndFilter(input, tt.opts)
			if len(valid) != tt.want {
				t.Errorf("kept %d records, want %d", len(valid), tt.want)
			}
			if summary.FilteredByAmount != tt.removed {
				t.Errorf("FilteredByAmount: got %d, want %d", summary.FilteredByAmount, tt.removed)
			}
		})
	}
}

func TestValidatorFilterStageOrder(t *testing.T) {
	// Region applies first, so the amount stage only sees its survivors.
	v := NewValidator(newTestLogger())
	region := "North"
	max := 1200.0

	input := []*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),    // 1000, kept
		tx("T2", "2024-01-01", "P102", "Keyboard", 3, 500, "C2", "South"), // removed by region
		tx("T3", "2024-01-02", "P103", "Monitor", 2, 800, "C3", "North"),  // 1600, removed by amount
	}
	valid, _, summary := v.ValidateAndFilter(input, models.FilterOptions{Region: &region, MaxAmount: &max})

	if len(valid) != 1 || valid[0].TransactionID != "T1" {
		t.Fatalf("unexpected survivors: %d", len(valid))
	}
	if summary.FilteredByRegion != 1 || summary.FilteredByAmount != 1 {
		t.Errorf("stage counts: region=%d amount=%d, want 1 and 1",
			summary.FilteredByRegion, summary.FilteredByAmount)
	}
	if summary.FinalCount != 1 {
		t.Errorf("FinalCount: got %d, want 1", summary.FinalCount)
	}
}

func TestValidatorMixedInvalidAndFiltered(t *testing.T) {
	v := NewValidator(newTestLogger())
	region := "North"

	input := []*models.Transaction{
		tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North"),
		tx("T2", "2024-01-01", "P102", "Keyboard", 3, 500, "", "South"), // invalid
		tx("T3", "2024-01-02", "P103", "Monitor", 2, 800, "C3", "South"),
	}
	valid, invalid, summary := v.ValidateAndFilter(input, models.FilterOptions{Region: &region})

	if invalid != 1 {
		t.Errorf("invalid: got %d, want 1", invalid)
	}
	if len(valid) != 1 {
		t.Errorf("kept %d, want 1", len(valid))
	}
	// The invalid record never reaches the region stage.
	if summary.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion: got %d, want 1", summary.FilteredByRegion)
	}
	if summary.TotalInput != 3 || summary.FinalCount != 1 {
		t.Errorf("summary: %+v", summary)
	}
}

func TestValidatorDoesNotMutateRecords(t *testing.T) {
	v := NewValidator(newTestLogger())

	original := tx("T1", "2024-01-01", "P101", "Mouse", 5, 200, "C1", "North")
	snapshot := *original

	min := 500.0
	v.ValidateAndFilter([]*models.Transaction{original}, models.FilterOptions{MinAmount: &min})

	if *original != snapshot {
		t.Errorf("transaction mutated during filtering: %+v != %+v", *original, snapshot)
	}
}

func TestValidatorEmptyInput(t *testing.T) {
	v := NewValidator(newTestLogger())

	valid, invalid, summary := v.ValidateAndFilter(nil, models.FilterOptions{})
	if len(valid) != 0 || invalid != 0 {
		t.Errorf("empty input: got %d valid / %d invalid", len(valid), invalid)
	}
	if summary.HasAmount {
		t.Error("HasAmount should be false with no valid records")
	}
	if summary.TotalInput != 0 || summary.FinalCount != 0 {
		t.Errorf("summary: %+v", summary)
	}
}
