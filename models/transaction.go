package models

// Transaction is a single parsed sales record. It is never mutated after
// parsing; anything derived from it (revenue, filter amounts) is computed
// on demand or held alongside the record, never written back onto it.
type Transaction struct {
	TransactionID string
	Date          string // stored verbatim, expected YYYY-MM-DD
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     float64
	CustomerID    string
	Region        string
}

// Revenue is the derived transaction amount.
func (t *Transaction) Revenue() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// FilterOptions holds the optional narrowing parameters for validation.
// A nil field means the corresponding filter is not applied. Region is
// matched by exact string equality; callers normalize their query to
// per-word title case before passing it in.
type FilterOptions struct {
	Region    *string
	MinAmount *float64
	MaxAmount *float64
}

// ValidationSummary reports what happened during one validate-and-filter
// pass. Regions and the amount range are informational, collected from the
// valid set in the same pass.
type ValidationSummary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int

	Regions   []string // distinct regions among valid records, sorted
	MinAmount float64  // smallest valid transaction amount
	MaxAmount float64  // largest valid transaction amount
	HasAmount bool     // false when there were no valid records
}

// CatalogProduct is one product record from the external catalog API.
type CatalogProduct struct {
	ID       int
	Title    string
	Category string
	Brand    string
	Price    float64
	Rating   float64
}

// EnrichedTransaction is a copy of a validated Transaction with the catalog
// fields attached. Matched reports whether a catalog record was found for
// the transaction's ProductID.
type EnrichedTransaction struct {
	Transaction

	Category string
	Brand    string
	Rating   float64
	Matched  bool
}
