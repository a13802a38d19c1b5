package models

// RegionStat summarises sales for one region. Percentage is this region's
// share of the grand total over the same transaction set.
type RegionStat struct {
	Region           string
	TotalSales       float64
	TransactionCount int
	Percentage       float64
}

// ProductStat summarises sales for one product name.
type ProductStat struct {
	Name          string
	TotalQuantity int
	TotalRevenue  float64
}

// CustomerStat summarises one customer's purchases. Products holds the
// distinct product names bought, sorted lexicographically.
type CustomerStat struct {
	CustomerID    string
	TotalSpent    float64
	PurchaseCount int
	AvgOrderValue float64
	Products      []string
}

// DailyStat summarises one day's sales.
type DailyStat struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// PeakDay is the single highest-revenue day. A zero PeakDay (empty date,
// zero revenue and count) is the sentinel for an empty transaction set.
type PeakDay struct {
	Date             string
	Revenue          float64
	TransactionCount int
}
