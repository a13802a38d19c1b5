package services

import (
	"sort"

	"github.com/yuvrxj-24/sales-analytics-system/models"
)

// The reducers below are pure functions over an ordered transaction
// sequence: they never mutate their input and hold no state across calls,
// so they can be run against the filtered set during processing and again
// against the full validated set for reporting. Grouping goes through
// groupTable, which preserves first-seen key order; ranked views then use a
// stable sort so equal keys keep that order.

// groupTable is an insertion-order-preserving map from string keys to
// accumulator values. Plain Go maps do not iterate in insertion order,
// which the first-seen tie-breaks depend on.
type groupTable[V any] struct {
	keys []string
	vals map[string]*V
}

func newGroupTable[V any]() *groupTable[V] {
	return &groupTable[V]{vals: make(map[string]*V)}
}

// get returns the accumulator for key, creating a zero value on first use.
func (g *groupTable[V]) get(key string) *V {
	if v, ok := g.vals[key]; ok {
		return v
	}
	v := new(V)
	g.vals[key] = v
	g.keys = append(g.keys, key)
	return v
}

// TotalRevenue sums Quantity * UnitPrice over the whole set.
func TotalRevenue(txns []*models.Transaction) float64 {
	var total float64
	for _, t := range txns {
		total += t.Revenue()
	}
	return total
}

// RegionWiseSales groups sales by region, ordered by total sales descending
// with first-seen order on ties. Percentages are shares of the grand total
// over the same set, and 0 when that total is 0.
func RegionWiseSales(txns []*models.Transaction) []models.RegionStat {
	type acc struct {
		sales float64
		count int
	}
	groups := newGroupTable[acc]()
	for _, t := range txns {
		a := groups.get(t.Region)
		a.sales += t.Revenue()
		a.count++
	}

	grandTotal := TotalRevenue(txns)
	stats := make([]models.RegionStat, 0, len(groups.keys))
	for _, region := range groups.keys {
		a := groups.vals[region]
		pct := 0.0
		if grandTotal > 0 {
			pct = a.sales / grandTotal * 100
		}
		stats = append(stats, models.RegionStat{
			Region:           region,
			TotalSales:       a.sales,
			TransactionCount: a.count,
			Percentage:       pct,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})
	return stats
}

// TopSellingProducts returns up to n products ranked by total quantity
// descending, ties keeping first-seen order.
func TopSellingProducts(txns []*models.Transaction, n int) []models.ProductStat {
	stats := productTotals(txns)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})
	if n < 0 {
		n = 0
	}
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// CustomerAnalysis groups purchases by customer, ordered by total spent
// descending with first-seen order on ties. Each entry carries the distinct
// product names bought, sorted lexicographically.
func CustomerAnalysis(txns []*models.Transaction) []models.CustomerStat {
	type acc struct {
		spent    float64
		count    int
		products map[string]struct{}
	}
	groups := newGroupTable[acc]()
	for _, t := range txns {
		a := groups.get(t.CustomerID)
		if a.products == nil {
			a.products = make(map[string]struct{})
		}
		a.spent += t.Revenue()
		a.count++
		a.products[t.ProductName] = struct{}{}
	}

	stats := make([]models.CustomerStat, 0, len(groups.keys))
	for _, cid := range groups.keys {
		a := groups.vals[cid]
		products := make([]string, 0, len(a.products))
		for p := range a.products {
			products = append(products, p)
		}
		sort.Strings(products)

		stats = append(stats, models.CustomerStat{
			CustomerID:    cid,
			TotalSpent:    a.spent,
			PurchaseCount: a.count,
			AvgOrderValue: a.spent / float64(a.count),
			Products:      products,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent > stats[j].TotalSpent
	})
	return stats
}

// DailySalesTrend groups sales by date, ordered ascending by the date
// string. The ordering is chronological only because dates are YYYY-MM-DD;
// a differently formatted date string would sort out of calendar order.
func DailySalesTrend(txns []*models.Transaction) []models.DailyStat {
	type acc struct {
		revenue   float64
		count     int
		customers map[string]struct{}
	}
	groups := newGroupTable[acc]()
	for _, t := range txns {
		a := groups.get(t.Date)
		if a.customers == nil {
			a.customers = make(map[string]struct{})
		}
		a.revenue += t.Revenue()
		a.count++
		a.customers[t.CustomerID] = struct{}{}
	}

	stats := make([]models.DailyStat, 0, len(groups.keys))
	for _, date := range groups.keys {
		a := groups.vals[date]
		stats = append(stats, models.DailyStat{
			Date:             date,
			Revenue:          a.revenue,
			TransactionCount: a.count,
			UniqueCustomers:  len(a.customers),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})
	return stats
}

// PeakSalesDay returns the date with the highest revenue. Among
// equal-revenue days the earliest wins, because the trend is scanned in
// ascending date order and only a strictly greater revenue displaces the
// current peak. An empty set yields the zero PeakDay sentinel.
func PeakSalesDay(txns []*models.Transaction) models.PeakDay {
	var peak models.PeakDay
	for i, d := range DailySalesTrend(txns) {
		if i == 0 || d.Revenue > peak.Revenue {
			peak = models.PeakDay{
				Date:             d.Date,
				Revenue:          d.Revenue,
				TransactionCount: d.TransactionCount,
			}
		}
	}
	return peak
}

// LowPerformingProducts returns the products whose total quantity is
// strictly below threshold, ordered ascending by quantity with first-seen
// order on ties.
func LowPerformingProducts(txns []*models.Transaction, threshold int) []models.ProductStat {
	all := productTotals(txns)
	low := make([]models.ProductStat, 0)
	for _, p := range all {
		if p.TotalQuantity < threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})
	return low
}

// productTotals aggregates quantity and revenue per product name in
// first-seen order.
func productTotals(txns []*models.Transaction) []models.ProductStat {
	type acc struct {
		qty     int
		revenue float64
	}
	groups := newGroupTable[acc]()
	for _, t := range txns {
		a := groups.get(t.ProductName)
		a.qty += t.Quantity
		a.revenue += t.Revenue()
	}

	stats := make([]models.ProductStat, 0, len(groups.keys))
	for _, name := range groups.keys {
		a := groups.vals[name]
		stats = append(stats, models.ProductStat{
			Name:          name,
			TotalQuantity: a.qty,
			TotalRevenue:  a.revenue,
		})
	}
	return stats
}
