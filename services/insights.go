package services

import (
	"fmt"
	"strings"

	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

// InsightPrinter renders the analytics views on the console after a
// processing run. The report writer produces the persistent version; this
// is the interactive one.
type InsightPrinter struct {
	logger   *utils.Logger
	currency string
	topN     int
	lowQty   int
}

// NewInsightPrinter creates an InsightPrinter using the given report
// settings for currency symbol, top-N size and low-performer threshold.
func NewInsightPrinter(logger *utils.Logger, settings *models.ReportSettings) *InsightPrinter {
	return &InsightPrinter{
		logger:   logger,
		currency: settings.CurrencySymbol,
		topN:     settings.TopN,
		lowQty:   settings.LowPerformerThreshold,
	}
}

// PrintSummary renders the validation summary and the observed filter
// options (regions, amount range).
func (p *InsightPrinter) PrintSummary(s models.ValidationSummary) {
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;33m  Validation Summary\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Input records     : %d\n", s.TotalInput)
	fmt.Printf("  Invalid           : %d\n", s.Invalid)
	fmt.Printf("  Removed by region : %d\n", s.FilteredByRegion)
	fmt.Printf("  Removed by amount : %d\n", s.FilteredByAmount)
	fmt.Printf("  Final count       : \033[1m%d\033[0m\n", s.FinalCount)

	if len(s.Regions) > 0 {
		fmt.Printf("  Regions observed  : %s\n", strings.Join(s.Regions, ", "))
	} else {
		fmt.Printf("  Regions observed  : none\n")
	}
	if s.HasAmount {
		fmt.Printf("  Amount range      : %s - %s\n", p.money(s.MinAmount), p.money(s.MaxAmount))
	} else {
		fmt.Printf("  Amount range      : not available\n")
	}
	fmt.Println()
}

// PrintAnalytics renders every aggregate view for the given set.
func (p *InsightPrinter) PrintAnalytics(txns []*models.Transaction) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  SALES INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("  Total revenue: \033[1;32m%s\033[0m\n\n", p.money(TotalRevenue(txns)))

	fmt.Printf("\033[1;33m  Region-wise Sales\033[0m\n")
	fmt.Printf("  %s\n", thin)
	regions := RegionWiseSales(txns)
	if len(regions) == 0 {
		fmt.Printf("  No data\n")
	}
	for _, r := range regions {
		fmt.Printf("  %-10s Sales: %-14s %6.2f%%  Txns: %d\n",
			r.Region, p.money(r.TotalSales), r.Percentage, r.TransactionCount)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top %d Selling Products\033[0m\n", p.topN)
	fmt.Printf("  %s\n", thin)
	for i, prod := range TopSellingProducts(txns, p.topN) {
		fmt.Printf("  \033[1m%d.\033[0m %-28s Qty: %-6d %s\n",
			i+1, truncate(prod.Name, 27), prod.TotalQuantity, p.money(prod.TotalRevenue))
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top %d Customers\033[0m\n", p.topN)
	fmt.Printf("  %s\n", thin)
	customers := CustomerAnalysis(txns)
	if len(customers) > p.topN {
		customers = customers[:p.topN]
	}
	for i, c := range customers {
		fmt.Printf("  \033[1m%d.\033[0m %-10s Spent: %-14s Orders: %-4d Avg: %s\n",
			i+1, c.CustomerID, p.money(c.TotalSpent), c.PurchaseCount, p.money(c.AvgOrderValue))
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Daily Sales Trend\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, d := range DailySalesTrend(txns) {
		fmt.Printf("  %-12s Revenue: %-14s Txns: %-4d Unique customers: %d\n",
			d.Date, p.money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	fmt.Println()

	peak := PeakSalesDay(txns)
	fmt.Printf("\033[1;33m  Peak Sales Day\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if peak.Date == "" {
		fmt.Printf("  No data\n")
	} else {
		fmt.Printf("  %s | Revenue: \033[1;32m%s\033[0m | Transactions: %d\n",
			peak.Date, p.money(peak.Revenue), peak.TransactionCount)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Low Performing Products (Qty < %d)\033[0m\n", p.lowQty)
	fmt.Printf("  %s\n", thin)
	low := LowPerformingProducts(txns, p.lowQty)
	if len(low) == 0 {
		fmt.Printf("  None\n")
	}
	for _, prod := range low {
		fmt.Printf("  %-28s Qty: %-6d %s\n",
			truncate(prod.Name, 27), prod.TotalQuantity, p.money(prod.TotalRevenue))
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func (p *InsightPrinter) money(v float64) string {
	return fmt.Sprintf("%s%.2f", p.currency, v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
