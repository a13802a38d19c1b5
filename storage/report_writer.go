package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/services"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

// ReportWriter renders the formatted text report from the validated set and
// its enriched counterpart. Every aggregate view is recomputed here from
// the set it is handed, so the report works against the full validated set
// regardless of what was filtered earlier.
type ReportWriter struct {
	path     string
	logger   *utils.Logger
	settings *models.ReportSettings
}

// NewReportWriter creates a ReportWriter targeting the given path.
func NewReportWriter(path string, logger *utils.Logger, settings *models.ReportSettings) *ReportWriter {
	return &ReportWriter{path: path, logger: logger, settings: settings}
}

// WriteReport builds and writes the full report.
func (r *ReportWriter) WriteReport(valid []*models.Transaction, enriched []*models.EnrichedTransaction) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}

	var b strings.Builder
	r.writeHeader(&b, len(valid))
	r.writeOverallSummary(&b, valid)
	r.writeRegionPerformance(&b, valid)
	r.writeTopProducts(&b, valid)
	r.writeTopCustomers(&b, valid)
	r.writeDailyTrend(&b, valid)
	r.writeProductPerformance(&b, valid)
	r.writeEnrichmentSummary(&b, enriched)

	if err := os.WriteFile(r.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("report: write %q: %w", r.path, err)
	}

	r.logger.Info("[report] Report saved to %s", r.path)
	return nil
}

func (r *ReportWriter) writeHeader(b *strings.Builder, records int) {
	rule := strings.Repeat("=", 44)
	fmt.Fprintf(b, "%s\n", rule)
	fmt.Fprintf(b, "           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(b, "         Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "         Report ID: %s\n", uuid.NewString())
	fmt.Fprintf(b, "         Records Processed: %d\n", records)
	fmt.Fprintf(b, "%s\n\n", rule)
}

func (r *ReportWriter) writeOverallSummary(b *strings.Builder, txns []*models.Transaction) {
	totalRevenue := services.TotalRevenue(txns)
	avgOrder := 0.0
	if len(txns) > 0 {
		avgOrder = totalRevenue / float64(len(txns))
	}

	dateRange := "N/A"
	if trend := services.DailySalesTrend(txns); len(trend) > 0 {
		dateRange = fmt.Sprintf("%s to %s", trend[0].Date, trend[len(trend)-1].Date)
	}

	r.section(b, "OVERALL SUMMARY")
	fmt.Fprintf(b, "Total Revenue:        %s\n", r.money(totalRevenue))
	fmt.Fprintf(b, "Total Transactions:   %d\n", len(txns))
	fmt.Fprintf(b, "Average Order Value:  %s\n", r.money(avgOrder))
	fmt.Fprintf(b, "Date Range:           %s\n\n", dateRange)
}

func (r *ReportWriter) writeRegionPerformance(b *strings.Builder, txns []*models.Transaction) {
	r.section(b, "REGION-WISE PERFORMANCE")
	fmt.Fprintf(b, "%-8s %-15s %-10s %-12s\n", "Region", "Sales", "% of Total", "Transactions")
	for _, s := range services.RegionWiseSales(txns) {
		fmt.Fprintf(b, "%-8s %-15s %9.2f%% %12d\n",
			s.Region, r.money(s.TotalSales), s.Percentage, s.TransactionCount)
	}
	b.WriteString("\n")
}

func (r *ReportWriter) writeTopProducts(b *strings.Builder, txns []*models.Transaction) {
	r.section(b, fmt.Sprintf("TOP %d PRODUCTS", r.settings.TopN))
	fmt.Fprintf(b, "%-4s %-25s %-10s %-15s\n", "Rank", "Product Name", "Qty Sold", "Revenue")
	for i, p := range services.TopSellingProducts(txns, r.settings.TopN) {
		fmt.Fprintf(b, "%-4d %-25s %10d %15s\n",
			i+1, clip(p.Name, 25), p.TotalQuantity, r.money(p.TotalRevenue))
	}
	b.WriteString("\n")
}

func (r *ReportWriter) writeTopCustomers(b *strings.Builder, txns []*models.Transaction) {
	r.section(b, fmt.Sprintf("TOP %d CUSTOMERS", r.settings.TopN))
	fmt.Fprintf(b, "%-4s %-10s %-15s %-8s\n", "Rank", "Customer", "Total Spent", "Orders")
	customers := services.CustomerAnalysis(txns)
	if len(customers) > r.settings.TopN {
		customers = customers[:r.settings.TopN]
	}
	for i, c := range customers {
		fmt.Fprintf(b, "%-4d %-10s %15s %8d\n",
			i+1, c.CustomerID, r.money(c.TotalSpent), c.PurchaseCount)
	}
	b.WriteString("\n")
}

func (r *ReportWriter) writeDailyTrend(b *strings.Builder, txns []*models.Transaction) {
	r.section(b, "DAILY SALES TREND")
	fmt.Fprintf(b, "%-12s %-15s %-6s %-16s\n", "Date", "Revenue", "Txns", "Unique Customers")
	for _, d := range services.DailySalesTrend(txns) {
		fmt.Fprintf(b, "%-12s %15s %6d %16d\n",
			d.Date, r.money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	b.WriteString("\n")
}

func (r *ReportWriter) writeProductPerformance(b *strings.Builder, txns []*models.Transaction) {
	r.section(b, "PRODUCT PERFORMANCE ANALYSIS")

	peak := services.PeakSalesDay(txns)
	fmt.Fprintf(b, "Best selling day: %s | Revenue: %s | Transactions: %d\n\n",
		peak.Date, r.money(peak.Revenue), peak.TransactionCount)

	fmt.Fprintf(b, "Low performing products (Qty < %d):\n", r.settings.LowPerformerThreshold)
	low := services.LowPerformingProducts(txns, r.settings.LowPerformerThreshold)
	if len(low) == 0 {
		b.WriteString("None\n")
	}
	for _, p := range low {
		fmt.Fprintf(b, "- %s: Qty=%d, Revenue=%s\n", p.Name, p.TotalQuantity, r.money(p.TotalRevenue))
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "Average transaction value per region:\n")
	for _, s := range services.RegionWiseSales(txns) {
		avg := 0.0
		if s.TransactionCount > 0 {
			avg = s.TotalSales / float64(s.TransactionCount)
		}
		fmt.Fprintf(b, "- %s: %s\n", s.Region, r.money(avg))
	}
	b.WriteString("\n")
}

func (r *ReportWriter) writeEnrichmentSummary(b *strings.Builder, enriched []*models.EnrichedTransaction) {
	r.section(b, "API ENRICHMENT SUMMARY")

	matched := 0
	unmatchedSet := make(map[string]struct{})
	for _, t := range enriched {
		if t.Matched {
			matched++
		} else if t.ProductID != "" {
			unmatchedSet[t.ProductID] = struct{}{}
		}
	}

	fmt.Fprintf(b, "Total products enriched: %d/%d\n", matched, len(enriched))
	fmt.Fprintf(b, "Success rate: %.2f%%\n", services.MatchRate(enriched))

	b.WriteString("Products that couldn't be enriched:\n")
	if len(unmatchedSet) == 0 {
		b.WriteString("None\n")
	} else {
		unmatched := make([]string, 0, len(unmatchedSet))
		for p := range unmatchedSet {
			unmatched = append(unmatched, p)
		}
		sort.Strings(unmatched)
		for _, p := range unmatched {
			fmt.Fprintf(b, "- %s\n", p)
		}
	}
	b.WriteString("\n")
}

func (r *ReportWriter) section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n", title)
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", 44))
}

func (r *ReportWriter) money(v float64) string {
	return fmt.Sprintf("%s%.2f", r.settings.CurrencySymbol, v)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
