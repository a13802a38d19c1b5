package storage

import "github.com/yuvrxj-24/sales-analytics-system/models"

// EnrichedSink persists the enriched transaction snapshot.
type EnrichedSink interface {
	WriteEnriched(txns []*models.EnrichedTransaction) error
	Close() error
}

// ReportSink renders and persists the formatted sales report.
type ReportSink interface {
	WriteReport(valid []*models.Transaction, enriched []*models.EnrichedTransaction) error
}
