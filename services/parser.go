package services

import (
	"strconv"
	"strings"

	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

const fieldCount = 8

// Parser turns raw pipe-delimited lines into typed Transactions. It only
// cares about structure and numeric conversion; domain rules (ID prefixes,
// positive quantities) belong to the Validator, so a record with a negative
// quantity still parses.
type Parser struct {
	logger *utils.Logger
}

// NewParser creates a Parser with the given logger.
func NewParser(logger *utils.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse converts raw lines into Transactions, preserving input order.
// Lines that do not split into exactly 8 fields, or whose Quantity/UnitPrice
// cannot be parsed after stripping thousands-separator commas, are dropped
// silently. A malformed line never aborts the run.
func (p *Parser) Parse(rawLines []string) []*models.Transaction {
	result := make([]*models.Transaction, 0, len(rawLines))

	for _, line := range rawLines {
		parts := strings.Split(line, "|")
		if len(parts) != fieldCount {
			p.logger.Debug("[parser] Dropping line with %d fields: %s", len(parts), line)
			continue
		}

		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		qty, err := strconv.Atoi(stripCommas(parts[4]))
		if err != nil {
			p.logger.Debug("[parser] Unparseable quantity %q: %s", parts[4], line)
			continue
		}
		price, err := strconv.ParseFloat(stripCommas(parts[5]), 64)
		if err != nil {
			p.logger.Debug("[parser] Unparseable unit price %q: %s", parts[5], line)
			continue
		}

		result = append(result, &models.Transaction{
			TransactionID: parts[0],
			Date:          parts[1],
			ProductID:     parts[2],
			ProductName:   stripCommas(parts[3]),
			Quantity:      qty,
			UnitPrice:     price,
			CustomerID:    parts[6],
			Region:        parts[7],
		})
	}

	p.logger.Info("[parser] Parsed %d → %d transactions (dropped %d)",
		len(rawLines), len(result), len(rawLines)-len(result))
	return result
}

// stripCommas removes thousands-separator commas. Commas inside ProductName
// are a formatting artifact of the source data, not a field separator.
func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
