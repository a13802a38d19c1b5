package services

import (
	"sort"

	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

// Validator enforces the domain invariants on parsed transactions and
// applies the optional region/amount filters.
type Validator struct {
	logger *utils.Logger
}

// NewValidator creates a Validator with the given logger.
func NewValidator(logger *utils.Logger) *Validator {
	return &Validator{logger: logger}
}

// ValidateAndFilter checks every transaction against the domain rules, then
// narrows the survivors by region and amount in that order. It returns the
// surviving records, the number that failed validation, and a summary of the
// whole pass.
//
// A record fails validation when any field is empty, when TransactionID,
// ProductID or CustomerID lack their T/P/C prefix, or when Quantity or
// UnitPrice is not positive. Records are never mutated; the derived amounts
// used for filtering live in a slice parallel to the valid set.
func (v *Validator) ValidateAndFilter(txns []*models.Transaction, opts models.FilterOptions) ([]*models.Transaction, int, models.ValidationSummary) {
	summary := models.ValidationSummary{TotalInput: len(txns)}

	valid := make([]*models.Transaction, 0, len(txns))
	amounts := make([]float64, 0, len(txns))
	regionSet := make(map[string]struct{})

	for _, t := range txns {
		if !v.isValid(t) {
			summary.Invalid++
			continue
		}

		amt := t.Revenue()
		if !summary.HasAmount || amt < summary.MinAmount {
			summary.MinAmount = amt
		}
		if !summary.HasAmount || amt > summary.MaxAmount {
			summary.MaxAmount = amt
		}
		summary.HasAmount = true
		regionSet[t.Region] = struct{}{}

		valid = append(valid, t)
		amounts = append(amounts, amt)
	}

	for r := range regionSet {
		summary.Regions = append(summary.Regions, r)
	}
	sort.Strings(summary.Regions)

	v.logger.Info("[validator] Valid: %d | Invalid: %d", len(valid), summary.Invalid)

	// Region filter. Exact match against the caller-normalized query; stored
	// regions are never normalized on ingest, so a differently-cased source
	// region silently matches nothing (kept as observed behaviour).
	if opts.Region != nil {
		kept := valid[:0:0]
		keptAmounts := amounts[:0:0]
		for i, t := range valid {
			if t.Region == *opts.Region {
				kept = append(kept, t)
				keptAmounts = append(keptAmounts, amounts[i])
			}
		}
		summary.FilteredByRegion = len(valid) - len(kept)
		valid, amounts = kept, keptAmounts
		v.logger.Info("[validator] After region filter %q: %d remaining", *opts.Region, len(valid))
	} else {
		v.logger.Debug("[validator] Region filter skipped")
	}

	// Amount filter, inclusive on whichever bounds are present.
	if opts.MinAmount != nil || opts.MaxAmount != nil {
		kept := valid[:0:0]
		for i, t := range valid {
			if opts.MinAmount != nil && amounts[i] < *opts.MinAmount {
				continue
			}
			if opts.MaxAmount != nil && amounts[i] > *opts.MaxAmount {
				continue
			}
			kept = append(kept, t)
		}
		summary.FilteredByAmount = len(valid) - len(kept)
		valid = kept
		v.logger.Info("[validator] After amount filter: %d remaining", len(valid))
	} else {
		v.logger.Debug("[validator] Amount filter skipped")
	}

	summary.FinalCount = len(valid)
	return valid, summary.Invalid, summary
}

func (v *Validator) isValid(t *models.Transaction) bool {
	if t.TransactionID == "" || t.Date == "" || t.ProductID == "" ||
		t.ProductName == "" || t.CustomerID == "" || t.Region == "" {
		return false
	}
	if t.TransactionID[0] != 'T' || t.ProductID[0] != 'P' || t.CustomerID[0] != 'C' {
		return false
	}
	return t.Quantity > 0 && t.UnitPrice > 0
}
