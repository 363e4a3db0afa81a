// Package aggregate holds the pure transformations applied to dataset records before
// they are charted: totals, orderings and period-over-period comparisons.
package aggregate

import (
	"math"
	"sort"
	"strconv"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SumField soma o campo numérico field em todos os registros. Campos ausentes contam como zero.
func SumField(records []entity.Record, field string) float64 {
	total := 0.0
	for _, r := range records {
		total += r.Value(field)
	}
	return total
}

// SortAscendingByField returns a copy of records stably sorted by field, smallest first.
func SortAscendingByField(records []entity.Record, field string) []entity.Record {
	sorted := make([]entity.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value(field) < sorted[j].Value(field)
	})
	return sorted
}

// PercentChange returns ((current - prior) / prior) * 100 rounded to one decimal place,
// half away from zero on the exact binary value (50.0499... rounds to 50.0, not 50.1).
// A zero prior yields +Inf, -Inf or NaN; use Compare when the result is meant for display.
func PercentChange(prior, current float64) float64 {
	raw := ((current - prior) / prior) * 100.0
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return raw
	}
	exact := decimal.RequireFromString(strconv.FormatFloat(raw, 'f', 30, 64))
	return exact.Round(1).InexactFloat64()
}

// Compare builds the comparison between two period totals.
// The sign follows the computed percentage, so a negative prior flips it: Compare(-100, 50) is -150%.
func Compare(prior, current float64) entity.ComparisonResult {
	result := entity.ComparisonResult{
		TotalPrior:   prior,
		TotalCurrent: current,
	}

	change := PercentChange(prior, current)
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return result
	}

	result.PercentChange = change
	result.Defined = true
	if change >= 0 {
		result.Sign = "+"
	} else {
		result.Sign = "-"
	}
	return result
}

// OrderByPriority orders records by the position of their category in priority.
// Categories missing from the list go last, keeping their relative order.
func OrderByPriority(records []entity.Record, priority []string) []entity.Record {
	pos := make(map[string]int, len(priority))
	for i, category := range priority {
		if _, ok := pos[category]; !ok {
			pos[category] = i
		}
	}

	rank := func(category string) int {
		if p, ok := pos[category]; ok {
			return p
		}
		return len(priority)
	}

	ordered := make([]entity.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank(ordered[i].Category) < rank(ordered[j].Category)
	})
	return ordered
}

// TotalsMap indexes records by category. On duplicates the last record wins;
// the duplicated categories are returned in order of first repetition.
func TotalsMap(records []entity.Record) (map[string]float64, []string) {
	totals := make(map[string]float64, len(records))
	var duplicates []string
	seen := make(map[string]bool)

	for _, r := range records {
		if _, exists := totals[r.Category]; exists && !seen[r.Category] {
			duplicates = append(duplicates, r.Category)
			seen[r.Category] = true
		}
		totals[r.Category] = r.Amount
	}
	return totals, duplicates
}

// PercentOfTotal returns each record's share of the field total, in percent.
// When the total is zero every share is zero.
func PercentOfTotal(records []entity.Record, field string) []float64 {
	shares := make([]float64, len(records))
	total := SumField(records, field)
	if total == 0 {
		return shares
	}
	for i, r := range records {
		shares[i] = r.Value(field) / total * 100.0
	}
	return shares
}
