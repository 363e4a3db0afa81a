package usecase

import (
	"fmt"
	"strconv"

	"github.com/diillson/budget-dashboard-go/internal/domain/aggregate"
	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
	"github.com/diillson/budget-dashboard-go/pkg/format"
)

// Fatias abaixo destes percentuais não recebem rótulo.
const (
	minLabelPercent           = 1.5
	minComparisonLabelPercent = 3.0
)

func resolve(ds entity.Datasets, name string, fs entity.FieldSet) ([]entity.Record, error) {
	records, ok := ds.Resolve(name, fs)
	if !ok {
		return nil, &types.MissingDatasetError{Keys: []string{name}}
	}
	return records, nil
}

func buildBars(records []entity.Record, fs entity.FieldSet, nf format.NumberFormat) []entity.Bar {
	bars := make([]entity.Bar, 0, len(records))
	for _, r := range records {
		bars = append(bars, entity.Bar{
			Category: r.Category,
			Amount:   r.Value(fs.Amount),
			Color:    r.Color,
			Label:    nf.Format(r.Value(fs.Amount)),
		})
	}
	return bars
}

func buildSlices(records []entity.Record, fs entity.FieldSet, minPercent float64, withTooltip bool) []entity.Slice {
	shares := aggregate.PercentOfTotal(records, fs.Amount)
	slices := make([]entity.Slice, 0, len(records))
	for i, r := range records {
		s := entity.Slice{
			Category:    r.Category,
			Amount:      r.Value(fs.Amount),
			Color:       r.Color,
			Percent:     shares[i],
			Label:       format.FormatPercent(shares[i], 1),
			LabelHidden: shares[i] < minPercent,
		}
		if withTooltip {
			s.Tooltip = fmt.Sprintf("%s: %s", r.Category, format.FormatPercent(shares[i], 2))
		}
		slices = append(slices, s)
	}
	return slices
}

// BuildFiscalYear builds the bar + donut panel of one fiscal year dataset, bars sorted
// smallest first, with the dataset total in the donut center.
func BuildFiscalYear(ds entity.Datasets, spec types.ChartSpec, fs entity.FieldSet) (entity.Chart, error) {
	records, err := resolve(ds, spec.Dataset, fs)
	if err != nil {
		return entity.Chart{}, err
	}

	sorted := aggregate.SortAscendingByField(records, fs.Amount)
	total := aggregate.SumField(sorted, fs.Amount)

	return entity.Chart{
		ID:      spec.ID,
		Kind:    entity.ChartFiscalYear,
		Title:   titleOr(spec.Title, spec.Dataset),
		Dataset: spec.Dataset,
		Total:   total,
		Center: entity.CenterLabel{
			Caption: fs.TotalTitle(),
			Value:   format.CompactCurrencyFixed.Format(total),
		},
		AxisFormat: format.CompactCurrency.Pattern(),
		Bars:       buildBars(sorted, fs, format.CompactCurrency),
		Slices:     buildSlices(sorted, fs, minLabelPercent, false),
	}, nil
}

// BuildComparison builds the prior and current period panels and the change between their totals.
func BuildComparison(ds entity.Datasets, spec types.ChartSpec, fs entity.FieldSet) (entity.ComparisonChart, error) {
	priorRecords, priorOK := ds.Resolve(spec.PriorDataset, fs)
	currentRecords, currentOK := ds.Resolve(spec.Dataset, fs)
	if !priorOK || !currentOK {
		missing := &types.MissingDatasetError{}
		if !priorOK {
			missing.Keys = append(missing.Keys, spec.PriorDataset)
		}
		if !currentOK {
			missing.Keys = append(missing.Keys, spec.Dataset)
		}
		return entity.ComparisonChart{}, missing
	}

	prior := aggregate.SortAscendingByField(priorRecords, fs.Amount)
	current := aggregate.SortAscendingByField(currentRecords, fs.Amount)

	priorTotal := aggregate.SumField(prior, fs.Amount)
	currentTotal := aggregate.SumField(current, fs.Amount)
	comparison := aggregate.Compare(priorTotal, currentTotal)

	priorPeriod := titleOr(spec.PriorPeriod, "2025")
	period := titleOr(spec.Period, "2026")

	priorChart := comparisonPanel(spec.PriorID, spec.PriorDataset, prior, fs, priorTotal, priorPeriod)
	currentChart := comparisonPanel(spec.ID, spec.Dataset, current, fs, currentTotal, period)

	currentChart.Center.Change = changeText(comparison, priorPeriod)
	currentChart.Center.Increase = comparison.Sign == "+"
	for i, r := range current {
		if r.PercentChange == nil {
			continue
		}
		change := *r.PercentChange
		sign := ""
		if change >= 0 {
			sign = "+"
		}
		currentChart.Bars[i].ChangeLabel = fmt.Sprintf("(%s%s%%)", sign, strconv.FormatFloat(change, 'f', -1, 64))
		currentChart.Bars[i].Increase = change >= 0
	}

	return entity.ComparisonChart{
		Title:      titleOr(spec.Title, spec.Dataset),
		Prior:      priorChart,
		Current:    currentChart,
		Comparison: comparison,
	}, nil
}

func comparisonPanel(id, dataset string, records []entity.Record, fs entity.FieldSet, total float64, period string) entity.Chart {
	return entity.Chart{
		ID:      id,
		Kind:    entity.ChartComparison,
		Title:   fmt.Sprintf("%s %s", period, dataset),
		Dataset: dataset,
		Total:   total,
		Center: entity.CenterLabel{
			Caption: fmt.Sprintf("TOTAL %s\n%s", period, fs.Label),
			Value:   format.CompactCurrencyFixed.Format(total),
		},
		AxisFormat: format.Compact.Pattern(),
		Bars:       buildBars(records, fs, format.CompactCurrencyFixed),
		Slices:     buildSlices(records, fs, minComparisonLabelPercent, true),
	}
}

// changeText renders "+10.0% vs 2025". A change that is not a finite number renders as N/A.
func changeText(c entity.ComparisonResult, priorPeriod string) string {
	if !c.Defined {
		return fmt.Sprintf("N/A vs %s", priorPeriod)
	}
	sign := ""
	if c.Sign == "+" {
		sign = "+"
	}
	return fmt.Sprintf("%s%s vs %s", sign, format.FormatPercent(c.PercentChange, 1), priorPeriod)
}

// BuildFeeTotals builds the column chart of the tuition and fee divisions, in source order.
func BuildFeeTotals(ds entity.Datasets, spec types.ChartSpec) (entity.Chart, error) {
	fs := entity.GenericFields
	records, err := resolve(ds, spec.Dataset, fs)
	if err != nil {
		return entity.Chart{}, err
	}

	return entity.Chart{
		ID:         spec.ID,
		Kind:       entity.ChartFeeTotals,
		Title:      titleOr(spec.Title, spec.Dataset),
		Dataset:    spec.Dataset,
		Total:      aggregate.SumField(records, fs.Amount),
		AxisFormat: format.CompactCurrencyFixed.Pattern(),
		Vertical:   true,
		Bars:       buildBars(records, fs, format.CompactCurrencyFixed),
	}, nil
}

// BuildFeeBreakdown builds a sorted bar + donut panel of a fee dataset with spec.Title as
// the donut caption.
func BuildFeeBreakdown(ds entity.Datasets, spec types.ChartSpec) (entity.Chart, error) {
	fs := entity.GenericFields
	records, err := resolve(ds, spec.Dataset, fs)
	if err != nil {
		return entity.Chart{}, err
	}

	sorted := aggregate.SortAscendingByField(records, fs.Amount)
	total := aggregate.SumField(sorted, fs.Amount)

	return entity.Chart{
		ID:      spec.ID,
		Kind:    entity.ChartFeeBreakdown,
		Title:   titleOr(spec.Title, spec.Dataset),
		Dataset: spec.Dataset,
		Total:   total,
		Center: entity.CenterLabel{
			Caption: titleOr(spec.Title, "TOTAL"),
			Value:   format.CompactCurrencyFixed.Format(total),
		},
		AxisFormat: format.CompactCurrencyFixed.Pattern(),
		Bars:       buildBars(sorted, fs, format.CompactCurrencyFixed),
		Slices:     buildSlices(sorted, fs, minLabelPercent, true),
	}, nil
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
