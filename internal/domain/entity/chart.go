package entity

// ChartKind identifica o tipo de gráfico construído.
type ChartKind string

const (
	ChartFiscalYear   ChartKind = "fiscal-year"
	ChartComparison   ChartKind = "comparison"
	ChartFeeTotals    ChartKind = "fee-totals"
	ChartFeeBreakdown ChartKind = "fee-breakdown"
	ChartFeeTable     ChartKind = "fee-table"
)

// Bar is one bar of a bar or column chart, with its value label already formatted.
type Bar struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
	Label    string  `json:"label" yaml:"label"`
	// ChangeLabel is the per-category change, e.g. "(+4.2%)". Empty when absent.
	ChangeLabel string `json:"change_label,omitempty" yaml:"change_label,omitempty"`
	// Increase colours ChangeLabel; only meaningful when ChangeLabel is set.
	Increase bool `json:"increase,omitempty" yaml:"increase,omitempty"`
}

// Slice is one slice of a donut chart.
type Slice struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
	Percent  float64 `json:"percent" yaml:"percent"`
	Label    string  `json:"label" yaml:"label"`
	Tooltip  string  `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	// LabelHidden is set for slices too small to carry a label.
	LabelHidden bool `json:"label_hidden" yaml:"label_hidden"`
}

// CenterLabel is the text block drawn in the middle of a donut.
type CenterLabel struct {
	Caption string `json:"caption" yaml:"caption"`
	Value   string `json:"value" yaml:"value"`
	// Change is the period-over-period line, e.g. "+10.0% vs 2025". Empty when not compared.
	Change   string `json:"change,omitempty" yaml:"change,omitempty"`
	Increase bool   `json:"increase,omitempty" yaml:"increase,omitempty"`
}

// Chart is a renderer-neutral bar + donut panel (or a lone column chart when Slices is empty).
type Chart struct {
	ID      string      `json:"id" yaml:"id"`
	Kind    ChartKind   `json:"kind" yaml:"kind"`
	Title   string      `json:"title" yaml:"title"`
	Dataset string      `json:"dataset" yaml:"dataset"`
	Total   float64     `json:"total" yaml:"total"`
	Center  CenterLabel `json:"center" yaml:"center"`
	// AxisFormat is the number format of the value axis ("$#.#a", "$#.0a" or "#.#a").
	AxisFormat string  `json:"axis_format" yaml:"axis_format"`
	Vertical   bool    `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Bars       []Bar   `json:"bars" yaml:"bars"`
	Slices     []Slice `json:"slices,omitempty" yaml:"slices,omitempty"`
}

// ComparisonChart pairs the prior and current period panels with their totals comparison.
type ComparisonChart struct {
	Title      string           `json:"title" yaml:"title"`
	Prior      Chart            `json:"prior" yaml:"prior"`
	Current    Chart            `json:"current" yaml:"current"`
	Comparison ComparisonResult `json:"comparison" yaml:"comparison"`
}
