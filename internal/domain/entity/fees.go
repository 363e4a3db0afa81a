package entity

// FeeRowKind is the style class of a fee table row.
type FeeRowKind string

const (
	FeeRowHead    FeeRowKind = "head"
	FeeRowSection FeeRowKind = "section"
	FeeRowItem    FeeRowKind = "item"
	FeeRowSub     FeeRowKind = "sub"
	FeeRowTotal   FeeRowKind = "total"
)

// FeeRow is one line of the tuition and fees breakdown table.
type FeeRow struct {
	Kind   FeeRowKind `json:"kind" yaml:"kind"`
	Label  string     `json:"label" yaml:"label"`
	Amount float64    `json:"amount" yaml:"amount"`
	// Formatted is the money string shown in the total column ("Total" for the header row).
	Formatted string `json:"formatted" yaml:"formatted"`
}

// FeeTable is the textual breakdown of tuition and student fees.
type FeeTable struct {
	ID         string   `json:"id" yaml:"id"`
	Rows       []FeeRow `json:"rows" yaml:"rows"`
	GrandTotal float64  `json:"grand_total" yaml:"grand_total"`
	HTML       string   `json:"html,omitempty" yaml:"html,omitempty"`
}

// PageReport agrupa tudo o que foi construído para uma página do dashboard.
type PageReport struct {
	Page        string            `json:"page" yaml:"page"`
	Charts      []Chart           `json:"charts,omitempty" yaml:"charts,omitempty"`
	Comparisons []ComparisonChart `json:"comparisons,omitempty" yaml:"comparisons,omitempty"`
	FeeTables   []FeeTable        `json:"fee_tables,omitempty" yaml:"fee_tables,omitempty"`
	// Failed lists the chart ids whose builder aborted.
	Failed []string `json:"failed,omitempty" yaml:"failed,omitempty"`
}
