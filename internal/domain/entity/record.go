package entity

// Record é uma linha de um dataset: uma categoria e o seu valor.
type Record struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`

	// PercentChange is the optional per-category change carried by the source data.
	PercentChange *float64 `json:"percent_change,omitempty" yaml:"percent_change,omitempty"`

	// Values holds every numeric field of the source object, keyed by its JSON name.
	Values map[string]float64 `json:"-" yaml:"-"`
}

// Value returns the numeric field named field, or 0 when the record does not carry it.
// Records built without Values (literals, AWS adapters) answer the amount keys of the
// known field sets with Amount and "percentChange" with PercentChange.
func (r Record) Value(field string) float64 {
	if r.Values != nil {
		return r.Values[field]
	}
	switch field {
	case GenericFields.Amount, RevenueFields.Amount, ExpenseFields.Amount:
		return r.Amount
	case "percentChange":
		if r.PercentChange != nil {
			return *r.PercentChange
		}
	}
	return 0
}

// RawRecord is a record as decoded from the data file, before a FieldSet is applied.
type RawRecord map[string]any

// Datasets maps a dataset name to its raw records, in source order.
type Datasets map[string][]RawRecord
