package entity

// ComparisonResult compares two aggregate totals across periods.
type ComparisonResult struct {
	TotalPrior    float64 `json:"total_prior" yaml:"total_prior"`
	TotalCurrent  float64 `json:"total_current" yaml:"total_current"`
	PercentChange float64 `json:"percent_change" yaml:"percent_change"`
	// Sign is "+" for zero or growth, "-" for a decrease and "" when the change is undefined.
	Sign string `json:"sign" yaml:"sign"`
	// Defined is false when the prior total is zero and the change is not a finite number.
	Defined bool `json:"defined" yaml:"defined"`
}
