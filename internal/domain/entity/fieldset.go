package entity

import (
	"fmt"
	"strings"
)

// FieldSet names the JSON fields a dataset family uses for category and amount.
type FieldSet struct {
	Name     string
	Category string
	Amount   string
	// Label is the word used in chart titles, e.g. "REVENUE".
	Label string
}

var (
	RevenueFields = FieldSet{Name: "revenue", Category: "revenueType", Amount: "revenueAmount", Label: "REVENUE"}
	ExpenseFields = FieldSet{Name: "expense", Category: "expenseType", Amount: "expenseAmount", Label: "EXPENSE"}
	GenericFields = FieldSet{Name: "generic", Category: "category", Amount: "amount", Label: "AMOUNT"}
)

// ParseFieldSet resolves a field set by name. An empty name selects GenericFields.
func ParseFieldSet(name string) (FieldSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "revenue":
		return RevenueFields, nil
	case "expense":
		return ExpenseFields, nil
	case "", "generic":
		return GenericFields, nil
	default:
		return FieldSet{}, fmt.Errorf("unknown field set %q (expected revenue, expense or generic)", name)
	}
}

// TotalTitle is the pie center caption used by the fiscal year charts.
func (fs FieldSet) TotalTitle() string {
	if fs.Name == GenericFields.Name {
		return "TOTAL"
	}
	return "TOTAL " + fs.Label
}
