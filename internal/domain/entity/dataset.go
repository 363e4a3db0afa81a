package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

// Resolve converts the raw records of dataset name into Records using the fields of fs.
// The boolean is false when the dataset is absent.
func (d Datasets) Resolve(name string, fs FieldSet) ([]Record, bool) {
	raw, ok := d[name]
	if !ok || raw == nil {
		return nil, false
	}

	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.Resolve(fs))
	}
	return records, true
}

// Resolve converts a raw record into a Record. Non-numeric or missing amounts become zero.
func (r RawRecord) Resolve(fs FieldSet) Record {
	rec := Record{Values: make(map[string]float64)}

	for key, value := range r {
		if f, ok := toFloat(value); ok {
			rec.Values[key] = f
		}
	}

	rec.Category = toString(r[fs.Category])
	rec.Amount = rec.Values[fs.Amount]
	rec.Color = toString(r["color"])
	if change, ok := rec.Values["percentChange"]; ok {
		rec.PercentChange = &change
	}
	return rec
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
