package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
)

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Source     string   `json:"source" yaml:"source" toml:"source"`
	DataPath   string   `json:"data_path" yaml:"data_path" toml:"data_path"`
	Profile    string   `json:"profile" yaml:"profile" toml:"profile"`
	Pages      []string `json:"pages" yaml:"pages" toml:"pages"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	// Timeout é uma duração no formato do Go, ex: "10s".
	Timeout string `json:"timeout" yaml:"timeout" toml:"timeout"`

	// Charts replaces the built-in page definitions when not empty.
	Charts []ChartSpec `json:"charts" yaml:"charts" toml:"charts"`
	// Priority overrides the fee table ordering lists.
	Priority FeePriority `json:"priority" yaml:"priority" toml:"priority"`
}

// ChartSpec declares one chart builder invocation.
type ChartSpec struct {
	Page   string `json:"page" yaml:"page" toml:"page"`
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
	ID     string `json:"id" yaml:"id" toml:"id"`
	Fields string `json:"fields" yaml:"fields" toml:"fields"`
	Title  string `json:"title" yaml:"title" toml:"title"`

	Dataset string `json:"dataset" yaml:"dataset" toml:"dataset"`

	// Comparison charts.
	PriorID      string `json:"prior_id" yaml:"prior_id" toml:"prior_id"`
	PriorDataset string `json:"prior_dataset" yaml:"prior_dataset" toml:"prior_dataset"`
	// PriorPeriod e Period rotulam os dois períodos, ex: "2025" e "2026".
	PriorPeriod string `json:"prior_period" yaml:"prior_period" toml:"prior_period"`
	Period      string `json:"period" yaml:"period" toml:"period"`

	// Fee table.
	MandatoryDataset string `json:"mandatory_dataset" yaml:"mandatory_dataset" toml:"mandatory_dataset"`
	ProgramDataset   string `json:"program_dataset" yaml:"program_dataset" toml:"program_dataset"`
}

// FeePriority holds the display order of the fee table sub rows.
type FeePriority struct {
	Mandatory []string `json:"mandatory" yaml:"mandatory" toml:"mandatory"`
	Program   []string `json:"program" yaml:"program" toml:"program"`
}

var validKinds = map[string]bool{
	"fiscal-year": true, "comparison": true, "fee-totals": true, "fee-breakdown": true, "fee-table": true,
}

var validReportTypes = map[string]bool{
	"json": true, "yaml": true, "csv": true, "pdf": true, "xlsx": true, "html": true,
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var problems []string

	switch c.Source {
	case "", "file", "http", "s3", "aws":
	default:
		problems = append(problems, fmt.Sprintf("invalid source '%s': must be one of file, http, s3, aws", c.Source))
	}

	for _, rt := range c.ReportType {
		if !validReportTypes[strings.ToLower(rt)] {
			problems = append(problems, fmt.Sprintf("invalid report type '%s'", rt))
		}
	}

	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
			problems = append(problems, fmt.Sprintf("invalid timeout '%s': must be a positive duration", c.Timeout))
		}
	}

	for i, spec := range c.Charts {
		if !validKinds[spec.Kind] {
			problems = append(problems, fmt.Sprintf("charts[%d]: invalid kind '%s'", i, spec.Kind))
		}
		if spec.ID == "" {
			problems = append(problems, fmt.Sprintf("charts[%d]: id is required", i))
		}
		if spec.Dataset == "" {
			problems = append(problems, fmt.Sprintf("charts[%d]: dataset is required", i))
		}
		if _, err := entity.ParseFieldSet(spec.Fields); err != nil {
			problems = append(problems, fmt.Sprintf("charts[%d]: %s", i, err))
		}
		if spec.Kind == "comparison" && spec.PriorDataset == "" {
			problems = append(problems, fmt.Sprintf("charts[%d]: prior_dataset is required for comparison charts", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
