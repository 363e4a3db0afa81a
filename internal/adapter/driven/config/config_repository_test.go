package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "budget.toml",
			content: `
source = "http"
data_path = "https://example.com/data.json"
pages = ["budget", "fees"]
report_type = ["pdf"]
timeout = "5s"

[[charts]]
page = "budget"
kind = "fiscal-year"
id = "chart_Expense26"
dataset = "FY26_Expense"
fields = "expense"

[priority]
mandatory = ["Green Fee"]
`,
		},
		{
			name: "yaml",
			file: "budget.yaml",
			content: `
source: http
data_path: https://example.com/data.json
pages: [budget, fees]
report_type: [pdf]
timeout: 5s
charts:
  - page: budget
    kind: fiscal-year
    id: chart_Expense26
    dataset: FY26_Expense
    fields: expense
priority:
  mandatory: [Green Fee]
`,
		},
		{
			name: "json",
			file: "budget.json",
			content: `{
  "source": "http",
  "data_path": "https://example.com/data.json",
  "pages": ["budget", "fees"],
  "report_type": ["pdf"],
  "timeout": "5s",
  "charts": [{"page": "budget", "kind": "fiscal-year", "id": "chart_Expense26", "dataset": "FY26_Expense", "fields": "expense"}],
  "priority": {"mandatory": ["Green Fee"]}
}`,
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "http", cfg.Source)
			assert.Equal(t, "https://example.com/data.json", cfg.DataPath)
			assert.Equal(t, []string{"budget", "fees"}, cfg.Pages)
			assert.Equal(t, []string{"pdf"}, cfg.ReportType)
			assert.Equal(t, "5s", cfg.Timeout)
			require.Len(t, cfg.Charts, 1)
			assert.Equal(t, "FY26_Expense", cfg.Charts[0].Dataset)
			assert.Equal(t, []string{"Green Fee"}, cfg.Priority.Mandatory)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "budget.ini", "source=file"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(writeFile(t, "budget.yaml", "source: ftp\ncharts:\n  - kind: pie\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid source 'ftp'")
	assert.Contains(t, err.Error(), "charts[0]: invalid kind 'pie'")
	assert.Contains(t, err.Error(), "charts[0]: id is required")
}

func TestLoadEnvDefaults(t *testing.T) {
	envFile := writeFile(t, ".env", "BUDGET_DATA_SOURCE=s3\nBUDGET_DATA_PATH=s3://bucket/data.json\nBUDGET_TIMEOUT=20s\n")
	t.Setenv(EnvDataPath, "s3://override/data.json")
	t.Setenv(EnvReportDir, "/tmp/reports")

	cfg, err := NewConfigRepository().LoadEnvDefaults(envFile)
	require.NoError(t, err)

	assert.Equal(t, "s3", cfg.Source)
	assert.Equal(t, "s3://override/data.json", cfg.DataPath)
	assert.Equal(t, "/tmp/reports", cfg.Dir)
	assert.Equal(t, "20s", cfg.Timeout)
}

func TestLoadEnvDefaultsMissingFile(t *testing.T) {
	t.Setenv(EnvSource, "")
	cfg, err := NewConfigRepository().LoadEnvDefaults(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadEnvDefaultsInvalid(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")
	_, err := NewConfigRepository().LoadEnvDefaults("")
	assert.ErrorContains(t, err, "invalid timeout 'soon'")
}
