package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
)

var htmlFuncs = template.FuncMap{
	"upper": strings.ToUpper,
	// barWidth é a largura da barra em % da maior barra do gráfico.
	"barWidth": func(bar entity.Bar, bars []entity.Bar) string {
		maxAmount := 0.0
		for _, b := range bars {
			if b.Amount > maxAmount {
				maxAmount = b.Amount
			}
		}
		if maxAmount <= 0 || bar.Amount <= 0 {
			return "0"
		}
		return fmt.Sprintf("%.2f", bar.Amount/maxAmount*100)
	},
	"barColor": func(hex string) template.CSS {
		if r, g, b, ok := parseHexColor(hex); ok {
			return template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
		}
		return template.CSS("rgb(31,119,180)")
	},
	"share": func(category string, slices []entity.Slice) string {
		for _, s := range slices {
			if s.Category == category && !s.LabelHidden {
				return s.Label
			}
		}
		return ""
	},
	"lines": func(s string) []string {
		return strings.Split(s, "\n")
	},
	// feeTable recebe o HTML já escapado pelo template da tabela.
	"feeTable": func(html string) template.HTML {
		return template.HTML(html)
	},
}

var pageTemplate = template.Must(template.New("page").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Budget Dashboard</title>
<style>
body { font-family: Arial, sans-serif; color: #323232; margin: 2rem; }
h1 { background: #282828; color: #fff; padding: .5rem 1rem; }
.chart { margin-bottom: 2rem; }
.bar-row { display: flex; align-items: center; margin: 2px 0; }
.bar-label { width: 30%; }
.bar-track { width: 45%; }
.bar { height: 14px; }
.bar-value { width: 25%; padding-left: .5rem; }
.center { font-weight: bold; margin: .5rem 0; }
.up { color: #009650; }
.down { color: #c82828; }
.fees-row { display: flex; justify-content: space-between; border-bottom: 1px solid #ddd; padding: 2px 0; }
.fees-head { background: #282828; color: #fff; font-weight: bold; }
.fees-section, .fees-total { background: #f0f0f0; font-weight: bold; }
.fees-sub div:first-child { padding-left: 1.5rem; }
.fees-num { text-align: right; }
.failed { color: #c82828; font-style: italic; }
</style>
</head>
<body>
<p>Generated {{.Generated}}</p>
{{range .Reports}}
<h1>{{upper .Page}}</h1>
{{range .Charts}}{{template "chart" .}}{{end}}
{{range .Comparisons}}<h2>{{.Title}}</h2>{{template "chart" .Prior}}{{template "chart" .Current}}{{end}}
{{range .FeeTables}}<div class="fees" id="{{.ID}}">{{feeTable .HTML}}</div>{{end}}
{{if .Failed}}<p class="failed">Not rendered (missing data): {{range $i, $id := .Failed}}{{if $i}}, {{end}}{{$id}}{{end}}</p>{{end}}
{{end}}
</body>
</html>
{{define "chart"}}<div class="chart" id="{{.ID}}">
<h3>{{.Title}}</h3>
{{if .Center.Caption}}<div class="center">{{range lines .Center.Caption}}{{.}}<br>{{end}}{{.Center.Value}}{{if .Center.Change}}<br><span class="{{if .Center.Increase}}up{{else}}down{{end}}">{{.Center.Change}}</span>{{end}}</div>{{end}}
{{$chart := .}}{{range .Bars}}<div class="bar-row"><div class="bar-label">{{.Category}}</div><div class="bar-track"><div class="bar" style="width: {{barWidth . $chart.Bars}}%; background: {{barColor .Color}}"></div></div><div class="bar-value">{{.Label}} {{share .Category $chart.Slices}}{{if .ChangeLabel}} <span class="{{if .Increase}}up{{else}}down{{end}}">{{.ChangeLabel}}</span>{{end}}</div></div>
{{end}}</div>
{{end}}`))

func (r *ExportRepositoryImpl) ExportToHTML(reports []entity.PageReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating HTML file: %w", err)
	}
	defer file.Close()

	data := struct {
		Generated string
		Reports   []entity.PageReport
	}{
		Generated: time.Now().Format("2006-01-02 15:04"),
		Reports:   reports,
	}
	if err := pageTemplate.Execute(file, data); err != nil {
		return "", fmt.Errorf("error rendering HTML report: %w", err)
	}

	return filepath.Abs(outputFilename)
}
