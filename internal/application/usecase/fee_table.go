package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/diillson/budget-dashboard-go/internal/domain/aggregate"
	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
	"github.com/diillson/budget-dashboard-go/pkg/format"
)

// Categorias do dataset de totais usadas pela tabela.
const (
	FeeNetTuition     = "Net Tuition"
	FeeLabSupplement  = "Laboratory & Supplemental Fees"
	FeeMandatory      = "Mandatory Fee"
	FeeProgram        = "Program, Course Related & Other Fees"
	FeeGrandTotalText = "Total Tuition and Student Fees"
)

var feeTableTemplate = template.Must(template.New("fees").Funcs(template.FuncMap{
	"rowClass": feeRowClass,
}).Parse(`{{range .}}<div class="{{rowClass .Kind}}"><div>{{.Label}}</div><div class="fees-num">{{.Formatted}}</div></div>
{{end}}`))

func feeRowClass(kind entity.FeeRowKind) string {
	switch kind {
	case entity.FeeRowHead:
		return "fees-row fees-head"
	case entity.FeeRowSection:
		return "fees-row fees-section"
	case entity.FeeRowSub:
		return "fees-row fees-sub"
	case entity.FeeRowTotal:
		return "fees-row fees-total"
	default:
		return "fees-row"
	}
}

// FeeTableResult carries the table plus what went wrong while assembling it.
type FeeTableResult struct {
	Table entity.FeeTable
	// Missing lists dataset keys absent from the payload; they were treated as empty.
	Missing []string
	// Duplicates lists categories repeated in the totals dataset.
	Duplicates []string
}

// BuildFeeTable monta a tabela de tuition e fees. Os totais de seção vêm do dataset de
// totais; os itens de cada seção seguem a ordem de prioridade informada.
func BuildFeeTable(ds entity.Datasets, spec types.ChartSpec, priority types.FeePriority) (FeeTableResult, error) {
	fs := entity.GenericFields
	var result FeeTableResult

	load := func(name string) []entity.Record {
		if name == "" {
			return nil
		}
		records, ok := ds.Resolve(name, fs)
		if !ok {
			result.Missing = append(result.Missing, name)
		}
		return records
	}

	totals := load(spec.Dataset)
	mandatoryOrder := priority.Mandatory
	if len(mandatoryOrder) == 0 {
		mandatoryOrder = DefaultMandatoryOrder
	}
	programOrder := priority.Program
	if len(programOrder) == 0 {
		programOrder = DefaultProgramOrder
	}
	mandatory := aggregate.OrderByPriority(load(spec.MandatoryDataset), mandatoryOrder)
	program := aggregate.OrderByPriority(load(spec.ProgramDataset), programOrder)

	totalsMap, duplicates := aggregate.TotalsMap(totals)
	result.Duplicates = duplicates

	netTuition := totalsMap[FeeNetTuition]
	labSupp := totalsMap[FeeLabSupplement]
	mandatoryTotal := totalsMap[FeeMandatory]
	programTotal := totalsMap[FeeProgram]
	grandTotal := netTuition + labSupp + mandatoryTotal + programTotal

	row := func(kind entity.FeeRowKind, label string, amount float64) entity.FeeRow {
		return entity.FeeRow{Kind: kind, Label: label, Amount: amount, Formatted: format.FormatMoney(amount)}
	}

	rows := []entity.FeeRow{
		{Kind: entity.FeeRowHead, Label: "Division", Formatted: "Total"},
		row(entity.FeeRowSection, FeeNetTuition, netTuition),
		row(entity.FeeRowItem, FeeLabSupplement, labSupp),
		row(entity.FeeRowSection, FeeMandatory, mandatoryTotal),
	}
	for _, r := range mandatory {
		rows = append(rows, row(entity.FeeRowSub, r.Category, r.Amount))
	}
	rows = append(rows, row(entity.FeeRowSection, FeeProgram, programTotal))
	for _, r := range program {
		rows = append(rows, row(entity.FeeRowSub, r.Category, r.Amount))
	}
	rows = append(rows, row(entity.FeeRowTotal, FeeGrandTotalText, grandTotal))

	html, err := RenderFeeTableHTML(rows)
	if err != nil {
		return result, err
	}

	result.Table = entity.FeeTable{
		ID:         spec.ID,
		Rows:       rows,
		GrandTotal: grandTotal,
		HTML:       html,
	}
	return result, nil
}

// RenderFeeTableHTML renders rows as the fees-row markup. Labels are HTML-escaped.
func RenderFeeTableHTML(rows []entity.FeeRow) (string, error) {
	var buf bytes.Buffer
	if err := feeTableTemplate.Execute(&buf, rows); err != nil {
		return "", fmt.Errorf("erro ao renderizar tabela de fees: %w", err)
	}
	return buf.String(), nil
}
