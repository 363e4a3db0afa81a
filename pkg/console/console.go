package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Largura máxima das barras desenhadas no terminal.
const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayChart desenha um gráfico como tabela de barras, com a participação de cada
// categoria no total e o rótulo central num painel separado.
func (c *Console) DisplayChart(chart entity.Chart) {
	fmt.Println("\n" + RenderChart(chart))
}

// RenderChart returns the terminal rendering of chart.
func RenderChart(chart entity.Chart) string {
	maxAmount := 0.0
	for _, bar := range chart.Bars {
		if bar.Amount > maxAmount {
			maxAmount = bar.Amount
		}
	}

	shares := make(map[string]entity.Slice, len(chart.Slices))
	for _, s := range chart.Slices {
		shares[s.Category] = s
	}

	header := []string{"Category", "Amount", ""}
	hasChange := false
	for _, bar := range chart.Bars {
		if bar.ChangeLabel != "" {
			hasChange = true
			break
		}
	}
	if hasChange {
		header = append(header, "Change")
	}
	if len(chart.Slices) > 0 {
		header = append(header, "Share")
	}

	tableData := pterm.TableData{header}
	for _, bar := range chart.Bars {
		length := 0
		if maxAmount > 0 && bar.Amount > 0 {
			length = int((bar.Amount / maxAmount) * barWidth)
		}
		if length == 0 && bar.Amount > 0 {
			length = 1
		}

		row := []string{bar.Category, bar.Label, colorize(bar.Color, strings.Repeat("█", length))}
		if hasChange {
			row = append(row, changeText(bar.ChangeLabel, bar.Increase))
		}
		if len(chart.Slices) > 0 {
			share := ""
			if s, ok := shares[bar.Category]; ok && !s.LabelHidden {
				share = s.Label
			}
			row = append(row, share)
		}
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	if chart.Center.Caption != "" || chart.Center.Value != "" {
		renderedTable += "\n" + renderCenter(chart.Center)
	}

	return pterm.DefaultBox.
		WithTitle(chart.Title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)
}

func renderCenter(center entity.CenterLabel) string {
	lines := []string{BrightCyan(center.Caption), BrightMagenta(center.Value)}
	if center.Change != "" {
		lines = append(lines, changeText(center.Change, center.Increase))
	}
	return pterm.DefaultBox.WithBoxStyle(pterm.NewStyle(pterm.FgGray)).Sprint(strings.Join(lines, "\n"))
}

func changeText(text string, increase bool) string {
	switch {
	case text == "":
		return ""
	case strings.HasPrefix(text, "N/A"):
		return BrightYellow(text)
	case increase:
		return BrightGreen(text)
	default:
		return BrightRed(text)
	}
}

// colorize pinta o texto com a cor "#rrggbb" do registro, ou azul quando não há cor válida.
func colorize(hex, text string) string {
	if rgb, ok := parseHex(hex); ok {
		return rgb.Sprint(text)
	}
	return pterm.FgBlue.Sprint(text)
}

func parseHex(hex string) (pterm.RGB, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return pterm.RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pterm.RGB{}, false
	}
	return pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// DisplayFeeTable exibe a tabela de tuition e fees.
func (c *Console) DisplayFeeTable(feeTable entity.FeeTable) {
	fmt.Println("\n" + RenderFeeTable(feeTable))
}

// RenderFeeTable returns the terminal rendering of the fee table.
func RenderFeeTable(feeTable entity.FeeTable) string {
	var tableData pterm.TableData
	for _, row := range feeTable.Rows {
		switch row.Kind {
		case entity.FeeRowHead:
			tableData = append(tableData, []string{row.Label, row.Formatted})
		case entity.FeeRowSection:
			tableData = append(tableData, []string{BrightCyan(row.Label), BrightCyan(row.Formatted)})
		case entity.FeeRowSub:
			tableData = append(tableData, []string{"  " + row.Label, row.Formatted})
		case entity.FeeRowTotal:
			tableData = append(tableData, []string{BrightMagenta(row.Label), BrightMagenta(row.Formatted)})
		default:
			tableData = append(tableData, []string{row.Label, row.Formatted})
		}
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithRightAlignment().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}
