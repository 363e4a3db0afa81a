package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

// Páginas conhecidas do dashboard.
const (
	PageBudget = "budget"
	PageCuts   = "cuts"
	PageFees   = "fees"
	PageAWS    = "aws"
	PageAll    = "all"
)

// DefaultPages são as páginas montadas quando nenhuma é pedida.
var DefaultPages = []string{PageBudget, PageCuts, PageFees}

// DefaultCharts reproduces the charts of the budget site, keyed by the container ids it uses.
var DefaultCharts = []types.ChartSpec{
	{Page: PageBudget, Kind: "fiscal-year", ID: "chart_Operating_Revenue26", Dataset: "FY26_Operating_Revenue", Fields: "revenue", Title: "FY26 Operating Revenue"},
	{Page: PageBudget, Kind: "fiscal-year", ID: "chart_Non-operating_Revenue26", Dataset: "FY26_Non-operating_Revenue", Fields: "revenue", Title: "FY26 Non-operating Revenue"},
	{Page: PageBudget, Kind: "fiscal-year", ID: "chart_Expense26", Dataset: "FY26_Expense", Fields: "expense", Title: "FY26 Expense"},

	{
		Page: PageCuts, Kind: "comparison", Title: "Operating Revenue",
		PriorID: "chart_Operating_Revenue25", PriorDataset: "FY25_Operating_Revenue", PriorPeriod: "2025",
		ID: "chart_Operating_RevenueChange26", Dataset: "FY26_Operating_Revenue", Period: "2026",
		Fields: "revenue",
	},
	{
		Page: PageCuts, Kind: "comparison", Title: "Non-operating Revenue",
		PriorID: "chart_Non-operating_Revenue25", PriorDataset: "FY25_Non-operating_Revenue", PriorPeriod: "2025",
		ID: "chart_Non-operating_RevenueChange26", Dataset: "FY26_Non-operating_Revenue", Period: "2026",
		Fields: "revenue",
	},
	{
		Page: PageCuts, Kind: "comparison", Title: "Expense",
		PriorID: "chart_Expense25", PriorDataset: "FY25_Expense", PriorPeriod: "2025",
		ID: "chart_ExpenseChange26", Dataset: "FY26_Expense", Period: "2026",
		Fields: "expense",
	},

	{Page: PageFees, Kind: "fee-totals", ID: "chart_StudentFeesTotals", Dataset: "FY26_TuitionAndStudentFees_Totals", Title: "Tuition and Student Fees"},
	{Page: PageFees, Kind: "fee-breakdown", ID: "chart_StudentFeesOverview", Dataset: "FY26_TuitionAndStudentFees_Totals", Title: "TOTAL REVENUE"},
	{Page: PageFees, Kind: "fee-breakdown", ID: "chart_MandatoryFeeBreakdown", Dataset: "FY26_MandatoryFees", Title: "TOTAL MANDATORY"},
	{Page: PageFees, Kind: "fee-breakdown", ID: "chart_ProgramFeesBreakdown", Dataset: "FY26_ProgramCourseOtherFees", Title: "TOTAL PROGRAM"},
	{
		Page: PageFees, Kind: "fee-table", ID: "studentFeesTable",
		Dataset: "FY26_TuitionAndStudentFees_Totals", MandatoryDataset: "FY26_MandatoryFees", ProgramDataset: "FY26_ProgramCourseOtherFees",
	},

	{
		Page: PageAWS, Kind: "comparison", Title: "AWS Cost by Service",
		PriorID: "chart_AWS_CostPrevious", PriorDataset: "AWS_Cost_Previous", PriorPeriod: "LAST MONTH",
		ID: "chart_AWS_CostCurrent", Dataset: "AWS_Cost_Current", Period: "THIS MONTH",
	},
	{Page: PageAWS, Kind: "fee-breakdown", ID: "chart_AWS_Budgets", Dataset: "AWS_Budgets", Title: "TOTAL ACTUAL SPEND"},
}

// DefaultMandatoryOrder is the display order of the mandatory fee rows.
var DefaultMandatoryOrder = []string{
	"Advising Fee",
	"Athletic Program Fee",
	"Green Fee",
	"Information Technology Fee",
	"Infrastructure Fee",
	"Library Acquisition Fee",
	"Medical Services Fee",
	"Recreation Fee",
	"Student Business Services Fee",
	"Student Services Fee",
	"Student Services Building Fee",
	"Student Union Fee",
	"Transportation Fee",
	"Exemption",
}

// DefaultProgramOrder is the display order of the program, course related and other fee rows.
var DefaultProgramOrder = []string{
	"Application Fee",
	"Bursar Fees, Late Fees",
	"Chec Collin County",
	"CPT Fee Sharing",
	"Credit Card Services Fee",
	"EIPP Fee - Indust Practice Pgm",
	"Faculty Led Student Fee",
	"Ftrip Fee - Geosciences",
	"Ftrip Fee - JSOM Study Abroad",
	"General Studies Distance Education Fee",
	"Global MBA Distance Fee",
	"International Education Fee",
	"International Student Special Serv Fee",
	"International Travel Ins Fee",
	"Library Fines/Lost Book Fund",
	"Online Services Fee",
	"Physical Instruction Fee",
	"Practice Training Fee",
	"Record Late/Reinstatement Fee",
	"Records Processing Fee",
	"SA Fee - Application",
	"Student Teaching Fee",
}

// SelectCharts returns, grouped by page in the order requested, the chart specs to build.
// An empty pages list selects DefaultPages (every page for custom specs); "all" selects
// every page the specs mention.
func SelectCharts(pages []string, specs []types.ChartSpec) ([]string, map[string][]types.ChartSpec, error) {
	custom := len(specs) > 0
	if !custom {
		specs = DefaultCharts
	}

	byPage := make(map[string][]types.ChartSpec)
	var known []string
	for _, spec := range specs {
		page := spec.Page
		if page == "" {
			page = PageBudget
		}
		if _, ok := byPage[page]; !ok {
			known = append(known, page)
		}
		byPage[page] = append(byPage[page], spec)
	}

	if len(pages) == 0 {
		pages = DefaultPages
		if custom {
			pages = []string{PageAll}
		}
	}

	var selected []string
	seen := map[string]bool{}
	for _, p := range pages {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == PageAll {
			for _, k := range known {
				if !seen[k] {
					selected = append(selected, k)
					seen[k] = true
				}
			}
			continue
		}
		if _, ok := byPage[p]; !ok {
			sort.Strings(known)
			return nil, nil, fmt.Errorf("%w '%s' (available: %s)", types.ErrUnknownPage, p, strings.Join(known, ", "))
		}
		if !seen[p] {
			selected = append(selected, p)
			seen[p] = true
		}
	}

	return selected, byPage, nil
}
