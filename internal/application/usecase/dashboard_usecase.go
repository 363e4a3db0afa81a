package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

const (
	// DefaultTimeout limita o carregamento dos datasets.
	DefaultTimeout = 15 * time.Second
	// DefaultDataPath é o arquivo lido quando nenhuma origem é informada.
	DefaultDataPath = "data.json"
	// DefaultEnvFile guarda valores padrão opcionais.
	DefaultEnvFile = ".env"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	sources    repository.DatasetSourceFactory
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	sources repository.DatasetSourceFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		sources:    sources,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunSettings is the configuration of one run after flags, config file and environment are merged.
type RunSettings struct {
	Args     types.CLIArgs
	Charts   []types.ChartSpec
	Priority types.FeePriority
}

// ResolveSettings mescla as fontes de configuração. Flags têm precedência sobre o arquivo
// de configuração, que tem precedência sobre o ambiente.
func (uc *DashboardUseCase) ResolveSettings(args *types.CLIArgs) (*RunSettings, error) {
	settings := &RunSettings{Args: *args}

	envConfig, err := uc.configRepo.LoadEnvDefaults(DefaultEnvFile)
	if err != nil {
		return nil, err
	}

	var fileConfig *types.Config
	if args.ConfigFile != "" {
		fileConfig, err = uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	// Arquivo primeiro, ambiente depois: só preenchem o que ainda está vazio.
	for _, cfg := range []*types.Config{fileConfig, envConfig} {
		if cfg == nil {
			continue
		}
		if err := mergeConfig(&settings.Args, cfg); err != nil {
			return nil, err
		}
	}

	if fileConfig != nil {
		settings.Charts = fileConfig.Charts
		settings.Priority = fileConfig.Priority
	}

	if settings.Args.Timeout <= 0 {
		settings.Args.Timeout = DefaultTimeout
	}
	if settings.Args.Source == "" && settings.Args.DataPath == "" {
		settings.Args.DataPath = DefaultDataPath
	}

	return settings, nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) error {
	if args.Source == "" {
		args.Source = cfg.Source
	}
	if args.DataPath == "" {
		args.DataPath = cfg.DataPath
	}
	if args.Profile == "" {
		args.Profile = cfg.Profile
	}
	if len(args.Pages) == 0 {
		args.Pages = cfg.Pages
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.Timeout <= 0 && cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", cfg.Timeout, err)
		}
		args.Timeout = d
	}
	return nil
}

// LoadDatasets busca o payload uma única vez; todos os gráficos da execução o compartilham.
func (uc *DashboardUseCase) LoadDatasets(ctx context.Context, settings *RunSettings) (entity.Datasets, error) {
	repo, err := uc.sources.NewDatasetRepository(settings.Args.Source, settings.Args.DataPath, settings.Args.Profile)
	if err != nil {
		return nil, err
	}

	status := uc.console.Status(fmt.Sprintf("Loading datasets from %s...", repo.Describe()))
	defer status.Stop()

	ctx, cancel := context.WithTimeout(ctx, settings.Args.Timeout)
	defer cancel()

	datasets, err := repo.LoadDatasets(ctx)
	var skipped *types.SkippedDatasetError
	if errors.As(err, &skipped) && datasets != nil {
		uc.console.LogWarning("Skipped dataset %s: %v", skipped.Dataset, skipped.Err)
		return datasets, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets from %s: %w", repo.Describe(), err)
	}
	return datasets, nil
}

// BuildPage runs every builder of a page. A builder that fails is logged and skipped;
// the remaining charts are still built.
func (uc *DashboardUseCase) BuildPage(
	page string,
	specs []types.ChartSpec,
	datasets entity.Datasets,
	priority types.FeePriority,
) entity.PageReport {
	report := entity.PageReport{Page: page}

	for _, spec := range specs {
		if err := uc.buildChart(&report, spec, datasets, priority); err != nil {
			var missing *types.MissingDatasetError
			if errors.As(err, &missing) {
				uc.console.LogError("Missing data: %s", strings.Join(missing.Keys, ", "))
			} else {
				uc.console.LogError("Failed to build chart %s: %s", spec.ID, err)
			}
			report.Failed = append(report.Failed, spec.ID)
		}
	}

	return report
}

func (uc *DashboardUseCase) buildChart(
	report *entity.PageReport,
	spec types.ChartSpec,
	datasets entity.Datasets,
	priority types.FeePriority,
) error {
	switch entity.ChartKind(spec.Kind) {
	case entity.ChartFiscalYear:
		fs, err := entity.ParseFieldSet(spec.Fields)
		if err != nil {
			return err
		}
		chart, err := BuildFiscalYear(datasets, spec, fs)
		if err != nil {
			return err
		}
		report.Charts = append(report.Charts, chart)

	case entity.ChartComparison:
		fs, err := entity.ParseFieldSet(spec.Fields)
		if err != nil {
			return err
		}
		comparison, err := BuildComparison(datasets, spec, fs)
		if err != nil {
			return err
		}
		report.Comparisons = append(report.Comparisons, comparison)

	case entity.ChartFeeTotals:
		chart, err := BuildFeeTotals(datasets, spec)
		if err != nil {
			return err
		}
		report.Charts = append(report.Charts, chart)

	case entity.ChartFeeBreakdown:
		chart, err := BuildFeeBreakdown(datasets, spec)
		if err != nil {
			return err
		}
		report.Charts = append(report.Charts, chart)

	case entity.ChartFeeTable:
		result, err := BuildFeeTable(datasets, spec, priority)
		if err != nil {
			return err
		}
		for _, name := range result.Missing {
			uc.console.LogWarning("Missing data: %s (treated as empty)", name)
		}
		for _, category := range result.Duplicates {
			uc.console.LogWarning("Duplicate category '%s' in %s: last value wins", category, spec.Dataset)
		}
		report.FeeTables = append(report.FeeTables, result.Table)

	default:
		return fmt.Errorf("unknown chart kind '%s'", spec.Kind)
	}
	return nil
}

// RunDashboard monta as páginas pedidas, exibe no terminal e exporta os relatórios.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	settings, err := uc.ResolveSettings(args)
	if err != nil {
		return err
	}

	pages, byPage, err := SelectCharts(settings.Args.Pages, settings.Charts)
	if err != nil {
		return err
	}

	datasets, err := uc.LoadDatasets(ctx, settings)
	if err != nil {
		return err
	}
	uc.console.LogInfo("Loaded %d datasets", len(datasets))

	reports := make([]entity.PageReport, 0, len(pages))
	for _, page := range pages {
		report := uc.BuildPage(page, byPage[page], datasets, settings.Priority)
		reports = append(reports, report)
		if !settings.Args.Quiet {
			uc.displayPage(report)
		}
	}

	uc.exportReports(reports, &settings.Args)
	return nil
}

func (uc *DashboardUseCase) displayPage(report entity.PageReport) {
	uc.console.Println()
	uc.console.Printf("== %s ==\n", strings.ToUpper(report.Page))

	for _, chart := range report.Charts {
		uc.console.DisplayChart(chart)
	}
	for _, comparison := range report.Comparisons {
		uc.console.DisplayChart(comparison.Prior)
		uc.console.DisplayChart(comparison.Current)
	}
	for _, table := range report.FeeTables {
		uc.console.DisplayFeeTable(table)
	}
}

func (uc *DashboardUseCase) exportReports(reports []entity.PageReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(reportType) {
		case "json":
			path, err = uc.exportRepo.ExportToJSON(reports, args.ReportName, args.Dir)
		case "yaml":
			path, err = uc.exportRepo.ExportToYAML(reports, args.ReportName, args.Dir)
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(reports, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(reports, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(reports, args.ReportName, args.Dir)
		case "html":
			path, err = uc.exportRepo.ExportToHTML(reports, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", label, err)
		} else {
			uc.console.LogSuccess("Successfully exported to %s: %s", label, path)
		}
	}
}
