package cli

import (
	"context"
	"path/filepath"

	"github.com/diillson/budget-dashboard-go/pkg/version"

	"github.com/diillson/budget-dashboard-go/internal/application/usecase"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:          "budget-dashboard",
		Short:        "Budget Dashboard CLI",
		Long:         "Builds budget charts (fiscal year, year-over-year comparison, tuition and fees) from a JSON data file.",
		Version:      version.FormatVersion(),
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Budget Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("source", "s", "", "Data source: file, http, s3 or aws (default: inferred from --data)")
	rootCmd.PersistentFlags().StringP("data", "f", "", "Location of the data file: path, http(s) URL or s3://bucket/key (default: data.json)")
	rootCmd.PersistentFlags().StringSliceP("page", "P", nil, "Dashboard pages to build: budget, cuts, fees, aws, all (default: budget,cuts,fees)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: json, yaml, csv, pdf, xlsx, html")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for loading the data (default 15s)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile used by the s3 and aws sources")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Do not draw the charts in the terminal")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	source, _ := flags.GetString("source")
	dataPath, _ := flags.GetString("data")
	pages, _ := flags.GetStringSlice("page")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	timeout, _ := flags.GetDuration("timeout")
	profile, _ := flags.GetString("profile")
	quiet, _ := flags.GetBool("quiet")

	// Diretório vazio fica para a configuração ou para o diretório corrente
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Source:     source,
		DataPath:   dataPath,
		Profile:    profile,
		Pages:      pages,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Timeout:    timeout,
		Quiet:      quiet,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetArgs substitui os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}
