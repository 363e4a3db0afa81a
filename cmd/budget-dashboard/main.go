package main

import (
	"fmt"
	"os"

	"github.com/diillson/budget-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/budget-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/budget-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/budget-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/budget-dashboard-go/internal/application/usecase"
	"github.com/diillson/budget-dashboard-go/pkg/console"
	"github.com/diillson/budget-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	sourceFactory := dataset.NewSourceFactory()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		sourceFactory,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
