package aws

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/budget-dashboard-go/internal/domain/aggregate"
	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

// Nomes dos datasets sintetizados a partir da conta AWS.
const (
	DatasetCostPrevious = "AWS_Cost_Previous"
	DatasetCostCurrent  = "AWS_Cost_Current"
	DatasetBudgets      = "AWS_Budgets"
)

// CostExplorerAPI is the part of the Cost Explorer client the repository uses.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// BudgetsAPI is the part of the Budgets client the repository uses.
type BudgetsAPI interface {
	DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error)
}

// STSAPI is the part of the STS client the repository uses.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Clients agrupa os clientes AWS usados pelo repositório.
type Clients struct {
	CostExplorer CostExplorerAPI
	Budgets      BudgetsAPI
	STS          STSAPI
}

// CostRepository turns the cost by service of the previous and current month, and the
// account budgets, into generic category/amount datasets.
type CostRepository struct {
	profile string
	now     func() time.Time

	mu      sync.Mutex
	clients *Clients
}

// NewCostRepository creates the AWS source for profile. When clients is nil they are built
// from the shared AWS config on first use.
func NewCostRepository(profile string, clients *Clients) repository.DatasetRepository {
	return &CostRepository{
		profile: profile,
		now:     time.Now,
		clients: clients,
	}
}

func (r *CostRepository) getClients(ctx context.Context) (*Clients, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clients != nil {
		return r.clients, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	// Cost Explorer e Budgets só respondem em us-east-1.
	globalCfg := cfg.Copy()
	globalCfg.Region = "us-east-1"

	r.clients = &Clients{
		CostExplorer: costexplorer.NewFromConfig(globalCfg),
		Budgets:      budgets.NewFromConfig(globalCfg),
		STS:          sts.NewFromConfig(cfg),
	}
	return r.clients, nil
}

func (r *CostRepository) LoadDatasets(ctx context.Context) (entity.Datasets, error) {
	clients, err := r.getClients(ctx)
	if err != nil {
		return nil, err
	}

	today := r.now().UTC()
	currentStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	currentEnd := today.AddDate(0, 0, 1)
	previousStart := currentStart.AddDate(0, -1, 0)

	previous, err := r.getCostByService(ctx, clients.CostExplorer, previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("error getting previous period costs: %w", err)
	}
	current, err := r.getCostByService(ctx, clients.CostExplorer, currentStart, currentEnd)
	if err != nil {
		return nil, fmt.Errorf("error getting current period costs: %w", err)
	}

	datasets := entity.Datasets{
		DatasetCostPrevious: previous,
		DatasetCostCurrent:  withPercentChange(previous, current),
	}

	budgetRecords, err := r.getBudgets(ctx, clients)
	if err != nil {
		// Sem budgets os custos continuam utilizáveis
		return datasets, &types.SkippedDatasetError{Dataset: DatasetBudgets, Err: err}
	}
	datasets[DatasetBudgets] = budgetRecords

	return datasets, nil
}

func (r *CostRepository) getCostByService(ctx context.Context, client CostExplorerAPI, start, end time.Time) ([]entity.RawRecord, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	}

	totals := map[string]float64{}
	for {
		result, err := client.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, period := range result.ResultsByTime {
			for _, group := range period.Groups {
				if len(group.Keys) == 0 {
					continue
				}
				metric, ok := group.Metrics["UnblendedCost"]
				if !ok || metric.Amount == nil {
					continue
				}
				amount, _ := strconv.ParseFloat(*metric.Amount, 64)
				totals[group.Keys[0]] += amount
			}
		}

		if result.NextPageToken == nil {
			break
		}
		input.NextPageToken = result.NextPageToken
	}

	services := make([]string, 0, len(totals))
	for name, cost := range totals {
		// Ignora serviços sem custo relevante
		if cost > 0.001 {
			services = append(services, name)
		}
	}
	sort.Strings(services)

	records := make([]entity.RawRecord, 0, len(services))
	for _, name := range services {
		records = append(records, entity.RawRecord{"category": name, "amount": totals[name]})
	}
	return records, nil
}

// withPercentChange anota cada serviço do período atual com a variação sobre o anterior.
func withPercentChange(previous, current []entity.RawRecord) []entity.RawRecord {
	prior := make(map[string]float64, len(previous))
	for _, p := range previous {
		if name, ok := p["category"].(string); ok {
			prior[name], _ = p["amount"].(float64)
		}
	}

	for _, c := range current {
		name, _ := c["category"].(string)
		base, ok := prior[name]
		if !ok || base < 0.01 {
			continue
		}
		amount, _ := c["amount"].(float64)
		c["percentChange"] = aggregate.PercentChange(base, amount)
	}
	return current
}

func (r *CostRepository) getBudgets(ctx context.Context, clients *Clients) ([]entity.RawRecord, error) {
	identity, err := clients.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("error getting account ID: %w", err)
	}

	result, err := clients.Budgets.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
		AccountId: identity.Account,
	})
	if err != nil {
		return nil, fmt.Errorf("error describing budgets: %w", err)
	}

	records := []entity.RawRecord{}
	for _, budget := range result.Budgets {
		if budget.BudgetName == nil {
			continue
		}
		rec := entity.RawRecord{"category": *budget.BudgetName, "amount": 0.0}
		if budget.BudgetLimit != nil && budget.BudgetLimit.Amount != nil {
			rec["limit"], _ = strconv.ParseFloat(*budget.BudgetLimit.Amount, 64)
		}
		if spend := budget.CalculatedSpend; spend != nil {
			if spend.ActualSpend != nil && spend.ActualSpend.Amount != nil {
				rec["amount"], _ = strconv.ParseFloat(*spend.ActualSpend.Amount, 64)
			}
			if spend.ForecastedSpend != nil && spend.ForecastedSpend.Amount != nil {
				rec["forecast"], _ = strconv.ParseFloat(*spend.ForecastedSpend.Amount, 64)
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *CostRepository) Describe() string {
	if r.profile == "" {
		return "aws (default profile)"
	}
	return fmt.Sprintf("aws (profile %s)", r.profile)
}
