package dashboarding

import (
	"fmt"
	"sync"
	"time"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// quantidade de orçamentos recentes retornados no overview
const recentBudgetsLimit = 10

// Overviewer monta o overview do dashboard de uma empresa
type Overviewer interface {
	// GetOverview resolve o range nomeado e agrega KPIs, séries, rankings e
	// orçamentos recentes do período. Ou retorna o resultado completo, ou um
	// erro; nunca um resultado parcial.
	GetOverview(companyID int, rangeName string) (*domain.OverviewResponse, error)
}

type Service struct {
	quoteRepo   repository.QuoteRepository
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

func NewService(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
) Overviewer {
	return &Service{
		quoteRepo:   quoteRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		now:         time.Now,
	}
}

func (s *Service) GetOverview(companyID int, rangeName string) (*domain.OverviewResponse, error) {
	if companyID == 0 {
		return nil, ErrCompanyRequired
	}

	period := ResolvePeriod(rangeName, s.now())

	// As consultas são independentes e somente leitura; disparar em paralelo
	// é só uma otimização de latência.
	var (
		summary       *domain.QuotePeriodSummary
		quotes        []*domain.QuoteSummary
		recent        []*domain.QuoteSummary
		items         []*domain.QuoteItemSummary
		newClients    int
		servicesCount int

		summaryErr  error
		quotesErr   error
		recentErr   error
		itemsErr    error
		clientsErr  error
		servicesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(6)

	go func() {
		defer wg.Done()
		summary, summaryErr = s.quoteRepo.GetPeriodSummary(companyID, period.Start, period.End)
	}()

	go func() {
		defer wg.Done()
		quotes, quotesErr = s.quoteRepo.ListSummariesByPeriod(companyID, period.Start, period.End)
	}()

	go func() {
		defer wg.Done()
		recent, recentErr = s.quoteRepo.ListRecentByPeriod(companyID, period.Start, period.End, recentBudgetsLimit)
	}()

	go func() {
		defer wg.Done()
		items, itemsErr = s.quoteRepo.ListItemSummariesByPeriod(companyID, period.Start, period.End)
	}()

	go func() {
		defer wg.Done()
		newClients, clientsErr = s.clientRepo.CountCreatedBetween(companyID, period.Start, period.End)
	}()

	go func() {
		defer wg.Done()
		servicesCount, servicesErr = s.serviceRepo.CountByCompany(companyID)
	}()

	wg.Wait()

	// Qualquer falha aborta a agregação inteira; não há resposta parcial
	for _, err := range []error{summaryErr, quotesErr, recentErr, itemsErr, clientsErr, servicesErr} {
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": companyID,
				"range":      period.Range,
			}).WithError(err).Error("Erro ao buscar dados do overview")

			return nil, fmt.Errorf("%w: %v", ErrOverviewFailed, err)
		}
	}

	kpis := domain.OverviewKPIs{
		Budgets:         summary.Budgets,
		Approved:        summary.Approved,
		Conversion:      utils.Percent(summary.Approved, summary.Budgets),
		TotalValue:      summary.TotalValue,
		AvgTicket:       summary.AvgTicket,
		NewClients:      newClients,
		ServicesCatalog: servicesCount,
	}

	return &domain.OverviewResponse{
		OK:     true,
		Period: period,
		KPIs:   kpis,
		Series: domain.OverviewSeries{
			Revenue:    buildRevenueSeries(period, quotes),
			Conversion: buildConversionSeries(quotes),
		},
		Top: domain.OverviewTop{
			Services: buildTopServices(items),
			Clients:  buildTopClients(quotes),
		},
		RecentBudgets: recentBudgets(recent),
	}, nil
}

func recentBudgets(quotes []*domain.QuoteSummary) []domain.RecentBudget {
	budgets := make([]domain.RecentBudget, 0, len(quotes))
	for _, quote := range quotes {
		budgets = append(budgets, domain.RecentBudget{
			ID:          quote.ID,
			CreatedAt:   quote.CreatedAt,
			Status:      quote.Status,
			ValorTotal:  quote.TotalValue,
			ClienteNome: displayName(quote.ClientName),
		})
	}
	return budgets
}
