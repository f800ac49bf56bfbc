package quoting

import (
	"database/sql"
	"fmt"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/usecases/quoting/pdf"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreateQuoteItemInput é um item do orçamento na criação. Quando UnitPrice é
// zero, o preço base do serviço no catálogo é usado.
type CreateQuoteItemInput struct {
	ServiceID int     `json:"service_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateQuoteInput struct {
	ClientID    int                    `json:"client_id"`
	Description string                 `json:"description"`
	Items       []CreateQuoteItemInput `json:"items"`
}

// Quoter gerencia o ciclo de vida dos orçamentos de uma empresa
type Quoter interface {
	CreateQuote(companyID int, input CreateQuoteInput) (*domain.Quote, error)
	GetQuote(companyID, quoteID int) (*domain.Quote, error)
	ListQuotes(companyID, limit, offset int) ([]*domain.Quote, error)
	UpdateQuoteStatus(companyID, quoteID int, status domain.QuoteStatus) (*domain.Quote, error)
	GenerateQuotePDF(companyID, quoteID int) ([]byte, error)
}

type Service struct {
	quoteRepo   repository.QuoteRepository
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	pdfGen      *pdf.Generator
}

func NewService(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	pdfGen *pdf.Generator,
) Quoter {
	return &Service{
		quoteRepo:   quoteRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		pdfGen:      pdfGen,
	}
}

// CreateQuote valida cliente e itens, congela o nome e o preço de cada serviço
// no momento da criação e calcula o total no servidor. O orçamento sempre
// nasce como rascunho.
func (s *Service) CreateQuote(companyID int, input CreateQuoteInput) (*domain.Quote, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	if input.ClientID != 0 {
		client, err := s.clientRepo.GetByID(companyID, input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, ErrClientNotFound
		}
	}

	items := make([]domain.QuoteItem, 0, len(input.Items))
	total := 0.0

	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		service, err := s.serviceRepo.GetByID(companyID, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, ErrServiceNotFound
		}

		unitPrice := in.UnitPrice
		if unitPrice == 0 {
			unitPrice = service.BasePrice
		}

		item := domain.QuoteItem{
			ServiceID:   service.ID,
			ServiceName: service.Name,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
		}

		items = append(items, item)
		total += item.Subtotal()
	}

	number, err := utils.GenerateQuoteNumber()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar número do orçamento: %w", err)
	}

	quote := &domain.Quote{
		Number:      number,
		CompanyID:   companyID,
		ClientID:    input.ClientID,
		Description: input.Description,
		Status:      domain.QuoteStatusDraft,
		TotalValue:  utils.RoundWithTwoDecimalPlace(total),
		Items:       items,
	}

	quote, err = s.quoteRepo.Create(quote)
	if err != nil {
		logrus.WithField("company_id", companyID).WithError(err).Error("Erro ao criar orçamento")
		return nil, err
	}

	return quote, nil
}

func (s *Service) GetQuote(companyID, quoteID int) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(companyID, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}
	return quote, nil
}

func (s *Service) ListQuotes(companyID, limit, offset int) ([]*domain.Quote, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.quoteRepo.ListByCompany(companyID, limit, offset)
}

// UpdateQuoteStatus aplica uma transição de status. Só as transições do ciclo
// draft → sent → approved/rejected são permitidas; estados finais não mudam.
func (s *Service) UpdateQuoteStatus(companyID, quoteID int, status domain.QuoteStatus) (*domain.Quote, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	quote, err := s.quoteRepo.GetByID(companyID, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}

	if !quote.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, quote.Status, status)
	}

	if err := s.quoteRepo.UpdateStatus(companyID, quoteID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}

	quote.Status = status
	return quote, nil
}

func (s *Service) GenerateQuotePDF(companyID, quoteID int) ([]byte, error) {
	quote, err := s.GetQuote(companyID, quoteID)
	if err != nil {
		return nil, err
	}

	data, err := s.pdfGen.Generate(quote)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"quote_id":   quoteID,
		}).WithError(err).Error("Erro ao gerar PDF do orçamento")
		return nil, fmt.Errorf("erro ao gerar PDF do orçamento: %w", err)
	}

	return data, nil
}
