package quoting

import (
	"strings"
	"testing"
	"time"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository/mocks"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/usecases/quoting/pdf"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newQuoterForTest(t *testing.T) (*Service, *mocks.MockQuoteRepository, *mocks.MockClientRepository, *mocks.MockServiceRepository) {
	ctrl := gomock.NewController(t)

	mockQuoteRepo := mocks.NewMockQuoteRepository(ctrl)
	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)

	service := &Service{
		quoteRepo:   mockQuoteRepo,
		clientRepo:  mockClientRepo,
		serviceRepo: mockServiceRepo,
		pdfGen:      pdf.NewGenerator("OrçaFácil"),
	}

	return service, mockQuoteRepo, mockClientRepo, mockServiceRepo
}

func TestCreateQuote(t *testing.T) {
	companyID := 1

	service, mockQuoteRepo, mockClientRepo, mockServiceRepo := newQuoterForTest(t)

	mockClientRepo.EXPECT().
		GetByID(companyID, 10).
		Return(&domain.Client{ID: 10, CompanyID: companyID, Name: "Maria"}, nil)

	mockServiceRepo.EXPECT().
		GetByID(companyID, 5).
		Return(&domain.Service{ID: 5, CompanyID: companyID, Name: "Pintura", BasePrice: 80}, nil)

	mockServiceRepo.EXPECT().
		GetByID(companyID, 6).
		Return(&domain.Service{ID: 6, CompanyID: companyID, Name: "Instalação elétrica", BasePrice: 150}, nil)

	mockQuoteRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(quote *domain.Quote) (*domain.Quote, error) {
			quote.ID = 99
			quote.CreatedAt = time.Now()
			return quote, nil
		})

	quote, err := service.CreateQuote(companyID, CreateQuoteInput{
		ClientID:    10,
		Description: "Reforma da sala",
		Items: []CreateQuoteItemInput{
			{ServiceID: 5, Quantity: 3},                  // usa o preço base do catálogo
			{ServiceID: 6, Quantity: 2, UnitPrice: 120},  // preço negociado
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 99, quote.ID)
	assert.Equal(t, companyID, quote.CompanyID)
	assert.Equal(t, domain.QuoteStatusDraft, quote.Status)

	// Número gerado no formato ORC-XXXXXX
	assert.True(t, strings.HasPrefix(quote.Number, "ORC-"))
	assert.Len(t, quote.Number, 10)

	// Total calculado no servidor: 3*80 + 2*120 = 480
	assert.Equal(t, 480.0, quote.TotalValue)

	// Nome do serviço congelado no item
	assert.Len(t, quote.Items, 2)
	assert.Equal(t, "Pintura", quote.Items[0].ServiceName)
	assert.Equal(t, 80.0, quote.Items[0].UnitPrice)
	assert.Equal(t, "Instalação elétrica", quote.Items[1].ServiceName)
	assert.Equal(t, 120.0, quote.Items[1].UnitPrice)
}

func TestCreateQuote_Validation(t *testing.T) {
	companyID := 1

	tests := []struct {
		name        string
		input       CreateQuoteInput
		setup       func(*mocks.MockQuoteRepository, *mocks.MockClientRepository, *mocks.MockServiceRepository)
		expectedErr error
	}{
		{
			name:        "sem itens",
			input:       CreateQuoteInput{ClientID: 10},
			setup:       func(_ *mocks.MockQuoteRepository, _ *mocks.MockClientRepository, _ *mocks.MockServiceRepository) {},
			expectedErr: ErrNoItems,
		},
		{
			name: "cliente inexistente",
			input: CreateQuoteInput{
				ClientID: 999,
				Items:    []CreateQuoteItemInput{{ServiceID: 5, Quantity: 1}},
			},
			setup: func(_ *mocks.MockQuoteRepository, clientRepo *mocks.MockClientRepository, _ *mocks.MockServiceRepository) {
				clientRepo.EXPECT().GetByID(companyID, 999).Return(nil, nil)
			},
			expectedErr: ErrClientNotFound,
		},
		{
			name: "quantidade inválida",
			input: CreateQuoteInput{
				Items: []CreateQuoteItemInput{{ServiceID: 5, Quantity: 0}},
			},
			setup:       func(_ *mocks.MockQuoteRepository, _ *mocks.MockClientRepository, _ *mocks.MockServiceRepository) {},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name: "serviço inexistente",
			input: CreateQuoteInput{
				Items: []CreateQuoteItemInput{{ServiceID: 999, Quantity: 1}},
			},
			setup: func(_ *mocks.MockQuoteRepository, _ *mocks.MockClientRepository, serviceRepo *mocks.MockServiceRepository) {
				serviceRepo.EXPECT().GetByID(companyID, 999).Return(nil, nil)
			},
			expectedErr: ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockQuoteRepo, mockClientRepo, mockServiceRepo := newQuoterForTest(t)
			tt.setup(mockQuoteRepo, mockClientRepo, mockServiceRepo)

			quote, err := service.CreateQuote(companyID, tt.input)

			assert.Nil(t, quote)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestUpdateQuoteStatus(t *testing.T) {
	companyID := 1
	quoteID := 50

	tests := []struct {
		name          string
		currentStatus domain.QuoteStatus
		newStatus     domain.QuoteStatus
		expectUpdate  bool
		expectedErr   error
	}{
		{
			name:          "rascunho pode ser enviado",
			currentStatus: domain.QuoteStatusDraft,
			newStatus:     domain.QuoteStatusSent,
			expectUpdate:  true,
		},
		{
			name:          "enviado pode ser aprovado",
			currentStatus: domain.QuoteStatusSent,
			newStatus:     domain.QuoteStatusApproved,
			expectUpdate:  true,
		},
		{
			name:          "enviado pode ser rejeitado",
			currentStatus: domain.QuoteStatusSent,
			newStatus:     domain.QuoteStatusRejected,
			expectUpdate:  true,
		},
		{
			name:          "rascunho não pode ser aprovado direto",
			currentStatus: domain.QuoteStatusDraft,
			newStatus:     domain.QuoteStatusApproved,
			expectedErr:   ErrInvalidTransition,
		},
		{
			name:          "aprovado é estado final",
			currentStatus: domain.QuoteStatusApproved,
			newStatus:     domain.QuoteStatusRejected,
			expectedErr:   ErrInvalidTransition,
		},
		{
			name:          "status desconhecido é rejeitado",
			currentStatus: domain.QuoteStatusDraft,
			newStatus:     domain.QuoteStatus("arquivado"),
			expectedErr:   ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockQuoteRepo, _, _ := newQuoterForTest(t)

			if tt.newStatus.Valid() {
				mockQuoteRepo.EXPECT().
					GetByID(companyID, quoteID).
					Return(&domain.Quote{ID: quoteID, CompanyID: companyID, Status: tt.currentStatus}, nil)
			}

			if tt.expectUpdate {
				mockQuoteRepo.EXPECT().
					UpdateStatus(companyID, quoteID, tt.newStatus).
					Return(nil)
			}

			quote, err := service.UpdateQuoteStatus(companyID, quoteID, tt.newStatus)

			if tt.expectedErr != nil {
				assert.Nil(t, quote)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.newStatus, quote.Status)
		})
	}
}

func TestGetQuote_NotFound(t *testing.T) {
	service, mockQuoteRepo, _, _ := newQuoterForTest(t)

	mockQuoteRepo.EXPECT().
		GetByID(1, 123).
		Return(nil, nil)

	quote, err := service.GetQuote(1, 123)

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestGenerateQuotePDF(t *testing.T) {
	service, mockQuoteRepo, _, _ := newQuoterForTest(t)

	mockQuoteRepo.EXPECT().
		GetByID(1, 77).
		Return(&domain.Quote{
			ID:          77,
			Number:      "ORC-ABC123",
			CompanyID:   1,
			ClientName:  "João",
			Description: "Manutenção preventiva",
			Status:      domain.QuoteStatusSent,
			TotalValue:  350,
			Items: []domain.QuoteItem{
				{ServiceName: "Revisão geral", Quantity: 1, UnitPrice: 350},
			},
			CreatedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

	data, err := service.GenerateQuotePDF(1, 77)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
