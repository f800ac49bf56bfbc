package dashboarding

import (
	"fmt"
	"testing"
	"time"

	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildTopServices(t *testing.T) {
	items := []*domain.QuoteItemSummary{
		{ServiceName: "Instalação elétrica", Quantity: 2, UnitPrice: 150},
		{ServiceName: "Pintura", Quantity: 1, UnitPrice: 800},
		{ServiceName: "Instalação elétrica", Quantity: 1, UnitPrice: 150},
	}

	ranking := buildTopServices(items)

	assert.Len(t, ranking, 2)

	// Pintura (800) vem antes de Instalação elétrica (450)
	assert.Equal(t, "Pintura", ranking[0].Name)
	assert.Equal(t, 1, ranking[0].Qty)
	assert.Equal(t, 800.0, ranking[0].Total)

	assert.Equal(t, "Instalação elétrica", ranking[1].Name)
	assert.Equal(t, 3, ranking[1].Qty)
	assert.Equal(t, 450.0, ranking[1].Total)
}

func TestBuildTopServices_LimitsToEight(t *testing.T) {
	items := make([]*domain.QuoteItemSummary, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, &domain.QuoteItemSummary{
			ServiceName: fmt.Sprintf("Serviço %d", i),
			Quantity:    1,
			UnitPrice:   float64(100 * (i + 1)),
		})
	}

	ranking := buildTopServices(items)

	assert.Len(t, ranking, 8)

	// Maior receita primeiro; o corte fica nos 8 maiores
	assert.Equal(t, "Serviço 11", ranking[0].Name)
	assert.Equal(t, 1200.0, ranking[0].Total)
	assert.Equal(t, "Serviço 4", ranking[7].Name)
	assert.Equal(t, 500.0, ranking[7].Total)
}

func TestBuildTopServices_TiesKeepFirstAppearanceOrder(t *testing.T) {
	items := []*domain.QuoteItemSummary{
		{ServiceName: "Primeiro empatado", Quantity: 1, UnitPrice: 300},
		{ServiceName: "Segundo empatado", Quantity: 1, UnitPrice: 300},
		{ServiceName: "Terceiro empatado", Quantity: 3, UnitPrice: 100},
	}

	ranking := buildTopServices(items)

	assert.Len(t, ranking, 3)
	assert.Equal(t, "Primeiro empatado", ranking[0].Name)
	assert.Equal(t, "Segundo empatado", ranking[1].Name)
	assert.Equal(t, "Terceiro empatado", ranking[2].Name)
}

func TestBuildTopClients(t *testing.T) {
	now := time.Now()

	quotes := []*domain.QuoteSummary{
		{CreatedAt: now, Status: domain.QuoteStatusSent, TotalValue: 500, ClientName: "Maria"},
		{CreatedAt: now, Status: domain.QuoteStatusApproved, TotalValue: 300, ClientName: "João"},
		{CreatedAt: now, Status: domain.QuoteStatusDraft, TotalValue: 400, ClientName: "Maria"},
	}

	ranking := buildTopClients(quotes)

	assert.Len(t, ranking, 2)

	assert.Equal(t, "Maria", ranking[0].Name)
	assert.Equal(t, 2, ranking[0].Count)
	assert.Equal(t, 900.0, ranking[0].Total)

	assert.Equal(t, "João", ranking[1].Name)
	assert.Equal(t, 1, ranking[1].Count)
	assert.Equal(t, 300.0, ranking[1].Total)
}

func TestBuildTopClients_MissingClientNameUsesPlaceholder(t *testing.T) {
	now := time.Now()

	quotes := []*domain.QuoteSummary{
		{CreatedAt: now, Status: domain.QuoteStatusSent, TotalValue: 100, ClientName: ""},
		{CreatedAt: now, Status: domain.QuoteStatusSent, TotalValue: 200, ClientName: ""},
	}

	ranking := buildTopClients(quotes)

	// Orçamentos sem cliente são agrupados sob o placeholder
	assert.Len(t, ranking, 1)
	assert.Equal(t, "—", ranking[0].Name)
	assert.Equal(t, 2, ranking[0].Count)
	assert.Equal(t, 300.0, ranking[0].Total)
}
