package dashboarding

import (
	"testing"
	"time"

	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func quoteAt(createdAt time.Time, status domain.QuoteStatus, total float64) *domain.QuoteSummary {
	return &domain.QuoteSummary{
		CreatedAt:  createdAt,
		Status:     status,
		TotalValue: total,
	}
}

func TestBuildRevenueSeries_Daily(t *testing.T) {
	// Julho tem 31 dias, abaixo do limite de 92: baldes diários
	period := domain.Period{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Range: RangeThisMonth,
	}

	quotes := []*domain.QuoteSummary{
		quoteAt(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC), domain.QuoteStatusSent, 100.40),
		quoteAt(time.Date(2025, 7, 1, 17, 0, 0, 0, time.UTC), domain.QuoteStatusApproved, 200.20),
		quoteAt(time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC), domain.QuoteStatusDraft, 49.50),
	}

	series := buildRevenueSeries(period, quotes)

	// Todos os dias do mês aparecem, mesmo sem orçamentos
	assert.Len(t, series, 31)

	assert.Equal(t, "2025-07-01", series[0].X)
	assert.Equal(t, 301.0, series[0].Total) // 100.40 + 200.20 = 300.60 → 301

	assert.Equal(t, "2025-07-15", series[14].X)
	assert.Equal(t, 50.0, series[14].Total) // 49.50 → 50 (metade afasta do zero)

	// Dia sem orçamentos fica com zero
	assert.Equal(t, "2025-07-02", series[1].X)
	assert.Equal(t, 0.0, series[1].Total)
}

func TestBuildRevenueSeries_MonthlyWhenSpanExceedsLimit(t *testing.T) {
	// Um ano completo: 365 dias, muito acima do limite diário
	period := domain.Period{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Range: RangeThisYear,
	}

	quotes := []*domain.QuoteSummary{
		quoteAt(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), domain.QuoteStatusApproved, 1000),
		quoteAt(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), domain.QuoteStatusSent, 500),
		quoteAt(time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), domain.QuoteStatusRejected, 250),
	}

	series := buildRevenueSeries(period, quotes)

	assert.Len(t, series, 12)
	assert.Equal(t, "2025-01", series[0].X)
	assert.Equal(t, "2025-12", series[11].X)

	assert.Equal(t, 1500.0, series[2].Total)  // março
	assert.Equal(t, 250.0, series[10].Total)  // novembro
	assert.Equal(t, 0.0, series[5].Total)     // junho, sem orçamentos
}

func TestBuildRevenueSeries_QuarterStaysDaily(t *testing.T) {
	// Trimestre de 92 dias (jul-ago-set): ainda dentro do limite diário
	period := domain.Period{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Range: RangeThisQuarter,
	}

	series := buildRevenueSeries(period, nil)

	assert.Len(t, series, 92)
	assert.Equal(t, "2025-07-01", series[0].X)
	assert.Equal(t, "2025-09-30", series[91].X)
}

func TestBuildConversionSeries(t *testing.T) {
	quotes := []*domain.QuoteSummary{
		// Março: 2 de 4 aprovados = 50%
		quoteAt(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), domain.QuoteStatusApproved, 100),
		quoteAt(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), domain.QuoteStatusApproved, 100),
		quoteAt(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), domain.QuoteStatusSent, 100),
		quoteAt(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), domain.QuoteStatusRejected, 100),

		// Janeiro: 1 de 3 aprovados = 33%
		quoteAt(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), domain.QuoteStatusApproved, 100),
		quoteAt(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), domain.QuoteStatusDraft, 100),
		quoteAt(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), domain.QuoteStatusDraft, 100),

		// Maio: nenhum aprovado = 0%
		quoteAt(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), domain.QuoteStatusSent, 100),
	}

	series := buildConversionSeries(quotes)

	// Só os meses com orçamentos aparecem, em ordem crescente
	assert.Len(t, series, 3)

	assert.Equal(t, "2025-01", series[0].X)
	assert.Equal(t, 33, series[0].Conversion)

	assert.Equal(t, "2025-03", series[1].X)
	assert.Equal(t, 50, series[1].Conversion)

	assert.Equal(t, "2025-05", series[2].X)
	assert.Equal(t, 0, series[2].Conversion)
}

func TestBuildConversionSeries_Empty(t *testing.T) {
	series := buildConversionSeries(nil)

	assert.NotNil(t, series)
	assert.Empty(t, series)
}
