package dashboarding

import (
	"sort"
	"time"

	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/pkg/utils"
)

// Períodos de até 92 dias usam baldes diários; acima disso, mensais
const maxDailySpanDays = 92

const (
	dayKeyFormat   = "2006-01-02"
	monthKeyFormat = "2006-01"
)

// buildRevenueSeries gera a série de receita do período. Todo balde do
// intervalo aparece na saída, mesmo com valor zero; o valor é a soma dos
// orçamentos criados no balde, arredondada para o inteiro mais próximo.
func buildRevenueSeries(period domain.Period, quotes []*domain.QuoteSummary) []domain.RevenuePoint {
	if spanInDays(period) <= maxDailySpanDays {
		return bucketRevenue(period, quotes, dayKeyFormat, nextDay)
	}
	return bucketRevenue(period, quotes, monthKeyFormat, nextMonth)
}

func bucketRevenue(
	period domain.Period,
	quotes []*domain.QuoteSummary,
	keyFormat string,
	next func(time.Time) time.Time,
) []domain.RevenuePoint {
	totals := make(map[string]float64)
	for _, quote := range quotes {
		totals[quote.CreatedAt.Format(keyFormat)] += quote.TotalValue
	}

	series := make([]domain.RevenuePoint, 0)
	for cursor := period.Start; cursor.Before(period.End); cursor = next(cursor) {
		key := cursor.Format(keyFormat)
		series = append(series, domain.RevenuePoint{
			X:     key,
			Total: utils.RoundToInt(totals[key]),
		})
	}

	return series
}

// buildConversionSeries gera a série mensal de taxa de conversão, cobrindo
// apenas os meses que contêm ao menos um orçamento, em ordem crescente.
func buildConversionSeries(quotes []*domain.QuoteSummary) []domain.ConversionPoint {
	type monthCount struct {
		total    int
		approved int
	}

	counts := make(map[string]*monthCount)
	for _, quote := range quotes {
		key := quote.CreatedAt.Format(monthKeyFormat)
		count, ok := counts[key]
		if !ok {
			count = &monthCount{}
			counts[key] = count
		}

		count.total++
		if quote.Status == domain.QuoteStatusApproved {
			count.approved++
		}
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]domain.ConversionPoint, 0, len(keys))
	for _, key := range keys {
		count := counts[key]
		series = append(series, domain.ConversionPoint{
			X:          key,
			Conversion: utils.Percent(count.approved, count.total),
		})
	}

	return series
}

// spanInDays conta os dias cobertos por [start, end). Os ranges resolvidos
// sempre começam à meia-noite, então a contagem por iteração é exata mesmo
// com horário de verão.
func spanInDays(period domain.Period) int {
	days := 0
	for cursor := period.Start; cursor.Before(period.End); cursor = nextDay(cursor) {
		days++
	}
	return days
}

func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

func nextMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}
