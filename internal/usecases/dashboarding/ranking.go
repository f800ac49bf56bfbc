package dashboarding

import (
	"sort"

	"github.com/orcafacil/orcafacil-api/internal/domain"
)

// topLimit é o tamanho máximo dos rankings do dashboard
const topLimit = 8

// Nome exibido quando o orçamento não tem cliente vinculado
const missingClientName = "—"

// buildTopServices agrega os itens por nome de serviço e retorna os 8 de
// maior receita. Empates preservam a ordem de primeira aparição na entrada.
func buildTopServices(items []*domain.QuoteItemSummary) []domain.TopServiceItem {
	index := make(map[string]int)
	ranking := make([]domain.TopServiceItem, 0)

	for _, item := range items {
		position, ok := index[item.ServiceName]
		if !ok {
			position = len(ranking)
			index[item.ServiceName] = position
			ranking = append(ranking, domain.TopServiceItem{Name: item.ServiceName})
		}

		ranking[position].Qty += item.Quantity
		ranking[position].Total += float64(item.Quantity) * item.UnitPrice
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	if len(ranking) > topLimit {
		ranking = ranking[:topLimit]
	}

	return ranking
}

// buildTopClients agrega os orçamentos por nome de cliente e retorna os 8 de
// maior receita, com a mesma regra de empate dos serviços.
func buildTopClients(quotes []*domain.QuoteSummary) []domain.TopClientItem {
	index := make(map[string]int)
	ranking := make([]domain.TopClientItem, 0)

	for _, quote := range quotes {
		name := displayName(quote.ClientName)

		position, ok := index[name]
		if !ok {
			position = len(ranking)
			index[name] = position
			ranking = append(ranking, domain.TopClientItem{Name: name})
		}

		ranking[position].Count++
		ranking[position].Total += quote.TotalValue
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	if len(ranking) > topLimit {
		ranking = ranking[:topLimit]
	}

	return ranking
}

func displayName(name string) string {
	if name == "" {
		return missingClientName
	}
	return name
}
