package domain

import "time"

// Period é o intervalo [Start, End) resolvido a partir de um range nomeado.
// Não é persistido; recalculado a cada requisição.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Range string    `json:"range"`
}

// OverviewKPIs são os indicadores do topo do dashboard
type OverviewKPIs struct {
	Budgets         int     `json:"budgets"`
	Approved        int     `json:"approved"`
	Conversion      int     `json:"conversion"` // percentual 0-100
	TotalValue      float64 `json:"totalValue"`
	AvgTicket       float64 `json:"avgTicket"`
	NewClients      int     `json:"newClients"`
	ServicesCatalog int     `json:"servicesCatalog"`
}

// RevenuePoint é um balde da série de receita (X = YYYY-MM-DD ou YYYY-MM)
type RevenuePoint struct {
	X     string  `json:"x"`
	Total float64 `json:"total"`
}

// ConversionPoint é um balde mensal da série de conversão
type ConversionPoint struct {
	X          string `json:"x"`
	Conversion int    `json:"conversion"`
}

type OverviewSeries struct {
	Revenue    []RevenuePoint    `json:"revenue"`
	Conversion []ConversionPoint `json:"conversion"`
}

type TopServiceItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Total float64 `json:"total"`
}

type TopClientItem struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type OverviewTop struct {
	Services []TopServiceItem `json:"services"`
	Clients  []TopClientItem  `json:"clients"`
}

// RecentBudget é a projeção dos orçamentos recentes exibidos no dashboard.
// Os nomes dos campos JSON são contrato com o front-end.
type RecentBudget struct {
	ID          int         `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	Status      QuoteStatus `json:"status"`
	ValorTotal  float64     `json:"valorTotal"`
	ClienteNome string      `json:"clienteNome"`
}

// OverviewResponse é o objeto de resposta completo do dashboard
type OverviewResponse struct {
	OK            bool           `json:"ok"`
	Period        Period         `json:"period"`
	KPIs          OverviewKPIs   `json:"kpis"`
	Series        OverviewSeries `json:"series"`
	Top           OverviewTop    `json:"top"`
	RecentBudgets []RecentBudget `json:"recentBudgets"`
}
