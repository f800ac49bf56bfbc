package domain

import "time"

// OverviewSnapshot é a foto diária dos KPIs do mês corrente de uma empresa,
// pré-calculada pelo agendador para consultas rápidas e histórico.
type OverviewSnapshot struct {
	ID        int           `json:"id"`
	CompanyID int           `json:"company_id"`
	Month     string        `json:"month"` // Formato YYYY-MM
	KPIs      *OverviewKPIs `json:"kpis"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
