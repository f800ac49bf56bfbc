package domain

import "time"

// Planos de assinatura
const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

type Company struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Document  *string   `json:"document"` // CNPJ ou CPF
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Company) IsPremium() bool {
	return c.Plan == PlanPremium
}
