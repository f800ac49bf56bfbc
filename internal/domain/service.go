package domain

import "time"

// Service é um item do catálogo de serviços da empresa
type Service struct {
	ID          int       `json:"id"`
	CompanyID   int       `json:"company_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	BasePrice   float64   `json:"base_price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
