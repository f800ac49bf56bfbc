// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// QuoteStatus representa o estado do ciclo de vida de um orçamento
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Transições permitidas: draft → sent → approved/rejected
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:    {QuoteStatusSent},
	QuoteStatusSent:     {QuoteStatusApproved, QuoteStatusRejected},
	QuoteStatusApproved: {},
	QuoteStatusRejected: {},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionTo verifica se a transição de status é permitida
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Quote struct {
	ID          int         `json:"id"`
	Number      string      `json:"number"`
	CompanyID   int         `json:"company_id"`
	ClientID    int         `json:"client_id"`
	ClientName  string      `json:"client_name,omitempty"`
	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`
	TotalValue  float64     `json:"total_value"`
	Items       []QuoteItem `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type QuoteItem struct {
	ID          int     `json:"id"`
	QuoteID     int     `json:"quote_id"`
	ServiceID   int     `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Subtotal é derivado, nunca persistido
func (i QuoteItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// QuoteSummary é a projeção de orçamento consumida pelo agregador do dashboard
type QuoteSummary struct {
	ID         int         `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	Status     QuoteStatus `json:"status"`
	TotalValue float64     `json:"total_value"`
	ClientName string      `json:"client_name"`
}

// QuoteItemSummary é a projeção de item usada no ranking de serviços
type QuoteItemSummary struct {
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// QuotePeriodSummary agrega contagens e somas de um período direto do banco
type QuotePeriodSummary struct {
	Budgets    int     `json:"budgets"`
	Approved   int     `json:"approved"`
	TotalValue float64 `json:"total_value"`
	AvgTicket  float64 `json:"avg_ticket"`
}
