package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/orcafacil/orcafacil-api/infrastructure/database/postgres"
	"github.com/orcafacil/orcafacil-api/internal/domain"
)

const (
	quotesTable     = "quotes q"
	quoteItemsTable = "quote_items qi"
)

type QuoteRepository interface {
	Create(quote *domain.Quote) (*domain.Quote, error)
	GetByID(companyID, quoteID int) (*domain.Quote, error)
	ListByCompany(companyID, limit, offset int) ([]*domain.Quote, error)
	UpdateStatus(companyID, quoteID int, status domain.QuoteStatus) error

	// Consultas do agregador do dashboard. Todas recebem o companyID e o
	// intervalo [start, end) e nunca retornam registros de outra empresa.
	GetPeriodSummary(companyID int, start, end time.Time) (*domain.QuotePeriodSummary, error)
	ListSummariesByPeriod(companyID int, start, end time.Time) ([]*domain.QuoteSummary, error)
	ListRecentByPeriod(companyID int, start, end time.Time, limit int) ([]*domain.QuoteSummary, error)
	ListItemSummariesByPeriod(companyID int, start, end time.Time) ([]*domain.QuoteItemSummary, error)
}

type quoteRepository struct {
	conn *postgres.Connection
}

func NewQuoteRepository(conn *postgres.Connection) QuoteRepository {
	return &quoteRepository{
		conn: conn,
	}
}

func (r *quoteRepository) Create(quote *domain.Quote) (*domain.Quote, error) {
	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		quoteSQL, quoteArgs, err := squirrel.
			Insert("quotes").
			Columns("number", "company_id", "client_id", "description", "status", "total_value").
			Values(quote.Number, quote.CompanyID, quote.ClientID, quote.Description, quote.Status, quote.TotalValue).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de orçamento: %w", err)
		}

		if err := tx.QueryRow(quoteSQL, quoteArgs...).Scan(&quote.ID, &quote.CreatedAt); err != nil {
			return fmt.Errorf("erro ao inserir orçamento: %w", err)
		}

		for i := range quote.Items {
			item := &quote.Items[i]
			item.QuoteID = quote.ID

			itemSQL, itemArgs, err := squirrel.
				Insert("quote_items").
				Columns("quote_id", "service_id", "service_name", "quantity", "unit_price").
				Values(item.QuoteID, item.ServiceID, item.ServiceName, item.Quantity, item.UnitPrice).
				Suffix("RETURNING id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query de item: %w", err)
			}

			if err := tx.QueryRow(itemSQL, itemArgs...).Scan(&item.ID); err != nil {
				return fmt.Errorf("erro ao inserir item do orçamento: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}

func (r *quoteRepository) GetByID(companyID, quoteID int) (*domain.Quote, error) {
	query, args, err := squirrel.
		Select("q.id, q.number, q.company_id, q.client_id, COALESCE(c.name, ''), q.description, q.status, q.total_value, q.created_at, q.updated_at").
		From(quotesTable).
		LeftJoin("clients c ON c.id = q.client_id").
		Where(squirrel.Eq{"q.company_id": companyID, "q.id": quoteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	quote := &domain.Quote{}
	err = r.conn.QueryRow(query, args...).Scan(
		&quote.ID,
		&quote.Number,
		&quote.CompanyID,
		&quote.ClientID,
		&quote.ClientName,
		&quote.Description,
		&quote.Status,
		&quote.TotalValue,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar orçamento: %w", err)
	}

	items, err := r.listItems(quote.ID)
	if err != nil {
		return nil, err
	}
	quote.Items = items

	return quote, nil
}

func (r *quoteRepository) listItems(quoteID int) ([]domain.QuoteItem, error) {
	query, args, err := squirrel.
		Select("qi.id, qi.quote_id, qi.service_id, qi.service_name, qi.quantity, qi.unit_price").
		From(quoteItemsTable).
		Where(squirrel.Eq{"qi.quote_id": quoteID}).
		OrderBy("qi.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens do orçamento: %w", err)
	}
	defer rows.Close()

	items := make([]domain.QuoteItem, 0)
	for rows.Next() {
		var item domain.QuoteItem
		if err := rows.Scan(&item.ID, &item.QuoteID, &item.ServiceID, &item.ServiceName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do orçamento: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *quoteRepository) ListByCompany(companyID, limit, offset int) ([]*domain.Quote, error) {
	query, args, err := squirrel.
		Select("q.id, q.number, q.company_id, q.client_id, COALESCE(c.name, ''), q.description, q.status, q.total_value, q.created_at, q.updated_at").
		From(quotesTable).
		LeftJoin("clients c ON c.id = q.client_id").
		Where(squirrel.Eq{"q.company_id": companyID}).
		OrderBy("q.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	quotes := make([]*domain.Quote, 0)
	for rows.Next() {
		quote := &domain.Quote{}
		err := rows.Scan(
			&quote.ID,
			&quote.Number,
			&quote.CompanyID,
			&quote.ClientID,
			&quote.ClientName,
			&quote.Description,
			&quote.Status,
			&quote.TotalValue,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear orçamento: %w", err)
		}
		quotes = append(quotes, quote)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return quotes, nil
}

func (r *quoteRepository) UpdateStatus(companyID, quoteID int, status domain.QuoteStatus) error {
	query, args, err := squirrel.
		Update("quotes").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"company_id": companyID, "id": quoteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do orçamento: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *quoteRepository) GetPeriodSummary(companyID int, start, end time.Time) (*domain.QuotePeriodSummary, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE q.status = 'approved')",
			"COALESCE(SUM(q.total_value), 0)",
			"COALESCE(AVG(q.total_value), 0)",
		).
		From(quotesTable).
		Where(squirrel.Eq{"q.company_id": companyID}).
		Where(squirrel.GtOrEq{"q.created_at": start}).
		Where(squirrel.Lt{"q.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.QuotePeriodSummary{}
	err = r.conn.QueryRow(query, args...).Scan(
		&summary.Budgets,
		&summary.Approved,
		&summary.TotalValue,
		&summary.AvgTicket,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar resumo do período: %w", err)
	}

	return summary, nil
}

func (r *quoteRepository) ListSummariesByPeriod(companyID int, start, end time.Time) ([]*domain.QuoteSummary, error) {
	builder := squirrel.
		Select("q.id, q.created_at, q.status, q.total_value, COALESCE(c.name, '')").
		From(quotesTable).
		LeftJoin("clients c ON c.id = q.client_id").
		Where(squirrel.Eq{"q.company_id": companyID}).
		Where(squirrel.GtOrEq{"q.created_at": start}).
		Where(squirrel.Lt{"q.created_at": end}).
		OrderBy("q.created_at ASC, q.id ASC")

	return r.querySummaries(builder)
}

func (r *quoteRepository) ListRecentByPeriod(companyID int, start, end time.Time, limit int) ([]*domain.QuoteSummary, error) {
	builder := squirrel.
		Select("q.id, q.created_at, q.status, q.total_value, COALESCE(c.name, '')").
		From(quotesTable).
		LeftJoin("clients c ON c.id = q.client_id").
		Where(squirrel.Eq{"q.company_id": companyID}).
		Where(squirrel.GtOrEq{"q.created_at": start}).
		Where(squirrel.Lt{"q.created_at": end}).
		OrderBy("q.created_at DESC").
		Limit(uint64(limit))

	return r.querySummaries(builder)
}

func (r *quoteRepository) querySummaries(builder squirrel.SelectBuilder) ([]*domain.QuoteSummary, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.QuoteSummary, 0)
	for rows.Next() {
		summary := &domain.QuoteSummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.CreatedAt,
			&summary.Status,
			&summary.TotalValue,
			&summary.ClientName,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de orçamento: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *quoteRepository) ListItemSummariesByPeriod(companyID int, start, end time.Time) ([]*domain.QuoteItemSummary, error) {
	query, args, err := squirrel.
		Select("qi.service_name, qi.quantity, qi.unit_price").
		From(quoteItemsTable).
		Join("quotes q ON q.id = qi.quote_id").
		Where(squirrel.Eq{"q.company_id": companyID}).
		Where(squirrel.GtOrEq{"q.created_at": start}).
		Where(squirrel.Lt{"q.created_at": end}).
		OrderBy("qi.quote_id ASC, qi.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.QuoteItemSummary, 0)
	for rows.Next() {
		item := &domain.QuoteItemSummary{}
		if err := rows.Scan(&item.ServiceName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("erro ao escanear item de orçamento: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
