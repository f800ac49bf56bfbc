package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/orcafacil/orcafacil-api/infrastructure/database/postgres"
	"github.com/orcafacil/orcafacil-api/internal/domain"
)

const (
	companiesTable = "companies"
)

type CompanyRepository interface {
	GetByID(companyID int) (*domain.Company, error)
	ListActive() ([]*domain.Company, error)
	UpdatePlan(companyID int, plan string) error
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) GetByID(companyID int) (*domain.Company, error) {
	query, args, err := squirrel.
		Select("id, name, document, plan, active, created_at, updated_at").
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	company := &domain.Company{}
	err = r.conn.QueryRow(query, args...).Scan(
		&company.ID,
		&company.Name,
		&company.Document,
		&company.Plan,
		&company.Active,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) ListActive() ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select("id, name, document, plan, active, created_at, updated_at").
		From(companiesTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
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

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Document,
			&company.Plan,
			&company.Active,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) UpdatePlan(companyID int, plan string) error {
	query, args, err := squirrel.
		Update(companiesTable).
		Set("plan", plan).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar plano da empresa: %w", err)
	}

	return nil
}
