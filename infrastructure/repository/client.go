package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/orcafacil/orcafacil-api/infrastructure/database/postgres"
	"github.com/orcafacil/orcafacil-api/internal/domain"
)

const (
	clientsTable = "clients"
)

type ClientRepository interface {
	Create(client *domain.Client) (*domain.Client, error)
	GetByID(companyID, clientID int) (*domain.Client, error)
	ListByCompany(companyID int) ([]*domain.Client, error)
	CountCreatedBetween(companyID int, start, end time.Time) (int, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) Create(client *domain.Client) (*domain.Client, error) {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("company_id", "name", "email", "phone").
		Values(client.CompanyID, client.Name, client.Email, client.Phone).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&client.ID, &client.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) GetByID(companyID, clientID int) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("id, company_id, name, email, phone, created_at, updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"company_id": companyID, "id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client := &domain.Client{}
	err = r.conn.QueryRow(query, args...).Scan(
		&client.ID,
		&client.CompanyID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) ListByCompany(companyID int) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("id, company_id, name, email, phone, created_at, updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name ASC").
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		err := rows.Scan(
			&client.ID,
			&client.CompanyID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) CountCreatedBetween(companyID int, start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(clientsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes do período: %w", err)
	}

	return count, nil
}
