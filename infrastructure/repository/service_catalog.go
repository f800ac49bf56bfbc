package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/orcafacil/orcafacil-api/infrastructure/database/postgres"
	"github.com/orcafacil/orcafacil-api/internal/domain"
)

const (
	servicesTable = "services"
)

type ServiceRepository interface {
	Create(service *domain.Service) (*domain.Service, error)
	GetByID(companyID, serviceID int) (*domain.Service, error)
	ListByCompany(companyID int) ([]*domain.Service, error)
	CountByCompany(companyID int) (int, error)
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

func (r *serviceRepository) Create(service *domain.Service) (*domain.Service, error) {
	query, args, err := squirrel.
		Insert(servicesTable).
		Columns("company_id", "name", "description", "base_price", "active").
		Values(service.CompanyID, service.Name, service.Description, service.BasePrice, service.Active).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&service.ID, &service.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir serviço: %w", err)
	}

	return service, nil
}

func (r *serviceRepository) GetByID(companyID, serviceID int) (*domain.Service, error) {
	query, args, err := squirrel.
		Select("id, company_id, name, description, base_price, active, created_at, updated_at").
		From(servicesTable).
		Where(squirrel.Eq{"company_id": companyID, "id": serviceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	service := &domain.Service{}
	err = r.conn.QueryRow(query, args...).Scan(
		&service.ID,
		&service.CompanyID,
		&service.Name,
		&service.Description,
		&service.BasePrice,
		&service.Active,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}

	return service, nil
}

func (r *serviceRepository) ListByCompany(companyID int) ([]*domain.Service, error) {
	query, args, err := squirrel.
		Select("id, company_id, name, description, base_price, active, created_at, updated_at").
		From(servicesTable).
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service := &domain.Service{}
		err := rows.Scan(
			&service.ID,
			&service.CompanyID,
			&service.Name,
			&service.Description,
			&service.BasePrice,
			&service.Active,
			&service.CreatedAt,
			&service.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) CountByCompany(companyID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(servicesTable).
		Where(squirrel.Eq{"company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar serviços do catálogo: %w", err)
	}

	return count, nil
}
