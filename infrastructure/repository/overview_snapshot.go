package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/orcafacil/orcafacil-api/infrastructure/database/postgres"
	"github.com/orcafacil/orcafacil-api/internal/domain"
)

const (
	overviewSnapshotsTable = "overview_snapshots os"
)

type OverviewSnapshotRepository interface {
	GetByCompanyAndMonth(companyID int, month string) (*domain.OverviewSnapshot, error)
	SaveOrUpdate(snapshot *domain.OverviewSnapshot) error
	DeleteOlderThan(months int) (int64, error)
}

type overviewSnapshotRepository struct {
	conn *postgres.Connection
}

func NewOverviewSnapshotRepository(conn *postgres.Connection) OverviewSnapshotRepository {
	return &overviewSnapshotRepository{
		conn: conn,
	}
}

func (r *overviewSnapshotRepository) GetByCompanyAndMonth(companyID int, month string) (*domain.OverviewSnapshot, error) {
	query, args, err := squirrel.
		Select("os.id, os.company_id, os.month, os.kpis, os.created_at, os.updated_at").
		From(overviewSnapshotsTable).
		Where(squirrel.Eq{"os.company_id": companyID, "os.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.OverviewSnapshot{}
	var kpisJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.CompanyID,
		&snapshot.Month,
		&kpisJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if kpisJSON != nil {
		kpis := &domain.OverviewKPIs{}
		if err := json.Unmarshal(kpisJSON, kpis); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de kpis: %w", err)
		}
		snapshot.KPIs = kpis
	}

	return snapshot, nil
}

func (r *overviewSnapshotRepository) SaveOrUpdate(snapshot *domain.OverviewSnapshot) error {
	var kpisJSON []byte
	var err error

	if snapshot.KPIs != nil {
		kpisJSON, err = json.Marshal(snapshot.KPIs)
		if err != nil {
			return fmt.Errorf("erro ao serializar KPIs para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("overview_snapshots").
		Columns("company_id", "month", "kpis").
		Values(
			snapshot.CompanyID,
			snapshot.Month,
			kpisJSON,
		).
		Suffix(`
			ON CONFLICT (company_id, month) DO UPDATE SET
				kpis = EXCLUDED.kpis,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *overviewSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	cutoffMonth := time.Now().AddDate(0, -months, 0).Format("2006-01")

	query, args, err := squirrel.
		Delete("overview_snapshots").
		Where(squirrel.Lt{"month": cutoffMonth}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
