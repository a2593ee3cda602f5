package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/studdeo/admin-api/infrastructure/database/postgres"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/utils"
)

const contractsTable = "professor_contracts"

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	GetByProfessorID(ctx context.Context, professorID int) (*domain.Contract, error)
	List(ctx context.Context) ([]*domain.Contract, error)
	Close(ctx context.Context, id string) error
}

type contractRepository struct {
	conn postgres.Conn
}

func NewContractRepository(conn postgres.Conn) ContractRepository {
	return &contractRepository{
		conn: conn,
	}
}

func (r *contractRepository) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	if contract.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("error al generar el id del contrato: %w", err)
		}
		contract.ID = id
	}

	queryBuilder := squirrel.
		Insert(contractsTable).
		Columns("id", "professor_id", "email", "share", "start_date", "end_date").
		Values(contract.ID, contract.ProfessorID, contract.Email, contract.Share, contract.StartDate, contract.EndDate).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	contractSQL, contractArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, contractSQL, contractArgs...).
		Scan(&contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return contract, nil
}

// GetByProfessorID devuelve el contrato vigente más reciente del profesor
func (r *contractRepository) GetByProfessorID(ctx context.Context, professorID int) (*domain.Contract, error) {
	queryBuilder := squirrel.
		Select("id", "professor_id", "email", "share", "start_date", "end_date", "created_at", "updated_at").
		From(contractsTable).
		Where(squirrel.Eq{"professor_id": professorID}).
		OrderBy("start_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	contractSQL, contractArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var contract domain.Contract
	err = r.conn.QueryRowContext(ctx, contractSQL, contractArgs...).Scan(
		&contract.ID,
		&contract.ProfessorID,
		&contract.Email,
		&contract.Share,
		&contract.StartDate,
		&contract.EndDate,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &contract, nil
}

func (r *contractRepository) List(ctx context.Context) ([]*domain.Contract, error) {
	queryBuilder := squirrel.
		Select("id", "professor_id", "email", "share", "start_date", "end_date", "created_at", "updated_at").
		From(contractsTable).
		OrderBy("start_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	contractSQL, contractArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, contractSQL, contractArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []*domain.Contract
	for rows.Next() {
		var contract domain.Contract
		if err := rows.Scan(
			&contract.ID,
			&contract.ProfessorID,
			&contract.Email,
			&contract.Share,
			&contract.StartDate,
			&contract.EndDate,
			&contract.CreatedAt,
			&contract.UpdatedAt,
		); err != nil {
			return nil, err
		}

		contracts = append(contracts, &contract)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contracts, nil
}

// Close cierra el contrato poniendo end_date en la fecha actual
func (r *contractRepository) Close(ctx context.Context, id string) error {
	queryBuilder := squirrel.
		Update(contractsTable).
		Set("end_date", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	contractSQL, contractArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, contractSQL, contractArgs...)
	if err != nil {
		return fmt.Errorf("error al cerrar el contrato: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("contrato %s no existe", id)
	}

	return nil
}
