package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/studdeo/admin-api/infrastructure/database/postgres"
	"github.com/studdeo/admin-api/internal/domain"
)

const administratorsTable = "administrators"

type AdministratorRepository interface {
	Create(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error)
	GetByEmail(ctx context.Context, email string) (*domain.Administrator, error)
	GetByID(ctx context.Context, id int) (*domain.Administrator, error)
	List(ctx context.Context) ([]*domain.Administrator, error)
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
	Deactivate(ctx context.Context, id int) error
}

type administratorRepository struct {
	conn postgres.Conn
}

func NewAdministratorRepository(conn postgres.Conn) AdministratorRepository {
	return &administratorRepository{
		conn: conn,
	}
}

func (r *administratorRepository) Create(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error) {
	queryBuilder := squirrel.
		Insert(administratorsTable).
		Columns("name", "lastname", "email", "password_hash", "active").
		Values(admin.Name, admin.Lastname, admin.Email, admin.PasswordHash, admin.Active).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	adminSQL, adminArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, adminSQL, adminArgs...).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return admin, nil
}

func (r *administratorRepository) GetByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	var admin domain.Administrator
	err := r.conn.QueryRowContext(ctx,
		"SELECT id, name, lastname, email, password_hash, active, created_at, updated_at FROM administrators WHERE deleted_at IS NULL AND email = $1",
		email,
	).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Lastname,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Active,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *administratorRepository) GetByID(ctx context.Context, id int) (*domain.Administrator, error) {
	var admin domain.Administrator
	err := r.conn.QueryRowContext(ctx,
		"SELECT id, name, lastname, email, password_hash, active, created_at, updated_at FROM administrators WHERE deleted_at IS NULL AND id = $1",
		id,
	).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Lastname,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Active,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *administratorRepository) List(ctx context.Context) ([]*domain.Administrator, error) {
	queryBuilder := squirrel.
		Select("id", "name", "lastname", "email", "active", "created_at", "updated_at").
		From(administratorsTable).
		Where("deleted_at IS NULL").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	adminSQL, adminArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, adminSQL, adminArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*domain.Administrator
	for rows.Next() {
		var admin domain.Administrator
		if err := rows.Scan(
			&admin.ID,
			&admin.Name,
			&admin.Lastname,
			&admin.Email,
			&admin.Active,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		); err != nil {
			return nil, err
		}

		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

func (r *administratorRepository) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	queryBuilder := squirrel.
		Update(administratorsTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	adminSQL, adminArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, adminSQL, adminArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("administrador %d no existe", id)
	}

	return nil
}

func (r *administratorRepository) Deactivate(ctx context.Context, id int) error {
	queryBuilder := squirrel.
		Update(administratorsTable).
		Set("active", false).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	adminSQL, adminArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, adminSQL, adminArgs...)
	if err != nil {
		return fmt.Errorf("error al desactivar administrador: %w", err)
	}

	return nil
}
