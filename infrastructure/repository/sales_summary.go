package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/studdeo/admin-api/infrastructure/database/postgres"
	"github.com/studdeo/admin-api/internal/domain"
)

const salesSummariesTable = "daily_sales_summaries"

type SalesSummaryRepository interface {
	SaveOrUpdate(ctx context.Context, summary *domain.DailySalesSummary) error
	GetByDay(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.DailySalesSummary, error)
}

type salesSummaryRepository struct {
	conn postgres.Conn
}

func NewSalesSummaryRepository(conn postgres.Conn) SalesSummaryRepository {
	return &salesSummaryRepository{
		conn: conn,
	}
}

// SaveOrUpdate inserta la foto del día o la pisa si ya existe. El scheduler
// corre varias veces al día y el último cálculo gana.
func (r *salesSummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.DailySalesSummary) error {
	queryBuilder := squirrel.
		Insert(salesSummariesTable).
		Columns("day", "sales_count", "total_revenue", "net_income", "updated_at").
		Values(summary.Day, summary.SalesCount, summary.TotalRevenue, summary.NetIncome, summary.UpdatedAt).
		Suffix(`ON CONFLICT (day) DO UPDATE SET
			sales_count = EXCLUDED.sales_count,
			total_revenue = EXCLUDED.total_revenue,
			net_income = EXCLUDED.net_income,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	summarySQL, summaryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, summarySQL, summaryArgs...)
	return err
}

func (r *salesSummaryRepository) GetByDay(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error) {
	queryBuilder := squirrel.
		Select("day", "sales_count", "total_revenue", "net_income", "updated_at").
		From(salesSummariesTable).
		Where(squirrel.Eq{"day": day}).
		PlaceholderFormat(squirrel.Dollar)

	summarySQL, summaryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var summary domain.DailySalesSummary
	err = r.conn.QueryRowContext(ctx, summarySQL, summaryArgs...).Scan(
		&summary.Day,
		&summary.SalesCount,
		&summary.TotalRevenue,
		&summary.NetIncome,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *salesSummaryRepository) ListRange(ctx context.Context, from, to time.Time) ([]*domain.DailySalesSummary, error) {
	queryBuilder := squirrel.
		Select("day", "sales_count", "total_revenue", "net_income", "updated_at").
		From(salesSummariesTable).
		Where(squirrel.GtOrEq{"day": from}).
		Where(squirrel.LtOrEq{"day": to}).
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)

	summarySQL, summaryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, summarySQL, summaryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*domain.DailySalesSummary
	for rows.Next() {
		var summary domain.DailySalesSummary
		if err := rows.Scan(
			&summary.Day,
			&summary.SalesCount,
			&summary.TotalRevenue,
			&summary.NetIncome,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
