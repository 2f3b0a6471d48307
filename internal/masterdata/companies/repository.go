package companies

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mizan-erp/mizan/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, id int64) (Company, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, id int64, company Company) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const companyColumns = `id, name, type, tax_number, founded, activity, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.TaxNumber, &c.Founded, &c.Activity, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Company, error) {
	var c Company
	err := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.Type, &c.TaxNumber, &c.Founded, &c.Activity, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Company{}, httpx.ErrNotFound
		}
		return Company{}, err
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	now := time.Now()
	err := r.pool.QueryRow(ctx, `INSERT INTO companies (name, type, tax_number, founded, activity, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$6) RETURNING id`,
		company.Name, company.Type, company.TaxNumber, company.Founded, company.Activity, now).
		Scan(&company.ID)
	if err != nil {
		return Company{}, translateConstraint(err)
	}
	company.CreatedAt = now
	company.UpdatedAt = now
	return company, nil
}

func (r *repository) Update(ctx context.Context, id int64, company Company) error {
	tag, err := r.pool.Exec(ctx, `UPDATE companies SET name=$1, type=$2, tax_number=$3, founded=$4, activity=$5, updated_at=$6 WHERE id=$7`,
		company.Name, company.Type, company.TaxNumber, company.Founded, company.Activity, time.Now(), id)
	if err != nil {
		return translateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Tax numbers are unique; surface constraint hits as duplicates rather than
// opaque database errors.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.ErrDuplicate
	}
	return err
}
