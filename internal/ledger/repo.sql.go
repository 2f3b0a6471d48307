package ledger

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads journal lines from PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const lineItemColumns = `e.source_id, l.account_code, l.posting_date, l.debit, l.credit`

// FetchThrough returns all line items for the company posted on or before end.
func (r *Repository) FetchThrough(ctx context.Context, companyID int64, end time.Time) ([]LineItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+lineItemColumns+`
FROM journal_lines l
JOIN journal_entries e ON e.id = l.entry_id
WHERE e.company_id = $1 AND l.posting_date <= $2
ORDER BY l.posting_date, l.id`, companyID, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLineItems(rows)
}

// FetchBetween returns all line items for the company posted within [start, end].
func (r *Repository) FetchBetween(ctx context.Context, companyID int64, start, end time.Time) ([]LineItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+lineItemColumns+`
FROM journal_lines l
JOIN journal_entries e ON e.id = l.entry_id
WHERE e.company_id = $1 AND l.posting_date >= $2 AND l.posting_date <= $3
ORDER BY l.posting_date, l.id`, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLineItems(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanLineItems(rows pgxRows) ([]LineItem, error) {
	var items []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.EntryID, &it.AccountCode, &it.PostingDate, &it.Debit, &it.Credit); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
