package ledger

import (
	"context"
	"time"
)

// LineItemSource is the storage collaborator boundary: everything the engine
// needs from persistence is "all line items for a company up to / within a
// date window". Implementations must return amounts as exact decimals.
type LineItemSource interface {
	// FetchThrough returns every line item for the company posted on or
	// before end.
	FetchThrough(ctx context.Context, companyID int64, end time.Time) ([]LineItem, error)
	// FetchBetween returns every line item for the company posted within
	// [start, end].
	FetchBetween(ctx context.Context, companyID int64, start, end time.Time) ([]LineItem, error)
}
