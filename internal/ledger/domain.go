package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mode selects how a date range scopes ledger activity.
type Mode string

const (
	// ModeCumulative sums all activity through the range end, ignoring the
	// range start. Balance-sheet balances are point-in-time.
	ModeCumulative Mode = "CUMULATIVE"
	// ModePeriod sums only activity inside the range. Income-statement
	// balances are flows.
	ModePeriod Mode = "PERIOD"
)

// DateRange bounds a reporting period, inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate enforces Start <= End. Cumulative aggregation only reads End, so a
// zero Start is fine there.
func (r DateRange) Validate(mode Mode) error {
	if r.End.IsZero() {
		return ErrInvalidDateRange
	}
	if mode == ModePeriod && r.Start.After(r.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// LineItem is one raw journal line as supplied by storage.
type LineItem struct {
	EntryID     uuid.UUID
	AccountCode string
	PostingDate time.Time
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Aggregate holds per-account debit/credit sums for one invocation.
// NetBalance is filled by Resolve, not by the aggregator.
type Aggregate struct {
	AccountCode string
	AccountName string
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	NetBalance  decimal.Decimal
}

var (
	// ErrInvalidDateRange indicates period start after period end. Fatal for
	// the request, reported before any aggregation work.
	ErrInvalidDateRange = errors.New("ledger: period start after period end")
	// ErrCompanyRequired indicates a missing company identifier.
	ErrCompanyRequired = errors.New("ledger: company id required")
	// ErrInvalidMode indicates an aggregation mode outside the known set.
	ErrInvalidMode = errors.New("ledger: unknown aggregation mode")
)
