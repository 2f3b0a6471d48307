package coa

import "errors"

// Nature enumerates the accounting nature of a chart-of-accounts entry.
type Nature string

const (
	NatureAsset               Nature = "ASSET"
	NatureLiability           Nature = "LIABILITY"
	NatureEquity              Nature = "EQUITY"
	NatureRevenue             Nature = "REVENUE"
	NatureExpense             Nature = "EXPENSE"
	NatureCostOfRevenue       Nature = "COST_OF_REVENUE"
	NatureContraAsset         Nature = "CONTRA_ASSET"
	NatureContraLiabilityOrEq Nature = "CONTRA_LIABILITY_EQUITY"
)

// BalanceSide is the side on which an account's balance is conventionally positive.
type BalanceSide string

const (
	SideDebit  BalanceSide = "DEBIT"
	SideCredit BalanceSide = "CREDIT"
)

// Section enumerates where an account reports.
type Section string

const (
	SectionBalanceSheetAsset      Section = "BS_ASSET"
	SectionBalanceSheetLiabEquity Section = "BS_LIAB_EQUITY"
	SectionIncomeStatement        Section = "INCOME_STATEMENT"
)

// Classification describes one chart-of-accounts entry and its reporting slot.
// Instances are defined at load time and never mutated afterwards.
type Classification struct {
	Code     string
	Name     string
	Nature   Nature
	Side     BalanceSide
	Section  Section
	Group    string
	SubGroup string
}

// Contra reports whether the account offsets its section's main accounts.
func (c Classification) Contra() bool {
	return c.Nature == NatureContraAsset || c.Nature == NatureContraLiabilityOrEq
}

// ErrUnknownAccount indicates a code with neither an exact nor a prefix entry.
// Callers skip the account and keep going; statement generation never aborts
// because a single code is unclassifiable.
var ErrUnknownAccount = errors.New("coa: unknown account code")

var validSides = map[BalanceSide]bool{SideDebit: true, SideCredit: true}

var validNatures = map[Nature]bool{
	NatureAsset:               true,
	NatureLiability:           true,
	NatureEquity:              true,
	NatureRevenue:             true,
	NatureExpense:             true,
	NatureCostOfRevenue:       true,
	NatureContraAsset:         true,
	NatureContraLiabilityOrEq: true,
}

// Validate checks the classification is internally coherent.
func (c Classification) Validate() error {
	if c.Code == "" {
		return errors.New("coa: classification code required")
	}
	if !validNatures[c.Nature] {
		return errors.New("coa: invalid nature for account " + c.Code)
	}
	if !validSides[c.Side] {
		return errors.New("coa: invalid balance side for account " + c.Code)
	}
	return nil
}
