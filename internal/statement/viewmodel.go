package statement

import "github.com/shopspring/decimal"

// View models carry the transport representation of derived statements.
// Monetary values leave the engine as strings with exactly two fraction
// digits; full precision lives only inside the computation.

// ContributionVM is one account line in a leaf or derived-line detail.
type ContributionVM struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// NodeVM mirrors a result tree node.
type NodeVM struct {
	Label         string           `json:"label"`
	Subtotal      string           `json:"subtotal"`
	Children      []NodeVM         `json:"children,omitempty"`
	Contributions []ContributionVM `json:"contributions,omitempty"`
}

// DiscrepancyVM reports a failed balance identity check.
type DiscrepancyVM struct {
	Delta      string `json:"delta"`
	Assets     string `json:"assets"`
	LiabEquity string `json:"liabilities_equity"`
}

// BalanceSheetVM is the serialised balance sheet.
type BalanceSheetVM struct {
	CompanyID         int64          `json:"company_id"`
	AsOf              string         `json:"as_of"`
	Assets            NodeVM         `json:"assets"`
	LiabilitiesEquity NodeVM         `json:"liabilities_equity"`
	AssetTotal        string         `json:"asset_total"`
	LiabEquityTotal   string         `json:"liabilities_equity_total"`
	Discrepancy       *DiscrepancyVM `json:"discrepancy,omitempty"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// LineVM is one derived income-statement row.
type LineVM struct {
	Name   string           `json:"name"`
	Value  string           `json:"value"`
	Detail []ContributionVM `json:"detail,omitempty"`
}

// IncomeStatementVM is the serialised income statement.
type IncomeStatementVM struct {
	CompanyID int64    `json:"company_id"`
	Start     string   `json:"period_start"`
	End       string   `json:"period_end"`
	Lines     []LineVM `json:"lines"`
	Warnings  []string `json:"warnings,omitempty"`
}

// TrialBalanceRowVM is one account row of the trial balance.
type TrialBalanceRowVM struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Debit  string `json:"debit"`
	Credit string `json:"credit"`
	Net    string `json:"net"`
}

// TrialBalanceGroupVM groups trial balance rows by account class.
type TrialBalanceGroupVM struct {
	Key    string              `json:"key"`
	Rows   []TrialBalanceRowVM `json:"rows"`
	Debit  string              `json:"debit"`
	Credit string              `json:"credit"`
}

// TrialBalanceVM is the serialised trial balance.
type TrialBalanceVM struct {
	Groups      []TrialBalanceGroupVM `json:"groups"`
	TotalDebit  string                `json:"total_debit"`
	TotalCredit string                `json:"total_credit"`
}

// RatiosVM carries the optional headline ratios.
type RatiosVM struct {
	CurrentRatio *string `json:"current_ratio,omitempty"`
	DebtToEquity *string `json:"debt_to_equity,omitempty"`
	AltmanZ      *string `json:"altman_z,omitempty"`
}

// PackVM bundles the full statement pack.
type PackVM struct {
	BalanceSheet    BalanceSheetVM    `json:"balance_sheet"`
	IncomeStatement IncomeStatementVM `json:"income_statement"`
	TrialBalance    TrialBalanceVM    `json:"trial_balance"`
	Ratios          RatiosVM          `json:"ratios"`
}

const dateLayout = "2006-01-02"

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func contributionsVM(contribs []Contribution) []ContributionVM {
	if len(contribs) == 0 {
		return nil
	}
	out := make([]ContributionVM, len(contribs))
	for i, c := range contribs {
		out[i] = ContributionVM{Code: c.Code, Name: c.Name, Amount: money(c.Amount)}
	}
	return out
}

func nodeVM(n *ResultNode) NodeVM {
	vm := NodeVM{
		Label:         n.Label,
		Subtotal:      money(n.Subtotal),
		Contributions: contributionsVM(n.Contributions),
	}
	for _, child := range n.Children {
		vm.Children = append(vm.Children, nodeVM(child))
	}
	return vm
}

// NewBalanceSheetVM formats a balance sheet for transport.
func NewBalanceSheetVM(bs BalanceSheet) BalanceSheetVM {
	vm := BalanceSheetVM{
		CompanyID:         bs.CompanyID,
		AsOf:              bs.AsOf.Format(dateLayout),
		Assets:            nodeVM(bs.Assets),
		LiabilitiesEquity: nodeVM(bs.LiabilitiesEquity),
		AssetTotal:        money(bs.AssetTotal),
		LiabEquityTotal:   money(bs.LiabEquityTotal),
		Warnings:          bs.Warnings,
	}
	if bs.Discrepancy != nil {
		vm.Discrepancy = &DiscrepancyVM{
			Delta:      money(bs.Discrepancy.Delta),
			Assets:     money(bs.Discrepancy.Assets),
			LiabEquity: money(bs.Discrepancy.LiabEquity),
		}
	}
	return vm
}

// NewIncomeStatementVM formats an income statement for transport.
func NewIncomeStatementVM(is IncomeStatement) IncomeStatementVM {
	vm := IncomeStatementVM{
		CompanyID: is.CompanyID,
		Start:     is.Start.Format(dateLayout),
		End:       is.End.Format(dateLayout),
		Warnings:  is.Warnings,
	}
	for _, line := range is.Lines {
		vm.Lines = append(vm.Lines, LineVM{
			Name:   line.Name,
			Value:  money(line.Value),
			Detail: contributionsVM(line.Detail),
		})
	}
	return vm
}

// NewTrialBalanceVM formats a trial balance for transport.
func NewTrialBalanceVM(tb TrialBalance) TrialBalanceVM {
	vm := TrialBalanceVM{
		TotalDebit:  money(tb.TotalDebit),
		TotalCredit: money(tb.TotalCredit),
	}
	for _, grp := range tb.Groups {
		gvm := TrialBalanceGroupVM{Key: grp.Key, Debit: money(grp.Debit), Credit: money(grp.Credit)}
		for _, row := range grp.Rows {
			gvm.Rows = append(gvm.Rows, TrialBalanceRowVM{
				Code:   row.Code,
				Name:   row.Name,
				Debit:  money(row.Debit),
				Credit: money(row.Credit),
				Net:    money(row.Net),
			})
		}
		vm.Groups = append(vm.Groups, gvm)
	}
	return vm
}

// NewPackVM formats a statement pack for transport.
func NewPackVM(p Pack) PackVM {
	vm := PackVM{
		BalanceSheet:    NewBalanceSheetVM(p.BalanceSheet),
		IncomeStatement: NewIncomeStatementVM(p.IncomeStatement),
		TrialBalance:    NewTrialBalanceVM(p.TrialBalance),
	}
	ratioString := func(d *decimal.Decimal) *string {
		if d == nil {
			return nil
		}
		s := d.String()
		return &s
	}
	vm.Ratios = RatiosVM{
		CurrentRatio: ratioString(p.Ratios.CurrentRatio),
		DebtToEquity: ratioString(p.Ratios.DebtToEquity),
		AltmanZ:      ratioString(p.Ratios.AltmanZ),
	}
	return vm
}
