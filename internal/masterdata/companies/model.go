package companies

import "time"

// CompanyType enumerates Turkish legal entity forms.
type CompanyType string

const (
	TypeAnonim     CompanyType = "ANONIM"
	TypeLimited    CompanyType = "LIMITED"
	TypeSahis      CompanyType = "SAHIS"
	TypeKollektif  CompanyType = "KOLLEKTIF"
	TypeKomandit   CompanyType = "KOMANDIT"
	TypeKooperatif CompanyType = "KOOPERATIF"
	TypeDiger      CompanyType = "DIGER"
)

// Company is one reporting entity whose ledger the engine derives
// statements from.
type Company struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Type      CompanyType `json:"type"`
	TaxNumber string      `json:"tax_number"`
	Founded   *time.Time  `json:"founded,omitempty"`
	Activity  string      `json:"activity,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
