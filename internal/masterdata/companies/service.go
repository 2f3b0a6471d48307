package companies

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mizan-erp/mizan/internal/platform/httpx"
)

// CompanyForm carries the fields accepted on create/update. The tax number
// (VKN) is ten digits; the type must be a known legal form.
type CompanyForm struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	Type      string `json:"type" validate:"required,oneof=ANONIM LIMITED SAHIS KOLLEKTIF KOMANDIT KOOPERATIF DIGER"`
	TaxNumber string `json:"tax_number" validate:"required,len=10,numeric"`
	Founded   string `json:"founded,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Activity  string `json:"activity,omitempty" validate:"max=500"`
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Company, error) {
	if id <= 0 {
		return Company{}, fmt.Errorf("%w: invalid company id", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, form CompanyForm) (Company, error) {
	company, err := s.fromForm(form)
	if err != nil {
		return Company{}, err
	}
	return s.repo.Create(ctx, company)
}

func (s *Service) Update(ctx context.Context, id int64, form CompanyForm) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid company id", httpx.ErrValidation)
	}
	company, err := s.fromForm(form)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, company)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid company id", httpx.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) fromForm(form CompanyForm) (Company, error) {
	if err := s.validate.Struct(form); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return Company{}, fmt.Errorf("%w: field %s", httpx.ErrValidation, fieldErrs[0].Field())
		}
		return Company{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error())
	}
	company := Company{
		Name:      form.Name,
		Type:      CompanyType(form.Type),
		TaxNumber: form.TaxNumber,
		Activity:  form.Activity,
	}
	if form.Founded != "" {
		founded, err := parseDate(form.Founded)
		if err != nil {
			return Company{}, fmt.Errorf("%w: founded must be YYYY-MM-DD", httpx.ErrValidation)
		}
		company.Founded = &founded
	}
	return company, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
