package coa

import (
	"errors"
	"testing"
)

func TestClassifyExactMatchWinsOverPrefix(t *testing.T) {
	registry, err := NewRegistry([]Classification{
		{Code: "100", Name: "KASA", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset},
		{Code: "100.01", Name: "MERKEZ KASA", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	cls, err := registry.Classify("100.01")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Name != "MERKEZ KASA" {
		t.Fatalf("expected exact entry MERKEZ KASA got %q", cls.Name)
	}
}

func TestClassifyFallsBackToPrefix(t *testing.T) {
	registry := DefaultRegistry()

	for _, code := range []string{"100.01", "10001", "600.02.01"} {
		cls, err := registry.Classify(code)
		if err != nil {
			t.Fatalf("Classify(%q) error = %v", code, err)
		}
		if cls.Code != code[:3] {
			t.Fatalf("Classify(%q) resolved %q, expected prefix %q", code, cls.Code, code[:3])
		}
	}
}

func TestClassifyUnknownCode(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Classify("999")
	if !errors.Is(err, ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount got %v", err)
	}
	if registry.Has("999") {
		t.Fatalf("Has(999) = true for unregistered code")
	}
	// Short codes never prefix-match longer entries.
	if _, err := registry.Classify("10"); !errors.Is(err, ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount for short code got %v", err)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Classification{
		{Code: "100", Name: "KASA", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset},
		{Code: "100", Name: "KASA 2", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset},
	})
	if err == nil {
		t.Fatalf("expected duplicate code error")
	}
}

func TestNewRegistryRejectsInvalidEntries(t *testing.T) {
	cases := []Classification{
		{Code: "", Name: "ADSIZ", Nature: NatureAsset, Side: SideDebit},
		{Code: "700", Name: "BOZUK", Nature: "MYSTERY", Side: SideDebit},
		{Code: "701", Name: "BOZUK", Nature: NatureAsset, Side: "SIDEWAYS"},
	}
	for _, c := range cases {
		if _, err := NewRegistry([]Classification{c}); err == nil {
			t.Fatalf("expected validation error for %+v", c)
		}
	}
}

func TestDefaultRegistryIsCoherent(t *testing.T) {
	registry := DefaultRegistry()
	if registry.Len() == 0 {
		t.Fatalf("default registry is empty")
	}
	for _, code := range registry.Codes() {
		cls, err := registry.Classify(code)
		if err != nil {
			t.Fatalf("Classify(%q) error = %v", code, err)
		}
		if cls.Contra() {
			// Contra accounts sit on the opposite side of their section.
			switch cls.Nature {
			case NatureContraAsset:
				if cls.Side != SideCredit {
					t.Fatalf("contra asset %s must be credit-normal", code)
				}
			case NatureContraLiabilityOrEq:
				if cls.Side != SideDebit {
					t.Fatalf("contra liability/equity %s must be debit-normal", code)
				}
			}
		}
	}
}
