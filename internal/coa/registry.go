package coa

import (
	"fmt"
	"sort"
)

// DefaultPrefixLen is the main-account code length used for fallback lookups.
// Sub-account codes such as "100.01" or "10001" classify by their first three
// characters unless individually registered.
const DefaultPrefixLen = 3

// Registry maps account codes to classifications. It is built once at startup
// and is safe for unsynchronised concurrent reads afterwards.
type Registry struct {
	entries   map[string]Classification
	prefixLen int
}

// NewRegistry builds a registry from the given classifications.
// Duplicate codes are a configuration defect and rejected outright.
func NewRegistry(entries []Classification) (*Registry, error) {
	r := &Registry{
		entries:   make(map[string]Classification, len(entries)),
		prefixLen: DefaultPrefixLen,
	}
	for _, c := range entries {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.entries[c.Code]; exists {
			return nil, fmt.Errorf("coa: duplicate classification for code %s", c.Code)
		}
		r.entries[c.Code] = c
	}
	return r, nil
}

// Classify resolves a ledger account code to its classification. An exact
// match always wins; otherwise the first prefixLen characters are tried once.
// Returns ErrUnknownAccount when neither exists.
func (r *Registry) Classify(code string) (Classification, error) {
	if c, ok := r.entries[code]; ok {
		return c, nil
	}
	if len(code) > r.prefixLen {
		if c, ok := r.entries[code[:r.prefixLen]]; ok {
			return c, nil
		}
	}
	return Classification{}, fmt.Errorf("%w: %s", ErrUnknownAccount, code)
}

// Has reports whether a code resolves, exactly or by prefix.
func (r *Registry) Has(code string) bool {
	_, err := r.Classify(code)
	return err == nil
}

// Codes returns all registered codes in ascending order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.entries))
	for code := range r.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of registered classifications.
func (r *Registry) Len() int {
	return len(r.entries)
}
