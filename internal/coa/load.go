package coa

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// fileEntry is the YAML shape of one chart-of-accounts row.
type fileEntry struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Nature   string `yaml:"nature"`
	Side     string `yaml:"side"`
	Section  string `yaml:"section"`
	Group    string `yaml:"group"`
	SubGroup string `yaml:"sub_group"`
}

type file struct {
	Accounts []fileEntry `yaml:"accounts"`
}

// Account names in statutory charts are conventionally uppercase. Plain
// strings.ToUpper mangles dotted/dotless I, so casing is locale-aware.
var turkishUpper = cases.Upper(language.Turkish)

// LoadFile reads a chart-of-accounts override file and merges it over the
// built-in defaults: rows sharing a code replace the default entry, new rows
// extend the chart. The merged registry is validated as a whole.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("coa: read %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("coa: parse %s: %w", path, err)
	}

	merged := make(map[string]Classification)
	for _, c := range DefaultClassifications() {
		merged[c.Code] = c
	}
	for i, e := range f.Accounts {
		c := Classification{
			Code:     strings.TrimSpace(e.Code),
			Name:     turkishUpper.String(strings.TrimSpace(e.Name)),
			Nature:   Nature(strings.ToUpper(strings.TrimSpace(e.Nature))),
			Side:     BalanceSide(strings.ToUpper(strings.TrimSpace(e.Side))),
			Section:  Section(strings.ToUpper(strings.TrimSpace(e.Section))),
			Group:    strings.TrimSpace(e.Group),
			SubGroup: strings.TrimSpace(e.SubGroup),
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("coa: %s row %d: %w", path, i, err)
		}
		merged[c.Code] = c
	}

	entries := make([]Classification, 0, len(merged))
	for _, c := range merged {
		entries = append(entries, c)
	}
	return NewRegistry(entries)
}
