package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
)

// Op combines previously computed derived-line values.
type Op string

const (
	OpAdd Op = "ADD"
	OpSub Op = "SUB"
)

// Combine is a formula over named lines declared earlier in the pipeline.
type Combine struct {
	Op       Op
	Operands []string
}

// Line is one income-statement row: either an aggregation over classified
// account groups or a combination of prior lines. Exactly one of Groups and
// Combine is set.
type Line struct {
	Name    string
	Groups  []string
	Combine *Combine
}

// LineResult carries a computed line value with its account detail when the
// line aggregates directly from balances.
type LineResult struct {
	Name   string
	Value  decimal.Decimal
	Detail []Contribution
}

// ValidateLines enforces the linear pipeline at load time: unique names,
// exactly one evaluation strategy per line, and formula operands declared
// strictly before use. A list that validates cannot fail during evaluation.
func ValidateLines(lines []Line) error {
	declared := make(map[string]bool, len(lines))
	for i, line := range lines {
		if line.Name == "" {
			return fmt.Errorf("%w: derived line %d unnamed", ErrTemplateConfig, i)
		}
		if declared[line.Name] {
			return fmt.Errorf("%w: derived line %q declared twice", ErrTemplateConfig, line.Name)
		}
		hasGroups := len(line.Groups) > 0
		hasCombine := line.Combine != nil
		if hasGroups == hasCombine {
			return fmt.Errorf("%w: derived line %q needs exactly one of groups or formula", ErrTemplateConfig, line.Name)
		}
		if hasCombine {
			if line.Combine.Op != OpAdd && line.Combine.Op != OpSub {
				return fmt.Errorf("%w: derived line %q has unknown op %q", ErrTemplateConfig, line.Name, line.Combine.Op)
			}
			if len(line.Combine.Operands) == 0 {
				return fmt.Errorf("%w: derived line %q has no operands", ErrTemplateConfig, line.Name)
			}
			for _, name := range line.Combine.Operands {
				if !declared[name] {
					return fmt.Errorf("%w: derived line %q references undeclared line %q", ErrTemplateConfig, line.Name, name)
				}
			}
		}
		declared[line.Name] = true
	}
	return nil
}

// EvaluateLines computes the derived lines strictly in declaration order,
// each exactly once. Aggregation lines sum the signed net balances of every
// classified income-statement account whose group label matches; formula
// lines fold previously computed values under their operator.
func EvaluateLines(lines []Line, balances map[string]decimal.Decimal, registry *coa.Registry) []LineResult {
	computed := make(map[string]decimal.Decimal, len(lines))
	results := make([]LineResult, 0, len(lines))

	for _, line := range lines {
		var res LineResult
		res.Name = line.Name
		if line.Combine != nil {
			value := computed[line.Combine.Operands[0]]
			for _, name := range line.Combine.Operands[1:] {
				if line.Combine.Op == OpSub {
					value = value.Sub(computed[name])
				} else {
					value = value.Add(computed[name])
				}
			}
			res.Value = value
		} else {
			res.Value = decimal.Zero
			groups := make(map[string]bool, len(line.Groups))
			for _, g := range line.Groups {
				groups[g] = true
			}
			for _, code := range registry.Codes() {
				cls, err := registry.Classify(code)
				if err != nil || cls.Section != coa.SectionIncomeStatement || !groups[cls.Group] {
					continue
				}
				balance, ok := balances[code]
				if !ok {
					continue
				}
				amount := balance.Mul(decimal.NewFromInt(int64(impactFor(cls.Nature))))
				res.Detail = append(res.Detail, Contribution{Code: code, Name: cls.Name, Amount: amount})
				res.Value = res.Value.Add(amount)
			}
		}
		computed[line.Name] = res.Value
		results = append(results, res)
	}
	return results
}
