package statement

import (
	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
)

// Contribution records one account's signed share of a leaf subtotal.
type Contribution struct {
	Code   string
	Name   string
	Amount decimal.Decimal
}

// ResultNode mirrors a template node with computed amounts. Internal nodes
// carry Children, leaves carry Contributions; both carry a Subtotal.
type ResultNode struct {
	Label         string
	Children      []*ResultNode
	Contributions []Contribution
	Subtotal      decimal.Decimal
}

// Build walks a validated template post-order against resolved balances and
// returns the result tree plus the root subtotal. Accounts without a balance
// contribute nothing; balances without a template slot are simply not
// reported. Addition is decimal-exact with no intermediate rounding, so the
// result is identical however subtrees are ordered.
func Build(t *Template, balances map[string]decimal.Decimal, registry *coa.Registry) (*ResultNode, decimal.Decimal) {
	root := buildNode(t.Root, balances, registry)
	return root, root.Subtotal
}

// Find returns the first node labelled label in a depth-first walk, or nil.
func (n *ResultNode) Find(label string) *ResultNode {
	if n == nil {
		return nil
	}
	if n.Label == label {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(label); found != nil {
			return found
		}
	}
	return nil
}

func buildNode(n *Node, balances map[string]decimal.Decimal, registry *coa.Registry) *ResultNode {
	out := &ResultNode{Label: n.Label, Subtotal: decimal.Zero}
	if n.Leaf() {
		for _, acc := range n.Accounts {
			balance, ok := balances[acc.Code]
			if !ok {
				continue
			}
			amount := balance.Mul(decimal.NewFromInt(int64(acc.Impact)))
			name := ""
			if cls, err := registry.Classify(acc.Code); err == nil {
				name = cls.Name
			}
			out.Contributions = append(out.Contributions, Contribution{
				Code:   acc.Code,
				Name:   name,
				Amount: amount,
			})
			out.Subtotal = out.Subtotal.Add(amount)
		}
		return out
	}
	for _, child := range n.Children {
		built := buildNode(child, balances, registry)
		out.Children = append(out.Children, built)
		out.Subtotal = out.Subtotal.Add(built.Subtotal)
	}
	return out
}
