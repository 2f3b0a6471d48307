package statement

import (
	"errors"
	"fmt"

	"github.com/mizan-erp/mizan/internal/coa"
)

// ErrTemplateConfig marks a malformed statement template. Raised at load
// time only; a template that validates never fails during a request.
var ErrTemplateConfig = errors.New("statement: template misconfigured")

// LeafAccount places one account code in a template leaf with its statement
// impact sign. Contra accounts carry -1 so their natural balance offsets
// their peers in the same leaf.
type LeafAccount struct {
	Code   string
	Impact int
}

// Node is one level of a statement template. An internal node carries
// Children (ordered, uniquely labelled); a leaf carries Accounts. Exactly one
// of the two is set.
type Node struct {
	Label    string
	Children []*Node
	Accounts []LeafAccount
}

// Leaf reports whether the node carries accounts rather than children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Template is a finite, acyclic statement layout rooted at a single node.
type Template struct {
	Name string
	Root *Node
}

// Validate rejects structural defects before the template serves any
// request: account codes placed in more than one leaf, codes missing from
// the registry, impact signs other than +-1, duplicate child labels, and
// nodes that are both internal and leaf.
func (t *Template) Validate(registry *coa.Registry) error {
	if t.Root == nil {
		return fmt.Errorf("%w: %s has no root", ErrTemplateConfig, t.Name)
	}
	seen := make(map[string]string)
	return t.validateNode(t.Root, registry, seen)
}

func (t *Template) validateNode(n *Node, registry *coa.Registry, seen map[string]string) error {
	if len(n.Children) > 0 && len(n.Accounts) > 0 {
		return fmt.Errorf("%w: %s node %q is both group and leaf", ErrTemplateConfig, t.Name, n.Label)
	}
	if n.Leaf() {
		if len(n.Accounts) == 0 {
			return fmt.Errorf("%w: %s leaf %q lists no accounts", ErrTemplateConfig, t.Name, n.Label)
		}
		for _, acc := range n.Accounts {
			if acc.Impact != 1 && acc.Impact != -1 {
				return fmt.Errorf("%w: %s account %s impact must be +1 or -1", ErrTemplateConfig, t.Name, acc.Code)
			}
			if prev, dup := seen[acc.Code]; dup {
				return fmt.Errorf("%w: %s account %s placed in both %q and %q", ErrTemplateConfig, t.Name, acc.Code, prev, n.Label)
			}
			seen[acc.Code] = n.Label
			if !registry.Has(acc.Code) {
				return fmt.Errorf("%w: %s references unregistered account %s", ErrTemplateConfig, t.Name, acc.Code)
			}
		}
		return nil
	}
	labels := make(map[string]bool, len(n.Children))
	for _, child := range n.Children {
		if child.Label == "" {
			return fmt.Errorf("%w: %s has an unlabelled node under %q", ErrTemplateConfig, t.Name, n.Label)
		}
		if labels[child.Label] {
			return fmt.Errorf("%w: %s duplicate label %q under %q", ErrTemplateConfig, t.Name, child.Label, n.Label)
		}
		labels[child.Label] = true
		if err := t.validateNode(child, registry, seen); err != nil {
			return err
		}
	}
	return nil
}

// impactFor derives the statement impact sign from an account's nature:
// contra and deduction natures subtract, everything else adds.
func impactFor(nature coa.Nature) int {
	switch nature {
	case coa.NatureContraAsset, coa.NatureContraLiabilityOrEq,
		coa.NatureExpense, coa.NatureCostOfRevenue:
		return -1
	default:
		return 1
	}
}
