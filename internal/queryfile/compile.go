package queryfile

import (
	"fmt"

	"github.com/aflowkit/aflux/internal/matchbook"
	"github.com/aflowkit/aflux/internal/session"
)

// compiler tracks node reuse while walking the filter tree.
//
// Leaves narrowing the same keyword share the session node, so two adjacent
// leaves on one keyword fold into a self-combination (two bounds on one
// field). Once a node is consumed by a cross-combination its buffers are
// spent, and a later reappearance of any of its keywords would corrupt the
// expression; finished tracks that and turns reuse into a load error. Each
// group additionally tracks the keywords opened in its own scope, so a
// keyword split between a leaf and a later nested group is caught before the
// stray entry piles onto the shared node.
type compiler struct {
	sess     *session.Session
	finished map[string]bool
}

// compileWhere compiles the filter tree against a fresh session.
func compileWhere(root *Clause) (*matchbook.Keyword, error) {
	sess, err := session.New()
	if err != nil {
		return nil, err
	}
	c := &compiler{sess: sess, finished: make(map[string]bool)}
	return c.clause(root, make(map[string]bool))
}

func (c *compiler) clause(cl *Clause, scope map[string]bool) (*matchbook.Keyword, error) {
	switch {
	case len(cl.All) > 0 && len(cl.Any) > 0:
		return nil, fmt.Errorf("clause has both all and any")
	case len(cl.All) > 0:
		if cl.Not {
			return nil, fmt.Errorf("not applies to comparison leaves only, not to all/any groups")
		}
		return c.group(cl.All, and, scope)
	case len(cl.Any) > 0:
		if cl.Not {
			return nil, fmt.Errorf("not applies to comparison leaves only, not to all/any groups")
		}
		return c.group(cl.Any, or, scope)
	case cl.Keyword != "":
		return c.leaf(cl, scope)
	default:
		return nil, fmt.Errorf("empty clause")
	}
}

type combinator int

const (
	and combinator = iota
	or
)

func (c *compiler) group(children []Clause, comb combinator, scope map[string]bool) (*matchbook.Keyword, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("group needs at least two clauses, got %d", len(children))
	}

	inner := make(map[string]bool)
	var acc *matchbook.Keyword
	for i := range children {
		node, err := c.clause(&children[i], inner)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = node
			continue
		}
		// Same pointer means the child narrowed the keyword acc already
		// holds and the combination folds the node's own buffers. A
		// different pointer is a cross-combination, which leaves its
		// operands' buffers behind: both sides are spent afterwards.
		if node != acc {
			c.close(acc)
			c.close(node)
		}
		if comb == and {
			acc = acc.And(node)
		} else {
			acc = acc.Or(node)
		}
		if err := acc.Err(); err != nil {
			return nil, err
		}
	}

	// A group reducing to a single keyword node leaves that keyword open
	// for further adjacent narrowing in the enclosing group.
	if acc.Name() != "" {
		scope[acc.Name()] = true
	}
	return acc, nil
}

func (c *compiler) leaf(cl *Clause, scope map[string]bool) (*matchbook.Keyword, error) {
	if c.finished[cl.Keyword] {
		return nil, reuseError(cl.Keyword)
	}
	k, err := c.sess.Keyword(cl.Keyword)
	if err != nil {
		return nil, err
	}
	if !scope[cl.Keyword] && k.Pending() {
		return nil, reuseError(cl.Keyword)
	}
	scope[cl.Keyword] = true

	v, err := toValue(cl.Value)
	if err != nil {
		return nil, fmt.Errorf("keyword %q: %w", cl.Keyword, err)
	}

	switch cl.Op {
	case "at_most":
		k.AtMost(v)
	case "at_least":
		k.AtLeast(v)
	case "contains":
		k.Contains(v)
	case "equals":
		k.Equals(v)
	default:
		return nil, fmt.Errorf("keyword %q: unknown op %q", cl.Keyword, cl.Op)
	}
	if cl.Not {
		k.Not()
	}
	if err := k.Err(); err != nil {
		return nil, err
	}
	return k, nil
}

// close marks every keyword contributing to node as spent. Composite nodes
// close all their contributing fields at once.
func (c *compiler) close(node *matchbook.Keyword) {
	for _, name := range node.Classes() {
		c.finished[name] = true
	}
}

func reuseError(name string) error {
	return fmt.Errorf("keyword %q reused: clauses on one keyword must be adjacent in a single group", name)
}

// toValue maps a decoded YAML scalar or sequence onto a tagged comparison
// value.
func toValue(raw any) (matchbook.Value, error) {
	switch v := raw.(type) {
	case string:
		return matchbook.Text(v), nil
	case int:
		return matchbook.Int(v), nil
	case int64:
		return matchbook.Int(v), nil
	case float64:
		return matchbook.Float(v), nil
	case []any:
		return toSequence(v)
	case nil:
		return nil, fmt.Errorf("missing value")
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}

func toSequence(items []any) (matchbook.Value, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("empty sequence value")
	}
	switch items[0].(type) {
	case string:
		texts := make(matchbook.Texts, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("mixed sequence: element %d is %T", i, item)
			}
			texts[i] = s
		}
		return texts, nil
	case int, int64, float64:
		nums := make(matchbook.Numbers, len(items))
		for i, item := range items {
			switch n := item.(type) {
			case int:
				nums[i] = float64(n)
			case int64:
				nums[i] = float64(n)
			case float64:
				nums[i] = n
			default:
				return nil, fmt.Errorf("mixed sequence: element %d is %T", i, item)
			}
		}
		return nums, nil
	default:
		return nil, fmt.Errorf("unsupported sequence element type %T", items[0])
	}
}
