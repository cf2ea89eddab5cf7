package ast

// Type tags a Node with the Sieve construct it represents.
type Type string

const (
	TypeRequire Type = "Require"
	TypeIf      Type = "If"
	TypeComment Type = "Comment"

	// Tests
	TypeNot     Type = "Not"
	TypeExists  Type = "Exists"
	TypeHeader  Type = "Header"
	TypeAddress Type = "Address"

	// Actions
	TypeKeep     Type = "Keep"
	TypeDiscard  Type = "Discard"
	TypeFileInto Type = "FileInto"
	TypeAddFlag  Type = "AddFlag"
	TypeVacation Type = "Vacation"

	// Older tokenizer versions emit the vacation action with an
	// extension-qualified tag. Both spellings are accepted.
	TypeVacationLegacy Type = `Vacation\Vacation`
)

// Boolean operators joining the tests of an If node.
const (
	OperatorAllOf = "AllOf"
	OperatorAnyOf = "AnyOf"
)

// Match carries the match type of a Header or Address test,
// e.g. {"Type": "Contains"}.
type Match struct {
	Type string `json:"Type,omitempty"`
}

// TestSpec groups the condition tests of an If node with the boolean
// operator that joins them ("AllOf" or "AnyOf").
type TestSpec struct {
	Tests []*Node `json:"Tests,omitempty"`
	Type  string  `json:"Type,omitempty"`
}

// Node is one tokenized Sieve construct. Type selects the variant; only
// the fields belonging to that variant are populated.
type Node struct {
	Type Type `json:"Type,omitempty"`

	// Require
	List []string `json:"List,omitempty"`

	// Comment
	Text string `json:"Text,omitempty"`

	// If
	If   *TestSpec `json:"If,omitempty"`
	Then []*Node   `json:"Then,omitempty"`
	Else []*Node   `json:"Else,omitempty"`

	// Not
	Test *Node `json:"Test,omitempty"`

	// Header, Address, Exists
	Headers []string `json:"Headers,omitempty"`
	Keys    []string `json:"Keys,omitempty"`
	Match   *Match   `json:"Match,omitempty"`

	// FileInto
	Name string `json:"Name,omitempty"`

	// AddFlag
	Flags []string `json:"Flags,omitempty"`

	// Vacation
	Message string `json:"Message,omitempty"`
}

// Clone returns a deep copy of the node. The copy shares no memory with
// the original, so callers may rewrite it freely.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.List = cloneStrings(n.List)
	c.Headers = cloneStrings(n.Headers)
	c.Keys = cloneStrings(n.Keys)
	c.Flags = cloneStrings(n.Flags)
	c.Then = cloneNodes(n.Then)
	c.Else = cloneNodes(n.Else)
	c.Test = n.Test.Clone()
	if n.Match != nil {
		m := *n.Match
		c.Match = &m
	}
	if n.If != nil {
		c.If = &TestSpec{
			Tests: cloneNodes(n.If.Tests),
			Type:  n.If.Type,
		}
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
