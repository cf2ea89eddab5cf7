package simple

import "github.com/sievetools/simplefilter/ast"

// FromTree converts a tokenized Sieve script to the simplified filter
// model. The caller's tree is never modified: the main node is deep-cloned
// before any traversal, and all value rewrites happen on the clone.
//
// Failures are either *UnsupportedRepresentationError or
// *InvalidInputError; in both cases the script cannot be represented in
// the simplified model and the caller should fall back to a raw view.
func FromTree(nodes []*ast.Node) (*Filter, error) {
	main, err := extractMainNode(nodes)
	if err != nil {
		return nil, err
	}
	tree := main.tree.Clone()

	ann, err := parseAnnotation(main.comment)
	if err != nil {
		return nil, err
	}

	operator, _ := operatorKeyFor(tree.If.Type)
	var comparators []string
	if ann != nil {
		if ann.Type != "" && ann.Type != operator {
			return nil, unsupportedf("logical operator %q does not match comment annotation %q", operator, ann.Type)
		}
		comparators = ann.Comparators
	}

	conditions, err := buildConditions(tree.If.Tests, comparators)
	if err != nil {
		return nil, err
	}
	actions, err := buildActions(tree.Then)
	if err != nil {
		return nil, err
	}

	return &Filter{
		Operator:   BuildLabelValue(operator),
		Conditions: conditions,
		Actions:    actions,
	}, nil
}
