package simple

import (
	"slices"
	"strings"

	"github.com/sievetools/simplefilter/ast"
)

// declared is the annotation for one condition position, split into the
// comparator word and its negation marker.
type declared struct {
	comparator string
	negate     bool
}

func declaredAt(comparators []string, i int) declared {
	if i >= len(comparators) {
		return declared{}
	}
	d := declared{comparator: comparators[i]}
	if strings.HasPrefix(d.comparator, "!") {
		d.negate = true
		d.comparator = d.comparator[1:]
	}
	return d
}

// buildConditions normalizes the tests of the main node, in input order.
// The comparator annotations align positionally; a shorter annotation list
// leaves the trailing conditions unconstrained. Value rewrites happen in
// place, which is safe because the caller hands over a private clone.
func buildConditions(tests []*ast.Node, comparators []string) ([]Condition, error) {
	conditions := make([]Condition, 0, len(tests))
	for i, test := range tests {
		cond, err := buildCondition(test, declaredAt(comparators, i))
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

func buildCondition(test *ast.Node, decl declared) (Condition, error) {
	element, negate := test, false
	if test.Type == ast.TypeNot && test.Test != nil {
		element, negate = test.Test, true
	}
	if decl.comparator != "" && decl.negate != negate {
		return Condition{}, unsupportedf("negation of condition does not match comment annotation %q", decl.comparator)
	}

	fieldType := inferFieldType(element)

	// Attachment tests have no match type of their own.
	comparator := ""
	if fieldType == FieldAttachments {
		comparator = MatchKeys["contains"]
	} else if element.Match != nil {
		comparator = element.Match.Type
	}

	values := element.Keys
	if values == nil {
		values = []string{}
	}

	switch {
	case decl.comparator == "starts" || decl.comparator == "ends":
		// Both lower to a wildcard match in the tree; only the comment
		// knows which one the user meant.
		if comparator != MatchKeys["matches"] {
			return Condition{}, unsupportedf("comparator %q cannot carry a %q annotation", comparator, decl.comparator)
		}
		comparator = MatchKeys[decl.comparator]
		for j, v := range values {
			if decl.comparator == "ends" {
				values[j] = strings.TrimLeft(v, "*")
			} else {
				values[j] = strings.TrimRight(v, "*")
			}
		}
	case decl.comparator != "" && decl.comparator != strings.ToLower(comparator):
		return Condition{}, unsupportedf("comparator %q does not match comment annotation %q", comparator, decl.comparator)
	}

	key, ok := matchKeyFor(comparator)
	if !ok {
		return Condition{}, invalidf("unknown comparator %q", comparator)
	}
	if negate {
		key = "!" + key
	}
	return Condition{
		Type:       BuildLabelValue(fieldType),
		Comparator: BuildLabelValue(key),
		Values:     values,
	}, nil
}

// inferFieldType derives the semantic message field a test examines from
// its tag and header set. Tests outside the vocabulary keep an empty type.
func inferFieldType(element *ast.Node) string {
	switch element.Type {
	case ast.TypeExists:
		if slices.Contains(element.Headers, "X-Attached") {
			return FieldAttachments
		}
	case ast.TypeHeader:
		if slices.Contains(element.Headers, "Subject") {
			return FieldSubject
		}
	case ast.TypeAddress:
		switch {
		case slices.Contains(element.Headers, "From"):
			return FieldSender
		case slices.Contains(element.Headers, "To"),
			slices.Contains(element.Headers, "Cc"),
			slices.Contains(element.Headers, "Bcc"):
			return FieldRecipient
		}
	}
	return ""
}
