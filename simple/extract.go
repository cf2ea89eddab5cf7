package simple

import (
	"regexp"
	"strings"

	"github.com/sievetools/simplefilter/ast"
)

// mainNodes is the outcome of the top-level scan: the single If node
// carrying the filter and, when present, the annotation comment that
// governs it.
type mainNodes struct {
	comment *ast.Node
	tree    *ast.Node
}

// annotationComment matches the doc-comment shape the tokenizer emits for
// comparator annotations: a CRLF-terminated /** */ block of " * @word ..."
// lines. Comments of any other shape are ordinary comments and ignored.
var annotationComment = regexp.MustCompile(`^/\*\*\r\n(?:\s\*\s@\w+[^\r\n]*\r\n)+\s\*/$`)

// extractMainNode walks the top-level command list once. It checks off the
// required extensions, remembers the last well-formed If node and the last
// annotation comment, and ignores everything else. When several If nodes
// are present the last structurally valid one wins, and the surfaced error
// label reflects only the last invalid attempt.
func extractMainNode(nodes []*ast.Node) (mainNodes, error) {
	if nodes == nil {
		return mainNodes{}, unsupportedf("top level of the tree must be a list of commands")
	}

	unmet := make(map[string]bool, len(RequiredExtensions))
	for _, ext := range RequiredExtensions {
		unmet[ext] = true
	}

	var main mainNodes
	errLabel := ""
	for _, node := range nodes {
		if node == nil {
			continue
		}
		switch node.Type {
		case ast.TypeRequire:
			for _, ext := range node.List {
				delete(unmet, ext)
			}
		case ast.TypeIf:
			if label, ok := checkIfShape(node); !ok {
				errLabel = label
				continue
			}
			main.tree = node
		case ast.TypeComment:
			if annotationComment.MatchString(node.Text) {
				main.comment = node
			}
		}
	}

	if main.tree == nil {
		if errLabel == "" {
			errLabel = string(ast.TypeIf)
		}
		return mainNodes{}, invalidf("no valid main node: missing %s", errLabel)
	}
	if len(unmet) > 0 {
		names := make([]string, 0, len(unmet))
		for _, ext := range RequiredExtensions {
			if unmet[ext] {
				names = append(names, ext)
			}
		}
		return mainNodes{}, invalidf("unmet requirements: %s", strings.Join(names, ", "))
	}
	return main, nil
}

// checkIfShape verifies an If node carries the full If/Then/Type shape and
// a test list, reporting the first missing field name otherwise.
func checkIfShape(node *ast.Node) (string, bool) {
	switch {
	case node.If == nil:
		return "If", false
	case node.Then == nil:
		return "Then", false
	case node.Type == "":
		return "Type", false
	case node.If.Tests == nil:
		return "Tests", false
	}
	return "", true
}
