package simple

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sievetools/simplefilter/ast"
)

// annotation is the parsed comparator comment: the declared boolean
// operator token ("all"/"any") and one declared comparator per condition,
// in condition order.
type annotation struct {
	Type        string
	Comparators []string
}

var annotationLine = regexp.MustCompile(`^\s?@(\w+)\s(.*)$`)

// annotationTypes maps raw @type values to model operator tokens.
var annotationTypes = map[string]string{
	"and": "all",
	"or":  "any",
}

// parseAnnotation parses the accepted annotation comment. A nil comment
// means the script carries no annotation and returns no constraint. All
// lines are scanned before failing so that every unknown annotation is
// reported at once.
func parseAnnotation(comment *ast.Node) (*annotation, error) {
	if comment == nil {
		return nil, nil
	}

	ann := &annotation{}
	var unknown []string
	for _, line := range strings.Split(comment.Text, "\r\n *") {
		m := annotationLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		kind, value := m[1], m[2]
		switch kind {
		case "type":
			t, ok := annotationTypes[value]
			if !ok {
				unknown = append(unknown, fmt.Sprintf("%s %s", kind, value))
				continue
			}
			ann.Type = t
		case "comparator":
			// "default" is the tokenizer's spelling of "contains".
			ann.Comparators = append(ann.Comparators, strings.Replace(value, "default", "contains", 1))
		}
	}

	if len(unknown) > 0 {
		return nil, invalidf("unknown annotations: %s", strings.Join(unknown, ", "))
	}
	return ann, nil
}
