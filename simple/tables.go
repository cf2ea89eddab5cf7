package simple

import "github.com/sievetools/simplefilter/ast"

// RequiredExtensions lists the Sieve extensions a representable script
// must declare through Require commands, in any order and across any
// number of commands.
var RequiredExtensions = []string{"fileinto", "imap4flags"}

// Condition field types the model recognizes. An unrecognized test keeps
// an empty type.
const (
	FieldAttachments = "attachments"
	FieldSubject     = "subject"
	FieldSender      = "sender"
	FieldRecipient   = "recipient"
)

// OperatorKeys maps model operator tokens to the boolean operator of an
// If node's test group.
var OperatorKeys = map[string]string{
	"all": ast.OperatorAllOf,
	"any": ast.OperatorAnyOf,
}

// MatchKeys maps model comparator tokens to AST match types.
var MatchKeys = map[string]string{
	"is":       "Is",
	"contains": "Contains",
	"matches":  "Matches",
	"starts":   "Starts",
	"ends":     "Ends",
	"default":  "Defaults",
}

// LabelKeys maps machine tokens to their display labels.
var LabelKeys = map[string]string{
	"all":            "All",
	"any":            "Any",
	FieldSubject:     "Subject",
	FieldSender:      "Sender",
	FieldRecipient:   "Recipient",
	FieldAttachments: "Attachments",
	"contains":       "contains",
	"!contains":      "does not contain",
	"is":             "is exactly",
	"!is":            "is not",
	"matches":        "matches",
	"!matches":       "does not match",
	"starts":         "begins with",
	"!starts":        "does not begin with",
	"ends":           "ends with",
	"!ends":          "does not end with",
}

// BuildLabelValue wraps a machine token with its display label. Tokens
// without a label entry keep an empty label.
func BuildLabelValue(value string) LabelValue {
	return LabelValue{Label: LabelKeys[value], Value: value}
}

// operatorKeyFor is the inverse operator lookup: AST boolean operator to
// model token.
func operatorKeyFor(treeType string) (string, bool) {
	for key, t := range OperatorKeys {
		if t == treeType {
			return key, true
		}
	}
	return "", false
}

// matchKeyFor is the inverse match lookup: AST match type to model token.
func matchKeyFor(matchType string) (string, bool) {
	for key, t := range MatchKeys {
		if t == matchType {
			return key, true
		}
	}
	return "", false
}
