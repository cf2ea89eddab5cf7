package simple

import (
	"slices"

	"github.com/sievetools/simplefilter/ast"
)

// TrashFolder is the sentinel fileinto target a Discard action lowers to.
const TrashFolder = "trash"

// buildActions folds the Then branch into the fixed-shape action record.
// FileInto targets accumulate in order, a later AddFlag replaces the marks
// of an earlier one wholesale, and the last vacation message wins. Any
// action outside the vocabulary aborts the conversion.
func buildActions(then []*ast.Node) (Actions, error) {
	actions := Actions{FileInto: []string{}}
	for _, node := range then {
		switch node.Type {
		case ast.TypeKeep:
			// keep is the implicit default, nothing to record
		case ast.TypeDiscard:
			actions.FileInto = append(actions.FileInto, TrashFolder)
		case ast.TypeFileInto:
			actions.FileInto = append(actions.FileInto, node.Name)
		case ast.TypeAddFlag:
			actions.Mark = Mark{
				Read:    slices.Contains(node.Flags, `\Seen`),
				Starred: slices.Contains(node.Flags, `\Flagged`),
			}
		case ast.TypeVacation, ast.TypeVacationLegacy:
			actions.Vacation = node.Message
		default:
			return Actions{}, unsupportedf("unsupported action %q", node.Type)
		}
	}
	return actions, nil
}
