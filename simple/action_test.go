package simple

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sievetools/simplefilter/ast"
)

func addFlag(flags ...string) *ast.Node {
	return &ast.Node{Type: ast.TypeAddFlag, Flags: flags}
}

func TestBuildActions(t *testing.T) {
	tests := []struct {
		name string
		then []*ast.Node
		want Actions
	}{
		{
			name: "empty then branch",
			then: []*ast.Node{},
			want: Actions{FileInto: []string{}},
		},
		{
			name: "keep is a no-op",
			then: []*ast.Node{{Type: ast.TypeKeep}},
			want: Actions{FileInto: []string{}},
		},
		{
			name: "discard files into trash",
			then: []*ast.Node{{Type: ast.TypeDiscard}},
			want: Actions{FileInto: []string{"trash"}},
		},
		{
			name: "discard then fileinto keeps order",
			then: []*ast.Node{{Type: ast.TypeDiscard}, fileInto("Archive")},
			want: Actions{FileInto: []string{"trash", "Archive"}},
		},
		{
			name: "seen and flagged marks",
			then: []*ast.Node{addFlag(`\Seen`, `\Flagged`)},
			want: Actions{FileInto: []string{}, Mark: Mark{Read: true, Starred: true}},
		},
		{
			name: "last addflag wins wholesale",
			then: []*ast.Node{addFlag(`\Seen`, `\Flagged`), addFlag(`\Flagged`)},
			want: Actions{FileInto: []string{}, Mark: Mark{Starred: true}},
		},
		{
			name: "vacation message",
			then: []*ast.Node{{Type: ast.TypeVacation, Message: "away until Monday"}},
			want: Actions{FileInto: []string{}, Vacation: "away until Monday"},
		},
		{
			name: "legacy vacation tag",
			then: []*ast.Node{{Type: ast.TypeVacationLegacy, Message: "away"}},
			want: Actions{FileInto: []string{}, Vacation: "away"},
		},
		{
			name: "last vacation wins",
			then: []*ast.Node{
				{Type: ast.TypeVacation, Message: "first"},
				{Type: ast.TypeVacation, Message: "second"},
			},
			want: Actions{FileInto: []string{}, Vacation: "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildActions(tt.then)
			if err != nil {
				t.Fatalf("buildActions failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildActions mismatch\n got: %+v\nwant: %+v", got, tt.want)
			}
		})
	}
}

func TestBuildActionsUnknownTag(t *testing.T) {
	_, err := buildActions([]*ast.Node{{Type: "Redirect", Name: "other@example.com"}})
	var unsupported *UnsupportedRepresentationError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedRepresentationError, got %v", err)
	}
}
