package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIf() *Node {
	return &Node{
		Type: TypeIf,
		If: &TestSpec{
			Type: OperatorAllOf,
			Tests: []*Node{
				{
					Type: TypeNot,
					Test: &Node{Type: TypeHeader, Headers: []string{"Subject"}, Keys: []string{"spam"}, Match: &Match{Type: "Contains"}},
				},
			},
		},
		Then: []*Node{
			{Type: TypeFileInto, Name: "Junk"},
			{Type: TypeAddFlag, Flags: []string{`\Seen`}},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleIf()
	clone := orig.Clone()

	require.Equal(t, orig, clone)

	// Mutating the clone must never show through the original.
	clone.If.Type = OperatorAnyOf
	clone.If.Tests[0].Test.Keys[0] = "ham"
	clone.If.Tests[0].Test.Match.Type = "Is"
	clone.Then[0].Name = "Archive"
	clone.Then[1].Flags[0] = `\Flagged`

	want := sampleIf()
	assert.Equal(t, want, orig)
	assert.NotEqual(t, want, clone)
}

func TestCloneNil(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Clone())
}

func TestClonePreservesNilSlices(t *testing.T) {
	orig := &Node{Type: TypeExists, Headers: []string{"X-Attached"}}
	clone := orig.Clone()

	require.Equal(t, orig, clone)
	assert.Nil(t, clone.Keys)
	assert.Nil(t, clone.Then)
}
