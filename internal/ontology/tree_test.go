package ontology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bidboard/internal/fixtures"
	"bidboard/internal/ontology"
	"bidboard/models"
)

func TestFilterBySearchKeepsAncestors(t *testing.T) {
	tree := fixtures.Tree()

	out := ontology.Filter(tree, ontology.Predicate{Search: "licenses"})

	// only N0101 matches; its parent N0001 survives as the path to it
	require.Len(t, out, 1)
	require.Equal(t, "N0001", out[0].ID)
	require.Len(t, out[0].Children, 1)
	require.Equal(t, "N0101", out[0].Children[0].ID)
}

func TestFilterByStatus(t *testing.T) {
	tree := fixtures.Tree()
	satisfied := models.StatusSatisfied

	out := ontology.Filter(tree, ontology.Predicate{Status: &satisfied})

	ids := map[string]bool{}
	var walk func(nodes []models.TreeNode)
	walk = func(nodes []models.TreeNode) {
		for _, n := range nodes {
			ids[n.ID] = true
			walk(n.Children)
		}
	}
	walk(out)

	require.True(t, ids["N0103"])
	require.True(t, ids["N0203"])
	// ancestors of the matches are kept, unrelated subtrees are not
	require.True(t, ids["N0001"])
	require.True(t, ids["N0002"])
	require.False(t, ids["N0003"])
	require.False(t, ids["N0301"])
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tree := fixtures.Tree()

	ontology.Filter(tree, ontology.Predicate{Search: "licenses"})

	require.Equal(t, fixtures.Tree(), tree)
}

func TestFilterEmptyPredicateKeepsEverything(t *testing.T) {
	tree := fixtures.Tree()

	out := ontology.Filter(tree, ontology.Predicate{})

	require.Equal(t, tree, out)
}

func TestFindNested(t *testing.T) {
	tree := fixtures.Tree()

	hit := ontology.Find(tree, "N0302")
	require.NotNil(t, hit)
	require.Equal(t, "Price evaluation criteria", hit.Label)

	require.Nil(t, ontology.Find(tree, "N9999"))
}

func TestUpdateStatusChangesExactlyOneNode(t *testing.T) {
	tree := fixtures.Tree()

	out, found := ontology.UpdateStatus(tree, "N0201", models.StatusSatisfied)
	require.True(t, found)

	require.Equal(t, models.StatusSatisfied, ontology.Find(out, "N0201").Status)
	// siblings and parents untouched
	require.Equal(t, models.StatusBlocked, ontology.Find(out, "N0002").Status)
	require.Equal(t, models.StatusNotStarted, ontology.Find(out, "N0202").Status)
	// the input tree is not mutated
	require.Equal(t, models.StatusInProgress, ontology.Find(tree, "N0201").Status)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	tree := fixtures.Tree()

	out, found := ontology.UpdateStatus(tree, "N9999", models.StatusSatisfied)
	require.False(t, found)
	require.Equal(t, tree, out)
}
