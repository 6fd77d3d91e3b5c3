package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesstree/internal/errors"
)

// build creates a tree from parent -> children edges over string payloads.
//
//	e4 ─ e5 ─ Nf3
//	   │    └ Bc4
//	   └ c5
func build(t *testing.T) (*Tree[string], map[string]Key) {
	t.Helper()
	tr := New[string]()
	keys := make(map[string]Key)
	add := func(name, parent string) {
		k, err := tr.Add(name, keys[parent])
		require.NoError(t, err)
		keys[name] = k
	}
	add("e4", "")
	add("e5", "e4")
	add("c5", "e4")
	add("Nf3", "e5")
	add("Bc4", "e5")
	return tr, keys
}

func dataOf(t *testing.T, tr *Tree[string], keys []Key) []string {
	t.Helper()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		d, ok := tr.Data(k)
		require.True(t, ok, "key %s", k)
		out = append(out, d)
	}
	return out
}

func TestAddAndNavigate(t *testing.T) {
	tr, k := build(t)

	require.Equal(t, 5, tr.Len())
	require.Equal(t, []Key{k["e4"]}, tr.Roots())
	require.Equal(t, []string{"e5", "c5"}, dataOf(t, tr, tr.Children(k["e4"])))
	require.Equal(t, []string{"e4", "e5", "Nf3"}, dataOf(t, tr, tr.Path(k["Nf3"])))
	require.Equal(t, []string{"e4", "e5", "Nf3"}, dataOf(t, tr, tr.Continuation(k["e4"])))
	require.Equal(t, []string{"e4", "e5", "Nf3"}, dataOf(t, tr, tr.Continuation(Key{})))
	require.Equal(t, []string{"c5"}, dataOf(t, tr, tr.Continuation(k["c5"])))

	parent, ok := tr.Parent(k["Bc4"])
	require.True(t, ok)
	require.Equal(t, k["e5"], parent)

	parent, ok = tr.Parent(k["e4"])
	require.True(t, ok)
	require.True(t, parent.IsZero())

	node, ok := tr.Node(k["e5"])
	require.True(t, ok)
	require.Equal(t, "e5", node.Data)
	require.Equal(t, []Key{k["Nf3"], k["Bc4"]}, node.Children)
}

func TestNodeReturnsCopy(t *testing.T) {
	tr, k := build(t)
	node, _ := tr.Node(k["e5"])
	node.Children[0] = Key{}
	require.Equal(t, []Key{k["Nf3"], k["Bc4"]}, tr.Children(k["e5"]))
}

func TestAddToMissingParent(t *testing.T) {
	tr := New[string]()
	_, err := tr.Add("x", Key{index: 7, gen: 1})
	require.ErrorIs(t, err, errors.ErrNodeNotFound)
	require.Equal(t, 0, tr.Len())
}

func TestForest(t *testing.T) {
	tr := New[string]()
	a, err := tr.Add("d4", Key{})
	require.NoError(t, err)
	b, err := tr.Add("e4", Key{})
	require.NoError(t, err)
	require.Equal(t, []Key{a, b}, tr.Roots())
	require.Equal(t, []Key{a, b}, tr.Siblings(b))
	require.Equal(t, 1, tr.SiblingIndex(b))
}

func TestUpdate(t *testing.T) {
	tr, k := build(t)
	require.NoError(t, tr.Update(k["e5"], func(d *string) { *d += "!" }))
	d, _ := tr.Data(k["e5"])
	require.Equal(t, "e5!", d)

	require.NoError(t, tr.Set(k["c5"], "c6"))
	d, _ = tr.Data(k["c5"])
	require.Equal(t, "c6", d)

	require.ErrorIs(t, tr.Update(Key{}, func(*string) {}), errors.ErrNodeNotFound)
}

func TestDeleteCascades(t *testing.T) {
	tr, k := build(t)
	require.NoError(t, tr.Delete(k["e5"]))

	require.Equal(t, 2, tr.Len())
	for _, name := range []string{"e5", "Nf3", "Bc4"} {
		require.False(t, tr.Contains(k[name]), name)
	}
	require.Equal(t, []string{"c5"}, dataOf(t, tr, tr.Children(k["e4"])))
	require.ErrorIs(t, tr.Delete(k["e5"]), errors.ErrNodeNotFound)
}

func TestDeletedKeysStayInvalid(t *testing.T) {
	tr, k := build(t)
	require.NoError(t, tr.Delete(k["Bc4"]))

	// The freed slot is reused with a new generation.
	fresh, err := tr.Add("Bb5", k["e5"])
	require.NoError(t, err)
	require.Equal(t, k["Bc4"].index, fresh.index)
	require.NotEqual(t, k["Bc4"], fresh)

	_, ok := tr.Data(k["Bc4"])
	require.False(t, ok)
	d, ok := tr.Data(fresh)
	require.True(t, ok)
	require.Equal(t, "Bb5", d)
}

func TestDeleteRoot(t *testing.T) {
	tr, k := build(t)
	require.NoError(t, tr.Delete(k["e4"]))
	require.Equal(t, 0, tr.Len())
	require.Empty(t, tr.Roots())
}

func TestSiblingOrdering(t *testing.T) {
	tr, k := build(t)
	c6, err := tr.Add("c6", k["e4"])
	require.NoError(t, err)

	require.Equal(t, []string{"e5", "c5", "c6"}, dataOf(t, tr, tr.Siblings(c6)))
	require.Equal(t, 2, tr.SiblingIndex(c6))

	require.NoError(t, tr.PromoteVariation(c6))
	require.Equal(t, []string{"e5", "c6", "c5"}, dataOf(t, tr, tr.Siblings(c6)))

	require.NoError(t, tr.SetSiblingIndex(c6, 0))
	require.Equal(t, []string{"c6", "e5", "c5"}, dataOf(t, tr, tr.Siblings(c6)))

	// Promoting the mainline child changes nothing.
	require.NoError(t, tr.PromoteVariation(c6))
	require.Equal(t, 0, tr.SiblingIndex(c6))

	require.Error(t, tr.SetSiblingIndex(c6, 3))
	require.Equal(t, -1, tr.SiblingIndex(Key{}))
}

func TestSetSiblingIndexSwaps(t *testing.T) {
	tr, k := build(t)
	c6, err := tr.Add("c6", k["e4"])
	require.NoError(t, err)
	e6, err := tr.Add("e6", k["e4"])
	require.NoError(t, err)
	require.Equal(t, []string{"e5", "c5", "c6", "e6"}, dataOf(t, tr, tr.Siblings(c6)))

	require.NoError(t, tr.SetSiblingIndex(c6, 0))
	require.Equal(t, []string{"c6", "c5", "e5", "e6"}, dataOf(t, tr, tr.Siblings(c6)))

	require.NoError(t, tr.SetSiblingIndex(e6, 1))
	require.Equal(t, []string{"c6", "e6", "e5", "c5"}, dataOf(t, tr, tr.Siblings(c6)))

	// Swapping with itself is a no-op.
	require.NoError(t, tr.SetSiblingIndex(e6, 1))
	require.Equal(t, 1, tr.SiblingIndex(e6))
}

func TestPromoteToMainline(t *testing.T) {
	tr, k := build(t)
	leaf, err := tr.Add("Nc6", k["c5"])
	require.NoError(t, err)
	_, err = tr.Add("d6", k["c5"])
	require.NoError(t, err)

	require.NoError(t, tr.PromoteToMainline(leaf))
	for _, key := range tr.Path(leaf) {
		require.Equal(t, 0, tr.SiblingIndex(key))
	}
	require.Equal(t, []string{"e4", "c5", "Nc6"}, dataOf(t, tr, tr.Continuation(Key{})))
	require.ErrorIs(t, tr.PromoteToMainline(Key{}), errors.ErrNodeNotFound)
}

func TestFindChildAndAncestor(t *testing.T) {
	tr, k := build(t)

	got, ok := tr.FindChild(k["e5"], func(n Node[string]) bool { return n.Data == "Bc4" })
	require.True(t, ok)
	require.Equal(t, k["Bc4"], got)

	_, ok = tr.FindChild(k["e4"], func(n Node[string]) bool { return n.Data == "Nf3" })
	require.False(t, ok, "search is one level deep")

	got, ok = tr.FindChild(Key{}, func(n Node[string]) bool { return n.Data == "e4" })
	require.True(t, ok)
	require.Equal(t, k["e4"], got)

	got, ok = tr.FindFirstAncestor(k["Nf3"], func(n Node[string]) bool { return len(n.Children) > 1 })
	require.True(t, ok)
	require.Equal(t, k["e5"], got)

	got, ok = tr.FindFirstAncestor(k["Nf3"], func(n Node[string]) bool { return n.Data == "Nf3" })
	require.True(t, ok, "the start node is included")
	require.Equal(t, k["Nf3"], got)

	_, ok = tr.FindFirstAncestor(k["Nf3"], func(n Node[string]) bool { return n.Data == "c5" })
	require.False(t, ok)
}

func TestWalk(t *testing.T) {
	tr, k := build(t)

	type visit struct {
		data  string
		depth int
	}
	var visits []visit
	tr.Walk(func(n Node[string], depth int) bool {
		visits = append(visits, visit{n.Data, depth})
		return true
	})
	require.Equal(t, []visit{{"e4", 0}, {"e5", 1}, {"Nf3", 2}, {"Bc4", 2}, {"c5", 1}}, visits)

	var pruned []string
	tr.Walk(func(n Node[string], _ int) bool {
		pruned = append(pruned, n.Data)
		return n.Key != k["e5"]
	})
	require.Equal(t, []string{"e4", "e5", "c5"}, pruned)
}
