// Package tree provides an ordered forest of nodes stored in an arena.
//
// Nodes are addressed by generation-stamped keys. A node's first child is
// its mainline continuation; later children are side variations in the
// order they were created unless reordered.
package tree

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesstree/internal/errors"
)

// Key identifies a node. The zero Key refers to no node; as a parent it
// means "no parent", and as a cursor position it means "before the first
// move". Keys of deleted nodes never become valid again.
type Key struct {
	index uint32
	gen   uint32
}

// IsZero returns true for the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// String returns a short debugging form such as "3.1".
func (k Key) String() string {
	if k.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%d.%d", k.index, k.gen)
}

// Node is a snapshot of one tree node.
type Node[T any] struct {
	Key      Key
	Data     T
	Parent   Key
	Children []Key
}

type slot[T any] struct {
	node Node[T]
	gen  uint32
	live bool
}

// Tree is an arena-backed ordered forest. The zero value is not usable;
// create trees with New.
type Tree[T any] struct {
	// Slot 0 is never used so that the zero Key stays invalid.
	slots []slot[T]
	free  []uint32
	roots []Key
	count int
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{slots: make([]slot[T], 1, 64)}
}

func (t *Tree[T]) lookup(k Key) *slot[T] {
	if k.index == 0 || int(k.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[k.index]
	if !s.live || s.gen != k.gen {
		return nil
	}
	return s
}

func notFound(k Key) error {
	return fmt.Errorf("key %s: %w", k, errors.ErrNodeNotFound)
}

// Contains returns true if the key refers to a live node.
func (t *Tree[T]) Contains(k Key) bool {
	return t.lookup(k) != nil
}

// Len returns the number of live nodes.
func (t *Tree[T]) Len() int {
	return t.count
}

// Add appends a node as the last child of parent, or as a new root when
// parent is the zero Key.
func (t *Tree[T]) Add(data T, parent Key) (Key, error) {
	var ps *slot[T]
	if !parent.IsZero() {
		if ps = t.lookup(parent); ps == nil {
			return Key{}, notFound(parent)
		}
	}

	var k Key
	if n := len(t.free); n > 0 {
		k.index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		k.index = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{})
		// append may have moved the parent slot.
		if !parent.IsZero() {
			ps = &t.slots[parent.index]
		}
	}
	s := &t.slots[k.index]
	s.gen++
	s.live = true
	k.gen = s.gen
	s.node = Node[T]{Key: k, Data: data, Parent: parent}

	if ps != nil {
		ps.node.Children = append(ps.node.Children, k)
	} else {
		t.roots = append(t.roots, k)
	}
	t.count++
	return k, nil
}

// Update changes a node's data in place.
func (t *Tree[T]) Update(k Key, fn func(data *T)) error {
	s := t.lookup(k)
	if s == nil {
		return notFound(k)
	}
	fn(&s.node.Data)
	return nil
}

// Set replaces a node's data.
func (t *Tree[T]) Set(k Key, data T) error {
	return t.Update(k, func(d *T) { *d = data })
}

// Delete removes a node and all of its descendants, detaching it from
// its parent's children.
func (t *Tree[T]) Delete(k Key) error {
	s := t.lookup(k)
	if s == nil {
		return notFound(k)
	}
	if p := t.lookup(s.node.Parent); p != nil {
		p.node.Children = removeKey(p.node.Children, k)
	} else {
		t.roots = removeKey(t.roots, k)
	}
	t.release(k)
	return nil
}

// release frees a node and its subtree.
func (t *Tree[T]) release(k Key) {
	s := t.lookup(k)
	if s == nil {
		return
	}
	children := s.node.Children
	s.live = false
	s.node = Node[T]{}
	t.free = append(t.free, k.index)
	t.count--
	for _, c := range children {
		t.release(c)
	}
}

func removeKey(keys []Key, k Key) []Key {
	if i := slices.Index(keys, k); i >= 0 {
		return slices.Delete(keys, i, i+1)
	}
	return keys
}

// Node returns a copy of a node.
func (t *Tree[T]) Node(k Key) (Node[T], bool) {
	s := t.lookup(k)
	if s == nil {
		return Node[T]{}, false
	}
	n := s.node
	n.Children = slices.Clone(n.Children)
	return n, true
}

// Data returns a node's data.
func (t *Tree[T]) Data(k Key) (T, bool) {
	s := t.lookup(k)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.node.Data, true
}

// Parent returns a node's parent, the zero Key for a root.
func (t *Tree[T]) Parent(k Key) (Key, bool) {
	s := t.lookup(k)
	if s == nil {
		return Key{}, false
	}
	return s.node.Parent, true
}

// Children returns a copy of a node's children in order. The zero Key
// returns the roots.
func (t *Tree[T]) Children(k Key) []Key {
	if k.IsZero() {
		return t.Roots()
	}
	s := t.lookup(k)
	if s == nil {
		return nil
	}
	return slices.Clone(s.node.Children)
}

// Roots returns a copy of the parentless nodes in order.
func (t *Tree[T]) Roots() []Key {
	return slices.Clone(t.roots)
}

// children returns the live child list of k without copying. The zero
// Key refers to the root list.
func (t *Tree[T]) children(k Key) *[]Key {
	if k.IsZero() {
		return &t.roots
	}
	if s := t.lookup(k); s != nil {
		return &s.node.Children
	}
	return nil
}

// MainlineChild returns a node's first child. The zero Key returns the
// first root.
func (t *Tree[T]) MainlineChild(k Key) (Key, bool) {
	list := t.children(k)
	if list == nil || len(*list) == 0 {
		return Key{}, false
	}
	return (*list)[0], true
}

// Path returns the keys from a root down to k, inclusive.
func (t *Tree[T]) Path(k Key) []Key {
	var path []Key
	for s := t.lookup(k); s != nil; s = t.lookup(s.node.Parent) {
		path = append(path, s.node.Key)
	}
	slices.Reverse(path)
	return path
}

// Continuation returns k followed by its mainline descendants down to a
// leaf. The zero Key gives the mainline from the first root.
func (t *Tree[T]) Continuation(k Key) []Key {
	var line []Key
	if !k.IsZero() {
		if !t.Contains(k) {
			return nil
		}
		line = append(line, k)
	}
	for next, ok := t.MainlineChild(k); ok; next, ok = t.MainlineChild(next) {
		line = append(line, next)
	}
	return line
}

// Siblings returns the child list k belongs to, k included.
func (t *Tree[T]) Siblings(k Key) []Key {
	s := t.lookup(k)
	if s == nil {
		return nil
	}
	return slices.Clone(*t.children(s.node.Parent))
}

// SiblingIndex returns k's position among its siblings, or -1.
func (t *Tree[T]) SiblingIndex(k Key) int {
	s := t.lookup(k)
	if s == nil {
		return -1
	}
	return slices.Index(*t.children(s.node.Parent), k)
}

// SetSiblingIndex swaps k with the sibling at position i; the other
// siblings keep their places. Index 0 makes k the mainline.
func (t *Tree[T]) SetSiblingIndex(k Key, i int) error {
	s := t.lookup(k)
	if s == nil {
		return notFound(k)
	}
	list := t.children(s.node.Parent)
	if i < 0 || i >= len(*list) {
		return fmt.Errorf("sibling index %d out of range [0,%d)", i, len(*list))
	}
	cur := slices.Index(*list, k)
	(*list)[cur], (*list)[i] = (*list)[i], (*list)[cur]
	return nil
}

// PromoteVariation moves k one place up among its siblings. It is a no-op
// for the mainline child.
func (t *Tree[T]) PromoteVariation(k Key) error {
	i := t.SiblingIndex(k)
	if i < 0 {
		return notFound(k)
	}
	if i == 0 {
		return nil
	}
	return t.SetSiblingIndex(k, i-1)
}

// PromoteToMainline makes every node on the path to k the first child of
// its parent, so the whole path becomes the mainline.
func (t *Tree[T]) PromoteToMainline(k Key) error {
	path := t.Path(k)
	if len(path) == 0 {
		return notFound(k)
	}
	for _, p := range path {
		if err := t.SetSiblingIndex(p, 0); err != nil {
			return err
		}
	}
	return nil
}

// FindChild returns the first child of k whose node satisfies pred. The
// zero Key searches the roots.
func (t *Tree[T]) FindChild(k Key, pred func(Node[T]) bool) (Key, bool) {
	list := t.children(k)
	if list == nil {
		return Key{}, false
	}
	for _, c := range *list {
		if pred(t.slots[c.index].node) {
			return c, true
		}
	}
	return Key{}, false
}

// FindFirstAncestor walks from k towards the root, k included, and
// returns the first node satisfying pred.
func (t *Tree[T]) FindFirstAncestor(k Key, pred func(Node[T]) bool) (Key, bool) {
	for s := t.lookup(k); s != nil; s = t.lookup(s.node.Parent) {
		if pred(s.node) {
			return s.node.Key, true
		}
	}
	return Key{}, false
}

// Walk visits every node depth first, mainline children before side
// variations. Returning false from fn skips the node's subtree.
func (t *Tree[T]) Walk(fn func(n Node[T], depth int) bool) {
	for _, r := range slices.Clone(t.roots) {
		t.walk(r, 0, fn)
	}
}

func (t *Tree[T]) walk(k Key, depth int, fn func(Node[T], int) bool) {
	s := t.lookup(k)
	if s == nil {
		return
	}
	if !fn(s.node, depth) {
		return
	}
	for _, c := range slices.Clone(s.node.Children) {
		t.walk(c, depth+1, fn)
	}
}
