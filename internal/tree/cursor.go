package tree

// MatchFunc reports whether two node payloads describe the same move.
type MatchFunc[T any] func(existing, candidate T) bool

// Cursor is a position in a tree. The zero Key means "before the first
// move", where the roots are the available continuations.
type Cursor[T any] struct {
	tree    *Tree[T]
	current Key
	match   MatchFunc[T]
}

// NewCursor creates a cursor before the first move. match decides when
// AddMove reuses an existing child instead of adding a sibling; nil
// never reuses.
func NewCursor[T any](t *Tree[T], match MatchFunc[T]) *Cursor[T] {
	return &Cursor[T]{tree: t, match: match}
}

// Tree returns the tree the cursor moves over.
func (c *Cursor[T]) Tree() *Tree[T] {
	return c.tree
}

// Current returns the key under the cursor.
func (c *Cursor[T]) Current() Key {
	return c.current
}

// Data returns the payload under the cursor; false before the first move.
func (c *Cursor[T]) Data() (T, bool) {
	return c.tree.Data(c.current)
}

// AtStart returns true before the first move.
func (c *Cursor[T]) AtStart() bool {
	return c.current.IsZero()
}

// GoTo moves to a node. The zero Key rewinds to the start.
func (c *Cursor[T]) GoTo(k Key) error {
	if !k.IsZero() && !c.tree.Contains(k) {
		return notFound(k)
	}
	c.current = k
	return nil
}

// Rewind moves before the first move.
func (c *Cursor[T]) Rewind() {
	c.current = Key{}
}

// StepForward follows the mainline child. It returns false at a leaf.
func (c *Cursor[T]) StepForward() bool {
	next, ok := c.tree.MainlineChild(c.current)
	if !ok {
		return false
	}
	c.current = next
	return true
}

// StepBackward moves to the parent. It returns false at the start.
func (c *Cursor[T]) StepBackward() bool {
	if c.current.IsZero() {
		return false
	}
	parent, ok := c.tree.Parent(c.current)
	if !ok {
		c.current = Key{}
		return false
	}
	c.current = parent
	return true
}

// FastForward follows the mainline to its end.
func (c *Cursor[T]) FastForward() {
	for c.StepForward() {
	}
}

// AddMove moves to the child of the current node matching data, adding
// it as a new last child when none exists. It returns the new current
// key and whether a node was added.
func (c *Cursor[T]) AddMove(data T) (Key, bool, error) {
	if c.match != nil {
		if k, ok := c.tree.FindChild(c.current, func(n Node[T]) bool { return c.match(n.Data, data) }); ok {
			c.current = k
			return k, false, nil
		}
	}
	k, err := c.tree.Add(data, c.current)
	if err != nil {
		return Key{}, false, err
	}
	c.current = k
	return k, true, nil
}
