package catalog

// Outline is a detached copy of the tree shape, for rendering. Changing it
// has no effect on the Index.
type Outline struct {
	Entry Entry
	Left  *Outline
	Right *Outline
}

// Outline returns a copy of the tree shape, or nil for an empty Index.
func (ix *Index) Outline() *Outline {
	return outlineOf(ix.root)
}

func outlineOf(n *node) *Outline {
	if n == nil {
		return nil
	}
	return &Outline{
		Entry: n.entry,
		Left:  outlineOf(n.left),
		Right: outlineOf(n.right),
	}
}

// Levels returns the entries grouped by depth, root first, left to right.
func (ix *Index) Levels() [][]Entry {
	levels := make([][]Entry, 0)
	if ix.root == nil {
		return levels
	}

	current := []*node{ix.root}
	for len(current) > 0 {
		row := make([]Entry, 0, len(current))
		next := make([]*node, 0, 2*len(current))
		for _, n := range current {
			row = append(row, n.entry)
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		levels = append(levels, row)
		current = next
	}
	return levels
}
