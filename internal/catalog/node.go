package catalog

// node owns its entry and both children. There is no parent link; every
// structural change is expressed by returning the new subtree root.
type node struct {
	entry Entry
	left  *node
	right *node
}

func insertNode(n *node, e Entry) (*node, bool) {
	if n == nil {
		return &node{entry: e}, true
	}

	var inserted bool
	switch cmp := Compare(e, n.entry); {
	case cmp < 0:
		n.left, inserted = insertNode(n.left, e)
	case cmp > 0:
		n.right, inserted = insertNode(n.right, e)
	}
	return n, inserted
}

func deleteNode(n *node, key Entry) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch cmp := Compare(key, n.entry); {
	case cmp < 0:
		n.left, removed = deleteNode(n.left, key)
		return n, removed
	case cmp > 0:
		n.right, removed = deleteNode(n.right, key)
		return n, removed
	}

	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// Two children: take over the in-order successor's entry, then drop the
	// successor from the right subtree. The successor has no left child.
	successor := minNode(n.right)
	n.entry = successor.entry
	n.right, _ = deleteNode(n.right, successor.entry)
	return n, true
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func findNode(n *node, key Entry) *node {
	for n != nil {
		switch cmp := Compare(key, n.entry); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func inOrder(n *node, yield func(Entry) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.entry) && inOrder(n.right, yield)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
