package slist

import "iter"

// Cursor is a forward-only traversal handle. A cursor cannot be
// restarted, take a new one for a fresh traversal. Structurally
// mutating the list while a cursor is live leaves the cursor at an
// undefined position.
type Cursor[T comparable] struct {
	node *Node[T]
	val  T
}

// Cursor returns a handle positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{node: l.head}
}

// Next advances to the next element. Returns false once the chain is
// exhausted.
func (c *Cursor[T]) Next() bool {
	if c.node == nil {
		return false
	}
	c.val = c.node.value
	c.node = c.node.next
	return true
}

// Value returns the element Next advanced to. Only valid after Next
// returned true.
func (c *Cursor[T]) Value() T {
	return c.val
}

// All returns an iterator over the elements of l in chain order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
