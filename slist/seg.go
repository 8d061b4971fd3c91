package slist

import "iter"

// seg is a pre-built sub-chain waiting to be spliced into a List.
// Building one pays the per-node allocation cost up front so a bulk
// insert links into the main chain with a single splice.
type seg[T comparable] struct {
	head, tail *Node[T]
	n          int
}

func (s *seg[T]) append(v T) {
	n := &Node[T]{value: v}
	if s.tail == nil {
		s.head = n
	} else {
		s.tail.next = n
	}
	s.tail = n
	s.n++
}

func segOf[T comparable](items []T) seg[T] {
	var s seg[T]
	for _, v := range items {
		s.append(v)
	}
	return s
}

// InsertSeq inserts every value yielded by items at index i in order.
// The sequence is fully consumed before the list is touched. Returns
// ErrEmptyInput if it yields nothing and ErrOutOfRange if i is
// outside [0, Len()]. On error the list is unchanged.
func (l *List[T]) InsertSeq(i int, items iter.Seq[T]) error {
	var s seg[T]
	for v := range items {
		s.append(v)
	}
	if s.n == 0 {
		return ErrEmptyInput
	}
	return l.splice(i, s)
}
