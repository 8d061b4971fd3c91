package slist

import "golang.org/x/exp/constraints"

// Min returns the smallest element of l. ok is false if l is empty.
func Min[T constraints.Ordered](l *List[T]) (_ T, ok bool) {
	n := l.Head()
	if n == nil {
		return
	}
	m := n.Value()
	for n = n.Next(); n != nil; n = n.Next() {
		if v := n.Value(); v < m {
			m = v
		}
	}
	return m, true
}

// Max returns the largest element of l. ok is false if l is empty.
func Max[T constraints.Ordered](l *List[T]) (_ T, ok bool) {
	n := l.Head()
	if n == nil {
		return
	}
	m := n.Value()
	for n = n.Next(); n != nil; n = n.Next() {
		if v := n.Value(); v > m {
			m = v
		}
	}
	return m, true
}
