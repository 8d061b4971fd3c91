// Package slist implements a generic singly-linked list with indexed
// access, positional insertion/removal and O(1) push at both ends.
//
// Lists are not safe for concurrent use. Callers that share a List
// across goroutines must provide their own synchronization.
package slist

import "fmt"

// Node is a single element of a List. The node after the list's last
// node is always nil.
type Node[T comparable] struct {
	value T
	next  *Node[T]
}

// Value returns the value stored in n.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue overwrites the value stored in n in place.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next returns the next node, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a singly-linked list. The zero value is an empty list ready
// to use.
type List[T comparable] struct {
	head, tail *Node[T]
	length     int
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

// From returns a new list containing items in order.
func From[T comparable](items ...T) *List[T] {
	l := New[T]()
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.length
}

// Head returns the first node, or nil if l is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// nodeAt returns the node at index i. Bounds must have been checked
// by the caller.
func (l *List[T]) nodeAt(i int) *Node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// NodeAt returns the node at index i. The returned node can be read
// or mutated in place via SetValue. Returns ErrOutOfRange if i is
// outside [0, Len()).
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if i < 0 || i >= l.length {
		return nil, outOfRange(i, l.length)
	}
	return l.nodeAt(i), nil
}

// Get returns the value at index i.
func (l *List[T]) Get(i int) (T, error) {
	n, err := l.NodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Set overwrites the value at index i.
func (l *List[T]) Set(i int, v T) error {
	n, err := l.NodeAt(i)
	if err != nil {
		return err
	}
	n.value = v
	return nil
}

// PushFront prepends v. O(1).
func (l *List[T]) PushFront(v T) {
	n := &Node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// PushBack appends v. O(1).
func (l *List[T]) PushBack(v T) {
	n := &Node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// Insert places v at index i, shifting the element previously at i
// (if any) after it. i may be Len(), which appends. Returns
// ErrOutOfRange if i is outside [0, Len()].
func (l *List[T]) Insert(i int, v T) error {
	n := &Node[T]{value: v}
	return l.splice(i, seg[T]{head: n, tail: n, n: 1})
}

// InsertSlice inserts all of items at index i in order. Returns
// ErrEmptyInput if items is empty, before any allocation, and
// ErrOutOfRange if i is outside [0, Len()]. On error the list is
// unchanged.
func (l *List[T]) InsertSlice(i int, items []T) error {
	if len(items) == 0 {
		return ErrEmptyInput
	}
	if i < 0 || i > l.length {
		return outOfRange(i, l.length)
	}
	return l.splice(i, segOf(items))
}

// splice links s into the chain at index i. The seg is consumed: its
// nodes become part of l.
func (l *List[T]) splice(i int, s seg[T]) error {
	if i < 0 || i > l.length {
		return outOfRange(i, l.length)
	}
	switch {
	case l.length == 0:
		l.head = s.head
		l.tail = s.tail
	case i == 0:
		s.tail.next = l.head
		l.head = s.head
	case i == l.length:
		l.tail.next = s.head
		l.tail = s.tail
	default:
		prev := l.nodeAt(i - 1)
		s.tail.next = prev.next
		prev.next = s.head
	}
	l.length += s.n
	return nil
}

// Remove unlinks the first node whose value equals v. Returns false
// if no node matches.
func (l *List[T]) Remove(v T) bool {
	var prev *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.unlink(prev, n)
			return true
		}
		prev = n
	}
	return false
}

// RemoveAt unlinks the node at index i. Returns ErrOutOfRange if i is
// outside [0, Len()).
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= l.length {
		return outOfRange(i, l.length)
	}
	var prev *Node[T]
	n := l.head
	if i > 0 {
		prev = l.nodeAt(i - 1)
		n = prev.next
	}
	l.unlink(prev, n)
	return nil
}

// unlink removes n from the chain. prev is the node before n, nil if
// n is the head. Tail is compared by node identity, two distinct
// nodes may hold equal values.
func (l *List[T]) unlink(prev, n *Node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.length--
}

// Contains reports whether any element of l equals v.
func (l *List[T]) Contains(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

// CopyTo copies all elements into dst in order, starting at off.
func (l *List[T]) CopyTo(dst []T, off int) error {
	if dst == nil {
		return ErrNilBuffer
	}
	if off < 0 {
		return fmt.Errorf("%w, offset %d", ErrNegativeOffset, off)
	}
	if len(dst)-off < l.length {
		return fmt.Errorf("%w, need %d, have %d", ErrInsufficientCapacity, l.length, len(dst)-off)
	}
	for n := l.head; n != nil; n = n.next {
		dst[off] = n.value
		off++
	}
	return nil
}

// Clear drops all elements. Node memory is released by the GC once
// the head reference is gone; tail is an observational pointer and is
// simply reset.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Close releases the list. Safe to call multiple times. The list
// remains usable as an empty list afterwards.
func (l *List[T]) Close() {
	l.Clear()
}

// Clone returns a new list holding the same values in the same order,
// backed by entirely new nodes.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}
	return out
}

// Transform returns a new list produced by applying f to every
// element of l in order. l is not modified.
func Transform[T, U comparable](l *List[T], f func(T) U) *List[U] {
	out := New[U]()
	for n := l.Head(); n != nil; n = n.Next() {
		out.PushBack(f(n.Value()))
	}
	return out
}
