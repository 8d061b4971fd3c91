package slist

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange           = errors.New("index out of range")
	ErrEmptyInput           = errors.New("input yields no elements")
	ErrNilBuffer            = errors.New("nil buffer")
	ErrNegativeOffset       = errors.New("negative offset")
	ErrInsufficientCapacity = errors.New("insufficient buffer capacity")
)

func outOfRange(i, length int) error {
	return fmt.Errorf("%w, idx %d, len %d", ErrOutOfRange, i, length)
}
