package models

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound matches any ItemNotFoundError via errors.Is.
	ErrItemNotFound = errors.New("unable to find item")
	// ErrIndexOutOfRange is returned when a move targets a position outside entries.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDuplicateItemID is returned when two records carry the same item id.
	ErrDuplicateItemID = errors.New("duplicate item id")
)

// ItemNotFoundError is returned when no item with SearchID exists in the list.
type ItemNotFoundError struct {
	SearchID string
}

func (e *ItemNotFoundError) Error() string {
	if e.SearchID == "" {
		return ErrItemNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrItemNotFound, e.SearchID)
}

// Is reports whether target is ErrItemNotFound.
func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}

func itemNotFound(id string) error {
	return &ItemNotFoundError{SearchID: id}
}
