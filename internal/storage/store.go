// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopping-busket/shoppinglist/internal/events"
	"github.com/shopping-busket/shoppinglist/internal/models"
)

// ErrNotFound is returned (wrapped) when a list does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned (wrapped) when a list id is already taken.
var ErrAlreadyExists = errors.New("already exists")

// Store defines the interface for shopping list storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateList persists a new list.
	// list.ID is populated by the store; list.ListID is generated if empty; a taken ListID yields ErrAlreadyExists.
	CreateList(ctx context.Context, list *models.ShoppingListRecord) error

	// GetList retrieves a list with both item sequences by its list id.
	GetList(ctx context.Context, listID string) (*models.ShoppingListRecord, error)

	// ListListsByOwner retrieves all lists of an owner, oldest first.
	ListListsByOwner(ctx context.Context, owner string) ([]*models.ShoppingListRecord, error)

	// UpdateList replaces the stored list and appends evts in one transaction.
	UpdateList(ctx context.Context, list *models.ShoppingListRecord, evts ...events.LogEvent) error

	// DeleteList removes a list together with its items and events.
	DeleteList(ctx context.Context, listID string) error

	// ListEvents returns the events of a list in the order they were recorded.
	ListEvents(ctx context.Context, listID string) ([]events.LogEvent, error)

	// Close releases any resources held by the store.
	Close() error
}
