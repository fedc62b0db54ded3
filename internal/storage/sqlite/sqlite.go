// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	sqlitedriver "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/shopping-busket/shoppinglist/internal/events"
	"github.com/shopping-busket/shoppinglist/internal/models"
	"github.com/shopping-busket/shoppinglist/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas are per connection, so set them in the DSN for every pooled one.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateList persists a new list with its entries.
func (s *SQLiteStore) CreateList(ctx context.Context, list *models.ShoppingListRecord) error {
	// Generate IDs if not set
	if list.ListID == "" {
		list.ListID = uuid.New().String()
	}
	if list.CreatedAt == 0 {
		list.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO lists (listid, name, description, owner, created_at) VALUES (?, ?, ?, ?, ?)",
		list.ListID, list.Name, list.Description, list.Owner, list.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("list %s: %w", list.ListID, storage.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read list id: %w", err)
	}

	if err := insertEntries(ctx, tx, list); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	list.ID = id
	return nil
}

// GetList retrieves a list by its list id, including both item sequences.
func (s *SQLiteStore) GetList(ctx context.Context, listID string) (*models.ShoppingListRecord, error) {
	list := &models.ShoppingListRecord{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, listid, name, description, owner, created_at FROM lists WHERE listid = ?",
		listID,
	).Scan(&list.ID, &list.ListID, &list.Name, &list.Description, &list.Owner, &list.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("list %s: %w", listID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	if err := s.loadEntries(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

// ListListsByOwner retrieves all lists belonging to owner.
func (s *SQLiteStore) ListListsByOwner(ctx context.Context, owner string) ([]*models.ShoppingListRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, listid, name, description, owner, created_at FROM lists WHERE owner = ? ORDER BY id",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists by owner: %w", err)
	}
	defer rows.Close()

	var lists []*models.ShoppingListRecord
	for rows.Next() {
		list := &models.ShoppingListRecord{}
		if err := rows.Scan(&list.ID, &list.ListID, &list.Name, &list.Description, &list.Owner, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	for _, list := range lists {
		if err := s.loadEntries(ctx, list); err != nil {
			return nil, err
		}
	}

	return lists, nil
}

// UpdateList replaces the header and both item sequences of a stored list
// and records evts in the same transaction.
func (s *SQLiteStore) UpdateList(ctx context.Context, list *models.ShoppingListRecord, evts ...events.LogEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE lists SET name = ?, description = ?, owner = ? WHERE listid = ?",
		list.Name, list.Description, list.Owner, list.ListID,
	)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("list %s: %w", list.ListID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM list_entries WHERE listid = ?", list.ListID); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	if err := insertEntries(ctx, tx, list); err != nil {
		return err
	}
	if err := insertEvents(ctx, tx, list.ListID, evts); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteList removes a list with its entries and events.
func (s *SQLiteStore) DeleteList(ctx context.Context, listID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"list_events", "list_entries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE listid = ?", listID); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM lists WHERE listid = ?", listID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("list %s: %w", listID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// loadEntries fills both item sequences of list from list_entries.
func (s *SQLiteStore) loadEntries(ctx context.Context, list *models.ShoppingListRecord) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id, name, checked FROM list_entries WHERE listid = ? ORDER BY checked, position",
		list.ListID,
	)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	list.Entries = []models.ItemRecord{}
	list.CheckedEntries = []models.ItemRecord{}
	for rows.Next() {
		var item models.ItemRecord
		var checked bool
		if err := rows.Scan(&item.ID, &item.Name, &checked); err != nil {
			return fmt.Errorf("failed to scan entry: %w", err)
		}
		if checked {
			list.CheckedEntries = append(list.CheckedEntries, item)
		} else {
			list.Entries = append(list.Entries, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate entries: %w", err)
	}

	return nil
}

// insertEntries writes both item sequences of list, keeping their order.
func insertEntries(ctx context.Context, tx *sql.Tx, list *models.ShoppingListRecord) error {
	insert := func(items []models.ItemRecord, checked bool) error {
		for pos, item := range items {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO list_entries (listid, item_id, name, checked, position) VALUES (?, ?, ?, ?, ?)",
				list.ListID, item.ID, item.Name, checked, pos,
			)
			if err != nil {
				return fmt.Errorf("failed to insert entry %s: %w", item.ID, err)
			}
		}
		return nil
	}

	if err := insert(list.Entries, false); err != nil {
		return err
	}
	return insert(list.CheckedEntries, true)
}

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY conflict.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
