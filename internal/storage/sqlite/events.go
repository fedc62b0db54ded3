package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopping-busket/shoppinglist/internal/events"
)

// ListEvents retrieves the recorded events of a list, oldest first.
func (s *SQLiteStore) ListEvents(ctx context.Context, listID string) ([]events.LogEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT event, entry_id, state, iso_date FROM list_events WHERE listid = ? ORDER BY id",
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	evts := []events.LogEvent{}
	for rows.Next() {
		var e events.LogEvent
		var state string
		if err := rows.Scan(&e.Event, &e.EntryID, &state, &e.ISODate); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(state), &e.State); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event state: %w", err)
		}
		evts = append(evts, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return evts, nil
}

// insertEvents validates and appends evts to the log of listID.
func insertEvents(ctx context.Context, tx *sql.Tx, listID string, evts []events.LogEvent) error {
	for _, e := range evts {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid event for entry %s: %w", e.EntryID, err)
		}

		state, err := json.Marshal(e.State)
		if err != nil {
			return fmt.Errorf("failed to marshal event state: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO list_events (listid, event, entry_id, state, iso_date) VALUES (?, ?, ?, ?, ?)",
			listID, string(e.Event), e.EntryID, string(state), e.ISODate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}
	return nil
}
