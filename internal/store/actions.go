package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KatyGHub/finhealth-app/pkg/swot"
)

// ActionItem is a SWOT suggestion the user has accepted into their persistent
// action list. Items are toggled done/active and only removed by an explicit
// clear-completed operation.
type ActionItem struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Tag       string    `json:"tag"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// AcceptAction stores a blueprint as an active action item. Accepting an
// already-present key is a no-op, preserving the original item's done state.
func (s *Store) AcceptAction(userID string, bp swot.ActionBlueprint) error {
	_, err := s.db.Exec(
		`INSERT INTO action_items (user_id, key, title, detail, tag, done, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?)
		 ON CONFLICT(user_id, key) DO NOTHING`,
		userID, bp.Key, bp.Title, bp.Detail, bp.Tag, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to accept action %q: %w", bp.Key, err)
	}
	return nil
}

// ListActions returns the user's action items in acceptance order.
func (s *Store) ListActions(userID string) ([]ActionItem, error) {
	rows, err := s.db.Query(
		"SELECT key, title, detail, tag, done, created_at FROM action_items WHERE user_id = ? ORDER BY seq ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query action items: %w", err)
	}
	defer rows.Close()

	var items []ActionItem
	for rows.Next() {
		var item ActionItem
		var done int
		var createdAt string
		if err := rows.Scan(&item.Key, &item.Title, &item.Detail, &item.Tag, &done, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan action item: %w", err)
		}
		item.Done = done != 0
		item.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse action timestamp %q: %w", createdAt, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating action items: %w", err)
	}
	return items, nil
}

// ToggleAction flips an item between done and active. It returns the new done
// state, or an error if the key is unknown.
func (s *Store) ToggleAction(userID, key string) (bool, error) {
	var done int
	err := s.db.QueryRow(
		"SELECT done FROM action_items WHERE user_id = ? AND key = ?",
		userID, key,
	).Scan(&done)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("no action item with key %q", key)
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up action item: %w", err)
	}

	newDone := done == 0
	if _, err := s.db.Exec(
		"UPDATE action_items SET done = ? WHERE user_id = ? AND key = ?",
		boolToInt(newDone), userID, key,
	); err != nil {
		return false, fmt.Errorf("failed to toggle action item: %w", err)
	}
	return newDone, nil
}

// ClearCompletedActions removes every done item and returns how many were
// removed.
func (s *Store) ClearCompletedActions(userID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM action_items WHERE user_id = ? AND done = 1", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear completed actions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared actions: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
