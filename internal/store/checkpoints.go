package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkpoint is one immutable score snapshot in the history log.
type Checkpoint struct {
	ID        string    `json:"id"`
	PFI       float64   `json:"pfi"`
	CreatedAt time.Time `json:"createdAt"`
}

// Trend summarizes the checkpoint history oldest to newest.
type Trend struct {
	Count  int     `json:"count"`
	First  float64 `json:"first"`
	Latest float64 `json:"latest"`
	Best   float64 `json:"best"`
	Worst  float64 `json:"worst"`
	Delta  float64 `json:"delta"`
}

// AppendCheckpoint records a score snapshot for the user and returns its id.
func (s *Store) AppendCheckpoint(userID string, pfi float64, createdAt time.Time) (string, error) {
	id := uuid.NewString()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		"INSERT INTO checkpoints (id, user_id, pfi, created_at) VALUES (?, ?, ?, ?)",
		id, userID, pfi, createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to append checkpoint: %w", err)
	}

	s.logger.Debug("checkpoint appended",
		zap.String("op", "store.AppendCheckpoint"),
		zap.String("id", id),
		zap.Float64("pfi", pfi),
	)
	return id, nil
}

// ListCheckpoints returns the user's checkpoints ordered oldest to newest.
func (s *Store) ListCheckpoints(userID string) ([]Checkpoint, error) {
	rows, err := s.db.Query(
		"SELECT id, pfi, created_at FROM checkpoints WHERE user_id = ? ORDER BY seq ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoints: %w", err)
	}
	defer rows.Close()

	var checkpoints []Checkpoint
	for rows.Next() {
		var cp Checkpoint
		var createdAt string
		if err := rows.Scan(&cp.ID, &cp.PFI, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint: %w", err)
		}
		cp.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse checkpoint timestamp %q: %w", createdAt, err)
		}
		checkpoints = append(checkpoints, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checkpoints: %w", err)
	}
	return checkpoints, nil
}

// DeleteLastCheckpoint removes the most recently appended checkpoint for the
// user. Deleting from an empty history is a no-op.
func (s *Store) DeleteLastCheckpoint(userID string) error {
	var seq int64
	err := s.db.QueryRow(
		"SELECT seq FROM checkpoints WHERE user_id = ? ORDER BY seq DESC LIMIT 1",
		userID,
	).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find last checkpoint: %w", err)
	}

	if _, err := s.db.Exec("DELETE FROM checkpoints WHERE seq = ?", seq); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}

// CheckpointTrend computes summary statistics over the user's history.
func (s *Store) CheckpointTrend(userID string) (Trend, error) {
	checkpoints, err := s.ListCheckpoints(userID)
	if err != nil {
		return Trend{}, err
	}

	trend := Trend{Count: len(checkpoints)}
	if trend.Count == 0 {
		return trend, nil
	}

	trend.First = checkpoints[0].PFI
	trend.Latest = checkpoints[len(checkpoints)-1].PFI
	trend.Best = trend.First
	trend.Worst = trend.First
	for _, cp := range checkpoints {
		if cp.PFI > trend.Best {
			trend.Best = cp.PFI
		}
		if cp.PFI < trend.Worst {
			trend.Worst = cp.PFI
		}
	}
	trend.Delta = trend.Latest - trend.First
	return trend, nil
}
