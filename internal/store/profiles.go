package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

// SaveProfile stores the household profile for the user, replacing any
// previous snapshot (last-write-wins).
func (s *Store) SaveProfile(userID string, h profile.Household) error {
	data, err := json.Marshal(h.Normalize())
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (user_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile for the user. The boolean reports
// whether a profile existed.
func (s *Store) LoadProfile(userID string) (profile.Household, bool, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM profiles WHERE user_id = ?", userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Household{}, false, nil
	}
	if err != nil {
		return profile.Household{}, false, fmt.Errorf("failed to load profile: %w", err)
	}

	var h profile.Household
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		return profile.Household{}, false, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return h.Normalize(), true, nil
}
