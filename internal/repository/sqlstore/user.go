package sqlstore

import (
	"database/sql"
	"errors"

	"invitegate/internal/domain"
)

// GetUser returns the user row or nil if the user never registered
func (s *Store) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	err := s.db.Get(&u, s.q(`SELECT user_id, used_link FROM users WHERE user_id = ?`), userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// EnsureUserExists creates user if not exists
func (s *Store) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, used_link)
		VALUES (?, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := s.db.Exec(s.q(query), userID)
	return err
}

// MarkUsed flips used_link for a user that has not used it yet.
// It returns false when the flag was already set or the user is unknown.
func (s *Store) MarkUsed(userID int64) (bool, error) {
	query := `
		UPDATE users
		SET used_link = TRUE
		WHERE user_id = ? AND used_link = FALSE
	`
	res, err := s.db.Exec(s.q(query), userID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ListUserIDs returns ids of all registered users
func (s *Store) ListUserIDs() ([]int64, error) {
	var ids []int64
	if err := s.db.Select(&ids, s.q(`SELECT user_id FROM users ORDER BY user_id`)); err != nil {
		return nil, err
	}
	return ids, nil
}

// CountUsers returns the number of registered users
func (s *Store) CountUsers() (int, error) {
	var count int
	err := s.db.Get(&count, s.q(`SELECT COUNT(*) FROM users`))
	return count, err
}

// CountUsedLinks returns the number of users who received invite links
func (s *Store) CountUsedLinks() (int, error) {
	var count int
	err := s.db.Get(&count, s.q(`SELECT COUNT(*) FROM users WHERE used_link = TRUE`))
	return count, err
}
