package sqlstore

import (
	"database/sql"
	"errors"

	"invitegate/internal/domain"
)

// IsAdmin checks if user holds the admin capability
func (s *Store) IsAdmin(userID int64) (bool, error) {
	var admin domain.Admin
	err := s.db.Get(&admin, s.q(`SELECT user_id FROM admins WHERE user_id = ?`), userID)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return admin.UserID == userID, nil
}

// AddAdmin grants the admin capability, adding an existing admin is a no-op
func (s *Store) AddAdmin(userID int64) error {
	query := `
		INSERT INTO admins (user_id)
		VALUES (?)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := s.db.Exec(s.q(query), userID)
	return err
}
