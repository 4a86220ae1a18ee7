package repository

import (
	"invitegate/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// GetUser returns nil when the user is unknown
	GetUser(userID int64) (*domain.User, error)
	EnsureUserExists(userID int64) error
	// MarkUsed flips used_link to true and reports whether this call did it
	MarkUsed(userID int64) (bool, error)
	ListUserIDs() ([]int64, error)
	CountUsers() (int, error)
	CountUsedLinks() (int, error)
}

// AdminRepository defines admin capability operations
type AdminRepository interface {
	IsAdmin(userID int64) (bool, error)
	AddAdmin(userID int64) error
}

// Storage is the full persistence contract of the bot
type Storage interface {
	UserRepository
	AdminRepository
	Ping() error
}
