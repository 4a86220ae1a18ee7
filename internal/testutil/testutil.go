package testutil

import (
	"invitegate/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, usedLink bool) *domain.User {
	return &domain.User{
		UserID:   userID,
		UsedLink: usedLink,
	}
}
