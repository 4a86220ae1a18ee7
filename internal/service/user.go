package service

import (
	"invitegate/internal/repository"
)

// UserService handles registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates the user record if it doesn't exist
func (s *UserService) Register(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
