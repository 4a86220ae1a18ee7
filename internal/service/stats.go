package service

import (
	"invitegate/internal/domain"
	"invitegate/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles aggregate counters
type StatsService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo repository.UserRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Summary returns total registered users and how many received links
func (s *StatsService) Summary() (domain.Stats, error) {
	total, err := s.userRepo.CountUsers()
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return domain.Stats{}, err
	}

	used, err := s.userRepo.CountUsedLinks()
	if err != nil {
		s.logger.Error("Failed to count used links", zap.Error(err))
		return domain.Stats{}, err
	}

	return domain.Stats{TotalUsers: total, UsedLinks: used}, nil
}
