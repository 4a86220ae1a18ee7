package service

import (
	"errors"
	"fmt"
	"time"

	"invitegate/internal/domain"
	"invitegate/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrLinkAlreadyUsed is returned when the user already received invite links
var ErrLinkAlreadyUsed = errors.New("invite links already issued")

// InviteError reports which step of link issuance failed.
// The user's used_link flag is never set when an InviteError is returned.
type InviteError struct {
	Step string // "group", "channel" or "mark"
	Err  error
	// Revoked is false when a link created before the failure could not be revoked
	Revoked bool
}

func (e *InviteError) Error() string {
	return fmt.Sprintf("invite %s: %v", e.Step, e.Err)
}

func (e *InviteError) Unwrap() error {
	return e.Err
}

// InviteService issues one-time invite links
type InviteService struct {
	userRepo  repository.UserRepository
	linker    InviteLinker
	groupID   int64
	channelID int64
	ttl       time.Duration
	logger    *zap.Logger

	now func() time.Time
}

// NewInviteService creates a new invite service
func NewInviteService(
	userRepo repository.UserRepository,
	linker InviteLinker,
	groupID, channelID int64,
	ttl time.Duration,
	logger *zap.Logger,
) *InviteService {
	return &InviteService{
		userRepo:  userRepo,
		linker:    linker,
		groupID:   groupID,
		channelID: channelID,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// TTL returns the lifetime given to issued links
func (s *InviteService) TTL() time.Duration {
	return s.ttl
}

// HasUsedLink reports whether the user already received links
func (s *InviteService) HasUsedLink(userID int64) (bool, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return false, err
	}
	return user != nil && user.UsedLink, nil
}

// IssueLinks creates a single-use group link and channel link for the user
// and marks the user as served. A user is served at most once.
func (s *InviteService) IssueLinks(userID int64) (*domain.InvitePair, error) {
	// users who skipped /start still need a row, otherwise MarkUsed has nothing to flip
	if err := s.userRepo.EnsureUserExists(userID); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	used, err := s.HasUsedLink(userID)
	if err != nil {
		return nil, fmt.Errorf("check used link: %w", err)
	}
	if used {
		return nil, ErrLinkAlreadyUsed
	}

	expiresAt := s.now().Add(s.ttl)

	group, err := s.createLink(s.groupID, userID, expiresAt)
	if err != nil {
		return nil, &InviteError{Step: "group", Err: err, Revoked: true}
	}

	channel, err := s.createLink(s.channelID, userID, expiresAt)
	if err != nil {
		revoked := s.revoke(userID, s.groupID, group)
		return nil, &InviteError{Step: "channel", Err: err, Revoked: revoked}
	}

	claimed, err := s.userRepo.MarkUsed(userID)
	if err != nil || !claimed {
		revoked := s.revoke(userID, s.groupID, group)
		revoked = s.revoke(userID, s.channelID, channel) && revoked
		if err != nil {
			return nil, &InviteError{Step: "mark", Err: err, Revoked: revoked}
		}
		// a concurrent request served this user first
		return nil, ErrLinkAlreadyUsed
	}

	s.logger.Info("Invite links issued",
		zap.Int64("user_id", userID),
		zap.Time("expires_at", expiresAt),
	)

	return &domain.InvitePair{
		GroupLink:   group,
		ChannelLink: channel,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *InviteService) createLink(chatID, userID int64, expiresAt time.Time) (string, error) {
	link, err := s.linker.CreateInviteLink(tele.ChatID(chatID), &tele.ChatInviteLink{
		Name:           fmt.Sprintf("user %d", userID),
		ExpireUnixtime: expiresAt.Unix(),
		MemberLimit:    1,
	})
	if err != nil {
		return "", err
	}
	if link == nil || link.InviteLink == "" {
		return "", errors.New("empty invite link returned")
	}
	return link.InviteLink, nil
}

func (s *InviteService) revoke(userID, chatID int64, link string) bool {
	if _, err := s.linker.RevokeInviteLink(tele.ChatID(chatID), link); err != nil {
		s.logger.Error("Failed to revoke unused invite link",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return false
	}
	s.logger.Info("Revoked unused invite link",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
	)
	return true
}
