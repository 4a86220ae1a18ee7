package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"invitegate/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var (
	// ErrInvalidAdminTarget is returned when the input is neither an id nor a @handle
	ErrInvalidAdminTarget = errors.New("admin target must be a numeric id or @username")
	// ErrAdminNotFound is returned when a @handle is not a member of the group
	ErrAdminNotFound = errors.New("user not found in group")
)

// AdminService handles the admin capability
type AdminService struct {
	adminRepo repository.AdminRepository
	members   MemberLookup
	groupID   int64
	logger    *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repository.AdminRepository, members MemberLookup, groupID int64, logger *zap.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		members:   members,
		groupID:   groupID,
		logger:    logger,
	}
}

// IsAdmin checks if user holds the admin capability
func (s *AdminService) IsAdmin(userID int64) (bool, error) {
	return s.adminRepo.IsAdmin(userID)
}

// AddAdmin grants the admin capability
func (s *AdminService) AddAdmin(userID int64) error {
	if userID <= 0 {
		return ErrInvalidAdminTarget
	}
	return s.adminRepo.AddAdmin(userID)
}

// SeedSuperAdmin makes sure the configured operator is an admin
func (s *AdminService) SeedSuperAdmin(userID int64) error {
	if err := s.AddAdmin(userID); err != nil {
		return fmt.Errorf("seed super admin: %w", err)
	}
	s.logger.Info("Super admin seeded", zap.Int64("user_id", userID))
	return nil
}

// ResolveTarget turns admin input into a user id.
// Decimal digits of any script are taken as an id, @handle is looked up among group members.
func (s *AdminService) ResolveTarget(text string) (int64, error) {
	text = strings.TrimSpace(text)

	if digits, ok := asciiDigits(text); ok {
		id, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || id == 0 {
			return 0, ErrInvalidAdminTarget
		}
		return id, nil
	}

	if !strings.HasPrefix(text, "@") {
		return 0, ErrInvalidAdminTarget
	}

	handle := strings.TrimPrefix(text, "@")
	if handle == "" {
		return 0, ErrInvalidAdminTarget
	}

	member, err := s.members.ChatMemberOf(tele.ChatID(s.groupID), username(handle))
	if err != nil {
		s.logger.Warn("Failed to resolve admin handle",
			zap.String("handle", handle),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: %v", ErrAdminNotFound, err)
	}
	if member == nil || member.User == nil || member.Role == tele.Left || member.Role == tele.Kicked {
		return 0, ErrAdminNotFound
	}

	return member.User.ID, nil
}

// asciiDigits rewrites a string of Unicode decimal digits (e.g. Arabic-Indic) to ASCII
func asciiDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	var b strings.Builder
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return "", false
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String(), true
}

// digitValue relies on Nd digits being laid out in contiguous runs starting at zero
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}

	for _, rng := range unicode.Nd.R16 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r >= lo && r <= hi && rng.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r >= lo && r <= hi && rng.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
