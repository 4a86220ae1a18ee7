package handler

import (
	"fmt"
	"time"

	"invitegate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.users.Register(userID); err != nil {
		h.logger.Error("Failed to register user", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	// /start also abandons any pending admin input
	h.ResetState(userID)
	return c.Send(h.welcomeText())
}

// welcomeText states the configured link lifetime
func (h *Handler) welcomeText() string {
	now := time.Now()
	pair := domain.InvitePair{ExpiresAt: now.Add(h.invites.TTL())}
	return fmt.Sprintf(msgWelcome, pair.MinutesLeft(now))
}
