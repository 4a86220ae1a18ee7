package handler

import (
	"strings"

	"invitegate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore unknown commands (starting with /)
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	isAdmin, err := h.admins.IsAdmin(userID)
	if err != nil {
		h.logger.Error("Failed to check admin", zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}
	if !isAdmin {
		return nil
	}

	switch h.GetState(userID) {
	case domain.StateAwaitingAdminID:
		return h.handleAddAdminInput(c, userID, text)
	case domain.StateAwaitingBroadcastText:
		return h.handleBroadcastInput(c, userID, text)
	default:
		return nil
	}
}
