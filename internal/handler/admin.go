package handler

import (
	"errors"
	"fmt"

	"invitegate/internal/domain"
	"invitegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdminPanel handles /admin command, admins only
func (h *Handler) handleAdminPanel(c tele.Context) error {
	h.logger.Info("Admin panel opened", zap.Int64("user_id", c.Sender().ID))
	return c.Send(msgAdminPanel, adminPanelMarkup())
}

// handleStats shows aggregate counters
func (h *Handler) handleStats(c tele.Context) error {
	_ = c.Respond()

	stats, err := h.stats.Summary()
	if err != nil {
		return c.Send(msgGenericError)
	}

	return c.Send(fmt.Sprintf(msgStats, stats.TotalUsers, stats.UsedLinks))
}

// handleBroadcastButton switches the admin into broadcast composition
func (h *Handler) handleBroadcastButton(c tele.Context) error {
	_ = c.Respond()

	h.SetState(c.Sender().ID, domain.StateAwaitingBroadcastText)
	return c.Send(msgBroadcastPrompt)
}

// handleAddAdminButton switches the admin into add-admin mode
func (h *Handler) handleAddAdminButton(c tele.Context) error {
	_ = c.Respond()

	h.SetState(c.Sender().ID, domain.StateAwaitingAdminID)
	return c.Send(msgAddAdminPrompt)
}

// handleAddAdminInput interprets text as the id or @handle of a new admin
func (h *Handler) handleAddAdminInput(c tele.Context, userID int64, text string) error {
	h.ResetState(userID)

	newAdminID, err := h.admins.ResolveTarget(text)
	switch {
	case errors.Is(err, service.ErrInvalidAdminTarget):
		return c.Send(msgAdminInvalidInput)
	case errors.Is(err, service.ErrAdminNotFound):
		return c.Send(msgAdminNotFound)
	case err != nil:
		h.logger.Error("Failed to resolve admin target", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	if err := h.admins.AddAdmin(newAdminID); err != nil {
		h.logger.Error("Failed to add admin",
			zap.Int64("user_id", userID),
			zap.Int64("new_admin_id", newAdminID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	h.logger.Info("Admin added",
		zap.Int64("user_id", userID),
		zap.Int64("new_admin_id", newAdminID),
	)

	return c.Send(fmt.Sprintf(msgAdminAdded, newAdminID))
}

// handleBroadcastInput sends text to every registered user
func (h *Handler) handleBroadcastInput(c tele.Context, userID int64, text string) error {
	h.ResetState(userID)

	report, err := h.broadcasts.Broadcast(h.ctx, userID, text)
	if err != nil {
		h.logger.Error("Failed to broadcast", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	return c.Send(fmt.Sprintf(msgBroadcastDone, report.Delivered))
}
