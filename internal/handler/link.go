package handler

import (
	"errors"
	"fmt"
	"time"

	"invitegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLink handles /link command
func (h *Handler) handleLink(c tele.Context) error {
	userID := c.Sender().ID

	pair, err := h.invites.IssueLinks(userID)
	if err != nil {
		if errors.Is(err, service.ErrLinkAlreadyUsed) {
			return c.Send(msgLinkAlreadyUsed)
		}

		var inviteErr *service.InviteError
		if errors.As(err, &inviteErr) {
			h.logger.Error("Failed to issue invite links",
				zap.Int64("user_id", userID),
				zap.String("step", inviteErr.Step),
				zap.Bool("revoked", inviteErr.Revoked),
				zap.Error(inviteErr.Err),
			)
			return c.Send(msgLinkFailed)
		}

		h.logger.Error("Failed to issue invite links", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	text := fmt.Sprintf(msgLinks, pair.GroupLink, pair.ChannelLink, pair.MinutesLeft(time.Now()))
	return c.Send(text, &tele.SendOptions{DisableWebPagePreview: true})
}
