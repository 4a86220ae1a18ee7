package middleware

import (
	"invitegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly creates middleware that lets only admins reach the handler.
// Button presses from anyone else are acknowledged and dropped silently.
func AdminOnly(adminService *service.AdminService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			isAdmin, err := adminService.IsAdmin(sender.ID)
			if err != nil {
				logger.Error("Failed to check admin in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return acknowledge(c)
			}

			if !isAdmin {
				logger.Debug("Rejected non-admin",
					zap.Int64("user_id", sender.ID),
					zap.String("text", c.Text()),
				)
				return acknowledge(c)
			}

			return next(c)
		}
	}
}

// acknowledge clears the loading state of a pressed button
func acknowledge(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond()
	}
	return nil
}
