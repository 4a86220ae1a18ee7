package handler

import (
	"context"
	"sync"

	"invitegate/internal/domain"
	"invitegate/internal/middleware"
	"invitegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Services groups the business services used by the handlers
type Services struct {
	Users      *service.UserService
	Invites    *service.InviteService
	Admins     *service.AdminService
	Stats      *service.StatsService
	Broadcasts *service.BroadcastService
}

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	users      *service.UserService
	invites    *service.InviteService
	admins     *service.AdminService
	stats      *service.StatsService
	broadcasts *service.BroadcastService
	logger     *zap.Logger

	// ctx bounds long-running work such as broadcasts
	ctx context.Context

	// User states (in-memory state machine)
	states   map[int64]domain.SessionState
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(ctx context.Context, bot *tele.Bot, services Services, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		users:      services.Users,
		invites:    services.Invites,
		admins:     services.Admins,
		stats:      services.Stats,
		broadcasts: services.Broadcasts,
		logger:     logger,
		ctx:        ctx,
		states:     make(map[int64]domain.SessionState),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/link", h.handleLink)

	// Admin console
	admin := h.bot.Group()
	admin.Use(middleware.AdminOnly(h.admins, h.logger))
	admin.Handle("/admin", h.handleAdminPanel)
	admin.Handle(&btnStats, h.handleStats)
	admin.Handle(&btnBroadcast, h.handleBroadcastButton)
	admin.Handle(&btnAddAdmin, h.handleAddAdminButton)

	// Generic callback handler for raw callback data
	admin.Handle(tele.OnCallback, h.handleCallback)

	// Text messages, admin check happens inside
	h.bot.Handle(tele.OnText, h.handleText)
}

// Commands returns the command menu published to Telegram
func Commands() []tele.Command {
	return []tele.Command{
		{Text: "start", Description: "بدء الاستخدام"},
		{Text: "link", Description: "الحصول على روابط الانضمام"},
		{Text: "admin", Description: "لوحة التحكم"},
	}
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) domain.SessionState {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return domain.StateIdle
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state domain.SessionState) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	if state == domain.StateIdle {
		delete(h.states, userID)
		return
	}
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, domain.StateIdle)
}

// Inline keyboard buttons
var (
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 الإحصائيات",
	}
	btnBroadcast = tele.Btn{
		Unique: "broadcast",
		Text:   "📢 إرسال رسالة",
	}
	btnAddAdmin = tele.Btn{
		Unique: "add_admin",
		Text:   "➕ إضافة أدمن",
	}
)

// adminPanelMarkup returns the admin console keyboard
func adminPanelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStats),
		menu.Row(btnBroadcast),
		menu.Row(btnAddAdmin),
	)
	return menu
}
