package domain

// User represents a registered bot user
type User struct {
	UserID   int64 `db:"user_id"`
	UsedLink bool  `db:"used_link"`
}

// Admin represents a user holding the admin capability
type Admin struct {
	UserID int64 `db:"user_id"`
}

// Stats holds aggregate counters shown in the admin panel
type Stats struct {
	TotalUsers int
	UsedLinks  int
}

// SessionState represents what the next free-text message of a user means
type SessionState string

const (
	StateIdle                  SessionState = "idle"
	StateAwaitingAdminID       SessionState = "awaiting_admin_id"
	StateAwaitingBroadcastText SessionState = "awaiting_broadcast_text"
)
