package domain

import "time"

// InvitePair holds the single-use links issued to one user
type InvitePair struct {
	GroupLink   string
	ChannelLink string
	ExpiresAt   time.Time
}

// MinutesLeft returns the remaining lifetime of the pair rounded up to minutes
func (p InvitePair) MinutesLeft(now time.Time) int {
	left := p.ExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Minute - 1) / time.Minute)
}
