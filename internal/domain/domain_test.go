package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvitePair_MinutesLeft(t *testing.T) {
	now := time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		expected  int
	}{
		{
			name:      "full lifetime",
			expiresAt: now.Add(30 * time.Minute),
			expected:  30,
		},
		{
			name:      "partial minute rounds up",
			expiresAt: now.Add(90 * time.Second),
			expected:  2,
		},
		{
			name:      "just issued",
			expiresAt: now.Add(30*time.Minute - time.Millisecond),
			expected:  30,
		},
		{
			name:      "expired",
			expiresAt: now.Add(-time.Minute),
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := InvitePair{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, pair.MinutesLeft(now))
		})
	}
}

func TestBroadcastReport_Add(t *testing.T) {
	report := &BroadcastReport{Total: 4}

	report.Add(DeliveryOutcome{UserID: 1, Status: DeliveryDelivered})
	report.Add(DeliveryOutcome{UserID: 2, Status: DeliveryBlocked, Err: errors.New("blocked")})
	report.Add(DeliveryOutcome{UserID: 3, Status: DeliveryFailed, Err: errors.New("boom")})
	report.Add(DeliveryOutcome{UserID: 4, Status: DeliveryDelivered})

	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 2, report.Failed)
	assert.Len(t, report.Outcomes, 4)
	assert.Equal(t, 1, report.Count(DeliveryBlocked))
	assert.Equal(t, 0, report.Count(DeliveryCancelled))
}
