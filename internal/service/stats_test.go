package service

import (
	"fmt"
	"testing"

	"invitegate/internal/domain"
	"invitegate/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Summary(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		totalErr      error
		used          int
		usedErr       error
		expected      domain.Stats
		expectedError bool
	}{
		{
			name:     "counts",
			total:    10,
			used:     4,
			expected: domain.Stats{TotalUsers: 10, UsedLinks: 4},
		},
		{
			name:     "empty database",
			expected: domain.Stats{},
		},
		{
			name:          "count users error",
			totalErr:      fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "count used error",
			total:         10,
			usedErr:       fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("CountUsers").Return(tt.total, tt.totalErr)
			if tt.totalErr == nil {
				mockRepo.On("CountUsedLinks").Return(tt.used, tt.usedErr)
			}

			service := NewStatsService(mockRepo, testutil.NewTestLogger())

			stats, err := service.Summary()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, stats)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
