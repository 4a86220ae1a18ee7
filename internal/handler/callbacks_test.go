package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "panel action",
			input:    "stats",
			expected: btnStats.Unique,
		},
		{
			name:     "trailing newline from old keyboards",
			input:    "broadcast\n",
			expected: btnBroadcast.Unique,
		},
		{
			name:     "padded with spaces and tabs",
			input:    " \tadd_admin  ",
			expected: btnAddAdmin.Unique,
		},
		{
			name:     "control bytes inside",
			input:    "add\x00_admin\x1f",
			expected: btnAddAdmin.Unique,
		},
		{
			name:     "zero width joiner is dropped",
			input:    "sta\u200dts",
			expected: btnStats.Unique,
		},
		{
			name:     "arabic text kept",
			input:    "إحصائيات\r\n",
			expected: "إحصائيات",
		},
		{
			name:     "only noise",
			input:    "\x00\n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
