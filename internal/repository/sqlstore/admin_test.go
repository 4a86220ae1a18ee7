package sqlstore

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStore_IsAdmin(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedAdmin bool
		expectedError bool
	}{
		{
			name:          "admin",
			userID:        123,
			mockRows:      sqlmock.NewRows([]string{"user_id"}).AddRow(123),
			expectedAdmin: true,
		},
		{
			name:          "not an admin",
			userID:        456,
			mockError:     sql.ErrNoRows,
			expectedAdmin: false,
		},
		{
			name:          "query error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t, "sqlite")

			query := "SELECT user_id FROM admins WHERE user_id = \\?"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			isAdmin, err := store.IsAdmin(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, isAdmin)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_AddAdmin(t *testing.T) {
	store, mock := newMockStore(t, "sqlite")

	userID := int64(123456)

	mock.ExpectExec("INSERT INTO admins \\(user_id\\) VALUES \\(\\?\\) ON CONFLICT \\(user_id\\) DO NOTHING").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.AddAdmin(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
