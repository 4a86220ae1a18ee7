package sqlstore

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStore_GetUser(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedUsed  bool
		expectedError bool
	}{
		{
			name:         "user with unused link",
			userID:       123,
			mockRows:     sqlmock.NewRows([]string{"user_id", "used_link"}).AddRow(123, false),
			expectedUsed: false,
		},
		{
			name:         "user with used link",
			userID:       456,
			mockRows:     sqlmock.NewRows([]string{"user_id", "used_link"}).AddRow(456, true),
			expectedUsed: true,
		},
		{
			name:        "user not exists",
			userID:      789,
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name:          "query error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t, "sqlite")

			query := "SELECT user_id, used_link FROM users WHERE user_id = \\?"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			user, err := store.GetUser(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, user)
			} else {
				assert.NotNil(t, user)
				assert.Equal(t, tt.userID, user.UserID)
				assert.Equal(t, tt.expectedUsed, user.UsedLink)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_EnsureUserExists(t *testing.T) {
	store, mock := newMockStore(t, "sqlite")

	userID := int64(123)

	// FALSE is a SQL constant, only userID is bound
	mock.ExpectExec("INSERT INTO users \\(user_id, used_link\\) VALUES \\(\\?, FALSE\\) ON CONFLICT \\(user_id\\) DO NOTHING").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.EnsureUserExists(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkUsed(t *testing.T) {
	tests := []struct {
		name            string
		rowsAffected    int64
		mockError       error
		expectedClaimed bool
		expectedError   bool
	}{
		{
			name:            "first use",
			rowsAffected:    1,
			expectedClaimed: true,
		},
		{
			name:            "already used",
			rowsAffected:    0,
			expectedClaimed: false,
		},
		{
			name:          "exec error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t, "sqlite")

			userID := int64(123)
			exp := mock.ExpectExec("UPDATE users SET used_link = TRUE WHERE user_id = \\? AND used_link = FALSE").
				WithArgs(userID)
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			claimed, err := store.MarkUsed(userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedClaimed, claimed)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_ListUserIDs(t *testing.T) {
	store, mock := newMockStore(t, "sqlite")

	rows := sqlmock.NewRows([]string{"user_id"}).
		AddRow(1).
		AddRow(2).
		AddRow(3)

	mock.ExpectQuery("SELECT user_id FROM users ORDER BY user_id").WillReturnRows(rows)

	ids, err := store.ListUserIDs()

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListUserIDs_QueryError(t *testing.T) {
	store, mock := newMockStore(t, "sqlite")

	mock.ExpectQuery("SELECT user_id FROM users").WillReturnError(fmt.Errorf("query error"))

	ids, err := store.ListUserIDs()

	assert.Error(t, err)
	assert.Nil(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountUsers(t *testing.T) {
	store, mock := newMockStore(t, "sqlite")

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))

	count, err := store.CountUsers()

	assert.NoError(t, err)
	assert.Equal(t, 14, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountUsedLinks(t *testing.T) {
	store, mock := newMockStore(t, "sqlite")

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE used_link = TRUE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := store.CountUsedLinks()

	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
