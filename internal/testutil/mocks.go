package testutil

import (
	"invitegate/internal/domain"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUsed(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListUserIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) CountUsers() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountUsedLinks() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockAdminRepository is a mock for AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) AddAdmin(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockInviteLinker is a mock for the invite link part of the Telegram API
type MockInviteLinker struct {
	mock.Mock
}

func (m *MockInviteLinker) CreateInviteLink(chat tele.Recipient, link *tele.ChatInviteLink) (*tele.ChatInviteLink, error) {
	args := m.Called(chat, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.ChatInviteLink), args.Error(1)
}

func (m *MockInviteLinker) RevokeInviteLink(chat tele.Recipient, link string) (*tele.ChatInviteLink, error) {
	args := m.Called(chat, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.ChatInviteLink), args.Error(1)
}

// MockMemberLookup is a mock for chat member resolution
type MockMemberLookup struct {
	mock.Mock
}

func (m *MockMemberLookup) ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error) {
	args := m.Called(chat, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.ChatMember), args.Error(1)
}

// MockMessageSender is a mock for outbound messages, send options are ignored
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	args := m.Called(to, what)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.Message), args.Error(1)
}
