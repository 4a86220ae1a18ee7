package testutil

import (
	"sort"
	"sync"

	"invitegate/internal/domain"
)

// MemoryStore is an in-memory repository.Storage for scenario tests
type MemoryStore struct {
	mu     sync.Mutex
	users  map[int64]bool
	admins map[int64]bool
}

// NewMemoryStore creates an empty store with the given admins
func NewMemoryStore(admins ...int64) *MemoryStore {
	s := &MemoryStore{
		users:  make(map[int64]bool),
		admins: make(map[int64]bool),
	}
	for _, id := range admins {
		s.admins[id] = true
	}
	return s
}

func (s *MemoryStore) GetUser(userID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	used, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &domain.User{UserID: userID, UsedLink: used}, nil
}

func (s *MemoryStore) EnsureUserExists(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		s.users[userID] = false
	}
	return nil
}

func (s *MemoryStore) MarkUsed(userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	used, ok := s.users[userID]
	if !ok || used {
		return false, nil
	}
	s.users[userID] = true
	return true, nil
}

func (s *MemoryStore) ListUserIDs() ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *MemoryStore) CountUsers() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

func (s *MemoryStore) CountUsedLinks() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, used := range s.users {
		if used {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) IsAdmin(userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admins[userID], nil
}

func (s *MemoryStore) AddAdmin(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[userID] = true
	return nil
}

func (s *MemoryStore) Ping() error {
	return nil
}
