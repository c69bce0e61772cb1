package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gospors/gospors/internal/domain"
)

// MemoryUsers is an in-process member directory for development and tests.
type MemoryUsers struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*domain.User
	bySubject map[string]uuid.UUID
	now       func() time.Time
}

var _ Users = (*MemoryUsers)(nil)

// NewMemoryUsers returns an empty in-memory directory.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{
		byID:      make(map[uuid.UUID]*domain.User),
		bySubject: make(map[string]uuid.UUID),
		now:       time.Now,
	}
}

func subjectKey(provider, subject string) string {
	return provider + "\x00" + subject
}

// Upsert implements Users.
func (m *MemoryUsers) Upsert(_ context.Context, id domain.Identity) (*domain.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	key := subjectKey(id.Provider, id.Subject)

	if existing, ok := m.bySubject[key]; ok {
		u := m.byID[existing]
		u.Email = id.Email
		u.FullName = id.FullName
		u.AvatarURL = id.AvatarURL
		u.UpdatedAt = now
		out := *u
		return &out, nil
	}

	u := &domain.User{
		ID:        uuid.New(),
		Provider:  id.Provider,
		Subject:   id.Subject,
		Email:     id.Email,
		FullName:  id.FullName,
		AvatarURL: id.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.byID[u.ID] = u
	m.bySubject[key] = u.ID

	out := *u
	return &out, nil
}

// GetByID implements Users.
func (m *MemoryUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// ListRecent implements Users.
func (m *MemoryUsers) ListRecent(_ context.Context, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = 20
	}

	m.mu.RLock()
	users := make([]*domain.User, 0, len(m.byID))
	for _, u := range m.byID {
		out := *u
		users = append(users, &out)
	}
	m.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID.String() < users[j].ID.String()
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// Health implements Users.
func (m *MemoryUsers) Health(context.Context) error { return nil }
