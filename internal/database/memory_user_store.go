package database

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/scalemyorg/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// MemoryUserStore is an in-process domain.UserRepository used with the
// memory session backend and in tests. Passwords are bcrypt hashed.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	cost    int
}

// NewMemoryUserStore creates an empty store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
		cost:    bcrypt.DefaultCost,
	}
}

// CreateUser stores a new user with a hashed password.
func (m *MemoryUserStore) CreateUser(_ context.Context, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, NewDBError(ErrInvalidInput, "email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return nil, NewDBError(err, "hash password")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[email]; ok {
		return nil, domain.ErrUserAlreadyExists
	}
	u := &domain.User{
		ID:           "user:" + uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	m.byEmail[email] = u
	m.byID[u.ID] = u
	return withoutHash(u), nil
}

// FindUserByEmail returns (nil, nil) when no user matches.
func (m *MemoryUserStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return withoutHash(u), nil
}

// FindUserByID returns domain.ErrNotFound for unknown IDs.
func (m *MemoryUserStore) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return withoutHash(u), nil
}

// VerifyPassword compares password with the stored hash.
func (m *MemoryUserStore) VerifyPassword(_ context.Context, email, password string) (*domain.User, error) {
	m.mu.RLock()
	u, ok := m.byEmail[domain.NormalizeEmail(email)]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return withoutHash(u), nil
}

func withoutHash(u *domain.User) *domain.User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}

var _ domain.UserRepository = (*MemoryUserStore)(nil)
