package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/cine-estrella/box-office/internal/model"
	"github.com/cine-estrella/box-office/internal/utils"
)

// UserRepo is a process-local account store guarded by a read-write mutex.
// Accounts do not survive a restart, matching the rest of the system's
// in-memory lifecycle.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]*model.User
	byID    map[uint64]*model.User
	nextID  uint64
}

// NewUserRepo returns an empty user store.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uint64]*model.User),
	}
}

// Create registers a user with a bcrypt-hashed password and returns its ID.
// The email is normalized to lower case and must be unique; duplicates fail
// with ErrEmailExists.
func (r *UserRepo) Create(name, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[email]; taken {
		return 0, ErrEmailExists
	}
	r.nextID++
	u := &model.User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[email] = u
	r.byID[u.ID] = u
	return u.ID, nil
}

// GetByEmail fetches a user by normalized email, failing with
// ErrUserNotFound.
func (r *UserRepo) GetByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}

// GetByID fetches a user by ID, failing with ErrUserNotFound.
func (r *UserRepo) GetByID(id uint64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}
