package repository

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"
)

// DBなしで動かすとき用（STORE=memory）
type userMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]model.User
}

func NewUserMemoryRepository() domainrepo.UserRepository {
	return &userMemoryRepository{byEmail: make(map[string]model.User)}
}

func (r *userMemoryRepository) Create(ctx context.Context, user *model.User) error {
	key := normalizeEmail(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return domainrepo.ErrDuplicateEmail
	}
	r.byEmail[key] = *user
	return nil
}

func (r *userMemoryRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domainrepo.ErrUserNotFound
	}
	return &u, nil
}

func (r *userMemoryRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domainrepo.ErrUserNotFound
}

func (r *userMemoryRepository) Update(ctx context.Context, user *model.User) error {
	key := normalizeEmail(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; !ok {
		return domainrepo.ErrUserNotFound
	}
	r.byEmail[key] = *user
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
