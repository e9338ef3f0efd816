package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/google/uuid"
)

// 1ユーザーセッション分の状態
type entry struct {
	mu          sync.Mutex
	cart        *model.Cart
	authPending bool
	lastSeen    time.Time
}

// プロセス内メモリのセッションストア（再起動で消える）。
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// DI
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		sessions: make(map[string]*entry),
		now:      now,
	}
}

var _ repo.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Begin(ctx context.Context) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{cart: model.NewCart(), lastSeen: s.now()}
	return id, nil
}

func (s *MemoryStore) Exists(ctx context.Context, sessionID string) bool {
	_, ok := s.get(sessionID)
	return ok
}

func (s *MemoryStore) WithCart(ctx context.Context, sessionID string, fn func(cart *model.Cart) error) error {
	e, ok := s.get(sessionID)
	if !ok {
		return repo.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = s.now()
	return fn(e.cart)
}

func (s *MemoryStore) TryBeginAuth(ctx context.Context, sessionID string) bool {
	e, ok := s.get(sessionID)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.authPending {
		return false
	}
	e.authPending = true
	e.lastSeen = s.now()
	return true
}

func (s *MemoryStore) EndAuth(ctx context.Context, sessionID string) {
	e, ok := s.get(sessionID)
	if !ok {
		return
	}

	e.mu.Lock()
	e.authPending = false
	e.mu.Unlock()
}

func (s *MemoryStore) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return repo.ErrSessionNotFound
	}

	//実行中の操作が終わってから空にする
	e.mu.Lock()
	e.cart.Clear()
	e.mu.Unlock()
	return nil
}

func (s *MemoryStore) Sweep(ctx context.Context, now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		e.mu.Lock()
		expired := !e.authPending && now.Sub(e.lastSeen) >= ttl
		e.mu.Unlock()

		if expired {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// 件数（監視・テスト用）
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) get(sessionID string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[sessionID]
	return e, ok
}
