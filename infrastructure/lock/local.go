package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localEntry struct {
	token     string
	expiresAt time.Time
}

// LocalLocker mantém as leases em memória; serve para uma única instância da API
type LocalLocker struct {
	mu      sync.Mutex
	entries map[string]localEntry
	now     func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		entries: make(map[string]localEntry),
		now:     time.Now,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (Lease, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if entry, exists := l.entries[key]; exists && now.Before(entry.expiresAt) {
		return nil, false, nil
	}

	token := uuid.NewString()
	l.entries[key] = localEntry{token: token, expiresAt: now.Add(ttl)}

	return &localLease{locker: l, key: key, token: token}, true, nil
}

func (l *LocalLocker) release(key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// só remove se a lease ainda for nossa
	if entry, exists := l.entries[key]; exists && entry.token == token {
		delete(l.entries, key)
	}
}

func (l *LocalLocker) refresh(key, token string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, exists := l.entries[key]
	if !exists || entry.token != token || !now.Before(entry.expiresAt) {
		return ErrLeaseLost
	}

	entry.expiresAt = now.Add(ttl)
	l.entries[key] = entry
	return nil
}

type localLease struct {
	locker *LocalLocker
	key    string
	token  string
}

func (l *localLease) Key() string {
	return l.key
}

func (l *localLease) Refresh(_ context.Context, ttl time.Duration) error {
	return l.locker.refresh(l.key, l.token, ttl)
}

func (l *localLease) Release(_ context.Context) error {
	l.locker.release(l.key, l.token)
	return nil
}
