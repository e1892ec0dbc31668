package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage. Create is the
// uniqueness authority: it must reject a duplicate email atomically even
// when the advisory EmailExists check raced with another insert.
type Repository interface {
	Create(ctx context.Context, lead *Lead) (string, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*Lead, error)
	Ping(ctx context.Context) error
}

// InMemoryRepository keeps leads in memory, indexed by normalized email.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*Lead
	ordered []*Lead
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail: make(map[string]*Lead),
	}
}

// Create inserts the lead, enforcing email uniqueness under the lock.
func (r *InMemoryRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[lead.Email]; exists {
		return "", ErrDuplicateEmail
	}

	stored := *lead
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	r.byEmail[stored.Email] = &stored
	r.ordered = append(r.ordered, &stored)
	return stored.ID, nil
}

// EmailExists reports whether a lead with the given email is stored.
func (r *InMemoryRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

// List returns all leads, newest first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, len(r.ordered))
	for i := len(r.ordered) - 1; i >= 0; i-- {
		copied := *r.ordered[i]
		out = append(out, &copied)
	}
	return out, nil
}

// Ping always succeeds for the in-memory store.
func (r *InMemoryRepository) Ping(ctx context.Context) error {
	return nil
}
