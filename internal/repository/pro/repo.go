package pro

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

var ErrProNotFound = errors.New("professional not found")

// Repository holds the in-memory professional directory. Newly onboarded
// profiles are inserted at the head, matching the most-recent-first ordering
// used everywhere else in the store.
type Repository struct {
	mu   sync.RWMutex
	pros []*model.ProProfile
}

// NewRepository creates a directory pre-populated with the given profiles.
func NewRepository(seed []model.ProProfile) *Repository {
	r := &Repository{pros: make([]*model.ProProfile, 0, len(seed))}
	for i := range seed {
		p := seed[i]
		r.pros = append(r.pros, &p)
	}
	return r
}

// Create inserts a new profile at the head of the directory.
func (r *Repository) Create(ctx context.Context, p *model.ProProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pros = append([]*model.ProProfile{p}, r.pros...)

	return nil
}

// GetByID returns the profile with the given id.
func (r *Repository) GetByID(ctx context.Context, id string) (model.ProProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pros {
		if p.ID == id {
			return *p, nil
		}
	}

	return model.ProProfile{}, ErrProNotFound
}

// GetAll returns the whole directory in insertion order.
func (r *Repository) GetAll(ctx context.Context) ([]model.ProProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ProProfile, 0, len(r.pros))
	for _, p := range r.pros {
		out = append(out, *p)
	}

	return out, nil
}

// FilterByCategory returns all profiles in the given category.
func (r *Repository) FilterByCategory(ctx context.Context, category model.Category) ([]model.ProProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.ProProfile
	for _, p := range r.pros {
		if p.Category == category {
			out = append(out, *p)
		}
	}

	return out, nil
}

// FilterByText returns profiles whose name, category or description contains
// the query, case-insensitively. This is the deterministic fallback used when
// the classifier has no confident match.
func (r *Repository) FilterByText(ctx context.Context, query string) ([]model.ProProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	var out []model.ProProfile
	for _, p := range r.pros {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, *p)
		}
	}

	return out, nil
}
