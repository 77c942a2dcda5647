package session

//go:generate mockgen -destination=repositorymock/repository_mock.go -package=repositorymock . Repository

import (
	"context"
	"sort"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"github.com/uber/lsmux/src/lsmux/model"
)

const _activeSessionsGauge = "active_sessions"

// Repository is the registry of live sessions, keyed by folder.
type Repository interface {
	Get(ctx context.Context, key entity.FolderKey) (*entity.Session, error)
	Set(ctx context.Context, s *entity.Session) error
	Delete(ctx context.Context, key entity.FolderKey) error
	Keys(ctx context.Context) ([]entity.FolderKey, error)
	List(ctx context.Context) ([]*entity.Session, error)
	SessionCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[entity.FolderKey]*model.Session
	stats    tally.Scope
}

// New returns a repository to a key-value Session data store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[entity.FolderKey]*model.Session),
		stats:    stats,
	}
}

// Get returns the Session associated with the given folder.
func (r *repository) Get(ctx context.Context, key entity.FolderKey) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.memstore[key]
	if !ok {
		return nil, &errors.FolderNotFoundError{Folder: string(key)}
	}
	return mapper.ModelToSession(s)
}

// Set registers the Session under its folder, replacing any previous entry.
func (r *repository) Set(ctx context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		return errors.New("can't save nil session")
	}
	r.memstore[s.Key()] = mapper.SessionToModel(s)
	r.stats.Gauge(_activeSessionsGauge).Update(float64(len(r.memstore)))
	return nil
}

// Delete removes the Session associated with the given folder. Deleting an absent folder is a no-op.
func (r *repository) Delete(ctx context.Context, key entity.FolderKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, key)
	r.stats.Gauge(_activeSessionsGauge).Update(float64(len(r.memstore)))
	return nil
}

// Keys returns the folders with a registered session, sorted.
func (r *repository) Keys(ctx context.Context) ([]entity.FolderKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]entity.FolderKey, 0, len(r.memstore))
	for k := range r.memstore {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

// List returns every registered session, sorted by folder.
func (r *repository) List(ctx context.Context) ([]*entity.Session, error) {
	keys, err := r.Keys(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	found := make([]*entity.Session, 0, len(keys))
	for _, k := range keys {
		m, ok := r.memstore[k]
		if !ok {
			continue
		}
		s, err := mapper.ModelToSession(m)
		if err == nil {
			found = append(found, s)
		}
	}
	return found, nil
}

// SessionCount returns the total count of active sessions.
func (r *repository) SessionCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}
