package memory

import (
	"context"
	"errors"
	"sync"

	"pet-health-tracker/internal/domain/activities"
)

type activityRepo struct {
	mu    sync.RWMutex
	items []activities.Activity
	ids   map[int64]struct{}
}

func NewActivityRepo() activities.Repository {
	return &activityRepo{
		ids: make(map[int64]struct{}),
	}
}

func (r *activityRepo) Append(ctx context.Context, a activities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == 0 {
		return errors.New("activity id required")
	}
	if _, exists := r.ids[a.ID]; exists {
		return errors.New("activity already exists")
	}
	r.ids[a.ID] = struct{}{}
	r.items = append(r.items, a)
	return nil
}

func (r *activityRepo) List(ctx context.Context) ([]activities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activities.Activity, len(r.items))
	copy(out, r.items)
	return out, nil
}
