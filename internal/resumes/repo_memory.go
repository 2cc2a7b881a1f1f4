package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]Resume
	ordinal map[string]int
	seq     int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]Resume),
		ordinal: make(map[string]int),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.byID[resume.ID] = resume
	r.ordinal[resume.ID] = r.seq
	return nil
}

// ListByOwner returns the owner's resumes in creation order.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Resume{}
	for _, resume := range r.byID {
		if resume.Owner == ownerID {
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.ordinal[out[i].ID] < r.ordinal[out[j].ID]
	})
	return out, nil
}

func (r *MemoryRepo) Replace(ctx context.Context, ownerID, resumeID string, base ResumeBase, data ResumeData) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.byID[resumeID]
	if !ok || resume.Owner != ownerID {
		return false, nil
	}
	resume.Base = base
	resume.Data = data
	r.byID[resumeID] = resume
	return true, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, resumeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.byID[resumeID]
	if !ok || resume.Owner != ownerID {
		return false, nil
	}
	delete(r.byID, resumeID)
	delete(r.ordinal, resumeID)
	return true, nil
}

var _ Repo = (*MemoryRepo)(nil)
