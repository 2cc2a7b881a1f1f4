package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-builder-backend/internal/shared/telemetry"
)

// Service contains business logic for resume documents. Now is swappable for
// tests; it defaults to time.Now so save stamps use local time, matching what
// the client displays.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create inserts a default-valued resume for ownerID and returns it. The
// owner id is recorded as claimed; it is not checked against the user store.
func (s *Service) Create(ctx context.Context, ownerID string) (Resume, error) {
	resume := Resume{
		ID:    uuid.NewString(),
		Owner: ownerID,
		Base:  DefaultBase(Stamp(s.now())),
		Data:  DefaultData(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	telemetry.Info("resume.created", map[string]any{"resume_id": resume.ID, "owner": ownerID})
	return resume, nil
}

// ListByOwner returns all resumes whose owner field equals ownerID.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	list, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Resume{}
	}
	return list, nil
}

// Save replaces both sub-documents of the resume matching ownerID and
// resumeID, stamping the save time into resumeBase.date. The write is a
// single atomic update. When no document matches, Save still returns nil:
// the client contract reports success either way, so the miss is only logged.
func (s *Service) Save(ctx context.Context, ownerID, resumeID string, base ResumeBase, data ResumeData) error {
	base.Date = Stamp(s.now())
	matched, err := s.Repo.Replace(ctx, ownerID, resumeID, base, data)
	if err != nil {
		return err
	}
	if !matched {
		telemetry.Info("resume.save.no_match", map[string]any{"resume_id": resumeID, "owner": ownerID})
	}
	return nil
}

// Delete removes the resume matching ownerID and resumeID. Deleting a missing
// or non-owned resume is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, ownerID, resumeID string) error {
	matched, err := s.Repo.Delete(ctx, ownerID, resumeID)
	if err != nil {
		return err
	}
	if !matched {
		telemetry.Info("resume.delete.no_match", map[string]any{"resume_id": resumeID, "owner": ownerID})
	}
	return nil
}
