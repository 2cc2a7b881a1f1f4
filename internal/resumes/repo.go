package resumes

import "context"

// Repo defines persistence operations for resume documents. Replace and
// Delete filter on both owner and id; the filter is the only authorization
// gate in the system. Both report whether any document matched instead of
// failing, because the client contract treats a miss as success.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	Replace(ctx context.Context, ownerID, resumeID string, base ResumeBase, data ResumeData) (bool, error)
	Delete(ctx context.Context, ownerID, resumeID string) (bool, error)
}
