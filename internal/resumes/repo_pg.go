package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PGRepo implements Repo using Postgres. The resumeBase and resumeData
// sub-documents live in JSONB columns and are replaced whole on save, which
// keeps the update atomic at the row level.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume document.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, owner, resume_base, resume_data, created_at)
VALUES ($1, $2, $3, $4, $5)`
	basePayload, err := json.Marshal(resume.Base)
	if err != nil {
		return err
	}
	dataPayload, err := json.Marshal(resume.Data)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.Owner,
		basePayload,
		dataPayload,
		time.Now().UTC(),
	)
	return err
}

// ListByOwner returns all resumes owned by ownerID, oldest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	const query = `
SELECT id, owner, resume_base, resume_data
FROM resumes
WHERE owner = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var resume Resume
		var basePayload, dataPayload []byte
		if err := rows.Scan(&resume.ID, &resume.Owner, &basePayload, &dataPayload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(basePayload, &resume.Base); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(dataPayload, &resume.Data); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Replace overwrites both sub-documents of the resume matching owner and id
// in a single statement. It reports false when nothing matched.
func (r *PGRepo) Replace(ctx context.Context, ownerID, resumeID string, base ResumeBase, data ResumeData) (bool, error) {
	const query = `
UPDATE resumes
SET resume_base = $3, resume_data = $4
WHERE owner = $1 AND id = $2`
	basePayload, err := json.Marshal(base)
	if err != nil {
		return false, err
	}
	dataPayload, err := json.Marshal(data)
	if err != nil {
		return false, err
	}
	res, err := r.DB.ExecContext(ctx, query, ownerID, resumeID, basePayload, dataPayload)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes the resume matching owner and id, reporting false when
// nothing matched.
func (r *PGRepo) Delete(ctx context.Context, ownerID, resumeID string) (bool, error) {
	const query = `
DELETE FROM resumes
WHERE owner = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, resumeID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

var _ Repo = (*PGRepo)(nil)
