package users

import "context"

// Repo defines persistence operations for users. Email uniqueness is the
// store's invariant: Create returns ErrDuplicateUser on conflict.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
