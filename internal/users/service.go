package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-builder-backend/internal/shared/telemetry"
)

const (
	defaultMinPasswordLen = 6
	defaultBcryptCost     = 12
)

// Service handles registration and login. No session is issued on login: the
// client keeps the returned user id and presents it back on later requests.
type Service struct {
	Repo           Repo
	MinPasswordLen int
	BcryptCost     int
}

func NewService(repo Repo, minPasswordLen, bcryptCost int) *Service {
	if minPasswordLen <= 0 {
		minPasswordLen = defaultMinPasswordLen
	}
	if bcryptCost <= 0 {
		bcryptCost = defaultBcryptCost
	}
	return &Service{
		Repo:           repo,
		MinPasswordLen: minPasswordLen,
		BcryptCost:     bcryptCost,
	}
}

// Register validates the input, hashes the password and persists one new user.
// The checks run in the order the client expects: length, duplicate email,
// confirmation mismatch.
func (s *Service) Register(ctx context.Context, email, password, confirm string) (User, error) {
	if len(password) < s.MinPasswordLen {
		return User{}, ErrPasswordTooShort
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrDuplicateUser
	} else if err != ErrNotFound {
		return User{}, err
	}

	if password != confirm {
		return User{}, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	telemetry.Info("user.registered", map[string]any{"user_id": user.ID})
	return user, nil
}

// Login returns the stored user record when email and password match. The
// record includes the password hash; handlers pass it through to the client
// unchanged, which is a known weakness of the existing contract.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}
