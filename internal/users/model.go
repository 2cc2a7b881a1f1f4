package users

import "time"

// User is a registered account. PasswordHash is serialized as "password" so
// the login response matches what the web client already consumes; callers
// must not forward it anywhere else.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}
