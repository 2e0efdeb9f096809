package domain

import "context"

// CredentialStore is implemented by every storage backend. GetByEmail
// returns (nil, nil) when no credential exists for the address.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
