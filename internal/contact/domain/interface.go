package domain

import "context"

// ContactStore is implemented by every storage backend. List returns
// requests ordered by creation time, newest first, capped at limit.
type ContactStore interface {
	Insert(ctx context.Context, req *ContactRequest) error
	List(ctx context.Context, limit int) ([]ContactRequest, error)
}
