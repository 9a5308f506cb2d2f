package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one booking operation to a single transaction.
// Callers Begin, defer Rollback and Commit on success.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback is a no-op error after Commit, so it is safe to defer.
	Rollback(ctx context.Context) error

	CatalogRepository() CatalogRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
}
