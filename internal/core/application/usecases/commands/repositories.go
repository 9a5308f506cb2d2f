// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"trippy/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookingUoW manages transactions that read the catalog and write orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pkg, err := uow.CatalogRepository().GetPackage(ctx, id)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	BookingUoW interface {
		TxManager
		CatalogRepoFactory
		OrderRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}
)
