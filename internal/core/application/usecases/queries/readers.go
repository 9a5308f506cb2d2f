// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"

	"trippy/internal/core/domain/model/user"
	"trippy/internal/core/domain/services"
)

type (
	// OrderReader is the read side of the order repository used by queries.
	OrderReader interface {
		services.OrderFinder
		services.OrderedPackageLister
	}

	// UserReader looks users up by name.
	UserReader interface {
		Get(ctx context.Context, name string) (*user.User, error)
	}

	// TokenIssuer turns an authenticated username into a bearer token.
	TokenIssuer interface {
		Issue(username string) (string, error)
	}
)
