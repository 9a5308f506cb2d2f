package userrepo

import (
	"context"
	"errors"

	"trippy/internal/adapters/out/postgres/pgerror"
	"trippy/internal/core/domain/model/user"
	"trippy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a repository bound to db, which may be a transaction.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the user. A taken name returns an errs.ObjectAlreadyExistsError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerror.IsUniqueViolation(err, "") {
			return errs.NewObjectAlreadyExistsErrorWithCause("user", dto.Name, err)
		}
		return err
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, name string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
