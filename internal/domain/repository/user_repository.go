package repository

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/wichananm65/user-api/internal/domain/entity"
)

// UserRepository defines persistence behavior for the User entity.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByID reports ok == false when no record holds the id.
	FindByID(ctx context.Context, id int64) (user entity.User, ok bool, err error)
	// FindByBirthDateBetween matches start <= birthDate <= end.
	FindByBirthDateBetween(ctx context.Context, start, end civil.Date) ([]entity.User, error)
	// FindByBirthDateAfter matches birthDate >= date.
	FindByBirthDateAfter(ctx context.Context, date civil.Date) ([]entity.User, error)
	// FindByBirthDateBefore matches birthDate <= date.
	FindByBirthDateBefore(ctx context.Context, date civil.Date) ([]entity.User, error)
	Create(ctx context.Context, user entity.User) (int64, error)
	// Update overwrites the record stored at user.ID. Existence is the
	// caller's responsibility.
	Update(ctx context.Context, user entity.User) (entity.User, error)
	// UpdateFunc applies fn to a copy of the record at id and stores the
	// result only if fn succeeds. The lookup and the write happen under one
	// lock. ok is false when the id is absent; fn is not called then.
	UpdateFunc(ctx context.Context, id int64, fn func(*entity.User) error) (user entity.User, ok bool, err error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
