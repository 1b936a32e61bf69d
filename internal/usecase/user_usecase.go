package usecase

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/wichananm65/user-api/internal/domain/entity"
)

// UserUsecase exposes application-level operations for User.
type UserUsecase interface {
	List(ctx context.Context, startDate, endDate *civil.Date) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (entity.User, error)
	Create(ctx context.Context, input UserInput) (int64, error)
	Update(ctx context.Context, id int64, input UserInput) (entity.User, error)
	PartialUpdate(ctx context.Context, id int64, input UserInput) (entity.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserInput carries the writable fields of a user. A nil field is absent:
// Create and Update require email, firstName, lastName and birthDate,
// PartialUpdate touches only the fields that are set.
type UserInput struct {
	Email       *string     `json:"email"`
	FirstName   *string     `json:"firstName"`
	LastName    *string     `json:"lastName"`
	BirthDate   *civil.Date `json:"birthDate"`
	Address     *string     `json:"address"`
	PhoneNumber *string     `json:"phoneNumber"`
}

// toUser builds an entity from a fully validated input.
func (in UserInput) toUser(id int64) entity.User {
	user := entity.User{
		ID:          id,
		Email:       deref(in.Email),
		FirstName:   deref(in.FirstName),
		LastName:    deref(in.LastName),
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
	}
	if in.BirthDate != nil {
		user.BirthDate = *in.BirthDate
	}
	return user.Clone()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
