package usecase

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/wichananm65/user-api/internal/domain/entity"
	"github.com/wichananm65/user-api/internal/domain/repository"
)

// UserService implements UserUsecase with repository dependency.
type UserService struct {
	repo      repository.UserRepository
	validator *Validator
	log       *zap.Logger
}

var _ UserUsecase = (*UserService)(nil)

func NewUserService(repo repository.UserRepository, validator *Validator, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validator, log: log}
}

// List filters by birth date. Either bound may be nil; a start after the
// end is rejected before the repository is consulted.
func (s *UserService) List(ctx context.Context, startDate, endDate *civil.Date) ([]entity.User, error) {
	switch {
	case startDate == nil && endDate == nil:
		return s.repo.FindAll(ctx)
	case endDate == nil:
		return s.repo.FindByBirthDateAfter(ctx, *startDate)
	case startDate == nil:
		return s.repo.FindByBirthDateBefore(ctx, *endDate)
	case startDate.After(*endDate):
		return nil, fmt.Errorf("%w: invalid date range %s..%s", ErrInvalidParameter, startDate, endDate)
	default:
		return s.repo.FindByBirthDateBetween(ctx, *startDate, *endDate)
	}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (entity.User, error) {
	user, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	if !ok {
		return entity.User{}, notFound(id)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input UserInput) (int64, error) {
	if violations := s.validator.Validate(input); len(violations) > 0 {
		return 0, &ValidationError{Violations: violations}
	}

	id, err := s.repo.Create(ctx, input.toUser(0))
	if err != nil {
		return 0, err
	}
	s.log.Info("user created", zap.Int64("id", id))
	return id, nil
}

// Update replaces every field of the stored record. An unknown id fails
// with ErrNotFound rather than creating a record at that id.
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (entity.User, error) {
	if violations := s.validator.Validate(input); len(violations) > 0 {
		return entity.User{}, &ValidationError{Violations: violations}
	}

	updated, ok, err := s.repo.UpdateFunc(ctx, id, func(u *entity.User) error {
		*u = input.toUser(id)
		return nil
	})
	if err != nil {
		return entity.User{}, err
	}
	if !ok {
		return entity.User{}, notFound(id)
	}
	s.log.Info("user updated", zap.Int64("id", id))
	return updated, nil
}

// PartialUpdate applies the present fields of input. Every present field is
// validated first; a single violation leaves the stored record untouched.
func (s *UserService) PartialUpdate(ctx context.Context, id int64, input UserInput) (entity.User, error) {
	updated, ok, err := s.repo.UpdateFunc(ctx, id, func(u *entity.User) error {
		var violations []Violation
		for _, rule := range partialUpdateRules {
			if !rule.present(input) {
				continue
			}
			fieldViolations := s.validator.ValidateField(rule.field, input)
			if len(fieldViolations) > 0 {
				violations = append(violations, fieldViolations...)
				continue
			}
			rule.apply(u, input)
		}
		if len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}
		return nil
	})
	if err != nil {
		return entity.User{}, err
	}
	if !ok {
		return entity.User{}, notFound(id)
	}
	s.log.Info("user partially updated", zap.Int64("id", id))
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Int64("id", id))
	return nil
}

type fieldRule struct {
	field   Field
	present func(UserInput) bool
	apply   func(*entity.User, UserInput)
}

var partialUpdateRules = []fieldRule{
	{
		field:   FieldEmail,
		present: func(in UserInput) bool { return in.Email != nil },
		apply:   func(u *entity.User, in UserInput) { u.Email = *in.Email },
	},
	{
		field:   FieldFirstName,
		present: func(in UserInput) bool { return in.FirstName != nil },
		apply:   func(u *entity.User, in UserInput) { u.FirstName = *in.FirstName },
	},
	{
		field:   FieldLastName,
		present: func(in UserInput) bool { return in.LastName != nil },
		apply:   func(u *entity.User, in UserInput) { u.LastName = *in.LastName },
	},
	{
		field:   FieldBirthDate,
		present: func(in UserInput) bool { return in.BirthDate != nil },
		apply:   func(u *entity.User, in UserInput) { u.BirthDate = *in.BirthDate },
	},
	{
		field:   FieldAddress,
		present: func(in UserInput) bool { return in.Address != nil },
		apply: func(u *entity.User, in UserInput) {
			v := *in.Address
			u.Address = &v
		},
	},
	{
		field:   FieldPhoneNumber,
		present: func(in UserInput) bool { return in.PhoneNumber != nil },
		apply: func(u *entity.User, in UserInput) {
			v := *in.PhoneNumber
			u.PhoneNumber = &v
		},
	},
}
