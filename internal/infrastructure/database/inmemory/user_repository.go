package inmemory

import (
	"context"
	"sort"
	"sync"

	"cloud.google.com/go/civil"

	"github.com/wichananm65/user-api/internal/domain/entity"
	"github.com/wichananm65/user-api/internal/domain/repository"
)

// UserRepository is an in-memory implementation of UserRepository.
// A single RWMutex guards the map and the id counter.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository builds a repository holding copies of seed. New ids
// continue from the highest seeded id.
func NewUserRepository(seed ...entity.User) *UserRepository {
	repo := &UserRepository{
		nextID: 1,
		store:  make(map[int64]entity.User, len(seed)),
	}

	var maxID int64
	for _, user := range seed {
		repo.store[user.ID] = user.Clone()
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return r.filter(func(entity.User) bool { return true }), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (entity.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return entity.User{}, false, nil
	}
	return user.Clone(), true, nil
}

func (r *UserRepository) FindByBirthDateBetween(ctx context.Context, start, end civil.Date) ([]entity.User, error) {
	return r.filter(func(u entity.User) bool { return u.BornBetween(start, end) }), nil
}

func (r *UserRepository) FindByBirthDateAfter(ctx context.Context, date civil.Date) ([]entity.User, error) {
	return r.filter(func(u entity.User) bool { return !u.BirthDate.Before(date) }), nil
}

func (r *UserRepository) FindByBirthDateBefore(ctx context.Context, date civil.Date) ([]entity.User, error) {
	return r.filter(func(u entity.User) bool { return !u.BirthDate.After(date) }), nil
}

func (r *UserRepository) Create(ctx context.Context, user entity.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userCopy := user.Clone()
	userCopy.ID = r.nextID
	r.nextID++
	r.store[userCopy.ID] = userCopy

	return userCopy.ID, nil
}

func (r *UserRepository) Update(ctx context.Context, user entity.User) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[user.ID] = user.Clone()
	r.bumpNextID(user.ID)
	return user.Clone(), nil
}

func (r *UserRepository) UpdateFunc(ctx context.Context, id int64, fn func(*entity.User) error) (entity.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.store[id]
	if !ok {
		return entity.User{}, false, nil
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return entity.User{}, true, err
	}
	working.ID = id
	r.store[id] = working.Clone()
	return working, true, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, id)
	return nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[id]
	return ok, nil
}

// filter returns copies of matching records ordered by id.
func (r *UserRepository) filter(match func(entity.User) bool) []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.User, 0, len(r.store))
	for _, user := range r.store {
		if match(user) {
			result = append(result, user.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// bumpNextID keeps the counter ahead of ids written through Update so a
// later Create never collides with them.
func (r *UserRepository) bumpNextID(id int64) {
	if id >= r.nextID {
		r.nextID = id + 1
	}
}
