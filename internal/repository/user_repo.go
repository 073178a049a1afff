package repository

import (
	"sync"

	"github.com/iliyamo/travel-route-planner/internal/model"
)

// UserRepo is the user directory: an insertion-ordered collection of user
// records plus a monotonically increasing id counter.  Ids start at 1 and
// are never reused, even after deletion.  Lookups are linear scans over
// insertion order, so the first match wins when names collide.
type UserRepo struct {
	mu     sync.RWMutex
	users  []*model.User
	nextID uint64
}

func NewUserRepo() *UserRepo { return &UserRepo{nextID: 1} }

// NextID hands out the next unused id and advances the counter.
func (r *UserRepo) NextID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

// Add stores the user.  It always succeeds; the directory performs no
// duplicate-name check.
func (r *UserRepo) Add(u *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
}

// ByID returns the user with the given id.
func (r *UserRepo) ByID(id uint64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// ByName returns the first user with the given display name.
func (r *UserRepo) ByName(name string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateName renames the user in place.
func (r *UserRepo) UpdateName(id uint64, name string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.Name = name
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// SetAdmin promotes the user to the Admin role.
func (r *UserRepo) SetAdmin(id uint64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u.SetAdmin(), nil
		}
	}
	return nil, ErrUserNotFound
}

// Delete removes the user.  It does not cascade to session tokens or
// routes referencing the id.
func (r *UserRepo) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

// CreateGuest allocates a fresh id, stores a guest user with an empty
// profile and returns it.  It never fails.
func (r *UserRepo) CreateGuest() *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := model.NewGuest(r.nextID)
	r.nextID++
	r.users = append(r.users, u)
	return u
}

// Count reports how many users are currently stored.
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
