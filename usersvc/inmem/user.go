// Package inmem keeps users and sessions in process memory.
package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ichigozero/todogrpc/usersvc"
)

type UserRepository struct {
	mtx      sync.RWMutex
	nextID   uint64
	users    map[string]usersvc.User
	sessions map[uint64]usersvc.Session
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[string]usersvc.User),
		sessions: make(map[uint64]usersvc.Session),
	}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (usersvc.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return usersvc.User{}, fmt.Errorf("%w: %s", usersvc.ErrUserNotFound, username)
	}
	return u, nil
}

func (r *UserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.users[username]
	return ok, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.emailTaken(email), nil
}

func (r *UserRepository) Create(_ context.Context, u usersvc.User) (usersvc.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.users[u.Username]; ok || r.emailTaken(u.Email) {
		return usersvc.User{}, usersvc.ErrAccountExists
	}

	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.users[u.Username] = u

	return u, nil
}

func (r *UserRepository) UpsertSession(_ context.Context, s usersvc.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[s.UserID] = s
	return nil
}

// Session returns the stored session of a user.
func (r *UserRepository) Session(userID uint64) (usersvc.Session, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[userID]
	return s, ok
}

func (r *UserRepository) emailTaken(email string) bool {
	for _, u := range r.users {
		if u.Email == email {
			return true
		}
	}
	return false
}
