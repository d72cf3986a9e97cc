package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ichigozero/todogrpc/store"
	"github.com/ichigozero/todogrpc/usersvc"
)

type userModel struct {
	ID           uint64    `gorm:"primaryKey"`
	Username     string    `gorm:"size:50;not null;uniqueIndex"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type sessionModel struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       uint64    `gorm:"not null;uniqueIndex"`
	SessionToken string    `gorm:"size:255;not null"`
	JWTToken     string    `gorm:"type:text;not null"`
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (sessionModel) TableName() string { return "user_sessions" }

// Migrate creates the users and user_sessions tables.
func Migrate(s *store.Store) error {
	return s.Migrate(&userModel{}, &sessionModel{})
}

type userRow struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
}

type idRow struct {
	ID uint64
}

type userRepository struct {
	db store.Querier
}

func NewUserRepository(db store.Querier) usersvc.UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (usersvc.User, error) {
	var rows []userRow
	err := r.db.Query(ctx, &rows,
		"SELECT id, username, email, password_hash FROM users WHERE username = ?",
		username,
	)
	if err != nil {
		return usersvc.User{}, err
	}
	if len(rows) == 0 {
		return usersvc.User{}, fmt.Errorf("%w: %s", usersvc.ErrUserNotFound, username)
	}

	row := rows[0]
	return usersvc.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "SELECT id FROM users WHERE username = ?", username)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "SELECT id FROM users WHERE email = ?", email)
}

func (r *userRepository) exists(ctx context.Context, statement string, arg string) (bool, error) {
	var rows []idRow
	if err := r.db.Query(ctx, &rows, statement, arg); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (r *userRepository) Create(ctx context.Context, u usersvc.User) (usersvc.User, error) {
	var rows []idRow
	err := r.db.Query(ctx, &rows,
		"INSERT INTO users (username, email, password_hash, created_at, updated_at) "+
			"VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP) RETURNING id",
		u.Username, u.Email, u.PasswordHash,
	)
	if errors.Is(err, store.ErrConstraint) {
		return usersvc.User{}, fmt.Errorf("%w: %v", usersvc.ErrAccountExists, err)
	}
	if err != nil {
		return usersvc.User{}, err
	}
	if len(rows) == 0 {
		return usersvc.User{}, fmt.Errorf("%w: insert returned no row", store.ErrQuery)
	}

	u.ID = rows[0].ID
	return u, nil
}

func (r *userRepository) UpsertSession(ctx context.Context, s usersvc.Session) error {
	var rows []idRow
	return r.db.Query(ctx, &rows,
		"INSERT INTO user_sessions (user_id, session_token, jwt_token, expires_at, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP) "+
			"ON CONFLICT (user_id) DO UPDATE SET session_token = excluded.session_token, "+
			"jwt_token = excluded.jwt_token, expires_at = excluded.expires_at, updated_at = CURRENT_TIMESTAMP "+
			"RETURNING id",
		s.UserID, s.SessionToken, s.JWTToken, s.ExpiresAt.UTC(),
	)
}
