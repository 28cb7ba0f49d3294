//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"database/sql"
	sterrors "errors"
	"fmt"
	"log/slog"
	"time"

	"msgboard/domain"
	"msgboard/errors"
)

type IUserRepository interface {
	EmailExists(email string) (bool, error)
	CreateUser(username, email, passwordHash string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	GetUserByID(id int64) (domain.User, error)
	DeleteUser(id int64) error
}

type UserRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewUserRepository(db *sql.DB, log *slog.Logger) IUserRepository {
	return &UserRepository{db: db, log: log}
}

// EmailExists reports whether a user already registered with this email.
// The check is not atomic with the following insert; the UNIQUE constraint
// on users.email is the real backstop for concurrent registrations.
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query email: %w", err)
	}
	return exists, nil
}

// CreateUser persists a user with an already-hashed password.
// Plain text passwords never reach the repository.
func (r *UserRepository) CreateUser(username, email, passwordHash string) (domain.User, error) {
	createdAt := time.Now().UTC()
	res, err := r.db.Exec(
		"INSERT INTO users (username, email, password, created_at) VALUES (?, ?, ?, ?)",
		username, email, passwordHash, createdAt.Unix(),
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("last insert id: %w", err)
	}

	return domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Unix(createdAt.Unix(), 0).UTC(),
	}, nil
}

func (r *UserRepository) GetUserByUsername(username string) (domain.User, error) {
	return r.getUser("SELECT id, username, email, password, created_at FROM users WHERE username = ?", username)
}

func (r *UserRepository) GetUserByID(id int64) (domain.User, error) {
	return r.getUser("SELECT id, username, email, password, created_at FROM users WHERE id = ?", id)
}

func (r *UserRepository) getUser(query string, arg any) (domain.User, error) {
	var (
		user      domain.User
		createdAt int64
	)
	err := r.db.QueryRow(query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if sterrors.Is(err, sql.ErrNoRows) {
			return domain.User{}, errors.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("query user: %w", err)
	}
	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	return user, nil
}

// DeleteUser removes a user; the ON DELETE CASCADE on messages.user_id
// deletes every message they authored in the same statement.
func (r *UserRepository) DeleteUser(id int64) error {
	res, err := r.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}
