package repositories

import (
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"

	"msgboard/errors"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_CreateUser_And_Lookup(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewUserRepository(db, slog.Default())

	created, err := repository.CreateUser("alice", "alice@example.com", "$2a$10$fakehash")
	req.NoError(err)
	req.NotZero(created.ID)
	req.Equal("alice", created.Username)
	req.False(created.CreatedAt.IsZero())

	byUsername, err := repository.GetUserByUsername("alice")
	req.NoError(err)
	req.Equal(created, byUsername)

	byID, err := repository.GetUserByID(created.ID)
	req.NoError(err)
	req.Equal(created, byID)
}

func Test_Lookup_Unknown_User(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewUserRepository(db, slog.Default())

	_, err := repository.GetUserByUsername("nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)

	_, err = repository.GetUserByID(42)
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_EmailExists(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewUserRepository(db, slog.Default())

	exists, err := repository.EmailExists("alice@example.com")
	req.NoError(err)
	req.False(exists)

	_, err = repository.CreateUser("alice", "alice@example.com", "$2a$10$fakehash")
	req.NoError(err)

	exists, err = repository.EmailExists("alice@example.com")
	req.NoError(err)
	req.True(exists)
}

func Test_CreateUser_Duplicate_Email_Constraint(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewUserRepository(db, slog.Default())

	_, err := repository.CreateUser("alice", "alice@example.com", "$2a$10$fakehash")
	req.NoError(err)

	// The UNIQUE constraint is the backstop when two registrations race
	// past the EmailExists check.
	_, err = repository.CreateUser("bob", "alice@example.com", "$2a$10$otherhash")
	req.Error(err)
}

func Test_DeleteUser_Cascades_To_Messages(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	users := NewUserRepository(db, slog.Default())
	messages := NewMessageRepository(db, slog.Default())

	alice, err := users.CreateUser("alice", "alice@example.com", "$2a$10$fakehash")
	req.NoError(err)
	bob, err := users.CreateUser("bob", "bob@example.com", "$2a$10$fakehash")
	req.NoError(err)

	parent, err := messages.CreateMessage(alice.ID, "hello from alice", nil)
	req.NoError(err)
	_, err = messages.CreateMessage(bob.ID, "reply from bob", &parent.ID)
	req.NoError(err)
	_, err = messages.CreateMessage(bob.ID, "top-level from bob", nil)
	req.NoError(err)

	req.NoError(users.DeleteUser(alice.ID))

	_, err = users.GetUserByID(alice.ID)
	req.ErrorIs(err, errors.ErrUserNotFound)

	remaining, err := messages.ListMessages()
	req.NoError(err)
	// Alice's parent message is gone; bob's messages survive, including
	// the now-orphaned reply, which is left in place.
	req.Len(remaining, 2)
	for _, m := range remaining {
		req.Equal(bob.ID, m.AuthorID)
	}
}

func Test_DeleteUser_Unknown(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewUserRepository(db, slog.Default())

	req.ErrorIs(repository.DeleteUser(404), errors.ErrUserNotFound)
}
