//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	sterrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"msgboard/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ISessionRepository interface {
	CreateSession(userID int64) (string, error)
	GetSession(sessionID string) (int64, error)
	DeleteSession(sessionID string) error
}

type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

func NewSessionRepository(db *badger.DB, log *slog.Logger, ttl time.Duration) ISessionRepository {
	return &SessionRepository{db: db, log: log, ttl: ttl}
}

// CreateSession mints an opaque session identifier for a user and stores
// the mapping with a TTL. Only the user id is persisted: the full user
// record is re-fetched from the credential store on every request, so a
// user deleted mid-session simply stops resolving.
func (s *SessionRepository) CreateSession(userID int64) (string, error) {
	sessionID := uuid.New().String()
	key := []byte("session:" + sessionID)
	value := []byte(strconv.FormatInt(userID, 10))

	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, value).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return sessionID, nil
}

// GetSession resolves a session identifier back to a user id.
// Expired entries are reclaimed by Badger itself and show up here as
// ErrSessionNotFound, same as an identifier that never existed.
func (s *SessionRepository) GetSession(sessionID string) (int64, error) {
	var userID int64

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("session:" + sessionID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID, err = strconv.ParseInt(string(val), 10, 64)
			return err
		})
	})
	if err != nil {
		if sterrors.Is(err, badger.ErrKeyNotFound) {
			return 0, errors.ErrSessionNotFound
		}
		return 0, fmt.Errorf("read session: %w", err)
	}

	return userID, nil
}

func (s *SessionRepository) DeleteSession(sessionID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte("session:" + sessionID))
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
