//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"msgboard/domain"
)

type IMessageRepository interface {
	CreateMessage(authorID int64, content string, parentID *int64) (domain.Message, error)
	ListMessages() ([]domain.Message, error)
}

type MessageRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewMessageRepository(db *sql.DB, log *slog.Logger) IMessageRepository {
	return &MessageRepository{db: db, log: log}
}

// CreateMessage persists a message with a server-assigned timestamp.
// Nanosecond resolution keeps reply ordering stable even when two posts
// land within the same second.
func (m *MessageRepository) CreateMessage(authorID int64, content string, parentID *int64) (domain.Message, error) {
	createdAt := time.Now().UTC()
	res, err := m.db.Exec(
		"INSERT INTO messages (user_id, content, parent_id, timestamp) VALUES (?, ?, ?, ?)",
		authorID, content, parentID, createdAt.UnixNano(),
	)
	if err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Message{}, fmt.Errorf("last insert id: %w", err)
	}

	return domain.Message{
		ID:        id,
		AuthorID:  authorID,
		Content:   content,
		ParentID:  parentID,
		CreatedAt: createdAt,
	}, nil
}

// ListMessages returns the full author-joined message set, unordered.
// Ordering is the feed assembler's responsibility.
func (m *MessageRepository) ListMessages() ([]domain.Message, error) {
	rows, err := m.db.Query(`
		SELECT m.id, m.user_id, u.username, m.content, m.parent_id, m.timestamp
		FROM messages m
		JOIN users u ON u.id = m.user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var (
			message   domain.Message
			parentID  sql.NullInt64
			timestamp int64
		)
		if err := rows.Scan(
			&message.ID, &message.AuthorID, &message.Author,
			&message.Content, &parentID, &timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if parentID.Valid {
			message.ParentID = &parentID.Int64
		}
		message.CreatedAt = time.Unix(0, timestamp).UTC()
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}
