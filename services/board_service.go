package services

import (
	"fmt"
	"strings"

	"msgboard/domain"
	"msgboard/errors"
	"msgboard/projection"
	"msgboard/repositories"
)

type IBoardService interface {
	PostMessage(authorID int64, content string) (domain.Message, error)
	PostReply(authorID int64, content string, parentID int64) (domain.Message, error)
	Feed() ([]projection.Thread, error)
}

type BoardService struct {
	messageRepository repositories.IMessageRepository
}

func NewBoardService(messages repositories.IMessageRepository) IBoardService {
	return &BoardService{messageRepository: messages}
}

// PostMessage creates a top-level message. Content is validated before
// the store is touched, so a rejected post never mutates anything.
func (s *BoardService) PostMessage(authorID int64, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	return s.messageRepository.CreateMessage(authorID, content, nil)
}

// PostReply creates a reply to an existing message. The parent is not
// checked for existence or depth; a reply to a reply is stored but never
// assembled into the feed.
func (s *BoardService) PostReply(authorID int64, content string, parentID int64) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	return s.messageRepository.CreateMessage(authorID, content, &parentID)
}

// Feed assembles the full message set into display order. Timestamps in
// the result are raw UTC; rendering applies the display timezone.
func (s *BoardService) Feed() ([]projection.Thread, error) {
	messages, err := s.messageRepository.ListMessages()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return projection.AssembleFeed(messages), nil
}
