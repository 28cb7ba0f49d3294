package services

import (
	"fmt"
	"testing"
	"time"

	"msgboard/domain"
	"msgboard/errors"
	"msgboard/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBoardService_PostMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewBoardService(mockMessages)

	t.Run("should post a top-level message", func(t *testing.T) {
		req := require.New(t)

		mockMessages.EXPECT().
			CreateMessage(int64(1), "hello board", nil).
			Return(domain.Message{ID: 10, AuthorID: 1, Content: "hello board"}, nil).
			Times(1)

		created, err := svc.PostMessage(1, "hello board")

		req.NoError(err)
		req.Equal(int64(10), created.ID)
		req.Nil(created.ParentID)
	})

	t.Run("should reject empty content without touching the store", func(t *testing.T) {
		req := require.New(t)

		mockMessages.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.PostMessage(1, "")
		req.ErrorIs(err, errors.ErrEmptyContent)

		_, err = svc.PostMessage(1, "   \n\t")
		req.ErrorIs(err, errors.ErrEmptyContent)
	})
}

func TestBoardService_PostReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewBoardService(mockMessages)

	t.Run("should post a reply carrying the parent id", func(t *testing.T) {
		req := require.New(t)

		mockMessages.EXPECT().
			CreateMessage(int64(2), "nice post", gomock.Cond(func(parentID *int64) bool {
				return parentID != nil && *parentID == 5
			})).
			Return(domain.Message{ID: 11, AuthorID: 2, Content: "nice post"}, nil).
			Times(1)

		_, err := svc.PostReply(2, "nice post", 5)

		req.NoError(err)
	})

	t.Run("should reject empty reply content", func(t *testing.T) {
		req := require.New(t)

		mockMessages.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.PostReply(2, "", 5)

		req.ErrorIs(err, errors.ErrEmptyContent)
	})
}

func TestBoardService_Feed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewBoardService(mockMessages)

	t.Run("should assemble threads ordered by latest activity", func(t *testing.T) {
		req := require.New(t)
		base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
		parentID := int64(1)

		mockMessages.EXPECT().ListMessages().Return([]domain.Message{
			{ID: 1, Author: "alice", Content: "A", CreatedAt: base.Add(1 * time.Second)},
			{ID: 3, Author: "bob", Content: "B", ParentID: &parentID, CreatedAt: base.Add(3 * time.Second)},
			{ID: 2, Author: "clara", Content: "C", CreatedAt: base.Add(2 * time.Second)},
		}, nil).Times(1)

		feed, err := svc.Feed()

		req.NoError(err)
		req.Len(feed, 2)
		req.Equal("A", feed[0].Content)
		req.Len(feed[0].Replies, 1)
		req.Equal("B", feed[0].Replies[0].Content)
		req.Equal("C", feed[1].Content)
	})

	t.Run("should propagate storage failures", func(t *testing.T) {
		req := require.New(t)

		mockMessages.EXPECT().ListMessages().Return(nil, fmt.Errorf("disk on fire")).Times(1)

		_, err := svc.Feed()

		req.Error(err)
	})
}
