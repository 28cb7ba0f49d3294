package projection

import (
	"testing"
	"time"

	"msgboard/domain"

	"github.com/stretchr/testify/require"
)

func TestFormatFeed_Converts_To_Display_Timezone(t *testing.T) {
	req := require.New(t)

	eastern, err := time.LoadLocation(DefaultDisplayTimezone)
	req.NoError(err)

	// January: US Eastern is UTC-5.
	createdAt := time.Date(2026, time.January, 15, 18, 0, 0, 0, time.UTC)
	parent := domain.Message{ID: 1, Author: "alice", Content: "hello", CreatedAt: createdAt}
	reply := domain.Message{ID: 2, Author: "bob", Content: "hi", ParentID: &parent.ID, CreatedAt: createdAt.Add(time.Hour)}

	formatted := FormatFeed(AssembleFeed([]domain.Message{parent, reply}), eastern)

	req.Len(formatted, 1)
	req.Equal("Jan 15, 2026 at 1:00 PM", formatted[0].PostedAt)
	req.Len(formatted[0].Replies, 1)
	req.Equal("Jan 15, 2026 at 2:00 PM", formatted[0].Replies[0].PostedAt)
}

func TestFormatFeed_Location_Is_Swappable(t *testing.T) {
	req := require.New(t)

	createdAt := time.Date(2026, time.January, 15, 18, 0, 0, 0, time.UTC)
	threads := AssembleFeed([]domain.Message{
		{ID: 1, Author: "alice", Content: "hello", CreatedAt: createdAt},
	})

	utc := FormatFeed(threads, time.UTC)
	req.Equal("Jan 15, 2026 at 6:00 PM", utc[0].PostedAt)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	req.NoError(err)
	jst := FormatFeed(threads, tokyo)
	req.Equal("Jan 16, 2026 at 3:00 AM", jst[0].PostedAt)
}
