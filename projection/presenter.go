package projection

import (
	"time"

	"msgboard/domain"

	"github.com/samber/lo"
)

// DefaultDisplayTimezone is where timestamps are rendered by default.
// Storage stays UTC; this only affects presentation.
const DefaultDisplayTimezone = "America/New_York"

const displayTimeFormat = "Jan 2, 2006 at 3:04 PM"

// DisplayMessage is a message formatted for rendering.
type DisplayMessage struct {
	ID       int64
	Author   string
	Content  string
	PostedAt string
}

// DisplayThread is a thread formatted for rendering.
type DisplayThread struct {
	DisplayMessage
	Replies []DisplayMessage
}

// FormatFeed converts the assembler's raw UTC output into display rows
// with timestamps rendered in the given location.
func FormatFeed(threads []Thread, location *time.Location) []DisplayThread {
	return lo.Map(threads, func(t Thread, _ int) DisplayThread {
		return DisplayThread{
			DisplayMessage: formatMessage(t.Message, location),
			Replies: lo.Map(t.Replies, func(m domain.Message, _ int) DisplayMessage {
				return formatMessage(m, location)
			}),
		}
	})
}

func formatMessage(m domain.Message, location *time.Location) DisplayMessage {
	return DisplayMessage{
		ID:       m.ID,
		Author:   m.Author,
		Content:  m.Content,
		PostedAt: m.CreatedAt.In(location).Format(displayTimeFormat),
	}
}
