package domain

import "time"

// Message represents an immutable board entry.
// A nil ParentID marks a top-level message; otherwise the message is a
// reply to the referenced message. The schema allows arbitrary nesting
// depth but only one level of replies is ever assembled for display.
type Message struct {
	ID        int64
	AuthorID  int64
	Author    string // username, joined in at query time for rendering
	Content   string
	ParentID  *int64
	CreatedAt time.Time // always UTC in storage and in the domain
}

// IsReply reports whether the message references a parent.
func (m Message) IsReply() bool {
	return m.ParentID != nil
}
