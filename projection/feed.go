// Package projection builds display-ordered views from the raw message set.
// Assembly works on UTC timestamps only; timezone conversion is a separate
// formatting step so ordering stays independently testable.
package projection

import (
	"sort"
	"time"

	"msgboard/domain"

	"github.com/samber/lo"
)

// Thread is a top-level message decorated with its direct replies and
// the timestamp of its most recent activity.
type Thread struct {
	domain.Message
	Replies        []domain.Message
	LatestActivity time.Time
}

// AssembleFeed turns the unordered message set into the rendered feed order:
// threads sorted by latest activity descending, replies within a thread
// sorted by creation time ascending.
//
// Replies are grouped by parent id in a single pass. A reply whose parent is
// itself a reply (structurally possible, never rendered) and a reply whose
// parent no longer exists are both silently dropped from the result.
func AssembleFeed(messages []domain.Message) []Thread {
	topLevel := lo.Filter(messages, func(m domain.Message, _ int) bool {
		return !m.IsReply()
	})
	replies := lo.Filter(messages, func(m domain.Message, _ int) bool {
		return m.IsReply()
	})

	byParent := lo.GroupBy(replies, func(m domain.Message) int64 {
		return *m.ParentID
	})
	for _, group := range byParent {
		sort.Slice(group, func(i, j int) bool {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})
	}

	threads := lo.Map(topLevel, func(m domain.Message, _ int) Thread {
		group := byParent[m.ID]
		latest := m.CreatedAt
		if len(group) > 0 {
			if last := group[len(group)-1].CreatedAt; last.After(latest) {
				latest = last
			}
		}
		return Thread{Message: m, Replies: group, LatestActivity: latest}
	})

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LatestActivity.After(threads[j].LatestActivity)
	})

	return threads
}
