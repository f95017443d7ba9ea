package showcase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeBoard_DrainIsPerAudience(t *testing.T) {
	board := NewNoticeBoard(5)

	board.Notify("a", Notice{Message: "one"})
	board.Notify("a", Notice{Message: "two"})
	board.Notify("b", Notice{Message: "other"})

	notices := board.Drain("a")
	require.Len(t, notices, 2)
	assert.Equal(t, "one", notices[0].Message)
	assert.Equal(t, "two", notices[1].Message)
	assert.False(t, notices[0].CreatedAt.IsZero())

	assert.Empty(t, board.Drain("a"))
	assert.Equal(t, 1, board.Pending("b"))
}

func TestNoticeBoard_DropsOldestOverCapacity(t *testing.T) {
	board := NewNoticeBoard(2)

	for i := 1; i <= 4; i++ {
		board.Notify("a", Notice{Message: fmt.Sprintf("n%d", i)})
	}

	notices := board.Drain("a")
	require.Len(t, notices, 2)
	assert.Equal(t, "n3", notices[0].Message)
	assert.Equal(t, "n4", notices[1].Message)
}

func TestNoticeBoard_IgnoresEmptyAudience(t *testing.T) {
	board := NewNoticeBoard(2)
	board.Notify("", Notice{Message: "lost"})
	assert.Zero(t, board.Pending(""))
}

func TestNoticeBoard_PrunesStaleAudiences(t *testing.T) {
	board := NewNoticeBoard(1)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	board.now = func() time.Time { return start }

	for i := 0; i <= pruneAboveEntries; i++ {
		board.Notify(fmt.Sprintf("stale-%d", i), Notice{Message: "old"})
	}

	board.now = func() time.Time { return start.Add(noticeTTL + time.Minute) }
	board.Notify("stale-0", Notice{Message: "refreshed"})
	board.Notify("fresh", Notice{Message: "new"})

	assert.Zero(t, board.Pending("stale-1"))
	assert.Equal(t, 1, board.Pending("stale-0"))
	assert.Equal(t, 1, board.Pending("fresh"))
}
