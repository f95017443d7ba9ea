package showcase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/models"
)

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a user-facing message produced outside the request that caused it
type Notice struct {
	Level       NoticeLevel        `json:"level"`
	Message     string             `json:"message"`
	ProjectID   uuid.UUID          `json:"project_id,omitempty"`
	InquiryType models.InquiryType `json:"inquiry_type,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Notifier delivers notices to the audience (browser session) they belong to
type Notifier interface {
	Notify(audience string, notice Notice)
}

const (
	noticeTTL         = 10 * time.Minute
	pruneAboveEntries = 1024
)

type noticeQueue struct {
	notices []Notice
	touched time.Time
}

// NoticeBoard keeps undelivered notices per audience until they are drained.
// Each audience holds at most capacity notices; older ones are dropped first.
type NoticeBoard struct {
	mu       sync.Mutex
	capacity int
	pending  map[string]*noticeQueue
	now      func() time.Time
}

func NewNoticeBoard(capacity int) *NoticeBoard {
	if capacity <= 0 {
		capacity = 20
	}
	return &NoticeBoard{
		capacity: capacity,
		pending:  make(map[string]*noticeQueue),
		now:      time.Now,
	}
}

// Notify queues notice for audience. Notices without an audience are dropped.
func (b *NoticeBoard) Notify(audience string, notice Notice) {
	if audience == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = now
	}

	if len(b.pending) > pruneAboveEntries {
		b.pruneLocked(now)
	}

	queue, ok := b.pending[audience]
	if !ok {
		queue = &noticeQueue{}
		b.pending[audience] = queue
	}
	queue.notices = append(queue.notices, notice)
	if overflow := len(queue.notices) - b.capacity; overflow > 0 {
		queue.notices = queue.notices[overflow:]
	}
	queue.touched = now
}

// Drain returns and forgets every pending notice of audience, oldest first
func (b *NoticeBoard) Drain(audience string) []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue, ok := b.pending[audience]
	if !ok {
		return []Notice{}
	}
	delete(b.pending, audience)
	return queue.notices
}

// Pending reports how many notices wait for audience
func (b *NoticeBoard) Pending(audience string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if queue, ok := b.pending[audience]; ok {
		return len(queue.notices)
	}
	return 0
}

func (b *NoticeBoard) pruneLocked(now time.Time) {
	for audience, queue := range b.pending {
		if now.Sub(queue.touched) > noticeTTL {
			delete(b.pending, audience)
		}
	}
}
