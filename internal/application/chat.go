package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

// ChatService appends outgoing messages and schedules the simulated
// counterpart reply. At most one reply is pending at a time, and a pending
// reply is cancellable: reset-all cancels it instead of letting it append
// into a cleared conversation.
type ChatService struct {
	store     *Store
	replyText string
	delay     time.Duration

	mu      sync.Mutex
	pending *time.Timer
	done    chan struct{}
}

func NewChatService(store *Store, replyText string, delay time.Duration) *ChatService {
	return &ChatService{
		store:     store,
		replyText: replyText,
		delay:     delay,
	}
}

// Send appends the operator's message and schedules the auto-reply. The
// returned channel closes once the reply has been appended or the pending
// reply was canceled, whichever comes first. A persist warning still
// schedules the reply: the in-memory log stays authoritative.
func (c *ChatService) Send(ctx context.Context, text string) (domain.Message, <-chan struct{}, error) {
	msg, err := c.store.AppendMessage(ctx, AppendMessageCommand{Who: domain.SpeakerMe, Text: text})
	if err != nil && !errors.Is(err, ErrNotPersisted) {
		return domain.Message{}, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()

	done := make(chan struct{})
	c.done = done
	c.pending = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		if c.done != done {
			// Canceled or superseded after the timer fired.
			c.mu.Unlock()
			return
		}
		c.pending = nil
		c.done = nil
		c.mu.Unlock()

		_, _ = c.store.AppendMessage(context.Background(), AppendMessageCommand{
			Who:  domain.SpeakerThem,
			Text: c.replyText,
		})
		close(done)
	})

	return msg, done, err
}

// CancelPending stops a scheduled reply if one exists. Waiters on the Send
// channel are released.
func (c *ChatService) CancelPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// PendingReply reports whether a reply is still scheduled.
func (c *ChatService) PendingReply() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

func (c *ChatService) cancelLocked() {
	if c.pending == nil {
		return
	}
	c.pending.Stop()
	close(c.done)
	c.pending = nil
	c.done = nil
}
