package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID      string
	Message string
	Kind    Kind
	Expires time.Time
}

// Center collects transient notifications. Each one lives for the configured
// TTL and is pruned on read, matching the auto-dismiss behavior of the pages.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	active []Notification
}

const defaultTTL = 3 * time.Second

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

func (c *Center) Success(message string) {
	c.push(message, KindSuccess)
}

func (c *Center) Error(message string) {
	c.push(message, KindError)
}

func (c *Center) push(message string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = append(c.active, Notification{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		Expires: c.now().Add(c.ttl),
	})
}

// Active returns the not-yet-expired notifications and prunes the rest.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	live := c.active[:0]
	for _, n := range c.active {
		if n.Expires.After(now) {
			live = append(live, n)
		}
	}
	c.active = live
	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
