package infrastructure

import (
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// DefaultReactionBufferSize is the default buffer size for subscription channels.
const DefaultReactionBufferSize = 16

// Compile-time checks that ReactionCollector implements ports interfaces.
var (
	_ ports.ReactionSource = (*ReactionCollector)(nil)
	_ ports.ReactionSink   = (*ReactionCollector)(nil)
)

// ReactionCollector fans out reactions from the Discord gateway to the
// subscriptions waiting on the reacted message.
type ReactionCollector struct {
	bufferSize int

	mu     sync.Mutex
	subs   map[snowflake.ID]map[*reactionSubscription]struct{}
	closed bool
}

// NewReactionCollector creates a new ReactionCollector with the given buffer size.
func NewReactionCollector(bufferSize int) *ReactionCollector {
	if bufferSize <= 0 {
		bufferSize = DefaultReactionBufferSize
	}

	return &ReactionCollector{
		bufferSize: bufferSize,
		subs:       make(map[snowflake.ID]map[*reactionSubscription]struct{}),
	}
}

// Subscribe starts collecting reactions added to the given message.
// Subscribing to a closed collector returns an already closed subscription.
func (c *ReactionCollector) Subscribe(messageID snowflake.ID) ports.ReactionSubscription {
	sub := &reactionSubscription{
		collector: c,
		messageID: messageID,
		events:    make(chan domain.ReactionEvent, c.bufferSize),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		sub.closed = true
		close(sub.events)
		return sub
	}

	if c.subs[messageID] == nil {
		c.subs[messageID] = make(map[*reactionSubscription]struct{})
	}
	c.subs[messageID][sub] = struct{}{}

	return sub
}

// Publish delivers a reaction to every subscription on its message.
// Non-blocking: if a subscription buffer is full, the event is dropped with a warning.
func (c *ReactionCollector) Publish(event domain.ReactionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	for sub := range c.subs[event.MessageID] {
		select {
		case sub.events <- event:
		default:
			slog.Warn("reaction buffer full, dropping event",
				"message_id", event.MessageID,
				"user_id", event.UserID,
			)
		}
	}
}

// Subscriptions returns the number of open subscriptions.
func (c *ReactionCollector) Subscriptions() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, subs := range c.subs {
		n += len(subs)
	}
	return n
}

// Close closes every open subscription. Later reactions are discarded.
func (c *ReactionCollector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for messageID, subs := range c.subs {
		for sub := range subs {
			sub.closeLocked()
		}
		delete(c.subs, messageID)
	}

	slog.Debug("reaction collector closed")
}

func (c *ReactionCollector) unsubscribe(sub *reactionSubscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sub.closed {
		return
	}
	sub.closeLocked()

	subs := c.subs[sub.messageID]
	delete(subs, sub)
	if len(subs) == 0 {
		delete(c.subs, sub.messageID)
	}
}

// reactionSubscription is guarded by its collector's mutex.
type reactionSubscription struct {
	collector *ReactionCollector
	messageID snowflake.ID
	events    chan domain.ReactionEvent
	closed    bool
}

func (s *reactionSubscription) Events() <-chan domain.ReactionEvent {
	return s.events
}

func (s *reactionSubscription) Close() {
	s.collector.unsubscribe(s)
}

func (s *reactionSubscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}
