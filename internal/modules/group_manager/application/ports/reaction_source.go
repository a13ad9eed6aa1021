package ports

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// ReactionSubscription delivers reactions added to a single message.
type ReactionSubscription interface {
	// Events returns the channel of reactions. It is closed when the
	// subscription or its source is closed.
	Events() <-chan domain.ReactionEvent

	// Close stops delivery and releases the subscription.
	Close()
}

// ReactionSource defines the interface for observing reactions on messages.
type ReactionSource interface {
	// Subscribe starts collecting reactions added to the given message.
	Subscribe(messageID snowflake.ID) ReactionSubscription
}

// ReactionSink defines the interface for delivering observed reactions.
type ReactionSink interface {
	// Publish delivers a reaction to the subscriptions on its message without blocking.
	Publish(event domain.ReactionEvent)
}
