package domain

import "github.com/disgoorg/snowflake/v2"

// Navigation reactions attached to a paginated message.
const (
	EmojiPrevious = "⬅️"
	EmojiNext     = "➡️"
)

// NavigationEmojis lists the navigation reactions in the order they are attached.
var NavigationEmojis = []string{EmojiPrevious, EmojiNext}

// Direction is a page navigation request.
type Direction int

const (
	DirectionPrevious Direction = iota
	DirectionNext
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	if d == DirectionNext {
		return "next"
	}
	return "previous"
}

// Emoji returns the reaction that requests this direction.
func (d Direction) Emoji() string {
	if d == DirectionNext {
		return EmojiNext
	}
	return EmojiPrevious
}

// ParseDirection converts a reaction emoji to a Direction.
// The second return value is false for any other emoji.
func ParseDirection(emoji string) (Direction, bool) {
	switch emoji {
	case EmojiPrevious:
		return DirectionPrevious, true
	case EmojiNext:
		return DirectionNext, true
	default:
		return 0, false
	}
}

// ReactionEvent is a reaction added to a message by a user.
type ReactionEvent struct {
	MessageID snowflake.ID
	UserID    snowflake.ID
	Emoji     string
}
