package domain

import (
	"errors"

	"github.com/disgoorg/snowflake/v2"
)

// ErrSinglePage is returned when a paging session is requested for results
// that fit on one page.
var ErrSinglePage = errors.New("results fit on a single page")

// PagingSession is the navigation state of one paginated message.
// Only the user who ran the search may move between its pages.
type PagingSession struct {
	ownerID      snowflake.ID
	channelID    snowflake.ID
	messageID    snowflake.ID
	pages        []Page
	currentIndex int
}

// NewPagingSession creates a session showing the first of pages on the given message.
func NewPagingSession(
	ownerID, channelID, messageID snowflake.ID,
	pages []Page,
) (*PagingSession, error) {
	if len(pages) < 2 {
		return nil, ErrSinglePage
	}

	return &PagingSession{
		ownerID:   ownerID,
		channelID: channelID,
		messageID: messageID,
		pages:     pages,
	}, nil
}

// OwnerID returns the user allowed to navigate this session.
func (s *PagingSession) OwnerID() snowflake.ID {
	return s.ownerID
}

// ChannelID returns the channel of the paginated message.
func (s *PagingSession) ChannelID() snowflake.ID {
	return s.channelID
}

// MessageID returns the paginated message.
func (s *PagingSession) MessageID() snowflake.ID {
	return s.messageID
}

// CurrentIndex returns the 0-indexed page currently displayed.
func (s *PagingSession) CurrentIndex() int {
	return s.currentIndex
}

// Current returns the page currently displayed.
func (s *PagingSession) Current() Page {
	return s.pages[s.currentIndex]
}

// Len returns the number of pages.
func (s *PagingSession) Len() int {
	return len(s.pages)
}

// Accepts reports whether event is a navigation request for this session:
// a navigation emoji added to the session's message by its owner.
func (s *PagingSession) Accepts(event ReactionEvent) (Direction, bool) {
	if event.MessageID != s.messageID || event.UserID != s.ownerID {
		return 0, false
	}
	return ParseDirection(event.Emoji)
}

// Move shifts the current page one step in the given direction and returns it.
// Moving past either end stays on the first or last page.
func (s *PagingSession) Move(d Direction) Page {
	switch d {
	case DirectionNext:
		s.currentIndex = min(s.currentIndex+1, len(s.pages)-1)
	default:
		s.currentIndex = max(s.currentIndex-1, 0)
	}
	return s.Current()
}
