package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

const (
	ownerID          = snowflake.ID(1001)
	otherUserID      = snowflake.ID(1002)
	channelID        = snowflake.ID(2001)
	triggerMessageID = snowflake.ID(3001)
	sentMessageID    = snowflake.ID(3002)
)

func mockGroups(n int) []domain.Group {
	groups := make([]domain.Group, n)
	for i := range groups {
		groups[i] = domain.NewGroup(fmt.Sprintf("group-%d", i), n-i, "")
	}
	return groups
}

type mockRepository struct {
	groups    []domain.Group
	err       error
	lastQuery domain.SearchQuery
}

func (m *mockRepository) FindGroups(_ context.Context, query domain.SearchQuery) ([]domain.Group, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.groups, nil
}

type sentText struct {
	channelID snowflake.ID
	replyTo   snowflake.ID
	text      string
}

type editCall struct {
	messageID     snowflake.ID
	mentionUserID snowflake.ID
	page          ports.ResultPage
}

type reactionCall struct {
	messageID snowflake.ID
	userID    snowflake.ID
	emoji     string
}

type mockMessenger struct {
	mu sync.Mutex

	texts   []sentText
	pages   []ports.ResultPage
	edits   []editCall
	added   []reactionCall
	removed []reactionCall

	sendErr   error
	editErr   error
	reactErr  error
	removeErr error

	// removedCh receives every removal so tests can wait for a completed page turn.
	removedCh chan reactionCall
}

func newMockMessenger() *mockMessenger {
	return &mockMessenger{
		removedCh: make(chan reactionCall, 32),
	}
}

func (m *mockMessenger) SendText(_ context.Context, channelID, replyTo snowflake.ID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, sentText{channelID: channelID, replyTo: replyTo, text: text})
	return m.sendErr
}

func (m *mockMessenger) SendPage(_ context.Context, _ snowflake.ID, page ports.ResultPage) (snowflake.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return 0, m.sendErr
	}
	m.pages = append(m.pages, page)
	return sentMessageID, nil
}

func (m *mockMessenger) EditPage(
	_ context.Context,
	_, messageID, mentionUserID snowflake.ID,
	page ports.ResultPage,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editErr != nil {
		return m.editErr
	}
	m.edits = append(m.edits, editCall{messageID: messageID, mentionUserID: mentionUserID, page: page})
	return nil
}

func (m *mockMessenger) AddReaction(_ context.Context, _, messageID snowflake.ID, emoji string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reactErr != nil {
		return m.reactErr
	}
	m.added = append(m.added, reactionCall{messageID: messageID, emoji: emoji})
	return nil
}

func (m *mockMessenger) RemoveReaction(
	_ context.Context,
	_, messageID, userID snowflake.ID,
	emoji string,
) error {
	m.mu.Lock()
	if m.removeErr != nil {
		m.mu.Unlock()
		return m.removeErr
	}
	call := reactionCall{messageID: messageID, userID: userID, emoji: emoji}
	m.removed = append(m.removed, call)
	m.mu.Unlock()

	m.removedCh <- call
	return nil
}

func (m *mockMessenger) editedPageNumbers() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	numbers := make([]int, len(m.edits))
	for i, e := range m.edits {
		numbers[i] = e.page.Page.Number
	}
	return numbers
}

func (m *mockMessenger) editCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.edits)
}

func (m *mockMessenger) addedEmojis() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	emojis := make([]string, len(m.added))
	for i, r := range m.added {
		emojis[i] = r.emoji
	}
	return emojis
}

type mockSubscription struct {
	source    *mockReactionSource
	messageID snowflake.ID
	events    chan domain.ReactionEvent
	closed    bool
}

func (s *mockSubscription) Events() <-chan domain.ReactionEvent {
	return s.events
}

func (s *mockSubscription) Close() {
	s.source.mu.Lock()
	defer s.source.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

type mockReactionSource struct {
	mu   sync.Mutex
	subs []*mockSubscription

	// subscribed is signalled on every Subscribe call.
	subscribed chan struct{}
}

func newMockReactionSource() *mockReactionSource {
	return &mockReactionSource{
		subscribed: make(chan struct{}, 8),
	}
}

func (m *mockReactionSource) Subscribe(messageID snowflake.ID) ports.ReactionSubscription {
	m.mu.Lock()
	sub := &mockSubscription{
		source:    m,
		messageID: messageID,
		events:    make(chan domain.ReactionEvent, 64),
	}
	m.subs = append(m.subs, sub)
	m.mu.Unlock()

	m.subscribed <- struct{}{}
	return sub
}

// publish delivers the event to every open subscription for its message.
func (m *mockReactionSource) publish(event domain.ReactionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subs {
		if sub.closed || sub.messageID != event.MessageID {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}

// closeAll closes every open subscription, as a source shutting down would.
func (m *mockReactionSource) closeAll() {
	m.mu.Lock()
	subs := append([]*mockSubscription(nil), m.subs...)
	m.mu.Unlock()
	for _, sub := range subs {
		sub.Close()
	}
}

func (m *mockReactionSource) openSubscriptions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, sub := range m.subs {
		if !sub.closed {
			n++
		}
	}
	return n
}
