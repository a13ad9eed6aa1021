package usecases

import (
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// ReactionInputService hands gateway reactions to waiting paging sessions.
type ReactionInputService struct {
	sink ports.ReactionSink
}

// NewReactionInputService creates a new ReactionInputService.
func NewReactionInputService(sink ports.ReactionSink) *ReactionInputService {
	return &ReactionInputService{sink: sink}
}

// Receive forwards a reaction. Reactions without a message, user or emoji are dropped.
func (r *ReactionInputService) Receive(event domain.ReactionEvent) {
	if event.MessageID == 0 || event.UserID == 0 || event.Emoji == "" {
		return
	}
	r.sink.Publish(event)
}
