package infrastructure

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
)

// ChannelDirectory resolves Discord channel names.
type ChannelDirectory struct {
	session *discordgo.Session
}

// NewChannelDirectory creates a new ChannelDirectory.
func NewChannelDirectory(session *discordgo.Session) *ChannelDirectory {
	return &ChannelDirectory{session: session}
}

// ChannelName returns the name of the channel, preferring the state cache
// and falling back to the REST API.
func (d *ChannelDirectory) ChannelName(channelID snowflake.ID) (string, error) {
	if d.session.State != nil {
		if channel, err := d.session.State.Channel(channelID.String()); err == nil {
			return channel.Name, nil
		}
	}

	channel, err := d.session.Channel(channelID.String())
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel: %w", err)
	}
	return channel.Name, nil
}

// Ensure ChannelDirectory implements ports.ChannelDirectory.
var _ ports.ChannelDirectory = (*ChannelDirectory)(nil)
