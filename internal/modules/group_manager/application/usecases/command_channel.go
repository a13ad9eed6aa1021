package usecases

import (
	"fmt"
	"slices"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
)

// CommandChannelService decides which channels accept group commands.
type CommandChannelService struct {
	channels     ports.ChannelDirectory
	allowedNames []string
}

// NewCommandChannelService creates a new CommandChannelService.
// An empty allowedNames list accepts every channel.
func NewCommandChannelService(
	channels ports.ChannelDirectory,
	allowedNames []string,
) *CommandChannelService {
	return &CommandChannelService{
		channels:     channels,
		allowedNames: allowedNames,
	}
}

// AllowedNames returns the channel names that accept group commands.
func (c *CommandChannelService) AllowedNames() []string {
	return slices.Clone(c.allowedNames)
}

// IsAllowed returns true if group commands may be used in the channel.
func (c *CommandChannelService) IsAllowed(channelID snowflake.ID) (bool, error) {
	if len(c.allowedNames) == 0 {
		return true, nil
	}

	name, err := c.channels.ChannelName(channelID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve channel name: %w", err)
	}

	return slices.Contains(c.allowedNames, name), nil
}
