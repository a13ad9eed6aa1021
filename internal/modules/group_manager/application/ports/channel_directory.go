package ports

import "github.com/disgoorg/snowflake/v2"

// ChannelDirectory defines the interface for looking up channel information.
type ChannelDirectory interface {
	// ChannelName returns the name of the given channel.
	ChannelName(channelID snowflake.ID) (string, error)
}
