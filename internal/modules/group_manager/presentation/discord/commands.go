package discord

import "github.com/bwmarrin/discordgo"

// Commands returns all slash commands for the group manager module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "group",
			Description: "Work with user groups",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "search",
					Description: "Search all groups or the specified group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Group name to search for (omit to list all groups)",
							Required:    false,
						},
					},
				},
			},
		},
	}
}
