package infrastructure

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

const (
	embedAuthorName   = "YesBot"
	fallbackAvatarURL = "https://example.com/invalid.png"
	emptyDescription  = "-"
	zeroWidthSpace    = "\u200b"
)

// BuildResultEmbed renders a result page as an embed with four fields per group.
func BuildResultEmbed(page ports.ResultPage, avatarURL string) *discordgo.MessageEmbed {
	if avatarURL == "" {
		avatarURL = fallbackAvatarURL
	}

	return &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    embedAuthorName,
			IconURL: avatarURL,
		},
		Description: page.Query.Caption(page.Page),
		Fields: lo.FlatMap(page.Page.Groups, func(g domain.Group, _ int) []*discordgo.MessageEmbedField {
			return []*discordgo.MessageEmbedField{
				{Name: "Group Name:", Value: g.Name, Inline: true},
				{Name: "Number of Members:", Value: strconv.Itoa(g.MemberCount), Inline: true},
				{Name: "Description:", Value: g.DescriptionOr(emptyDescription)},
				{Name: zeroWidthSpace, Value: zeroWidthSpace},
			}
		}),
	}
}
