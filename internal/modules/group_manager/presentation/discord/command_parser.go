package discord

import (
	"strings"

	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/usecases"
)

// Message command trigger words.
const (
	groupTrigger  = "!group"
	searchTrigger = "search"
)

// parseSearchCommand parses "!group search [<name>]". Only the first word
// after the subcommand is used as the name filter.
func parseSearchCommand(content string) (usecases.SearchQuery, bool) {
	words := strings.Fields(content)
	if len(words) < 2 || words[0] != groupTrigger || words[1] != searchTrigger {
		return usecases.SearchQuery{}, false
	}

	if len(words) == 2 {
		return usecases.NewSearchQuery(""), true
	}
	return usecases.NewSearchQuery(words[2]), true
}
