package discord

import (
	"regexp"

	"github.com/bwmarrin/discordgo"
)

// Permission bits required per command, from the declarative router table
const (
	permissionKickMembers     = int64(discordgo.PermissionKickMembers)
	permissionBanMembers      = int64(discordgo.PermissionBanMembers)
	permissionModerateMembers = int64(discordgo.PermissionModerateMembers)
	permissionAdministrator   = int64(discordgo.PermissionAdministrator)
)

// mentionPattern matches a user mention token like <@123> or <@!123>
var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// parseMentionArg extracts the user ID from the first argument when it is a
// mention token, returning "" otherwise
func parseMentionArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	match := mentionPattern.FindStringSubmatch(args[0])
	if match == nil {
		return ""
	}

	return match[1]
}
