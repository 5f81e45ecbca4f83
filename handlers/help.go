package handlers

import (
	"fmt"
	"strings"

	"github.com/TristanFaureY/cath-ticket-bot/model"
)

// handleHelp sends the static command reference.
func (d *Dispatcher) handleHelp(ctx *commandContext, _ []string) {
	commands := []struct {
		usage       string
		description string
	}{
		{"list", fmt.Sprintf("Lists delinquent users from the last %d days", d.windowDays)},
		{"add <@user>", "Adds user(s) to the delinquent list"},
		{"lu or listuser <@user>", "Lists occurrences for member(s)"},
		{"remove <occurrence ID>", "Removes a single occurrence by ID"},
		{"ru <username> (do NOT use an @!)", "Removes a user and all occurrences"},
		{"status", "Shows bot and store diagnostics"},
		{"help", "Shows this menu"},
	}

	var usages, descriptions strings.Builder
	for _, c := range commands {
		usages.WriteString(c.usage + "\n")
		descriptions.WriteString(c.description + "\n")
	}
	d.sendReply(ctx.channelID, &model.Reply{
		Title: fmt.Sprintf("Help - All commands start with %q", d.prefix),
		Fields: []model.ReplyField{
			{Label: "Command", Content: usages.String(), Inline: true},
			{Label: "Description", Content: descriptions.String(), Inline: true},
		},
	})
}
