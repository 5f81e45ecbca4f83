package handlers

import (
	"context"
	"fmt"

	"github.com/TristanFaureY/cath-ticket-bot/model"
)

// handleAdd records one occurrence per mentioned member. Each record is
// written independently; one member's failure does not block the others
// and each outcome is reported separately.
func (d *Dispatcher) handleAdd(ctx *commandContext, _ []string) {
	if !d.requireManageMessages(ctx) {
		return
	}
	now := d.now()
	for _, member := range ctx.mentions {
		d.async(func() {
			occ := &model.Occurrence{
				Username:         member.Username,
				UserID:           member.ID,
				ReporterUsername: ctx.author.Username,
				ReporterID:       ctx.author.ID,
				GuildID:          ctx.guildID,
				CreatedAt:        now,
			}
			if _, err := d.store.Create(context.Background(), occ); err != nil {
				d.sendText(ctx.channelID, fmt.Sprintf("Unable to save %s's record. Please try again.", member.Username))
				d.logError("Add", "create occurrence", err)
				return
			}
			d.sendText(ctx.channelID, fmt.Sprintf("User %s successfully recorded.", member.Username))
		})
	}
}
