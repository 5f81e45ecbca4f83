package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/TristanFaureY/cath-ticket-bot/model"
)

const occurrenceDateFormat = "01/02/2006"

// handleListUser reports each mentioned member's in-window occurrences
// as positionally aligned date/id columns. Members are queried
// independently; replies may arrive in any order.
func (d *Dispatcher) handleListUser(ctx *commandContext, _ []string) {
	now := d.now()
	from := d.windowStart(now)
	for _, member := range ctx.mentions {
		d.async(func() {
			occs, err := d.store.ListByUser(context.Background(), ctx.guildID, member.ID, from, now)
			if err != nil {
				d.sendText(ctx.channelID, databaseProblemMessage)
				d.logError("ListUser", fmt.Sprintf("query occurrences for %s", member.ID), err)
				return
			}
			if len(occs) == 0 {
				d.sendText(ctx.channelID, "Cannot find user(s)")
				return
			}
			var dates, ids strings.Builder
			for _, o := range occs {
				dates.WriteString(o.CreatedAt.Format(occurrenceDateFormat) + "\n")
				ids.WriteString(o.ID.Hex() + "\n")
			}
			d.sendReply(ctx.channelID, &model.Reply{
				Title: fmt.Sprintf("Occurrences for %s", occs[0].Username),
				Fields: []model.ReplyField{
					{Label: "Date", Content: dates.String(), Inline: true},
					{Label: "ID", Content: ids.String(), Inline: true},
				},
			})
		})
	}
}
