package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/TristanFaureY/cath-ticket-bot/utils/database"
)

// handleRemove deletes a single occurrence by id. Exactly one of the two
// outcomes is reported: the removal confirmation or the cannot-find
// message, both echoing the identifier.
func (d *Dispatcher) handleRemove(ctx *commandContext, args []string) {
	if !d.requireManageMessages(ctx) {
		return
	}
	if len(args) == 0 {
		d.sendText(ctx.channelID, invalidCommandMessage)
		return
	}
	id := args[0]
	if err := d.store.DeleteByID(context.Background(), ctx.guildID, id); err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			d.logError("Remove", "delete occurrence", err)
		}
		d.sendText(ctx.channelID, fmt.Sprintf("Cannot find occurrence with ID %s", id))
		return
	}
	d.sendText(ctx.channelID, fmt.Sprintf("Occurrence for ID %s removed.", id))
}
