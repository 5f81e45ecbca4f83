package handlers

import (
	"context"
	"fmt"
)

// handleRemoveUser bulk-deletes every occurrence recorded under each
// username argument. Deletions run independently per argument and the
// success message is sent once, unconditionally, after dispatching them;
// individual failures only reach the operator log.
func (d *Dispatcher) handleRemoveUser(ctx *commandContext, args []string) {
	if !d.requireManageMessages(ctx) {
		return
	}
	for _, username := range args {
		d.async(func() {
			if _, err := d.store.DeleteByUsername(context.Background(), ctx.guildID, username); err != nil {
				d.logError("RemoveUser", fmt.Sprintf("delete occurrences for %s", username), err)
			}
		})
	}
	d.sendText(ctx.channelID, "User(s) and all occurrences successfully removed.")
}
