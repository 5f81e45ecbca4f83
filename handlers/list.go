package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/TristanFaureY/cath-ticket-bot/model"
)

// handleList reports how many occurrences each member accumulated in the
// rolling window, most delinquent first.
func (d *Dispatcher) handleList(ctx *commandContext, _ []string) {
	now := d.now()
	occs, err := d.store.ListByGuild(context.Background(), ctx.guildID, d.windowStart(now), now)
	if err != nil {
		d.logError("List", "query occurrences", err)
		return
	}

	totals := tallyByUsername(occs)
	if len(totals) == 0 {
		d.sendText(ctx.channelID, "No occurrences found")
		return
	}

	var b strings.Builder
	b.WriteString("`--------------------------------------------------`\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "`%s - %d`\n", t.Username, t.Count)
	}
	d.sendReply(ctx.channelID, &model.Reply{
		Title:       "Member - Times Under 600",
		Description: b.String(),
	})
}

type usernameCount struct {
	Username string
	Count    int
}

// tallyByUsername aggregates occurrences per display name, sorted by
// count descending with ties broken by username ascending. Aggregation
// is keyed on the display name, so distinct members sharing a name merge
// into one line.
func tallyByUsername(occs []model.Occurrence) []usernameCount {
	counts := make(map[string]int)
	for _, o := range occs {
		counts[o.Username]++
	}
	totals := make([]usernameCount, 0, len(counts))
	for name, n := range counts {
		totals = append(totals, usernameCount{Username: name, Count: n})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Count != totals[j].Count {
			return totals[i].Count > totals[j].Count
		}
		return totals[i].Username < totals[j].Username
	})
	return totals
}
