package model

import (
	"context"
	"time"
)

// OccurrenceStore is the persistence collaborator. All queries and
// deletes are guild-scoped; records never cross guild boundaries.
type OccurrenceStore interface {
	// Create inserts one occurrence and returns its generated id.
	Create(ctx context.Context, occ *Occurrence) (string, error)
	// ListByGuild returns the guild's occurrences with createdAt in
	// [from, to), ordered by createdAt ascending.
	ListByGuild(ctx context.Context, guildID string, from, to time.Time) ([]Occurrence, error)
	// ListByUser is ListByGuild narrowed to a single member.
	ListByUser(ctx context.Context, guildID, userID string, from, to time.Time) ([]Occurrence, error)
	// DeleteByID removes a single occurrence by id within the guild.
	DeleteByID(ctx context.Context, guildID, id string) error
	// DeleteByUsername removes every occurrence recorded under the
	// display name within the guild and reports how many matched.
	DeleteByUsername(ctx context.Context, guildID, username string) (int64, error)
	// CountByGuild returns the guild's total number of records.
	CountByGuild(ctx context.Context, guildID string) (int64, error)
}

// ChatSession is the narrow slice of the chat collaborator the command
// handlers use to reply and to check member capabilities.
type ChatSession interface {
	SendText(channelID, content string) error
	SendReply(channelID string, reply *Reply) error
	MemberPermissions(userID, channelID string) (int64, error)
	HeartbeatLatency() time.Duration
}
