package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Occurrence is one recorded instance of a member missing a ticket,
// scoped to a single guild. Records are immutable once created;
// correction is delete-and-recreate.
type Occurrence struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	Username         string        `bson:"username"`
	UserID           string        `bson:"userID"`
	ReporterUsername string        `bson:"reporterUsername"`
	ReporterID       string        `bson:"reporterID"`
	GuildID          string        `bson:"guildID"`
	CreatedAt        time.Time     `bson:"createdAt"`
}
