package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"github.com/TristanFaureY/cath-ticket-bot/utils/database"
	"github.com/bwmarrin/discordgo"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Ensure the fakes implement the collaborator interfaces.
var (
	_ model.OccurrenceStore = (*fakeStore)(nil)
	_ model.ChatSession     = (*fakeChat)(nil)
)

// fakeStore implements model.OccurrenceStore in memory for testing.
type fakeStore struct {
	mu          sync.Mutex
	occurrences []model.Occurrence
	createErr   error
	listErr     error
	deleteErr   error
	countErr    error
	createCalls int
	listCalls   int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) add(occ model.Occurrence) model.Occurrence {
	f.mu.Lock()
	defer f.mu.Unlock()
	if occ.ID.IsZero() {
		occ.ID = bson.NewObjectID()
	}
	f.occurrences = append(f.occurrences, occ)
	return occ
}

func (f *fakeStore) Create(ctx context.Context, occ *model.Occurrence) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	if occ.ID.IsZero() {
		occ.ID = bson.NewObjectID()
	}
	f.occurrences = append(f.occurrences, *occ)
	return occ.ID.Hex(), nil
}

func (f *fakeStore) ListByGuild(ctx context.Context, guildID string, from, to time.Time) ([]model.Occurrence, error) {
	return f.list(func(o model.Occurrence) bool {
		return o.GuildID == guildID && inWindow(o.CreatedAt, from, to)
	})
}

func (f *fakeStore) ListByUser(ctx context.Context, guildID, userID string, from, to time.Time) ([]model.Occurrence, error) {
	return f.list(func(o model.Occurrence) bool {
		return o.GuildID == guildID && o.UserID == userID && inWindow(o.CreatedAt, from, to)
	})
}

func (f *fakeStore) list(match func(model.Occurrence) bool) ([]model.Occurrence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Occurrence
	for _, o := range f.occurrences {
		if match(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func (f *fakeStore) DeleteByID(ctx context.Context, guildID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, o := range f.occurrences {
		if o.GuildID == guildID && o.ID.Hex() == id {
			f.occurrences = append(f.occurrences[:i], f.occurrences[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (f *fakeStore) DeleteByUsername(ctx context.Context, guildID, username string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var kept []model.Occurrence
	var removed int64
	for _, o := range f.occurrences {
		if o.GuildID == guildID && o.Username == username {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	f.occurrences = kept
	return removed, nil
}

func (f *fakeStore) CountByGuild(ctx context.Context, guildID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, o := range f.occurrences {
		if o.GuildID == guildID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) remaining() []model.Occurrence {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Occurrence, len(f.occurrences))
	copy(out, f.occurrences)
	return out
}

// fakeChat implements model.ChatSession, recording everything sent.
type fakeChat struct {
	mu      sync.Mutex
	perms   int64
	permErr error
	sendErr error
	texts   []string
	replies []*model.Reply
}

func newFakeChat(perms int64) *fakeChat {
	return &fakeChat{perms: perms}
}

func (f *fakeChat) SendText(channelID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.texts = append(f.texts, content)
	return nil
}

func (f *fakeChat) SendReply(channelID string, reply *model.Reply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.replies = append(f.replies, reply)
	return nil
}

func (f *fakeChat) MemberPermissions(userID, channelID string) (int64, error) {
	return f.perms, f.permErr
}

func (f *fakeChat) HeartbeatLatency() time.Duration {
	return 42 * time.Millisecond
}

func (f *fakeChat) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.texts))
	copy(out, f.texts)
	return out
}

func (f *fakeChat) sentReplies() []*model.Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Reply, len(f.replies))
	copy(out, f.replies)
	return out
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestDispatcher(store *fakeStore, chat *fakeChat) *Dispatcher {
	d := NewDispatcher(chat, store, &model.Config{Prefix: "&", WindowDays: 30})
	d.now = func() time.Time { return testNow }
	return d
}

func occurrence(guildID, userID, username string, createdAt time.Time) model.Occurrence {
	return model.Occurrence{
		ID:        bson.NewObjectID(),
		GuildID:   guildID,
		UserID:    userID,
		Username:  username,
		CreatedAt: createdAt,
	}
}

func testUser(id, username string) *discordgo.User {
	return &discordgo.User{ID: id, Username: username}
}

func countOccurrences(texts []string, want string) int {
	n := 0
	for _, t := range texts {
		if t == want {
			n++
		}
	}
	return n
}
