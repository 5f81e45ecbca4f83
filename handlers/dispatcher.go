package handlers

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"github.com/TristanFaureY/cath-ticket-bot/utils"
	"github.com/bwmarrin/discordgo"
)

const (
	permissionDeniedMessage = "You do not have permission to do that."
	invalidCommandMessage   = "Sorry, that is not a valid command."
	databaseProblemMessage  = "There was a problem communicating with the database, try again later."
)

// commandContext carries the message metadata a command handler needs.
type commandContext struct {
	guildID   string
	channelID string
	author    *discordgo.User
	mentions  []*discordgo.User
}

type commandFunc func(ctx *commandContext, args []string)

// Dispatcher parses prefixed messages and routes them to command
// handlers. It holds no state of its own beyond the injected
// collaborators; every command re-queries the store.
type Dispatcher struct {
	chat       model.ChatSession
	store      model.OccurrenceStore
	prefix     string
	windowDays int
	webhookURL string
	now        func() time.Time
	table      map[string]commandFunc
	wg         sync.WaitGroup
}

func NewDispatcher(chat model.ChatSession, store model.OccurrenceStore, cfg *model.Config) *Dispatcher {
	d := &Dispatcher{
		chat:       chat,
		store:      store,
		prefix:     cfg.Prefix,
		windowDays: cfg.WindowDays,
		webhookURL: cfg.LogWebhookURL,
		now:        time.Now,
	}
	d.table = map[string]commandFunc{
		"add":        d.handleAdd,
		"list":       d.handleList,
		"remove":     d.handleRemove,
		"ru":         d.handleRemoveUser,
		"removeuser": d.handleRemoveUser,
		"lu":         d.handleListUser,
		"listuser":   d.handleListUser,
		"help":       d.handleHelp,
		"status":     d.handleStatus,
	}
	return d
}

// HandleMessage dispatches one incoming message. Messages that do not
// start with the prefix are ignored without side effects.
func (d *Dispatcher) HandleMessage(guildID, channelID string, author *discordgo.User, content string, mentions []*discordgo.User) {
	name, args, ok := parseCommand(content, d.prefix)
	if !ok {
		return
	}
	if guildID == "" || author == nil {
		return
	}
	ctx := &commandContext{
		guildID:   guildID,
		channelID: channelID,
		author:    author,
		mentions:  mentions,
	}
	h, found := d.table[name]
	if !found {
		d.sendText(ctx.channelID, invalidCommandMessage)
		return
	}
	h(ctx, args)
}

// parseCommand splits a prefixed message into a command name and its
// positional string arguments. Command names are case-sensitive and
// arguments carry no quoting or escaping.
func parseCommand(content, prefix string) (string, []string, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return "", nil, true
	}
	return fields[0], fields[1:], true
}

// requireManageMessages applies the permission gate for mutating
// commands. A failed capability lookup counts as no permission.
func (d *Dispatcher) requireManageMessages(ctx *commandContext) bool {
	perms, err := d.chat.MemberPermissions(ctx.author.ID, ctx.channelID)
	if err != nil {
		d.logError("Dispatcher", "check permissions", err)
		perms = 0
	}
	if perms&discordgo.PermissionManageMessages == 0 {
		d.sendText(ctx.channelID, permissionDeniedMessage)
		return false
	}
	return true
}

// async runs a per-item operation on its own goroutine. Completions may
// arrive in any order; Wait joins them all at shutdown.
func (d *Dispatcher) async(fn func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn()
	}()
}

// Wait blocks until every in-flight per-item operation has completed.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// windowStart returns the lower bound of the rolling reporting window
// ending at now.
func (d *Dispatcher) windowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -d.windowDays)
}

func (d *Dispatcher) sendText(channelID, content string) {
	if err := d.chat.SendText(channelID, content); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (d *Dispatcher) sendReply(channelID string, reply *model.Reply) {
	if err := d.chat.SendReply(channelID, reply); err != nil {
		log.Printf("Error sending reply: %v", err)
	}
}

// logError writes to the local operator log and, when configured, the
// webhook log stream.
func (d *Dispatcher) logError(module, operation string, err error) {
	log.Printf("%s: %s: %v", module, operation, err)
	if d.webhookURL == "" {
		return
	}
	if werr := utils.LogError(d.webhookURL, module, operation, err.Error()); werr != nil {
		log.Printf("Failed to send error log: %v", werr)
	}
}
