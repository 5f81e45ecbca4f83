package bot

import (
	"log"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"github.com/bwmarrin/discordgo"
)

// Bot owns the discord session and the occurrence store handle. Both
// collaborators are constructed by the caller and injected here.
type Bot struct {
	Session *discordgo.Session
	Store   model.OccurrenceStore
	Config  *model.Config
}

func New(cfg *model.Config, store model.OccurrenceStore) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	dg.StateEnabled = false

	return &Bot{
		Session: dg,
		Store:   store,
		Config:  cfg,
	}, nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.Session.Close()
}
