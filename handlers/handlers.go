package handlers

import (
	"log"

	"github.com/TristanFaureY/cath-ticket-bot/bot"
	"github.com/TristanFaureY/cath-ticket-bot/utils"
	"github.com/bwmarrin/discordgo"
)

// Register wires the dispatcher to the bot's session and returns it so
// the caller can drain in-flight work at shutdown.
func Register(b *bot.Bot) *Dispatcher {
	d := NewDispatcher(utils.NewDiscordSession(b.Session), b.Store, b.Config)

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		if b.Config.LogWebhookURL != "" {
			if err := utils.LogInfo(b.Config.LogWebhookURL, "System", "Startup", "Bot has started successfully."); err != nil {
				log.Printf("Failed to send startup log: %v", err)
			}
		}
	})

	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author != nil && m.Author.ID == s.State.User.ID {
			return
		}
		d.HandleMessage(m.GuildID, m.ChannelID, m.Author, m.Content, m.Mentions)
	})

	return d
}
