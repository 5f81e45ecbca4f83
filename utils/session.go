package utils

import (
	"time"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x5865F2 // Discord Blurple

// DiscordSession adapts a discordgo session to the ChatSession interface
// the command handlers are written against.
type DiscordSession struct {
	s *discordgo.Session
}

var _ model.ChatSession = (*DiscordSession)(nil)

func NewDiscordSession(s *discordgo.Session) *DiscordSession {
	return &DiscordSession{s: s}
}

func (d *DiscordSession) SendText(channelID, content string) error {
	_, err := d.s.ChannelMessageSend(channelID, content)
	return err
}

// SendReply renders a structured reply as a message embed.
func (d *DiscordSession) SendReply(channelID string, reply *model.Reply) error {
	embed := &discordgo.MessageEmbed{
		Title:       reply.Title,
		Description: reply.Description,
		Color:       embedColor,
	}
	for _, f := range reply.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Label,
			Value:  f.Content,
			Inline: f.Inline,
		})
	}
	_, err := d.s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (d *DiscordSession) MemberPermissions(userID, channelID string) (int64, error) {
	return d.s.UserChannelPermissions(userID, channelID)
}

func (d *DiscordSession) HeartbeatLatency() time.Duration {
	return d.s.HeartbeatLatency()
}
