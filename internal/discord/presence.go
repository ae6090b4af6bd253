package discord

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"pontobot/internal/session"
	"pontobot/pkg/utils"
)

const (
	colorJoined  = 0x3498db
	colorLeft    = 0xe74c3c
	colorResumed = 0x2ecc71
)

const stampLayout = "15:04:05 02-01-2006"

// voiceEvent is a voice connection state change, flattened out of the
// discordgo payload so the transition logic does not need a live session.
type voiceEvent struct {
	GuildID   string
	UserID    int64
	Username  string
	Mention   string
	AvatarURL string
	Channel   string
	Connected bool
	At        time.Time
}

// voiceStateUpdate handles voice state updates
func (b *Bot) voiceStateUpdate(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	userID, err := strconv.ParseInt(vs.UserID, 10, 64)
	if err != nil {
		log.Printf("Error parsing user id %q: %v", vs.UserID, err)
		return
	}

	ev := voiceEvent{
		GuildID:   vs.GuildID,
		UserID:    userID,
		Mention:   utils.FormatUserMention(userID),
		Connected: vs.ChannelID != "",
		At:        time.Now(),
	}
	if vs.Member != nil && vs.Member.User != nil {
		ev.Username = vs.Member.User.Username
		ev.AvatarURL = vs.Member.User.AvatarURL("256")
	}
	if ev.Connected {
		ev.Channel = channelName(s, vs.ChannelID)
	} else if vs.BeforeUpdate != nil {
		ev.Channel = channelName(s, vs.BeforeUpdate.ChannelID)
	}

	b.handlePresence(ev)
}

func channelName(s *discordgo.Session, channelID string) string {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch.Name
	}
	return channelID
}

// handlePresence runs one presence transition: tracker first, then exactly
// one store write, then the log embed.
func (b *Bot) handlePresence(ev voiceEvent) {
	if ev.Connected {
		switch b.tracker.Connect(ev.UserID, ev.At) {
		case session.Joined:
			if err := b.store.UpsertJoin(ev.UserID, ev.Username, ev.At); err != nil {
				log.Printf("Error recording join for %d: %v", ev.UserID, err)
			}
			b.sendLog(ev.GuildID, joinedEmbed(ev))
		case session.Resumed:
			if err := b.store.UpsertJoin(ev.UserID, ev.Username, ev.At); err != nil {
				log.Printf("Error recording resume for %d: %v", ev.UserID, err)
			}
			b.sendLog(ev.GuildID, resumedEmbed(ev))
		case session.None:
			// Mute toggles and channel moves land here; the open session
			// keeps its original start.
		}
		return
	}

	openedAt, ok := b.tracker.Disconnect(ev.UserID, ev.At)
	if !ok {
		return
	}

	if err := b.store.Accumulate(ev.UserID, ev.At.Sub(openedAt), ev.At); err != nil {
		log.Printf("Error accumulating duration for %d: %v", ev.UserID, err)
	}
	total, err := b.store.TotalFor(ev.UserID, ev.At)
	if err != nil {
		log.Printf("Error reading day total for %d: %v", ev.UserID, err)
	}
	b.sendLog(ev.GuildID, leftEmbed(ev, openedAt, total))
}

func (b *Bot) sendLog(guildID string, embed *discordgo.MessageEmbed) {
	if err := b.notifier.SendLog(guildID, embed); err != nil {
		log.Printf("Error sending log embed: %v", err)
	}
}

func joinedEmbed(ev voiceEvent) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Usuário Entrou",
		Description: fmt.Sprintf("%s entrou no canal %s", ev.Mention, ev.Channel),
		Color:       colorJoined,
		Timestamp:   ev.At.Format(time.RFC3339),
		Thumbnail:   thumbnail(ev.AvatarURL),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Horário", Value: ev.At.Format(stampLayout)},
		},
	}
}

func resumedEmbed(ev voiceEvent) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Usuário Retomou",
		Description: fmt.Sprintf("%s retomou no canal %s", ev.Mention, ev.Channel),
		Color:       colorResumed,
		Timestamp:   ev.At.Format(time.RFC3339),
		Thumbnail:   thumbnail(ev.AvatarURL),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Horário", Value: ev.At.Format(stampLayout)},
		},
	}
}

func leftEmbed(ev voiceEvent, openedAt time.Time, total time.Duration) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Usuário Saiu",
		Description: fmt.Sprintf("%s saiu do canal %s", ev.Mention, ev.Channel),
		Color:       colorLeft,
		Timestamp:   ev.At.Format(time.RFC3339),
		Thumbnail:   thumbnail(ev.AvatarURL),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Tempo de Permanência", Value: utils.FormatMinutesSeconds(total)},
			{Name: "Horário de Entrada", Value: openedAt.Format(stampLayout)},
			{Name: "Horário de Saída", Value: ev.At.Format(stampLayout)},
		},
	}
}

func thumbnail(url string) *discordgo.MessageEmbedThumbnail {
	if url == "" {
		return nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: url}
}
