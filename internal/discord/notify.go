package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Notifier delivers embeds to a guild's well-known channels. Delivery is
// fire-and-forget from the caller's point of view: a failed send is reported
// but never undoes the store write that preceded it.
type Notifier interface {
	SendLog(guildID string, embed *discordgo.MessageEmbed) error
	SendHistory(guildID string, embed *discordgo.MessageEmbed) error
}

// channelNotifier resolves channels by name in the session state, creating
// them on first use.
type channelNotifier struct {
	session     *discordgo.Session
	logName     string
	historyName string
}

func (n *channelNotifier) SendLog(guildID string, embed *discordgo.MessageEmbed) error {
	return n.send(guildID, n.logName, embed)
}

func (n *channelNotifier) SendHistory(guildID string, embed *discordgo.MessageEmbed) error {
	return n.send(guildID, n.historyName, embed)
}

func (n *channelNotifier) send(guildID, name string, embed *discordgo.MessageEmbed) error {
	channelID, err := n.getOrCreateChannel(guildID, name)
	if err != nil {
		return err
	}
	if _, err := n.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("failed to send to #%s: %w", name, err)
	}
	return nil
}

func (n *channelNotifier) getOrCreateChannel(guildID, name string) (string, error) {
	if guild, err := n.session.State.Guild(guildID); err == nil {
		for _, ch := range guild.Channels {
			if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
				return ch.ID, nil
			}
		}
	}

	ch, err := n.session.GuildChannelCreate(guildID, name, discordgo.ChannelTypeGuildText)
	if err != nil {
		return "", fmt.Errorf("failed to create channel %q: %w", name, err)
	}
	return ch.ID, nil
}
