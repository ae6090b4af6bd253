package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"pontobot/internal/models"
	"pontobot/internal/session"
)

// Store is the persistence surface the bot drives. *database.Repository
// satisfies it; tests substitute a fake.
type Store interface {
	UpsertJoin(userID int64, username string, at time.Time) error
	Accumulate(userID int64, delta time.Duration, leaveAt time.Time) error
	TotalFor(userID int64, day time.Time) (time.Duration, error)
	History(userID int64, start, end time.Time) ([]models.PresenceRecord, error)
	TopTotals(start, end time.Time, limit int) ([]models.UserTotal, error)
}

// Bot represents the Discord bot
type Bot struct {
	session  *discordgo.Session
	store    Store
	tracker  *session.Tracker
	notifier Notifier
}

// New creates a new Discord bot
func New(token string, store Store, logChannel, historyChannel string, resumeWindow time.Duration) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	bot := &Bot{
		session: s,
		store:   store,
		tracker: session.New(resumeWindow),
		notifier: &channelNotifier{
			session:     s,
			logName:     logChannel,
			historyName: historyChannel,
		},
	}

	s.AddHandler(bot.voiceStateUpdate)
	s.AddHandler(bot.messageCreate)

	return bot, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	return b.session.Close()
}
