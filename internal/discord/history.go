package discord

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"pontobot/internal/models"
	"pontobot/pkg/utils"
)

var (
	errInvalidPeriod = errors.New("invalid period")
	errNoHistory     = errors.New("no history in range")
)

const (
	dateLayout  = "02-01-2006"
	clockLayout = "15:04:05"
)

const invalidPeriodMsg = "Período inválido. Use 'semanal' ou 'mensal'."

// messageCreate handles message creation events
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)

	switch {
	case strings.HasPrefix(content, "!historico"):
		b.handleHistoryCommand(s, m)
	case strings.HasPrefix(content, "!ranking"):
		b.handleRankingCommand(s, m)
	}
}

// handleHistoryCommand handles !historico <periodo> [@usuário]
func (b *Bot) handleHistoryCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	args := strings.Fields(m.Content)
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Formato: !historico <semanal|mensal> [@usuário]")
		return
	}

	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing author id %q: %v", m.Author.ID, err)
		return
	}
	if len(args) >= 3 && utils.IsUserMention(args[2]) {
		if id, err := utils.ParseUserMention(args[2]); err == nil {
			userID = id
		}
	}

	name, avatarURL := memberIdentity(s, m.GuildID, userID)
	embed, err := b.historyReport(userID, args[1], time.Now(), name, avatarURL)
	switch {
	case errors.Is(err, errInvalidPeriod):
		s.ChannelMessageSend(m.ChannelID, invalidPeriodMsg)
	case errors.Is(err, errNoHistory):
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
			"Nenhum histórico encontrado para %s no período especificado.",
			utils.FormatUserMention(userID)))
	case err != nil:
		log.Printf("Error getting history: %v", err)
		s.ChannelMessageSend(m.ChannelID, "Erro ao consultar o histórico.")
	default:
		if err := b.notifier.SendHistory(m.GuildID, embed); err != nil {
			log.Printf("Error sending history report: %v", err)
		}
	}
}

// historyReport validates the period, queries the store and renders the
// report embed. The store is never touched for an invalid period token.
func (b *Bot) historyReport(userID int64, period string, now time.Time, name, avatarURL string) (*discordgo.MessageEmbed, error) {
	start, end, err := utils.PeriodRange(period, now)
	if err != nil {
		return nil, errInvalidPeriod
	}

	records, err := b.store.History(userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNoHistory
	}

	return historyEmbed(name, avatarURL, period, records), nil
}

// handleRankingCommand handles !ranking <periodo>
func (b *Bot) handleRankingCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	args := strings.Fields(m.Content)
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Formato: !ranking <semanal|mensal>")
		return
	}

	start, end, err := utils.PeriodRange(args[1], time.Now())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, invalidPeriodMsg)
		return
	}

	totals, err := b.store.TopTotals(start, end, 10)
	if err != nil {
		log.Printf("Error getting ranking: %v", err)
		s.ChannelMessageSend(m.ChannelID, "Erro ao consultar o ranking.")
		return
	}
	if len(totals) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Nenhum registro encontrado no período especificado.")
		return
	}

	lines := make([]string, 0, len(totals))
	for i, total := range totals {
		lines = append(lines, utils.FormatLeaderboardEntry(i+1,
			utils.FormatUserMention(total.UserID),
			utils.FormatDuration(total.TotalDuration)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Ranking de Permanência (%s)", capitalize(args[1])),
		Description: strings.Join(lines, "\n"),
		Color:       colorJoined,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if err := b.notifier.SendHistory(m.GuildID, embed); err != nil {
		log.Printf("Error sending ranking: %v", err)
	}
}

func historyEmbed(name, avatarURL, period string, records []models.PresenceRecord) *discordgo.MessageEmbed {
	// Discord caps embeds at 25 fields; keep the most recent days.
	if len(records) > 25 {
		records = records[len(records)-25:]
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(records))
	for _, rec := range records {
		joinDate := rec.JoinDate.Format(dateLayout)
		value := fmt.Sprintf(
			"**📅 Data de Entrada:** %s\n"+
				"**⏰ Horário de Entrada:** %s\n"+
				"**📅 Data de Saída:** %s\n"+
				"**⏰ Horário de Saída:** %s\n"+
				"**⏳ Duração:** %s\n"+
				"────────────",
			joinDate,
			clockOrNA(rec.LastJoinTime),
			dateOrNA(rec.LeaveDate),
			clockOrNA(rec.LastLeaveTime),
			utils.FormatDuration(rec.TotalDuration),
		)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Atividade em " + joinDate,
			Value: value,
		})
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Histórico de Atividades de %s (%s)",
			utils.TruncateString(name, 64), capitalize(period)),
		Color:     colorJoined,
		Timestamp: time.Now().Format(time.RFC3339),
		Thumbnail: thumbnail(avatarURL),
		Fields:    fields,
	}
}

func memberIdentity(s *discordgo.Session, guildID string, userID int64) (name, avatarURL string) {
	name = strconv.FormatInt(userID, 10)
	member, err := s.GuildMember(guildID, strconv.FormatInt(userID, 10))
	if err != nil || member.User == nil {
		return name, ""
	}
	if member.Nick != "" {
		name = member.Nick
	} else {
		name = member.User.Username
	}
	return name, member.User.AvatarURL("256")
}

func dateOrNA(t sql.NullTime) string {
	if !t.Valid {
		return "N/A"
	}
	return t.Time.Format(dateLayout)
}

func clockOrNA(t sql.NullTime) string {
	if !t.Valid {
		return "N/A"
	}
	return t.Time.Format(clockLayout)
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
