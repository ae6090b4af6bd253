package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUserMention formats a numeric user ID as a Discord mention
func FormatUserMention(userID int64) string {
	return fmt.Sprintf("<@%d>", userID)
}

// ParseUserMention extracts the numeric user ID from a Discord mention
func ParseUserMention(mention string) (int64, error) {
	id := strings.TrimPrefix(mention, "<@")
	id = strings.TrimSuffix(id, ">")
	// Nickname mentions carry a ! marker
	id = strings.TrimPrefix(id, "!")
	return strconv.ParseInt(id, 10, 64)
}

// IsUserMention checks if a string looks like a user mention
func IsUserMention(text string) bool {
	return strings.HasPrefix(text, "<@") && strings.HasSuffix(text, ">")
}

// FormatLeaderboardEntry formats a leaderboard entry with rank, user, and duration
func FormatLeaderboardEntry(rank int, userMention, duration string) string {
	medal := ""
	switch rank {
	case 1:
		medal = "🥇"
	case 2:
		medal = "🥈"
	case 3:
		medal = "🥉"
	default:
		medal = fmt.Sprintf("%d.", rank)
	}

	return fmt.Sprintf("%s %s - %s", medal, userMention, duration)
}

// TruncateString truncates a string to max length and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
