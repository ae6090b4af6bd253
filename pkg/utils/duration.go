package utils

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as zero-padded HH:MM:SS, discarding
// sub-second precision.
func FormatDuration(d time.Duration) string {
	totalSeconds := int64(d.Seconds())
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatMinutesSeconds renders a duration the way the log embeds phrase it,
// e.g. "5 minutos e 30 segundos".
func FormatMinutesSeconds(d time.Duration) string {
	totalSeconds := int64(d.Seconds())
	return fmt.Sprintf("%d minutos e %d segundos", totalSeconds/60, totalSeconds%60)
}
