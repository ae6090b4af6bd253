package discord

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"pontobot/internal/models"
)

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func TestHistoryReportRejectsUnknownPeriodWithoutQuerying(t *testing.T) {
	store := &fakeStore{}
	bot := newTestBot(store, &captureNotifier{})

	_, err := bot.historyReport(7, "diario", t0, "ana", "")
	if !errors.Is(err, errInvalidPeriod) {
		t.Fatalf("err = %v, want errInvalidPeriod", err)
	}
	if store.historyCalls != 0 {
		t.Errorf("store queried %d times for an invalid period", store.historyCalls)
	}
}

func TestHistoryReportEmptyRange(t *testing.T) {
	store := &fakeStore{}
	bot := newTestBot(store, &captureNotifier{})

	_, err := bot.historyReport(7, "semanal", t0, "ana", "")
	if !errors.Is(err, errNoHistory) {
		t.Fatalf("err = %v, want errNoHistory", err)
	}
	if store.historyCalls != 1 {
		t.Errorf("store queried %d times, want 1", store.historyCalls)
	}
}

func TestHistoryReportRendersRecords(t *testing.T) {
	joinAt := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	leaveAt := joinAt.Add(5*time.Minute + 30*time.Second)
	store := &fakeStore{
		records: []models.PresenceRecord{
			{
				UserID:        7,
				Username:      "ana",
				JoinDate:      joinAt,
				LastJoinTime:  nullTime(joinAt),
				LeaveDate:     nullTime(leaveAt),
				LastLeaveTime: nullTime(leaveAt),
				TotalDuration: 5*time.Minute + 30*time.Second,
			},
			{
				// Still connected: no leave columns yet.
				UserID:       7,
				Username:     "ana",
				JoinDate:     joinAt.AddDate(0, 0, 1),
				LastJoinTime: nullTime(joinAt.AddDate(0, 0, 1)),
			},
		},
	}
	bot := newTestBot(store, &captureNotifier{})

	embed, err := bot.historyReport(7, "semanal", t0, "ana", "")
	if err != nil {
		t.Fatalf("historyReport error: %v", err)
	}
	if embed.Title != "Histórico de Atividades de ana (Semanal)" {
		t.Errorf("title = %q", embed.Title)
	}
	if len(embed.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(embed.Fields))
	}
	first := embed.Fields[0].Value
	for _, want := range []string{"11-03-2024", "09:00:00", "09:05:30", "00:05:30"} {
		if !strings.Contains(first, want) {
			t.Errorf("first field missing %q:\n%s", want, first)
		}
	}
	second := embed.Fields[1].Value
	if !strings.Contains(second, "N/A") {
		t.Errorf("open day should render N/A leave fields:\n%s", second)
	}
	if !strings.Contains(second, "00:00:00") {
		t.Errorf("open day should render a zero duration:\n%s", second)
	}
}

func TestHistoryReportClampsToEmbedFieldLimit(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 31; i++ {
		store.records = append(store.records, models.PresenceRecord{
			UserID:   7,
			Username: "ana",
			JoinDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		})
	}
	bot := newTestBot(store, &captureNotifier{})

	embed, err := bot.historyReport(7, "mensal", t0, "ana", "")
	if err != nil {
		t.Fatalf("historyReport error: %v", err)
	}
	if len(embed.Fields) != 25 {
		t.Errorf("got %d fields, want 25", len(embed.Fields))
	}
	// The most recent days survive the clamp.
	if got := embed.Fields[24].Name; got != "Atividade em 31-03-2024" {
		t.Errorf("last field = %q", got)
	}
}
