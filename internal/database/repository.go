package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"pontobot/internal/models"
)

const dateLayout = "2006-01-02"

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// UpsertJoin records a connection event. The first event of a day inserts a
// zero-duration record; later events only move last_join_time. The username
// is captured at first sight and never rewritten.
func (r *Repository) UpsertJoin(userID int64, username string, at time.Time) error {
	_, err := r.db.conn.Exec(`
		INSERT INTO user_times (user_id, username, join_date, last_join_time, total_duration)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (user_id, join_date) DO UPDATE SET last_join_time = EXCLUDED.last_join_time`,
		userID, username, at.Format(dateLayout), at)
	if err != nil {
		return fmt.Errorf("failed to upsert join: %w", err)
	}
	return nil
}

// Accumulate adds a closed interval to the day's total and stamps the leave
// time. Accumulating into a day with no record is a silent no-op.
func (r *Repository) Accumulate(userID int64, delta time.Duration, leaveAt time.Time) error {
	_, err := r.db.conn.Exec(`
		UPDATE user_times
		SET total_duration = total_duration + $1, last_leave_time = $2, leave_date = $3
		WHERE user_id = $4 AND join_date = $3`,
		delta.Nanoseconds(), leaveAt, leaveAt.Format(dateLayout), userID)
	if err != nil {
		return fmt.Errorf("failed to accumulate duration: %w", err)
	}
	return nil
}

// TotalFor returns the accumulated duration for the user on the given day,
// zero when no record exists.
func (r *Repository) TotalFor(userID int64, day time.Time) (time.Duration, error) {
	var ns int64
	err := r.db.conn.QueryRow(
		"SELECT total_duration FROM user_times WHERE user_id = $1 AND join_date = $2",
		userID, day.Format(dateLayout)).Scan(&ns)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to get total duration: %w", err)
	}
	return time.Duration(ns), nil
}

// History returns the user's daily records, oldest first. Zero start and end
// mean no date filter.
func (r *Repository) History(userID int64, start, end time.Time) ([]models.PresenceRecord, error) {
	query := `
		SELECT user_id, username, join_date, last_join_time, leave_date, last_leave_time, total_duration
		FROM user_times
		WHERE user_id = $1`
	args := []interface{}{userID}
	if !start.IsZero() && !end.IsZero() {
		query += " AND join_date BETWEEN $2 AND $3"
		args = append(args, start.Format(dateLayout), end.Format(dateLayout))
	}
	query += " ORDER BY join_date"

	rows, err := r.db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var records []models.PresenceRecord
	for rows.Next() {
		var rec models.PresenceRecord
		var ns int64
		if err := rows.Scan(&rec.UserID, &rec.Username, &rec.JoinDate,
			&rec.LastJoinTime, &rec.LeaveDate, &rec.LastLeaveTime, &ns); err != nil {
			log.Printf("Error scanning history row: %v", err)
			continue
		}
		rec.TotalDuration = time.Duration(ns)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// TopTotals returns the users with the largest summed duration in the
// inclusive date range, heaviest first.
func (r *Repository) TopTotals(start, end time.Time, limit int) ([]models.UserTotal, error) {
	rows, err := r.db.conn.Query(`
		SELECT user_id, MIN(username), SUM(total_duration)
		FROM user_times
		WHERE join_date BETWEEN $1 AND $2
		GROUP BY user_id
		ORDER BY SUM(total_duration) DESC
		LIMIT $3`,
		start.Format(dateLayout), end.Format(dateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top totals: %w", err)
	}
	defer rows.Close()

	var totals []models.UserTotal
	for rows.Next() {
		var total models.UserTotal
		var ns int64
		if err := rows.Scan(&total.UserID, &total.Username, &ns); err != nil {
			log.Printf("Error scanning total row: %v", err)
			continue
		}
		total.TotalDuration = time.Duration(ns)
		totals = append(totals, total)
	}

	return totals, rows.Err()
}
