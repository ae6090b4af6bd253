package models

import (
	"database/sql"
	"time"
)

// PresenceRecord is one user's accumulated voice presence for a calendar day.
// The leave columns stay NULL until the first disconnect of that day.
type PresenceRecord struct {
	UserID        int64
	Username      string
	JoinDate      time.Time
	LastJoinTime  sql.NullTime
	LeaveDate     sql.NullTime
	LastLeaveTime sql.NullTime
	TotalDuration time.Duration
}

// UserTotal is a user's summed presence over a date range
type UserTotal struct {
	UserID        int64
	Username      string
	TotalDuration time.Duration
}
