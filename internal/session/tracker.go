package session

import "time"

// Transition is the outcome of a connect event.
type Transition int

const (
	// None means the user was already connected; nothing changed.
	None Transition = iota
	// Joined means a fresh session was opened.
	Joined
	// Resumed means the user reconnected within the resume window.
	Resumed
)

// Tracker keeps per-user in-memory session state: when each connected user
// joined, and when each recently disconnected user left. Entries live for the
// process lifetime at most. The tracker is mutated only by the presence
// handler and is not safe for concurrent use.
type Tracker struct {
	connected    map[int64]time.Time
	paused       map[int64]time.Time
	resumeWindow time.Duration
}

// New creates a tracker. Disconnected users who reconnect within resumeWindow
// are treated as resuming rather than freshly joining.
func New(resumeWindow time.Duration) *Tracker {
	return &Tracker{
		connected:    make(map[int64]time.Time),
		paused:       make(map[int64]time.Time),
		resumeWindow: resumeWindow,
	}
}

// Connect opens or resumes a session for the user at now. Connecting while
// already connected is a no-op.
func (t *Tracker) Connect(userID int64, now time.Time) Transition {
	if _, ok := t.connected[userID]; ok {
		return None
	}

	pausedAt, wasPaused := t.paused[userID]
	delete(t.paused, userID)
	t.connected[userID] = now

	if wasPaused && now.Sub(pausedAt) <= t.resumeWindow {
		return Resumed
	}
	return Joined
}

// Disconnect closes the user's open session and parks them in the paused set.
// ok is false when no session was open.
func (t *Tracker) Disconnect(userID int64, now time.Time) (openedAt time.Time, ok bool) {
	openedAt, ok = t.connected[userID]
	if !ok {
		return time.Time{}, false
	}

	delete(t.connected, userID)
	t.paused[userID] = now
	return openedAt, true
}

// ConnectedSince reports when the user's open session started.
func (t *Tracker) ConnectedSince(userID int64) (time.Time, bool) {
	openedAt, ok := t.connected[userID]
	return openedAt, ok
}
