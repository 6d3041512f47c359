package timesync

import "time"

const (
	// ResyncInterval is how long locally predicted time is trusted before a
	// fresh server sample is due.
	ResyncInterval = 30 * time.Second

	// DriftTolerance is the largest disagreement between predicted and
	// server-reported remaining time that a regular resync may absorb.
	// Beyond it the state must be replaced immediately.
	DriftTolerance = 5 * time.Second
)

// ComputeOffset estimates the signed offset between the local clock and the
// server clock from one request/response sample, using the round-trip
// midpoint as the instant the server captured its timestamp. The estimate
// satisfies server_time ≈ local_time − offset.
func ComputeOffset(serverTime, sentAt, receivedAt time.Time) time.Duration {
	rtt := receivedAt.Sub(sentAt)
	return receivedAt.Sub(serverTime.Add(rtt / 2))
}

// TimerState is a local mirror of the server clock for one running timer.
// It is a value: every resync or pause produces a fresh state instead of
// patching the old one, so drift never compounds across syncs.
type TimerState struct {
	// ServerStart is the effective start instant on the server's clock,
	// back-computed so that local-only ticking reproduces the server's
	// authoritative remaining time.
	ServerStart time.Time
	Limit       time.Duration
	Offset      time.Duration
	SyncedAt    time.Time
	Paused      bool
	PausedAt    time.Time
}

// NewTimerState builds a TimerState from a server-reported remaining budget.
// The effective start is now − offset − (limit − remaining): ticking from it
// yields exactly `remaining` at `now` with no further network calls.
func NewTimerState(offset, limit, remaining time.Duration, now time.Time) TimerState {
	return TimerState{
		ServerStart: now.Add(-offset).Add(-(limit - remaining)),
		Limit:       limit,
		Offset:      offset,
		SyncedAt:    now,
	}
}

// Remaining converts a local instant to server time and reports what is left
// of the budget. Never negative.
func (s TimerState) Remaining(now time.Time) time.Duration {
	if s.Paused {
		now = s.PausedAt
	}
	serverNow := now.Add(-s.Offset)
	left := s.Limit - serverNow.Sub(s.ServerStart)
	if left < 0 {
		return 0
	}
	return left
}

// NeedsResync reports whether the last server sample is stale.
func (s TimerState) NeedsResync(now time.Time) bool {
	return now.Sub(s.SyncedAt) >= ResyncInterval
}

// ExcessiveDrift reports whether a fresh server remaining disagrees with the
// local prediction by more than the tolerance, in either direction. Callers
// must respond by replacing the state, not by nudging it.
func (s TimerState) ExcessiveDrift(now time.Time, serverRemaining time.Duration) bool {
	diff := s.Remaining(now) - serverRemaining
	if diff < 0 {
		diff = -diff
	}
	return diff > DriftTolerance
}

// Pause freezes the timer at now. Display-only: the server budget keeps
// running regardless.
func (s TimerState) Pause(now time.Time) TimerState {
	s.Paused = true
	s.PausedAt = now
	return s
}

// RemainingSeconds is the server-side form: what is left of a stored budget
// given its recorded start. Clamped at zero so an expired timer reads as 0,
// not as debt.
func RemainingSeconds(startedAt time.Time, limitSeconds int, now time.Time) int {
	elapsed := int(now.Sub(startedAt) / time.Second)
	left := limitSeconds - elapsed
	if left < 0 {
		return 0
	}
	return left
}
