package entity

import (
	"time"
)

// BetStatus is the lifecycle status of a starred bet.
type BetStatus string

const (
	BetStatusActive   BetStatus = "active"
	BetStatusLive     BetStatus = "live"
	BetStatusFinished BetStatus = "finished"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s BetStatus) Valid() bool {
	switch s {
	case BetStatusActive, BetStatusLive, BetStatusFinished:
		return true
	default:
		return false
	}
}

// TimeStatus is the position of a bet relative to its kickoff time.
type TimeStatus string

const (
	TimeStatusUnknown TimeStatus = "unknown"
	TimeStatusPre     TimeStatus = "pre"
	TimeStatusLive    TimeStatus = "live"
	TimeStatusPost    TimeStatus = "post"
)

// LiveWindow is how long after kickoff a bet is considered live.
const LiveWindow = 2 * time.Hour

// TimeStatusAt classifies now against a nullable kickoff time.
func TimeStatusAt(now time.Time, kickoff *time.Time) TimeStatus {
	if kickoff == nil {
		return TimeStatusUnknown
	}

	switch {
	case now.Before(*kickoff):
		return TimeStatusPre
	case !now.After(kickoff.Add(LiveWindow)):
		return TimeStatusLive
	default:
		return TimeStatusPost
	}
}

// StarredBet is a user's saved reference to a sourced betting opportunity.
// Display fields are denormalized copies frozen when the user stars the
// opportunity; only the reconciler mutates status, kickoff text and
// bookmaker afterwards.
type StarredBet struct {
	ID         string     `json:"id" firestore:"-"`
	UserID     string     `json:"user_id" firestore:"-"`
	CreatedAt  time.Time  `json:"created_at" firestore:"createdAt,serverTimestamp"`
	Status     BetStatus  `json:"status" firestore:"status"`
	Event      string     `json:"event" firestore:"event"`
	League     string     `json:"league" firestore:"league"`
	Kickoff    string     `json:"kickoff,omitempty" firestore:"kickoff"`
	Market     string     `json:"market" firestore:"market"`
	Odds       *float64   `json:"odds,omitempty" firestore:"odds"`
	EVPercent  *float64   `json:"ev,omitempty" firestore:"ev"`
	Bookmaker  string     `json:"bookmaker,omitempty" firestore:"bookmaker"`
	Source     string     `json:"source,omitempty" firestore:"source"`
	Message    string     `json:"message,omitempty" firestore:"message"`
	FinishedAt *time.Time `json:"finished_at,omitempty" firestore:"finishedAt"`
}

// EffectiveStatus returns the persisted status, defaulting to active when the
// record predates the status field.
func (b *StarredBet) EffectiveStatus() BetStatus {
	if b.Status == "" {
		return BetStatusActive
	}

	return b.Status
}
