package entity

import (
	"regexp"
	"time"
)

var (
	finishedPhasePattern = regexp.MustCompile(`(?i)finish`)
	livePhasePattern     = regexp.MustCompile(`(?i)live|inplay|running`)
)

// SourceOpportunity is an externally produced record describing one live
// betting opportunity. It is read-only from this service's perspective; its
// removal from the active feed combined with an appearance in the results
// feed is the "finished" trigger for starred bets.
type SourceOpportunity struct {
	ID        string     `json:"id" firestore:"-"`
	Event     string     `json:"event" firestore:"match"`
	League    string     `json:"league" firestore:"league"`
	Market    string     `json:"market" firestore:"market"`
	Odds      *float64   `json:"odds,omitempty" firestore:"odds"`
	EVPercent *float64   `json:"ev,omitempty" firestore:"evPercent"`
	Bookmaker string     `json:"bookmaker,omitempty" firestore:"bookmaker"`
	Phase     string     `json:"phase,omitempty" firestore:"phase"`
	Kickoff   string     `json:"kickoff,omitempty" firestore:"gameTime"`
	KickoffAt *time.Time `json:"kickoff_at,omitempty" firestore:"-"`
	Message   string     `json:"-" firestore:"message"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
}

// FinishedPhase reports whether the upstream phase marks the event finished.
func (o *SourceOpportunity) FinishedPhase() bool {
	return o.Phase != "" && finishedPhasePattern.MatchString(o.Phase)
}

// LivePhase reports whether the upstream phase marks the event in play.
func (o *SourceOpportunity) LivePhase() bool {
	return o.Phase != "" && livePhasePattern.MatchString(o.Phase)
}

// Started reports whether kickoff has passed. Unknown kickoff counts as not
// started so the opportunity stays visible in the feed.
func (o *SourceOpportunity) Started(now time.Time) bool {
	return o.KickoffAt != nil && !o.KickoffAt.After(now)
}

// Open reports whether the opportunity should appear in the +EV feed: not
// started, not in play and not finished upstream.
func (o *SourceOpportunity) Open(now time.Time) bool {
	return !o.FinishedPhase() && !o.LivePhase() && !o.Started(now)
}
