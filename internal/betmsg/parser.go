package betmsg

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parsed holds the fields extracted from one alert message. Pointers are nil
// when the message does not carry the field.
type Parsed struct {
	Event       string
	League      string
	Kickoff     string
	KickoffAt   *time.Time
	Selection   string
	EVPercent   *float64
	FairOdds    *float64
	OfferOdds   *float64
	Bookmaker   string
	Link        string
	LastUpdated string
}

var (
	numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)
	linkPattern   = regexp.MustCompile(`(?i)\[Link til odds\]\(([^)]+)\)`)
)

// ParseMessage extracts structured bet fields from an alert message. The
// scanner emits Danish labels with Markdown bold markers; English fallbacks
// cover the newer message format.
func ParseMessage(message string) Parsed {
	if message == "" {
		return Parsed{}
	}

	p := Parsed{
		Event:       grabAny(message, "Kamp", "Match"),
		League:      grabAny(message, "Liga", "League"),
		Kickoff:     grabAny(message, "Spilletid", "KO"),
		Selection:   grabAny(message, "Kampvinder", "Pick"),
		EVPercent:   number(grabAny(message, "EV")),
		FairOdds:    number(grabAny(message, "Fair odds")),
		OfferOdds:   number(grabAny(message, "Tilbudt odds", "Odds")),
		Bookmaker:   grabAny(message, "Bookmaker"),
		LastUpdated: grabAny(message, "Sidst opdateret"),
	}

	if m := linkPattern.FindStringSubmatch(message); m != nil {
		p.Link = m[1]
	}

	p.KickoffAt = ParseKickoff(p.Kickoff)

	return p
}

// grabAny matches "Label: value", "*Label*: value" and "Label:* value*"
// variants for the first label that yields a value.
func grabAny(text string, labels ...string) string {
	for _, label := range labels {
		re := regexp.MustCompile(`(?i)(?:\*?` + regexp.QuoteMeta(label) + `\*?)\s*[:=]\s*\*?([^\*\n]+)\*?`)
		if m := re.FindStringSubmatch(text); m != nil {
			return unstar(m[1])
		}
	}

	return ""
}

func unstar(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "*", ""))
}

func number(s string) *float64 {
	if s == "" {
		return nil
	}

	m := numberPattern.FindString(strings.ReplaceAll(s, ",", "."))
	if m == "" {
		return nil
	}

	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}

	return &n
}
