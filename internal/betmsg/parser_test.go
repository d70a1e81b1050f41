package betmsg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const danishMessage = `*Kamp*: Brøndby - FCK
*Liga*: Superligaen
*Spilletid*: 21.00 26.08.2025
*Kampvinder*: Brøndby
*EV*: 4,2%
*Fair odds*: 2.10
*Tilbudt odds*: 2.35
*Bookmaker*: Bet365
[Link til odds](https://example.com/odds/123)
*Sidst opdateret*: 19:45`

func TestParseMessage_DanishLabels(t *testing.T) {
	p := ParseMessage(danishMessage)

	assert.Equal(t, "Brøndby - FCK", p.Event)
	assert.Equal(t, "Superligaen", p.League)
	assert.Equal(t, "Brøndby", p.Selection)
	assert.Equal(t, "Bet365", p.Bookmaker)
	assert.Equal(t, "https://example.com/odds/123", p.Link)
	assert.Equal(t, "19:45", p.LastUpdated)

	require.NotNil(t, p.EVPercent)
	assert.InDelta(t, 4.2, *p.EVPercent, 0.001)
	require.NotNil(t, p.FairOdds)
	assert.InDelta(t, 2.10, *p.FairOdds, 0.001)
	require.NotNil(t, p.OfferOdds)
	assert.InDelta(t, 2.35, *p.OfferOdds, 0.001)

	require.NotNil(t, p.KickoffAt)
	expected := time.Date(2025, time.August, 26, 21, 0, 0, 0, time.Local)
	assert.True(t, p.KickoffAt.Equal(expected))
}

func TestParseMessage_EnglishFallbacks(t *testing.T) {
	p := ParseMessage("Match: Arsenal - Spurs\nLeague: Premier League\nKO: 18:30 1.9.2025\nPick: Arsenal\nOdds: 1.95")

	assert.Equal(t, "Arsenal - Spurs", p.Event)
	assert.Equal(t, "Premier League", p.League)
	assert.Equal(t, "Arsenal", p.Selection)
	require.NotNil(t, p.OfferOdds)
	assert.InDelta(t, 1.95, *p.OfferOdds, 0.001)
	require.NotNil(t, p.KickoffAt)
	assert.Equal(t, time.September, p.KickoffAt.Month())
}

func TestParseMessage_Empty(t *testing.T) {
	p := ParseMessage("")

	assert.Empty(t, p.Event)
	assert.Nil(t, p.EVPercent)
	assert.Nil(t, p.KickoffAt)
}

func TestParseKickoff(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *time.Time
	}{
		{
			name: "colon clock",
			text: "21:00 26.08.2025",
			want: timePtr(time.Date(2025, time.August, 26, 21, 0, 0, 0, time.Local)),
		},
		{
			name: "dot clock",
			text: "9.05 3.1.2026",
			want: timePtr(time.Date(2026, time.January, 3, 9, 5, 0, 0, time.Local)),
		},
		{
			name: "garbage",
			text: "tomorrow evening",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseKickoff(tc.text)
			if tc.want == nil {
				assert.Nil(t, got)

				return
			}

			require.NotNil(t, got)
			assert.True(t, got.Equal(*tc.want))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
