package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherReadsLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	data, err := NewFetcher(0).Fetch(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestFetcherMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFetcher(0).Fetch(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDecodeFixturesArray(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"gameweek": 1, "home_team": "Arsenal", "away_team": "Wolves", "match_report_url": "/en/matches/abc123de/Arsenal-Wolves"},
		{"gameweek": 2, "home_team": "Chelsea", "away_team": "Fulham", "match_report_url": null}
	]`)

	fixtures, malformed, err := DecodeFixtures(data)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, fixtures, 2)
	assert.Equal(t, "https://fbref.com/en/matches/abc123de/Arsenal-Wolves", fixtures[0].ReportURL())
	assert.Equal(t, "", fixtures[1].ReportURL())
	require.NotNil(t, fixtures[0].Gameweek)
	assert.Equal(t, 1, *fixtures[0].Gameweek)
}

func TestDecodeFixturesKeyedObject(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"0": {"gameweek": 1, "home_team": "Arsenal", "away_team": "Wolves", "matchReportUrl": "https://fbref.com/en/matches/abc123de/Arsenal-Wolves"}
	}`)

	fixtures, malformed, err := DecodeFixtures(data)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, fixtures, 1)
	assert.Equal(t, "https://fbref.com/en/matches/abc123de/Arsenal-Wolves", fixtures[0].ReportURL())
}

func TestDecodeFixturesDropsEntriesMissingTeams(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"gameweek": 1, "home_team": "", "away_team": "Wolves"},
		{"gameweek": 1, "home_team": "Arsenal", "away_team": "Wolves"}
	]`)

	fixtures, malformed, err := DecodeFixtures(data)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, "Arsenal", fixtures[0].HomeTeam)
	require.Len(t, malformed, 1)
	assert.Contains(t, malformed[0].String(), "fixture 0")
}

func TestDecodeFixturesUnreadableFile(t *testing.T) {
	t.Parallel()

	_, _, err := DecodeFixtures([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeAppearances(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"matchId": "abc123de", "matchUrl": "/en/matches/abc123de/x", "playerName": "Bukayo Saka", "teamName": "Arsenal", "in_squad": true, "started": true, "minutes_played": 90, "npXg": 0.4, "xAG": 0.2},
		{"matchId": "abc123de", "matchUrl": "/en/matches/abc123de/x", "playerName": "Sub Keeper", "teamName": "Arsenal", "in_squad": true, "started": false, "minutes_played": null, "npXg": null, "xAG": null},
		{"matchId": "abc123de", "matchUrl": "/en/matches/abc123de/x", "playerName": "Late Sub", "teamName": "Arsenal", "in_squad": true, "started": false, "minutes_played": "90+2"}
	]`)

	rows, malformed, err := DecodeAppearances(data)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, rows, 3)

	require.True(t, rows[0].Minutes.Valid)
	assert.Equal(t, 90, rows[0].Minutes.Value)
	assert.False(t, rows[1].Minutes.Valid)
	assert.Nil(t, rows[1].Minutes.Ptr())
	require.True(t, rows[2].Minutes.Valid)
	assert.Equal(t, 90, rows[2].Minutes.Value)
}

func TestDecodeAppearancesDropsRowsMissingPlayer(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"matchUrl": "/en/matches/abc123de/x", "playerName": "", "teamName": "Arsenal"},
		{"matchUrl": "/en/matches/abc123de/x", "playerName": "Bukayo Saka", "teamName": "Arsenal"}
	]`)

	rows, malformed, err := DecodeAppearances(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bukayo Saka", rows[0].PlayerName)
	require.Len(t, malformed, 1)
	assert.Contains(t, malformed[0].String(), "row 0")
}

func TestDecodeNpxG(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"https://fbref.com/en/matches/abc123de/Arsenal-Wolves": {
			"home_team_npxg": "1.2", "away_team_npxg": "0.8",
			"home_team_name": "Arsenal", "away_team_name": "Wolves"
		}
	}`)

	byURL, err := DecodeNpxG(data)
	require.NoError(t, err)
	entry, ok := byURL["https://fbref.com/en/matches/abc123de/Arsenal-Wolves"]
	require.True(t, ok)
	assert.Equal(t, "1.2", entry.HomeTeamNpxG)
	assert.Equal(t, "Wolves", entry.AwayTeamName)
}

func TestDecodePrices(t *testing.T) {
	t.Parallel()

	csvData := strings.NewReader(
		"first_name,second_name,element_type,now_cost,extra\n" +
			"Bukayo,Saka,MID,100,ignored\n" +
			"David,Raya,GK,55,ignored\n")

	prices, malformed, err := DecodePrices(csvData)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, prices, 2)
	assert.Equal(t, 10.0, prices[0].Price())
	assert.Equal(t, 5.5, prices[1].Price())
}

func TestDecodePricesDropsUnknownPosition(t *testing.T) {
	t.Parallel()

	csvData := strings.NewReader(
		"first_name,second_name,element_type,now_cost\n" +
			"A,Player,COACH,10\n" +
			"Bukayo,Saka,MID,100\n")

	prices, malformed, err := DecodePrices(csvData)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, "Saka", prices[0].SecondName)
	require.Len(t, malformed, 1)
	assert.Contains(t, malformed[0].String(), "line 2")
}

func TestDecodePricesMissingColumn(t *testing.T) {
	t.Parallel()

	csvData := strings.NewReader("first_name,second_name,now_cost\nA,Player,10\n")
	_, _, err := DecodePrices(csvData)
	assert.Error(t, err)
}

func TestMinutesUnparseableString(t *testing.T) {
	t.Parallel()

	var m Minutes
	require.NoError(t, m.UnmarshalJSON([]byte(`"dnp"`)))
	assert.False(t, m.Valid)
}
