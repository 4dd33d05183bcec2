package snapshot

import (
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// MatchNpxG holds the non-penalty expected goals scraped for one match.
// The numbers arrive as decimal strings exactly as the source renders
// them; parsing is left to the consumer so an unparseable value can be
// reported per match instead of failing the whole file.
type MatchNpxG struct {
	HomeTeamNpxG string `json:"home_team_npxg"`
	AwayTeamNpxG string `json:"away_team_npxg"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamName string `json:"away_team_name"`
}

// DecodeNpxG parses an expected-goals snapshot: an object keyed by the
// absolute match report URL.
func DecodeNpxG(data []byte) (map[string]MatchNpxG, error) {
	var byURL map[string]MatchNpxG
	if err := sonic.Unmarshal(data, &byURL); err != nil {
		return nil, errors.Wrap(err, "decode expected-goals snapshot")
	}
	return byURL, nil
}
