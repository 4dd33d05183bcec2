package resolve

import (
	"strings"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/domain/team"
)

// TeamIndex maps canonical team names (plus known aliases) to identifiers.
// Built once per run from the full teams table; no state survives a run.
type TeamIndex struct {
	byName map[string]int64
}

func NewTeamIndex(teams []team.Team) *TeamIndex {
	byName := make(map[string]int64, len(teams)+len(teamAliases))
	for _, t := range teams {
		byName[t.Name] = t.ID
	}
	for alias, canonical := range teamAliases {
		if id, ok := byName[canonical]; ok {
			byName[alias] = id
		}
	}
	return &TeamIndex{byName: byName}
}

// Resolve maps a snapshot team name to a stored identifier. Exact match
// only, after alias expansion; a miss is a resolution failure for the
// caller to record, never a fatal error.
func (idx *TeamIndex) Resolve(name string) (int64, bool) {
	id, ok := idx.byName[strings.TrimSpace(name)]
	return id, ok
}

// PlayerIndex maps exact player names to identifiers.
type PlayerIndex struct {
	byName map[string]int64
}

func NewPlayerIndex(players []player.Player) *PlayerIndex {
	byName := make(map[string]int64, len(players))
	for _, p := range players {
		byName[p.Name] = p.ID
	}
	return &PlayerIndex{byName: byName}
}

func (idx *PlayerIndex) Resolve(name string) (int64, bool) {
	id, ok := idx.byName[strings.TrimSpace(name)]
	return id, ok
}

// MatchIndex maps the short identifier embedded in a report URL to the
// stored match. Report URLs look like /en/matches/<id>/<slug>; the id is
// the path segment immediately preceding the trailing one.
type MatchIndex struct {
	byKey map[string]int64
}

func NewMatchIndex(matches []fixture.Match) *MatchIndex {
	byKey := make(map[string]int64, len(matches))
	for _, m := range matches {
		key := MatchKeyFromURL(m.ReportURL)
		if key == "" {
			continue
		}
		byKey[key] = m.ID
	}
	return &MatchIndex{byKey: byKey}
}

func (idx *MatchIndex) Resolve(reportURL string) (int64, bool) {
	return idx.ResolveKey(MatchKeyFromURL(reportURL))
}

// ResolveKey looks up a short match identifier directly, for snapshots
// that carry the id without a full URL.
func (idx *MatchIndex) ResolveKey(key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	id, ok := idx.byKey[key]
	return id, ok
}

// MatchKeyFromURL extracts the short match identifier: the path segment
// preceding the last slash. Works for both .../matches/<id>/<slug> and a
// bare .../matches/<id>/ form.
func MatchKeyFromURL(reportURL string) string {
	parts := strings.Split(strings.TrimSpace(reportURL), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}
