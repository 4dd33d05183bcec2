package snapshot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// statsSourceBaseURL prefixes relative report paths so every stored URL is
// absolute.
const statsSourceBaseURL = "https://fbref.com"

// Fixture is one scheduled match as emitted by the fixtures scrape. The
// report URL is null for matches that have not been played yet, and older
// snapshots use a camelCase key for it.
type Fixture struct {
	Gameweek          *int    `json:"gameweek"`
	HomeTeam          string  `json:"home_team" validate:"required"`
	AwayTeam          string  `json:"away_team" validate:"required"`
	MatchReportURL    *string `json:"match_report_url"`
	MatchReportURLAlt *string `json:"matchReportUrl"`
}

// ReportURL returns the absolute report URL, or "" when the fixture has
// none yet.
func (f Fixture) ReportURL() string {
	raw := f.MatchReportURL
	if raw == nil {
		raw = f.MatchReportURLAlt
	}
	if raw == nil {
		return ""
	}
	return AbsoluteReportURL(*raw)
}

// AbsoluteReportURL expands a path-only report URL against the stats
// source host. Already-absolute URLs pass through unchanged.
func AbsoluteReportURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "/") {
		return statsSourceBaseURL + raw
	}
	return raw
}

// DecodeFixtures parses a fixtures snapshot. The file is either a JSON
// array of fixtures or an object keyed by an opaque label; both forms
// decode to the same slice. Entries that fail validation are dropped and
// reported as issues instead of failing the file.
func DecodeFixtures(data []byte) ([]Fixture, []DecodeIssue, error) {
	var fixtures []Fixture
	if err := sonic.Unmarshal(data, &fixtures); err != nil {
		var keyed map[string]Fixture
		if mapErr := sonic.Unmarshal(data, &keyed); mapErr != nil {
			return nil, nil, errors.Wrap(err, "decode fixtures snapshot")
		}
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fixtures = make([]Fixture, 0, len(keyed))
		for _, k := range keys {
			fixtures = append(fixtures, keyed[k])
		}
	}

	validate := validator.New()
	kept := make([]Fixture, 0, len(fixtures))
	var issues []DecodeIssue
	for i, f := range fixtures {
		if err := validate.Struct(f); err != nil {
			issues = append(issues, DecodeIssue{Entry: fmt.Sprintf("fixture %d", i), Reason: err.Error()})
			continue
		}
		kept = append(kept, f)
	}
	return kept, issues, nil
}
