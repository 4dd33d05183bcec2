package resolve

import "strings"

// teamAliases maps the short names used by the stats source to the
// canonical names stored in the teams table.
var teamAliases = map[string]string{
	"Brighton":        "Brighton and Hove Albion",
	"Nott'ham Forest": "Nottingham Forest",
	"Leicester City":  "Leicester",
	"Tottenham":       "Tottenham Hotspur",
}

// sourceTeamAliases maps naming variants seen in scraped snapshot files to
// the names the match importer stores.
var sourceTeamAliases = map[string]string{
	"Manchester Utd":         "Manchester United",
	"Man Utd":                "Manchester United",
	"West Ham Utd":           "West Ham",
	"Brighton & Hove Albion": "Brighton and Hove Albion",
	"Wolves":                 "Wolverhampton Wanderers",
	"Newcastle Utd":          "Newcastle United",
}

// NormalizeSourceTeamName cleans a team name as it appears in snapshot
// files: strips the "Table" scrape artifact, collapses doubled spaces,
// applies the exact alias table, then expands a trailing "Utd".
func NormalizeSourceTeamName(name string) string {
	n := strings.TrimSpace(strings.ReplaceAll(name, "Table", ""))
	for strings.Contains(n, "  ") {
		n = strings.ReplaceAll(n, "  ", " ")
	}
	if canonical, ok := sourceTeamAliases[n]; ok {
		return canonical
	}
	return strings.ReplaceAll(n, " Utd", " United")
}
