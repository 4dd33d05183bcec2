package resolve

import (
	"strings"

	"github.com/fplstats/cleansheets/internal/domain/player"
)

// NameVariants generates the bounded candidate set for matching a pricing
// feed (first name, last name) pair against stored player names: the full
// concatenation, each name alone, and the first token of each part
// combined. Variants of length <= 2 are dropped to avoid false positives
// on short tokens.
func NameVariants(firstName, lastName string) []string {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	candidates := []string{
		strings.TrimSpace(firstName + " " + lastName),
		firstName,
		lastName,
	}
	if firstToken(firstName) != firstName || firstToken(lastName) != lastName {
		candidates = append(candidates, strings.TrimSpace(firstToken(firstName)+" "+firstToken(lastName)))
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if len(v) <= 2 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MatchesStoredName reports whether a stored player name is accepted for
// any of the candidate variants. All comparisons are case-insensitive:
// equality, containment in either direction, and (for variants longer than
// 3 characters) first-token equality or token-set membership. Pure so it
// can be tested without the store.
func MatchesStoredName(variants []string, storedName string) bool {
	stored := strings.ToLower(strings.TrimSpace(storedName))
	if stored == "" {
		return false
	}
	storedTokens := strings.Fields(stored)

	for _, variant := range variants {
		v := strings.ToLower(variant)
		if stored == v {
			return true
		}
		if strings.Contains(stored, v) || strings.Contains(v, stored) {
			return true
		}
		if len(v) > 3 {
			if len(storedTokens) > 0 && storedTokens[0] == v {
				return true
			}
			for _, token := range storedTokens {
				if token == v {
					return true
				}
			}
		}
	}
	return false
}

// FindPlayer returns the first stored player accepted by the variant
// rules. First match wins; there is no similarity scoring, so ties resolve
// by iteration order. A known limitation inherited from the matching
// rules, kept deliberately.
func FindPlayer(players []player.Player, firstName, lastName string) (player.Player, bool) {
	variants := NameVariants(firstName, lastName)
	if len(variants) == 0 {
		return player.Player{}, false
	}
	for _, p := range players {
		if MatchesStoredName(variants, p.Name) {
			return p, true
		}
	}
	return player.Player{}, false
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
