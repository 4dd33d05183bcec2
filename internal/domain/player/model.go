package player

import "fmt"

// FantasyPosition is the fantasy-game position code assigned by the
// pricing feed. Imported players start as unknown until the feed matches.
type FantasyPosition string

const (
	FantasyGoalkeeper FantasyPosition = "GK"
	FantasyDefender   FantasyPosition = "DEF"
	FantasyMidfielder FantasyPosition = "MID"
	FantasyForward    FantasyPosition = "FWD"
	FantasyUnknown    FantasyPosition = "UNK"
)

var AllFantasyPositions = map[FantasyPosition]struct{}{
	FantasyGoalkeeper: {},
	FantasyDefender:   {},
	FantasyMidfielder: {},
	FantasyForward:    {},
}

// Player is an athlete appearing in match snapshots. Created by the player
// importer from appearance data; position and price arrive later from the
// fantasy pricing feed.
type Player struct {
	ID              int64
	Name            string
	TeamID          int64
	Position        string
	FantasyPosition FantasyPosition
	Price           float64
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("player price cannot be negative")
	}

	return nil
}
