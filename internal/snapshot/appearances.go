package snapshot

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Minutes is a nullable minutes-played value. Scrapes usually emit a JSON
// number or null, but some rows carry stoppage-time strings like "90+2";
// only the leading digits count.
type Minutes struct {
	Value int
	Valid bool
}

func (m *Minutes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		m.Value, m.Valid = 0, false
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return errors.Wrap(err, "decode minutes")
		}
		m.set(s)
		return nil
	}
	var f float64
	if err := sonic.Unmarshal(trimmed, &f); err != nil {
		return errors.Wrap(err, "decode minutes")
	}
	m.Value, m.Valid = int(f), true
	return nil
}

func (m *Minutes) set(raw string) {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		m.Value, m.Valid = 0, false
		return
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		m.Value, m.Valid = 0, false
		return
	}
	m.Value, m.Valid = n, true
}

// Ptr adapts the value for storage columns that use a nullable pointer.
func (m Minutes) Ptr() *int {
	if !m.Valid {
		return nil
	}
	v := m.Value
	return &v
}

// Appearance is one player row from an appearance snapshot: whether the
// player was in the squad and started, plus the per-match underlying
// numbers where the scrape could read them.
type Appearance struct {
	MatchID    string   `json:"matchId"`
	MatchURL   string   `json:"matchUrl" validate:"required"`
	PlayerName string   `json:"playerName" validate:"required"`
	TeamName   string   `json:"teamName" validate:"required"`
	InSquad    bool     `json:"in_squad"`
	Started    bool     `json:"started"`
	Minutes    Minutes  `json:"minutes_played"`
	NpxG       *float64 `json:"npXg"`
	XAG        *float64 `json:"xAG"`
}

// DecodeAppearances parses an appearance snapshot. Rows that fail
// validation are dropped and reported as issues.
func DecodeAppearances(data []byte) ([]Appearance, []DecodeIssue, error) {
	var rows []Appearance
	if err := sonic.Unmarshal(data, &rows); err != nil {
		return nil, nil, errors.Wrap(err, "decode appearances snapshot")
	}

	validate := validator.New()
	kept := make([]Appearance, 0, len(rows))
	var issues []DecodeIssue
	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			issues = append(issues, DecodeIssue{Entry: fmt.Sprintf("row %d", i), Reason: err.Error()})
			continue
		}
		kept = append(kept, row)
	}
	return kept, issues, nil
}
