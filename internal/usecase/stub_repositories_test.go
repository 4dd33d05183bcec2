package usecase

import (
	"context"
	"fmt"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/domain/playersummary"
	"github.com/fplstats/cleansheets/internal/domain/season"
	"github.com/fplstats/cleansheets/internal/domain/standings"
	"github.com/fplstats/cleansheets/internal/domain/team"
)

type stubSeasonRepository struct {
	seasons map[string]season.Season
	nextID  int64
	err     error
}

func newStubSeasonRepository(labels ...string) *stubSeasonRepository {
	repo := &stubSeasonRepository{seasons: map[string]season.Season{}}
	for _, label := range labels {
		repo.nextID++
		repo.seasons[label] = season.Season{ID: repo.nextID, Label: label}
	}
	return repo
}

func (s *stubSeasonRepository) GetByLabel(_ context.Context, label string) (season.Season, bool, error) {
	if s.err != nil {
		return season.Season{}, false, s.err
	}
	found, ok := s.seasons[label]
	return found, ok, nil
}

func (s *stubSeasonRepository) Create(_ context.Context, label string) (season.Season, error) {
	if s.err != nil {
		return season.Season{}, s.err
	}
	s.nextID++
	created := season.Season{ID: s.nextID, Label: label}
	s.seasons[label] = created
	return created, nil
}

type stubTeamRepository struct {
	teams  []team.Team
	nextID int64
}

func newStubTeamRepository(names ...string) *stubTeamRepository {
	repo := &stubTeamRepository{}
	for _, name := range names {
		repo.nextID++
		repo.teams = append(repo.teams, team.Team{ID: repo.nextID, Name: name})
	}
	return repo
}

func (s *stubTeamRepository) List(context.Context) ([]team.Team, error) {
	return s.teams, nil
}

func (s *stubTeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	for _, t := range s.teams {
		if t.Name == name {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (s *stubTeamRepository) Create(_ context.Context, name string) (team.Team, error) {
	s.nextID++
	created := team.Team{ID: s.nextID, Name: name}
	s.teams = append(s.teams, created)
	return created, nil
}

type pricingUpdate struct {
	playerID        int64
	position        string
	fantasyPosition player.FantasyPosition
	price           float64
}

type stubPlayerRepository struct {
	players     []player.Player
	updates     []pricingUpdate
	listedIDs   [][]int64
	failPricing map[int64]error
	nextID      int64
}

func newStubPlayerRepository(items ...player.Player) *stubPlayerRepository {
	repo := &stubPlayerRepository{players: items}
	for _, p := range items {
		if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
	}
	return repo
}

func (s *stubPlayerRepository) List(context.Context) ([]player.Player, error) {
	return s.players, nil
}

func (s *stubPlayerRepository) ListByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	s.listedIDs = append(s.listedIDs, ids)
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []player.Player
	for _, p := range s.players {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	s.nextID++
	item.ID = s.nextID
	s.players = append(s.players, item)
	return item, nil
}

func (s *stubPlayerRepository) UpdatePricing(_ context.Context, playerID int64, position string, fantasyPosition player.FantasyPosition, price float64) error {
	if err, ok := s.failPricing[playerID]; ok {
		return err
	}
	s.updates = append(s.updates, pricingUpdate{playerID, position, fantasyPosition, price})
	return nil
}

type stubMatchRepository struct {
	matches []fixture.Match
	// failCreates and failUpdates inject store errors by report URL.
	failCreates map[string]error
	failUpdates map[string]error
	nextID      int64
}

func (s *stubMatchRepository) ListBySeason(_ context.Context, seasonID int64) ([]fixture.Match, error) {
	var out []fixture.Match
	for _, m := range s.matches {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMatchRepository) Exists(_ context.Context, seasonID, homeTeamID, awayTeamID int64) (bool, error) {
	for _, m := range s.matches {
		if m.SeasonID == seasonID && m.HomeTeamID == homeTeamID && m.AwayTeamID == awayTeamID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubMatchRepository) Create(_ context.Context, item fixture.Match) (fixture.Match, error) {
	if err, ok := s.failCreates[item.ReportURL]; ok {
		return fixture.Match{}, err
	}
	s.nextID++
	item.ID = s.nextID
	s.matches = append(s.matches, item)
	return item, nil
}

func (s *stubMatchRepository) UpdateExpectedGoals(_ context.Context, reportURL string, homeNpxG, awayNpxG float64, homeClean, awayClean bool) (int64, error) {
	if err, ok := s.failUpdates[reportURL]; ok {
		return 0, err
	}
	var updated int64
	for i := range s.matches {
		if s.matches[i].ReportURL != reportURL {
			continue
		}
		s.matches[i].HomeNpxG = &homeNpxG
		s.matches[i].AwayNpxG = &awayNpxG
		s.matches[i].HomeExpectedClean = homeClean
		s.matches[i].AwayExpectedClean = awayClean
		updated++
	}
	return updated, nil
}

type stubAppearanceRepository struct {
	rows []appearance.Appearance
	// rowSeason maps a stored row index to its season, mirroring the join
	// through matches the real store performs.
	rowSeason   map[int]int64
	batches     []int
	failBatches map[int]error
	failClean   map[int64]error
	nextID      int64
}

func (s *stubAppearanceRepository) BulkInsert(_ context.Context, items []appearance.Appearance) error {
	batchNo := len(s.batches) + 1
	s.batches = append(s.batches, len(items))
	if err, ok := s.failBatches[batchNo]; ok {
		return err
	}
	for _, item := range items {
		s.nextID++
		item.ID = s.nextID
		s.rows = append(s.rows, item)
	}
	return nil
}

func (s *stubAppearanceRepository) ListBySeason(_ context.Context, seasonID int64) ([]appearance.Appearance, error) {
	if s.rowSeason == nil {
		return s.rows, nil
	}
	var out []appearance.Appearance
	for i, row := range s.rows {
		if s.rowSeason[i] == seasonID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubAppearanceRepository) MarkExpectedClean(_ context.Context, matchID, teamID int64, minMinutes int) (int64, error) {
	if err, ok := s.failClean[matchID]; ok {
		return 0, err
	}
	var updated int64
	for i := range s.rows {
		row := &s.rows[i]
		if row.MatchID != matchID || row.TeamID != teamID {
			continue
		}
		if !row.Started || row.Minutes == nil || *row.Minutes < minMinutes {
			continue
		}
		if !row.ExpectedClean {
			row.ExpectedClean = true
			updated++
		}
	}
	return updated, nil
}

func (s *stubAppearanceRepository) MarkExpectedNonBlank(_ context.Context, seasonID int64, minXGI float64) (int64, error) {
	var updated int64
	for i := range s.rows {
		row := &s.rows[i]
		if s.rowSeason != nil && s.rowSeason[i] != seasonID {
			continue
		}
		if !row.ExpectedClean && row.ExpectedGoalInvolvement < minXGI {
			continue
		}
		if !row.ExpectedNonBlank {
			row.ExpectedNonBlank = true
			updated++
		}
	}
	return updated, nil
}

type stubStandingsRepository struct {
	replaced map[int64][]standings.Row
}

func (s *stubStandingsRepository) ListBySeason(_ context.Context, seasonID int64) ([]standings.Row, error) {
	return s.replaced[seasonID], nil
}

func (s *stubStandingsRepository) Replace(_ context.Context, seasonID int64, rows []standings.Row) error {
	if s.replaced == nil {
		s.replaced = map[int64][]standings.Row{}
	}
	s.replaced[seasonID] = rows
	return nil
}

type stubSummaryRepository struct {
	replaced map[int64][]playersummary.Summary
	err      error
}

func (s *stubSummaryRepository) ListBySeason(_ context.Context, seasonID int64) ([]playersummary.Summary, error) {
	return s.replaced[seasonID], nil
}

func (s *stubSummaryRepository) Replace(_ context.Context, seasonID int64, rows []playersummary.Summary) error {
	if s.err != nil {
		return s.err
	}
	if s.replaced == nil {
		s.replaced = map[int64][]playersummary.Summary{}
	}
	s.replaced[seasonID] = rows
	return nil
}

var errStubFailure = fmt.Errorf("stub failure")
