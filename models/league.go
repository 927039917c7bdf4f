package models

// Result is the recorded outcome of a fixture. A nil Winner is a draw
type Result struct {
	Score1 int          `json:"score1"`
	Score2 int          `json:"score2"`
	Winner *Participant `json:"winner"`
}

// Fixture is a scheduled pairing in a league style format
type Fixture struct {
	ID           string       `json:"id"`
	Participant1 *Participant `json:"participant1"`
	Participant2 *Participant `json:"participant2"`
	Result       *Result      `json:"result,omitempty"`
	// IsBye marks a fixture with no opponent, Participant1 takes the bye
	IsBye bool `json:"isBye,omitempty"`
}

// Involves reports whether p plays in the fixture
func (f *Fixture) Involves(p *Participant) bool {
	return SameParticipant(f.Participant1, p) || SameParticipant(f.Participant2, p)
}

// ScheduleRound is an ordered batch of fixtures
type ScheduleRound struct {
	RoundNumber int        `json:"roundNumber"`
	Fixtures    []*Fixture `json:"fixtures"`
	// Rest is the participant sitting out this round
	Rest *Participant `json:"rest,omitempty"`
}

// StandingEntry is a row of a standings table
type StandingEntry struct {
	Participant *Participant   `json:"participant"`
	Played      int            `json:"played"`
	Wins        int            `json:"wins"`
	Draws       int            `json:"draws"`
	Losses      int            `json:"losses"`
	Points      int            `json:"points"`
	Tiebreakers map[string]int `json:"tiebreakers,omitempty"`
}

// Group is an independent mini league inside a larger league or hybrid tournament
type Group struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Participants []*Participant   `json:"participants"`
	Schedule     []*ScheduleRound `json:"schedule"`
	Standings    []*StandingEntry `json:"standings"`
}

// Fixtures flattens the group's schedule
func (g *Group) Fixtures() []*Fixture {
	return FlattenFixtures(g.Schedule)
}

// LeagueStructure is the generated schedule of a round robin, swiss or group phase
type LeagueStructure struct {
	Groups      []*Group         `json:"groups,omitempty"`
	Schedule    []*ScheduleRound `json:"schedule"`
	Standings   []*StandingEntry `json:"standings"`
	TotalRounds int              `json:"totalRounds"`
}

// FlattenFixtures returns the fixtures of all rounds in order
func FlattenFixtures(rounds []*ScheduleRound) []*Fixture {
	var fixtures []*Fixture
	for _, r := range rounds {
		fixtures = append(fixtures, r.Fixtures...)
	}
	return fixtures
}
