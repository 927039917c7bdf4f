package tournament

import (
	"fmt"
	"sort"

	"github.com/justinjudd/tourney/models"
)

// swissSearchBudget caps the backtracking pairing search so a round is always produced quickly
const swissSearchBudget = 200000

// Swiss fulfills the Format interface. Participants play a fixed number of rounds against opponents on a similar score, never meeting twice when it can be avoided
type Swiss struct{}

func (Swiss) Type() models.FormatType {
	return models.FormatSwiss
}

func (Swiss) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatSwiss,
		Participants: participants,
		Options:      &models.SwissOptions{Rounds: SwissRounds(len(participants))},
	}
}

func (Swiss) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 2)
	if cfg.Options == nil {
		return r
	}
	opts, ok := cfg.Options.(*models.SwissOptions)
	if !ok {
		r.Add("options", models.CodeInvalidOption, "expected swiss options, got %s", cfg.Options.Format())
		return r
	}
	if opts.Rounds < 0 {
		r.Add("rounds", models.CodeInvalidRange, "rounds cannot be negative")
	} else if n := len(cfg.Participants); n >= 2 && opts.Rounds > n-1 {
		r.Add("rounds", models.CodeInvalidRange, "%d participants cannot play %d rounds without repeats", n, opts.Rounds)
	}
	validateScoring(&r, opts.Scoring, opts.Tiebreakers)
	return r
}

func (s Swiss) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.SwissOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.SwissOptions); !ok {
			return nil, optionsMismatch(s.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format: models.FormatSwiss,
		League: GenerateSwiss(cfg.Participants, *opts),
	}, nil
}

// SwissRounds is the customary number of rounds for n participants, ceil(log2 n)
func SwissRounds(n int) int {
	if n < 2 {
		return 0
	}
	return log2(nextPowerOfTwo(n))
}

// GenerateSwiss pairs the first round. Later rounds depend on results and are added by AdvanceSwiss
func GenerateSwiss(participants []*models.Participant, opts models.SwissOptions) *models.LeagueStructure {
	league := &models.LeagueStructure{Schedule: []*models.ScheduleRound{}, TotalRounds: opts.Rounds}
	if league.TotalRounds == 0 {
		league.TotalRounds = SwissRounds(len(participants))
	}
	scoring := models.ScoringOrDefault(opts.Scoring)
	if len(participants) >= 2 && league.TotalRounds > 0 {
		league.Schedule = append(league.Schedule, PairSwissRound(participants, nil, 1, scoring))
	}
	league.Standings = ComputeStandings(participants, models.FlattenFixtures(league.Schedule), scoring, swissTiebreakers(opts))
	return league
}

// AdvanceSwiss returns a new league with the next round paired from the results recorded so far. The given league is left untouched, once every round is paired it is returned with fresh standings only
func AdvanceSwiss(participants []*models.Participant, opts models.SwissOptions, league *models.LeagueStructure) *models.LeagueStructure {
	scoring := models.ScoringOrDefault(opts.Scoring)
	next := &models.LeagueStructure{
		Schedule:    append([]*models.ScheduleRound{}, league.Schedule...),
		TotalRounds: league.TotalRounds,
	}
	if len(participants) >= 2 && len(next.Schedule) < next.TotalRounds {
		next.Schedule = append(next.Schedule, PairSwissRound(participants, league.Schedule, len(league.Schedule)+1, scoring))
	}
	next.Standings = ComputeStandings(participants, models.FlattenFixtures(next.Schedule), scoring, swissTiebreakers(opts))
	return next
}

func swissTiebreakers(opts models.SwissOptions) []models.Tiebreaker {
	if len(opts.Tiebreakers) == 0 {
		return []models.Tiebreaker{models.TiebreakHeadToHead, models.TiebreakScoreDifference}
	}
	return opts.Tiebreakers
}

type pairKey struct {
	a, b string
}

func newPairKey(a, b *models.Participant) pairKey {
	if a.ID > b.ID {
		a, b = b, a
	}
	return pairKey{a.ID, b.ID}
}

// PairSwissRound pairs one round. Participants are ordered into score groups, highest points first, keeping their incoming order inside a group.
// Each unpaired participant takes the first participant below them they have not met yet, or simply the next one when everybody left is a rematch.
// When that greedy pass would force a rematch, or hand a second bye to someone, a backtracking search looks for a pairing without either; the greedy pairing stands whenever it is already clean.
// An odd participant out receives a bye, recorded as a fixture with a result so the standings award bye points
func PairSwissRound(participants []*models.Participant, previous []*models.ScheduleRound, roundNumber int, scoring models.Scoring) *models.ScheduleRound {
	var players []*models.Participant
	for _, p := range participants {
		if p != nil {
			players = append(players, p)
		}
	}
	round := &models.ScheduleRound{RoundNumber: roundNumber, Fixtures: []*models.Fixture{}}
	if len(players) < 2 {
		return round
	}

	fixtures := models.FlattenFixtures(previous)
	points := map[string]int{}
	for _, e := range ComputeStandings(players, fixtures, scoring, nil) {
		points[e.Participant.ID] = e.Points
	}
	met := map[pairKey]bool{}
	hadBye := map[string]bool{}
	for _, f := range fixtures {
		if f.IsBye {
			if f.Participant1 != nil {
				hadBye[f.Participant1.ID] = true
			}
			continue
		}
		if f.Participant1 != nil && f.Participant2 != nil {
			met[newPairKey(f.Participant1, f.Participant2)] = true
		}
	}

	ordered := make([]*models.Participant, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool {
		return points[ordered[i].ID] > points[ordered[j].ID]
	})

	pairs, bye, rematches := greedySwissPairs(ordered, met)
	if rematches > 0 || (bye != nil && hadBye[bye.ID]) {
		if p, b, ok := searchSwissPairs(ordered, met, hadBye, true); ok {
			pairs, bye = p, b
		} else if rematches > 0 {
			if p, b, ok := searchSwissPairs(ordered, met, hadBye, false); ok {
				pairs, bye = p, b
			}
		}
	}

	for _, pair := range pairs {
		round.Fixtures = append(round.Fixtures, &models.Fixture{
			ID:           fmt.Sprintf("s%d-f%d", roundNumber, len(round.Fixtures)+1),
			Participant1: pair[0],
			Participant2: pair[1],
		})
	}
	if bye != nil {
		round.Rest = bye
		round.Fixtures = append(round.Fixtures, &models.Fixture{
			ID:           fmt.Sprintf("s%d-bye", roundNumber),
			Participant1: bye,
			Result:       &models.Result{Winner: bye},
			IsBye:        true,
		})
	}
	return round
}

// greedySwissPairs pairs front to back, returning the pairs, the participant left over and how many rematches were forced
func greedySwissPairs(ordered []*models.Participant, met map[pairKey]bool) ([][2]*models.Participant, *models.Participant, int) {
	paired := make([]bool, len(ordered))
	var pairs [][2]*models.Participant
	var bye *models.Participant
	rematches := 0

	for i, p := range ordered {
		if paired[i] {
			continue
		}
		opponent := -1
		for j := i + 1; j < len(ordered); j++ {
			if paired[j] {
				continue
			}
			if !met[newPairKey(p, ordered[j])] {
				opponent = j
				break
			}
		}
		if opponent < 0 {
			for j := i + 1; j < len(ordered); j++ {
				if !paired[j] {
					opponent = j
					rematches++
					break
				}
			}
		}
		if opponent < 0 {
			bye = p
			paired[i] = true
			continue
		}
		paired[i], paired[opponent] = true, true
		pairs = append(pairs, [2]*models.Participant{p, ordered[opponent]})
	}
	return pairs, bye, rematches
}

// searchSwissPairs backtracks over the same candidate order as the greedy pass, so its first answer is the greedy one when that is clean.
// The bye goes to the lowest placed participant allowed to take it; with strictByes nobody gets a second bye
func searchSwissPairs(ordered []*models.Participant, met map[pairKey]bool, hadBye map[string]bool, strictByes bool) ([][2]*models.Participant, *models.Participant, bool) {
	budget := swissSearchBudget
	n := len(ordered)

	var pairUp func(used []bool, pairs [][2]*models.Participant) ([][2]*models.Participant, bool)
	pairUp = func(used []bool, pairs [][2]*models.Participant) ([][2]*models.Participant, bool) {
		budget--
		if budget < 0 {
			return nil, false
		}
		first := -1
		for i := range used {
			if !used[i] {
				first = i
				break
			}
		}
		if first < 0 {
			return pairs, true
		}
		used[first] = true
		for j := first + 1; j < n; j++ {
			if used[j] || met[newPairKey(ordered[first], ordered[j])] {
				continue
			}
			used[j] = true
			if found, ok := pairUp(used, append(pairs, [2]*models.Participant{ordered[first], ordered[j]})); ok {
				return found, true
			}
			used[j] = false
		}
		used[first] = false
		return nil, false
	}

	if n%2 == 0 {
		pairs, ok := pairUp(make([]bool, n), nil)
		return pairs, nil, ok
	}
	for b := n - 1; b >= 0; b-- {
		if strictByes && hadBye[ordered[b].ID] {
			continue
		}
		used := make([]bool, n)
		used[b] = true
		if pairs, ok := pairUp(used, nil); ok {
			return pairs, ordered[b], true
		}
		if budget < 0 {
			break
		}
	}
	return nil, nil, false
}
