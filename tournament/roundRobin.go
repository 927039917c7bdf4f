package tournament

import (
	"fmt"

	"github.com/justinjudd/tourney/models"
)

// RoundRobin fulfills the Format interface, and provides the logic for leagues where every participant plays every other participant
type RoundRobin struct{}

func (RoundRobin) Type() models.FormatType {
	return models.FormatRoundRobin
}

func (RoundRobin) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatRoundRobin,
		Participants: participants,
		Options:      &models.RoundRobinOptions{Rounds: 1, GroupCount: 1, SwapHomeAway: true},
	}
}

func (RoundRobin) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 3)
	if cfg.Options == nil {
		return r
	}
	opts, ok := cfg.Options.(*models.RoundRobinOptions)
	if !ok {
		r.Add("options", models.CodeInvalidOption, "expected round robin options, got %s", cfg.Options.Format())
		return r
	}
	if opts.Rounds < 0 {
		r.Add("rounds", models.CodeInvalidRange, "rounds cannot be negative")
	}
	if opts.GroupCount < 0 {
		r.Add("groupCount", models.CodeInvalidRange, "group count cannot be negative")
	} else if opts.GroupCount > 1 && len(cfg.Participants) < 2*opts.GroupCount {
		r.Add("groupCount", models.CodeInsufficientParticipants, "%d groups need at least %d participants", opts.GroupCount, 2*opts.GroupCount)
	}
	validateScoring(&r, opts.Scoring, opts.Tiebreakers)
	return r
}

func (rr RoundRobin) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.RoundRobinOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.RoundRobinOptions); !ok {
			return nil, optionsMismatch(rr.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format: models.FormatRoundRobin,
		League: GenerateRoundRobin(cfg.Participants, *opts),
	}, nil
}

// ScheduleRoundRobin pairs every participant with every other one using the circle method, repeated for the given number of round trips.
// The first participant stays fixed while the others rotate one place per round. An odd roster gets a rest slot, whoever meets it sits the round out.
// With swap set the home and away sides are exchanged on every other round trip
func ScheduleRoundRobin(participants []*models.Participant, roundTrips int, swap bool) []*models.ScheduleRound {
	return circleSchedule(participants, roundTrips, swap, "")
}

func circleSchedule(participants []*models.Participant, roundTrips int, swap bool, idPrefix string) []*models.ScheduleRound {
	if roundTrips < 1 {
		roundTrips = 1
	}
	players := make([]*models.Participant, 0, len(participants)+1)
	for _, p := range participants {
		if p != nil {
			players = append(players, p)
		}
	}
	if len(players) < 2 {
		return []*models.ScheduleRound{}
	}
	if len(players)%2 != 0 {
		players = append(players, nil)
	}
	n := len(players)
	roundsPerTrip := n - 1

	schedule := make([]*models.ScheduleRound, 0, roundsPerTrip*roundTrips)
	for trip := 0; trip < roundTrips; trip++ {
		rotation := make([]*models.Participant, n)
		copy(rotation, players)
		flip := swap && trip%2 == 1

		for r := 0; r < roundsPerTrip; r++ {
			round := &models.ScheduleRound{RoundNumber: trip*roundsPerTrip + r + 1}
			round.Fixtures = make([]*models.Fixture, 0, n/2)
			for i := 0; i < n/2; i++ {
				home, away := rotation[i], rotation[n-1-i]
				if home == nil || away == nil {
					if home == nil {
						round.Rest = away
					} else {
						round.Rest = home
					}
					continue
				}
				if flip {
					home, away = away, home
				}
				round.Fixtures = append(round.Fixtures, &models.Fixture{
					ID:           fmt.Sprintf("%sr%d-f%d", idPrefix, round.RoundNumber, len(round.Fixtures)+1),
					Participant1: home,
					Participant2: away,
				})
			}
			schedule = append(schedule, round)

			last := rotation[n-1]
			copy(rotation[2:], rotation[1:n-1])
			rotation[1] = last
		}
	}
	return schedule
}

// GenerateRoundRobin schedules a league. With more than one group each group gets its own schedule and standings, and the league schedule batches round k of every group together
func GenerateRoundRobin(participants []*models.Participant, opts models.RoundRobinOptions) *models.LeagueStructure {
	scoring := models.ScoringOrDefault(opts.Scoring)
	tiebreakers := opts.Tiebreakers
	if len(tiebreakers) == 0 {
		tiebreakers = models.DefaultTiebreakers
	}

	if opts.GroupCount <= 1 {
		schedule := circleSchedule(participants, opts.Rounds, opts.SwapHomeAway, "")
		return &models.LeagueStructure{
			Schedule:    schedule,
			Standings:   ComputeStandings(participants, models.FlattenFixtures(schedule), scoring, tiebreakers),
			TotalRounds: len(schedule),
		}
	}

	groups := DistributeGroups(participants, opts.GroupCount, models.DistributionSnake)
	for _, g := range groups {
		g.Schedule = circleSchedule(g.Participants, opts.Rounds, opts.SwapHomeAway, g.ID+"-")
		g.Standings = ComputeStandings(g.Participants, g.Fixtures(), scoring, tiebreakers)
	}
	return leagueFromGroups(participants, groups, scoring, tiebreakers)
}

// leagueFromGroups merges per group schedules into league rounds and ranks the whole roster
func leagueFromGroups(participants []*models.Participant, groups []*models.Group, scoring models.Scoring, tiebreakers []models.Tiebreaker) *models.LeagueStructure {
	league := &models.LeagueStructure{Groups: groups, Schedule: []*models.ScheduleRound{}}
	for _, g := range groups {
		for i, round := range g.Schedule {
			for len(league.Schedule) <= i {
				league.Schedule = append(league.Schedule, &models.ScheduleRound{
					RoundNumber: len(league.Schedule) + 1,
					Fixtures:    []*models.Fixture{},
				})
			}
			league.Schedule[i].Fixtures = append(league.Schedule[i].Fixtures, round.Fixtures...)
		}
	}
	league.TotalRounds = len(league.Schedule)
	var fixtures []*models.Fixture
	for _, g := range groups {
		fixtures = append(fixtures, g.Fixtures()...)
	}
	league.Standings = ComputeStandings(participants, fixtures, scoring, tiebreakers)
	return league
}
