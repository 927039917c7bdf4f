package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjudd/tourney/models"
)

func TestScheduleRoundRobinCounts(t *testing.T) {
	for n := 2; n <= 32; n++ {
		for trips := 1; trips <= 3; trips++ {
			schedule := ScheduleRoundRobin(roster(n), trips, true)

			perTrip := n - 1
			if n%2 == 1 {
				perTrip = n
			}
			require.Len(t, schedule, perTrip*trips, "n=%d trips=%d", n, trips)

			meetings := map[pairKey]int{}
			total := 0
			for _, round := range schedule {
				busy := map[string]bool{}
				for _, f := range round.Fixtures {
					total++
					assert.False(t, busy[f.Participant1.ID], "n=%d round %d", n, round.RoundNumber)
					assert.False(t, busy[f.Participant2.ID], "n=%d round %d", n, round.RoundNumber)
					busy[f.Participant1.ID], busy[f.Participant2.ID] = true, true
					meetings[newPairKey(f.Participant1, f.Participant2)]++
				}
				if n%2 == 1 {
					require.NotNil(t, round.Rest)
					assert.False(t, busy[round.Rest.ID])
				} else {
					assert.Nil(t, round.Rest)
				}
			}
			assert.Equal(t, trips*n*(n-1)/2, total)
			assert.Len(t, meetings, n*(n-1)/2)
			for pair, count := range meetings {
				assert.Equal(t, trips, count, "%v", pair)
			}
		}
	}
}

func TestScheduleRoundRobinFiveParticipants(t *testing.T) {
	schedule := ScheduleRoundRobin(roster(5), 1, false)
	require.Len(t, schedule, 5)

	rested := map[string]int{}
	for i, round := range schedule {
		assert.Equal(t, i+1, round.RoundNumber)
		assert.Len(t, round.Fixtures, 2)
		rested[round.Rest.ID]++
	}
	assert.Equal(t, map[string]int{"p1": 1, "p2": 1, "p3": 1, "p4": 1, "p5": 1}, rested)
	assert.Equal(t, "r1-f1", schedule[0].Fixtures[0].ID)
}

func TestScheduleRoundRobinSwapsHomeAndAway(t *testing.T) {
	schedule := ScheduleRoundRobin(roster(4), 2, true)
	require.Len(t, schedule, 6)

	home := map[[2]string]int{}
	for _, f := range models.FlattenFixtures(schedule) {
		home[[2]string{f.Participant1.ID, f.Participant2.ID}]++
	}
	assert.Len(t, home, 12)
	for pair, count := range home {
		assert.Equal(t, 1, count, "%v", pair)
	}

	first, second := schedule[0].Fixtures[0], schedule[3].Fixtures[0]
	assert.Same(t, first.Participant1, second.Participant2)
	assert.Same(t, first.Participant2, second.Participant1)
}

func TestScheduleRoundRobinTooFew(t *testing.T) {
	assert.Empty(t, ScheduleRoundRobin(roster(1), 1, true))
}

func TestGenerateRoundRobinGroups(t *testing.T) {
	players := roster(8)
	league := GenerateRoundRobin(players, models.RoundRobinOptions{Rounds: 1, GroupCount: 2})

	require.Len(t, league.Groups, 2)
	assert.Equal(t, "Group A", league.Groups[0].Name)
	assert.Equal(t, []string{"p1", "p4", "p5", "p8"}, ids(league.Groups[0].Participants))
	assert.Equal(t, []string{"p2", "p3", "p6", "p7"}, ids(league.Groups[1].Participants))

	assert.Equal(t, 3, league.TotalRounds)
	require.Len(t, league.Schedule, 3)
	for _, round := range league.Schedule {
		assert.Len(t, round.Fixtures, 4)
	}
	assert.Equal(t, "A-r1-f1", league.Schedule[0].Fixtures[0].ID)
	assert.Equal(t, "B-r1-f1", league.Schedule[0].Fixtures[2].ID)
	assert.Len(t, league.Standings, 8)
	assert.Len(t, league.Groups[1].Standings, 4)
}

func TestRoundRobinFormatDefaults(t *testing.T) {
	players := roster(6)
	cfg := RoundRobin{}.DefaultConfig(players)
	require.True(t, RoundRobin{}.Validate(cfg).Valid)

	structure, err := RoundRobin{}.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, models.FormatRoundRobin, structure.Format)
	require.NotNil(t, structure.League)
	assert.Len(t, models.FlattenFixtures(structure.League.Schedule), 15)
	assert.Nil(t, structure.League.Groups)
}
