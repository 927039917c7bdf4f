package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjudd/tourney/models"
)

func TestSingleEliminationSixParticipants(t *testing.T) {
	players := roster(6)
	bracket := GenerateSingleElimination(players, models.SingleEliminationOptions{})

	assert.Equal(t, 8, bracket.TotalSlots)
	require.Len(t, bracket.Rounds, 3)
	assert.Equal(t, "Quarterfinals", bracket.Rounds[0].Name)
	assert.Equal(t, "Semifinals", bracket.Rounds[1].Name)
	assert.Equal(t, "Final", bracket.Rounds[2].Name)

	first := bracket.Rounds[0].Matches
	require.Len(t, first, 4)

	// 1 and 2 get the byes
	assert.True(t, first[0].IsBye)
	assert.Same(t, players[0], first[0].Winner)
	assert.False(t, first[1].IsBye)
	assert.Equal(t, "p4", idOf(first[1].Participant1))
	assert.Equal(t, "p5", idOf(first[1].Participant2))
	assert.True(t, first[2].IsBye)
	assert.Same(t, players[1], first[2].Winner)
	assert.Equal(t, "p3", idOf(first[3].Participant1))
	assert.Equal(t, "p6", idOf(first[3].Participant2))

	semis := bracket.Rounds[1].Matches
	assert.Same(t, players[0], semis[0].Participant1)
	assert.Nil(t, semis[0].Participant2)
	assert.Same(t, players[1], semis[1].Participant1)
	assert.Nil(t, semis[1].Participant2)

	assert.Equal(t, "r2-m1", first[0].FeedsInto)
	assert.Equal(t, "r2-m1", first[1].FeedsInto)
	assert.Equal(t, "r2-m2", first[2].FeedsInto)
	assert.Equal(t, "r3-m1", semis[1].FeedsInto)
	assert.Empty(t, bracket.Rounds[2].Matches[0].FeedsInto)
	assert.Nil(t, bracket.ThirdPlace)
}

func TestSingleEliminationShape(t *testing.T) {
	for n := 2; n <= 64; n++ {
		bracket := GenerateSingleElimination(roster(n), models.SingleEliminationOptions{})
		size := bracket.TotalSlots
		require.Equal(t, nextPowerOfTwo(n), size, "participants %d", n)
		require.Len(t, bracket.Rounds, log2(size), "participants %d", n)

		matches := 0
		for r, round := range bracket.Rounds {
			assert.Len(t, round.Matches, size>>uint(r+1))
			matches += len(round.Matches)
		}
		assert.Equal(t, size-1, matches)

		byes := 0
		for _, m := range bracket.Rounds[0].Matches {
			if m.IsBye {
				byes++
				assert.True(t, models.IsByeMatch(m))
			}
		}
		assert.Equal(t, size-n, byes, "participants %d", n)

		// every advancement edge points at a match of the next round, and each of those is fed exactly twice
		for r, round := range bracket.Rounds[:len(bracket.Rounds)-1] {
			fed := map[string]int{}
			for _, m := range bracket.Rounds[r+1].Matches {
				fed[m.ID] = 0
			}
			for _, m := range round.Matches {
				_, ok := fed[m.FeedsInto]
				assert.True(t, ok, "match %s feeds %q", m.ID, m.FeedsInto)
				fed[m.FeedsInto]++
			}
			for id, count := range fed {
				assert.Equal(t, 2, count, "match %s", id)
			}
		}
	}
}

func TestSingleEliminationSeedsMeetTheirMirror(t *testing.T) {
	for size := 2; size <= 128; size <<= 1 {
		players := roster(size)
		seedOf := map[string]int{}
		for i, p := range players {
			seedOf[p.ID] = i + 1
		}
		bracket := GenerateSingleElimination(players, models.SingleEliminationOptions{Seeding: models.SeedingOptions{Method: models.SeedingSeeded}})
		for _, m := range bracket.Rounds[0].Matches {
			require.NotNil(t, m.Participant1)
			require.NotNil(t, m.Participant2)
			assert.Equal(t, size+1, seedOf[m.Participant1.ID]+seedOf[m.Participant2.ID], "size %d match %s", size, m.ID)
		}
	}
}

func TestSingleEliminationThirdPlace(t *testing.T) {
	bracket := GenerateSingleElimination(roster(4), models.SingleEliminationOptions{ThirdPlaceMatch: true})
	require.NotNil(t, bracket.ThirdPlace)
	assert.Equal(t, "third-place-match", bracket.ThirdPlace.ID)
	assert.Equal(t, models.ThirdPlaceRoundID, bracket.ThirdPlace.RoundID)
	assert.Empty(t, bracket.ThirdPlace.FeedsInto)
	assert.NotNil(t, bracket.FindMatch("third-place-match"))

	// a lone final has no semifinal losers
	bracket = GenerateSingleElimination(roster(2), models.SingleEliminationOptions{ThirdPlaceMatch: true})
	assert.Nil(t, bracket.ThirdPlace)
}

func TestSingleEliminationTooFewParticipants(t *testing.T) {
	bracket := GenerateSingleElimination(roster(1), models.SingleEliminationOptions{})
	assert.Equal(t, 2, bracket.TotalSlots)
	assert.Empty(t, bracket.Rounds)
	assert.NotNil(t, bracket.Rounds)
}

func TestSingleEliminationConfiguredBracketSize(t *testing.T) {
	bracket := GenerateSingleElimination(roster(3), models.SingleEliminationOptions{BracketSize: 8})
	assert.Equal(t, 8, bracket.TotalSlots)
	require.Len(t, bracket.Rounds, 3)

	// byes chain through the second round when a whole half is empty
	seeds := bracket.Rounds[0].Matches
	assert.Equal(t, "p1", idOf(seeds[0].Participant1))
	assert.True(t, seeds[0].IsBye)
	final := bracket.Rounds[2].Matches[0]
	assert.Same(t, bracket.Rounds[1].Matches[0].Winner, final.Participant1)
}

func TestSingleEliminationManualSeeding(t *testing.T) {
	players := roster(4)
	bracket := GenerateSingleElimination(players, models.SingleEliminationOptions{
		Seeding: models.SeedingOptions{Method: models.SeedingManual, ManualOrder: []string{"p4", "p3", "p2", "p1"}},
	})
	first := bracket.Rounds[0].Matches
	assert.Equal(t, "p4", idOf(first[0].Participant1))
	assert.Equal(t, "p3", idOf(first[0].Participant2))
	assert.Equal(t, "p2", idOf(first[1].Participant1))
	assert.Equal(t, "p1", idOf(first[1].Participant2))
}
