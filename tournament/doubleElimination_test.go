package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjudd/tourney/models"
)

func TestDoubleEliminationEightParticipants(t *testing.T) {
	bracket := GenerateDoubleElimination(roster(8), models.DoubleEliminationOptions{EnableReset: true})

	require.Len(t, bracket.Rounds, 3)
	assert.Equal(t, "Winners Final", bracket.Rounds[2].Name)
	require.Len(t, bracket.LosersRounds, 4)
	for i, want := range []int{2, 2, 1, 1} {
		assert.Len(t, bracket.LosersRounds[i].Matches, want, "losers round %d", i+1)
		for _, m := range bracket.LosersRounds[i].Matches {
			assert.Equal(t, models.BracketLosers, m.Bracket)
		}
	}
	assert.Equal(t, "Losers Final", bracket.LosersRounds[3].Name)

	require.Len(t, bracket.GrandFinal, 2)
	assert.Equal(t, "gf-1", bracket.GrandFinal[0].ID)
	assert.False(t, bracket.GrandFinal[0].IsReset)
	assert.Equal(t, "gf-2", bracket.GrandFinal[1].ID)
	assert.True(t, bracket.GrandFinal[1].IsReset)
	assert.Empty(t, bracket.GrandFinal[0].FeedsInto)
	assert.Len(t, bracket.AllMatches(), 15)

	w := bracket.Rounds
	assert.Equal(t, "l1-m1", w[0].Matches[0].LoserFeedsInto)
	assert.Equal(t, "l1-m1", w[0].Matches[1].LoserFeedsInto)
	assert.Equal(t, "l1-m2", w[0].Matches[2].LoserFeedsInto)
	assert.Equal(t, "l1-m2", w[0].Matches[3].LoserFeedsInto)
	// the first drop round takes winners round 2 losers in reverse order
	assert.Equal(t, "l2-m2", w[1].Matches[0].LoserFeedsInto)
	assert.Equal(t, "l2-m1", w[1].Matches[1].LoserFeedsInto)
	assert.Equal(t, "l4-m1", w[2].Matches[0].LoserFeedsInto)

	l := bracket.LosersRounds
	assert.Equal(t, "l2-m1", l[0].Matches[0].FeedsInto)
	assert.Equal(t, "l2-m2", l[0].Matches[1].FeedsInto)
	assert.Equal(t, "l3-m1", l[1].Matches[0].FeedsInto)
	assert.Equal(t, "l3-m1", l[1].Matches[1].FeedsInto)
	assert.Equal(t, "l4-m1", l[2].Matches[0].FeedsInto)
	assert.Equal(t, "gf-1", l[3].Matches[0].FeedsInto)
	assert.Equal(t, "gf-1", w[2].Matches[0].FeedsInto)
}

func TestDoubleEliminationWithoutReset(t *testing.T) {
	bracket := GenerateDoubleElimination(roster(4), models.DoubleEliminationOptions{})
	require.Len(t, bracket.GrandFinal, 1)
	assert.Len(t, bracket.LosersRounds, 2)
}

func TestDoubleEliminationTwoParticipants(t *testing.T) {
	bracket := GenerateDoubleElimination(roster(2), models.DoubleEliminationOptions{EnableReset: true})
	require.Len(t, bracket.Rounds, 1)
	assert.Nil(t, bracket.LosersRounds)
	assert.Equal(t, "gf-1", bracket.Rounds[0].Matches[0].FeedsInto)
	assert.Equal(t, "gf-1", bracket.Rounds[0].Matches[0].LoserFeedsInto)
}

func TestDoubleEliminationByesReachLosersBracket(t *testing.T) {
	bracket := GenerateDoubleElimination(roster(5), models.DoubleEliminationOptions{})
	require.Len(t, bracket.LosersRounds, 4)

	l1 := bracket.LosersRounds[0].Matches
	// the loser of 4 v 5 waits for nobody
	assert.True(t, l1[0].IsBye)
	assert.Nil(t, l1[0].Winner)
	assert.True(t, models.IsByeMatch(l1[0]))
	// both feeding matches were byes
	assert.False(t, l1[1].IsBye)
	assert.False(t, models.IsByeMatch(l1[1]))
	assert.Nil(t, l1[1].Participant1)
	assert.Nil(t, l1[1].Participant2)

	for _, m := range bracket.AllMatches() {
		if m.IsBye {
			assert.True(t, models.IsByeMatch(m), "match %s", m.ID)
		}
	}
}

func TestDoubleEliminationMatchCount(t *testing.T) {
	for n := 2; n <= 32; n++ {
		bracket := GenerateDoubleElimination(roster(n), models.DoubleEliminationOptions{})
		size := bracket.TotalSlots
		// winners size-1, losers size-2, one grand final
		assert.Len(t, bracket.AllMatches(), 2*size-2, "participants %d", n)

		ids := map[string]bool{}
		for _, m := range bracket.AllMatches() {
			assert.False(t, ids[m.ID], "duplicate match id %s", m.ID)
			ids[m.ID] = true
		}
		for _, m := range bracket.AllMatches() {
			if m.FeedsInto != "" {
				assert.True(t, ids[m.FeedsInto], "%s feeds unknown %s", m.ID, m.FeedsInto)
			}
			if m.LoserFeedsInto != "" {
				assert.True(t, ids[m.LoserFeedsInto], "%s drops into unknown %s", m.ID, m.LoserFeedsInto)
			}
		}
	}
}

// playBracket plays every match as soon as both slots are filled, moving winners along FeedsInto and losers along LoserFeedsInto. It returns the losses of every participant
func playBracket(t *testing.T, bracket *models.BracketStructure, beats func(a, b *models.Participant) bool) map[string]int {
	losses := map[string]int{}
	place := func(id string, p *models.Participant) {
		if id == "" {
			return
		}
		m := bracket.FindMatch(id)
		require.NotNil(t, m, "unknown match %s", id)
		if m.Participant1 == nil {
			m.Participant1 = p
		} else {
			require.Nil(t, m.Participant2, "match %s is already full", id)
			m.Participant2 = p
		}
	}
	for progress := true; progress; {
		progress = false
		for _, m := range bracket.AllMatches() {
			if m.Winner != nil || m.IsReset {
				continue
			}
			switch {
			case m.IsBye && (m.Participant1 == nil) != (m.Participant2 == nil):
				m.Winner = m.Participant1
				if m.Winner == nil {
					m.Winner = m.Participant2
				}
				place(m.FeedsInto, m.Winner)
			case m.Participant1 != nil && m.Participant2 != nil:
				winner, loser := m.Participant1, m.Participant2
				if beats(loser, winner) {
					winner, loser = loser, winner
				}
				m.Winner = winner
				losses[loser.ID]++
				place(m.FeedsInto, winner)
				place(m.LoserFeedsInto, loser)
			default:
				continue
			}
			progress = true
		}
	}
	return losses
}

func TestDoubleEliminationOneLossStaysAlive(t *testing.T) {
	for _, n := range []int{6, 8} {
		players := roster(n)
		seedOf := map[string]int{}
		for i, p := range players {
			seedOf[p.ID] = i + 1
		}
		bracket := GenerateDoubleElimination(players, models.DoubleEliminationOptions{})
		// the better seed wins, except the top seed drops its opening match when it has one
		losses := playBracket(t, bracket, func(a, b *models.Participant) bool {
			if a.ID == "p8" && b.ID == "p1" {
				return true
			}
			if a.ID == "p1" && b.ID == "p8" {
				return false
			}
			return seedOf[a.ID] < seedOf[b.ID]
		})

		final := bracket.GrandFinal[0]
		require.NotNil(t, final.Winner, "participants %d", n)
		assert.Equal(t, "p1", final.Winner.ID, "participants %d", n)
		assert.LessOrEqual(t, losses["p1"], 1)
		for _, p := range players {
			if models.SameParticipant(p, final.Participant1) || models.SameParticipant(p, final.Participant2) {
				continue
			}
			// nobody leaves the bracket after a single loss
			assert.Equal(t, 2, losses[p.ID], "participants %d: %s", n, p.ID)
		}
	}
}
