package tournament

import (
	"fmt"

	"github.com/justinjudd/tourney/models"
)

// outcome is what a slot or a match output is known to hold while the bracket is being built
type outcome int

const (
	pending outcome = iota // decided later by a result or an external fill
	known                  // a participant is already in place
	dead                   // nobody will ever arrive
)

// source describes where the participant of one match slot comes from
type source struct {
	from  *node // nil for a first round slot
	loser bool

	participant *models.Participant
	placeholder bool // first round slot filled externally, such as a group position
	label       string
}

type node struct {
	match *models.Match
	in    [2]*source

	winner, loser             outcome
	winnerPlayer, loserPlayer *models.Participant
}

// bracketBuilder is the one mutable phase of bracket generation. Matches are wired through sources, then resolve settles byes in creation order. Nothing is handed out before resolve has run
type bracketBuilder struct {
	nodes []*node
}

func (b *bracketBuilder) add(m *models.Match, in1, in2 *source) *node {
	n := &node{match: m, in: [2]*source{in1, in2}}
	b.nodes = append(b.nodes, n)
	return n
}

// seededSources turns a slot array into first round sources, nil slots are dead
func seededSources(slots []*models.Participant) []*source {
	sources := make([]*source, len(slots))
	for i, p := range slots {
		sources[i] = &source{participant: p}
	}
	return sources
}

func winnerOf(n *node) *source {
	return &source{from: n}
}

func loserOf(n *node) *source {
	return &source{from: n, loser: true}
}

func (s *source) state() (outcome, *models.Participant) {
	if s.from == nil {
		switch {
		case s.participant != nil:
			return known, s.participant
		case s.placeholder:
			return pending, nil
		default:
			return dead, nil
		}
	}
	if s.loser {
		return s.from.loser, s.from.loserPlayer
	}
	return s.from.winner, s.from.winnerPlayer
}

// resolve fills known participants into their slots and propagates byes forward. A match with exactly one live slot is a bye and its occupant advances, a match with no live slot is dead and feeds nobody
func (b *bracketBuilder) resolve() {
	for _, n := range b.nodes {
		var states [2]outcome
		var players [2]*models.Participant
		for i, in := range n.in {
			states[i], players[i] = in.state()
		}
		m := n.match
		m.Participant1, m.Participant2 = players[0], players[1]

		switch {
		case states[0] == dead && states[1] == dead:
			n.winner, n.loser = dead, dead
		case states[0] == dead || states[1] == dead:
			live := 0
			if states[0] == dead {
				live = 1
			}
			m.IsBye = true
			m.Winner = players[live]
			n.winner, n.winnerPlayer = states[live], players[live]
			n.loser = dead
		default:
			n.winner, n.loser = pending, pending
		}
	}
}

// singleEliminationRoundName labels a round by its distance to the final
func singleEliminationRoundName(round, totalRounds int) string {
	switch totalRounds - round {
	case 0:
		return "Final"
	case 1:
		return "Semifinals"
	case 2:
		return "Quarterfinals"
	}
	return fmt.Sprintf("Round %d", round)
}

func doubleEliminationRoundName(round, totalRounds int) string {
	return "Winners " + singleEliminationRoundName(round, totalRounds)
}

// eliminationTree builds the winners side of a bracket from its first round sources. Sibling matches 2i and 2i+1 both feed match i of the next round
func (b *bracketBuilder) eliminationTree(first []*source, name func(round, totalRounds int) string) ([]*models.Round, [][]*node) {
	totalRounds := log2(len(first))
	rounds := make([]*models.Round, 0, totalRounds)
	nodes := make([][]*node, 0, totalRounds)

	for r := 1; r <= totalRounds; r++ {
		count := len(first) >> uint(r)
		round := &models.Round{
			ID:          fmt.Sprintf("round-%d", r),
			Name:        name(r, totalRounds),
			RoundNumber: r,
			Matches:     make([]*models.Match, count),
		}
		current := make([]*node, count)
		for i := 0; i < count; i++ {
			m := &models.Match{
				ID:          fmt.Sprintf("r%d-m%d", r, i+1),
				RoundID:     round.ID,
				MatchNumber: i + 1,
				Bracket:     models.BracketWinners,
			}
			var in1, in2 *source
			if r == 1 {
				in1, in2 = first[2*i], first[2*i+1]
				m.Source1, m.Source2 = in1.label, in2.label
			} else {
				prev := nodes[r-2]
				in1, in2 = winnerOf(prev[2*i]), winnerOf(prev[2*i+1])
				prev[2*i].match.FeedsInto = m.ID
				prev[2*i+1].match.FeedsInto = m.ID
			}
			current[i] = b.add(m, in1, in2)
			round.Matches[i] = m
		}
		rounds = append(rounds, round)
		nodes = append(nodes, current)
	}
	return rounds, nodes
}

// buildSingleElimination wires a single elimination bracket over first round sources
func buildSingleElimination(first []*source, thirdPlace bool) *models.BracketStructure {
	var b bracketBuilder
	rounds, _ := b.eliminationTree(first, singleEliminationRoundName)
	b.resolve()

	bracket := &models.BracketStructure{TotalSlots: len(first), Rounds: rounds}
	if thirdPlace && len(rounds) >= 2 {
		bracket.ThirdPlace = &models.Match{
			ID:          "third-place-match",
			RoundID:     models.ThirdPlaceRoundID,
			MatchNumber: 1,
			Bracket:     models.BracketThirdPlace,
		}
	}
	return bracket
}

// buildDoubleElimination wires the winners bracket, the losers bracket and the grand final.
// Losers of winners round 1 pair up in losers round 1. Losers of winners round j+1 drop into losers round 2j, where they meet the survivors of losers round 2j-1; the drop order is reversed on every other drop round to delay rematches
func buildDoubleElimination(first []*source, enableReset bool) *models.BracketStructure {
	var b bracketBuilder
	winners, wNodes := b.eliminationTree(first, doubleEliminationRoundName)
	k := len(winners)

	var losers []*models.Round
	var previous []*node
	addLosersRound := func(count int) (*models.Round, []*node) {
		number := len(losers) + 1
		round := &models.Round{
			ID:          fmt.Sprintf("losers-round-%d", number),
			Name:        fmt.Sprintf("Losers Round %d", number),
			RoundNumber: number,
			Matches:     make([]*models.Match, count),
		}
		losers = append(losers, round)
		return round, make([]*node, count)
	}
	newLosersMatch := func(round *models.Round, i int) *models.Match {
		m := &models.Match{
			ID:          fmt.Sprintf("l%d-m%d", round.RoundNumber, i+1),
			RoundID:     round.ID,
			MatchNumber: i + 1,
			Bracket:     models.BracketLosers,
		}
		round.Matches[i] = m
		return m
	}

	for j := 1; j < k; j++ {
		count := len(first) >> uint(j+1)

		if j == 1 {
			round, current := addLosersRound(count)
			for i := 0; i < count; i++ {
				m := newLosersMatch(round, i)
				a, c := wNodes[0][2*i], wNodes[0][2*i+1]
				a.match.LoserFeedsInto, c.match.LoserFeedsInto = m.ID, m.ID
				current[i] = b.add(m, loserOf(a), loserOf(c))
			}
			previous = current
		} else {
			round, current := addLosersRound(count)
			for i := 0; i < count; i++ {
				m := newLosersMatch(round, i)
				in1, in2 := previous[2*i], previous[2*i+1]
				in1.match.FeedsInto, in2.match.FeedsInto = m.ID, m.ID
				current[i] = b.add(m, winnerOf(in1), winnerOf(in2))
			}
			previous = current
		}

		round, current := addLosersRound(count)
		drops := wNodes[j]
		for i := 0; i < count; i++ {
			m := newLosersMatch(round, i)
			drop := drops[i]
			if j%2 == 1 {
				drop = drops[count-1-i]
			}
			drop.match.LoserFeedsInto = m.ID
			previous[i].match.FeedsInto = m.ID
			current[i] = b.add(m, loserOf(drop), winnerOf(previous[i]))
		}
		previous = current
	}
	if len(losers) > 0 {
		losers[len(losers)-1].Name = "Losers Final"
	}

	winnersFinal := wNodes[k-1][0]
	grandFinal := &models.Match{
		ID:          "gf-1",
		RoundID:     "grand-final",
		MatchNumber: 1,
		Bracket:     models.BracketGrandFinal,
	}
	winnersFinal.match.FeedsInto = grandFinal.ID
	if len(previous) == 1 {
		previous[0].match.FeedsInto = grandFinal.ID
		b.add(grandFinal, winnerOf(winnersFinal), winnerOf(previous[0]))
	} else {
		winnersFinal.match.LoserFeedsInto = grandFinal.ID
		b.add(grandFinal, winnerOf(winnersFinal), loserOf(winnersFinal))
	}
	b.resolve()

	bracket := &models.BracketStructure{
		TotalSlots:   len(first),
		Rounds:       winners,
		LosersRounds: losers,
		GrandFinal:   []*models.Match{grandFinal},
	}
	if enableReset {
		bracket.GrandFinal = append(bracket.GrandFinal, &models.Match{
			ID:          "gf-2",
			RoundID:     "grand-final",
			MatchNumber: 2,
			Bracket:     models.BracketGrandFinal,
			IsReset:     true,
		})
	}
	return bracket
}
