package tournament

import (
	"sort"

	"github.com/justinjudd/tourney/models"
)

// Keys of StandingEntry.Tiebreakers
const (
	TiebreakerScoreFor        = "scoreFor"
	TiebreakerScoreAgainst    = "scoreAgainst"
	TiebreakerScoreDifference = "scoreDifference"
	TiebreakerHeadToHead      = "headToHead"
)

// ComputeStandings accumulates every fixture with a recorded result into a table holding each participant exactly once.
// Rows are ordered by points, then by the tiebreaker chain, then by the incoming participant order
func ComputeStandings(participants []*models.Participant, fixtures []*models.Fixture, scoring models.Scoring, tiebreakers []models.Tiebreaker) []*models.StandingEntry {
	entries := make([]*models.StandingEntry, 0, len(participants))
	byID := map[string]*models.StandingEntry{}
	seeds := map[*models.StandingEntry]int{}
	for i, p := range participants {
		if p == nil {
			continue
		}
		if _, dup := byID[p.ID]; dup {
			continue
		}
		e := &models.StandingEntry{
			Participant: p,
			Tiebreakers: map[string]int{TiebreakerScoreFor: 0, TiebreakerScoreAgainst: 0, TiebreakerScoreDifference: 0},
		}
		entries = append(entries, e)
		byID[p.ID] = e
		seeds[e] = p.SeedOrDefault(i)
	}
	lookup := func(p *models.Participant) *models.StandingEntry {
		if p == nil {
			return nil
		}
		return byID[p.ID]
	}

	for _, f := range fixtures {
		if f.Result == nil {
			continue
		}
		if f.IsBye {
			if e := lookup(f.Participant1); e != nil {
				e.Played++
				e.Wins++
				e.Points += scoring.ByePoints()
			}
			continue
		}
		e1, e2 := lookup(f.Participant1), lookup(f.Participant2)
		var verdict1, verdict2 int // 1 win, 0 draw, -1 loss
		switch {
		case f.Result.Winner == nil:
		case models.SameParticipant(f.Result.Winner, f.Participant1):
			verdict1, verdict2 = 1, -1
		case models.SameParticipant(f.Result.Winner, f.Participant2):
			verdict1, verdict2 = -1, 1
		default:
			continue
		}
		record(e1, verdict1, f.Result.Score1, f.Result.Score2, scoring)
		record(e2, verdict2, f.Result.Score2, f.Result.Score1, scoring)
	}

	headToHead := headToHeadPoints(entries, fixtures, scoring)
	for _, e := range entries {
		e.Tiebreakers[TiebreakerScoreDifference] = e.Tiebreakers[TiebreakerScoreFor] - e.Tiebreakers[TiebreakerScoreAgainst]
		e.Tiebreakers[TiebreakerHeadToHead] = headToHead[e.Participant.ID]
	}

	comparisons := []comparison{func(i, j int) int { return descending(entries[i].Points, entries[j].Points) }}
	for _, tb := range tiebreakers {
		switch tb {
		case models.TiebreakScoreDifference:
			comparisons = append(comparisons, byTiebreaker(entries, TiebreakerScoreDifference))
		case models.TiebreakScoreFor:
			comparisons = append(comparisons, byTiebreaker(entries, TiebreakerScoreFor))
		case models.TiebreakHeadToHead:
			comparisons = append(comparisons, byTiebreaker(entries, TiebreakerHeadToHead))
		case models.TiebreakWins:
			comparisons = append(comparisons, func(i, j int) int { return descending(entries[i].Wins, entries[j].Wins) })
		case models.TiebreakSeed:
			comparisons = append(comparisons, func(i, j int) int { return ascending(seeds[entries[i]], seeds[entries[j]]) })
		}
	}
	sort.SliceStable(entries, rankBy(comparisons...))
	return entries
}

func record(e *models.StandingEntry, verdict, scored, conceded int, scoring models.Scoring) {
	if e == nil {
		return
	}
	e.Played++
	e.Tiebreakers[TiebreakerScoreFor] += scored
	e.Tiebreakers[TiebreakerScoreAgainst] += conceded
	switch verdict {
	case 1:
		e.Wins++
		e.Points += scoring.Win
	case 0:
		e.Draws++
		e.Points += scoring.Draw
	default:
		e.Losses++
		e.Points += scoring.Loss
	}
}

func byTiebreaker(entries []*models.StandingEntry, key string) comparison {
	return func(i, j int) int {
		return descending(entries[i].Tiebreakers[key], entries[j].Tiebreakers[key])
	}
}

// headToHeadPoints scores each participant only over fixtures against opponents level with them on points
func headToHeadPoints(entries []*models.StandingEntry, fixtures []*models.Fixture, scoring models.Scoring) map[string]int {
	points := map[string]int{}
	for _, e := range entries {
		points[e.Participant.ID] = e.Points
	}
	mini := map[string]int{}
	for _, f := range fixtures {
		if f.Result == nil || f.IsBye || f.Participant1 == nil || f.Participant2 == nil {
			continue
		}
		id1, id2 := f.Participant1.ID, f.Participant2.ID
		p1, ok1 := points[id1]
		p2, ok2 := points[id2]
		if !ok1 || !ok2 || p1 != p2 {
			continue
		}
		switch {
		case f.Result.Winner == nil:
			mini[id1] += scoring.Draw
			mini[id2] += scoring.Draw
		case models.SameParticipant(f.Result.Winner, f.Participant1):
			mini[id1] += scoring.Win
			mini[id2] += scoring.Loss
		case models.SameParticipant(f.Result.Winner, f.Participant2):
			mini[id2] += scoring.Win
			mini[id1] += scoring.Loss
		}
	}
	return mini
}
