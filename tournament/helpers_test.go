package tournament

import (
	"fmt"

	"github.com/justinjudd/tourney/models"
)

// roster returns n participants p1..pn in seed order
func roster(n int) []*models.Participant {
	participants := make([]*models.Participant, n)
	for i := range participants {
		participants[i] = &models.Participant{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1)}
	}
	return participants
}

func ids(participants []*models.Participant) []string {
	out := make([]string, len(participants))
	for i, p := range participants {
		if p != nil {
			out[i] = p.ID
		}
	}
	return out
}

func idOf(p *models.Participant) string {
	if p == nil {
		return ""
	}
	return p.ID
}

// winAll records a result for the first participant of every fixture in the round that has none
func winAll(round *models.ScheduleRound) {
	for _, f := range round.Fixtures {
		if f.Result == nil && !f.IsBye {
			f.Result = &models.Result{Score1: 1, Score2: 0, Winner: f.Participant1}
		}
	}
}
