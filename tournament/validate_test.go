package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justinjudd/tourney/models"
)

func codes(result models.ValidationResult) []string {
	var out []string
	for _, e := range result.Errors {
		out = append(out, e.Code)
	}
	return out
}

func TestValidateParticipants(t *testing.T) {
	result := SingleElimination{}.Validate(models.Config{
		Format:       models.FormatSingleElimination,
		Participants: roster(1),
	})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{models.CodeInsufficientParticipants}, codes(result))

	players := roster(3)
	players[2].ID = "p1"
	players = append(players, &models.Participant{Name: "Nobody"})
	result = SingleElimination{}.Validate(models.Config{Format: models.FormatSingleElimination, Participants: players})
	assert.ElementsMatch(t, []string{models.CodeDuplicateParticipant, models.CodeMissingParticipantID}, codes(result))
	assert.Error(t, result.Err())
	assert.Contains(t, result.Err().Error(), "more than once")
}

func TestValidateSeeding(t *testing.T) {
	players := roster(4)
	cfg := models.Config{
		Format:       models.FormatSingleElimination,
		Participants: players,
		Options: &models.SingleEliminationOptions{
			Seeding: models.SeedingOptions{Method: models.SeedingManual, ManualOrder: []string{"p1", "p2"}},
		},
	}
	result := SingleElimination{}.Validate(cfg)
	assert.Equal(t, []string{models.CodeManualOrderIncomplete, models.CodeManualOrderIncomplete}, codes(result))

	cfg.Options = &models.SingleEliminationOptions{
		Seeding: models.SeedingOptions{Method: models.SeedingRandom, ManualOrder: []string{"p1"}},
	}
	assert.Equal(t, []string{models.CodeConflictingOptions}, codes(SingleElimination{}.Validate(cfg)))

	cfg.Options = &models.SingleEliminationOptions{BracketSize: -2, Seeding: models.SeedingOptions{Method: "coin-toss"}}
	assert.ElementsMatch(t, []string{models.CodeInvalidRange, models.CodeInvalidOption}, codes(SingleElimination{}.Validate(cfg)))
}

func TestValidateWrongOptions(t *testing.T) {
	result := DoubleElimination{}.Validate(models.Config{
		Format:       models.FormatDoubleElimination,
		Participants: roster(4),
		Options:      &models.SwissOptions{},
	})
	assert.Equal(t, []string{models.CodeInvalidOption}, codes(result))
}

func TestValidateLeagueOptions(t *testing.T) {
	players := roster(4)
	result := RoundRobin{}.Validate(models.Config{
		Format:       models.FormatRoundRobin,
		Participants: players,
		Options: &models.RoundRobinOptions{
			Rounds:      1,
			GroupCount:  3,
			Scoring:     &models.Scoring{Win: 1, Draw: 2},
			Tiebreakers: []models.Tiebreaker{models.TiebreakWins, "coin-toss"},
		},
	})
	assert.Equal(t, []string{models.CodeInsufficientParticipants, models.CodeInvalidRange, models.CodeInvalidOption}, codes(result))

	result = Swiss{}.Validate(models.Config{Format: models.FormatSwiss, Participants: players, Options: &models.SwissOptions{Rounds: 4}})
	assert.Equal(t, []string{models.CodeInvalidRange}, codes(result))

	result = FreeForAll{}.Validate(models.Config{Format: models.FormatFFA, Participants: players, Options: &models.FFAOptions{LobbySize: 4, AdvancePerMatch: 4}})
	assert.Equal(t, []string{models.CodeInvalidRange}, codes(result))
}
