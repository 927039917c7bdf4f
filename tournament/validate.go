package tournament

import (
	"github.com/justinjudd/tourney/models"
)

// validateParticipants checks the roster shared by every format: enough entrants, ids present and unique
func validateParticipants(r *models.ValidationResult, participants []*models.Participant, minimum int) {
	if len(participants) < minimum {
		r.Add("participants", models.CodeInsufficientParticipants, "at least %d participants are required, got %d", minimum, len(participants))
	}
	seen := map[string]bool{}
	for i, p := range participants {
		if p == nil || p.ID == "" {
			r.Add("participants", models.CodeMissingParticipantID, "participant %d has no id", i+1)
			continue
		}
		if seen[p.ID] {
			r.Add("participants", models.CodeDuplicateParticipant, "participant id %q is used more than once", p.ID)
		}
		seen[p.ID] = true
		if p.Seed < 0 {
			r.Add("participants", models.CodeInvalidRange, "participant %q has a negative seed", p.ID)
		}
	}
}

func validateSeeding(r *models.ValidationResult, participants []*models.Participant, bracketSize int, opts models.SeedingOptions) {
	if bracketSize < 0 {
		r.Add("bracketSize", models.CodeInvalidRange, "bracket size cannot be negative")
	}
	switch opts.Method {
	case "", models.SeedingSeeded, models.SeedingRandom:
		if len(opts.ManualOrder) > 0 {
			r.Add("seeding.manualOrder", models.CodeConflictingOptions, "a manual order is only used by the manual seeding method")
		}
	case models.SeedingManual:
		if len(opts.ManualOrder) == 0 {
			r.Add("seeding.manualOrder", models.CodeManualOrderIncomplete, "manual seeding needs a manual order")
			return
		}
		listed := map[string]bool{}
		for _, id := range opts.ManualOrder {
			listed[id] = true
		}
		for _, p := range participants {
			if p != nil && !listed[p.ID] {
				r.Add("seeding.manualOrder", models.CodeManualOrderIncomplete, "participant %q is missing from the manual order", p.ID)
			}
		}
	default:
		r.Add("seeding.method", models.CodeInvalidOption, "unknown seeding method %q", opts.Method)
	}
}

func validateScoring(r *models.ValidationResult, scoring *models.Scoring, tiebreakers []models.Tiebreaker) {
	if scoring != nil && (scoring.Win < scoring.Draw || scoring.Draw < scoring.Loss) {
		r.Add("scoring", models.CodeInvalidRange, "points must not reward a loss over a draw or a draw over a win")
	}
	for _, tb := range tiebreakers {
		switch tb {
		case models.TiebreakScoreDifference, models.TiebreakScoreFor, models.TiebreakHeadToHead, models.TiebreakWins, models.TiebreakSeed:
		default:
			r.Add("tiebreakers", models.CodeInvalidOption, "unknown tiebreaker %q", tb)
		}
	}
}

func validResult() models.ValidationResult {
	return models.ValidationResult{Valid: true}
}
