package tournament

import (
	"github.com/justinjudd/tourney/models"
)

// SingleElimination fulfills the Format interface. Provides the logic for generating a Single Elimination bracket. Commonly used as a conclusion of a season or competition
type SingleElimination struct{}

func (SingleElimination) Type() models.FormatType {
	return models.FormatSingleElimination
}

func (SingleElimination) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatSingleElimination,
		Participants: participants,
		Options: &models.SingleEliminationOptions{
			Seeding: models.SeedingOptions{Method: models.SeedingSeeded},
		},
	}
}

func (SingleElimination) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 2)
	opts, ok := cfg.Options.(*models.SingleEliminationOptions)
	if cfg.Options != nil && !ok {
		r.Add("options", models.CodeInvalidOption, "expected single elimination options, got %s", cfg.Options.Format())
		return r
	}
	if opts != nil {
		validateSeeding(&r, cfg.Participants, opts.BracketSize, opts.Seeding)
	}
	return r
}

func (s SingleElimination) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.SingleEliminationOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.SingleEliminationOptions); !ok {
			return nil, optionsMismatch(s.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format:  models.FormatSingleElimination,
		Bracket: GenerateSingleElimination(cfg.Participants, *opts),
	}, nil
}

// GenerateSingleElimination seeds the participants into a power of two bracket and builds every round. Byes are resolved and carried forward before returning. Fewer than two participants produce a bracket with no rounds
func GenerateSingleElimination(participants []*models.Participant, opts models.SingleEliminationOptions) *models.BracketStructure {
	totalSlots := BracketSize(opts.BracketSize, len(participants))
	if len(participants) < 2 {
		return &models.BracketStructure{TotalSlots: totalSlots, Rounds: []*models.Round{}}
	}
	slots := ApplySeeding(participants, seedingConfig(totalSlots, opts.Seeding))
	return buildSingleElimination(seededSources(slots), opts.ThirdPlaceMatch)
}
