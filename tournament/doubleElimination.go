package tournament

import (
	"github.com/justinjudd/tourney/models"
)

// DoubleElimination fulfills the Format interface. Provides the logic for generating a Double Elimination bracket, where a participant is out after their second loss
type DoubleElimination struct{}

func (DoubleElimination) Type() models.FormatType {
	return models.FormatDoubleElimination
}

func (DoubleElimination) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatDoubleElimination,
		Participants: participants,
		Options: &models.DoubleEliminationOptions{
			Seeding:     models.SeedingOptions{Method: models.SeedingSeeded},
			EnableReset: true,
		},
	}
}

func (DoubleElimination) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 2)
	opts, ok := cfg.Options.(*models.DoubleEliminationOptions)
	if cfg.Options != nil && !ok {
		r.Add("options", models.CodeInvalidOption, "expected double elimination options, got %s", cfg.Options.Format())
		return r
	}
	if opts != nil {
		validateSeeding(&r, cfg.Participants, opts.BracketSize, opts.Seeding)
	}
	return r
}

func (d DoubleElimination) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.DoubleEliminationOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.DoubleEliminationOptions); !ok {
			return nil, optionsMismatch(d.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format:  models.FormatDoubleElimination,
		Bracket: GenerateDoubleElimination(cfg.Participants, *opts),
	}, nil
}

// GenerateDoubleElimination builds the winners bracket like a single elimination bracket, plus the losers bracket every first loss drops into and the grand final. With EnableReset a conditional second grand final is added, played only when the losers bracket champion wins the first
func GenerateDoubleElimination(participants []*models.Participant, opts models.DoubleEliminationOptions) *models.BracketStructure {
	totalSlots := BracketSize(opts.BracketSize, len(participants))
	if len(participants) < 2 {
		return &models.BracketStructure{TotalSlots: totalSlots, Rounds: []*models.Round{}}
	}
	slots := ApplySeeding(participants, seedingConfig(totalSlots, opts.Seeding))
	return buildDoubleElimination(seededSources(slots), opts.EnableReset)
}
