package tournament

import (
	"fmt"

	"github.com/justinjudd/tourney/models"
)

// RacingMK fulfills the Format interface. Provides kart style racing: time trials, points based grand prix cups and knockout cups
type RacingMK struct{}

func (RacingMK) Type() models.FormatType {
	return models.FormatRacingMK
}

func (RacingMK) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatRacingMK,
		Participants: participants,
		Options: &models.RacingMKOptions{
			Mode:   models.RacingModeGrandPrix,
			Tracks: []string{"Race 1", "Race 2", "Race 3", "Race 4"},
		},
	}
}

func (RacingMK) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 2)
	if cfg.Options == nil {
		return r
	}
	opts, ok := cfg.Options.(*models.RacingMKOptions)
	if !ok {
		r.Add("options", models.CodeInvalidOption, "expected racing-mk options, got %s", cfg.Options.Format())
		return r
	}
	switch opts.Mode {
	case "", models.RacingModeGrandPrix, models.RacingModeTimeTrial:
		if len(opts.Tracks) == 0 {
			r.Add("tracks", models.CodeInvalidRange, "at least one track is required")
		}
		if opts.EliminatePerRace != 0 || opts.FinalFieldSize != 0 {
			r.Add("mode", models.CodeConflictingOptions, "elimination settings only apply to a knockout cup")
		}
	case models.RacingModeKnockoutCup:
		if opts.EliminatePerRace < 0 {
			r.Add("eliminatePerRace", models.CodeInvalidRange, "eliminations per race cannot be negative")
		}
		if opts.FinalFieldSize < 0 {
			r.Add("finalFieldSize", models.CodeInvalidRange, "final field size cannot be negative")
		} else if opts.FinalFieldSize == 1 || (opts.FinalFieldSize > 0 && opts.FinalFieldSize >= len(cfg.Participants)) {
			r.Add("finalFieldSize", models.CodeInvalidRange, "final field size must be between 2 and %d", len(cfg.Participants)-1)
		}
	default:
		r.Add("mode", models.CodeInvalidOption, "unknown racing-mk mode %q", opts.Mode)
	}
	validatePointsTable(&r, "pointsTable", opts.PointsTable)
	return r
}

func (mk RacingMK) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.RacingMKOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.RacingMKOptions); !ok {
			return nil, optionsMismatch(mk.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format: models.FormatRacingMK,
		Racing: GenerateRacingMK(cfg.Participants, *opts),
	}, nil
}

func mkPointsTable(opts models.RacingMKOptions) []int {
	if len(opts.PointsTable) == 0 {
		return MKPointsTable
	}
	return opts.PointsTable
}

func trackName(tracks []string, i int) string {
	if len(tracks) == 0 {
		return fmt.Sprintf("Race %d", i+1)
	}
	return tracks[i%len(tracks)]
}

// GenerateRacingMK builds the events of a kart racing mode. A time trial runs one timed session per track, a grand prix one race per track with standings from the points table, a knockout cup races until the final field remains
func GenerateRacingMK(participants []*models.Participant, opts models.RacingMKOptions) *models.RacingStructure {
	mode := opts.Mode
	if mode == "" {
		mode = models.RacingModeGrandPrix
	}
	racing := &models.RacingStructure{Mode: mode, Events: []*models.Event{}}
	grid := bySeed(participants)
	if len(grid) < 2 {
		return racing
	}

	switch mode {
	case models.RacingModeTimeTrial:
		for i, track := range opts.Tracks {
			racing.Events = append(racing.Events, newEvent(i+1, track, grid, models.SessionQualifying))
		}
	case models.RacingModeKnockoutCup:
		return AdvanceKnockoutCup(participants, opts, nil)
	default:
		for i, track := range opts.Tracks {
			racing.Events = append(racing.Events, newEvent(i+1, track, grid, models.SessionRace))
		}
		racing.Standings = ComputeRacingStandings(participants, racing.Events, mkPointsTable(opts), nil, false)
	}
	return racing
}

// AdvanceKnockoutCup replays a knockout cup. Events of previous whose race has results keep their sessions and eliminate on those results, every other event is generated on the surviving field.
// Without results the lowest grid places drop out, so a fresh cup shows the full shape of the competition
func AdvanceKnockoutCup(participants []*models.Participant, opts models.RacingMKOptions, previous *models.RacingStructure) *models.RacingStructure {
	racing := &models.RacingStructure{Mode: models.RacingModeKnockoutCup, Events: []*models.Event{}}
	field := bySeed(participants)
	if len(field) < 2 {
		return racing
	}
	eliminate := opts.EliminatePerRace
	if eliminate <= 0 {
		eliminate = 1
	}
	finalField := opts.FinalFieldSize
	if finalField < 2 {
		finalField = 2
	}

	recorded := func(i int) *models.Event {
		if previous == nil || i >= len(previous.Events) {
			return nil
		}
		if !sessionRecorded(previous.Events[i].Session(models.SessionRace)) {
			return nil
		}
		return previous.Events[i]
	}

	for len(field) > finalField {
		i := len(racing.Events)
		event := newEvent(i+1, trackName(opts.Tracks, i), field, models.SessionRace)
		if old := recorded(i); old != nil {
			event = &models.Event{ID: old.ID, Name: old.Name, EventNumber: old.EventNumber, Sessions: old.Sessions}
		}
		count := eliminate
		if len(field)-count < finalField {
			count = len(field) - finalField
		}
		survivors, out := EliminateAfter(event.Session(models.SessionRace), count)
		event.Eliminated = out
		racing.Events = append(racing.Events, event)
		if len(survivors) == len(field) || len(survivors) == 0 {
			break
		}
		field = survivors
	}

	i := len(racing.Events)
	final := newEvent(i+1, "Final", field, models.SessionRace)
	if old := recorded(i); old != nil {
		final = &models.Event{ID: old.ID, Name: old.Name, EventNumber: old.EventNumber, Sessions: old.Sessions}
	}
	racing.Events = append(racing.Events, final)
	return racing
}

// sessionRecorded reports whether any result of the session has been entered
func sessionRecorded(s *models.Session) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Results {
		if r != nil && (r.Position >= 1 || r.Time != nil || !r.Classified()) {
			return true
		}
	}
	return false
}
