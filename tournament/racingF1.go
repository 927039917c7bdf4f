package tournament

import (
	"github.com/justinjudd/tourney/models"
)

// RacingF1 fulfills the Format interface. Provides motorsport weekends: a single grand prix, or a championship of events with optional sprints and a constructors table
type RacingF1 struct{}

func (RacingF1) Type() models.FormatType {
	return models.FormatRacingF1
}

func (RacingF1) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatRacingF1,
		Participants: participants,
		Options: &models.RacingF1Options{
			Mode:   models.RacingModeSingleGP,
			Events: []models.F1Event{{Name: "Grand Prix"}},
		},
	}
}

func (RacingF1) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 2)
	if cfg.Options == nil {
		return r
	}
	opts, ok := cfg.Options.(*models.RacingF1Options)
	if !ok {
		r.Add("options", models.CodeInvalidOption, "expected racing-f1 options, got %s", cfg.Options.Format())
		return r
	}
	switch opts.Mode {
	case "", models.RacingModeSingleGP:
		if len(opts.Events) > 1 {
			r.Add("events", models.CodeConflictingOptions, "a single grand prix has one event, got %d", len(opts.Events))
		}
		for _, e := range opts.Events {
			if e.Sprint {
				r.Add("events", models.CodeConflictingOptions, "a single grand prix runs qualifying and the race only")
			}
		}
	case models.RacingModeChampionship:
		if len(opts.Events) == 0 {
			r.Add("events", models.CodeInvalidRange, "a championship needs at least one event")
		}
	default:
		r.Add("mode", models.CodeInvalidOption, "unknown racing-f1 mode %q", opts.Mode)
	}
	if opts.TeamStandings {
		for _, p := range cfg.Participants {
			if p != nil && p.Team == "" {
				r.Add("participants", models.CodeInvalidOption, "team standings need a team for participant %q", p.ID)
			}
		}
	}
	validatePointsTable(&r, "pointsTable", opts.PointsTable)
	validatePointsTable(&r, "sprintPointsTable", opts.SprintPointsTable)
	return r
}

func (f1 RacingF1) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.RacingF1Options{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.RacingF1Options); !ok {
			return nil, optionsMismatch(f1.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format: models.FormatRacingF1,
		Racing: GenerateRacingF1(cfg.Participants, *opts),
	}, nil
}

// GenerateRacingF1 builds the race weekends. Every weekend qualifies first, and the sprint and the race start from the qualifying grid. Standings accumulate race and sprint points over every weekend
func GenerateRacingF1(participants []*models.Participant, opts models.RacingF1Options) *models.RacingStructure {
	mode := opts.Mode
	if mode == "" {
		mode = models.RacingModeSingleGP
	}
	racing := &models.RacingStructure{Mode: mode, Events: []*models.Event{}}
	grid := bySeed(participants)
	if len(grid) < 2 {
		return racing
	}

	events := opts.Events
	if mode == models.RacingModeSingleGP {
		weekend := models.F1Event{Name: "Grand Prix"}
		if len(events) > 0 && events[0].Name != "" {
			weekend.Name = events[0].Name
		}
		events = []models.F1Event{weekend}
	}
	for i, e := range events {
		name := e.Name
		if name == "" {
			name = trackName(nil, i)
		}
		event := newEvent(i+1, name, grid, models.SessionQualifying)
		startingGrid := GridFromQualifying(event.Sessions[0])
		if e.Sprint {
			event.Sessions = append(event.Sessions, newEvent(i+1, name, startingGrid, models.SessionSprint).Sessions...)
		}
		event.Sessions = append(event.Sessions, newEvent(i+1, name, startingGrid, models.SessionRace).Sessions...)
		racing.Events = append(racing.Events, event)
	}
	racing.Standings = AdvanceF1Standings(participants, opts, racing.Events)
	return racing
}

// AdvanceF1Standings recomputes the drivers and constructors tables from the results recorded in events
func AdvanceF1Standings(participants []*models.Participant, opts models.RacingF1Options, events []*models.Event) *models.RacingStandings {
	table, sprint := opts.PointsTable, opts.SprintPointsTable
	if len(table) == 0 {
		table = F1PointsTable
	}
	if len(sprint) == 0 {
		sprint = F1SprintPointsTable
	}
	return ComputeRacingStandings(participants, events, table, sprint, opts.TeamStandings)
}
