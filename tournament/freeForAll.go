package tournament

import (
	"fmt"
	"sort"

	"github.com/justinjudd/tourney/models"
)

// FreeForAll fulfills the Format interface. Participants play in lobbies, the top finishers of every lobby move on to the next stage until a single final lobby remains
type FreeForAll struct{}

func (FreeForAll) Type() models.FormatType {
	return models.FormatFFA
}

func (FreeForAll) DefaultConfig(participants []*models.Participant) models.Config {
	return models.Config{
		Format:       models.FormatFFA,
		Participants: participants,
		Options:      &models.FFAOptions{LobbySize: 8, AdvancePerMatch: 4, FinalSize: 8},
	}
}

func (FreeForAll) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 2)
	if cfg.Options == nil {
		return r
	}
	opts, ok := cfg.Options.(*models.FFAOptions)
	if !ok {
		r.Add("options", models.CodeInvalidOption, "expected free for all options, got %s", cfg.Options.Format())
		return r
	}
	if opts.LobbySize <= 0 {
		r.Add("lobbySize", models.CodeInvalidRange, "lobby size must be positive")
	}
	if opts.AdvancePerMatch <= 0 {
		r.Add("advancePerMatch", models.CodeInvalidRange, "at least one participant must advance from each match")
	} else if opts.LobbySize > 0 && opts.AdvancePerMatch >= opts.LobbySize {
		r.Add("advancePerMatch", models.CodeInvalidRange, "advance count %d must be smaller than the lobby size %d", opts.AdvancePerMatch, opts.LobbySize)
	}
	if opts.FinalSize < 0 {
		r.Add("finalSize", models.CodeInvalidRange, "final size cannot be negative")
	} else if opts.LobbySize > 0 && opts.FinalSize > opts.LobbySize {
		r.Add("finalSize", models.CodeInvalidRange, "final size %d does not fit in a lobby of %d", opts.FinalSize, opts.LobbySize)
	}
	return r
}

func (f FreeForAll) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.FFAOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.FFAOptions); !ok {
			return nil, optionsMismatch(f.Type(), cfg.Options)
		}
	}
	return &models.Structure{
		Format: models.FormatFFA,
		Stages: GenerateStages(cfg.Participants, *opts),
	}, nil
}

// GenerateStages splits the roster into balanced lobbies of at most LobbySize, advancing the first AdvancePerMatch of every lobby, while more than FinalSize participants remain.
// When balanced lobbies would advance everybody the stage uses consecutive full lobbies instead. A last stage holds everybody left in one lobby
func GenerateStages(participants []*models.Participant, opts models.FFAOptions) *models.StageStructure {
	structure := &models.StageStructure{Stages: []*models.Stage{}}
	var roster []*models.Participant
	for _, p := range participants {
		if p != nil {
			roster = append(roster, p)
		}
	}
	if len(roster) < 2 {
		return structure
	}

	lobbySize := opts.LobbySize
	if lobbySize <= 0 {
		lobbySize = len(roster)
	}
	finalSize := opts.FinalSize
	if finalSize <= 0 || finalSize > lobbySize {
		finalSize = lobbySize
	}

	for len(roster) > finalSize {
		number := len(structure.Stages) + 1
		stage := &models.Stage{
			ID:               fmt.Sprintf("stage-%d", number),
			Name:             fmt.Sprintf("Stage %d", number),
			StageNumber:      number,
			AdvancementRules: models.AdvancementRules{AdvanceCount: opts.AdvancePerMatch, AdvanceMethod: models.AdvanceTopN},
		}
		matches, next := stageLobbies(number, roster, splitSizes(len(roster), lobbySize), opts.AdvancePerMatch)
		if len(next) >= len(roster) {
			// balanced lobbies can all be small enough to advance everybody
			matches, next = stageLobbies(number, roster, chunkSizes(len(roster), lobbySize), opts.AdvancePerMatch)
		}
		if len(next) >= len(roster) || len(next) == 0 {
			break
		}
		stage.Matches = matches
		structure.Stages = append(structure.Stages, stage)
		roster = next
	}

	number := len(structure.Stages) + 1
	structure.Stages = append(structure.Stages, &models.Stage{
		ID:          fmt.Sprintf("stage-%d", number),
		Name:        "Final",
		StageNumber: number,
		Matches: []*models.StageMatch{{
			ID:           fmt.Sprintf("stage-%d-match-1", number),
			Participants: roster,
		}},
		AdvancementRules: models.AdvancementRules{AdvanceCount: 1, AdvanceMethod: models.AdvanceTopN},
	})
	return structure
}

// stageLobbies cuts the roster into lobbies of the given sizes and collects who advances from each
func stageLobbies(number int, roster []*models.Participant, sizes []int, advance int) ([]*models.StageMatch, []*models.Participant) {
	var matches []*models.StageMatch
	var next []*models.Participant
	start := 0
	for i, size := range sizes {
		match := &models.StageMatch{
			ID:           fmt.Sprintf("stage-%d-match-%d", number, i+1),
			Participants: roster[start : start+size : start+size],
		}
		start += size
		matches = append(matches, match)
		next = append(next, Advancing(match, advance)...)
	}
	return matches, next
}

// Advancing returns the top count participants of a lobby. Recorded placements decide when present, before results the slot order stands in for placement
func Advancing(match *models.StageMatch, count int) []*models.Participant {
	if count <= 0 {
		return nil
	}
	if len(match.Results) == 0 {
		if count > len(match.Participants) {
			count = len(match.Participants)
		}
		out := make([]*models.Participant, count)
		copy(out, match.Participants[:count])
		return out
	}

	results := make([]*models.StageMatchResult, len(match.Results))
	copy(results, match.Results)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Placement < results[j].Placement
	})
	var out []*models.Participant
	for _, r := range results {
		if len(out) == count {
			break
		}
		out = append(out, r.Participant)
	}
	return out
}
