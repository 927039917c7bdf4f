package models

// FormatType is used to discern between different competition formats. Elimination, league, free-for-all, hybrid and racing formats are supported
type FormatType string

const (
	FormatSingleElimination FormatType = "single-elimination"
	FormatDoubleElimination FormatType = "double-elimination"
	FormatRoundRobin        FormatType = "round-robin"
	FormatSwiss             FormatType = "swiss"
	FormatFFA               FormatType = "ffa"
	FormatFIFA              FormatType = "fifa"
	FormatRacingMK          FormatType = "racing-mk"
	FormatRacingF1          FormatType = "racing-f1"
)

// FormatTypes lists every known format in display order
var FormatTypes = []FormatType{
	FormatSingleElimination,
	FormatDoubleElimination,
	FormatRoundRobin,
	FormatSwiss,
	FormatFFA,
	FormatFIFA,
	FormatRacingMK,
	FormatRacingF1,
}

// Valid reports whether f is one of the known formats
func (f FormatType) Valid() bool {
	for _, known := range FormatTypes {
		if f == known {
			return true
		}
	}
	return false
}

// Participant is an entrant of a tournament. Generated structures reference the caller's participants, they are never copied
type Participant struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Seed        int                    `json:"seed,omitempty"`
	Team        string                 `json:"team,omitempty"`
	Nationality string                 `json:"nationality,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// SeedOrDefault returns the participant's explicit seed, or its 1-based list position when no seed was set
func (p *Participant) SeedOrDefault(index int) int {
	if p.Seed > 0 {
		return p.Seed
	}
	return index + 1
}

// Structure is the output of a generator. Exactly the parts relevant to the format are set
type Structure struct {
	Format  FormatType        `json:"format"`
	Bracket *BracketStructure `json:"bracket,omitempty"`
	League  *LeagueStructure  `json:"league,omitempty"`
	Stages  *StageStructure   `json:"stages,omitempty"`
	Racing  *RacingStructure  `json:"racing,omitempty"`
}
