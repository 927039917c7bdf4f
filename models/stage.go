package models

// AdvanceMethod decides how participants leave a stage match
type AdvanceMethod string

const AdvanceTopN AdvanceMethod = "top-n"

// AdvancementRules describes how many participants leave each match of a stage
type AdvancementRules struct {
	AdvanceCount  int           `json:"advanceCount"`
	AdvanceMethod AdvanceMethod `json:"advanceMethod"`
}

// StageMatchResult is the placement of one participant in a free-for-all lobby
type StageMatchResult struct {
	Participant *Participant `json:"participant"`
	Placement   int          `json:"placement"`
	Advances    bool         `json:"advances"`
}

// StageMatch is a single free-for-all lobby
type StageMatch struct {
	ID           string              `json:"id"`
	Participants []*Participant      `json:"participants"`
	Results      []*StageMatchResult `json:"results,omitempty"`
}

// Stage is one narrowing phase of a free-for-all tournament
type Stage struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	StageNumber      int              `json:"stageNumber"`
	Matches          []*StageMatch    `json:"matches"`
	AdvancementRules AdvancementRules `json:"advancementRules"`
}

// Roster returns the participants of every match of the stage
func (s *Stage) Roster() []*Participant {
	var roster []*Participant
	for _, m := range s.Matches {
		roster = append(roster, m.Participants...)
	}
	return roster
}

// StageStructure is the generated free-for-all stage list
type StageStructure struct {
	Stages []*Stage `json:"stages"`
}
