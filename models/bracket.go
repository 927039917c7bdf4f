package models

// BracketSide names which part of an elimination bracket a match belongs to
type BracketSide string

const (
	BracketWinners    BracketSide = "winners"
	BracketLosers     BracketSide = "losers"
	BracketGrandFinal BracketSide = "grand-final"
	BracketThirdPlace BracketSide = "third-place"
)

// ThirdPlaceRoundID is the round id carried by the unlinked third place match
const ThirdPlaceRoundID = "third-place"

// Match is a single pairing inside an elimination bracket
type Match struct {
	ID           string       `json:"id"`
	RoundID      string       `json:"roundId"`
	MatchNumber  int          `json:"matchNumber"`
	Bracket      BracketSide  `json:"bracket"`
	Participant1 *Participant `json:"participant1"`
	Participant2 *Participant `json:"participant2"`
	Winner       *Participant `json:"winner,omitempty"`

	// FeedsInto is the id of the match the winner advances to, empty for a final
	FeedsInto string `json:"feedsInto,omitempty"`
	// LoserFeedsInto is the id of the losers bracket match the loser drops into
	LoserFeedsInto string `json:"loserFeedsInto,omitempty"`

	// IsBye marks a walkover. A match fed by a bye is flagged before its participant arrives
	IsBye bool `json:"isBye"`
	// IsReset marks the conditional second grand final
	IsReset bool `json:"isReset,omitempty"`

	// Source1 and Source2 label where a slot was seeded from, such as a group position "A1"
	Source1 string `json:"source1,omitempty"`
	Source2 string `json:"source2,omitempty"`
}

// Round is an ordered batch of matches of one bracket
type Round struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RoundNumber int      `json:"roundNumber"`
	Matches     []*Match `json:"matches"`
}

// BracketStructure is the generated graph of an elimination format
type BracketStructure struct {
	TotalSlots   int      `json:"totalSlots"`
	Rounds       []*Round `json:"rounds"`
	LosersRounds []*Round `json:"losersRounds,omitempty"`
	GrandFinal   []*Match `json:"grandFinal,omitempty"`
	ThirdPlace   *Match   `json:"thirdPlace,omitempty"`
}

// AllMatches returns every match of the bracket, winners rounds first
func (b *BracketStructure) AllMatches() []*Match {
	var matches []*Match
	for _, r := range b.Rounds {
		matches = append(matches, r.Matches...)
	}
	for _, r := range b.LosersRounds {
		matches = append(matches, r.Matches...)
	}
	matches = append(matches, b.GrandFinal...)
	if b.ThirdPlace != nil {
		matches = append(matches, b.ThirdPlace)
	}
	return matches
}

// FindMatch looks a match up by id
func (b *BracketStructure) FindMatch(id string) *Match {
	for _, m := range b.AllMatches() {
		if m.ID == id {
			return m
		}
	}
	return nil
}
