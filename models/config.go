package models

import (
	"encoding/json"
	"fmt"
)

// SeedingMethod selects how participants are placed into bracket slots
type SeedingMethod string

const (
	SeedingRandom SeedingMethod = "random"
	SeedingSeeded SeedingMethod = "seeded"
	SeedingManual SeedingMethod = "manual"
)

// SeedingOptions configures slot placement for elimination brackets
type SeedingOptions struct {
	Method SeedingMethod `json:"method"`
	// ManualOrder lists participant ids in slot order, used by the manual method
	ManualOrder []string `json:"manualOrder,omitempty"`
	// RandomSeed makes the random method reproducible. Nil uses the process wide source
	RandomSeed *int64 `json:"randomSeed,omitempty"`
}

// Scoring assigns league points per outcome
type Scoring struct {
	Win  int `json:"win"`
	Draw int `json:"draw"`
	Loss int `json:"loss"`
	// Bye of nil scores a bye as a win
	Bye *int `json:"bye,omitempty"`
}

// ByePoints returns the points of a bye, the win points unless Bye is set
func (s Scoring) ByePoints() int {
	if s.Bye == nil {
		return s.Win
	}
	return *s.Bye
}

// DefaultScoring is 3 points for a win or a bye, 1 for a draw
var DefaultScoring = Scoring{Win: 3, Draw: 1, Loss: 0}

// ScoringOrDefault returns the configured scoring, or DefaultScoring when none is set
func ScoringOrDefault(s *Scoring) Scoring {
	if s == nil {
		return DefaultScoring
	}
	return *s
}

// Tiebreaker is a metric used to order participants level on points
type Tiebreaker string

const (
	TiebreakScoreDifference Tiebreaker = "score-difference"
	TiebreakScoreFor        Tiebreaker = "score-for"
	TiebreakHeadToHead      Tiebreaker = "head-to-head"
	TiebreakWins            Tiebreaker = "wins"
	TiebreakSeed            Tiebreaker = "seed"
)

// DefaultTiebreakers is used when a league configures no chain
var DefaultTiebreakers = []Tiebreaker{TiebreakScoreDifference, TiebreakScoreFor, TiebreakHeadToHead}

// FormatOptions is the closed set of per format option structs. Only types of this package implement it
type FormatOptions interface {
	Format() FormatType
	formatOptions()
}

type SingleEliminationOptions struct {
	// BracketSize of 0 sizes the bracket from the participant count
	BracketSize     int            `json:"bracketSize"`
	Seeding         SeedingOptions `json:"seeding"`
	ThirdPlaceMatch bool           `json:"thirdPlaceMatch"`
}

type DoubleEliminationOptions struct {
	BracketSize int            `json:"bracketSize"`
	Seeding     SeedingOptions `json:"seeding"`
	EnableReset bool           `json:"enableReset"`
}

type RoundRobinOptions struct {
	// Rounds is the number of full round trips, 2 for a double round robin
	Rounds       int          `json:"rounds"`
	GroupCount   int          `json:"groupCount"`
	SwapHomeAway bool         `json:"swapHomeAway"`
	Scoring      *Scoring     `json:"scoring,omitempty"`
	Tiebreakers  []Tiebreaker `json:"tiebreakers,omitempty"`
}

type SwissOptions struct {
	// Rounds of 0 plays ceil(log2 n) rounds
	Rounds      int          `json:"rounds"`
	Scoring     *Scoring     `json:"scoring,omitempty"`
	Tiebreakers []Tiebreaker `json:"tiebreakers,omitempty"`
}

type FFAOptions struct {
	LobbySize       int `json:"lobbySize"`
	AdvancePerMatch int `json:"advancePerMatch"`
	FinalSize       int `json:"finalSize"`
}

// GroupDistribution decides how seeds are dealt into groups
type GroupDistribution string

const (
	DistributionSnake      GroupDistribution = "snake"
	DistributionSequential GroupDistribution = "sequential"
)

type KnockoutOptions struct {
	// Type is single-elimination or double-elimination
	Type            FormatType `json:"type"`
	ThirdPlaceMatch bool       `json:"thirdPlaceMatch"`
	EnableReset     bool       `json:"enableReset"`
}

type FIFAOptions struct {
	GroupCount      int               `json:"groupCount"`
	AdvancePerGroup int               `json:"advancePerGroup"`
	Distribution    GroupDistribution `json:"distribution"`
	// GroupRounds is the number of round trips played inside each group
	GroupRounds int             `json:"groupRounds"`
	Knockout    KnockoutOptions `json:"knockout"`
	Scoring     *Scoring        `json:"scoring,omitempty"`
	Tiebreakers []Tiebreaker    `json:"tiebreakers,omitempty"`
}

const (
	RacingModeTimeTrial    = "time-trial"
	RacingModeGrandPrix    = "grand-prix"
	RacingModeKnockoutCup  = "knockout-cup"
	RacingModeSingleGP     = "single-gp"
	RacingModeChampionship = "championship"
)

type RacingMKOptions struct {
	Mode             string   `json:"mode"`
	Tracks           []string `json:"tracks"`
	PointsTable      []int    `json:"pointsTable,omitempty"`
	EliminatePerRace int      `json:"eliminatePerRace,omitempty"`
	FinalFieldSize   int      `json:"finalFieldSize,omitempty"`
}

// F1Event is one grand prix weekend of a championship
type F1Event struct {
	Name   string `json:"name"`
	Sprint bool   `json:"sprint"`
}

type RacingF1Options struct {
	Mode              string    `json:"mode"`
	Events            []F1Event `json:"events"`
	PointsTable       []int     `json:"pointsTable,omitempty"`
	SprintPointsTable []int     `json:"sprintPointsTable,omitempty"`
	TeamStandings     bool      `json:"teamStandings"`
}

func (*SingleEliminationOptions) Format() FormatType { return FormatSingleElimination }
func (*DoubleEliminationOptions) Format() FormatType { return FormatDoubleElimination }
func (*RoundRobinOptions) Format() FormatType        { return FormatRoundRobin }
func (*SwissOptions) Format() FormatType             { return FormatSwiss }
func (*FFAOptions) Format() FormatType               { return FormatFFA }
func (*FIFAOptions) Format() FormatType              { return FormatFIFA }
func (*RacingMKOptions) Format() FormatType          { return FormatRacingMK }
func (*RacingF1Options) Format() FormatType          { return FormatRacingF1 }

func (*SingleEliminationOptions) formatOptions() {}
func (*DoubleEliminationOptions) formatOptions() {}
func (*RoundRobinOptions) formatOptions()        {}
func (*SwissOptions) formatOptions()             {}
func (*FFAOptions) formatOptions()               {}
func (*FIFAOptions) formatOptions()              {}
func (*RacingMKOptions) formatOptions()          {}
func (*RacingF1Options) formatOptions()          {}

// NewOptions returns an empty options value for the format
func NewOptions(f FormatType) (FormatOptions, error) {
	switch f {
	case FormatSingleElimination:
		return &SingleEliminationOptions{}, nil
	case FormatDoubleElimination:
		return &DoubleEliminationOptions{}, nil
	case FormatRoundRobin:
		return &RoundRobinOptions{}, nil
	case FormatSwiss:
		return &SwissOptions{}, nil
	case FormatFFA:
		return &FFAOptions{}, nil
	case FormatFIFA:
		return &FIFAOptions{}, nil
	case FormatRacingMK:
		return &RacingMKOptions{}, nil
	case FormatRacingF1:
		return &RacingF1Options{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Config is everything a generator needs: the roster plus the options of one format
type Config struct {
	Format       FormatType
	Name         string
	Participants []*Participant
	Options      FormatOptions
}

type configJSON struct {
	Format       FormatType      `json:"format"`
	Name         string          `json:"name,omitempty"`
	Participants []*Participant  `json:"participants"`
	Options      json.RawMessage `json:"options,omitempty"`
}

// MarshalJSON writes the options inline, keyed by the format discriminator
func (c Config) MarshalJSON() ([]byte, error) {
	out := configJSON{Format: c.Format, Name: c.Name, Participants: c.Participants}
	if c.Options != nil {
		if c.Options.Format() != c.Format {
			return nil, fmt.Errorf("options of format %q attached to a %q config", c.Options.Format(), c.Format)
		}
		raw, err := json.Marshal(c.Options)
		if err != nil {
			return nil, fmt.Errorf("Unable to encode %s options: %w", c.Format, err)
		}
		out.Options = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the options into the concrete struct selected by the format
func (c *Config) UnmarshalJSON(data []byte) error {
	var in configJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Format = in.Format
	c.Name = in.Name
	c.Participants = in.Participants
	c.Options = nil
	if len(in.Options) == 0 || string(in.Options) == "null" {
		return nil
	}
	opts, err := NewOptions(in.Format)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(in.Options, opts); err != nil {
		return fmt.Errorf("Unable to decode %s options: %w", in.Format, err)
	}
	c.Options = opts
	return nil
}
