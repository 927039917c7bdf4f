package tourney

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/justinjudd/tourney/models"
)

// Version is written into every exported envelope
const Version = "1.0"

var (
	// ErrUnsupportedVersion is returned by Import for envelopes written by an incompatible version
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	// ErrFormatMismatch is returned when the envelope, config and structure disagree on the format
	ErrFormatMismatch = errors.New("envelope format mismatch")
)

// Envelope is the persisted form of a generated tournament
type Envelope struct {
	ID          string                 `json:"id"`
	Version     string                 `json:"version"`
	Format      models.FormatType      `json:"format"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Config      models.Config          `json:"config"`
	Structure   *models.Structure      `json:"structure"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// NewEnvelope wraps a config and the structure generated from it
func NewEnvelope(config models.Config, structure *models.Structure, metadata map[string]interface{}) *Envelope {
	return &Envelope{
		ID:          xid.New().String(),
		Version:     Version,
		Format:      config.Format,
		GeneratedAt: time.Now().UTC(),
		Config:      config,
		Structure:   structure,
		Metadata:    metadata,
	}
}

// Export serializes a config and its structure as an indented JSON envelope
func Export(config models.Config, structure *models.Structure, metadata map[string]interface{}) ([]byte, error) {
	return NewEnvelope(config, structure, metadata).Marshal()
}

// Marshal serializes the envelope as indented JSON
func (e *Envelope) Marshal() ([]byte, error) {
	if e.Structure != nil && e.Structure.Format != e.Format {
		return nil, fmt.Errorf("%w: structure is %q, envelope is %q", ErrFormatMismatch, e.Structure.Format, e.Format)
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("Unable to export tournament: %w", err)
	}
	return data, nil
}

// Import decodes an envelope written by Export. Every participant referenced by the structure is relinked to the matching config participant, so the structure shares participant values with the config again
func Import(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("Unable to import tournament: %w", err)
	}
	if e.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, e.Version)
	}
	if !e.Format.Valid() {
		return nil, fmt.Errorf("%w: unknown format %q", ErrFormatMismatch, e.Format)
	}
	if e.Config.Format != e.Format {
		return nil, fmt.Errorf("%w: config is %q, envelope is %q", ErrFormatMismatch, e.Config.Format, e.Format)
	}
	if e.Structure != nil {
		if e.Structure.Format != e.Format {
			return nil, fmt.Errorf("%w: structure is %q, envelope is %q", ErrFormatMismatch, e.Structure.Format, e.Format)
		}
		relink(e.Structure, e.Config.Participants)
	}
	return &e, nil
}

// relink swaps every decoded participant copy for the roster participant with the same id
func relink(s *models.Structure, roster []*models.Participant) {
	byID := make(map[string]*models.Participant, len(roster))
	for _, p := range roster {
		if p != nil {
			byID[p.ID] = p
		}
	}
	link := func(p **models.Participant) {
		if *p == nil {
			return
		}
		if known, ok := byID[(*p).ID]; ok {
			*p = known
		}
	}
	linkAll := func(ps []*models.Participant) {
		for i := range ps {
			link(&ps[i])
		}
	}

	if b := s.Bracket; b != nil {
		for _, m := range b.AllMatches() {
			link(&m.Participant1)
			link(&m.Participant2)
			link(&m.Winner)
		}
	}
	if l := s.League; l != nil {
		relinkSchedule(l.Schedule, link)
		relinkStandings(l.Standings, link)
		for _, g := range l.Groups {
			linkAll(g.Participants)
			relinkSchedule(g.Schedule, link)
			relinkStandings(g.Standings, link)
		}
	}
	if st := s.Stages; st != nil {
		for _, stage := range st.Stages {
			for _, m := range stage.Matches {
				linkAll(m.Participants)
				for _, r := range m.Results {
					link(&r.Participant)
				}
			}
		}
	}
	if r := s.Racing; r != nil {
		for _, event := range r.Events {
			linkAll(event.Eliminated)
			for _, session := range event.Sessions {
				for _, result := range session.Results {
					link(&result.Participant)
				}
			}
		}
		if r.Standings != nil {
			for _, d := range r.Standings.Drivers {
				link(&d.Participant)
			}
		}
	}
}

func relinkSchedule(rounds []*models.ScheduleRound, link func(**models.Participant)) {
	for _, round := range rounds {
		link(&round.Rest)
		for _, f := range round.Fixtures {
			link(&f.Participant1)
			link(&f.Participant2)
			if f.Result != nil {
				link(&f.Result.Winner)
			}
		}
	}
}

func relinkStandings(entries []*models.StandingEntry, link func(**models.Participant)) {
	for _, e := range entries {
		link(&e.Participant)
	}
}
