package models

// SessionType is the kind of a racing session
type SessionType string

const (
	SessionPractice   SessionType = "practice"
	SessionQualifying SessionType = "qualifying"
	SessionSprint     SessionType = "sprint"
	SessionRace       SessionType = "race"
)

// ResultStatus tells whether a driver finished a session
type ResultStatus string

const (
	StatusFinished ResultStatus = "finished"
	StatusDNF      ResultStatus = "dnf"
	StatusDSQ      ResultStatus = "dsq"
)

// RaceResult is one classified line of a session
type RaceResult struct {
	Participant *Participant `json:"participant"`
	Position    int          `json:"position"`
	// Time is in seconds
	Time   *float64     `json:"time,omitempty"`
	Points *int         `json:"points,omitempty"`
	Status ResultStatus `json:"status"`
}

// Classified reports whether the result counts as a finish
func (r *RaceResult) Classified() bool {
	return r.Status == "" || r.Status == StatusFinished
}

// Session is a practice, qualifying, sprint or race run of an event
type Session struct {
	ID      string        `json:"id"`
	Type    SessionType   `json:"type"`
	Results []*RaceResult `json:"results"`
}

// Event is a race weekend, track or cup race
type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	EventNumber int        `json:"eventNumber"`
	Sessions    []*Session `json:"sessions"`
	// Eliminated lists who drops out after this event in a knockout cup
	Eliminated []*Participant `json:"eliminated,omitempty"`
}

// Session returns the first session of the given type, nil when the event has none
func (e *Event) Session(t SessionType) *Session {
	for _, s := range e.Sessions {
		if s.Type == t {
			return s
		}
	}
	return nil
}

// DriverStanding is a championship row of a racing format
type DriverStanding struct {
	Participant *Participant `json:"participant"`
	Points      int          `json:"points"`
	Wins        int          `json:"wins"`
	Starts      int          `json:"starts"`
	// Finishes counts results by position, index 0 holds wins
	Finishes []int `json:"finishes"`
}

// TeamStanding aggregates the points of every driver of a team
type TeamStanding struct {
	Team   string `json:"team"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
}

// RacingStandings holds the drivers table and the optional constructors table
type RacingStandings struct {
	Drivers []*DriverStanding `json:"drivers"`
	Teams   []*TeamStanding   `json:"teams,omitempty"`
}

// RacingStructure is the generated event list of a racing format
type RacingStructure struct {
	Mode      string           `json:"mode"`
	Events    []*Event         `json:"events"`
	Standings *RacingStandings `json:"standings,omitempty"`
}
