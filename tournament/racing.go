package tournament

import (
	"fmt"
	"sort"

	"github.com/justinjudd/tourney/models"
)

// Default points tables, index 0 is the winner
var (
	MKPointsTable       = []int{15, 12, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	F1PointsTable       = []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}
	F1SprintPointsTable = []int{8, 7, 6, 5, 4, 3, 2, 1}
)

// newEvent creates an event with one session per type. Every session lists the grid in order with no position recorded yet
func newEvent(number int, name string, grid []*models.Participant, types ...models.SessionType) *models.Event {
	event := &models.Event{
		ID:          fmt.Sprintf("event-%d", number),
		Name:        name,
		EventNumber: number,
		Sessions:    make([]*models.Session, 0, len(types)),
	}
	for _, t := range types {
		event.Sessions = append(event.Sessions, &models.Session{
			ID:      fmt.Sprintf("%s-%s", event.ID, t),
			Type:    t,
			Results: resultSkeleton(grid),
		})
	}
	return event
}

func resultSkeleton(grid []*models.Participant) []*models.RaceResult {
	results := make([]*models.RaceResult, 0, len(grid))
	for _, p := range grid {
		results = append(results, &models.RaceResult{Participant: p, Status: models.StatusFinished})
	}
	return results
}

// finishingOrder ranks classified results with a recorded position first, by position, then classified results still without one, then retirements and disqualifications. Ties keep slot order
func finishingOrder(results []*models.RaceResult) []*models.RaceResult {
	ranked := make([]*models.RaceResult, 0, len(results))
	for _, r := range results {
		if r != nil && r.Participant != nil {
			ranked = append(ranked, r)
		}
	}
	class := func(r *models.RaceResult) int {
		switch {
		case !r.Classified():
			return 2
		case r.Position < 1:
			return 1
		}
		return 0
	}
	sort.SliceStable(ranked, rankBy(
		func(i, j int) int { return ascending(class(ranked[i]), class(ranked[j])) },
		func(i, j int) int { return ascending(ranked[i].Position, ranked[j].Position) },
	))
	return ranked
}

// RankTimeTrial returns copies of the results ordered by ascending time with positions filled in. Results without a time follow, then unclassified ones
func RankTimeTrial(results []*models.RaceResult) []*models.RaceResult {
	ranked := make([]*models.RaceResult, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		c := *r
		ranked = append(ranked, &c)
	}
	class := func(r *models.RaceResult) int {
		switch {
		case !r.Classified():
			return 2
		case r.Time == nil:
			return 1
		}
		return 0
	}
	sort.SliceStable(ranked, rankBy(
		func(i, j int) int { return ascending(class(ranked[i]), class(ranked[j])) },
		func(i, j int) int {
			if ranked[i].Time == nil || ranked[j].Time == nil {
				return 0
			}
			switch a, b := *ranked[i].Time, *ranked[j].Time; {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
	))
	for i, r := range ranked {
		r.Position = i + 1
	}
	return ranked
}

// TimeTrialDeltas maps each participant with a classified time to the gap to the fastest time, in seconds
func TimeTrialDeltas(results []*models.RaceResult) map[string]float64 {
	deltas := map[string]float64{}
	var fastest *float64
	for _, r := range results {
		if r == nil || r.Time == nil || !r.Classified() {
			continue
		}
		if fastest == nil || *r.Time < *fastest {
			fastest = r.Time
		}
	}
	if fastest == nil {
		return deltas
	}
	for _, r := range results {
		if r == nil || r.Participant == nil || r.Time == nil || !r.Classified() {
			continue
		}
		deltas[r.Participant.ID] = *r.Time - *fastest
	}
	return deltas
}

// EliminateAfter splits the field of a session into the survivors and the count lowest placed participants. Retirements and disqualifications place lowest; without results the grid order decides
func EliminateAfter(session *models.Session, count int) (survivors, eliminated []*models.Participant) {
	ranked := finishingOrder(session.Results)
	if count < 0 {
		count = 0
	}
	if count > len(ranked) {
		count = len(ranked)
	}
	cut := len(ranked) - count
	for i, r := range ranked {
		if i < cut {
			survivors = append(survivors, r.Participant)
		} else {
			eliminated = append(eliminated, r.Participant)
		}
	}
	return survivors, eliminated
}

// GridFromQualifying is the starting grid set by a qualifying session: by time when any time is recorded, otherwise by position, otherwise the session order
func GridFromQualifying(session *models.Session) []*models.Participant {
	var ranked []*models.RaceResult
	timed := false
	for _, r := range session.Results {
		if r != nil && r.Time != nil {
			timed = true
			break
		}
	}
	if timed {
		ranked = RankTimeTrial(session.Results)
	} else {
		ranked = finishingOrder(session.Results)
	}
	grid := make([]*models.Participant, 0, len(ranked))
	for _, r := range ranked {
		if r.Participant != nil {
			grid = append(grid, r.Participant)
		}
	}
	return grid
}

// sessionPoints is the explicit points of a result, or the table value for its position when it is a classified finish
func sessionPoints(r *models.RaceResult, table []int) int {
	if r.Points != nil {
		return *r.Points
	}
	if r.Classified() && r.Position >= 1 && r.Position <= len(table) {
		return table[r.Position-1]
	}
	return 0
}

// ComputeRacingStandings accumulates every race and sprint session with recorded positions.
// Drivers are ordered by points, then countback on finishing positions (most wins, then most seconds and so on), then seed, then roster order.
// With teams set a constructors table sums the points and race wins of every driver sharing a team
func ComputeRacingStandings(participants []*models.Participant, events []*models.Event, raceTable, sprintTable []int, teams bool) *models.RacingStandings {
	drivers := make([]*models.DriverStanding, 0, len(participants))
	byID := map[string]*models.DriverStanding{}
	seeds := map[*models.DriverStanding]int{}
	for i, p := range participants {
		if p == nil {
			continue
		}
		if _, dup := byID[p.ID]; dup {
			continue
		}
		d := &models.DriverStanding{Participant: p, Finishes: make([]int, len(participants))}
		drivers = append(drivers, d)
		byID[p.ID] = d
		seeds[d] = p.SeedOrDefault(i)
	}

	for _, event := range events {
		for _, session := range event.Sessions {
			var table []int
			switch session.Type {
			case models.SessionRace:
				table = raceTable
			case models.SessionSprint:
				table = sprintTable
			default:
				continue
			}
			for _, r := range session.Results {
				if r == nil || r.Participant == nil || (r.Classified() && r.Position < 1 && r.Points == nil) {
					continue
				}
				d, ok := byID[r.Participant.ID]
				if !ok {
					continue
				}
				d.Points += sessionPoints(r, table)
				if session.Type != models.SessionRace {
					continue
				}
				d.Starts++
				if r.Classified() && r.Position >= 1 {
					for len(d.Finishes) < r.Position {
						d.Finishes = append(d.Finishes, 0)
					}
					d.Finishes[r.Position-1]++
					if r.Position == 1 {
						d.Wins++
					}
				}
			}
		}
	}

	sort.SliceStable(drivers, rankBy(
		func(i, j int) int { return descending(drivers[i].Points, drivers[j].Points) },
		func(i, j int) int { return countback(drivers[i].Finishes, drivers[j].Finishes) },
		func(i, j int) int { return ascending(seeds[drivers[i]], seeds[drivers[j]]) },
	))

	standings := &models.RacingStandings{Drivers: drivers}
	if teams {
		standings.Teams = teamStandings(drivers)
	}
	return standings
}

// countback prefers the driver with more finishes at the first position where the two differ
func countback(a, b []int) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x != y {
			return descending(x, y)
		}
	}
	return 0
}

func teamStandings(drivers []*models.DriverStanding) []*models.TeamStanding {
	var teams []*models.TeamStanding
	byName := map[string]*models.TeamStanding{}
	for _, d := range drivers {
		name := d.Participant.Team
		if name == "" {
			continue
		}
		t, ok := byName[name]
		if !ok {
			t = &models.TeamStanding{Team: name}
			byName[name] = t
			teams = append(teams, t)
		}
		t.Points += d.Points
		t.Wins += d.Wins
	}
	sort.SliceStable(teams, rankBy(
		func(i, j int) int { return descending(teams[i].Points, teams[j].Points) },
		func(i, j int) int { return descending(teams[i].Wins, teams[j].Wins) },
	))
	return teams
}

// validatePointsTable rejects negative table entries
func validatePointsTable(r *models.ValidationResult, field string, table []int) {
	for i, points := range table {
		if points < 0 {
			r.Add(field, models.CodeInvalidRange, "position %d awards negative points", i+1)
		}
	}
}
