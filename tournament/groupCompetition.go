package tournament

import (
	"fmt"

	"github.com/justinjudd/tourney/models"
)

// GroupKnockout fulfills the Format interface. Provides the logic for a FIFA style tournament: round robin groups whose top finishers are seeded into a knockout bracket
type GroupKnockout struct{}

func (GroupKnockout) Type() models.FormatType {
	return models.FormatFIFA
}

func (GroupKnockout) DefaultConfig(participants []*models.Participant) models.Config {
	groups := len(participants) / 4
	if groups < 1 {
		groups = 1
	}
	return models.Config{
		Format:       models.FormatFIFA,
		Participants: participants,
		Options: &models.FIFAOptions{
			GroupCount:      groups,
			AdvancePerGroup: 2,
			Distribution:    models.DistributionSnake,
			GroupRounds:     1,
			Knockout:        models.KnockoutOptions{Type: models.FormatSingleElimination},
		},
	}
}

func (GroupKnockout) Validate(cfg models.Config) models.ValidationResult {
	r := validResult()
	validateParticipants(&r, cfg.Participants, 4)
	if cfg.Options == nil {
		return r
	}
	opts, ok := cfg.Options.(*models.FIFAOptions)
	if !ok {
		r.Add("options", models.CodeInvalidOption, "expected fifa options, got %s", cfg.Options.Format())
		return r
	}
	if opts.GroupCount < 1 {
		r.Add("groupCount", models.CodeInvalidRange, "at least one group is required")
	} else {
		smallest := len(cfg.Participants) / opts.GroupCount
		if smallest < 2 {
			r.Add("groupCount", models.CodeInsufficientParticipants, "%d groups need at least %d participants", opts.GroupCount, 2*opts.GroupCount)
		}
		if opts.AdvancePerGroup < 1 || (smallest >= 2 && opts.AdvancePerGroup >= smallest) {
			r.Add("advancePerGroup", models.CodeInvalidRange, "between 1 and %d participants can advance per group", smallest-1)
		} else if opts.AdvancePerGroup*opts.GroupCount < 2 {
			r.Add("advancePerGroup", models.CodeInsufficientParticipants, "the knockout stage needs at least two qualifiers")
		}
	}
	switch opts.Distribution {
	case "", models.DistributionSnake, models.DistributionSequential:
	default:
		r.Add("distribution", models.CodeInvalidOption, "unknown group distribution %q", opts.Distribution)
	}
	if opts.GroupRounds < 0 {
		r.Add("groupRounds", models.CodeInvalidRange, "group rounds cannot be negative")
	}
	switch opts.Knockout.Type {
	case "", models.FormatSingleElimination:
		if opts.Knockout.EnableReset {
			r.Add("knockout.enableReset", models.CodeConflictingOptions, "a grand final reset needs a double elimination knockout")
		}
	case models.FormatDoubleElimination:
		if opts.Knockout.ThirdPlaceMatch {
			r.Add("knockout.thirdPlaceMatch", models.CodeConflictingOptions, "a third place match needs a single elimination knockout")
		}
	default:
		r.Add("knockout.type", models.CodeInvalidOption, "knockout must be single or double elimination, got %q", opts.Knockout.Type)
	}
	validateScoring(&r, opts.Scoring, opts.Tiebreakers)
	return r
}

func (g GroupKnockout) Generate(cfg models.Config) (*models.Structure, error) {
	opts := &models.FIFAOptions{}
	if cfg.Options != nil {
		var ok bool
		if opts, ok = cfg.Options.(*models.FIFAOptions); !ok {
			return nil, optionsMismatch(g.Type(), cfg.Options)
		}
	}
	return GenerateFIFA(cfg.Participants, *opts), nil
}

// DistributeGroups deals participants into groups by seed. Snake deals the first row left to right, the next one right to left and so on; sequential deals every row left to right
func DistributeGroups(participants []*models.Participant, groupCount int, distribution models.GroupDistribution) []*models.Group {
	if groupCount < 1 {
		groupCount = 1
	}
	groups := make([]*models.Group, groupCount)
	for i := range groups {
		id := groupID(i)
		groups[i] = &models.Group{ID: id, Name: "Group " + id, Participants: []*models.Participant{}}
	}
	for k, p := range bySeed(participants) {
		row, col := k/groupCount, k%groupCount
		if distribution != models.DistributionSequential && row%2 == 1 {
			col = groupCount - 1 - col
		}
		groups[col].Participants = append(groups[col].Participants, p)
	}
	return groups
}

// GenerateFIFA schedules the groups and composes the knockout bracket. Until every group fixture has a result the knockout slots are placeholders labelled with the group position they are waiting for
func GenerateFIFA(participants []*models.Participant, opts models.FIFAOptions) *models.Structure {
	scoring := models.ScoringOrDefault(opts.Scoring)
	tiebreakers := fifaTiebreakers(opts)

	groups := DistributeGroups(participants, opts.GroupCount, opts.Distribution)
	for _, g := range groups {
		g.Schedule = circleSchedule(g.Participants, opts.GroupRounds, true, g.ID+"-")
		g.Standings = ComputeStandings(g.Participants, g.Fixtures(), scoring, tiebreakers)
	}
	league := leagueFromGroups(participants, groups, scoring, tiebreakers)
	return &models.Structure{
		Format:  models.FormatFIFA,
		League:  league,
		Bracket: ComposeKnockout(groups, opts),
	}
}

// AdvanceFIFA recomputes group standings from the results recorded in league and rebuilds the knockout bracket from them. league is not modified
func AdvanceFIFA(participants []*models.Participant, opts models.FIFAOptions, league *models.LeagueStructure) *models.Structure {
	scoring := models.ScoringOrDefault(opts.Scoring)
	tiebreakers := fifaTiebreakers(opts)

	groups := make([]*models.Group, len(league.Groups))
	for i, g := range league.Groups {
		groups[i] = &models.Group{
			ID:           g.ID,
			Name:         g.Name,
			Participants: g.Participants,
			Schedule:     g.Schedule,
			Standings:    ComputeStandings(g.Participants, g.Fixtures(), scoring, tiebreakers),
		}
	}
	return &models.Structure{
		Format:  models.FormatFIFA,
		League:  leagueFromGroups(participants, groups, scoring, tiebreakers),
		Bracket: ComposeKnockout(groups, opts),
	}
}

func fifaTiebreakers(opts models.FIFAOptions) []models.Tiebreaker {
	if len(opts.Tiebreakers) == 0 {
		return models.DefaultTiebreakers
	}
	return opts.Tiebreakers
}

// groupComplete reports whether every fixture of the group has a result
func groupComplete(g *models.Group) bool {
	for _, f := range g.Fixtures() {
		if f.Result == nil {
			return false
		}
	}
	return true
}

type qualifier struct {
	group    int
	position int
}

// ComposeKnockout seeds the top AdvancePerGroup of every group into the knockout bracket.
// Group winners take the top seeds, runners up the next ones and so on. Inside each tier the group order is rotated to keep first round opponents from sharing a group wherever possible
func ComposeKnockout(groups []*models.Group, opts models.FIFAOptions) *models.BracketStructure {
	var tiers [][]qualifier
	for pos := 0; pos < opts.AdvancePerGroup; pos++ {
		var tier []qualifier
		for gi, g := range groups {
			if pos < len(g.Participants) {
				tier = append(tier, qualifier{group: gi, position: pos})
			}
		}
		if len(tier) > 0 {
			tiers = append(tiers, tier)
		}
	}
	count := 0
	for _, tier := range tiers {
		count += len(tier)
	}
	size := BracketSize(0, count)
	if count < 2 {
		return &models.BracketStructure{TotalSlots: size, Rounds: []*models.Round{}}
	}

	seeded := avoidGroupRematches(tiers, size)
	complete := true
	for _, g := range groups {
		complete = complete && groupComplete(g)
	}

	slotOf := map[int]int{}
	for slot, seed := range SeedOrder(size) {
		slotOf[seed] = slot
	}
	first := make([]*source, size)
	for i := range first {
		first[i] = &source{}
	}
	for i, q := range seeded {
		g := groups[q.group]
		s := first[slotOf[i+1]]
		s.label = fmt.Sprintf("%s%d", g.ID, q.position+1)
		if complete && q.position < len(g.Standings) {
			s.participant = g.Standings[q.position].Participant
		} else {
			s.placeholder = true
		}
	}

	if opts.Knockout.Type == models.FormatDoubleElimination {
		return buildDoubleElimination(first, opts.Knockout.EnableReset)
	}
	return buildSingleElimination(first, opts.Knockout.ThirdPlaceMatch)
}

// avoidGroupRematches lays the tiers out as seeds 1..n. Every tier after the first tries each rotation of its group order, forward and reversed, and keeps the first one with the fewest first round meetings of two qualifiers from the same group
func avoidGroupRematches(tiers [][]qualifier, size int) []qualifier {
	order := SeedOrder(size)
	slotOf := make(map[int]int, size)
	for slot, seed := range order {
		slotOf[seed] = slot
	}
	opponentSeed := func(seed int) int {
		return order[slotOf[seed]^1]
	}

	var seeded []qualifier
	for t, tier := range tiers {
		if t == 0 {
			seeded = append(seeded, tier...)
			continue
		}
		best, bestCost := tier, -1
		for _, reversed := range []bool{false, true} {
			for shift := 0; shift < len(tier); shift++ {
				candidate := make([]qualifier, len(tier))
				for i := range tier {
					src := (i + shift) % len(tier)
					if reversed {
						src = len(tier) - 1 - src
					}
					candidate[i] = tier[src]
				}
				cost := 0
				for i, q := range candidate {
					opp := opponentSeed(len(seeded) + i + 1)
					if opp <= len(seeded) && seeded[opp-1].group == q.group {
						cost++
					}
				}
				if bestCost < 0 || cost < bestCost {
					best, bestCost = candidate, cost
				}
			}
		}
		seeded = append(seeded, best...)
	}
	return seeded
}
