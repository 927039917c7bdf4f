package tournament

import (
	"fmt"
	"sort"

	"github.com/justinjudd/tourney/models"
)

// nextPowerOfTwo returns the smallest power of two that is >= n, and at least 1
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// log2 of a power of two
func log2(n int) int {
	rounds := 0
	for n > 1 {
		n >>= 1
		rounds++
	}
	return rounds
}

// BracketSize forces a configured bracket size up to a power of two that fits every participant, the minimum is 2
func BracketSize(configured, participants int) int {
	size := 2
	if configured > size {
		size = configured
	}
	if participants > size {
		size = participants
	}
	return nextPowerOfTwo(size)
}

// chunkSizes divides n participants into consecutive games of groupSize, the last game takes the remainder
func chunkSizes(n, groupSize int) []int {
	if n <= 0 {
		return nil
	}
	if groupSize <= 0 || groupSize > n {
		groupSize = n
	}
	var sizes []int
	for ; n > 0; n -= groupSize {
		if n < groupSize {
			groupSize = n
		}
		sizes = append(sizes, groupSize)
	}
	return sizes
}

// splitSizes divides n participants into the fewest games holding at most groupSize each, with game sizes differing by at most one
func splitSizes(n, groupSize int) []int {
	if n <= 0 {
		return nil
	}
	if groupSize <= 0 || groupSize > n {
		groupSize = n
	}
	gameCount := (n + groupSize - 1) / groupSize
	base := n / gameCount
	longGames := n % gameCount
	sizes := make([]int, gameCount)
	for i := range sizes {
		sizes[i] = base
		if i < longGames {
			sizes[i]++
		}
	}
	return sizes
}

// groupID names the i-th group A, B, C and so on
func groupID(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("G%d", i+1)
}

// comparison returns a negative number when item i ranks ahead of item j, positive when behind and 0 when level
type comparison func(i, j int) int

// rankBy builds a sort.SliceStable less function that walks the comparisons in order. Items level on every comparison keep their incoming order
func rankBy(comparisons ...comparison) func(i, j int) bool {
	return func(i, j int) bool {
		for _, cmp := range comparisons {
			if c := cmp(i, j); c != 0 {
				return c < 0
			}
		}
		return false
	}
}

// descending orders larger values first
func descending(a, b int) int {
	return b - a
}

// ascending orders smaller values first
func ascending(a, b int) int {
	return a - b
}

// bySeed orders participants by their derived seed, keeping list order on ties
func bySeed(participants []*models.Participant) []*models.Participant {
	type seeded struct {
		p    *models.Participant
		seed int
	}
	ordered := make([]seeded, 0, len(participants))
	for i, p := range participants {
		if p == nil {
			continue
		}
		ordered = append(ordered, seeded{p, p.SeedOrDefault(i)})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].seed < ordered[j].seed
	})
	out := make([]*models.Participant, len(ordered))
	for i, s := range ordered {
		out[i] = s.p
	}
	return out
}

// indexParticipants maps participant ids to their first position in the list
func indexParticipants(participants []*models.Participant) map[string]int {
	index := make(map[string]int, len(participants))
	for i, p := range participants {
		if p == nil {
			continue
		}
		if _, ok := index[p.ID]; !ok {
			index[p.ID] = i
		}
	}
	return index
}
