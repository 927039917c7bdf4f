package tournament

import (
	"math/rand"

	"github.com/justinjudd/tourney/models"
)

// SeedingConfig drives ApplySeeding
type SeedingConfig struct {
	Method      models.SeedingMethod
	BracketSize int
	ManualOrder []string
	// Rand is the random source of the random method, nil uses the process wide source
	Rand *rand.Rand
}

// seedingConfig builds a SeedingConfig for a bracket from format options
func seedingConfig(bracketSize int, opts models.SeedingOptions) SeedingConfig {
	cfg := SeedingConfig{Method: opts.Method, BracketSize: bracketSize, ManualOrder: opts.ManualOrder}
	if opts.RandomSeed != nil {
		cfg.Rand = rand.New(rand.NewSource(*opts.RandomSeed))
	}
	return cfg
}

// SeedOrder returns the canonical bracket order of seeds for a power of two bracket size. Adjacent entries meet in the first round, so 1 meets size, 2 meets size-1 and so on
func SeedOrder(size int) []int {
	if size < 2 {
		return []int{1}
	}
	order := []int{1, 2}
	for n := 4; n <= size; n <<= 1 {
		next := make([]int, 0, n)
		for _, s := range order {
			next = append(next, s, n+1-s)
		}
		order = next
	}
	return order
}

// ApplySeeding places participants into an ordered slot array of the bracket size. Empty slots are nil and become byes
func ApplySeeding(participants []*models.Participant, cfg SeedingConfig) []*models.Participant {
	size := BracketSize(cfg.BracketSize, len(participants))
	switch cfg.Method {
	case models.SeedingRandom:
		return randomPlacement(participants, size, cfg.Rand)
	case models.SeedingManual:
		return manualPlacement(participants, size, cfg.ManualOrder)
	default:
		seeds := make([]int, len(participants))
		for i, p := range participants {
			if p != nil {
				seeds[i] = p.SeedOrDefault(i)
			}
		}
		return placeBySeed(participants, seeds, size)
	}
}

// placeBySeed puts each participant into the slot its seed owns in SeedOrder. A participant whose seed collides or does not fit takes the first empty slot at its turn
func placeBySeed(participants []*models.Participant, seeds []int, size int) []*models.Participant {
	slots := make([]*models.Participant, size)
	slotOf := make(map[int]int, size)
	for slot, seed := range SeedOrder(size) {
		slotOf[seed] = slot
	}

	for i, p := range participants {
		if p == nil {
			continue
		}
		slot, ok := slotOf[seeds[i]]
		if !ok || slots[slot] != nil {
			slot = -1
			for free := range slots {
				if slots[free] == nil {
					slot = free
					break
				}
			}
			if slot < 0 {
				continue
			}
		}
		slots[slot] = p
	}
	return slots
}

func randomPlacement(participants []*models.Participant, size int, r *rand.Rand) []*models.Participant {
	shuffled := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if p != nil {
			shuffled = append(shuffled, p)
		}
	}
	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if r != nil {
		r.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	slots := make([]*models.Participant, size)
	copy(slots, shuffled)
	return slots
}

// manualPlacement fills slots in the order of the listed ids. Unknown and repeated ids are skipped, unlisted participants follow by seed
func manualPlacement(participants []*models.Participant, size int, order []string) []*models.Participant {
	slots := make([]*models.Participant, size)
	index := indexParticipants(participants)
	used := map[string]bool{}
	next := 0

	for _, id := range order {
		i, ok := index[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		slots[next] = participants[i]
		next++
	}
	for _, p := range bySeed(participants) {
		if used[p.ID] || next >= size {
			continue
		}
		used[p.ID] = true
		slots[next] = p
		next++
	}
	return slots
}
