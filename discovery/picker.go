package discovery

import (
	"math/rand/v2"
	"time"

	"RestaurantRoulette/models"
)

// Picker draws restaurants uniformly at random. It is not safe for concurrent use;
// a Session serializes access to its own Picker.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker backed by src. A nil src seeds a PCG source from the clock.
func NewPicker(src rand.Source) *Picker {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &Picker{rng: rand.New(src)}
}

// Pick selects min(count, len(results)) distinct restaurants without replacement.
// Each draw takes a random index from a shrinking candidate pool and swap-removes it.
func (p *Picker) Pick(results []models.Restaurant, count int) ([]models.Restaurant, error) {
	if len(results) == 0 {
		return nil, ErrDataUnavailable
	}
	if count < 1 {
		return nil, ErrInvalidPickCount
	}

	pool := make([]models.Restaurant, len(results))
	copy(pool, results)

	actual := min(count, len(pool))
	picks := make([]models.Restaurant, 0, actual)
	for range actual {
		i := p.rng.IntN(len(pool))
		picks = append(picks, pool[i])

		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
	}
	return picks, nil
}

// Shuffle returns a copy of picks whose slot is replaced by a random restaurant from results
// that is not already picked. picks itself is never modified.
func (p *Picker) Shuffle(results, picks []models.Restaurant, slot int) ([]models.Restaurant, error) {
	if len(results) == 0 {
		return nil, ErrDataUnavailable
	}
	if slot < 0 || slot >= len(picks) {
		return nil, ErrSlotOutOfRange
	}

	picked := make(map[string]struct{}, len(picks))
	for _, r := range picks {
		picked[r.ID] = struct{}{}
	}

	candidates := make([]models.Restaurant, 0, len(results))
	for _, r := range results {
		if _, ok := picked[r.ID]; !ok {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrInsufficientCandidates
	}

	next := make([]models.Restaurant, len(picks))
	copy(next, picks)
	next[slot] = candidates[p.rng.IntN(len(candidates))]
	return next, nil
}
