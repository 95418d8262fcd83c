package services

import (
	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/domain/ports"
)

// PairingEngine generates pairings from a roster. It is a pure function of
// (roster, strategy, random source) and keeps no state between runs.
// An engine is not safe for concurrent use because its source is not.
type PairingEngine struct {
	rng ports.Random
}

// NewPairingEngine creates a new pairing engine. A nil source falls back to
// an unseeded PCG source.
func NewPairingEngine(rng ports.Random) *PairingEngine {
	if rng == nil {
		rng = NewRandom(0)
	}
	return &PairingEngine{rng: rng}
}

// Generate pairs the roster under the given strategy. Every input entity is
// placed exactly once, either in a pair or in Unmatched. The roster slice is
// not modified.
func (e *PairingEngine) Generate(roster []*entities.Entity, strategy Strategy) *entities.Result {
	if strategy == nil {
		strategy = Unconstrained{}
	}
	result := entities.NewResult(strategy.Mode())

	switch s := strategy.(type) {
	case Unconstrained:
		e.pairUnconstrained(roster, result)
	case SimpleTwoPool:
		pool1, pool2, other := partition(roster, s.Categories)
		e.pairSimple(pool1, pool2, result)
		result.Unmatched = append(result.Unmatched, other...)
	case ScoredTwoPool:
		pool1, pool2, other := partition(roster, s.Categories)
		e.pairScored(s, pool1, pool2, result)
		result.Unmatched = append(result.Unmatched, other...)
	}

	return result
}

// pairUnconstrained walks a shuffled copy two at a time.
func (e *PairingEngine) pairUnconstrained(roster []*entities.Entity, result *entities.Result) {
	shuffled := make([]*entities.Entity, len(roster))
	copy(shuffled, roster)
	Shuffle(e.rng, shuffled)

	for i := 0; i < len(shuffled); i += 2 {
		pair := entities.Pair{First: shuffled[i]}
		if i+1 < len(shuffled) {
			pair.Second = shuffled[i+1]
		}
		result.Pairs = append(result.Pairs, pair)
	}
}

// pairSimple shuffles each pool and pairs them by index.
func (e *PairingEngine) pairSimple(pool1, pool2 []*entities.Entity, result *entities.Result) {
	Shuffle(e.rng, pool1)
	Shuffle(e.rng, pool2)

	n := min(len(pool1), len(pool2))
	for i := 0; i < n; i++ {
		result.Pairs = append(result.Pairs, entities.Pair{First: pool1[i], Second: pool2[i]})
	}

	result.Unmatched = append(result.Unmatched, pool1[n:]...)
	result.Unmatched = append(result.Unmatched, pool2[n:]...)
}

// pairScored walks shuffled pool 1 and gives each member the free pool 2
// member with the strictly highest score; the first scanned wins ties.
func (e *PairingEngine) pairScored(s ScoredTwoPool, pool1, pool2 []*entities.Entity, result *entities.Result) {
	Shuffle(e.rng, pool1)
	Shuffle(e.rng, pool2)

	used := make([]bool, len(pool2))
	var leftover []*entities.Entity

	for _, a := range pool1 {
		best := -1
		var bestScore float64

		for j, b := range pool2 {
			if used[j] {
				continue
			}
			score := s.score(a, b) + e.rng.Float64()
			if best < 0 || score > bestScore {
				best, bestScore = j, score
			}
		}

		if best < 0 {
			leftover = append(leftover, a)
			continue
		}

		used[best] = true
		result.Pairs = append(result.Pairs, entities.Pair{First: a, Second: pool2[best], Score: bestScore})
	}

	result.Unmatched = append(result.Unmatched, leftover...)
	for j, b := range pool2 {
		if !used[j] {
			result.Unmatched = append(result.Unmatched, b)
		}
	}
}

// partition splits the roster by category into fresh slices. Entities with
// an unrecognized category land in other, in input order.
func partition(roster []*entities.Entity, categories entities.CategorySet) (pool1, pool2, other []*entities.Entity) {
	pool1 = []*entities.Entity{}
	pool2 = []*entities.Entity{}
	for _, entity := range roster {
		switch categories.Index(entity.Category) {
		case 0:
			pool1 = append(pool1, entity)
		case 1:
			pool2 = append(pool2, entity)
		default:
			other = append(other, entity)
		}
	}
	return pool1, pool2, other
}
