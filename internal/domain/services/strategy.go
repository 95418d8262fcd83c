package services

import (
	"fmt"

	"github.com/ersonp/pairgen/internal/domain/entities"
)

// tagMismatchWeight is added to a candidate's score per differing tag.
// Jitter stays below it, so a pair with fewer differing tags never wins.
const tagMismatchWeight = 2.0

// Strategy selects how the engine builds pairs. It is a closed set:
// Unconstrained, SimpleTwoPool or ScoredTwoPool.
type Strategy interface {
	Mode() entities.Mode
	isStrategy()
}

// Unconstrained shuffles one pool and pairs neighbours; an odd leftover
// becomes a one-member pair.
type Unconstrained struct{}

// SimpleTwoPool shuffles both category pools and pairs them index by index.
type SimpleTwoPool struct {
	Categories entities.CategorySet
}

// ScoredTwoPool greedily pairs each pool 1 member with the free pool 2 member
// whose tags differ most, breaking ties with random jitter.
type ScoredTwoPool struct {
	Categories entities.CategorySet
	Tags       []TagAccessor
}

// TagAccessor reads one compared attribute from an entity.
type TagAccessor func(*entities.Entity) string

func (Unconstrained) Mode() entities.Mode { return entities.ModeUnconstrained }
func (SimpleTwoPool) Mode() entities.Mode { return entities.ModeSimple }
func (ScoredTwoPool) Mode() entities.Mode { return entities.ModeScored }

func (Unconstrained) isStrategy() {}
func (SimpleTwoPool) isStrategy() {}
func (ScoredTwoPool) isStrategy() {}

// TagAt returns an accessor for the tag at position i.
func TagAt(i int) TagAccessor {
	return func(e *entities.Entity) string {
		return e.Tag(i)
	}
}

// TagAccessors returns accessors for tag positions 0..n-1.
func TagAccessors(n int) []TagAccessor {
	tags := make([]TagAccessor, n)
	for i := range tags {
		tags[i] = TagAt(i)
	}
	return tags
}

// StrategyFor builds the strategy for a configured mode.
func StrategyFor(mode entities.Mode, categories entities.CategorySet, tagCount int) (Strategy, error) {
	switch mode {
	case entities.ModeUnconstrained:
		return Unconstrained{}, nil
	case entities.ModeSimple:
		if !categories.Valid() {
			return nil, fmt.Errorf("simple mode needs two distinct categories, got %q", categories)
		}
		return SimpleTwoPool{Categories: categories}, nil
	case entities.ModeScored:
		if !categories.Valid() {
			return nil, fmt.Errorf("scored mode needs two distinct categories, got %q", categories)
		}
		return ScoredTwoPool{Categories: categories, Tags: TagAccessors(tagCount)}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// score rates a candidate pair: tagMismatchWeight per differing tag.
func (s ScoredTwoPool) score(a, b *entities.Entity) float64 {
	var total float64
	for _, tag := range s.Tags {
		if tag(a) != tag(b) {
			total += tagMismatchWeight
		}
	}
	return total
}
