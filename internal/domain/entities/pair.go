package entities

// Pair holds one or two roster members. A pair without a Second member is
// the odd-count leftover of unconstrained mode: shown, but unpaired.
// Pairs reference entities owned by the roster.
type Pair struct {
	First  *Entity `json:"first"`
	Second *Entity `json:"second,omitempty"`
	Score  float64 `json:"score,omitempty"` // Set only by scored pairing
}

// IsComplete reports whether the pair has two members.
func (p Pair) IsComplete() bool {
	return p.First != nil && p.Second != nil
}

// Members returns the non-nil members in order.
func (p Pair) Members() []*Entity {
	members := make([]*Entity, 0, 2)
	if p.First != nil {
		members = append(members, p.First)
	}
	if p.Second != nil {
		members = append(members, p.Second)
	}
	return members
}

// Result is the output of one pairing run.
type Result struct {
	Mode      Mode      `json:"mode"`
	Pairs     []Pair    `json:"pairs"`
	Unmatched []*Entity `json:"unmatched"`
}

// NewResult returns an empty result for the given mode.
func NewResult(mode Mode) *Result {
	return &Result{
		Mode:      mode,
		Pairs:     []Pair{},
		Unmatched: []*Entity{},
	}
}

// CompletePairs counts pairs with two members.
func (r *Result) CompletePairs() int {
	n := 0
	for _, p := range r.Pairs {
		if p.IsComplete() {
			n++
		}
	}
	return n
}

// Placed counts every entity slot across pairs and the unmatched list.
func (r *Result) Placed() int {
	n := len(r.Unmatched)
	for _, p := range r.Pairs {
		n += len(p.Members())
	}
	return n
}
