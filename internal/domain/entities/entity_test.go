package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{name: "already normalized", input: "male", expected: CategoryMale},
		{name: "upper case", input: "FEMALE", expected: CategoryFemale},
		{name: "surrounding whitespace", input: "  Male \t", expected: CategoryMale},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCategory(tt.input))
		})
	}
}

func TestCategorySet_Index(t *testing.T) {
	set := DefaultCategories()

	assert.Equal(t, 0, set.Index(CategoryMale))
	assert.Equal(t, 1, set.Index(CategoryFemale))
	assert.Equal(t, -1, set.Index("nonbinary"))
	assert.Equal(t, -1, set.Index(""))
	assert.True(t, set.Contains(CategoryFemale))
	assert.False(t, set.Contains("Female"), "lookup expects normalized tokens")
}

func TestCategorySet_Valid(t *testing.T) {
	assert.True(t, DefaultCategories().Valid())
	assert.True(t, NewCategorySet(" Red ", "BLUE").Valid())
	assert.Equal(t, CategorySet{"red", "blue"}, NewCategorySet(" Red ", "BLUE"))
	assert.False(t, NewCategorySet("red", "RED").Valid())
	assert.False(t, NewCategorySet("", "blue").Valid())
}

func TestEntity_Tag(t *testing.T) {
	e := &Entity{Name: "Alice", Tags: []string{"A", "X"}}

	assert.Equal(t, "A", e.Tag(0))
	assert.Equal(t, "X", e.Tag(1))
	assert.Equal(t, "", e.Tag(2))
	assert.Equal(t, "", e.Tag(-1))
}

func TestMode(t *testing.T) {
	tests := []struct {
		raw       string
		mode      Mode
		valid     bool
		category  bool
		minFields int
	}{
		{raw: "unconstrained", mode: ModeUnconstrained, valid: true, category: false, minFields: 1},
		{raw: "Simple", mode: ModeSimple, valid: true, category: true, minFields: 2},
		{raw: " scored ", mode: ModeScored, valid: true, category: true, minFields: 4},
		{raw: "bipartite", mode: Mode("bipartite"), valid: false, category: false, minFields: 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			mode, ok := ParseMode(tt.raw)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.category, mode.RequiresCategory())
			assert.Equal(t, tt.minFields, mode.MinFields(2))
		})
	}
}

func TestPair_Members(t *testing.T) {
	alice := &Entity{Name: "Alice"}
	bob := &Entity{Name: "Bob"}

	full := Pair{First: alice, Second: bob}
	assert.True(t, full.IsComplete())
	assert.Equal(t, []*Entity{alice, bob}, full.Members())

	single := Pair{First: alice}
	assert.False(t, single.IsComplete())
	assert.Equal(t, []*Entity{alice}, single.Members())
}

func TestResult_Counts(t *testing.T) {
	a, b, c, d := &Entity{Name: "a"}, &Entity{Name: "b"}, &Entity{Name: "c"}, &Entity{Name: "d"}

	r := NewResult(ModeSimple)
	assert.Equal(t, 0, r.Placed())
	assert.NotNil(t, r.Pairs)
	assert.NotNil(t, r.Unmatched)

	r.Pairs = append(r.Pairs, Pair{First: a, Second: b}, Pair{First: c})
	r.Unmatched = append(r.Unmatched, d)

	assert.Equal(t, 1, r.CompletePairs())
	assert.Equal(t, 4, r.Placed())
}
