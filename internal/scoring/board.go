package scoring

import "fmt"

// BaseScore is the score of a category before deductions
const BaseScore = 1.0

// MaxTotal is the highest reachable total score
const MaxTotal = BaseScore * float64(numCategories)

// rule deducts weight from the base score whenever the flag equals when.
type rule struct {
	flag   Flag
	when   bool
	weight float64
}

// rules holds the fixed deduction table, indexed by Category.
var rules = [numCategories][]rule{
	Communication: {
		{flag: UseOSSMessenger, when: false, weight: 0.5},
		{flag: SelfHostMessenger, when: false, weight: 0.1},
		{flag: EncryptFirstEmail, when: false, weight: 0.5},
	},
	ContentSharing: {
		{flag: UseThirdPartyCloud, when: true, weight: 0.5},
		{flag: SelfHostRepo, when: false, weight: 0.5},
	},
	Development: {
		{flag: UseOSSIDE, when: false, weight: 0.25},
		{flag: SelfHostDev, when: false, weight: 0.5},
	},
	Runtime: {
		{flag: UseThirdPartyCloudRuntime, when: true, weight: 0.5},
		{flag: SelfHostRuntime, when: false, weight: 0.5},
	},
	Hardware: {
		{flag: BuildOwnHardware, when: false, weight: 0.5},
		{flag: UseOSSHardware, when: false, weight: 0.5},
	},
}

// Board is an immutable snapshot of every practice answer.
// The zero value is the initial board with all flags false.
// Operations that change an answer return a new Board and leave the receiver untouched.
type Board struct {
	flags [numFlags]bool
}

// NewBoard returns a board with all flags false
func NewBoard() Board {
	return Board{}
}

// Enabled reports whether the flag is set
func (b Board) Enabled(f Flag) bool {
	if !f.Valid() {
		panic(fmt.Sprintf("scoring: invalid flag %d", int(f)))
	}
	return b.flags[f]
}

// Set returns a copy of the board with the flag set to v
func (b Board) Set(f Flag, v bool) Board {
	if !f.Valid() {
		panic(fmt.Sprintf("scoring: invalid flag %d", int(f)))
	}
	b.flags[f] = v
	return b
}

// Toggle returns a copy of the board with exactly the named flag flipped.
// It panics if the flag does not belong to the category; identifiers coming from
// user input must be resolved with ParseQualifiedFlag first.
func (b Board) Toggle(c Category, f Flag) Board {
	if !c.Valid() {
		panic(invalidCategory(c))
	}
	if f.Category() != c {
		panic(fmt.Sprintf("scoring: flag %s does not belong to category %s", f, c))
	}
	b.flags[f] = !b.flags[f]
	return b
}

// Score returns the category score in [0, 1]
func (b Board) Score(c Category) float64 {
	if !c.Valid() {
		panic(invalidCategory(c))
	}
	score := BaseScore
	for _, r := range rules[c] {
		if b.flags[r.flag] == r.when {
			score -= r.weight
		}
	}
	return max(0, score)
}

// Total returns the sum of all category scores, in [0, 5]
func (b Board) Total() float64 {
	var total float64
	for _, c := range Categories() {
		total += b.Score(c)
	}
	return total
}

// CategoryState is a read-only view of one category on a board
type CategoryState struct {
	Category Category
	Base     float64
	Flags    []FlagState
}

// FlagState pairs a flag with its current value
type FlagState struct {
	Flag    Flag
	Enabled bool
}

// State returns the current answers of a category
func (b Board) State(c Category) CategoryState {
	flags := c.Flags()
	state := CategoryState{
		Category: c,
		Base:     BaseScore,
		Flags:    make([]FlagState, len(flags)),
	}
	for i, f := range flags {
		state.Flags[i] = FlagState{Flag: f, Enabled: b.flags[f]}
	}
	return state
}
