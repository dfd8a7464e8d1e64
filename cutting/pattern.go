package cutting

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern assigns to each item type the number of pieces cut from one stock
// unit: pattern[i] = count of item i. A pattern is feasible for an instance
// when sum(pattern[i]*length[i]) <= stockLength.
//
// Patterns are value objects: once produced they must not be mutated. Use
// Clone when a caller needs a private copy.
type Pattern []int

// Clone returns an independent copy of p.
func (p Pattern) Clone() Pattern { return append(Pattern(nil), p...) }

// IsZero reports whether every item count in p is zero.
func (p Pattern) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}

	return true
}

// UsedLength returns the total stock length consumed by p given the
// index-aligned item lengths. Panics if len(lengths) < len(p).
func (p Pattern) UsedLength(lengths []int) int {
	used := 0
	for i, c := range p {
		used += c * lengths[i]
	}

	return used
}

// Waste returns the unused remainder of one stock unit cut according to p.
func (p Pattern) Waste(stockLength int, lengths []int) int {
	return stockLength - p.UsedLength(lengths)
}

// Fits reports whether p is feasible: non-negative counts and total consumed
// length within the stock length.
func (p Pattern) Fits(stockLength int, lengths []int) bool {
	for _, c := range p {
		if c < 0 {
			return false
		}
	}

	return p.UsedLength(lengths) <= stockLength
}

// Offsets returns the ordered cut positions along one stock unit: the
// cumulative sums of lengths[i] repeated p[i] times, in item-index order.
// The last offset equals UsedLength(lengths). This is the data handed to
// reporting/visualization collaborators; the core performs no drawing itself.
//
// Example: pattern [2,1] with lengths [3,4] yields offsets [3,6,10].
//
// Complexity: O(total piece count).
func (p Pattern) Offsets(lengths []int) []int {
	total := 0
	for _, c := range p {
		total += c
	}
	offsets := make([]int, 0, total)

	pos := 0
	for i, c := range p {
		for k := 0; k < c; k++ {
			pos += lengths[i]
			offsets = append(offsets, pos)
		}
	}

	return offsets
}

// String renders p as a compact count vector, e.g. "[2 1 0]".
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.Itoa(c)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// key returns the canonical encoding used for set membership. Two patterns
// share a key iff they are element-wise equal.
func (p Pattern) key() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// PatternSet is an append-only ordered collection of distinct patterns.
// Index p in the set is the decision-variable identity of that pattern in the
// restricted master problem, so the set never reorders or removes entries.
//
// Distinctness is an invariant, not an optimization: column generation is only
// guaranteed to terminate when a priced-out pattern is never appended twice.
type PatternSet struct {
	numItems int
	patterns []Pattern
	index    map[string]int // pattern key -> position in patterns
}

// NewPatternSet creates an empty set for patterns of numItems entries.
func NewPatternSet(numItems int) *PatternSet {
	return &PatternSet{
		numItems: numItems,
		index:    make(map[string]int),
	}
}

// Len returns the number of patterns currently in the set.
func (s *PatternSet) Len() int { return len(s.patterns) }

// NumItems returns the expected pattern size.
func (s *PatternSet) NumItems() int { return s.numItems }

// At returns the pattern stored at position p. The returned pattern is shared
// with the set and must not be mutated; Clone it if a private copy is needed.
func (s *PatternSet) At(p int) Pattern { return s.patterns[p] }

// Contains reports whether an element-wise equal pattern is already present.
func (s *PatternSet) Contains(p Pattern) bool {
	if len(p) != s.numItems {
		return false
	}
	_, ok := s.index[p.key()]

	return ok
}

// Append validates p and adds it to the set, returning its position.
//
// Errors:
//   - ErrDimensionMismatch if len(p) != NumItems().
//   - ErrNegativeCount if any count is negative.
//   - ErrDuplicatePattern if an equal pattern is already present.
//
// The pattern is cloned on insertion so later caller-side mutation cannot
// corrupt the set.
func (s *PatternSet) Append(p Pattern) (int, error) {
	if len(p) != s.numItems {
		return 0, fmt.Errorf("%w: got %d entries, want %d", ErrDimensionMismatch, len(p), s.numItems)
	}
	for i, c := range p {
		if c < 0 {
			return 0, fmt.Errorf("%w: item %d count %d", ErrNegativeCount, i, c)
		}
	}

	k := p.key()
	if _, ok := s.index[k]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicatePattern, p)
	}

	pos := len(s.patterns)
	s.patterns = append(s.patterns, p.Clone())
	s.index[k] = pos

	return pos, nil
}

// Patterns returns the patterns in insertion order. The slice is a fresh
// copy, but the contained patterns are shared and must not be mutated.
func (s *PatternSet) Patterns() []Pattern {
	return append([]Pattern(nil), s.patterns...)
}
