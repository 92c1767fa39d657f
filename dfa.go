package kmp

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Radix is the size of the input alphabet: all byte values.
const Radix = 256

// ErrEmptyPattern is returned by Compile for a zero-length pattern. A match
// position for the empty pattern is not well defined, so it is rejected up
// front rather than indexing a zero-width table.
var ErrEmptyPattern = errors.New("kmp: empty pattern")

// DFA Knuth-Morris-Pratt automaton for a single byte pattern. States are
// integers 0..m where m is the pattern length; state 0 is the initial state
// and state m the accept state, reached exactly when the pattern has been
// fully matched. Immutable once compiled and safe for concurrent use.
type DFA struct {
	// Holds the next state for each (symbol, state) pair, symbol-major:
	// next[c*m+j] is the transition out of state j on byte value c. The
	// accept state has no outgoing transitions; a scan halts on reaching it.
	next []int

	// Pattern length.
	m int

	isAccept *bitset.BitSet

	// Distinct byte values occurring in the pattern.
	alphabet *bitset.BitSet
}

// Compile builds the matching automaton for pattern. Construction is
// O(Radix*m) time and space and touches the pattern exactly once.
func Compile(pattern []byte) (*DFA, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}

	d := &DFA{
		next:     make([]int, Radix*m),
		m:        m,
		isAccept: bitset.New(uint(m + 1)),
		alphabet: bitset.New(Radix),
	}
	d.isAccept.Set(uint(m))

	// Initial column: every symbol falls back to state 0 except the first
	// pattern byte, which advances to state 1.
	d.next[int(pattern[0])*m] = 1
	d.alphabet.Set(uint(pattern[0]))

	// restart is the state the automaton would be in had it been fed the
	// longest proper prefix of pattern[:j] that is also a suffix of it. The
	// order is load-bearing: copy the restart column, override the matching
	// symbol, then advance restart on the byte just consumed.
	restart := 0
	for j := 1; j < m; j++ {
		c := int(pattern[j])
		for sym := 0; sym < Radix; sym++ {
			d.next[sym*m+j] = d.next[sym*m+restart]
		}
		d.next[c*m+j] = j + 1
		restart = d.next[c*m+restart]
		d.alphabet.Set(uint(pattern[j]))
	}
	return d, nil
}

// Step Returns the state reached from state on input byte b. The accept
// state is terminal: stepping from it returns it unchanged.
func (d *DFA) Step(state int, b byte) int {
	if state >= d.m {
		return state
	}
	return d.next[int(b)*d.m+state]
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// NumStates returns the number of automaton states, pattern length + 1.
func (d *DFA) NumStates() int {
	return d.m + 1
}

// PatternLen returns the length of the compiled pattern.
func (d *DFA) PatternLen() int {
	return d.m
}

// Alphabet returns the number of distinct byte values in the pattern.
func (d *DFA) Alphabet() uint {
	return d.alphabet.Count()
}
