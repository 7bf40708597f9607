package substring

import "sort"

// autoState is one state of the suffix automaton. All cross-references are
// indices into the owning automaton's state arena; link is -1 only at the
// initial state.
type autoState struct {
	// len is the length of the longest substring represented by this state.
	len int
	// link points to the state representing the longest proper suffix that
	// belongs to a different right-extension class.
	link int
	// next maps a rune to the target state index. Lazily allocated: most
	// states in a large automaton carry only a couple of transitions.
	next map[rune]int
	// endPos is the rune offset of the symbol whose extension created this
	// state, or -1 for the initial state and for clones. A non-negative
	// endPos marks exactly one occurrence end position in the text.
	endPos int
}

// Automaton is a suffix automaton over a fixed text: the minimal DFA whose
// accepted language is exactly the set of substrings of the text.
//
// Construction is incremental, one rune at a time, in amortized O(n) time
// and space. The finished automaton is immutable and safe for concurrent
// queries.
type Automaton struct {
	textLen int
	states  []autoState
	// linkKids holds the children lists of the suffix-link tree, computed
	// once after construction so FindAll can enumerate occurrence end
	// positions with a read-only traversal.
	linkKids [][]int
}

var _ Index = (*Automaton)(nil)

// NewAutomaton builds a suffix automaton over text. It cannot fail: the
// empty text yields a degenerate automaton with a single initial state.
func NewAutomaton(text string) *Automaton {
	symbols := []rune(text)
	a := &Automaton{
		textLen: len(symbols),
		states:  make([]autoState, 1, 2*len(symbols)+1),
	}
	a.states[0] = autoState{link: -1, endPos: -1}

	last := 0
	for i, ch := range symbols {
		last = a.extend(last, ch, i)
	}
	a.indexLinkTree()
	return a
}

// extend grows the automaton by one symbol and returns the state now
// representing the whole processed prefix.
func (a *Automaton) extend(last int, ch rune, pos int) int {
	cur := len(a.states)
	a.states = append(a.states, autoState{
		len:    a.states[last].len + 1,
		link:   -1,
		endPos: pos,
	})

	// Walk up the suffix links adding the missing transition until a state
	// already knows this symbol, or the root's link is passed.
	p := last
	for p != -1 {
		if _, ok := a.states[p].next[ch]; ok {
			break
		}
		a.setNext(p, ch, cur)
		p = a.states[p].link
	}

	if p == -1 {
		a.states[cur].link = 0
		return cur
	}

	q := a.states[p].next[ch]
	if a.states[p].len+1 == a.states[q].len {
		a.states[cur].link = q
		return cur
	}

	// q represents strings longer than the suffix being extended: split its
	// class by cloning. The clone keeps q's transitions and link but not its
	// end position, so occurrence collection never double-counts.
	clone := len(a.states)
	cl := autoState{
		len:    a.states[p].len + 1,
		link:   a.states[q].link,
		next:   make(map[rune]int, len(a.states[q].next)),
		endPos: -1,
	}
	for sym, to := range a.states[q].next {
		cl.next[sym] = to
	}
	a.states = append(a.states, cl)

	for p != -1 {
		to, ok := a.states[p].next[ch]
		if !ok || to != q {
			break
		}
		a.states[p].next[ch] = clone
		p = a.states[p].link
	}
	a.states[q].link = clone
	a.states[cur].link = clone
	return cur
}

func (a *Automaton) setNext(s int, ch rune, to int) {
	if a.states[s].next == nil {
		a.states[s].next = make(map[rune]int, 2)
	}
	a.states[s].next[ch] = to
}

// indexLinkTree materializes the children lists of the suffix-link tree.
// The end positions of a state are exactly the endPos values found in its
// link-tree subtree, so this is the occurrence index for FindAll.
func (a *Automaton) indexLinkTree() {
	kids := make([][]int, len(a.states))
	for i := 1; i < len(a.states); i++ {
		link := a.states[i].link
		kids[link] = append(kids[link], i)
	}
	a.linkKids = kids
}

// walk follows transitions for every rune of pattern from the initial
// state. Every state reachable this way represents the walked string as a
// substring, by construction of the automaton.
func (a *Automaton) walk(pattern string) (state int, ok bool) {
	s := 0
	for _, ch := range pattern {
		next, found := a.states[s].next[ch]
		if !found {
			return 0, false
		}
		s = next
	}
	return s, true
}

// Contains reports whether pattern is a substring of the indexed text.
func (a *Automaton) Contains(pattern string) bool {
	_, ok := a.walk(pattern)
	return ok
}

// FindAll returns every occurrence start of pattern in ascending order.
// Each non-clone state in the link-tree subtree of the matched state
// contributes exactly one occurrence end position, so the result is both
// complete (every overlapping occurrence) and duplicate-free.
func (a *Automaton) FindAll(pattern string) []int {
	patLen := 0
	for range pattern {
		patLen++
	}
	if patLen == 0 {
		return allPositions(a.textLen)
	}

	s, ok := a.walk(pattern)
	if !ok {
		return []int{}
	}

	positions := make([]int, 0, 8)
	stack := []int{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if end := a.states[n].endPos; end >= 0 {
			positions = append(positions, end-patLen+1)
		}
		stack = append(stack, a.linkKids[n]...)
	}
	sort.Ints(positions)
	return positions
}

// DistinctSubstrings returns the number of distinct non-empty substrings of
// the text: each state contributes one substring per length between its
// link's longest and its own.
func (a *Automaton) DistinctSubstrings() int64 {
	var total int64
	for i := 1; i < len(a.states); i++ {
		total += int64(a.states[i].len - a.states[a.states[i].link].len)
	}
	return total
}

// States returns the number of automaton states, including the initial one.
func (a *Automaton) States() int {
	return len(a.states)
}

// TextLen returns the length of the indexed text in runes.
func (a *Automaton) TextLen() int {
	return a.textLen
}
