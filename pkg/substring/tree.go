package substring

import (
	"sort"
	"unicode/utf8"
)

// terminator is appended to the symbol sequence during construction so that
// every suffix ends at a leaf. Its value lies above the valid Unicode range,
// so it can never match a rune of any pattern.
const terminator rune = utf8.MaxRune + 1

// openEnd marks a leaf edge that is still growing during construction. All
// open ends are frozen to the concrete symbol count before NewTree returns.
const openEnd = -1

// treeNode is one node of the suffix tree. The edge label leading to the
// node is symbols[start:end), shared by reference with the indexed text.
type treeNode struct {
	start int
	end   int
	// children maps the first rune of an edge label to the child index.
	children map[rune]int
	// suffixLink is followed during construction to skip re-traversal. It is
	// meaningless after the build and never consulted by queries.
	suffixLink int
	// suffixStart is the starting rune offset of the suffix ending at this
	// leaf, assigned once when the leaf is created, or -1 for internal
	// nodes. Storing it directly means no query ever derives a position by
	// subtraction.
	suffixStart int
}

// Tree is a suffix tree over a fixed text, built online with Ukkonen's
// algorithm in O(n) time and space.
//
// The finished tree is explicit: every suffix of the text ends at a leaf,
// and every internal node has at least two children. It is immutable and
// safe for concurrent queries.
type Tree struct {
	// symbols is the decoded text plus the private terminator.
	symbols []rune
	textLen int
	nodes   []treeNode
	leaves  int
}

var _ Index = (*Tree)(nil)

// NewTree builds a suffix tree over text. It cannot fail: the empty text
// yields a root with a single terminator leaf.
func NewTree(text string) *Tree {
	symbols := append([]rune(text), terminator)
	t := &Tree{
		symbols: symbols,
		textLen: len(symbols) - 1,
		nodes:   make([]treeNode, 1, 2*len(symbols)),
	}
	t.nodes[0] = treeNode{suffixStart: -1}
	t.build()
	return t
}

// build runs Ukkonen's algorithm over the symbol sequence. The active point
// and pending-suffix counter live only inside this call.
func (t *Tree) build() {
	var (
		activeNode   = 0
		activeEdge   = 0 // symbol index of the first rune on the active edge
		activeLength = 0
		remainder    = 0
		nextSuffix   = 0 // suffixes become explicit in increasing order
	)

	for i, ch := range t.symbols {
		needLink := -1 // internal node created in this phase, awaiting its suffix link
		remainder++

		for remainder > 0 {
			if activeLength == 0 {
				activeEdge = i
			}

			child, ok := t.nodes[activeNode].children[t.symbols[activeEdge]]
			if !ok {
				// No edge on this symbol: new leaf off an explicit node.
				leaf := t.newLeaf(i, nextSuffix)
				nextSuffix++
				t.setChild(activeNode, t.symbols[activeEdge], leaf)
				needLink = t.linkTo(needLink, activeNode)
			} else {
				// Skip/count: jump whole edges instead of walking them
				// symbol by symbol.
				if edgeLen := t.edgeLength(child, i); activeLength >= edgeLen {
					activeNode = child
					activeEdge += edgeLen
					activeLength -= edgeLen
					continue
				}

				if t.symbols[t.nodes[child].start+activeLength] == ch {
					// The symbol is already on the edge: implicit extension
					// covers every remaining suffix, stop the phase.
					activeLength++
					needLink = t.linkTo(needLink, activeNode)
					break
				}

				// Mid-edge mismatch: split the edge, hang a new leaf off the
				// new internal node.
				split := t.newInternal(t.nodes[child].start, t.nodes[child].start+activeLength)
				t.setChild(activeNode, t.symbols[activeEdge], split)

				leaf := t.newLeaf(i, nextSuffix)
				nextSuffix++
				t.setChild(split, ch, leaf)

				t.nodes[child].start += activeLength
				t.setChild(split, t.symbols[t.nodes[child].start], child)

				needLink = t.linkTo(needLink, split)
			}

			remainder--
			if activeNode == 0 && activeLength > 0 {
				activeLength--
				activeEdge = i - remainder + 1
			} else if activeNode != 0 {
				activeNode = t.nodes[activeNode].suffixLink
			}
		}
	}

	t.freeze()
}

// linkTo resolves a pending suffix link to target and leaves target pending
// for the next resolution in the same phase.
func (t *Tree) linkTo(pending, target int) int {
	if pending != -1 {
		t.nodes[pending].suffixLink = target
	}
	return target
}

func (t *Tree) newLeaf(start, suffixStart int) int {
	t.nodes = append(t.nodes, treeNode{
		start:       start,
		end:         openEnd,
		suffixStart: suffixStart,
	})
	return len(t.nodes) - 1
}

func (t *Tree) newInternal(start, end int) int {
	t.nodes = append(t.nodes, treeNode{
		start:       start,
		end:         end,
		suffixStart: -1,
	})
	return len(t.nodes) - 1
}

func (t *Tree) setChild(parent int, first rune, child int) {
	if t.nodes[parent].children == nil {
		t.nodes[parent].children = make(map[rune]int, 2)
	}
	t.nodes[parent].children[first] = child
}

// edgeLength returns the current label length of the edge into node, where
// phase is the symbol index being processed and bounds open leaf edges.
func (t *Tree) edgeLength(node, phase int) int {
	if t.nodes[node].end == openEnd {
		return phase + 1 - t.nodes[node].start
	}
	return t.nodes[node].end - t.nodes[node].start
}

// freeze replaces every open leaf end with the concrete symbol count and
// tallies the leaves representing non-empty suffixes. After this step no
// node references the shared sentinel.
func (t *Tree) freeze() {
	for i := range t.nodes {
		if t.nodes[i].end == openEnd {
			t.nodes[i].end = len(t.symbols)
		}
		if s := t.nodes[i].suffixStart; s >= 0 && s < t.textLen {
			t.leaves++
		}
	}
}

// walk descends from the root matching every rune of pattern against the
// edge labels. It returns the node at or below which the pattern ends. Edge
// runes are compared individually: reaching an edge only guarantees a
// shared first rune, not full-edge equality.
func (t *Tree) walk(pattern []rune) (node int, ok bool) {
	node = 0
	pos := 0
	for pos < len(pattern) {
		child, found := t.nodes[node].children[pattern[pos]]
		if !found {
			return 0, false
		}
		for k := t.nodes[child].start; k < t.nodes[child].end && pos < len(pattern); k++ {
			if t.symbols[k] != pattern[pos] {
				return 0, false
			}
			pos++
		}
		node = child
	}
	return node, true
}

// Contains reports whether pattern is a substring of the indexed text.
func (t *Tree) Contains(pattern string) bool {
	_, ok := t.walk([]rune(pattern))
	return ok
}

// FindAll returns every occurrence start of pattern in ascending order.
// Each leaf below the matched locus carries the start of one suffix that
// begins with pattern, so the collected set is exactly the occurrence set.
func (t *Tree) FindAll(pattern string) []int {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return allPositions(t.textLen)
	}

	locus, ok := t.walk(runes)
	if !ok {
		return []int{}
	}

	positions := make([]int, 0, 8)
	stack := []int{locus}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s := t.nodes[n].suffixStart; s >= 0 {
			positions = append(positions, s)
			continue
		}
		for _, child := range t.nodes[n].children {
			stack = append(stack, child)
		}
	}
	sort.Ints(positions)
	return positions
}

// DistinctSubstrings returns the number of distinct non-empty substrings of
// the text. Every substring has a unique locus on exactly one edge of the
// explicit tree; clamping each edge at the text length excludes the
// terminator's contributions.
func (t *Tree) DistinctSubstrings() int64 {
	var total int64
	for i := 1; i < len(t.nodes); i++ {
		end := t.nodes[i].end
		if end > t.textLen {
			end = t.textLen
		}
		if n := end - t.nodes[i].start; n > 0 {
			total += int64(n)
		}
	}
	return total
}

// Nodes returns the number of tree nodes, including the root.
func (t *Tree) Nodes() int {
	return len(t.nodes)
}

// Leaves returns the number of leaves representing non-empty suffixes of
// the text, i.e. one per suffix.
func (t *Tree) Leaves() int {
	return t.leaves
}

// TextLen returns the length of the indexed text in runes.
func (t *Tree) TextLen() int {
	return t.textLen
}
