// Package substring provides substring indexes built once over a fixed text
// and queried many times.
//
// Two index representations implement the same [Index] contract:
//
//   - [Automaton]: a suffix automaton, the minimal DFA accepting exactly the
//     substrings of the text
//   - [Tree]: a suffix tree built online with Ukkonen's algorithm
//
// Both are constructed in O(n) time and space with a single pass over the
// text and agree on every query. Callers that only need the contract should
// depend on [Index] and treat the construction choice as an implementation
// detail.
//
// # Positions
//
// The symbol unit is the Unicode scalar value (rune). Text is decoded once
// at construction; every position accepted or returned anywhere in this
// package is a rune offset into the original text. There is no byte-offset
// API. A position returned by FindAll can therefore always be round-tripped
// through []rune(text) to recover exactly the matched pattern.
//
// # Concurrency
//
// Construction is single-threaded and one-shot. After the constructor
// returns, the index is immutable and safe for concurrent queries without
// locking.
//
// # Usage
//
//	idx := substring.NewAutomaton("banana")
//	idx.Contains("ana")          // true
//	idx.FindAll("ana")           // [1 3]
//	idx.DistinctSubstrings()     // 15
//
// Wrap an index with [NewCached] to memoize repeated FindAll calls:
//
//	cached := substring.NewCached(idx, 256)
package substring
