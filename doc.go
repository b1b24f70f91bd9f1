// Package leven is your in-memory toolbox for fuzzy string matching,
// deduplication, spell-correction and diff tooling — from scalar edit
// distances to edit-operation algebra, generalized medians and
// assignment-based set similarity.
//
// 🚀 What is leven?
//
//	A pure-Go library of string-distance algorithms that brings together:
//		• Distance metrics: Levenshtein, Hamming, Jaro, Jaro-Winkler
//		• Edit operations: find, convert, invert, apply, subtract,
//		  matching blocks — a full algebra over optimal alignments
//		• Median strings: greedy, quick and set medians plus local-search
//		  improvement of any candidate
//		• Collection similarity: token-sequence double edit distance and
//		  Hungarian-assignment set distance
//
// ✨ Why choose leven?
//
//   - One generic core – byte strings and code-point strings share a single
//     implementation parameterized over the symbol type
//   - Value in, value out – every operation is synchronous, side-effect-free
//     and safe to call concurrently on shared read-only inputs
//   - Strict sentinels – structurally invalid input yields typed errors,
//     never panics; degenerate inputs have defined outputs
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	symbols/ — byte and code-point sequence constructors, Unicode normalization
//	strdist/ — Levenshtein / ratio / Hamming / Jaro / Jaro-Winkler metrics
//	editop/  — atomic and block edit operations and their algebra
//	median/  — greedy, quick and set medians, single-step improvement
//	setdist/ — sequence- and set-level similarity over string collections
//
// Quick ASCII example:
//
//	spam ──(delete s, insert r, replace m→k)──▶ park
//
// is the canonical three-op alignment returned by editop.Find.
//
// Dive into the per-package doc.go files for algorithms, complexity notes
// and runnable examples.
//
//	go get github.com/oskaritimperi/leven
package leven
