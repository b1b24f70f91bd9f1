// Package strdist computes scalar string-distance and string-similarity
// metrics over generic symbol sequences.
//
// 🚀 What is strdist?
//
//	The metric layer of the module: pure functions that reduce a pair of
//	sequences to a single number.
//	  • Distance / DistanceWeighted — Levenshtein edit distance
//	  • Ratio                       — normalized similarity in [0,1]
//	  • Hamming                     — positional mismatch count
//	  • Jaro / JaroWinkler          — positional-matching similarity
//	    tuned for short strings, the Winkler variant boosting shared
//	    prefixes
//
// Algorithm Outline (Levenshtein):
//  1. Strip the common prefix and suffix of a and b; they never contribute.
//  2. Make a the shorter sequence; its length bounds the working buffer.
//  3. Wagner-Fischer dynamic program over a single rolling row:
//     row[i] holds the distance of a[:i] to the b prefix processed so far.
//  4. The answer is the final row's last cell.
//
// With SubstitutionWeight=2 a substitution costs the same as a
// delete+insert pair, which makes Ratio directly comparable to
// block-matching similarity measures.
//
// Complexity:
//
//	Time   = O(len(a)·len(b))
//	Memory = O(min(len(a), len(b)))
//
// Errors:
//   - ErrBadSubstitutionWeight — SubstitutionWeight outside {1, 2}.
//   - ErrLengthMismatch        — Hamming on unequal-length inputs.
//   - ErrNegativePrefixWeight  — JaroWinkler with a negative prefix weight.
//
// All functions are synchronous, allocation-local and safe for concurrent
// use on shared read-only inputs.
package strdist
