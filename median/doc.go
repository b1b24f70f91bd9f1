// Package median computes generalized median strings: consensus
// sequences minimizing the weighted sum of edit distances (SOD) to a
// set of input strings.
//
// 🚀 What is median?
//
//	Four solvers with different cost/quality trade-offs:
//	  • Median      — greedy consensus, grown symbol by symbol against
//	    per-string Levenshtein rows; the workhorse. The result is
//	    generally not a member of the input set.
//	  • QuickMedian — single-pass positional voting without any
//	    re-alignment; cheapest, lowest fidelity — in quality it sits
//	    between SetMedian and picking an input at random.
//	  • SetMedian   — the input string with the smallest weighted SOD;
//	    always a member of the set, O(n²) distance computations.
//	  • Improve     — one local-search step over an arbitrary candidate;
//	    never increases the SOD. Callers re-invoke it for further
//	    improvement.
//
// Weights are multiplicities, not probabilities: weight 0 keeps a string
// in the bookkeeping but removes its influence on the result. A nil
// weight slice means uniform weight 1.0 per string; a slice of the wrong
// length fails with ErrWeightMismatch and a negative entry with
// ErrNegativeWeight. An empty string set yields the empty string.
//
// Symbols must be ordered (cmp.Ordered) so that candidate symbols can be
// enumerated in a canonical ascending order, making every tie-break — and
// therefore every result — deterministic.
//
// Complexity:
//
//	Median      ≈ O(Σ len(sᵢ) · |median| · |Σ|)
//	QuickMedian = O(Σ len(sᵢ))
//	SetMedian   = O(n² · len²)
//	Improve     ≈ O(|candidate| · |Σ| · Σ len(sᵢ) · |candidate|)
//
// All functions are synchronous, allocation-local and safe for
// concurrent use on shared read-only inputs.
package median
