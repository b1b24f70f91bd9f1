// Package setdist compares collections of strings, treating each string
// as a single token priced by its edit-distance similarity.
//
// 🚀 What is setdist?
//
//	Two similarity notions over [][]T collections:
//	  • SeqDistance / SeqRatio — order-sensitive: a Levenshtein dynamic
//	    program over the token sequences themselves, where inserting or
//	    deleting a token costs 1 and substituting token x for y costs
//	    2·(1 - strdist.Ratio(x, y)) — 0 for identical tokens, up to 2
//	    for completely dissimilar ones, matching the weight-2 atomic
//	    substitution pricing.
//	  • SetDistance / SetRatio — order-independent: the same token-pair
//	    cost over the complete cost matrix, solved as a minimum-cost
//	    assignment (Hungarian algorithm); the smaller side is padded
//	    with dummy tokens priced 1, one per unmatched insert/delete.
//
// Both ratios share the normalization
// (len(a)+len(b)-distance)/(len(a)+len(b)), with 1.0 for two empty
// collections and 0.0 when exactly one is empty.
//
// Complexity:
//
//	SeqDistance = O(len(a)·len(b)) token-pair pricings
//	SetDistance = O(len(a)·len(b)) pricings + O(n³) assignment, n = max side
//
// All functions are synchronous, allocation-local and safe for
// concurrent use on shared read-only inputs.
package setdist
