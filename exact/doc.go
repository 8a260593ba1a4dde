// SPDX-License-Identifier: MIT

// Package exact provides maximum independent set oracles for the brkga
// intensification step.
//
// Solver is a depth-first branch-and-bound over bitset candidate sets with
// degree ≤ 1 reductions and a greedy clique-cover bound. It honors the
// caller's context deadline and always returns a valid independent set: on
// early stop the incumbent, otherwise a proven optimum.
//
// BruteForce enumerates all subsets and serves as a reference for tiny inputs.
//
// Both restrict the search to the allowed vertices and report global ids.
package exact
