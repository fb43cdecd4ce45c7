// Package assign solves the linear bipartite assignment problem:
// given an m×n matrix of real-valued costs, pick a one-to-one mapping
// of rows to columns of minimum total cost, and check that a proposed
// mapping is globally optimal.
//
// 🚀 What is assign?
//
//	A small, deterministic, pure-Go library built around the Hungarian
//	(Kuhn–Munkres) method:
//		• Rectangular or square cost matrices, negative costs welcome
//		• Zero-cost dummy padding with automatic trimming of dummy pairs
//		• Explicit star/prime/cover state machine, O(n³) worst case
//		• Primal–dual optimality verification of caller-supplied mappings
//
// ✨ Why choose assign?
//
//   - Deterministic – row-major tie-breaking; identical input, identical output
//   - Rock-solid guarantees – sentinel errors only, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – configurable zero tolerance, bounded covering loop
//
// Everything lives in one subpackage:
//
//	hungarian/ — padding, reduction, mark tracking, augmenting paths,
//	             the Solve entry point and the VerifyOptimal checker
//
// Quick example:
//
//	costs := [][]float64{
//	    {4, 1, 3},
//	    {2, 0, 5},
//	    {3, 2, 2},
//	}
//	res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
//	// res.Pairs = [{0 1} {1 0} {2 2}], res.Cost = 5
//
//	go get github.com/katalvlaran/assign/hungarian
package assign
