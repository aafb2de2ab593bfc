// Package webrank ranks the pages of small webgraphs.
//
// What is webrank?
//
//	A compact, dependency-light toolkit that brings together:
//		• Connectivity files: parse & write the digit-and-space matrix format
//		• Dense linear algebra: products, Gaussian elimination, eigenpairs
//		• PageRank: linear-system, power-method and eigenvector variants
//		• A console reporter, an interactive loop and a SQLite run history
//
// Packages:
//
//	matrix/           — row-major Dense, validators, Mul/MatVec/Solve/Eigen
//	webfile/          — connectivity file parser & writer
//	pagerank/         — Engine with the three ranking methods
//	report/           — console rendering of matrices and rank vectors
//	internal/config   — YAML configuration
//	internal/history  — SQLite log of computed rankings
//	internal/session  — interactive method-selection loop
//	cmd/webrank       — the command-line tool
//
// Quick ASCII example:
//
//	    1 ──► 2
//	    ▲     │
//	    └─ 3 ◄┘
//
//	is the file
//
//	    0 0 1
//	    1 0 0
//	    0 1 0
//
//	(row = destination, column = source) and every method ranks it uniformly.
//
//	go install github.com/katalvlaran/webrank/cmd/webrank@latest
package webrank
