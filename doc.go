// Package seqmotif represents sequence motifs as position matrices and moves
// them between their three numeric encodings.
//
// 🚀 What is seqmotif?
//
//	A small, dependency-light toolkit for motif work:
//		• Counts (PFM), probabilities (PPM) and log-odds scores (PWM)
//		• Orientation of raw tables against an alphabet (W×N or N×W input)
//		• Built-in DNA, RNA and amino-acid alphabets with gap-aware variants
//		• Consensus, information content, positional weight
//		• A reconciling MatrixSet that completes any supplied subset
//
// ✨ Why choose seqmotif?
//
//   - Errors, not panics – every failure matches a sentinel via errors.Is
//   - Deterministic – fixed loop orders, stable tie-breaking
//   - Atomic – a failed reconcile leaves the previous state untouched
//
// Under the hood, everything is organized under four subpackages:
//
//	alphabet/   alphabet types, symbol order, built-in backgrounds
//	matrix/     row-major Dense table, validators, row kernels
//	pm/         position matrices, conversions, statistics, MatrixSet
//	tabfile/    delimited numeric table files
//
// The pmconv command (cmd/pmconv) exposes the conversions on the command line.
package seqmotif
