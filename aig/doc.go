// Package aig implements the And-Inverter Graph store: nodes (constant,
// primary inputs, two-input ANDs) referenced through polarity-carrying
// signals, structural hashing, and node substitution.
//
// The package has no notion of depth or critical path — that view is
// layered on top by package depth — and no notion of rewriting rules,
// which live in package rewrite. aig only guarantees the data-model
// invariants: acyclicity, structural hashing of ANDs by their ordered
// fanin pair, and the trivial simplifications applied at AND creation.
// Fanins have strictly smaller ids than their node only as constructed;
// SubstituteNode can leave a node with a fanin of higher id, and the
// store does not renumber nodes to restore that order.
package aig
