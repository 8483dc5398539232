// Package render draws an AIG's level structure to a PNG: one column
// per level, nodes as boxes, critical-path edges in a distinct color.
// It is a debugging aid, not part of the rewrite contract.
package render
