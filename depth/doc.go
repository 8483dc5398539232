// Package depth decorates an *aig.AIG with per-node level, network
// depth, and critical-path membership, recomputed on demand by
// UpdateLevels. It holds no state the AIG doesn't already imply — call
// UpdateLevels after any mutation batch before trusting Level, Depth, or
// IsOnCriticalPath again.
package depth
