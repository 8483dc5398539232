package rewrite

import "fmt"

// ErrPreconditionFailed is returned when a rule's guard held but the
// network depth after the rewrite it issued is strictly greater than
// before it. This signals a rule miscomputed its replacement, not
// malformed input.
type ErrPreconditionFailed struct {
	Node                    uint32
	Rule                    string
	DepthBefore, DepthAfter uint32
}

func (e *ErrPreconditionFailed) Error() string {
	return fmt.Sprintf("rewrite: rule %q on node %d regressed depth %d -> %d",
		e.Rule, e.Node, e.DepthBefore, e.DepthAfter)
}
