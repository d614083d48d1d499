package standardize

import "github.com/poiesic/termalign/core"

// Monitor provides hooks to observe the standardization process.
// Implement this interface to track intermediate votes and the decision.
type Monitor interface {
	Start(term string)
	MethodMatched(vote core.Vote)
	MethodFellBack(vote core.Vote)
	Finish(result *core.StandardizationResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) MethodMatched(_ core.Vote)            {}
func (n *noopMonitor) MethodFellBack(_ core.Vote)           {}
func (n *noopMonitor) Finish(_ *core.StandardizationResult) {}
