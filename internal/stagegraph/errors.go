package stagegraph

import "errors"

var (
	// ErrChainBroken indicates that a walk reached a category with no outgoing
	// stage while the target is still ahead: some stage produces the target,
	// but the chain from the start never links up with it.
	ErrChainBroken = errors.New("stage chain is broken")

	// ErrTargetUnreachable indicates that the chain can never arrive at the
	// target, either because no stage produces it or because the walk loops.
	ErrTargetUnreachable = errors.New("target category is unreachable")

	// ErrDuplicateStage indicates two stages sharing a source category.
	ErrDuplicateStage = errors.New("duplicate stage for source category")
)
