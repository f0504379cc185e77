package component

import "github.com/milk9111/combatloop/common"

// NavAgent is the reference navigation agent state.
type NavAgent struct {
	Speed            float64
	StoppingDistance float64
	Enabled          bool
	Destination      common.Vec3
	HasDestination   bool
}

var NavAgentComponent = NewComponent[NavAgent]()
