package system

import (
	"math"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// AgentNavigator implements Navigator over component.NavAgent.
type AgentNavigator struct{}

func (AgentNavigator) SetDestination(w *ecs.World, e ecs.Entity, point common.Vec3) bool {
	agent, ok := ecs.Get(w, e, component.NavAgentComponent.Kind())
	if !ok || !agent.Enabled {
		return false
	}
	agent.Destination = point
	agent.HasDestination = true
	return true
}

func (AgentNavigator) SetEnabled(w *ecs.World, e ecs.Entity, enabled bool) {
	agent, ok := ecs.Get(w, e, component.NavAgentComponent.Kind())
	if !ok {
		return
	}
	agent.Enabled = enabled
	if !enabled {
		agent.HasDestination = false
	}
}

// NavigationSystem walks agents straight toward their destination on the
// ground plane.
type NavigationSystem struct{}

func NewNavigationSystem() *NavigationSystem {
	return &NavigationSystem{}
}

func (s *NavigationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.NavAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *component.NavAgent, tr *component.Transform) {
		if !agent.Enabled || !agent.HasDestination {
			return
		}
		delta := agent.Destination.Sub(tr.Position).Flat()
		dist := delta.Len()
		if dist <= agent.StoppingDistance || dist == 0 {
			return
		}

		step := math.Min(agent.Speed*dt, dist-agent.StoppingDistance)
		if step <= 0 {
			return
		}
		tr.Position = tr.Position.Add(delta.Scale(step / dist))
		tr.Yaw = common.YawTowards(common.Vec3{}, delta)
	})
}
