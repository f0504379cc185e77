// Command combatsim runs the combat loop headless against the arena
// prefabs with a scripted player and prints a summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/ecs/entity"
	"github.com/milk9111/combatloop/ecs/system"
	"github.com/milk9111/combatloop/prefabs"
)

type healthLog struct {
	hits int
	last float64
}

func (h *healthLog) ShowHealth(e ecs.Entity, current, total float64) {
	h.hits++
	h.last = current
}

func main() {
	ticks := flag.Int("ticks", 3600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	seed := flag.Int64("seed", 1, "patrol random seed")
	fireEvery := flag.Int("fire-every", 30, "ticks between player shots")
	quiet := flag.Bool("q", false, "suppress per-event logging")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	if err := run(*ticks, *dt, *seed, *fireEvery); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ticks int, dt float64, seed int64, fireEvery int) error {
	world := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	health := &healthLog{}

	var reward *system.RewardScript
	if src, err := prefabs.LoadScript("kill_reward.tengo"); err == nil {
		if reward, err = system.NewRewardScript(src); err != nil {
			return err
		}
	}

	stack := system.NewStack(world, system.StackOptions{
		Rand:    rand.New(rand.NewSource(seed)),
		Health:  health,
		Reward:  reward,
		Physics: pw,
	})

	arena, err := entity.LoadArena(world, pw)
	if err != nil {
		return err
	}

	if h, ok := ecs.Get(world, arena.Player, component.HealthComponent.Kind()); ok {
		health.last = h.Current
	}

	control := system.PlayerControl{Physics: pw}
	shots := 0
	for i := 0; i < ticks; i++ {
		// Strafe left and right across the spawn.
		strafe := math.Sin(float64(i) * dt * 0.8)
		control.Move(world, arena.Player, common.V3(strafe, 0, 0), dt)

		if target, ok := nearestEnemy(world, arena.Player); ok {
			control.AimAt(world, arena.Player, target)
			if fireEvery > 0 && i%fireEvery == 0 {
				control.Fire(world, arena.Player)
				shots++
			}
		}
		world.Update(dt)
	}

	alive := 0
	ecs.ForEach(world, component.EnemyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy) { alive++ })

	fmt.Printf("simulated %.1fs (%d ticks, seed %d)\n", world.Time(), ticks, seed)
	fmt.Printf("player shots: %d, hits taken: %d, health: %.0f\n", shots, health.hits, health.last)
	fmt.Printf("enemies remaining: %d/%d, score: %d\n", alive, len(arena.Enemies), stack.Scoreboard.Count())
	return nil
}

// nearestEnemy returns the position of the closest living enemy.
func nearestEnemy(w *ecs.World, player ecs.Entity) (common.Vec3, bool) {
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	best, found := math.Inf(1), false
	var target common.Vec3
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, _ *component.Enemy, et *component.Transform, h *component.Health) {
			if !h.Alive {
				return
			}
			if d := common.PlanarDistance(tr.Position, et.Position); d < best {
				best, target, found = d, et.Position, true
			}
		})
	return target, found
}
