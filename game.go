package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/ecs/entity"
	"github.com/milk9111/combatloop/ecs/system"
	"github.com/milk9111/combatloop/prefabs"
)

const tickDT = 1.0 / 60

type GameOptions struct {
	Debug bool
	Seed  int64
	Watch bool
}

type Game struct {
	opts GameOptions

	world   *ecs.World
	physics *ecs.PhysicsWorld
	stack   *system.Stack
	arena   *entity.Arena
	control system.PlayerControl

	hud     *HUD
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	watcher *prefabs.Watcher
	frames  int
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{opts: opts, hud: NewHUD()}
	g.pauseUI = NewPauseUI(g)

	if err := g.reset(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset builds a fresh world from the prefabs.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()

	reward, err := loadRewardScript()
	if err != nil {
		log.Printf("prefabs: %v; awarding one point per kill", err)
	}

	stack := system.NewStack(world, system.StackOptions{
		Rand:    rand.New(rand.NewSource(g.opts.Seed)),
		Health:  g.hud,
		Score:   g.hud,
		Reward:  reward,
		Physics: pw,
	})

	arena, err := entity.LoadArena(world, pw)
	if err != nil {
		return fmt.Errorf("game: load arena: %w", err)
	}

	g.world, g.physics, g.stack, g.arena = world, pw, stack, arena
	g.control = system.PlayerControl{Physics: pw}
	if h, ok := ecs.Get(world, arena.Player, component.HealthComponent.Kind()); ok {
		g.hud.ShowHealth(arena.Player, h.Current, h.Max)
	}
	return nil
}

func loadRewardScript() (*system.RewardScript, error) {
	src, err := prefabs.LoadScript("kill_reward.tengo")
	if err != nil {
		return nil, fmt.Errorf("load kill_reward.tengo: %w", err)
	}
	return system.NewRewardScript(src)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reload()
	g.handleInput()
	g.world.Update(tickDT)
	g.hud.Update()
	return nil
}

func (g *Game) handleInput() {
	player := g.arena.Player
	if !ecs.IsAlive(g.world, player) {
		return
	}

	var dir common.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Z++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Z--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X--
	}
	g.control.Move(g.world, player, dir, tickDT)

	mx, my := ebiten.CursorPosition()
	g.control.AimAt(g.world, player, screenToWorld(float64(mx), float64(my)))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.control.Fire(g.world, player)
	}
}

// reload applies prefab edits picked up by the watcher.
func (g *Game) reload() {
	for _, name := range g.watcher.Pending() {
		switch name {
		case "enemy.yaml":
			spec, err := prefabs.LoadEnemySpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			entity.ApplyEnemySpec(g.world, spec)
		case "player.yaml":
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			entity.ApplyPlayerSpec(g.world, spec)
		case "kill_reward.tengo":
			script, err := loadRewardScript()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			g.stack.Combat.Reward = script
			log.Printf("prefabs: reloaded %s", name)
		case "arena.yaml":
			log.Printf("prefabs: %s changed, restart from the pause menu to apply", name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, g.arena.Spec)
	drawEntities(screen, g.world)
	if g.opts.Debug {
		drawDebug(screen, g.world)
	}
	g.hud.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  t=%.1fs", ebiten.ActualFPS(), g.world.Time()), common.BaseWidth-160, 4)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
