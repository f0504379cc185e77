package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/prefabs"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}
	floorColor      = color.RGBA{R: 0x2a, G: 0x30, B: 0x38, A: 0xff}
)

// worldToScreen maps the XZ plane to the screen with +Z pointing up.
func worldToScreen(p common.Vec3) (float32, float32) {
	x := common.BaseWidth/2 + p.X*common.PixelsPerMeter
	y := common.BaseHeight/2 - p.Z*common.PixelsPerMeter
	return float32(x), float32(y)
}

func screenToWorld(x, y float64) common.Vec3 {
	return common.V3(
		(x-common.BaseWidth/2)/common.PixelsPerMeter,
		0,
		(common.BaseHeight/2-y)/common.PixelsPerMeter,
	)
}

func meters(m float64) float32 {
	return float32(m * common.PixelsPerMeter)
}

func drawBox(screen *ebiten.Image, b prefabs.BoxSpec, clr color.Color) {
	x, y := worldToScreen(common.V3(b.MinX, 0, b.MaxZ))
	vector.DrawFilledRect(screen, x, y, meters(b.MaxX-b.MinX), meters(b.MaxZ-b.MinZ), clr, false)
}

func drawArena(screen *ebiten.Image, spec *prefabs.ArenaSpec) {
	screen.Fill(backgroundColor)
	if spec == nil {
		return
	}
	for _, f := range spec.Floors {
		drawBox(screen, f, floorColor)
	}
	for _, w := range spec.Walls {
		// Taller walls read lighter.
		shade := uint8(min(0x50+w.Height*0x20, 0xc0))
		drawBox(screen, w, color.RGBA{R: shade, G: shade, B: shade, A: 0xff})
	}
}

func drawEntities(screen *ebiten.Image, w *ecs.World) {
	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.TintComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, body *component.PhysicsBody, tint *component.Tint) {
			x, y := worldToScreen(tr.Position)
			r := meters(body.Radius)
			vector.DrawFilledCircle(screen, x, y, max(r, 2), tint.Color, true)
			if body.Dynamic {
				return
			}
			fx, fy := worldToScreen(tr.Position.Add(tr.Forward().Scale(body.Radius * 1.6)))
			vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.Black, true)
		})
}

// drawDebug draws enemy sight and attack radii and their walk points.
func drawDebug(screen *ebiten.Image, w *ecs.World) {
	ecs.ForEach3(w,
		component.EnemyComponent.Kind(),
		component.EnemyBrainComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, cfg *component.Enemy, brain *component.EnemyBrain, tr *component.Transform) {
			x, y := worldToScreen(tr.Position)
			vector.StrokeCircle(screen, x, y, meters(cfg.SightRange), 1, colornames.Yellow, true)
			vector.StrokeCircle(screen, x, y, meters(cfg.AttackRange), 1, colornames.Red, true)
			if brain.WalkPointSet {
				wx, wy := worldToScreen(brain.WalkPoint)
				vector.StrokeLine(screen, x, y, wx, wy, 1, colornames.Gray, true)
				vector.DrawFilledCircle(screen, wx, wy, 3, colornames.Gray, true)
			}
		})
}
