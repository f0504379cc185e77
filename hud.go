package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	healthBarX = 20
	healthBarY = 44
	healthBarW = 200
	healthBarH = 12
)

// HUD shows the player's health and the score. It implements
// system.HealthDisplay and system.ScoreDisplay.
type HUD struct {
	ui     *ebitenui.UI
	health *widget.Text
	score  *widget.Text

	fraction float64
	shown    float32
}

func NewHUD() *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	health := widget.NewText(widget.TextOpts.Text("Health", &face, white))
	score := widget.NewText(widget.TextOpts.Text("Score: 0", &face, white))

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(health)
	panel.AddChild(score)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &HUD{
		ui:       &ebitenui.UI{Container: root},
		health:   health,
		score:    score,
		fraction: 1,
		shown:    1,
	}
}

func (h *HUD) ShowHealth(e ecs.Entity, current, total float64) {
	if h == nil {
		return
	}
	h.health.Label = fmt.Sprintf("Health: %.0f / %.0f", current, total)
	h.fraction = 0
	if total > 0 {
		h.fraction = min(max(current/total, 0), 1)
	}
}

func (h *HUD) ShowScore(count int) {
	if h == nil {
		return
	}
	h.score.Label = fmt.Sprintf("Score: %d", count)
}

func (h *HUD) Update() {
	h.shown = common.Lerp(h.shown, float32(h.fraction), 0.2)
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, healthBarX, healthBarY, healthBarW, healthBarH, colornames.Dimgray, false)
	vector.DrawFilledRect(screen, healthBarX, healthBarY, healthBarW*h.shown, healthBarH, colornames.Limegreen, false)
	h.ui.Draw(screen)
}
