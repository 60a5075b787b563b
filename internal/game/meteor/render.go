package meteor

import (
	"fmt"
	"strings"

	"github.com/arcadeforge/meteorstorm/internal/core"
)

// Render blits the persistent field into dst, centered, then layers the
// fine-resolution overlays (ship, primary bullet, pickup, UFO), the HUD,
// and any phase banner on top. Render never mutates game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < FieldW || dst.Height() < FieldH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", FieldW, FieldH), core.ColorGray)
		return
	}

	offX := (dst.Width() - FieldW) / 2
	offY := (dst.Height() - FieldH) / 2

	g.field.CopyInto(dst, offX, offY)

	for x := 0; x < FieldW; x++ {
		dst.Set(offX+x, offY+GroundRow, GlyphGround, core.ColorDarkGray, core.OwnerHUD)
	}

	if g.phase == PhaseTitle {
		g.renderTitle(dst, offX, offY)
		return
	}

	g.renderOverlays(dst, offX, offY)
	g.renderHUD(dst, offX, offY)
	g.renderBanner(dst, offY)
}

func (g *Game) renderOverlays(dst *core.Screen, offX, offY int) {
	if g.phase != PhaseDying {
		dst.Set(offX+toCell(g.shipX), offY+ShipRow, GlyphShip, core.ColorBrightCyan, core.OwnerHUD)
	}

	if g.bullet.Active {
		dst.Set(offX+toCell(g.bullet.X), offY+toCell(g.bullet.Y),
			GlyphBullet, core.ColorBrightYellow, core.OwnerBullet)
	}

	if g.power.Active {
		dst.Set(offX+toCell(g.power.X), offY+toCell(g.power.Y),
			g.power.Type.Glyph(), core.ColorMagenta, core.OwnerHUD)
	}

	if g.ufo.Active {
		ux := offX + toCell(g.ufo.X)
		uy := offY + 1
		dst.Set(ux, uy, GlyphUFOLeft, core.ColorBrightGreen, core.OwnerHUD)
		dst.Set(ux+1, uy, GlyphUFOBody, core.ColorBrightGreen, core.OwnerHUD)
		dst.Set(ux+2, uy, GlyphUFORight, core.ColorBrightGreen, core.OwnerHUD)
	}
}

func (g *Game) renderHUD(dst *core.Screen, offX, offY int) {
	hud := fmt.Sprintf("SCORE %06d  WAVE %d  ", g.score, g.wave)
	dst.DrawText(offX, offY+HUDRow, hud, core.ColorWhite)
	lives := core.Max(g.lives, 0)
	dst.DrawText(offX+len(hud), offY+HUDRow, strings.Repeat("♥", lives), core.ColorBrightRed)

	status := ""
	if g.comboCount >= 2 && g.comboTimer > 0 {
		status = fmt.Sprintf("COMBO x%d", g.comboCount)
	}
	if g.doubleShot {
		if status != "" {
			status += "  "
		}
		status += fmt.Sprintf("DOUBLE %d", g.doubleTimer/60+1)
	}
	if g.demo {
		status = "DEMO  PRESS FIRE TO PLAY"
	}
	if status != "" {
		dst.DrawTextCentered(offY+StatusRow, status, core.ColorBrightYellow)
	}
}

func (g *Game) renderTitle(dst *core.Screen, offX, offY int) {
	mid := offY + FieldH/2

	dst.DrawTextCentered(mid-4, "M E T E O R  S T O R M", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-2, "Defend the bunkers", core.ColorGray)
	dst.DrawTextCentered(mid+1, "A/D or arrows to move, SPACE to fire", core.ColorWhite)
	dst.DrawTextCentered(mid+2, "P pause, R restart, Q quit", core.ColorWhite)

	// Blink the prompt on the shared animation cadence.
	if (g.frame/30)&1 == 0 {
		dst.DrawTextCentered(mid+5, "PRESS FIRE TO START", core.ColorBrightGreen)
	}
}

func (g *Game) renderBanner(dst *core.Screen, offY int) {
	mid := offY + FieldH/2

	switch g.phase {
	case PhaseWon:
		dst.DrawTextCentered(mid-1, fmt.Sprintf("WAVE %d CLEAR", g.wave), core.ColorBrightGreen)
		dst.DrawTextCentered(mid+1,
			fmt.Sprintf("BONUS %d", g.wave*g.cfg.Scoring.WaveFactor), core.ColorBrightYellow)
	case PhaseLost:
		dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("FINAL SCORE %d", g.score), core.ColorWhite)
	default:
		if g.paused {
			dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
		}
	}
}
