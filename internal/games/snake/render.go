package snake

import (
	"fmt"

	"github.com/vovakirdan/snakebite/internal/core"
	"github.com/vovakirdan/snakebite/internal/effects"
)

const (
	hudHeight = 2
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	snap := g.view.last
	snap.ShowLabel = g.loop.LabelVisible()

	g.renderHUD(dst, snap)

	board, ok := boardRect(dst, snap.Size)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", board.W, board.Y+board.H), core.ColorGray)
		return
	}

	dst.DrawBox(board, boardColor(g.wrap))
	renderGrid(dst, board, snap.Size)
	renderParticles(dst, board, snap.Size, g.cfg.Board.TileSize, g.fx.Particles())

	drawCell(dst, board, snap.Food, '●', ' ', core.ColorOrange)
	renderBody(dst, board, snap.Enemy, core.ColorRed, core.ColorPink)
	renderBody(dst, board, snap.Player, core.ColorBrightGreen, core.ColorTeal)

	if snap.ShowLabel && len(snap.Player) > 0 {
		renderLabel(dst, board, snap.Player[0])
	}

	switch snap.Phase {
	case PhaseIdle:
		renderOverlay(dst, board, core.ColorBrightWhite,
			g.title,
			"Press any key to start",
			"Arrows, WASD or HJKL steer",
		)
	case PhaseGameOver:
		renderOverlay(dst, board, core.ColorBrightRed,
			"GAME OVER",
			causeText(snap.Cause),
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best),
			"Press any key to play again",
		)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, g.title, core.ColorBrightGreen)

	score := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best)
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorWhite)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorDimGray)
	}
}

// boardRect returns the framed board area centered below the HUD.
// It reports false if the screen cannot hold it.
func boardRect(dst *core.Screen, size int) (core.Rect, bool) {
	w := size*cellWidth + 2
	h := size + 2

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	r := area.Centered(w, h)
	if w > area.W || h > area.H {
		return core.NewRect(0, hudHeight, w, h), false
	}
	return r, true
}

func boardColor(wrap bool) core.Color {
	if wrap {
		return core.ColorGray
	}
	return core.ColorWhite
}

func renderGrid(dst *core.Screen, board core.Rect, size int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			drawCell(dst, board, core.Point{X: x, Y: y}, '·', ' ', core.ColorDimGray)
		}
	}
}

// drawCell fills the two screen columns of a board cell.
func drawCell(dst *core.Screen, board core.Rect, p core.Point, left, right rune, c core.Color) {
	sx := board.X + 1 + p.X*cellWidth
	sy := board.Y + 1 + p.Y
	dst.SetColored(sx, sy, left, c)
	dst.SetColored(sx+1, sy, right, c)
}

func renderBody(dst *core.Screen, board core.Rect, body []core.Point, head, rest core.Color) {
	// Tail first so the head stays visible when segments overlap.
	for i := len(body) - 1; i >= 0; i-- {
		c := rest
		if i == 0 {
			c = head
		}
		drawCell(dst, board, body[i], '█', '█', c)
	}
}

func renderLabel(dst *core.Screen, board core.Rect, head core.Point) {
	const label = "YOU"

	y := head.Y - 1
	if y < 0 {
		y = head.Y + 1
	}
	sx := board.X + 1 + head.X*cellWidth
	if limit := board.Right() - 1 - len(label); sx > limit {
		sx = limit
	}
	dst.DrawTextColored(sx, board.Y+1+y, label, core.ColorBrightWhite)
}

// renderParticles maps pixel positions back onto board cells.
func renderParticles(dst *core.Screen, board core.Rect, size, tile int, parts []effects.Particle) {
	if tile <= 0 {
		return
	}
	half := float64(tile) / 2
	for _, p := range parts {
		cx := int((p.X + half) / float64(tile))
		cy := int((p.Y + half) / float64(tile))
		if p.X+half < 0 || p.Y+half < 0 || cx >= size || cy >= size {
			continue
		}
		r, c := particleGlyph(p.Alpha())
		drawCell(dst, board, core.Point{X: cx, Y: cy}, r, ' ', c)
	}
}

func particleGlyph(alpha float64) (rune, core.Color) {
	switch {
	case alpha > 0.66:
		return '*', core.ColorYellow
	case alpha > 0.33:
		return '+', core.ColorOrange
	default:
		return '.', core.ColorDimGray
	}
}

func renderOverlay(dst *core.Screen, board core.Rect, title core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	box := board.Centered(min(width+4, board.W), len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = title
		}
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

func causeText(c EndCause) string {
	switch c {
	case CauseWall:
		return "You hit the wall"
	case CauseSelf:
		return "You bit yourself"
	case CauseBitten:
		return "The enemy bit you"
	default:
		return ""
	}
}
