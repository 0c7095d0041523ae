package busjam

import (
	"fmt"
	"time"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

var headArrows = map[core.Dir]rune{
	core.DirUp:    '▲',
	core.DirRight: '▶',
	core.DirDown:  '▼',
	core.DirLeft:  '◀',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderFooter(dst)

	if g.session == nil {
		g.renderOverlay(dst, "No levels found", "Check the levels directory")
		return
	}
	if g.layout.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderQueues(dst)
	g.renderBuses(dst)

	switch {
	case g.session.Won() && g.HasNextLevel():
		g.renderOverlay(dst, "Level clear!", "Enter: next level  R: replay")
	case g.session.Won():
		g.renderOverlay(dst, "All levels cleared!", "R: replay  Q: quit")
	case g.session.Lost():
		g.renderOverlay(dst, "Time's up", "R: retry  Q: quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.title
	if g.session != nil {
		name := g.level.Name
		if name == "" {
			name = g.level.ID
		}
		hud += fmt.Sprintf(" | Level %d/%d: %s | Buses %d/%d",
			g.levelIndex+1, len(g.levels), name,
			g.session.Counter().Full(), g.session.Counter().Total())
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	if g.session != nil && g.session.Timed() {
		clock := formatClock(g.session.TimeLeft())
		color := platformcore.ColorBrightWhite
		if g.session.TimeLeft() < 10*time.Second {
			color = platformcore.ColorBrightRed
		}
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(clock)-1, 0, clock, color)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := dst.Height() - footerHeight
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, y, '─', platformcore.ColorGray)
	}
	dst.DrawTextColored(0, y+1, " Drag a bus by its head or tail to the queue of its color", platformcore.ColorGray)
}

// renderBoard draws the board frame, empty cells, and blocks.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.session.Grid()
	b := g.layout.board
	dst.DrawBox(b.Grow(1), platformcore.ColorGray)

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			cx, cy := g.layout.toScreen(grid.GridToWorld(x, y))
			dst.SetColored(cx, cy, '·', platformcore.ColorGray)
		}
	}
	for _, c := range grid.Blocks() {
		ox, oy := g.layout.cellOrigin(grid.CellToWorld(c))
		dst.DrawRect(platformcore.NewRect(ox, oy, g.layout.cellW, g.layout.cellH), '▒', platformcore.ColorGray)
	}
}

// renderQueues draws each passenger queue as a column growing downward
// from its spawn point, front passenger first.
func (g *Game) renderQueues(dst *platformcore.Screen) {
	bottom := dst.Height() - footerHeight
	for i, q := range g.session.Queues() {
		x, y := g.layout.toScreen(q.Position)

		marker := platformcore.ColorGray
		if c, ok := q.IndicatorColor(); ok {
			marker = busColor(c, false)
		}
		glyph := '◇'
		if g.session.Zones()[i].Picking() {
			glyph = '◆'
		}
		dst.SetColored(x, y, glyph, marker)

		passengers := q.Passengers()
		for j, p := range passengers {
			row := y + 1 + j
			if row >= bottom-1 && j < len(passengers)-1 {
				dst.DrawTextColored(x, row, fmt.Sprintf("+%d", len(passengers)-j), platformcore.ColorGray)
				break
			}
			dst.SetColored(x, row, '●', busColor(p.Color, false))
		}
	}
}

// renderBuses draws every bus still on the board from its interpolated
// segment positions.
func (g *Game) renderBuses(dst *platformcore.Screen) {
	active := g.session.Drag().Active()
	for _, b := range g.session.Grid().Buses() {
		color := busColor(b.Color, b == active)
		segs := b.Segments()
		for i, seg := range segs {
			fill := '█'
			switch {
			case seg.Scale < 0.5:
				fill = '░'
			case seg.Lift > 0.05:
				fill = '▓'
			}
			ox, oy := g.layout.cellOrigin(seg.Position)
			dst.DrawRect(platformcore.NewRect(ox, oy, g.layout.cellW, g.layout.cellH), fill, color)

			cx, cy := g.layout.toScreen(seg.Position)
			if i == 0 {
				dst.SetColored(cx, cy, headArrows[seg.Heading], color)
			}
		}

		if g.layout.cellW >= 4 && len(segs) > 1 && !b.Disabled() {
			seats := b.Seats()
			label := fmt.Sprintf("%d/%d", seats.OccupiedCount(), seats.Len())
			tx, ty := g.layout.toScreen(segs[len(segs)-1].Position)
			dst.DrawTextColored(tx-g.layout.cellW/2, ty, label, color)
		}
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).CenteredIn(w, 5)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// busColor maps a puzzle color to a screen color. The dragged bus is
// drawn in the bright variant.
func busColor(c core.Color, highlight bool) platformcore.Color {
	color := platformcore.ColorWhite
	switch c {
	case core.ColorRed:
		color = platformcore.ColorRed
	case core.ColorYellow:
		color = platformcore.ColorYellow
	case core.ColorGreen:
		color = platformcore.ColorGreen
	case core.ColorPurple:
		color = platformcore.ColorMagenta
	}
	if highlight {
		return color.Bright()
	}
	return color
}

// formatClock renders a duration as m:ss, rounding up partial seconds.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
