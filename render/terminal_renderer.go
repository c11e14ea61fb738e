package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// cellState aggregates the agents falling in one terminal cell
type cellState struct {
	count  uint16
	status component.InfectionStatus
}

// TerminalRenderer draws frames onto a tcell screen
// Never touches simulation state; works from Frame copies only
type TerminalRenderer struct {
	screen tcell.Screen
	mode   ColorMode
	cells  []cellState
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, mode ColorMode) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		mode:   mode,
	}
}

// CellFor maps a world position to a field cell; world y grows upward, rows grow downward
// ok is false when p falls outside the visible field
func CellFor(a vmath.Arena, p vmath.Vec2, fieldW, fieldH int) (x, y int, ok bool) {
	if fieldW <= 0 || fieldH <= 0 || a.Side <= 0 {
		return 0, 0, false
	}
	margin := a.Side * parameter.ViewMargin
	viewSide := a.Side + 2*margin
	lo, hi := a.Min(), a.Max()

	fx := math.Floor((p.X - (lo.X - margin)) / viewSide * float64(fieldW))
	fy := math.Floor(((hi.Y + margin) - p.Y) / viewSide * float64(fieldH))
	if fx < 0 || fy < 0 || fx >= float64(fieldW) || fy >= float64(fieldH) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Render draws f and flushes the screen
func (r *TerminalRenderer) Render(f Frame) {
	width, height := r.screen.Size()
	fieldW, fieldH := width, height-parameter.StatusBarRows

	bg := tcell.StyleDefault.Background(r.mode.Color(RgbBackground))
	r.screen.Fill(' ', bg)

	if fieldW > 0 && fieldH > 0 {
		r.drawArenaEdge(f, fieldW, fieldH, bg)
		r.drawAgents(f, fieldW, fieldH, bg)
	}
	if height > 0 {
		r.drawStatusBar(f, width, height-1)
	}

	r.screen.Show()
}

// drawArenaEdge outlines the containment square
func (r *TerminalRenderer) drawArenaEdge(f Frame, fieldW, fieldH int, bg tcell.Style) {
	lo, hi := f.Arena.Min(), f.Arena.Max()
	x0, y1, ok0 := CellFor(f.Arena, lo, fieldW, fieldH)
	x1, y0, ok1 := CellFor(f.Arena, hi, fieldW, fieldH)
	if !ok0 || !ok1 {
		return
	}

	style := bg.Foreground(r.mode.Color(RgbArenaEdge))
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

// drawAgents bins agents per cell; a crowded cell shows its most severe status
func (r *TerminalRenderer) drawAgents(f Frame, fieldW, fieldH int, bg tcell.Style) {
	size := fieldW * fieldH
	if cap(r.cells) < size {
		r.cells = make([]cellState, size)
	}
	r.cells = r.cells[:size]
	clear(r.cells)

	for _, a := range f.Agents {
		x, y, ok := CellFor(f.Arena, a.Position, fieldW, fieldH)
		if !ok {
			continue
		}
		c := &r.cells[y*fieldW+x]
		if c.count == 0 || severity(a.Status) > severity(c.status) {
			c.status = a.Status
		}
		if c.count < math.MaxUint16 {
			c.count++
		}
	}

	for i, c := range r.cells {
		if c.count == 0 {
			continue
		}
		glyph := parameter.AgentGlyph
		if c.count > 1 {
			glyph = parameter.CrowdGlyph
		}
		marker := component.MarkerFor(c.status)
		if f.Paused {
			marker = marker.Scale(parameter.PausedDimScale)
		}
		r.screen.SetContent(i%fieldW, i/fieldW, glyph, nil, bg.Foreground(r.mode.Color(marker)))
	}
}

// severity orders statuses for crowded cells: infected over recovered over susceptible
func severity(s component.InfectionStatus) int {
	switch s {
	case component.StatusInfected:
		return 2
	case component.StatusRecovered:
		return 1
	default:
		return 0
	}
}

// drawStatusBar renders the mode tag, census counts, tick and run id on row y
func (r *TerminalRenderer) drawStatusBar(f Frame, width, y int) {
	barStyle := tcell.StyleDefault.
		Foreground(r.mode.Color(RgbStatusText)).
		Background(r.mode.Color(RgbStatusBg))
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	modeText, modeBg := " RUN ", RgbModeRunBg
	if f.Paused {
		modeText, modeBg = " PAUSED ", RgbModePausedBg
	}
	x := r.drawText(0, y, width, modeText, barStyle.Background(r.mode.Color(modeBg)))

	runID := f.RunID
	if len(runID) > parameter.RunIDDisplayLen {
		runID = runID[:parameter.RunIDDisplayLen]
	}
	text := fmt.Sprintf(" S %d  I %d  R %d  tick %d  run %s", f.Susceptible, f.Infected, f.Recovered, f.Tick, runID)
	r.drawText(x, y, width, text, barStyle)
}

// drawText writes s from x, clipped to width; returns the next free column
func (r *TerminalRenderer) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
