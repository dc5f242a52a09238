package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
	WallChar   = '─'
)

// Viewport maps the centred, y-up logical playfield onto screen cells.
// Row 0 is reserved for the HUD.
type Viewport struct {
	settings *core.Settings
	cols     int
	rows     int // rows available to the playfield
}

// NewViewport creates a viewport for a screen of the given size.
func NewViewport(s *core.Settings, screenW, screenH int) Viewport {
	return Viewport{settings: s, cols: screenW, rows: max(0, screenH-1)}
}

// Col converts a logical x-coordinate to a screen column.
// The result may fall outside the screen.
func (v Viewport) Col(x float64) int {
	return int(math.Floor((x + v.settings.HalfWidth()) / v.settings.Width * float64(v.cols)))
}

// Row converts a logical y-coordinate to a screen row.
// The result may fall outside the playfield.
func (v Viewport) Row(y float64) int {
	return 1 + int(math.Floor((v.settings.HalfHeight()-y)/v.settings.Height*float64(v.rows)))
}

// DrawSnapshot draws walls, net, paddles, ball and a HUD line.
func DrawSnapshot(dst *core.Screen, snap core.Snapshot, s *core.Settings, title string) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 3 {
		return
	}

	vp := NewViewport(s, dst.Width(), dst.Height())
	top, bottom := 1, dst.Height()-1

	// Walls
	dst.DrawHLine(0, top, dst.Width(), WallChar, core.ColorGray)
	dst.DrawHLine(0, bottom, dst.Width(), WallChar, core.ColorGray)

	// Net
	centerX := vp.Col(0)
	for y := top + 1; y < bottom; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	// Paddles
	for _, p := range snap.Paddles {
		left := vp.Col(p.Pos.X - p.W*0.5)
		right := max(left, vp.Col(p.Pos.X+p.W*0.5)-1)
		upper := core.Clamp(vp.Row(p.Pos.Y+p.H*0.5), top, bottom)
		lower := core.Clamp(vp.Row(p.Pos.Y-p.H*0.5), top, bottom)
		for x := left; x <= right; x++ {
			dst.DrawVLine(x, upper, lower-upper+1, PaddleChar, core.ColorBrightWhite)
		}
	}

	// Ball, only while it is inside the walled field
	field := core.NewRect(0, top, dst.Width(), bottom-top+1)
	bx, by := vp.Col(snap.Ball.Pos.X), vp.Row(snap.Ball.Pos.Y)
	if field.Contains(bx, by) {
		dst.SetColored(bx, by, BallChar, core.ColorYellow)
	}

	// HUD
	hud := fmt.Sprintf(" %s  frame %d  walls %d  hits %d",
		title, snap.Stats.Frames, snap.Stats.WallBounces, snap.Stats.PaddleHits)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)
}
