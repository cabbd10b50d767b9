package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// HUDHeight is the number of screen rows above the board.
const HUDHeight = 1

// Cell limits per board tile.
const (
	MaxCellsPerTileX = 4
	MaxCellsPerTileY = 2
)

// Visual characters for rendering
const (
	SidewalkChar = '░'
	RoadChar     = '·'
	WaterChar    = '~'
	BridgeChar   = '▓'
	SlotChar     = ' '
	HomeChar     = '◆'
	CarChar      = '█'
	LogChar      = '='
	TurtleChar   = 'o'
	SquashedChar = '✖'
)

// frogChars face up, right, down and left.
var frogChars = [4]rune{'▲', '▶', '▼', '◀'}

var carColors = [CarModels]core.Color{core.ColorRed, core.ColorYellow, core.ColorMagenta}

// Viewport maps board pixels onto screen cells.
type Viewport struct {
	OriginX, OriginY int // Screen cell of the board's top-left corner
	CellsX, CellsY   int // Cells per tile
	Cols, Rows       int // Board size in tiles
	Tile             float64
}

// NewViewport fits board b into a screen of w x h cells, below the HUD.
// It reports false when the screen is too small to give every tile a cell.
func NewViewport(w, h int, b Board) (Viewport, bool) {
	cols := int(math.Round(b.Width / b.Tile))
	rows := int(math.Round(b.Height / b.Tile))
	if cols <= 0 || rows <= 0 || w < cols || h-HUDHeight < rows {
		return Viewport{}, false
	}

	v := Viewport{
		CellsX: core.Clamp(w/cols, 1, MaxCellsPerTileX),
		CellsY: core.Clamp((h-HUDHeight)/rows, 1, MaxCellsPerTileY),
		Cols:   cols,
		Rows:   rows,
		Tile:   b.Tile,
	}
	v.OriginX = (w - cols*v.CellsX) / 2
	v.OriginY = HUDHeight
	return v, true
}

// Bounds returns the board's area on screen.
func (v Viewport) Bounds() core.Rect {
	return core.NewRect(v.OriginX, v.OriginY, v.Cols*v.CellsX, v.Rows*v.CellsY)
}

// Cells returns the screen cells covered by box, at least one cell in each
// direction. The result is not clipped to the board.
func (v Viewport) Cells(box core.AABB) core.Rect {
	sx := float64(v.CellsX) / v.Tile
	sy := float64(v.CellsY) / v.Tile

	x0 := int(math.Round(box.Pos.X * sx))
	x1 := int(math.Round(box.Right() * sx))
	y0 := int(math.Round(box.Pos.Y * sy))
	y1 := int(math.Round(box.Bottom() * sy))

	return core.NewRect(v.OriginX+x0, v.OriginY+y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		return
	}

	view, ok := NewViewport(dst.Width(), dst.Height(), g.world.Board())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	clip := view.Bounds()
	for _, s := range g.world.Sprites() {
		drawSprite(dst, view, clip, s)
	}

	g.drawHUD(dst, clip)

	switch {
	case g.world.Status() == StatusGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Home: %d/%d  |  Press R to restart", g.world.Finished(), TargetCount))
	case g.world.Status() == StatusWon:
		drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Lives left: %d  |  Press R to play again", g.world.Lives()))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen, board core.Rect) {
	lives := fmt.Sprintf("Lives: %d", g.world.Lives())
	home := fmt.Sprintf("Home: %d/%d", g.world.Finished(), TargetCount)

	dst.DrawTextColored(board.X, 0, lives, core.ColorBrightRed)
	dst.DrawTextColored(board.X+len(lives)+2, 0, home, core.ColorBrightGreen)
}

func drawSprite(dst *core.Screen, v Viewport, clip core.Rect, s Sprite) {
	r := intersect(v.Cells(s.Box), clip)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	switch s.Kind {
	case SpriteSidewalk:
		c := core.ColorGray
		if s.Variant == 1 {
			c = core.ColorWhite
		}
		dst.DrawRect(r, SidewalkChar, c)
	case SpriteRoad:
		dst.DrawRect(r, RoadChar, core.ColorGray)
	case SpriteWater:
		dst.DrawRect(r, WaterChar, core.ColorBlue)
	case SpriteBridge:
		dst.DrawRect(r, BridgeChar, core.ColorGreen)
	case SpriteTarget:
		if s.Variant == 1 {
			dst.DrawRect(r, HomeChar, core.ColorBrightGreen)
			return
		}
		dst.DrawRect(r, SlotChar, core.ColorDefault)
		if r.W >= 3 {
			dst.SetColored(r.X, r.Y, '[', core.ColorBrightWhite)
			dst.SetColored(r.Right()-1, r.Y, ']', core.ColorBrightWhite)
		}
	case SpriteCar:
		dst.DrawRect(r, CarChar, carColors[s.Variant%CarModels])
	case SpriteLog:
		dst.DrawRect(r, LogChar, core.ColorOrange)
	case SpriteTurtle:
		dst.DrawRect(r, TurtleChar, core.ColorGreen)
	case SpriteFrog:
		dst.DrawRect(r, FrogChar(s.Angle), core.ColorBrightGreen)
	case SpriteSquashedFrog:
		dst.DrawRect(r, SquashedChar, core.ColorRed)
	}
}

// FrogChar returns the arrow closest to the frog's facing angle.
func FrogChar(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return frogChars[int(math.Round(a/90))%4]
}

func intersect(a, b core.Rect) core.Rect {
	x0 := core.Max(a.X, b.X)
	y0 := core.Max(a.Y, b.Y)
	x1 := core.Min(a.Right(), b.Right())
	y1 := core.Min(a.Bottom(), b.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
