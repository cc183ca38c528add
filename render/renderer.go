package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
)

// Sprite glyphs and styles
var (
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	tailStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pauseStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	deathStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws the world's sprite enumeration onto a tcell screen. It
// is a pure consumer of the engine's query interface; the simulation
// never depends on it.
type Renderer struct {
	screen tcell.Screen

	// Top-left corner of the play field in screen coordinates
	originX, originY int
}

// New creates a renderer for the given screen
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.layout()
	return r
}

// layout centers the fixed play field in the current screen size
func (r *Renderer) layout() {
	w, h := r.screen.Size()
	r.originX = (w - parameter.GridWidth) / 2
	r.originY = (h - parameter.GridHeight) / 2
	if r.originX < 1 {
		r.originX = 1
	}
	if r.originY < 1 {
		r.originY = 1
	}
}

// HandleResize recomputes the layout after a terminal resize event
func (r *Renderer) HandleResize() {
	r.screen.Sync()
	r.layout()
}

// Draw renders one frame: border, entities, status line, and the pause
// or death overlay.
func (r *Renderer) Draw(loop *engine.Loop, muted bool) {
	r.screen.Clear()
	r.drawBorder()

	world := loop.World()
	for _, e := range world.Entities() {
		p, ok := e.(engine.Positional)
		if !ok {
			continue
		}
		for sprite := range p.Sprites() {
			r.drawSprite(sprite)
		}
	}

	r.drawStatus(loop, muted)

	if snake, ok := world.FirstEntityOfType(engine.KindSnake).(*engine.Snake); ok && snake.IsDead() {
		r.drawCentered(parameter.GridHeight/2, " GAME OVER - press r to restart ", deathStyle)
	} else if loop.IsPaused() {
		r.drawCentered(parameter.GridHeight/2, " PAUSED ", pauseStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawSprite(s engine.Sprite) {
	var glyph rune
	var style tcell.Style
	switch s.Kind {
	case engine.SpriteSnakeHead:
		glyph, style = '█', headStyle
	case engine.SpriteSnakeTail:
		glyph, style = '▓', tailStyle
	case engine.SpriteFood:
		glyph, style = '●', foodStyle
	default:
		return
	}
	r.screen.SetContent(r.originX+s.Cell.X, r.originY+s.Cell.Y, glyph, nil, style)
}

func (r *Renderer) drawBorder() {
	left := r.originX - 1
	top := r.originY - 1
	right := r.originX + parameter.GridWidth
	bottom := r.originY + parameter.GridHeight

	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, borderStyle)
	r.screen.SetContent(right, top, '┐', nil, borderStyle)
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawStatus(loop *engine.Loop, muted bool) {
	score := 0
	if snake, ok := loop.World().FirstEntityOfType(engine.KindSnake).(*engine.Snake); ok {
		score = snake.Score()
	}
	status := fmt.Sprintf(" score %d  fps %.0f ", score, loop.FPS())
	if muted {
		status += " [muted] "
	}
	r.drawText(r.originX, r.originY+parameter.GridHeight+1, status, statusStyle)
}

func (r *Renderer) drawCentered(row int, text string, style tcell.Style) {
	x := r.originX + (parameter.GridWidth-len([]rune(text)))/2
	r.drawText(x, r.originY+row, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
