// Command redline-paint is an interactive markup host on ebiten.
//
// Mouse input is mapped through the layout manager to page coordinates
// and fed to the editor; the rasterizer's page images are blitted at
// their layout rectangles every frame.
//
// Keys: v select, h pan, p pen, r rectangle, c circle, l line, a arrow,
// o polyline, u cloud, t text, 1/2/3 layout mode, +/- zoom,
// Ctrl-Z / Ctrl-Y undo/redo, Delete removes the selection, Esc cancels.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/markuplab/redline"
	"github.com/markuplab/redline/editor"
	"github.com/markuplab/redline/layout"
	"github.com/markuplab/redline/render"
)

const doubleClickWindow = 350 * time.Millisecond

type game struct {
	mgr  *layout.Manager
	ed   *editor.Editor
	rast *render.Rasterizer

	width, height int
	pressed       bool
	gesturePage   int
	lastClick     time.Time
	lastClickPos  redline.Point
}

func newGame(pageCount int) *game {
	pages := make([]layout.PageSize, pageCount)
	for i := range pages {
		pages[i] = layout.PageSize{Width: 612, Height: 792}
	}
	mgr := layout.NewManager(pages, layout.WithMode(layout.ModeVertical))

	g := &game{mgr: mgr, width: 1280, height: 900, gesturePage: -1}
	rast, err := render.NewRasterizer(func() *redline.Collection { return g.ed.Collection() }, mgr)
	if err != nil {
		log.Fatalf("rasterizer: %v", err)
	}
	g.rast = rast
	g.ed = editor.New(
		editor.WithAdapter(rast),
		editor.WithAuthor("local"),
		editor.WithListener(&hostListener{g: g}),
	)
	mgr.SetViewport(float64(g.width), float64(g.height))
	return g
}

// hostListener owns scroll state for the pan tool.
type hostListener struct {
	editor.NopListener
	g *game
}

func (l *hostListener) Panned(dx, dy float64) {
	l.g.mgr.ScrollBy(-dx, -dy)
}

func (l *hostListener) SelectionChanged(sel *redline.Selection) {
	l.g.rast.SetSelection(sel.IDs(), l.g.ed.ActiveVertex())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.mgr.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *game) Update() error {
	g.handleKeys()
	g.handleWheel()
	g.handleMouse()
	g.rast.Sweep()
	return nil
}

func (g *game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	// Text editing swallows the keyboard first.
	if _, _, _, editing := g.ed.EditingText(); editing {
		for _, r := range ebiten.AppendInputChars(nil) {
			g.ed.InsertText(string(r))
		}
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			g.ed.InsertNewline()
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			g.ed.Backspace()
		case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
			g.ed.DeleteForward()
		case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
			g.ed.MoveCursor(-1)
		case inpututil.IsKeyJustPressed(ebiten.KeyRight):
			g.ed.MoveCursor(1)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.ed.CancelTextEdit()
		}
		return
	}

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.ed.Undo()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY):
		g.ed.Redo()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.ed.DuplicateSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete),
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.ed.DeleteSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.ed.Escape()
	}

	tools := map[ebiten.Key]editor.Tool{
		ebiten.KeyV: editor.ToolSelect,
		ebiten.KeyH: editor.ToolPan,
		ebiten.KeyP: editor.ToolPen,
		ebiten.KeyR: editor.ToolRectangle,
		ebiten.KeyC: editor.ToolCircle,
		ebiten.KeyL: editor.ToolLine,
		ebiten.KeyA: editor.ToolArrow,
		ebiten.KeyO: editor.ToolPolyline,
		ebiten.KeyU: editor.ToolCloud,
		ebiten.KeyT: editor.ToolText,
	}
	for key, tool := range tools {
		if inpututil.IsKeyJustPressed(key) {
			g.ed.SetTool(tool)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.mgr.SetMode(layout.ModeSingle)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.mgr.SetMode(layout.ModeVertical)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.mgr.SetMode(layout.ModeHorizontal)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.mgr.SetScale(g.mgr.Scale() * 1.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.mgr.SetScale(g.mgr.Scale() / 1.25)
	}
}

func (g *game) handleWheel() {
	wx, wy := ebiten.Wheel()
	if wx != 0 || wy != 0 {
		g.mgr.Wheel(-wx*40, -wy*40)
	}
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	screen := redline.Point{X: float64(mx), Y: float64(my)}
	ev := g.eventAt(screen)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		now := time.Now()
		isDouble := now.Sub(g.lastClick) < doubleClickWindow &&
			math.Hypot(screen.X-g.lastClickPos.X, screen.Y-g.lastClickPos.Y) < 6
		g.lastClick = now
		g.lastClickPos = screen
		g.pressed = true
		g.gesturePage = ev.Page
		if isDouble {
			g.ed.DoubleClick(ev)
			return
		}
		g.ed.PointerDown(ev)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pressed = false
		g.gesturePage = -1
		g.ed.PointerUp(ev)
	case g.pressed:
		g.ed.PointerMove(ev)
	}
}

// eventAt resolves a viewport pixel position to a page-local event.
func (g *game) eventAt(screen redline.Point) editor.PointerEvent {
	ev := editor.PointerEvent{
		Page:   -1,
		Screen: screen,
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShift),
	}
	if page, ok := g.mgr.PageAt(screen); ok {
		ev.Page = page
		ev.Pos = g.mgr.ToPage(page, screen)
		ev.View = g.mgr.View(page)
	} else if g.pressed && g.gesturePage >= 0 {
		// Mid-gesture the pointer may cross the inter-page gap or side
		// margin; keep mapping into the frame of the page the gesture
		// started on so cumulative deltas stay consistent.
		ev.Page = g.gesturePage
		ev.Pos = g.mgr.ToPage(g.gesturePage, screen)
		ev.View = g.mgr.View(g.gesturePage)
	}
	return ev
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(redline.Hex("#52525b").Color())

	lo, hi, ok := g.mgr.Window()
	if ok {
		for i := lo; i <= hi; i++ {
			img := g.rast.Page(i)
			if img == nil {
				continue
			}
			eimg := ebiten.NewImageFromImage(img)
			r := g.mgr.ScreenRect(i)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(r.MinX, r.MinY)
			screen.DrawImage(eimg, op)
		}
	}

	status := fmt.Sprintf("tool=%s state=%s page=%d zoom=%.0f%%",
		toolName(g.ed.Tool()), g.ed.State(), g.mgr.CurrentPage()+1, g.mgr.Scale()*100)
	ebitenutil.DebugPrint(screen, status)
}

func toolName(t editor.Tool) string {
	if t == editor.ToolSelect {
		return "select"
	}
	return string(t)
}

func main() {
	pages := flag.Int("pages", 5, "number of pages")
	flag.Parse()

	ebiten.SetWindowSize(1280, 900)
	ebiten.SetWindowTitle("redline")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newGame(*pages)); err != nil {
		log.Fatal(err)
	}
}
