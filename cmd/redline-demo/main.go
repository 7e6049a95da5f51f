// Command redline-demo exercises the markup engine headlessly: it lays
// out a three-page document, drives the editor with synthetic gestures,
// round-trips undo/redo, and writes each mounted page's raster to PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/markuplab/redline"
	"github.com/markuplab/redline/editor"
	"github.com/markuplab/redline/layout"
	"github.com/markuplab/redline/render"
)

func main() {
	var (
		outDir  = flag.String("out", ".", "output directory for page PNGs")
		scale   = flag.Float64("scale", 1.0, "zoom factor")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		redline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// US-Letter portrait pages at 72 dpi.
	pages := []layout.PageSize{
		{Width: 612, Height: 792},
		{Width: 612, Height: 792},
		{Width: 612, Height: 792},
	}
	mgr := layout.NewManager(pages,
		layout.WithMode(layout.ModeVertical),
		layout.WithScale(*scale),
	)
	mgr.SetViewport(800, 1000)

	// The rasterizer polls the editor's collection; the closure breaks
	// the construction cycle between the two.
	var ed *editor.Editor
	rast, err := render.NewRasterizer(func() *redline.Collection { return ed.Collection() }, mgr)
	if err != nil {
		log.Fatalf("rasterizer: %v", err)
	}
	ed = editor.New(
		editor.WithAuthor("demo"),
		editor.WithDoc("demo-doc"),
		editor.WithAdapter(rast),
	)

	drive(ed, mgr)

	// One undo/redo cycle to prove snapshots restore cleanly.
	before := len(ed.Collection().All())
	ed.Undo()
	after := len(ed.Collection().All())
	ed.Redo()
	restored := len(ed.Collection().All())
	fmt.Printf("markups: %d, after undo: %d, after redo: %d\n", before, after, restored)

	lo, hi, ok := mgr.Window()
	if !ok {
		log.Fatal("no mounted pages")
	}
	for i := lo; i <= hi; i++ {
		img := rast.Page(i)
		if img == nil {
			continue
		}
		name := filepath.Join(*outDir, fmt.Sprintf("page-%d.png", i))
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("create %s: %v", name, err)
		}
		if err := png.Encode(f, img); err != nil {
			log.Fatalf("encode %s: %v", name, err)
		}
		f.Close()
		fmt.Println("wrote", name)
	}
}

// drive replays a canned gesture script against the editor.
func drive(ed *editor.Editor, mgr *layout.Manager) {
	// Rectangle drag on page 0.
	ed.SetTool(editor.ToolRectangle)
	drag(ed, mgr, 0, pt(0.1, 0.1), pt(0.35, 0.25))

	// Freehand squiggle.
	ed.SetTool(editor.ToolPen)
	stroke(ed, mgr, 0, []redline.Point{
		pt(0.5, 0.5), pt(0.53, 0.48), pt(0.57, 0.53), pt(0.62, 0.49), pt(0.66, 0.55),
	})

	// Open polyline via clicks on page 1.
	ed.SetTool(editor.ToolPolyline)
	click(ed, mgr, 1, pt(0.2, 0.2))
	click(ed, mgr, 1, pt(0.5, 0.3))
	click(ed, mgr, 1, pt(0.4, 0.6))
	ed.DoubleClick(eventAt(mgr, 1, pt(0.4, 0.6)))

	// Arc and cloud on page 1.
	ed.SetTool(editor.ToolArc)
	drag(ed, mgr, 1, pt(0.6, 0.7), pt(0.85, 0.75))
	ed.SetTool(editor.ToolCloud)
	drag(ed, mgr, 1, pt(0.1, 0.75), pt(0.4, 0.9))

	// Text box on page 0; type into the inline edit session.
	ed.SetTool(editor.ToolText)
	drag(ed, mgr, 0, pt(0.1, 0.7), pt(0.5, 0.8))
	ed.InsertText("Reviewed: relocate duct per sheet M-201")
	ed.EndTextEdit()
}

func pt(x, y float64) redline.Point { return redline.Point{X: x, Y: y} }

func eventAt(mgr *layout.Manager, page int, p redline.Point) editor.PointerEvent {
	return editor.PointerEvent{Page: page, Pos: p, View: mgr.View(page)}
}

func click(ed *editor.Editor, mgr *layout.Manager, page int, p redline.Point) {
	ev := eventAt(mgr, page, p)
	ed.PointerDown(ev)
	ed.PointerUp(ev)
}

func drag(ed *editor.Editor, mgr *layout.Manager, page int, from, to redline.Point) {
	ed.PointerDown(eventAt(mgr, page, from))
	mid := from.Lerp(to, 0.5)
	ed.PointerMove(eventAt(mgr, page, mid))
	ed.PointerMove(eventAt(mgr, page, to))
	ed.PointerUp(eventAt(mgr, page, to))
}

func stroke(ed *editor.Editor, mgr *layout.Manager, page int, pts []redline.Point) {
	ed.PointerDown(eventAt(mgr, page, pts[0]))
	for _, p := range pts[1:] {
		ed.PointerMove(eventAt(mgr, page, p))
	}
	ed.PointerUp(eventAt(mgr, page, pts[len(pts)-1]))
}
