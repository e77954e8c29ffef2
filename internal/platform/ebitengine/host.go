package ebitengine

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sdlblank/internal/lifecycle"
	"sdlblank/internal/platform"
)

// Run hosts app inside ebiten.RunGame. Every tick forwards pending events and
// then calls Iterate; Draw shows whatever the app last presented. Cancelling
// ctx delivers one quit event.
func Run[S any](ctx context.Context, b *Backend, app lifecycle.App[S], args []string) (lifecycle.Result, error) {
	d := lifecycle.NewDriver(app)
	defer d.Quit()

	if r, _ := d.Init(args); r != lifecycle.Continue {
		return r, nil
	}

	g := newGame(ctx, b, d)
	if err := ebiten.RunGame(g); err != nil {
		d.Abort(lifecycle.Failure)
		return lifecycle.Failure, fmt.Errorf("run game loop: %w", err)
	}
	return d.Result(), nil
}

type game[S any] struct {
	backend *Backend
	stepper *lifecycle.Stepper[S]

	canvas  *ebiten.Image
	screenW int
	screenH int
}

func newGame[S any](ctx context.Context, b *Backend, d *lifecycle.Driver[S]) *game[S] {
	return &game[S]{backend: b, stepper: lifecycle.NewStepper(ctx, d)}
}

func (g *game[S]) Update() error {
	g.collectInput()
	return g.tick(ebiten.IsWindowBeingClosed())
}

// tick routes one frame: a close request becomes a quit event, queued events
// go to the app, then Iterate runs.
func (g *game[S]) tick(closing bool) error {
	if closing {
		g.backend.push(platform.Event{Type: platform.EventQuit})
	}
	if g.stepper.Step(g.backend.PollEvents()) {
		return ebiten.Termination
	}
	return nil
}

func (g *game[S]) collectInput() {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		g.backend.push(platform.Event{Type: platform.EventKeyDown, Key: k.String()})
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		g.backend.push(platform.Event{Type: platform.EventKeyUp, Key: k.String()})
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.backend.push(platform.Event{Type: platform.EventTextInput, Rune: r})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.backend.push(platform.Event{Type: platform.EventMouseDown, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.backend.push(platform.Event{Type: platform.EventMouseUp, X: x, Y: y})
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		g.backend.push(platform.Event{Type: platform.EventMouseWheel, DeltaX: int(wx), DeltaY: int(wy)})
	}
}

func (g *game[S]) Draw(screen *ebiten.Image) {
	fb := g.backend.presented
	if fb == nil {
		return
	}
	if g.canvas == nil || g.canvas.Bounds().Dx() != fb.W || g.canvas.Bounds().Dy() != fb.H {
		g.canvas = ebiten.NewImage(fb.W, fb.H)
	}
	g.canvas.WritePixels(fb.Pixels)

	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(fb.W), float64(sh)/float64(fb.H))
	screen.DrawImage(g.canvas, op)
}

func (g *game[S]) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		if g.screenW != 0 || g.screenH != 0 {
			g.backend.push(platform.Event{Type: platform.EventResize, Width: outsideWidth, Height: outsideHeight})
		}
		g.screenW, g.screenH = outsideWidth, outsideHeight
	}
	if w := g.backend.window; w != nil {
		return w.w, w.h
	}
	return outsideWidth, outsideHeight
}
