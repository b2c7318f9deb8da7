package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
	"golang.org/x/image/font/basicfont"
)

var kindColors = [...]color.RGBA{
	tetris.KindI: {102, 191, 255, 255},
	tetris.KindO: {255, 203, 0, 255},
	tetris.KindT: {200, 122, 255, 255},
	tetris.KindS: {0, 228, 48, 255},
	tetris.KindZ: {255, 109, 194, 255},
	tetris.KindJ: {0, 121, 241, 255},
	tetris.KindL: {255, 161, 0, 255},
}

var (
	background = color.RGBA{18, 18, 24, 255}
	gridLine   = color.RGBA{40, 40, 52, 255}
	border     = color.RGBA{130, 130, 130, 255}
	ghost      = color.RGBA{255, 255, 255, 60}
)

var hudFace = basicfont.Face7x13

// keyCodes translates ebiten keys into the codes understood by
// tetris.DefaultKeyMap.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeySpace:      "Space",
	ebiten.KeyA:          "KeyA",
	ebiten.KeyD:          "KeyD",
	ebiten.KeyS:          "KeyS",
	ebiten.KeyW:          "KeyW",
}

// UI adapts a tetris.Game to ebiten.Game.
type UI struct {
	Game      *tetris.Game
	Scheduler *tetris.Scheduler

	width, height int
	keys          []ebiten.Key
	over          bool
}

func (u *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		u.Game.Start()
		u.over = false
	}

	u.keys = inpututil.AppendJustPressedKeys(u.keys[:0])
	for _, k := range u.keys {
		if code, ok := keyCodes[k]; ok {
			u.Game.HandleInput(code)
		}
	}

	u.Scheduler.Once()

	for _, ev := range u.Game.Drain() {
		switch ev.Kind {
		case tetris.EventScoreChanged:
			log.Printf("Cleared %d rows, score %d", ev.Delta, u.Game.Score())
		case tetris.EventGameOver:
			u.over = true
			log.Printf("Game over with score %d", u.Game.Score())
		}
	}
	return nil
}

func (u *UI) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := u.Game.Snapshot()

	bw := float32(snap.Columns * CellSize)
	bh := float32(snap.Rows * CellSize)
	vector.StrokeRect(screen, Margin-2, Margin-2, bw+4, bh+4, 2, border, false)

	for r, row := range snap.Cells {
		for c, cell := range row {
			x, y := cellOrigin(r, c)
			if cell.State == tetris.Filled {
				drawCell(screen, x, y, kindColors[cell.Kind])
				continue
			}
			vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, gridLine, false)
		}
	}

	if snap.HasActive {
		active := snap.Active.Position()
		for _, cell := range snap.Ghost {
			if active.Contains(cell) {
				continue
			}
			x, y := cellOrigin(cell.Row, cell.Col)
			vector.DrawFilledRect(screen, x, y, CellSize, CellSize, ghost, false)
		}
	}

	tx := Margin + snap.Columns*CellSize + 20
	hud := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LINES", snap.Lines},
		{"LEVEL", snap.Level},
	}
	for i, h := range hud {
		y := Margin + 12 + i*50
		text.Draw(screen, h.label, hudFace, tx, y, color.White)
		text.Draw(screen, fmt.Sprint(h.value), hudFace, tx, y+18, color.White)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), tx, Margin+160)

	if u.over {
		cx := Margin + snap.Columns*CellSize/2
		cy := Margin + snap.Rows*CellSize/2
		text.Draw(screen, "GAME OVER", hudFace, cx-32, cy-6, color.RGBA{230, 41, 55, 255})
		text.Draw(screen, "Press R to restart", hudFace, cx-63, cy+14, color.White)
	}
}

func (u *UI) Layout(outsideWidth, outsideHeight int) (int, int) {
	return u.width, u.height
}

func cellOrigin(row, col int) (float32, float32) {
	return float32(Margin + col*CellSize), float32(Margin + row*CellSize)
}

func drawCell(screen *ebiten.Image, x, y float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, CellSize, CellSize, clr, false)
	vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, color.Black, false)
}
