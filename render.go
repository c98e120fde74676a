package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the canvas and the state overlays for the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Render(screen)

	switch g.state {
	case stateReady:
		g.drawCenteredText(screen, "READY!", 17)
	case stateLevelClear:
		g.drawCenteredText(screen, "LEVEL CLEAR", 17)
	case stateGameOver:
		g.drawCenteredText(screen, "GAME OVER", 17)
		g.drawCenteredText(screen, "PRESS ENTER", 19)
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nstate %d level %d dots %d\nverts %d",
			fps, tps, g.state, g.level, g.maze.dotsLeft, g.canvas.numVertices)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// drawCenteredText prints a status line horizontally centered on a maze row.
// Debug text glyphs are 6 pixels wide.
func (g *Game) drawCenteredText(screen *ebiten.Image, text string, mazeRow int) {
	x := (g.canvas.canvasWidth - len(text)*6) / 2
	y := (mazeOffsetY + mazeRow) * tileSize
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// Layout reports the logical screen size, which is the canvas pixel size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.canvasWidth, g.canvas.canvasHeight
}
