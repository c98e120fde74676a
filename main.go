package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	flag.Parse()

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profiling failed: %v", err)
		}
		defer stop()
	}

	g, err := newGame()
	if err != nil {
		log.Fatalf("Game initialization failed: %v", err)
	}
	if !*muteFlag {
		ctx := audio.NewContext(audioSampleRate)
		sfx, err := newSoundBank(ctx)
		if err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			g.sfx = sfx
		}
	}

	scale := *windowScaleFlag
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(g.canvas.canvasWidth*scale, g.canvas.canvasHeight*scale)
	ebiten.SetWindowTitle("Paclone")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}
