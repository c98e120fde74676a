package main

import "testing"

func TestCharSprite(t *testing.T) {
	tests := []struct {
		name string
		ch   byte
		want spriteID
	}{
		{name: "space", ch: ' ', want: spriteEmpty},
		{name: "dot", ch: '.', want: spriteDot},
		{name: "pill", ch: 'o', want: spritePill},
		{name: "wall", ch: '#', want: spriteWall},
		{name: "door", ch: '=', want: spriteDoor},
		{name: "digit zero", ch: '0', want: spriteDigit0},
		{name: "digit five", ch: '5', want: spriteDigit5},
		{name: "digit nine", ch: '9', want: spriteDigit9},
		{name: "unknown", ch: 'x', want: spriteInvalid},
		{name: "punctuation", ch: '!', want: spriteInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := charSprite(tt.ch); got != tt.want {
				t.Errorf("charSprite(%q) = %d, want %d", tt.ch, got, tt.want)
			}
		})
	}
}

func TestSpriteRectBounds(t *testing.T) {
	sheetWidth := float32(int(numSheetSprites) * tileSize)
	for id := spriteID(0); id < numSheetSprites; id++ {
		x0, y0, x1, y1 := spriteRect(id)
		if x0 < 0 || x1 > sheetWidth || y0 != 0 || y1 != tileSize {
			t.Errorf("sprite %d rect (%v, %v, %v, %v) outside sheet", id, x0, y0, x1, y1)
		}
		if x1-x0 != tileSize {
			t.Errorf("sprite %d width = %v, want %d", id, x1-x0, tileSize)
		}
	}
}

func TestSpriteRectInvalidMapsToEmptyCell(t *testing.T) {
	x0, _, _, _ := spriteRect(spriteInvalid)
	ex0, _, _, _ := spriteRect(spriteEmpty)
	if x0 != ex0 {
		t.Errorf("invalid sprite rect starts at %v, want empty cell %v", x0, ex0)
	}
}

func TestSheetImagePixels(t *testing.T) {
	img := sheetImage()
	if w := img.Bounds().Dx(); w != int(numSheetSprites)*tileSize {
		t.Fatalf("sheet width = %d, want %d", w, int(numSheetSprites)*tileSize)
	}
	if h := img.Bounds().Dy(); h != tileSize {
		t.Fatalf("sheet height = %d, want %d", h, tileSize)
	}

	// The empty cell stays fully transparent.
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			if img.RGBAAt(int(spriteEmpty)*tileSize+x, y).A != 0 {
				t.Fatalf("empty cell has opaque pixel at (%d, %d)", x, y)
			}
		}
	}
	// The dot sits in the cell center.
	if got := img.RGBAAt(int(spriteDot)*tileSize+3, 3); got != colorDotCream {
		t.Errorf("dot center pixel = %v, want %v", got, colorDotCream)
	}
	// The right-facing Pac-Man frame has a body on the left and a mouth
	// cutout on the right.
	if got := img.RGBAAt(int(spritePacRight)*tileSize+1, 3); got != colorPacYellow {
		t.Errorf("pacman body pixel = %v, want %v", got, colorPacYellow)
	}
	if got := img.RGBAAt(int(spritePacRight)*tileSize+6, 3); got.A != 0 {
		t.Errorf("pacman mouth pixel = %v, want transparent", got)
	}
	// The closed frame fills the mouth back in.
	if got := img.RGBAAt(int(spritePacClosed)*tileSize+6, 3); got != colorPacYellow {
		t.Errorf("closed pacman mouth pixel = %v, want %v", got, colorPacYellow)
	}
}

func TestSheetDigitsDistinct(t *testing.T) {
	img := sheetImage()
	counts := make(map[int]bool)
	for d := 0; d < 10; d++ {
		lit := 0
		mask := 0
		cell := int(spriteDigit0+spriteID(d)) * tileSize
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				if img.RGBAAt(cell+x, y).A != 0 {
					lit++
					mask = mask*31 + y*tileSize + x
				}
			}
		}
		if lit == 0 {
			t.Errorf("digit %d cell is blank", d)
		}
		if counts[mask] {
			t.Errorf("digit %d glyph duplicates another digit", d)
		}
		counts[mask] = true
	}
}
