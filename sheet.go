package main

import (
	"image"
	"image/color"
)

// spriteID identifies one sprite on the sheet texture. The zero-based ids
// index cells of a single-row sprite strip; spriteInvalid marks unused tiles
// and disabled dynamic sprite slots.
type spriteID int

const spriteInvalid spriteID = -1

const (
	spriteEmpty spriteID = iota
	spriteDot
	spritePill
	spriteWall
	spriteDoor
	spriteDigit0
	spriteDigit1
	spriteDigit2
	spriteDigit3
	spriteDigit4
	spriteDigit5
	spriteDigit6
	spriteDigit7
	spriteDigit8
	spriteDigit9
	spritePacRight
	spritePacLeft
	spritePacUp
	spritePacDown
	spritePacClosed
	spriteBlinky
	spritePinky
	spriteInky
	spriteClyde
	spriteFright
	spriteFrightFlash
	spriteEyes
	spriteFruit
	numSheetSprites
)

// Classic arcade palette used when rasterizing the sheet.
var (
	colorMazeBlue  = color.RGBA{33, 33, 222, 255}
	colorDotCream  = color.RGBA{255, 183, 174, 255}
	colorPacYellow = color.RGBA{255, 255, 0, 255}
	colorBlinkyRed = color.RGBA{255, 0, 0, 255}
	colorPinkyPink = color.RGBA{255, 183, 255, 255}
	colorInkyCyan  = color.RGBA{0, 255, 255, 255}
	colorClydeOrng = color.RGBA{255, 183, 81, 255}
	colorFrightBlu = color.RGBA{33, 33, 255, 255}
	colorDoorPink  = color.RGBA{255, 183, 222, 255}
	colorWhite     = color.RGBA{222, 222, 255, 255}
	colorStemGreen = color.RGBA{0, 160, 0, 255}
)

// digitFont holds 3x5 bitmaps for the digits 0-9, one row per byte, the three
// low bits of each byte forming a scanline (most significant bit on the left).
var digitFont = [10][5]byte{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b010, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// charSprite translates one character of a char map into a sprite id. Unknown
// characters translate to spriteInvalid so they contribute no geometry.
func charSprite(ch byte) spriteID {
	switch {
	case ch == ' ':
		return spriteEmpty
	case ch == '.':
		return spriteDot
	case ch == 'o':
		return spritePill
	case ch == '#':
		return spriteWall
	case ch == '=':
		return spriteDoor
	case ch >= '0' && ch <= '9':
		return spriteDigit0 + spriteID(ch-'0')
	}
	return spriteInvalid
}

// spriteRect returns the source rectangle of a sprite on the sheet texture in
// pixels. The invalid sprite maps to the empty cell.
func spriteRect(id spriteID) (x0, y0, x1, y1 float32) {
	if id < 0 || id >= numSheetSprites {
		id = spriteEmpty
	}
	x := float32(int(id) * tileSize)
	return x, 0, x + tileSize, tileSize
}

// sheetImage rasterizes the full sprite strip. The original sample ships a
// pre-baked sheet; this build generates the same inventory procedurally so the
// repository needs no binary assets.
func sheetImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(numSheetSprites)*tileSize, tileSize))
	paintDot(img, spriteDot)
	paintPill(img, spritePill)
	paintWall(img, spriteWall)
	paintDoor(img, spriteDoor)
	for d := 0; d < 10; d++ {
		paintDigit(img, spriteDigit0+spriteID(d), d)
	}
	paintPacman(img, spritePacRight, 1, 0)
	paintPacman(img, spritePacLeft, -1, 0)
	paintPacman(img, spritePacUp, 0, -1)
	paintPacman(img, spritePacDown, 0, 1)
	paintPacman(img, spritePacClosed, 0, 0)
	paintGhost(img, spriteBlinky, colorBlinkyRed, true)
	paintGhost(img, spritePinky, colorPinkyPink, true)
	paintGhost(img, spriteInky, colorInkyCyan, true)
	paintGhost(img, spriteClyde, colorClydeOrng, true)
	paintGhost(img, spriteFright, colorFrightBlu, false)
	paintGhost(img, spriteFrightFlash, colorWhite, false)
	paintEyes(img, spriteEyes)
	paintFruit(img, spriteFruit)
	return img
}

// setPx writes one pixel inside a sprite cell, clipping silently.
func setPx(img *image.RGBA, id spriteID, x, y int, c color.RGBA) {
	if x < 0 || x >= tileSize || y < 0 || y >= tileSize {
		return
	}
	img.SetRGBA(int(id)*tileSize+x, y, c)
}

func paintDot(img *image.RGBA, id spriteID) {
	for y := 3; y <= 4; y++ {
		for x := 3; x <= 4; x++ {
			setPx(img, id, x, y, colorDotCream)
		}
	}
}

func paintPill(img *image.RGBA, id spriteID) {
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			dx := float64(x) - 3.5
			dy := float64(y) - 3.5
			if dx*dx+dy*dy <= 3.2*3.2 {
				setPx(img, id, x, y, colorDotCream)
			}
		}
	}
}

func paintWall(img *image.RGBA, id spriteID) {
	for i := 1; i <= 6; i++ {
		setPx(img, id, i, 1, colorMazeBlue)
		setPx(img, id, i, 6, colorMazeBlue)
		setPx(img, id, 1, i, colorMazeBlue)
		setPx(img, id, 6, i, colorMazeBlue)
	}
}

func paintDoor(img *image.RGBA, id spriteID) {
	for x := 0; x < tileSize; x++ {
		setPx(img, id, x, 3, colorDoorPink)
		setPx(img, id, x, 4, colorDoorPink)
	}
}

func paintDigit(img *image.RGBA, id spriteID, digit int) {
	glyph := digitFont[digit]
	for row := 0; row < 5; row++ {
		for col := 0; col < 3; col++ {
			if glyph[row]&(1<<(2-col)) != 0 {
				setPx(img, id, col+2, row+1, colorWhite)
			}
		}
	}
}

// paintPacman draws a filled disc with a mouth wedge opening toward (dx, dy).
// A zero direction paints the closed-mouth frame.
func paintPacman(img *image.RGBA, id spriteID, dx, dy int) {
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			px := float64(x) - 3.5
			py := float64(y) - 3.5
			if px*px+py*py > 3.6*3.6 {
				continue
			}
			if dx != 0 || dy != 0 {
				along := px*float64(dx) + py*float64(dy)
				across := px*float64(dy) - py*float64(dx)
				if along > 0 && along >= absF(across) {
					continue
				}
			}
			setPx(img, id, x, y, colorPacYellow)
		}
	}
}

// paintGhost draws the rounded body with a scalloped skirt. withPupils selects
// the normal look; the frightened frames use pip eyes and a wavy mouth instead.
func paintGhost(img *image.RGBA, id spriteID, body color.RGBA, withPupils bool) {
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			px := float64(x) - 3.5
			py := float64(y) - 3.0
			inHead := px*px+py*py <= 3.6*3.6 && y <= 3
			inBody := y >= 4 && y <= 6 && x >= 0 && x <= 7
			inFoot := y == 7 && x%3 != 2
			if inHead || inBody || inFoot {
				setPx(img, id, x, y, body)
			}
		}
	}
	if withPupils {
		setPx(img, id, 2, 3, colorWhite)
		setPx(img, id, 5, 3, colorWhite)
		setPx(img, id, 2, 4, colorMazeBlue)
		setPx(img, id, 5, 4, colorMazeBlue)
	} else {
		pip := colorDotCream
		setPx(img, id, 2, 3, pip)
		setPx(img, id, 5, 3, pip)
		for x := 1; x <= 6; x++ {
			if x%2 == 0 {
				setPx(img, id, x, 6, pip)
			}
		}
	}
}

func paintEyes(img *image.RGBA, id spriteID) {
	for _, ex := range [2]int{1, 4} {
		for y := 2; y <= 4; y++ {
			for x := ex; x <= ex+2; x++ {
				setPx(img, id, x, y, colorWhite)
			}
		}
		setPx(img, id, ex+1, 4, colorMazeBlue)
	}
}

func paintFruit(img *image.RGBA, id spriteID) {
	for _, cx := range [2]float64{2.0, 5.0} {
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				dx := float64(x) - cx
				dy := float64(y) - 5.0
				if dx*dx+dy*dy <= 1.8*1.8 {
					setPx(img, id, x, y, colorBlinkyRed)
				}
			}
		}
	}
	setPx(img, id, 3, 3, colorStemGreen)
	setPx(img, id, 4, 2, colorStemGreen)
	setPx(img, id, 5, 1, colorStemGreen)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
