package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Fixed capacity limits of the canvas. The vertex buffer holds one quad of six
// vertices per tile slot; dynamic sprite quads share the same cap, so quads
// that would exceed it are dropped rather than written past the buffer.
const (
	maxCanvasTilesX  = 64
	maxCanvasTilesY  = 64
	maxCanvasSprites = 8
	verticesPerQuad  = 6
	maxNumVertices   = maxCanvasTilesX * maxCanvasTilesY * verticesPerQuad
)

// canvasShaderSrc is the Kage program bound at Setup. It samples the sheet
// texture at the interpolated source coordinate.
const canvasShaderSrc = `//kage:unit pixels

package main

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	return imageSrc0UnsafeAt(src)
}
`

// canvasSprite is one dynamic sprite slot: a sprite id plus a pixel-space
// rectangle. A slot holding spriteInvalid is skipped during vertex generation.
type canvasSprite struct {
	id         spriteID
	x, y, w, h int
}

// canvas owns a fixed-size grid of sprite tiles and a small pool of
// independently positioned dynamic sprites. Each frame it regenerates a vertex
// buffer from that state and submits a single textured draw call. The canvas
// owns its tile, sprite, and vertex storage outright and holds handles to the
// sheet texture and shader, which it acquires at Setup and releases at
// Discard. All methods run synchronously on the game loop goroutine.
type canvas struct {
	valid        bool
	numTilesX    int
	numTilesY    int
	tileWidth    int
	tileHeight   int
	canvasWidth  int
	canvasHeight int
	numSprites   int
	numVertices  int

	texture  *ebiten.Image
	shader   *ebiten.Shader
	drawOpts ebiten.DrawTrianglesShaderOptions

	tiles    [maxCanvasTilesX * maxCanvasTilesY]spriteID
	sprites  [maxCanvasSprites]canvasSprite
	vertices [maxNumVertices]ebiten.Vertex
	indices  []uint16
}

// Setup sizes the canvas, resets the tile grid and sprite slots, and acquires
// the GPU resources (sheet texture, shader, draw state). It rejects dimensions
// outside the fixed maxima and rejects a second call without an intervening
// Discard.
func (c *canvas) Setup(numTilesX, numTilesY, tileWidth, tileHeight, numSprites int) error {
	if c.valid {
		return fmt.Errorf("canvas: Setup on a canvas that has not been discarded")
	}
	if numTilesX < 1 || numTilesX > maxCanvasTilesX {
		return fmt.Errorf("canvas: numTilesX %d outside [1, %d]", numTilesX, maxCanvasTilesX)
	}
	if numTilesY < 1 || numTilesY > maxCanvasTilesY {
		return fmt.Errorf("canvas: numTilesY %d outside [1, %d]", numTilesY, maxCanvasTilesY)
	}
	if tileWidth < 1 || tileHeight < 1 {
		return fmt.Errorf("canvas: tile size %dx%d must be positive", tileWidth, tileHeight)
	}
	if numSprites < 0 || numSprites > maxCanvasSprites {
		return fmt.Errorf("canvas: numSprites %d outside [0, %d]", numSprites, maxCanvasSprites)
	}

	c.numTilesX = numTilesX
	c.numTilesY = numTilesY
	c.tileWidth = tileWidth
	c.tileHeight = tileHeight
	c.canvasWidth = numTilesX * tileWidth
	c.canvasHeight = numTilesY * tileHeight
	c.numSprites = numSprites
	c.numVertices = 0
	for i := range c.tiles {
		c.tiles[i] = spriteInvalid
	}
	for i := range c.sprites {
		c.sprites[i] = canvasSprite{id: spriteInvalid}
	}
	if c.indices == nil {
		c.indices = make([]uint16, maxNumVertices)
		for i := range c.indices {
			c.indices[i] = uint16(i)
		}
	}

	shader, err := ebiten.NewShader([]byte(canvasShaderSrc))
	if err != nil {
		return fmt.Errorf("canvas: compiling sheet shader: %w", err)
	}
	c.shader = shader
	c.texture = ebiten.NewImageFromImage(sheetImage())
	c.drawOpts = ebiten.DrawTrianglesShaderOptions{}
	c.drawOpts.Images[0] = c.texture
	c.valid = true
	return nil
}

// Discard releases the held resource handles and returns the canvas to the
// invalid state. Calling it on an invalid canvas is a no-op.
func (c *canvas) Discard() {
	if !c.valid {
		return
	}
	c.texture.Deallocate()
	c.shader.Deallocate()
	c.texture = nil
	c.shader = nil
	c.drawOpts.Images[0] = nil
	c.valid = false
}

// IsValid reports whether the canvas has been set up.
func (c *canvas) IsValid() bool {
	return c.valid
}

// ClampX constrains a tile x-coordinate to [0, numTilesX).
func (c *canvas) ClampX(tileX int) int {
	if tileX < 0 {
		return 0
	}
	if tileX >= c.numTilesX {
		return c.numTilesX - 1
	}
	return tileX
}

// ClampY constrains a tile y-coordinate to [0, numTilesY).
func (c *canvas) ClampY(tileY int) int {
	if tileY < 0 {
		return 0
	}
	if tileY >= c.numTilesY {
		return c.numTilesY - 1
	}
	return tileY
}

// CopyCharMap writes tileW*tileH entries into the tile grid starting at
// (tileX, tileY), translating each character through the sheet char map. The
// destination range is a caller precondition; callers clamp with ClampX and
// ClampY first.
func (c *canvas) CopyCharMap(tileX, tileY, tileW, tileH int, charMap string) {
	for y := 0; y < tileH; y++ {
		for x := 0; x < tileW; x++ {
			c.tiles[(tileY+y)*c.numTilesX+tileX+x] = charSprite(charMap[y*tileW+x])
		}
	}
}

// SetTile writes a single tile grid entry. Coordinates must already be valid.
func (c *canvas) SetTile(sprite spriteID, tileX, tileY int) {
	c.tiles[tileY*c.numTilesX+tileX] = sprite
}

// SetSprite writes one dynamic sprite slot. Setting the invalid sprite id
// disables the slot for subsequent renders.
func (c *canvas) SetSprite(index int, sprite spriteID, pixX, pixY, pixW, pixH int) {
	if index < 0 || index >= c.numSprites {
		return
	}
	c.sprites[index] = canvasSprite{id: sprite, x: pixX, y: pixY, w: pixW, h: pixH}
}

// Render regenerates the vertex buffer from the current tile and sprite state
// and submits one draw call to the target. Tiles are emitted first so that
// dynamic sprites draw on top of them.
func (c *canvas) Render(target *ebiten.Image) {
	if !c.valid {
		return
	}
	n := c.rebuildVertices()
	if n == 0 {
		return
	}
	target.DrawTrianglesShader(c.vertices[:n], c.indices[:n], c.shader, &c.drawOpts)
}

// rebuildVertices regenerates quads for every non-empty tile and every active
// dynamic sprite and returns the number of vertices in use. Quads that would
// exceed the fixed vertex cap are dropped.
func (c *canvas) rebuildVertices() int {
	index := 0
	for y := 0; y < c.numTilesY; y++ {
		for x := 0; x < c.numTilesX; x++ {
			id := c.tiles[y*c.numTilesX+x]
			if id == spriteInvalid {
				continue
			}
			if index+verticesPerQuad > maxNumVertices {
				c.numVertices = index
				return index
			}
			index = c.writeQuad(index, id,
				float32(x*c.tileWidth), float32(y*c.tileHeight),
				float32(c.tileWidth), float32(c.tileHeight))
		}
	}
	for i := 0; i < c.numSprites; i++ {
		s := &c.sprites[i]
		if s.id == spriteInvalid {
			continue
		}
		if index+verticesPerQuad > maxNumVertices {
			break
		}
		index = c.writeQuad(index, s.id,
			float32(s.x), float32(s.y), float32(s.w), float32(s.h))
	}
	c.numVertices = index
	return index
}

// writeQuad emits the two triangles covering the rectangle at (x, y) sized
// (w, h), textured with the given sprite, and returns the next vertex index.
func (c *canvas) writeQuad(index int, id spriteID, x, y, w, h float32) int {
	u0, v0, u1, v1 := spriteRect(id)
	x0, y0, x1, y1 := x, y, x+w, y+h
	index = c.writeVertex(index, x0, y0, u0, v0)
	index = c.writeVertex(index, x1, y0, u1, v0)
	index = c.writeVertex(index, x0, y1, u0, v1)
	index = c.writeVertex(index, x1, y0, u1, v0)
	index = c.writeVertex(index, x1, y1, u1, v1)
	index = c.writeVertex(index, x0, y1, u0, v1)
	return index
}

// writeVertex stores one position/texcoord pair and returns the next index.
func (c *canvas) writeVertex(index int, x, y, u, v float32) int {
	vtx := &c.vertices[index]
	vtx.DstX, vtx.DstY = x, y
	vtx.SrcX, vtx.SrcY = u, v
	vtx.ColorR, vtx.ColorG, vtx.ColorB, vtx.ColorA = 1, 1, 1, 1
	return index + 1
}
