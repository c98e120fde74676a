package main

import "math/rand"

// direction is one of the four grid headings an actor can travel in.
type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

// vec returns the tile-space unit vector of the direction.
func (d direction) vec() (int, int) {
	switch d {
	case dirUp:
		return 0, -1
	case dirDown:
		return 0, 1
	case dirLeft:
		return -1, 0
	case dirRight:
		return 1, 0
	}
	return 0, 0
}

// opposite returns the reverse heading.
func (d direction) opposite() direction {
	switch d {
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	case dirLeft:
		return dirRight
	case dirRight:
		return dirLeft
	}
	return dirNone
}

var allDirections = [4]direction{dirUp, dirLeft, dirDown, dirRight}

// actor moves tile to tile: it departs from tile toward next, with progress
// advancing from 0 to 1 along the edge. Steering decisions happen only on
// arrival at a tile center, which keeps movement and collision exact.
type actor struct {
	tile     tilePos
	next     tilePos
	dir      direction
	progress float64
}

// placeAt parks the actor exactly on a tile with no heading.
func (a *actor) placeAt(t tilePos) {
	a.tile = t
	a.next = t
	a.dir = dirNone
	a.progress = 0
}

// setDir points the actor at the neighboring tile in the given direction.
func (a *actor) setDir(d direction) {
	dx, dy := d.vec()
	a.dir = d
	a.next = tilePos{a.tile.x + dx, a.tile.y + dy}
}

// reverse swaps the departure and destination tiles mid-edge.
func (a *actor) reverse() {
	if a.dir == dirNone {
		return
	}
	a.tile, a.next = a.next, a.tile
	a.dir = a.dir.opposite()
	a.progress = 1 - a.progress
}

// advance moves the actor by speed tiles and reports whether it arrived at a
// tile center this tick. On arrival the destination becomes the current tile
// (wrapped through the tunnel) and the caller picks the next heading.
func (a *actor) advance(speed float64) bool {
	if a.dir == dirNone {
		return false
	}
	a.progress += speed
	if a.progress < 1 {
		return false
	}
	a.progress -= 1
	a.tile = tilePos{wrapMazeX(a.next.x), a.next.y}
	a.next = a.tile
	return true
}

// pixelPos returns the actor's maze-local pixel position, interpolated along
// the edge being traversed.
func (a *actor) pixelPos() (float64, float64) {
	dx, dy := a.dir.vec()
	x := (float64(a.tile.x) + float64(dx)*a.progress) * tileSize
	y := (float64(a.tile.y) + float64(dy)*a.progress) * tileSize
	return x, y
}

// occupiedTile returns the tile the actor is closest to, used for dot eating
// and collision checks.
func (a *actor) occupiedTile() tilePos {
	if a.progress >= 0.5 {
		return tilePos{wrapMazeX(a.next.x), a.next.y}
	}
	return a.tile
}

// ghostKind selects one of the four personalities.
type ghostKind int

const (
	ghostBlinky ghostKind = iota
	ghostPinky
	ghostInky
	ghostClyde
)

// ghost carries one ghost's movement state and mode flags. The global
// scatter/chase phase lives on the Game; frightened and eyes are per ghost.
type ghost struct {
	actor
	kind       ghostKind
	frightened bool
	eyes       bool
	inHouse    bool
	leaving    bool
	releaseDot int
}

// bodySprite returns the sheet sprite for the ghost's current mode. flash
// selects the white frightened frame during the warning period.
func (g *ghost) bodySprite(flash bool) spriteID {
	switch {
	case g.eyes:
		return spriteEyes
	case g.frightened && flash:
		return spriteFrightFlash
	case g.frightened:
		return spriteFright
	default:
		return spriteBlinky + spriteID(g.kind)
	}
}

// scatterTarget returns the ghost's home corner.
func (g *ghost) scatterTarget() tilePos {
	switch g.kind {
	case ghostPinky:
		return pinkyScatterTile
	case ghostInky:
		return inkyScatterTile
	case ghostClyde:
		return clydeScatterTile
	}
	return blinkyScatterTile
}

// chaseTarget computes the ghost's pursuit tile from Pac-Man's position and
// heading plus, for Inky, Blinky's position.
func (g *ghost) chaseTarget(pacTile tilePos, pacDir direction, blinkyTile tilePos) tilePos {
	px, py := pacDir.vec()
	switch g.kind {
	case ghostPinky:
		return tilePos{pacTile.x + 4*px, pacTile.y + 4*py}
	case ghostInky:
		pivot := tilePos{pacTile.x + 2*px, pacTile.y + 2*py}
		return tilePos{2*pivot.x - blinkyTile.x, 2*pivot.y - blinkyTile.y}
	case ghostClyde:
		dx := g.tile.x - pacTile.x
		dy := g.tile.y - pacTile.y
		if dx*dx+dy*dy > 8*8 {
			return pacTile
		}
		return clydeScatterTile
	}
	return pacTile
}

// speedFor returns the ghost's speed for this tick, slowing in the tunnel row
// and while frightened, and speeding up while returning home as eyes.
func (g *ghost) speedFor() float64 {
	switch {
	case g.eyes:
		return eyesSpeed
	case g.frightened:
		return frightenedSpeed
	case g.tile.y == 14 && (g.tile.x < 6 || g.tile.x > 21):
		return tunnelSpeed
	}
	return ghostSpeed
}

// allowDoor reports whether the ghost may pass through the house door.
func (g *ghost) allowDoor() bool {
	return g.eyes || g.leaving || g.inHouse
}

// distSq is the squared tile distance between two positions.
func distSq(a, b tilePos) int {
	dx := a.x - b.x
	dy := a.y - b.y
	return dx*dx + dy*dy
}

// steerGhost picks the ghost's next heading on tile arrival: the legal
// direction that minimizes the distance to target, never reversing unless the
// tile is a dead end. Frightened ghosts pick a legal direction at random.
func steerGhost(g *ghost, m *maze, target tilePos, rng *rand.Rand) {
	var options []direction
	for _, d := range allDirections {
		if d == g.dir.opposite() && g.dir != dirNone {
			continue
		}
		dx, dy := d.vec()
		if m.blocked(g.tile.x+dx, g.tile.y+dy, g.allowDoor()) {
			continue
		}
		options = append(options, d)
	}
	if len(options) == 0 {
		g.setDir(g.dir.opposite())
		return
	}
	if g.frightened && !g.eyes {
		g.setDir(options[rng.Intn(len(options))])
		return
	}
	best := options[0]
	bestDist := 1 << 30
	for _, d := range options {
		dx, dy := d.vec()
		cand := tilePos{g.tile.x + dx, g.tile.y + dy}
		if dist := distSq(cand, target); dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	g.setDir(best)
}
