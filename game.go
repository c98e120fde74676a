package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// roundState is the coarse state of the current round.
type roundState int

const (
	stateReady roundState = iota
	statePlaying
	stateDying
	stateLevelClear
	stateGameOver
)

// Game owns the canvas, the live maze, and all actor and scoring state, and
// implements ebiten.Game. Everything runs synchronously on the game loop; the
// canvas is updated in place each tick and rendered once per frame.
type Game struct {
	canvas *canvas
	maze   *maze

	state      roundState
	stateTicks int
	tick       int

	score      int
	lives      int
	level      int
	dotsEaten  int
	fruitTicks int

	pac     actor
	pacDir  direction
	wantDir direction
	ghosts  [4]ghost

	chasePhase  bool
	phaseTicks  int
	frightTicks int
	ghostChain  int

	rng *rand.Rand
	sfx *soundBank
}

// newGame constructs a fully initialized Game with the canvas set up for the
// full tile grid and all dynamic sprite slots.
func newGame() (*Game, error) {
	g := &Game{
		canvas: &canvas{},
		lives:  initialLives,
		level:  1,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := g.canvas.Setup(numTilesX, numTilesY, tileSize, tileSize, numDynamicSlots); err != nil {
		return nil, fmt.Errorf("setting up canvas: %w", err)
	}
	g.startLevel()
	return g, nil
}

// startLevel rebuilds the maze, redraws the tile layer, and stages a new round.
func (g *Game) startLevel() {
	g.maze = newMaze()
	g.maze.drawInto(g.canvas)
	g.dotsEaten = 0
	g.fruitTicks = 0
	g.resetActors()
}

// resetActors returns every actor to its start tile and restarts the
// scatter/chase schedule. Used on round start and after Pac-Man dies.
func (g *Game) resetActors() {
	g.pac.placeAt(pacStartTile)
	g.pacDir = dirLeft
	g.wantDir = dirLeft

	starts := [4]tilePos{blinkyStartTile, pinkyStartTile, inkyStartTile, clydeStartTile}
	release := [4]int{0, pinkyReleaseDots, inkyReleaseDots, clydeReleaseDots}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		*gh = ghost{kind: ghostKind(i), releaseDot: release[i]}
		gh.placeAt(starts[i])
		gh.inHouse = i != 0
	}
	g.chasePhase = false
	g.phaseTicks = scatterTicks
	g.frightTicks = 0
	g.ghostChain = 0
	g.state = stateReady
	g.stateTicks = readyTicks
}

// Update advances the round state machine by one tick.
func (g *Game) Update() error {
	g.tick++
	g.readInput()
	switch g.state {
	case stateReady:
		g.stateTicks--
		if g.stateTicks <= 0 {
			g.state = statePlaying
		}
	case statePlaying:
		g.updatePlaying()
	case stateDying:
		g.stateTicks--
		if g.stateTicks <= 0 {
			if g.lives <= 0 {
				g.state = stateGameOver
			} else {
				g.resetActors()
			}
		}
	case stateLevelClear:
		g.stateTicks--
		if g.stateTicks <= 0 {
			g.level++
			g.startLevel()
		}
	case stateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.score = 0
			g.lives = initialLives
			g.level = 1
			g.startLevel()
		}
	}
	g.syncCanvas()
	return nil
}

// readInput buffers the most recent steering request. Arrow keys and WASD are
// both accepted.
func (g *Game) readInput() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		g.wantDir = dirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		g.wantDir = dirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		g.wantDir = dirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		g.wantDir = dirRight
	}
}

// updatePlaying runs one tick of actual gameplay: timers, movement, eating,
// and collision resolution.
func (g *Game) updatePlaying() {
	g.updatePhaseTimers()
	g.movePacman()
	g.eatUnderPacman()
	if g.state != statePlaying {
		return
	}
	for i := range g.ghosts {
		g.updateGhost(&g.ghosts[i])
	}
	g.resolveCollisions()
}

// updatePhaseTimers drives the frightened countdown and the scatter/chase
// alternation. Phase flips reverse every free ghost, as the arcade game does.
func (g *Game) updatePhaseTimers() {
	if g.fruitTicks > 0 {
		g.fruitTicks--
	}
	if g.frightTicks > 0 {
		g.frightTicks--
		if g.frightTicks == 0 {
			for i := range g.ghosts {
				g.ghosts[i].frightened = false
			}
			g.ghostChain = 0
		}
		return
	}
	g.phaseTicks--
	if g.phaseTicks > 0 {
		return
	}
	g.chasePhase = !g.chasePhase
	if g.chasePhase {
		g.phaseTicks = chaseTicks
	} else {
		g.phaseTicks = scatterTicks
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.inHouse && !gh.eyes {
			gh.reverse()
		}
	}
}

// canPacEnter reports whether Pac-Man may move from t in direction d.
func (g *Game) canPacEnter(t tilePos, d direction) bool {
	dx, dy := d.vec()
	return !g.maze.blocked(t.x+dx, t.y+dy, false)
}

// movePacman applies buffered steering and advances Pac-Man along the grid.
func (g *Game) movePacman() {
	if g.pac.dir == dirNone {
		if g.wantDir != dirNone && g.canPacEnter(g.pac.tile, g.wantDir) {
			g.pac.setDir(g.wantDir)
			g.pacDir = g.wantDir
		}
	} else if g.wantDir == g.pac.dir.opposite() {
		g.pac.reverse()
		g.pacDir = g.wantDir
	}
	if !g.pac.advance(pacSpeed) {
		return
	}
	// Arrived on a tile center: prefer the buffered direction, else carry on,
	// else stop at the wall.
	if g.wantDir != dirNone && g.canPacEnter(g.pac.tile, g.wantDir) {
		g.pac.setDir(g.wantDir)
		g.pacDir = g.wantDir
		return
	}
	if g.canPacEnter(g.pac.tile, g.pac.dir) {
		g.pac.setDir(g.pac.dir)
		return
	}
	g.pac.dir = dirNone
	g.pac.progress = 0
}

// eatUnderPacman consumes the dot, pill, or fruit on Pac-Man's tile and
// applies scoring, frightened mode, and level-clear transitions.
func (g *Game) eatUnderPacman() {
	t := g.pac.occupiedTile()
	if ch, ok := g.maze.eatAt(t.x, t.y); ok {
		g.canvas.SetTile(spriteEmpty, g.canvas.ClampX(t.x), g.canvas.ClampY(mazeOffsetY+t.y))
		g.dotsEaten++
		if ch == 'o' {
			g.score += pillScore
			g.frightTicks = frightenedTicks
			g.ghostChain = 0
			for i := range g.ghosts {
				gh := &g.ghosts[i]
				if gh.eyes {
					continue
				}
				gh.frightened = true
				if !gh.inHouse {
					gh.reverse()
				}
			}
			g.sfx.play(sfxPill)
		} else {
			g.score += dotScore
			g.sfx.play(sfxMunch)
		}
		if g.dotsEaten == fruitFirstDots || g.dotsEaten == fruitSecondDots {
			g.fruitTicks = fruitShownTicks
		}
		if g.maze.dotsLeft == 0 {
			g.state = stateLevelClear
			g.stateTicks = levelClearTicks
		}
	}
	if g.fruitTicks > 0 && t == fruitTile {
		g.fruitTicks = 0
		g.score += fruitScore * g.level
		g.sfx.play(sfxFruit)
	}
}

// ghostTarget returns the tile the ghost is currently homing toward.
func (g *Game) ghostTarget(gh *ghost) tilePos {
	switch {
	case gh.eyes:
		return houseEyesTile
	case gh.leaving:
		return houseExitTile
	case g.chasePhase:
		return gh.chaseTarget(g.pac.occupiedTile(), g.pacDir, g.ghosts[ghostBlinky].tile)
	}
	return gh.scatterTarget()
}

// updateGhost advances one ghost, handling house release, door transit, and
// steering on tile arrival.
func (g *Game) updateGhost(gh *ghost) {
	if gh.inHouse {
		if g.dotsEaten < gh.releaseDot {
			return
		}
		gh.inHouse = false
		gh.leaving = true
	}
	if gh.dir == dirNone {
		steerGhost(gh, g.maze, g.ghostTarget(gh), g.rng)
	}
	if !gh.advance(gh.speedFor()) {
		return
	}
	if gh.eyes && gh.tile == houseEyesTile {
		gh.eyes = false
		gh.frightened = false
		gh.leaving = true
	}
	if gh.leaving && gh.tile == houseExitTile {
		gh.leaving = false
	}
	steerGhost(gh, g.maze, g.ghostTarget(gh), g.rng)
}

// resolveCollisions checks Pac-Man against every ghost by pixel proximity.
// Frightened ghosts are eaten and sent home as eyes; a normal ghost costs a
// life and restarts the round.
func (g *Game) resolveCollisions() {
	px, py := g.pac.pixelPos()
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.eyes || gh.inHouse {
			continue
		}
		gx, gy := gh.pixelPos()
		dx, dy := px-gx, py-gy
		if dx*dx+dy*dy > (tileSize/2)*(tileSize/2) {
			continue
		}
		if gh.frightened {
			gh.frightened = false
			gh.eyes = true
			g.score += ghostScoreBase << g.ghostChain
			if g.ghostChain < 3 {
				g.ghostChain++
			}
			g.sfx.play(sfxEatGhost)
			continue
		}
		g.lives--
		g.state = stateDying
		g.stateTicks = dyingTicks
		g.sfx.play(sfxDeath)
		return
	}
}

// pacSprite returns the animation frame for Pac-Man's current heading.
func (g *Game) pacSprite() spriteID {
	if g.state == stateDying {
		return spritePacClosed
	}
	if g.pac.dir != dirNone && (g.tick/pacAnimTicks)%2 == 1 {
		return spritePacClosed
	}
	switch g.pacDir {
	case dirUp:
		return spritePacUp
	case dirDown:
		return spritePacDown
	case dirLeft:
		return spritePacLeft
	}
	return spritePacRight
}

// syncCanvas pushes the per-frame presentation state into the canvas: the
// score digits, the lives row, the fruit slot, and every actor sprite slot.
func (g *Game) syncCanvas() {
	c := g.canvas
	score := g.score
	if score > 9999999 {
		score = 9999999
	}
	c.CopyCharMap(c.ClampX(scoreColX), c.ClampY(scoreRowY), scoreDigits, 1,
		fmt.Sprintf("%0*d", scoreDigits, score))

	for i := 0; i < maxLivesDisplay; i++ {
		id := spriteEmpty
		if i < g.lives-1 {
			id = spritePacRight
		}
		c.SetTile(id, c.ClampX(1+i), c.ClampY(livesRowY))
	}
	c.SetTile(spriteFruit, c.ClampX(numTilesX-2), c.ClampY(livesRowY))

	if g.fruitTicks > 0 {
		c.SetSprite(slotFruit, spriteFruit,
			fruitTile.x*tileSize, (mazeOffsetY+fruitTile.y)*tileSize, tileSize, tileSize)
	} else {
		c.SetSprite(slotFruit, spriteInvalid, 0, 0, 0, 0)
	}

	px, py := g.pac.pixelPos()
	c.SetSprite(slotPacman, g.pacSprite(), int(px), int(py)+mazeOffsetY*tileSize, tileSize, tileSize)

	flash := g.frightTicks > 0 && g.frightTicks < frightFlashTick && (g.tick/ghostAnimTicks)%2 == 0
	hideGhosts := g.state == stateDying || g.state == stateGameOver
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if hideGhosts {
			c.SetSprite(slotBlinky+i, spriteInvalid, 0, 0, 0, 0)
			continue
		}
		gx, gy := gh.pixelPos()
		c.SetSprite(slotBlinky+i, gh.bodySprite(flash),
			int(gx), int(gy)+mazeOffsetY*tileSize, tileSize, tileSize)
	}
}
