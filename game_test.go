package main

import "testing"

// mustGame builds a fully initialized Game for tests, with audio left off.
func mustGame(t *testing.T) *Game {
	t.Helper()
	g, err := newGame()
	if err != nil {
		t.Fatalf("newGame() failed: %v", err)
	}
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g := mustGame(t)
	if g.state != stateReady {
		t.Errorf("state = %d, want ready", g.state)
	}
	if g.lives != initialLives {
		t.Errorf("lives = %d, want %d", g.lives, initialLives)
	}
	if !g.canvas.IsValid() {
		t.Error("canvas not set up")
	}
	if g.maze.dotsLeft == 0 {
		t.Error("maze has no dots")
	}
	if g.pac.tile != pacStartTile {
		t.Errorf("pac tile = %v, want %v", g.pac.tile, pacStartTile)
	}
	if !g.ghosts[ghostPinky].inHouse || g.ghosts[ghostBlinky].inHouse {
		t.Error("ghost house assignments wrong at round start")
	}
}

func TestMovePacmanRespectsWalls(t *testing.T) {
	g := mustGame(t)
	g.pac.placeAt(tilePos{1, 1})

	g.wantDir = dirUp // row 0 is solid wall
	g.movePacman()
	if g.pac.dir != dirNone {
		t.Errorf("pac moved into a wall, dir = %d", g.pac.dir)
	}

	g.wantDir = dirRight
	g.movePacman()
	if g.pac.dir != dirRight {
		t.Fatalf("pac dir = %d, want right", g.pac.dir)
	}
	if g.pac.progress != pacSpeed {
		t.Errorf("pac progress = %v, want %v", g.pac.progress, pacSpeed)
	}
}

func TestMovePacmanBufferedReverse(t *testing.T) {
	g := mustGame(t)
	g.pac.placeAt(tilePos{1, 1})
	g.wantDir = dirRight
	g.movePacman()
	g.movePacman()

	g.wantDir = dirLeft
	g.movePacman()
	if g.pac.dir != dirLeft {
		t.Errorf("pac dir = %d, want immediate reverse to left", g.pac.dir)
	}
}

func TestEatDotScores(t *testing.T) {
	g := mustGame(t)
	g.pac.placeAt(tilePos{1, 1}) // '.' in the char map
	dots := g.maze.dotsLeft

	g.eatUnderPacman()
	if g.score != dotScore {
		t.Errorf("score = %d, want %d", g.score, dotScore)
	}
	if g.dotsEaten != 1 {
		t.Errorf("dotsEaten = %d, want 1", g.dotsEaten)
	}
	if g.maze.dotsLeft != dots-1 {
		t.Errorf("dotsLeft = %d, want %d", g.maze.dotsLeft, dots-1)
	}
	idx := (mazeOffsetY+1)*g.canvas.numTilesX + 1
	if got := g.canvas.tiles[idx]; got != spriteEmpty {
		t.Errorf("eaten tile sprite = %d, want empty", got)
	}
	// Eating the same tile twice scores nothing.
	g.eatUnderPacman()
	if g.score != dotScore {
		t.Errorf("score after re-eat = %d, want %d", g.score, dotScore)
	}
}

func TestEatPillFrightensGhosts(t *testing.T) {
	g := mustGame(t)
	g.ghosts[ghostBlinky].setDir(dirLeft)
	g.ghosts[ghostInky].eyes = true
	g.pac.placeAt(tilePos{1, 3}) // 'o' in the char map

	g.eatUnderPacman()
	if g.score != pillScore {
		t.Errorf("score = %d, want %d", g.score, pillScore)
	}
	if g.frightTicks != frightenedTicks {
		t.Errorf("frightTicks = %d, want %d", g.frightTicks, frightenedTicks)
	}
	if !g.ghosts[ghostBlinky].frightened {
		t.Error("free ghost not frightened")
	}
	if g.ghosts[ghostBlinky].dir != dirRight {
		t.Error("free ghost did not reverse")
	}
	if g.ghosts[ghostInky].frightened {
		t.Error("eyes ghost was frightened")
	}
}

func TestEatFrightenedGhost(t *testing.T) {
	g := mustGame(t)
	gh := &g.ghosts[ghostBlinky]
	gh.frightened = true
	gh.placeAt(g.pac.tile)

	g.resolveCollisions()
	if !gh.eyes || gh.frightened {
		t.Errorf("ghost mode after being eaten: eyes=%v frightened=%v", gh.eyes, gh.frightened)
	}
	if g.score != ghostScoreBase {
		t.Errorf("score = %d, want %d", g.score, ghostScoreBase)
	}
	if g.ghostChain != 1 {
		t.Errorf("ghostChain = %d, want 1", g.ghostChain)
	}

	// The next ghost in the same frightened run is worth double.
	gh2 := &g.ghosts[ghostPinky]
	gh2.inHouse = false
	gh2.frightened = true
	gh2.placeAt(g.pac.tile)
	g.resolveCollisions()
	if g.score != ghostScoreBase+2*ghostScoreBase {
		t.Errorf("score = %d, want %d", g.score, ghostScoreBase+2*ghostScoreBase)
	}
}

func TestGhostCollisionCostsLife(t *testing.T) {
	g := mustGame(t)
	g.state = statePlaying
	g.ghosts[ghostBlinky].placeAt(g.pac.tile)

	g.resolveCollisions()
	if g.state != stateDying {
		t.Errorf("state = %d, want dying", g.state)
	}
	if g.lives != initialLives-1 {
		t.Errorf("lives = %d, want %d", g.lives, initialLives-1)
	}
}

func TestFruitSpawnAndEat(t *testing.T) {
	g := mustGame(t)
	g.dotsEaten = fruitFirstDots - 1
	g.pac.placeAt(tilePos{1, 1})
	g.eatUnderPacman()
	if g.fruitTicks != fruitShownTicks {
		t.Fatalf("fruitTicks = %d, want %d after dot %d", g.fruitTicks, fruitShownTicks, fruitFirstDots)
	}

	score := g.score
	g.pac.placeAt(fruitTile)
	g.eatUnderPacman()
	if g.fruitTicks != 0 {
		t.Error("fruit still shown after being eaten")
	}
	// The fruit tile also holds a dot, so both scores apply.
	want := score + dotScore + fruitScore*g.level
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
}

func TestPhaseFlipReversesGhosts(t *testing.T) {
	g := mustGame(t)
	g.phaseTicks = 1
	gh := &g.ghosts[ghostBlinky]
	gh.setDir(dirLeft)

	g.updatePhaseTimers()
	if !g.chasePhase {
		t.Error("phase did not flip to chase")
	}
	if g.phaseTicks != chaseTicks {
		t.Errorf("phaseTicks = %d, want %d", g.phaseTicks, chaseTicks)
	}
	if gh.dir != dirRight {
		t.Errorf("ghost dir = %d, want reversed to right", gh.dir)
	}
	if g.ghosts[ghostPinky].dir != dirNone {
		t.Error("housed ghost was reversed")
	}
}

func TestFrightTimerExpiry(t *testing.T) {
	g := mustGame(t)
	g.frightTicks = 1
	g.ghosts[ghostBlinky].frightened = true
	g.ghostChain = 2

	g.updatePhaseTimers()
	if g.frightTicks != 0 {
		t.Errorf("frightTicks = %d, want 0", g.frightTicks)
	}
	if g.ghosts[ghostBlinky].frightened {
		t.Error("ghost still frightened after timer expiry")
	}
	if g.ghostChain != 0 {
		t.Errorf("ghostChain = %d, want 0", g.ghostChain)
	}
}

func TestLastDotClearsLevel(t *testing.T) {
	g := mustGame(t)
	for i, ch := range g.maze.cells {
		if ch == '.' || ch == 'o' {
			g.maze.cells[i] = ' '
		}
	}
	g.maze.cells[1*numTilesX+1] = '.'
	g.maze.dotsLeft = 1
	g.pac.placeAt(tilePos{1, 1})

	g.eatUnderPacman()
	if g.state != stateLevelClear {
		t.Errorf("state = %d, want level clear", g.state)
	}
}

func TestEyesGhostReturnsHome(t *testing.T) {
	g := mustGame(t)
	gh := &g.ghosts[ghostBlinky]
	gh.eyes = true
	gh.placeAt(tilePos{13, 13})
	gh.setDir(dirDown)

	for i := 0; i < 8 && gh.eyes; i++ {
		g.updateGhost(gh)
	}
	if gh.eyes {
		t.Fatal("eyes never reached home")
	}
	if !gh.leaving {
		t.Error("revived ghost is not leaving the house")
	}
}

func TestHousedGhostReleasedByDots(t *testing.T) {
	g := mustGame(t)
	gh := &g.ghosts[ghostInky]
	g.dotsEaten = inkyReleaseDots - 1
	g.updateGhost(gh)
	if !gh.inHouse {
		t.Fatal("ghost left the house early")
	}
	g.dotsEaten = inkyReleaseDots
	g.updateGhost(gh)
	if gh.inHouse || !gh.leaving {
		t.Errorf("ghost after release: inHouse=%v leaving=%v", gh.inHouse, gh.leaving)
	}
}

func TestSyncCanvasScoreAndLives(t *testing.T) {
	g := mustGame(t)
	g.score = 1230
	g.lives = 3
	g.syncCanvas()

	wantDigits := "0001230"
	for i := 0; i < scoreDigits; i++ {
		idx := scoreRowY*g.canvas.numTilesX + scoreColX + i
		want := spriteDigit0 + spriteID(wantDigits[i]-'0')
		if got := g.canvas.tiles[idx]; got != want {
			t.Errorf("score digit %d sprite = %d, want %d", i, got, want)
		}
	}
	// Two reserve lives show as Pac-Man markers, the rest stay empty.
	row := livesRowY * g.canvas.numTilesX
	if got := g.canvas.tiles[row+1]; got != spritePacRight {
		t.Errorf("first life marker = %d, want pac sprite", got)
	}
	if got := g.canvas.tiles[row+2]; got != spritePacRight {
		t.Errorf("second life marker = %d, want pac sprite", got)
	}
	if got := g.canvas.tiles[row+3]; got != spriteEmpty {
		t.Errorf("third life marker = %d, want empty", got)
	}
}

func TestSyncCanvasActorSlots(t *testing.T) {
	g := mustGame(t)
	g.syncCanvas()

	pac := g.canvas.sprites[slotPacman]
	if pac.id == spriteInvalid {
		t.Fatal("pacman slot disabled")
	}
	wantX := pacStartTile.x * tileSize
	wantY := (mazeOffsetY + pacStartTile.y) * tileSize
	if pac.x != wantX || pac.y != wantY {
		t.Errorf("pacman slot at (%d, %d), want (%d, %d)", pac.x, pac.y, wantX, wantY)
	}
	if g.canvas.sprites[slotFruit].id != spriteInvalid {
		t.Error("fruit slot active before any fruit spawned")
	}

	g.state = stateDying
	g.syncCanvas()
	for slot := slotBlinky; slot <= slotClyde; slot++ {
		if g.canvas.sprites[slot].id != spriteInvalid {
			t.Errorf("ghost slot %d visible while dying", slot)
		}
	}
}
