package main

// Gameplay, canvas, and audio configuration constants used throughout the
// application. All timing values are expressed in game ticks at Ebitengine's
// default 60 ticks per second.
const (
	// Canvas geometry. The playfield is 28x31 tiles; the extra rows hold the
	// score line above the maze and the lives row below it.
	numTilesX   = 28
	numTilesY   = 36
	tileSize    = 8
	mazeRows    = 31
	mazeOffsetY = 3
	livesRowY   = mazeOffsetY + mazeRows + 1
	scoreRowY   = 1
	scoreColX   = 2
	scoreDigits = 7
	windowScale = 3

	// Dynamic sprite slot assignment. Slots render in index order after the
	// tile layer, so the fruit draws beneath the actors.
	slotFruit       = 0
	slotBlinky      = 1
	slotPinky       = 2
	slotInky        = 3
	slotClyde       = 4
	slotPacman      = 5
	numDynamicSlots = 6

	pacAnimTicks    = 8
	ghostAnimTicks  = 16
	ghostScoreBase  = 200
	dotScore        = 10
	pillScore       = 50
	fruitScore      = 100
	initialLives    = 3
	maxLivesDisplay = 5
	fruitFirstDots  = 70
	fruitSecondDots = 170
	fruitShownTicks = 540

	// Actor speeds in tiles advanced per tick.
	pacSpeed        = 0.125
	ghostSpeed      = 0.115
	frightenedSpeed = 0.0625
	tunnelSpeed     = 0.0625
	eyesSpeed       = 0.25

	// Round timing.
	readyTicks      = 120
	dyingTicks      = 110
	levelClearTicks = 120
	frightenedTicks = 360
	frightFlashTick = 120
	scatterTicks    = 420
	chaseTicks      = 1200

	// Ghost house release thresholds: dots eaten before each ghost may leave.
	pinkyReleaseDots = 0
	inkyReleaseDots  = 30
	clydeReleaseDots = 60

	// Audio output format shared by the effect synthesizer and the player.
	audioSampleRate     = 48000
	audioChannels       = 2
	audioBytesPerSample = 2
	audioFrameBytes     = audioChannels * audioBytesPerSample
	maxQueuedSamples    = audioSampleRate / 2
)
