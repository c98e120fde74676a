package main

// mazeMap is the playfield char map, one string per tile row. '#' is a wall,
// '.' a dot, 'o' an energizer pill, '=' the ghost house door, and ' ' an open
// corridor. Row 14 is the wrap-around tunnel. The same characters feed
// canvas.CopyCharMap through the sheet char map.
var mazeMap = [mazeRows]string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.#####.##.#####.######",
	"######.#####.##.#####.######",
	"######.##..........##.######",
	"######.##.###==###.##.######",
	"######.##.#      #.##.######",
	"      .   #      #   .      ",
	"######.##.#      #.##.######",
	"######.##.########.##.######",
	"######.##..........##.######",
	"######.##.########.##.######",
	"######.##.########.##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##................##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Fixed maze landmarks in tile coordinates.
var (
	pacStartTile    = tilePos{14, 23}
	blinkyStartTile = tilePos{14, 11}
	pinkyStartTile  = tilePos{13, 14}
	inkyStartTile   = tilePos{11, 14}
	clydeStartTile  = tilePos{15, 14}
	houseExitTile   = tilePos{13, 11}
	houseEyesTile   = tilePos{13, 14}
	fruitTile       = tilePos{14, 17}

	blinkyScatterTile = tilePos{25, 0}
	pinkyScatterTile  = tilePos{2, 0}
	inkyScatterTile   = tilePos{27, 30}
	clydeScatterTile  = tilePos{0, 30}
)

// tilePos is an integer tile coordinate on the maze grid.
type tilePos struct {
	x int
	y int
}

// maze tracks the live playfield state for one level: the immutable wall
// layout plus the remaining dots and pills.
type maze struct {
	cells    []byte
	dotsLeft int
}

// newMaze copies the char map into a mutable cell grid and counts its dots.
func newMaze() *maze {
	m := &maze{cells: make([]byte, numTilesX*mazeRows)}
	for y, row := range mazeMap {
		for x := 0; x < numTilesX; x++ {
			ch := row[x]
			m.cells[y*numTilesX+x] = ch
			if ch == '.' || ch == 'o' {
				m.dotsLeft++
			}
		}
	}
	return m
}

// wrapMazeX wraps a tile x-coordinate through the tunnel.
func wrapMazeX(x int) int {
	return ((x % numTilesX) + numTilesX) % numTilesX
}

// charAt returns the cell character at the given tile, wrapping horizontally.
// Rows outside the maze read as walls.
func (m *maze) charAt(x, y int) byte {
	if y < 0 || y >= mazeRows {
		return '#'
	}
	return m.cells[y*numTilesX+wrapMazeX(x)]
}

// blocked reports whether an actor may not enter the tile. The ghost house
// door only opens for ghosts that are currently allowed through it.
func (m *maze) blocked(x, y int, allowDoor bool) bool {
	switch m.charAt(x, y) {
	case '#':
		return true
	case '=':
		return !allowDoor
	}
	return false
}

// eatAt removes and returns the dot or pill at the tile, if any.
func (m *maze) eatAt(x, y int) (byte, bool) {
	if y < 0 || y >= mazeRows {
		return 0, false
	}
	idx := y*numTilesX + wrapMazeX(x)
	ch := m.cells[idx]
	if ch != '.' && ch != 'o' {
		return 0, false
	}
	m.cells[idx] = ' '
	m.dotsLeft--
	return ch, true
}

// drawInto copies the full char map into the canvas tile grid at the maze row
// offset.
func (m *maze) drawInto(c *canvas) {
	for y := 0; y < mazeRows; y++ {
		c.CopyCharMap(0, mazeOffsetY+y, numTilesX, 1, string(m.cells[y*numTilesX:(y+1)*numTilesX]))
	}
}
