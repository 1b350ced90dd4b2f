package world

// Grid is the tile grid backing the currently resident zone. Exactly one
// grid is live for gameplay at a time; non-resident zones keep only their
// ZoneRecord.
type Grid struct {
	width  int
	height int
	tiles  []TileKind
}

func NewGrid(width, height int, fill TileKind) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]TileKind, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = fill
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) At(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileStoneWall
	}
	return g.tiles[y*g.width+x]
}

func (g *Grid) Set(x, y int, kind TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.width+x] = kind
}

// Walkable treats out-of-bounds coordinates as blocked.
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).Walkable()
}

// Equal reports tile-for-tile equality. Used by determinism checks.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Count returns how many tiles hold the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == kind {
			n++
		}
	}
	return n
}
