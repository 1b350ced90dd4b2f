package world

type TileKind string

const (
	TileGrass     TileKind = "grass"
	TileDirt      TileKind = "dirt"
	TileSand      TileKind = "sand"
	TileStone     TileKind = "stone"
	TileStoneWall TileKind = "stone_wall"
	TileWater     TileKind = "water"
	TileTree      TileKind = "tree"
)

// Walkable reports whether a traveler can stand on this tile kind.
func (k TileKind) Walkable() bool {
	switch k {
	case TileGrass, TileDirt, TileSand, TileStone:
		return true
	default:
		return false
	}
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Direction string

const (
	DirNorth Direction = "north"
	DirSouth Direction = "south"
	DirWest  Direction = "west"
	DirEast  Direction = "east"
)

// DirectionOrder fixes the priority used when a traveler sits on more
// than one boundary at once.
var DirectionOrder = []Direction{DirNorth, DirSouth, DirWest, DirEast}

// Delta returns the unit step for the direction in grid coordinates
// (y grows southward).
func (d Direction) Delta() Point {
	switch d {
	case DirNorth:
		return Point{X: 0, Y: -1}
	case DirSouth:
		return Point{X: 0, Y: 1}
	case DirWest:
		return Point{X: -1, Y: 0}
	case DirEast:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirNorth, DirSouth, DirWest, DirEast:
		return Direction(s), true
	default:
		return "", false
	}
}
