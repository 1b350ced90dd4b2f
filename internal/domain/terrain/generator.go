package terrain

import (
	"math/rand"

	"ashfall/internal/domain/world"
)

const (
	wastelandBlotches = 100
	ruinsBuildings    = 8
	ruinsWallChance   = 0.7
	ruinsRubble       = 50
	forestTrees       = 150
	forestClearings   = 5
	caveOpenChance    = 0.45
	caveSmoothPasses  = 3
	caveSafeRegion    = 11
	settlementStones  = 20
	labCorridorPeriod = 8
	labCorridorWidth  = 3
	labOpenings       = 30
	exitStripHalf     = 1
	exitStripDepth    = 3
)

// Generate fills a tile grid for the given biome. It is a pure function
// of its arguments: the only randomness source is a generator seeded
// from the zone seed, so identical inputs always produce an identical
// grid.
func Generate(biome world.Biome, seed int64, width, height int) *world.Grid {
	rng := rand.New(rand.NewSource(seed))
	switch biome {
	case world.BiomeWasteland:
		return generateWasteland(rng, width, height)
	case world.BiomeRuins:
		return generateRuins(rng, width, height)
	case world.BiomeForest:
		return generateForest(rng, width, height)
	case world.BiomeCave:
		return generateCave(rng, width, height)
	case world.BiomeSettlement:
		return generateSettlement(rng, width, height)
	case world.BiomeLaboratory:
		return generateLaboratory(rng, width, height)
	default:
		// Unknown biomes are rejected at graph construction; a flat
		// dirt field keeps generation total if one slips through.
		return world.NewGrid(width, height, world.TileDirt)
	}
}

// GenerateForZone generates terrain for the zone and clears a walkable
// strip at every exit so generated obstructions never block a doorway.
func GenerateForZone(z *world.ZoneRecord) *world.Grid {
	g := Generate(z.Biome, z.Seed, z.Width, z.Height)
	for _, edge := range z.Exits {
		clearExitStrip(g, edge.Direction, baseTile(z.Biome))
	}
	return g
}

func baseTile(biome world.Biome) world.TileKind {
	switch biome {
	case world.BiomeWasteland:
		return world.TileDirt
	case world.BiomeForest, world.BiomeSettlement:
		return world.TileGrass
	default:
		return world.TileStone
	}
}

func generateWasteland(rng *rand.Rand, width, height int) *world.Grid {
	g := world.NewGrid(width, height, world.TileDirt)
	for i := 0; i < wastelandBlotches; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		if rng.Intn(2) == 0 {
			g.Set(x, y, world.TileSand)
		} else {
			g.Set(x, y, world.TileStone)
		}
	}
	pools := 2 + rng.Intn(3)
	for i := 0; i < pools; i++ {
		carveDisc(g, rng.Intn(width), rng.Intn(height), 2+rng.Intn(3), world.TileWater)
	}
	return g
}

func generateRuins(rng *rand.Rand, width, height int) *world.Grid {
	g := world.NewGrid(width, height, world.TileStone)
	for i := 0; i < ruinsBuildings; i++ {
		bw := 4 + rng.Intn(6)
		bh := 4 + rng.Intn(5)
		if width <= bw+2 || height <= bh+2 {
			continue
		}
		x0 := 1 + rng.Intn(width-bw-1)
		y0 := 1 + rng.Intn(height-bh-1)
		stampBrokenPerimeter(g, rng, x0, y0, bw, bh)
	}
	for i := 0; i < ruinsRubble; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		if g.At(x, y) != world.TileStoneWall {
			g.Set(x, y, world.TileDirt)
		}
	}
	return g
}

// stampBrokenPerimeter lays a rectangular wall outline with each
// segment independently present, producing broken, explorable ruins.
func stampBrokenPerimeter(g *world.Grid, rng *rand.Rand, x0, y0, w, h int) {
	for x := x0; x < x0+w; x++ {
		if rng.Float64() < ruinsWallChance {
			g.Set(x, y0, world.TileStoneWall)
		}
		if rng.Float64() < ruinsWallChance {
			g.Set(x, y0+h-1, world.TileStoneWall)
		}
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		if rng.Float64() < ruinsWallChance {
			g.Set(x0, y, world.TileStoneWall)
		}
		if rng.Float64() < ruinsWallChance {
			g.Set(x0+w-1, y, world.TileStoneWall)
		}
	}
}

func generateForest(rng *rand.Rand, width, height int) *world.Grid {
	g := world.NewGrid(width, height, world.TileGrass)
	for i := 0; i < forestTrees; i++ {
		g.Set(rng.Intn(width), rng.Intn(height), world.TileTree)
	}
	for i := 0; i < forestClearings; i++ {
		carveDisc(g, rng.Intn(width), rng.Intn(height), 2+rng.Intn(3), world.TileGrass)
	}
	return g
}

func generateCave(rng *rand.Rand, width, height int) *world.Grid {
	g := world.NewGrid(width, height, world.TileStoneWall)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if rng.Float64() < caveOpenChance {
				g.Set(x, y, world.TileStone)
			}
		}
	}
	for pass := 0; pass < caveSmoothPasses; pass++ {
		g = smoothCave(g)
	}
	forceOpenCentre(g)
	return g
}

// smoothCave runs one cellular-automaton pass: a tile becomes wall when
// five or more of its eight neighbors are wall, with the grid edge
// counting as wall.
func smoothCave(g *world.Grid) *world.Grid {
	width, height := g.Width(), g.Height()
	next := world.NewGrid(width, height, world.TileStoneWall)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !g.InBounds(nx, ny) || g.At(nx, ny) == world.TileStoneWall {
						walls++
					}
				}
			}
			if walls >= 5 {
				next.Set(x, y, world.TileStoneWall)
			} else {
				next.Set(x, y, world.TileStone)
			}
		}
	}
	return next
}

// forceOpenCentre guarantees an open square region at the grid centre so
// a degenerate automaton outcome cannot seal the map.
func forceOpenCentre(g *world.Grid) {
	cx, cy := g.Width()/2, g.Height()/2
	half := caveSafeRegion / 2
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			g.Set(x, y, world.TileStone)
		}
	}
}

func generateSettlement(rng *rand.Rand, width, height int) *world.Grid {
	g := world.NewGrid(width, height, world.TileGrass)
	for x := 0; x < width; x++ {
		g.Set(x, height/2-1, world.TileDirt)
		g.Set(x, height/2, world.TileDirt)
	}
	for y := 0; y < height; y++ {
		g.Set(width/2-1, y, world.TileDirt)
		g.Set(width/2, y, world.TileDirt)
	}
	for i := 0; i < settlementStones; i++ {
		g.Set(rng.Intn(width), rng.Intn(height), world.TileStone)
	}
	return g
}

func generateLaboratory(rng *rand.Rand, width, height int) *world.Grid {
	g := world.NewGrid(width, height, world.TileStoneWall)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x%labCorridorPeriod < labCorridorWidth || y%labCorridorPeriod < labCorridorWidth {
				g.Set(x, y, world.TileStone)
			}
		}
	}
	for i := 0; i < labOpenings; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		if g.At(x, y) == world.TileStoneWall {
			g.Set(x, y, world.TileStone)
		}
	}
	return g
}

func carveDisc(g *world.Grid, cx, cy, radius int, kind world.TileKind) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				g.Set(x, y, kind)
			}
		}
	}
}

// clearExitStrip opens a 3-tile-wide walkable strip centred on the
// boundary midpoint, pushed a few tiles into the zone so arriving
// travelers are never boxed in by generated obstructions.
func clearExitStrip(g *world.Grid, dir world.Direction, kind world.TileKind) {
	width, height := g.Width(), g.Height()
	switch dir {
	case world.DirNorth:
		mid := width / 2
		for x := mid - exitStripHalf; x <= mid+exitStripHalf; x++ {
			for y := 0; y < exitStripDepth; y++ {
				g.Set(x, y, kind)
			}
		}
	case world.DirSouth:
		mid := width / 2
		for x := mid - exitStripHalf; x <= mid+exitStripHalf; x++ {
			for y := height - exitStripDepth; y < height; y++ {
				g.Set(x, y, kind)
			}
		}
	case world.DirWest:
		mid := height / 2
		for y := mid - exitStripHalf; y <= mid+exitStripHalf; y++ {
			for x := 0; x < exitStripDepth; x++ {
				g.Set(x, y, kind)
			}
		}
	case world.DirEast:
		mid := height / 2
		for y := mid - exitStripHalf; y <= mid+exitStripHalf; y++ {
			for x := width - exitStripDepth; x < width; x++ {
				g.Set(x, y, kind)
			}
		}
	}
}
