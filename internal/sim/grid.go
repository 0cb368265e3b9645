package sim

// Grid is the spatial map: two parallel preallocated slices (tile state and
// the per-tile reservation word), addressed by a coordinate-to-index mapping
// that depends on GridType. Grounded on original_source/src/patika_map.c for
// the rectangular case and spec.md §4.6 for the hex inscribed-square backing
// store (the original C source never implemented the hex branch), with the
// "parallel preallocated slices, Clear keeps capacity" texture borrowed from
// internal/game/spatial/grid.go.
type Grid struct {
	kind     GridType
	width    int32 // rectangular: width; hex: unused (radius drives stride)
	height   int32 // rectangular: height; hex: unused
	radius   int32 // hex only
	stride   int32 // hex only: 2*radius+1
	tiles    []Tile
	reserve  []uint32
}

// NewGrid builds a rectangular grid of width x height, or a hex grid with
// the given radius (width carries the radius per spec.md §6's "width =
// radius when Hex" configuration note).
func NewGrid(kind GridType, width, height int32) *Grid {
	g := &Grid{kind: kind}
	switch kind {
	case GridRect:
		g.width, g.height = width, height
		n := int(width) * int(height)
		g.tiles = make([]Tile, n)
		g.reserve = make([]uint32, n)
	default: // GridHex
		g.radius = width
		g.stride = 2*width + 1
		n := int(g.stride) * int(g.stride)
		g.tiles = make([]Tile, n)
		g.reserve = make([]uint32, n)
	}
	for i := range g.reserve {
		g.reserve[i] = emptyReservationWord()
	}
	return g
}

// InBounds reports whether (q, r) addresses a real cell of this grid.
func (g *Grid) InBounds(q, r int32) bool {
	switch g.kind {
	case GridRect:
		return q >= 0 && q < g.width && r >= 0 && r < g.height
	default:
		if q < -g.radius || q > g.radius || r < -g.radius || r > g.radius {
			return false
		}
		s := q + r
		return s >= -g.radius && s <= g.radius
	}
}

func (g *Grid) index(q, r int32) int {
	switch g.kind {
	case GridRect:
		return int(r*g.width + q)
	default:
		return int((r+g.radius)*g.stride + (q + g.radius))
	}
}

// TileGet returns the tile at (q, r). Caller must have checked InBounds.
func (g *Grid) TileGet(q, r int32) Tile { return g.tiles[g.index(q, r)] }

// TileSetState writes the static walkability byte of a tile.
func (g *Grid) TileSetState(q, r int32, state uint8) { g.tiles[g.index(q, r)].State = state }

// IsWalkable reports whether the tile's static state is 0 (open).
func (g *Grid) IsWalkable(q, r int32) bool { return g.tiles[g.index(q, r)].State == 0 }

// ReservationGet returns the raw reservation word at (q, r).
func (g *Grid) ReservationGet(q, r int32) uint32 { return g.reserve[g.index(q, r)] }

// ReservationSet writes the raw reservation word at (q, r).
func (g *Grid) ReservationSet(q, r int32, word uint32) { g.reserve[g.index(q, r)] = word }

// ReservationClear sets the reservation word at (q, r) to empty/invalid.
func (g *Grid) ReservationClear(q, r int32) { g.reserve[g.index(q, r)] = emptyReservationWord() }
