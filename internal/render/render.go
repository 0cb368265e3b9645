// Package render rasterizes a sim.Snapshot to a PNG image for debugging and
// offline inspection, grounded on internal/streaming/stream.go's gg.Context
// draw* helpers.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"patika/internal/sim"
)

// Options controls the rasterized image's geometry and palette.
type Options struct {
	Width, Height int
	TileSize      float64
	GridType      sim.GridType
}

// DefaultOptions returns sane defaults for a small debug render.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, TileSize: 24, GridType: sim.GridHex}
}

// factionPalette assigns a stable color per faction byte, bounded to 8
// entries to keep the image legible regardless of how many factions exist.
var factionPalette = [8]color.RGBA{
	{83, 255, 69, 255},
	{255, 149, 0, 255},
	{255, 62, 62, 255},
	{69, 160, 255, 255},
	{200, 69, 255, 255},
	{255, 220, 69, 255},
	{69, 255, 220, 255},
	{160, 160, 160, 255},
}

// WritePNG draws snap onto a fresh canvas sized per opts and writes it to w
// as a PNG.
func WritePNG(w io.Writer, snap sim.Snapshot, opts Options) error {
	dc := gg.NewContext(opts.Width, opts.Height)

	dc.SetColor(color.RGBA{12, 12, 28, 255})
	dc.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	dc.Fill()

	cx := float64(opts.Width) / 2
	cy := float64(opts.Height) / 2

	dc.SetColor(color.RGBA{30, 30, 45, 255})
	dc.SetLineWidth(1)

	for _, b := range snap.Barracks {
		x, y := hexToPixel(b.PosQ, b.PosR, opts.TileSize, opts.GridType)
		dc.DrawRectangle(cx+x-opts.TileSize/2, cy+y-opts.TileSize/2, opts.TileSize, opts.TileSize)
		dc.Stroke()
	}

	for _, a := range snap.Agents {
		x, y := hexToPixel(a.PosQ, a.PosR, opts.TileSize, opts.GridType)
		c := factionPalette[a.Faction%uint8(len(factionPalette))]

		dc.SetColor(color.RGBA{0, 0, 0, 96})
		dc.DrawCircle(cx+x, cy+y+2, opts.TileSize/3)
		dc.Fill()

		dc.SetColor(c)
		dc.DrawCircle(cx+x, cy+y, opts.TileSize/3)
		dc.Fill()

		dc.SetColor(color.White)
		dc.SetLineWidth(1.5)
		dc.DrawCircle(cx+x, cy+y, opts.TileSize/3)
		dc.Stroke()
	}

	dc.SetColor(color.White)
	dc.DrawString(fmt.Sprintf("version %d  agents %d  barracks %d",
		snap.Version, len(snap.Agents), len(snap.Barracks)), 8, float64(opts.Height)-8)

	return dc.EncodePNG(w)
}

// hexToPixel converts axial (q, r) into pixel-space offsets from the canvas
// center, using the pointy-top axial layout for hex grids and a plain
// square layout for rectangular ones.
func hexToPixel(q, r int32, size float64, kind sim.GridType) (float64, float64) {
	if kind == sim.GridRect {
		return float64(q) * size, float64(r) * size
	}
	x := size * (math.Sqrt(3)*float64(q) + math.Sqrt(3)/2*float64(r))
	y := size * (3.0 / 2 * float64(r))
	return x, y
}
