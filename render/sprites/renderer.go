package sprites

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/render"
	"golang.org/x/image/font/basicfont"
)

// TopCrop is how much of the highest visible row is hidden, in cells.
const TopCrop = 0.75

// Renderer draws render tiles onto an ebiten image.
type Renderer struct {
	Atlas *Atlas

	// CellSize is the on-screen size of one board cell in pixels.
	CellSize float64
	OriginX  float64
	OriginY  float64

	op   ebiten.DrawImageOptions
	face *text.GoXFace
}

// NewRenderer returns a renderer that draws cells of cellSize pixels.
func NewRenderer(atlas *Atlas, cellSize float64) *Renderer {
	return &Renderer{
		Atlas:    atlas,
		CellSize: cellSize,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Dest returns the top-left corner of grid cell (x, y) in grid units. Row 0
// is at the bottom and the top visible row is cropped by TopCrop.
func Dest(x, y int) (float64, float64) {
	return float64(x), float64(board.VisibleRows-1-y) - TopCrop
}

// Size returns the pixel size of the drawn board.
func (r *Renderer) Size() (int, int) {
	return int(board.Width * r.CellSize), int((board.VisibleRows - TopCrop) * r.CellSize)
}

// Placement returns the pixel position of tile t. Tiles off the visible
// board report false and are not drawn.
func (r *Renderer) Placement(t render.Tile) (float64, float64, bool) {
	if !t.Visible() {
		return 0, 0, false
	}
	gx, gy := Dest(t.X, t.Y)
	return r.OriginX + gx*r.CellSize, r.OriginY + gy*r.CellSize, true
}

// Draw draws the visible tiles in order.
func (r *Renderer) Draw(dst *ebiten.Image, tiles []render.Tile) {
	scale := r.CellSize / render.SpriteSize
	for _, t := range tiles {
		px, py, ok := r.Placement(t)
		if !ok {
			continue
		}

		r.op.GeoM.Reset()
		r.op.GeoM.Scale(scale, scale)
		r.op.GeoM.Translate(px, py)
		r.op.ColorScale.Reset()
		r.op.ColorScale.ScaleWithColor(t.Color)

		dst.DrawImage(r.Atlas.Sprite(t.Sprite), &r.op)
	}
}

// DrawStatistics draws running totals as a text column starting at (x, y).
func (r *Renderer) DrawStatistics(dst *ebiten.Image, stats *drawstate.Statistics, x, y float64) {
	body := fmt.Sprintf(
		"PIECES   %d\nLINES    %d\nSINGLES  %d\nDOUBLES  %d\nTRIPLES  %d\nTETRISES %d\nPERFECT  %d\nCOMBO    %d\nGARBAGE  %d",
		stats.Pieces, stats.Lines, stats.Singles, stats.Doubles, stats.Triples,
		stats.Tetrises, stats.PerfectClears, stats.MaxCombo, stats.GarbageReceived,
	)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = 16
	text.Draw(dst, body, r.face, op)
}
