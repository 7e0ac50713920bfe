package render

import "image"

// Sprite atlas geometry: a square sheet of AtlasSize pixels cut into
// SpriteSize tiles on a SpritePitch grid, each inset by one pixel.
const (
	AtlasSize   = 1024
	SpritePitch = 85
	SpriteSize  = 83
	SpriteInset = 1
)

// Sprite addresses a tile in the atlas by column and row.
type Sprite struct {
	Col, Row int
}

var (
	SpriteEmpty = Sprite{0, 0}
	SpriteBlock = Sprite{1, 0}
	SpriteGhost = Sprite{2, 0}
)

// Rect returns the pixel bounds of the sprite in the atlas.
func (s Sprite) Rect() image.Rectangle {
	x := s.Col*SpritePitch + SpriteInset
	y := s.Row*SpritePitch + SpriteInset
	return image.Rect(x, y, x+SpriteSize, y+SpriteSize)
}

// Index returns a dense integer key for the sprite.
func (s Sprite) Index() int {
	return s.Row*(AtlasSize/SpritePitch) + s.Col
}
