// Package sprites draws render tiles with ebiten from a sprite atlas.
package sprites

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/render"
)

// Atlas hands out sprite sub-images of a sheet laid out as described in
// package render.
type Atlas struct {
	sheet *ebiten.Image
	cache *intmap.Map[int, *ebiten.Image]
}

// NewAtlas wraps a sprite sheet.
func NewAtlas(sheet *ebiten.Image) *Atlas {
	return &Atlas{
		sheet: sheet,
		cache: intmap.New[int, *ebiten.Image](64),
	}
}

// Sprite returns the sub-image for s. Sub-images are created once and reused.
func (a *Atlas) Sprite(s render.Sprite) *ebiten.Image {
	key := s.Index()
	if img, ok := a.cache.Get(key); ok {
		return img
	}
	img := a.sheet.SubImage(s.Rect()).(*ebiten.Image)
	a.cache.Put(key, img)
	return img
}

// Cached returns how many sub-images have been created.
func (a *Atlas) Cached() int {
	return a.cache.Len()
}

// GenerateAtlas paints a plain sprite sheet: white tiles meant to be tinted
// by the cell color, and a fading set of line clear frames.
func GenerateAtlas() *ebiten.Image {
	sheet := ebiten.NewImage(render.AtlasSize, render.AtlasSize)

	drawEmpty(sheet, render.SpriteEmpty)
	drawBlock(sheet, render.SpriteBlock)
	drawGhost(sheet, render.SpriteGhost)

	for frame := 0; frame < render.FlashFrames; frame++ {
		fade := 1 - float32(frame)/float32(render.FlashFrames)
		drawFlash(sheet, render.FlashSprite(frame, 0), fade, -1)
		drawFlash(sheet, render.FlashSprite(frame, 1), fade, 0)
		drawFlash(sheet, render.FlashSprite(frame, board.Width-1), fade, 1)
	}

	return sheet
}

func origin(s render.Sprite) (float32, float32) {
	r := s.Rect()
	return float32(r.Min.X), float32(r.Min.Y)
}

func drawEmpty(sheet *ebiten.Image, s render.Sprite) {
	x, y := origin(s)
	vector.DrawFilledRect(sheet, x, y, render.SpriteSize, render.SpriteSize, color.RGBA{16, 16, 16, 255}, false)
	vector.StrokeRect(sheet, x+1, y+1, render.SpriteSize-2, render.SpriteSize-2, 2, color.RGBA{40, 40, 40, 255}, false)
}

func drawBlock(sheet *ebiten.Image, s render.Sprite) {
	x, y := origin(s)
	vector.DrawFilledRect(sheet, x, y, render.SpriteSize, render.SpriteSize, color.White, false)
	vector.StrokeRect(sheet, x+3, y+3, render.SpriteSize-6, render.SpriteSize-6, 6, color.RGBA{200, 200, 200, 255}, false)
}

func drawGhost(sheet *ebiten.Image, s render.Sprite) {
	x, y := origin(s)
	vector.StrokeRect(sheet, x+4, y+4, render.SpriteSize-8, render.SpriteSize-8, 8, color.RGBA{255, 255, 255, 160}, false)
}

// drawFlash paints one flash tile; edge is -1 for the left cap, 1 for the
// right cap and 0 for the middle.
func drawFlash(sheet *ebiten.Image, s render.Sprite, fade float32, edge int) {
	x, y := origin(s)
	a := uint8(255 * fade)
	clr := color.RGBA{a, a, a, a}

	inset := float32(render.SpriteSize) * (1 - fade) / 2
	w := float32(render.SpriteSize)
	switch edge {
	case -1:
		x += inset
		w -= inset
	case 1:
		w -= inset
	}
	vector.DrawFilledRect(sheet, x, y+inset, w, render.SpriteSize-2*inset, clr, false)
}
