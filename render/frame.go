package render

import "github.com/plus3/stackview/board"

const (
	// FlashFrames is the number of distinct line clear frames. The
	// animation holds on the last one.
	FlashFrames = 36

	// FlashRows is how many frames are stacked in one atlas column.
	FlashRows = 12
)

// FramePair maps a line clear frame counter to the atlas column group and
// row of its animation frame.
func FramePair(frame int) (fx, fy int) {
	f := min(frame, FlashFrames-1)
	return f / FlashRows, f % FlashRows
}

// FlashSprite returns the sprite for column x of a flashing row. The two
// edge columns have their own caps.
func FlashSprite(frame, x int) Sprite {
	fx, fy := FramePair(frame)
	col := fx*3 + 4
	switch x {
	case 0:
		col = fx*3 + 3
	case board.Width - 1:
		col = fx*3 + 5
	}
	return Sprite{Col: col, Row: fy}
}
