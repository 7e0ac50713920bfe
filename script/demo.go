package script

import "github.com/plus3/stackview/event"

// Demo is a short script that shows a double, a perfect clear, a garbage
// burst answered by a tetris, and a few pieces left standing.
func Demo() Script {
	return Script{
		{Shape: event.ShapeO, Column: 0},
		{Shape: event.ShapeO, Column: 2},
		{Shape: event.ShapeO, Column: 4},
		{Shape: event.ShapeO, Column: 6},
		{Shape: event.ShapeI, Rotation: 1, Column: 8},
		{Shape: event.ShapeI, Rotation: 1, Column: 9},

		{Shape: event.ShapeO, Column: 0},
		{Shape: event.ShapeO, Column: 2},
		{Shape: event.ShapeO, Column: 4},
		{Shape: event.ShapeO, Column: 6},

		{Garbage: []int{4, 4, 4, 4}},
		{Shape: event.ShapeI, Rotation: 1, Column: 4},

		{Garbage: []int{7, 2}},
		{Shape: event.ShapeT, Column: 0},
		{Shape: event.ShapeL, Column: 3},
		{Shape: event.ShapeJ, Rotation: 2, Column: 6},
		{Shape: event.ShapeS, Column: 4},
		{Shape: event.ShapeZ, Rotation: 1, Column: 8},
	}
}
