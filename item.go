// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// Point is a location on the board, in virtual pixels.
type Point struct {
	X, Y float64
}

// Size is the extent of an item.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle. Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectAt returns a rectangle of size s centered on p.
func RectAt(p Point, s Size) Rect {
	return Rect{
		Min: Point{p.X - s.W/2, p.Y - s.H/2},
		Max: Point{p.X + s.W/2, p.Y + s.H/2},
	}
}

// Contains reports whether p lies in r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// An Item is anything that can be placed on a board.
//
// Accept must call exactly one method of the visitor: the one matching the
// item's concrete kind.
type Item interface {
	ID() string
	Position() Point
	SetPosition(p Point)
	// Bounds returns the area covered by the item.
	Bounds() Rect
	Accept(v ItemVisitor) error
}

// itemBase implements the position and bounds part of Item.
type itemBase struct {
	id   string
	pos  Point
	size Size
}

func (b *itemBase) ID() string { return b.id }
func (b *itemBase) Position() Point { return b.pos }
func (b *itemBase) SetPosition(p Point) { b.pos = p }
func (b *itemBase) Bounds() Rect { return RectAt(b.pos, b.size) }

// Size returns the extent of the item.
func (b *itemBase) Size() Size { return b.size }

// SetSize changes the extent of the item.
func (b *itemBase) SetSize(s Size) { b.size = s }
