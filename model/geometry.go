package model

// BBox represents a bounding box in image pixel space as corner
// coordinates. The origin is the top-left of the image; X1 <= X2 and
// Y1 <= Y2 for a well-formed box.
type BBox struct {
	X1, Y1, X2, Y2 int
}

// NewBBox creates a bounding box from corner coordinates, normalizing
// the corners so that X1 <= X2 and Y1 <= Y2.
func NewBBox(x1, y1, x2, y2 int) BBox {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the box width in pixels.
func (b BBox) Width() int {
	return b.X2 - b.X1
}

// Height returns the box height in pixels.
func (b BBox) Height() int {
	return b.Y2 - b.Y1
}

// Area returns the area of the bounding box in pixels.
func (b BBox) Area() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero or negative extent
// in either dimension.
func (b BBox) IsEmpty() bool {
	return b.X2 <= b.X1 || b.Y2 <= b.Y1
}

// Expand grows the bounding box by margin pixels on every side.
// A negative margin shrinks the box.
func (b BBox) Expand(margin int) BBox {
	return BBox{
		X1: b.X1 - margin,
		Y1: b.Y1 - margin,
		X2: b.X2 + margin,
		Y2: b.Y2 + margin,
	}
}

// Clamp truncates the bounding box to the rectangle (0, 0, width, height).
// Coordinates never go negative or beyond the given extents; a box fully
// outside the rectangle collapses to an empty box on its edge.
func (b BBox) Clamp(width, height int) BBox {
	return BBox{
		X1: clamp(b.X1, 0, width),
		Y1: clamp(b.Y1, 0, height),
		X2: clamp(b.X2, 0, width),
		Y2: clamp(b.Y2, 0, height),
	}
}

// Intersects checks if two bounding boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return b.X1 < other.X2 && other.X1 < b.X2 &&
		b.Y1 < other.Y2 && other.Y1 < b.Y2
}

// Intersection returns the overlapping region of two bounding boxes,
// or an empty BBox if they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	return BBox{
		X1: max(b.X1, other.X1),
		Y1: max(b.Y1, other.Y1),
		X2: min(b.X2, other.X2),
		Y2: min(b.Y2, other.Y2),
	}
}

// Union returns the smallest bounding box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X1: min(b.X1, other.X1),
		Y1: min(b.Y1, other.Y1),
		X2: max(b.X2, other.X2),
		Y2: max(b.Y2, other.Y2),
	}
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(x, y int) bool {
	return x >= b.X1 && x < b.X2 && y >= b.Y1 && y < b.Y2
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
