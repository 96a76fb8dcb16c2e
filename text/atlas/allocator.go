package atlas

import "image"

// SlotAllocator hands out fixed-size cells of a one-column strip, top to
// bottom. Every glyph of an atlas shares the same cell size, so packing is a
// counter; the strip layout keeps a slot's texture row a pure function of
// its index.
type SlotAllocator struct {
	width  int // Cell width (and strip width)
	height int // Cell height, padding included
	slots  int // Number of cells in the strip
	next   int // Next cell index
}

// NewSlotAllocator creates an allocator for a strip of n cells.
func NewSlotAllocator(width, height, n int) *SlotAllocator {
	if n < 0 {
		n = 0
	}
	return &SlotAllocator{
		width:  width,
		height: height,
		slots:  n,
	}
}

// Allocate returns the rectangle of the next free cell.
// Returns an empty rectangle and false if the strip is full.
func (a *SlotAllocator) Allocate() (image.Rectangle, bool) {
	if a.next >= a.slots {
		return image.Rectangle{}, false
	}
	r := a.Rect(a.next)
	a.next++
	return r, true
}

// Rect returns the rectangle of cell i, allocated or not.
func (a *SlotAllocator) Rect(i int) image.Rectangle {
	y := i * a.height
	return image.Rect(0, y, a.width, y+a.height)
}

// Capacity returns the number of cells in the strip.
func (a *SlotAllocator) Capacity() int {
	return a.slots
}

// Allocated returns the number of cells handed out.
func (a *SlotAllocator) Allocated() int {
	return a.next
}

// IsFull returns true if no more cells can be allocated.
func (a *SlotAllocator) IsFull() bool {
	return a.next >= a.slots
}

// Bounds returns the size of the whole strip.
func (a *SlotAllocator) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.width, a.slots*a.height)
}
