package cursor

import "github.com/gogpu/texter/layout"

// PositionOf returns the screen position of cursor index i: the recorded pen
// position of code i, or res.End for the end-of-text index. Out-of-range
// indices are clamped.
func PositionOf(i int, res layout.Result) layout.Vec2 {
	if i < 0 {
		i = 0
	}
	if i >= len(res.Positions) {
		return res.End
	}
	return res.Positions[i]
}

// Move returns the index whose position is nearest to the position of index
// offset vertically by dy. Ties resolve to the lowest index. An empty layout
// always yields 0.
func Move(index int, dy float32, res layout.Result) int {
	if len(res.Positions) == 0 {
		return 0
	}
	target := PositionOf(index, res).Add(layout.V2(0, dy))

	best := 0
	bestDist := res.Positions[0].DistanceSq(target)
	for i, p := range res.Positions[1:] {
		if d := p.DistanceSq(target); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

// Insert puts r into buf at index and returns the new cursor index.
//
// A Backspace code is inserted like any other; the next layout pass removes
// it together with the code before it, so the returned index already points
// one to the left.
func Insert(index int, r rune, buf *layout.Buffer) (int, error) {
	index = clamp(index, buf.Len())

	var err error
	if index == buf.Len() {
		err = buf.Append(r)
	} else {
		err = buf.Insert(index, r)
	}
	if err != nil {
		return index, err
	}

	if isBackspace(r) {
		return max(index-1, 0), nil
	}
	return min(index+1, buf.Len()), nil
}

// Delete removes the code before index and returns the new cursor index.
func Delete(index int, buf *layout.Buffer) int {
	index = clamp(index, buf.Len())
	if index > 0 {
		buf.Remove(index - 1)
	}
	return max(index-1, 0)
}

// Step moves the cursor one unit in dir. Up is +Y. The buffer is never
// touched.
func Step(index int, dir layout.Direction, slotHeight float32, res layout.Result) int {
	n := len(res.Positions)
	switch dir {
	case layout.DirLeft:
		return clamp(index-1, n)
	case layout.DirRight:
		return clamp(index+1, n)
	case layout.DirUp:
		return Move(index, slotHeight, res)
	case layout.DirDown:
		return Move(index, -slotHeight, res)
	default:
		return clamp(index, n)
	}
}

func clamp(i, n int) int {
	return max(0, min(i, n))
}

func isBackspace(r rune) bool {
	return r == layout.Backspace || r == layout.Delete
}
