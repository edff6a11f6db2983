package heightfield

import (
	"errors"
	"fmt"

	"voxwalk/common"
)

// ErrOutOfGrid reports a span insertion outside the grid bounds.
var ErrOutOfGrid = errors.New("heightfield: column out of grid")

// Heightfield is a dynamic heightfield representing obstructed space: a
// Width×Height grid of columns, each an ascending list of non-overlapping
// spans. The heightfield exclusively owns every span; the filters only ever
// mutate area ids.
type Heightfield struct {
	Width  int32 // the width of the heightfield (along the x-axis in cell units)
	Height int32 // the height of the heightfield (along the z-axis in cell units)

	BMin, BMax [3]float32 // bounds in world space

	CellSize   float32 // the size of each cell on the xz-plane
	CellHeight float32 // the height increment along the y-axis

	columns  []SpanIdx // per-column head span, width*height entries
	spans    []Span    // arena of span records, grown a page at a time
	freelist SpanIdx   // head of the free span chain
	count    int32     // live spans
}

// New returns an empty heightfield covering the given grid and world bounds.
func New(width, height int32, bmin, bmax [3]float32, cellSize, cellHeight float32) *Heightfield {
	hf := &Heightfield{
		Width:      width,
		Height:     height,
		BMin:       bmin,
		BMax:       bmax,
		CellSize:   cellSize,
		CellHeight: cellHeight,
		columns:    make([]SpanIdx, width*height),
		freelist:   NullSpan,
	}
	for i := range hf.columns {
		hf.columns[i] = NullSpan
	}
	return hf
}

// Head returns the lowest span of column (x, z), or NullSpan when the column
// is empty.
func (hf *Heightfield) Head(x, z int32) SpanIdx {
	return hf.columns[x+z*hf.Width]
}

// SpanAt resolves an arena index to its span record. The pointer stays valid
// until the next AddSpan call.
func (hf *Heightfield) SpanAt(idx SpanIdx) *Span {
	return &hf.spans[idx]
}

// Ceiling returns the lower limit of the span above s. The second result is
// false when s is the topmost span of its column and its ceiling is
// unbounded; callers resolve that case to MaxHeight themselves.
func (hf *Heightfield) Ceiling(s *Span) (int32, bool) {
	if s.Next == NullSpan {
		return 0, false
	}
	return hf.spans[s.Next].Min, true
}

// SpanCount returns the number of live spans across all columns.
func (hf *Heightfield) SpanCount() int32 {
	return hf.count
}

// WalkableSpanCount returns the number of live spans with a walkable area id.
func (hf *Heightfield) WalkableSpanCount() int32 {
	n := int32(0)
	for z := int32(0); z < hf.Height; z++ {
		for x := int32(0); x < hf.Width; x++ {
			for idx := hf.Head(x, z); idx != NullSpan; idx = hf.spans[idx].Next {
				if hf.spans[idx].Walkable() {
					n++
				}
			}
		}
	}
	return n
}

// allocSpan pops a record off the freelist, growing the arena by one page
// when the chain is empty.
func (hf *Heightfield) allocSpan() SpanIdx {
	if hf.freelist == NullSpan {
		base := SpanIdx(len(hf.spans))
		hf.spans = append(hf.spans, make([]Span, SpansPerPool)...)
		// Thread the new page onto the freelist back to front so spans hand
		// out in ascending index order.
		for i := SpanIdx(SpansPerPool) - 1; i >= 0; i-- {
			hf.spans[base+i].Next = hf.freelist
			hf.freelist = base + i
		}
	}
	idx := hf.freelist
	hf.freelist = hf.spans[idx].Next
	hf.count++
	return idx
}

// freeSpan returns the record to the freelist so it can be re-used.
func (hf *Heightfield) freeSpan(idx SpanIdx) {
	hf.spans[idx].Next = hf.freelist
	hf.freelist = idx
	hf.count--
}

// AddSpan inserts the interval [smin, smax] into column (x, z), merging it
// with any overlapping spans so the column stays ascending and
// non-overlapping. When a merged span's maximum extent is within
// flagMergeThreshold of the new span's, the higher area id wins.
func (hf *Heightfield) AddSpan(x, z, smin, smax int32, area uint8, flagMergeThreshold int32) error {
	if x < 0 || z < 0 || x >= hf.Width || z >= hf.Height {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfGrid, x, z)
	}

	newIdx := hf.allocSpan()
	newSpan := &hf.spans[newIdx]
	newSpan.Min = common.Clamp(smin, 0, MaxSpanHeight)
	newSpan.Max = common.Clamp(smax, 0, MaxSpanHeight)
	newSpan.Area = area
	newSpan.Next = NullSpan

	column := x + z*hf.Width
	previous := NullSpan
	current := hf.columns[column]

	// Insert the new span, merging away everything it overlaps.
	for current != NullSpan {
		cur := &hf.spans[current]
		if cur.Min > newSpan.Max {
			// Current span is completely above the new span.
			break
		}
		if cur.Max < newSpan.Min {
			// Current span is completely below the new span, keep going.
			previous = current
			current = cur.Next
			continue
		}

		// Overlap, merge the current span into the new one.
		if cur.Min < newSpan.Min {
			newSpan.Min = cur.Min
		}
		if cur.Max > newSpan.Max {
			newSpan.Max = cur.Max
		}
		if common.Abs(newSpan.Max-cur.Max) <= flagMergeThreshold {
			// Higher area ids take priority when the tops nearly coincide.
			newSpan.Area = common.Max(newSpan.Area, cur.Area)
		}

		next := cur.Next
		hf.freeSpan(current)
		if previous != NullSpan {
			hf.spans[previous].Next = next
		} else {
			hf.columns[column] = next
		}
		current = next
	}

	if previous != NullSpan {
		newSpan.Next = hf.spans[previous].Next
		hf.spans[previous].Next = newIdx
	} else {
		newSpan.Next = hf.columns[column]
		hf.columns[column] = newIdx
	}
	return nil
}
