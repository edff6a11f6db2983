// Package heightfield holds the voxelized column structure the walkability
// filters operate on. Spans live in an index-addressed arena so a full build
// never allocates per span; columns store the index of their lowest span.
package heightfield

const (
	// SpansPerPool is the number of spans the arena grows by at a time.
	SpansPerPool = 2048
	// SpanHeightBits is the number of bits used to store span height limits.
	SpanHeightBits = 13
	// MaxSpanHeight is the maximum value for Span.Min and Span.Max.
	MaxSpanHeight = (1 << SpanHeightBits) - 1
	// MaxHeight is the height an unbounded ceiling resolves to.
	MaxHeight = 0xffff
)

const (
	// NullArea marks a span that is not walkable. When a span is given this
	// value it is considered to no longer be assigned to a usable area.
	NullArea uint8 = 0
	// WalkableArea is the default area id for walkable surfaces. This is also
	// the maximum allowed area id.
	WalkableArea uint8 = 63
)

// SpanIdx addresses a span inside the heightfield arena.
type SpanIdx int32

// NullSpan marks an empty column or the top of a column.
const NullSpan SpanIdx = -1

// Span is one solid vertical interval of a column.
type Span struct {
	Min  int32   // lower limit [Limit: < Max]
	Max  int32   // upper limit [Limit: <= MaxSpanHeight]
	Area uint8   // area id, NullArea when not walkable
	Next SpanIdx // next span up the column, NullSpan at the top
}

// Walkable reports whether the span carries a walkable area id.
func (s *Span) Walkable() bool {
	return s.Area != NullArea
}
