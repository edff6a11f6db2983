package filter

import (
	"voxwalk/common"
	"voxwalk/heightfield"
)

// LowHangingObstacles marks unwalkable spans as walkable when a walkable span
// lies directly below them within walkableClimb. Allows walkable regions to
// flow over low lying objects such as curbs, and up structures such as
// stairways.
//
// Will override the effect of LedgeSpans, so when both filters are used
// LedgeSpans must run after this one.
func LowHangingObstacles(ctx *Context, walkableClimb int32, hf *heightfield.Heightfield) {
	mustContext(ctx)
	defer ctx.Scope(TimerFilterLowObstacles)()

	for z := int32(0); z < hf.Height; z++ {
		for x := int32(0); x < hf.Width; x++ {
			var previous *heightfield.Span
			previousWasWalkable := false
			previousArea := heightfield.NullArea

			for idx := hf.Head(x, z); idx != heightfield.NullSpan; {
				span := hf.SpanAt(idx)
				walkable := span.Walkable()
				// If the current span is not walkable, but there is a
				// walkable span just below it, mark this span walkable too.
				if !walkable && previousWasWalkable {
					if common.Abs(span.Max-previous.Max) <= walkableClimb {
						span.Area = previousArea
					}
				}
				// Copy the original walkable flag so that it cannot propagate
				// past multiple non-walkable objects.
				previousWasWalkable = walkable
				previousArea = span.Area
				previous = span
				idx = span.Next
			}
		}
	}
}

// LedgeSpans marks walkable spans as unwalkable when they sit on a ledge: a
// span with some reachable neighbor whose floor is further than walkableClimb
// below it, or whose reachable-and-climbable neighbor floors spread more than
// walkableClimb between themselves. Removing these keeps the resulting mesh
// from hanging in the air over ledges and from crossing steep terrain.
func LedgeSpans(ctx *Context, walkableHeight, walkableClimb int32, hf *heightfield.Heightfield) {
	mustContext(ctx)
	defer ctx.Scope(TimerFilterLedge)()

	for z := int32(0); z < hf.Height; z++ {
		for x := int32(0); x < hf.Width; x++ {
			for idx := hf.Head(x, z); idx != heightfield.NullSpan; idx = hf.SpanAt(idx).Next {
				span := hf.SpanAt(idx)
				// Skip non-walkable spans.
				if !span.Walkable() {
					continue
				}

				floor := span.Max
				ceiling := int32(heightfield.MaxHeight)
				if c, ok := hf.Ceiling(span); ok {
					ceiling = c
				}

				// Lowest reachable neighbor floor, relative to floor.
				minNeighborHeight := int32(heightfield.MaxHeight)

				// Min and max floor of the neighbors the agent can step to.
				accessibleMin := span.Max
				accessibleMax := span.Max

				for dir := int32(0); dir < 4; dir++ {
					dx := x + common.GetDirOffsetX(dir)
					dz := z + common.GetDirOffsetZ(dir)
					// Past the grid edge every direction counts as a drop of
					// exactly walkableClimb below the floor.
					if dx < 0 || dz < 0 || dx >= hf.Width || dz >= hf.Height {
						minNeighborHeight = common.Min(minNeighborHeight, -walkableClimb-floor)
						continue
					}

					// The open space below the neighbor column's first span.
					neighborFloor := -walkableClimb
					neighborCeiling := int32(heightfield.MaxHeight)
					if head := hf.Head(dx, dz); head != heightfield.NullSpan {
						neighborCeiling = hf.SpanAt(head).Min
					}
					// Only consider the neighbor when the agent fits through
					// the shared clearance.
					if common.Min(ceiling, neighborCeiling)-common.Max(floor, neighborFloor) > walkableHeight {
						minNeighborHeight = common.Min(minNeighborHeight, neighborFloor-floor)
					}

					// The rest of the neighbor column.
					for nIdx := hf.Head(dx, dz); nIdx != heightfield.NullSpan; nIdx = hf.SpanAt(nIdx).Next {
						neighbor := hf.SpanAt(nIdx)
						neighborFloor = neighbor.Max
						neighborCeiling = int32(heightfield.MaxHeight)
						if c, ok := hf.Ceiling(neighbor); ok {
							neighborCeiling = c
						}
						if common.Min(ceiling, neighborCeiling)-common.Max(floor, neighborFloor) > walkableHeight {
							minNeighborHeight = common.Min(minNeighborHeight, neighborFloor-floor)

							// Track the span of climbable neighbor floors.
							if common.Abs(neighborFloor-floor) <= walkableClimb {
								if neighborFloor < accessibleMin {
									accessibleMin = neighborFloor
								}
								if neighborFloor > accessibleMax {
									accessibleMax = neighborFloor
								}
							}
						}
					}
				}

				if minNeighborHeight < -walkableClimb {
					// The drop to some reachable neighbor exceeds the climb
					// limit: the span is a ledge.
					span.Area = heightfield.NullArea
				} else if accessibleMax-accessibleMin > walkableClimb {
					// The reachable floors disagree by more than the climb
					// limit: the span sits on a steep slope.
					span.Area = heightfield.NullArea
				}
			}
		}
	}
}

// LowHeightSpans marks walkable spans as unwalkable when the clearance above
// them is too small for the agent to stand there. The clearance is the
// distance from the span's maximum to the next higher span's minimum in the
// same column.
func LowHeightSpans(ctx *Context, walkableHeight int32, hf *heightfield.Heightfield) {
	mustContext(ctx)
	defer ctx.Scope(TimerFilterWalkable)()

	for z := int32(0); z < hf.Height; z++ {
		for x := int32(0); x < hf.Width; x++ {
			for idx := hf.Head(x, z); idx != heightfield.NullSpan; idx = hf.SpanAt(idx).Next {
				span := hf.SpanAt(idx)
				floor := span.Max
				ceiling := int32(heightfield.MaxHeight)
				if c, ok := hf.Ceiling(span); ok {
					ceiling = c
				}
				if ceiling-floor <= walkableHeight {
					span.Area = heightfield.NullArea
				}
			}
		}
	}
}
