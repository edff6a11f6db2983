package filter

import "voxwalk/heightfield"

// Pipeline runs the walkability filters in their mandated order:
// LowHangingObstacles, then LedgeSpans, then LowHeightSpans. LedgeSpans would
// undo bridging if it ran first, so the order is fixed; options only disable
// individual stages, never reorder them.
type Pipeline struct {
	walkableHeight int32
	walkableClimb  int32

	lowHanging bool
	ledge      bool
	lowHeight  bool
}

type Option func(*Pipeline)

// WithoutLowHanging disables the low obstacle bridging stage.
func WithoutLowHanging() Option {
	return func(p *Pipeline) { p.lowHanging = false }
}

// WithoutLedge disables the ledge and steep slope rejection stage.
func WithoutLedge() Option {
	return func(p *Pipeline) { p.ledge = false }
}

// WithoutLowHeight disables the headroom rejection stage.
func WithoutLowHeight() Option {
	return func(p *Pipeline) { p.lowHeight = false }
}

// NewPipeline builds a pipeline with all stages enabled. walkableHeight is
// the minimum vertical clearance for the agent, walkableClimb the maximum
// step it can ascend or descend, both in voxel units.
func NewPipeline(walkableHeight, walkableClimb int32, opts ...Option) *Pipeline {
	p := &Pipeline{
		walkableHeight: walkableHeight,
		walkableClimb:  walkableClimb,
		lowHanging:     true,
		ledge:          true,
		lowHeight:      true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run applies the enabled stages to the heightfield in order.
func (p *Pipeline) Run(ctx *Context, hf *heightfield.Heightfield) {
	mustContext(ctx)
	if p.lowHanging {
		LowHangingObstacles(ctx, p.walkableClimb, hf)
	}
	if p.ledge {
		LedgeSpans(ctx, p.walkableHeight, p.walkableClimb, hf)
	}
	if p.lowHeight {
		LowHeightSpans(ctx, p.walkableHeight, hf)
	}
}
