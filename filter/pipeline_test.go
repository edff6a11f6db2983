package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxwalk/heightfield"
)

// curbField builds a 3x3 plaza with a curb strip through the middle,
// rasterized as unwalkable. The curb tops out 2 voxels above the floor.
func curbField(t *testing.T) *heightfield.Heightfield {
	t.Helper()
	hf := newTestField(t, 3, 3)
	for z := int32(0); z < 3; z++ {
		for x := int32(0); x < 3; x++ {
			require.NoError(t, hf.AddSpan(x, z, 0, 1, heightfield.WalkableArea, 1))
			if x == 1 {
				require.NoError(t, hf.AddSpan(x, z, 2, 3, heightfield.NullArea, 1))
			}
		}
	}
	return hf
}

func TestPipelineMatchesManualSequence(t *testing.T) {
	const walkableHeight, walkableClimb = int32(3), int32(2)

	hf := curbField(t)
	manual, err := heightfield.Decode(heightfield.Encode(hf))
	require.NoError(t, err)

	NewPipeline(walkableHeight, walkableClimb).Run(NewContext(), hf)

	ctx := NewContext()
	LowHangingObstacles(ctx, walkableClimb, manual)
	LedgeSpans(ctx, walkableHeight, walkableClimb, manual)
	LowHeightSpans(ctx, walkableHeight, manual)

	assert.Equal(t, allAreas(manual), allAreas(hf))
}

func TestPipelineBridgesCurbBeforeLedge(t *testing.T) {
	hf := curbField(t)
	NewPipeline(3, 2).Run(NewContext(), hf)

	// The interior curb top sits 2 above the surrounding floor: bridged by
	// the first stage and stable enough to survive the ledge stage, so the
	// mesh can flow over the strip. The floor span underneath it loses its
	// headroom.
	assert.Equal(t, []uint8{heightfield.NullArea, heightfield.WalkableArea}, columnAreas(hf, 1, 1))
	// Map-edge floors drop past the climb limit and are ledge-rejected.
	assert.Equal(t, []uint8{heightfield.NullArea}, columnAreas(hf, 0, 1))
}

func TestPipelineStageToggles(t *testing.T) {
	hf := curbField(t)
	before := allAreas(hf)

	NewPipeline(3, 1,
		WithoutLowHanging(),
		WithoutLedge(),
		WithoutLowHeight(),
	).Run(NewContext(), hf)

	assert.Equal(t, before, allAreas(hf), "all stages disabled leaves areas untouched")
}

func TestPipelineWithoutLedgeSkipsLedgeRejection(t *testing.T) {
	hf := newTestField(t, 1, 1)
	require.NoError(t, hf.AddSpan(0, 0, 0, 5, heightfield.WalkableArea, 1))

	NewPipeline(3, 2, WithoutLedge()).Run(NewContext(), hf)

	// With the ledge stage disabled the map-edge drop is never examined.
	assert.Equal(t, []uint8{heightfield.WalkableArea}, columnAreas(hf, 0, 0))
}
