package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(2, 0, 1), "higher than range")
	assert.Equal(t, 1, Clamp(1, 0, 2), "within range")
	assert.Equal(t, 1, Clamp(0, 1, 2), "lower than range")
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int32(4), Abs(int32(-4)))
	assert.Equal(t, int32(4), Abs(int32(4)))
	assert.Equal(t, int32(0), Abs(int32(0)))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, int32(-3), Min(int32(-3), 7))
	assert.Equal(t, int32(7), Max(int32(-3), 7))
	assert.Equal(t, uint8(63), Max(uint8(5), uint8(63)))
}

func TestDirOffsetsCoverCardinalNeighbors(t *testing.T) {
	seen := map[[2]int32]bool{}
	for dir := int32(0); dir < 4; dir++ {
		dx := GetDirOffsetX(dir)
		dz := GetDirOffsetZ(dir)
		assert.Equal(t, int32(1), Abs(dx)+Abs(dz), "offsets are unit steps")
		seen[[2]int32{dx, dz}] = true
	}
	assert.Len(t, seen, 4, "all four directions distinct")
}
