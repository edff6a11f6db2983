package common

import "cmp"

// IT enumerates the scalar types accepted by the generic helpers below.
type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min returns the smaller of two values.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two values.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Clamp limits value to the range [minInclusive, maxInclusive].
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// GetDirOffsetX gets the standard width (x-axis) offset for the specified
// direction. [Limits: 0 <= direction < 4]
func GetDirOffsetX(direction int32) int32 {
	offset := [4]int32{-1, 0, 1, 0}
	return offset[direction&0x03]
}

// GetDirOffsetZ gets the standard depth (z-axis) offset for the specified
// direction. [Limits: 0 <= direction < 4]
func GetDirOffsetZ(direction int32) int32 {
	offset := [4]int32{0, 1, 0, -1}
	return offset[direction&0x03]
}
