package heightfield

import (
	"errors"
	"fmt"

	"voxwalk/common/rw"
)

// Snapshot layout (little endian): magic, version, width, height, bmin, bmax,
// cell size, cell height, total span count, then per column a span count
// followed by (min, max, area) triples bottom to top.
const (
	snapshotMagic   = int32('V')<<24 | int32('W')<<16 | int32('H')<<8 | int32('F')
	snapshotVersion = int32(1)
)

var (
	ErrBadMagic        = errors.New("heightfield: not a heightfield snapshot")
	ErrBadVersion      = errors.New("heightfield: unsupported snapshot version")
	ErrCorruptSnapshot = errors.New("heightfield: corrupt snapshot")
)

// Encode serializes the heightfield to its snapshot form.
func Encode(hf *Heightfield) []byte {
	w := rw.NewBinWriter()
	w.WriteInt32(snapshotMagic)
	w.WriteInt32(snapshotVersion)
	w.WriteInt32(hf.Width)
	w.WriteInt32(hf.Height)
	w.WriteFloat32s(hf.BMin[:])
	w.WriteFloat32s(hf.BMax[:])
	w.WriteFloat32(hf.CellSize)
	w.WriteFloat32(hf.CellHeight)
	w.WriteInt32(hf.count)

	for z := int32(0); z < hf.Height; z++ {
		for x := int32(0); x < hf.Width; x++ {
			n := int32(0)
			for idx := hf.Head(x, z); idx != NullSpan; idx = hf.spans[idx].Next {
				n++
			}
			w.WriteInt32(n)
			for idx := hf.Head(x, z); idx != NullSpan; idx = hf.spans[idx].Next {
				s := &hf.spans[idx]
				w.WriteInt32(s.Min)
				w.WriteInt32(s.Max)
				w.WriteUInt8(s.Area)
			}
		}
	}
	return w.Bytes()
}

// Decode rebuilds a heightfield from snapshot bytes. It validates the magic,
// the version, and the per-column ordering invariant, since snapshots are the
// one place spans enter from outside the rasterizer.
func Decode(data []byte) (*Heightfield, error) {
	r := rw.NewBinReader(data)
	if r.ReadInt32() != snapshotMagic {
		return nil, ErrBadMagic
	}
	if v := r.ReadInt32(); v != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}

	width := r.ReadInt32()
	height := r.ReadInt32()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrCorruptSnapshot, width, height)
	}
	var bmin, bmax [3]float32
	r.ReadFloat32s(bmin[:])
	r.ReadFloat32s(bmax[:])
	cellSize := r.ReadFloat32()
	cellHeight := r.ReadFloat32()
	total := r.ReadInt32()

	hf := New(width, height, bmin, bmax, cellSize, cellHeight)
	decoded := int32(0)
	for z := int32(0); z < height; z++ {
		for x := int32(0); x < width; x++ {
			n := r.ReadInt32()
			if n < 0 || decoded+n > total {
				return nil, fmt.Errorf("%w: column (%d, %d)", ErrCorruptSnapshot, x, z)
			}
			tail := NullSpan
			prevMax := int32(0)
			for i := int32(0); i < n; i++ {
				smin := r.ReadInt32()
				smax := r.ReadInt32()
				area := r.ReadUInt8()
				if smin < 0 || smax > MaxSpanHeight || smin > smax || (i > 0 && smin < prevMax) {
					return nil, fmt.Errorf("%w: span order in column (%d, %d)", ErrCorruptSnapshot, x, z)
				}
				prevMax = smax

				idx := hf.allocSpan()
				s := &hf.spans[idx]
				s.Min = smin
				s.Max = smax
				s.Area = area
				s.Next = NullSpan
				if tail == NullSpan {
					hf.columns[x+z*width] = idx
				} else {
					hf.spans[tail].Next = idx
				}
				tail = idx
			}
			decoded += n
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if decoded != total {
		return nil, fmt.Errorf("%w: span count %d != %d", ErrCorruptSnapshot, decoded, total)
	}
	return hf, nil
}
