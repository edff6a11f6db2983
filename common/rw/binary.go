package rw

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// ReaderWriter reads and writes little-endian binary snapshot data. Reads
// past the end of the buffer record a sticky error and yield zero values;
// callers check Err once after the last read.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
	err     error
}

func NewBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewBinReader(data []byte) *ReaderWriter {
	r := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	r.rw.Write(data)
	return r
}

// Err reports the first short read encountered, if any.
func (w *ReaderWriter) Err() error {
	return w.err
}

func (w *ReaderWriter) readFull(n int) []byte {
	buf := w.dataBuf[:n]
	if w.err != nil {
		clear(buf)
		return buf
	}
	if _, err := io.ReadFull(&w.rw, buf); err != nil {
		w.err = err
		clear(buf)
	}
	return buf
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	return w.readFull(1)[0]
}

func (w *ReaderWriter) ReadUInt16() uint16 {
	return w.order.Uint16(w.readFull(2))
}

func (w *ReaderWriter) ReadInt32() int32 {
	return int32(w.order.Uint32(w.readFull(4)))
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.order.Uint32(w.readFull(4)))
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

func (w *ReaderWriter) WriteUInt8(v uint8) {
	w.rw.WriteByte(v)
}

func (w *ReaderWriter) WriteUInt16(v uint16) {
	w.order.PutUint16(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteInt32(v int32) {
	w.order.PutUint32(w.dataBuf, uint32(v))
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32(v float32) {
	w.order.PutUint32(w.dataBuf, math.Float32bits(v))
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32s(v []float32) {
	for _, tmp := range v {
		w.WriteFloat32(tmp)
	}
}

func (w *ReaderWriter) Bytes() []byte {
	return w.rw.Bytes()
}

func (w *ReaderWriter) Size() int {
	return w.rw.Len()
}
