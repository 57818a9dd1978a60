package rw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReaderWriter reads or writes fixed size little endian values. Reads keep the
// first error and turn every later read into a zero value, so callers check
// Err once after decoding a whole record.
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
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

// Err returns the first read error, if any.
func (w *ReaderWriter) Err() error {
	return w.err
}

func (w *ReaderWriter) read(n int) []byte {
	if w.err != nil {
		return nil
	}
	buf := w.dataBuf[:n]
	if _, err := io.ReadFull(&w.rw, buf); err != nil {
		w.err = fmt.Errorf("read %d bytes: %w", n, io.ErrUnexpectedEOF)
		return nil
	}
	return buf
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	buf := w.read(1)
	if buf == nil {
		return 0
	}
	return buf[0]
}

func (w *ReaderWriter) ReadUInt16() uint16 {
	buf := w.read(2)
	if buf == nil {
		return 0
	}
	return w.order.Uint16(buf)
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	buf := w.read(4)
	if buf == nil {
		return 0
	}
	return w.order.Uint32(buf)
}

func (w *ReaderWriter) ReadInt32() int32 {
	return int32(w.ReadUInt32())
}

func (w *ReaderWriter) ReadInt32s(value []int32) {
	for i := range value {
		value[i] = w.ReadInt32()
	}
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

// ReadBytes reads exactly n raw bytes.
func (w *ReaderWriter) ReadBytes(n int) []byte {
	if w.err != nil {
		return nil
	}
	res := make([]byte, n)
	if _, err := io.ReadFull(&w.rw, res); err != nil {
		w.err = fmt.Errorf("read %d bytes: %w", n, io.ErrUnexpectedEOF)
		return nil
	}
	return res
}

func (w *ReaderWriter) WriteUInt8(v uint8) {
	w.rw.WriteByte(v)
}

func (w *ReaderWriter) WriteUInt16(v uint16) {
	w.order.PutUint16(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteUInt32(v uint32) {
	w.order.PutUint32(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteInt32(v interface{}) {
	switch value := v.(type) {
	case int32:
		w.WriteUInt32(uint32(value))
	case int:
		w.WriteUInt32(uint32(int32(value)))
	case uint32:
		w.WriteUInt32(value)
	default:
		panic(fmt.Sprintf("rw: WriteInt32 of %T", v))
	}
}

func (w *ReaderWriter) WriteInt32s(v interface{}) {
	switch value := v.(type) {
	case []int32:
		for _, tmp := range value {
			w.WriteInt32(tmp)
		}
	case []int:
		for _, tmp := range value {
			w.WriteInt32(tmp)
		}
	case []uint32:
		for _, tmp := range value {
			w.WriteInt32(tmp)
		}
	default:
		panic(fmt.Sprintf("rw: WriteInt32s of %T", v))
	}
}

func (w *ReaderWriter) WriteFloat32(v interface{}) {
	switch value := v.(type) {
	case float32:
		w.WriteUInt32(math.Float32bits(value))
	case float64:
		w.WriteUInt32(math.Float32bits(float32(value)))
	default:
		panic(fmt.Sprintf("rw: WriteFloat32 of %T", v))
	}
}

func (w *ReaderWriter) WriteFloat32s(v interface{}) {
	switch value := v.(type) {
	case []float32:
		for _, tmp := range value {
			w.WriteFloat32(tmp)
		}
	case []float64:
		for _, tmp := range value {
			w.WriteFloat32(tmp)
		}
	default:
		panic(fmt.Sprintf("rw: WriteFloat32s of %T", v))
	}
}

func (w *ReaderWriter) WriteBytes(b []byte) {
	w.rw.Write(b)
}

func (w *ReaderWriter) Skip(size int) {
	w.rw.Next(size)
}

func (w *ReaderWriter) GetWriteBytes() (res []byte) {
	res = w.rw.Bytes()
	return res
}

func (w *ReaderWriter) PadZero(n int) {
	for i := 0; i < n; i++ {
		w.rw.WriteByte(0)
	}
}

func (w *ReaderWriter) ChangeOrder(order binary.ByteOrder) {
	w.order = order
}

// Size returns the number of unread bytes.
func (w *ReaderWriter) Size() int {
	return w.rw.Len()
}
