// Package message writes and reads protobuf wire format without generated
// code. Messages are built field by field and read back with Walk.
package message

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrWireType = errors.New("message: unexpected wire type")

type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// PackedFloat32 appends values as one packed fixed32 field. Empty slices are omitted.
func (e *Encoder) PackedFloat32(num protowire.Number, values []float32) {
	if len(values) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendVarint(e.buf, uint64(len(values)*protowire.SizeFixed32()))
	for _, v := range values {
		e.buf = protowire.AppendFixed32(e.buf, math.Float32bits(v))
	}
}

// PackedInt32 appends values as one packed varint field. Empty slices are omitted.
func (e *Encoder) PackedInt32(num protowire.Number, values []int32) {
	if len(values) == 0 {
		return
	}
	var payload []byte
	for _, v := range values {
		payload = protowire.AppendVarint(payload, uint64(int64(v)))
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, payload)
}

// Uint32 appends a varint field. Zero is omitted, as proto3 does.
func (e *Encoder) Uint32(num protowire.Number, v uint32) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(v))
}

// Message appends a length delimited sub message produced by fn. Empty
// sub messages are still written so repeated entries keep their position.
func (e *Encoder) Message(num protowire.Number, fn func(sub *Encoder)) {
	sub := NewEncoder()
	fn(sub)
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, sub.buf)
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Field is one decoded field. Raw holds the payload of length delimited
// fields; Varint and Fixed32 hold scalar values.
type Field struct {
	Num     protowire.Number
	Type    protowire.Type
	Raw     []byte
	Varint  uint64
	Fixed32 uint32
}

// Walk calls fn for every top level field of data in order.
func Walk(data []byte, fn func(f Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("message: tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			f.Varint, n = protowire.ConsumeVarint(data)
		case protowire.Fixed32Type:
			f.Fixed32, n = protowire.ConsumeFixed32(data)
		case protowire.BytesType:
			f.Raw, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return fmt.Errorf("message: field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// Float32s returns the values of a packed or unpacked float field.
func (f Field) Float32s() ([]float32, error) {
	switch f.Type {
	case protowire.Fixed32Type:
		return []float32{math.Float32frombits(f.Fixed32)}, nil
	case protowire.BytesType:
		if len(f.Raw)%protowire.SizeFixed32() != 0 {
			return nil, fmt.Errorf("message: field %d: packed fixed32 length %d", f.Num, len(f.Raw))
		}
		res := make([]float32, 0, len(f.Raw)/protowire.SizeFixed32())
		b := f.Raw
		for len(b) > 0 {
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			res = append(res, math.Float32frombits(v))
			b = b[n:]
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: field %d type %d", ErrWireType, f.Num, f.Type)
	}
}

// Int32s returns the values of a packed or unpacked int32 field.
func (f Field) Int32s() ([]int32, error) {
	switch f.Type {
	case protowire.VarintType:
		return []int32{int32(f.Varint)}, nil
	case protowire.BytesType:
		var res []int32
		b := f.Raw
		for len(b) > 0 {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			res = append(res, int32(v))
			b = b[n:]
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: field %d type %d", ErrWireType, f.Num, f.Type)
	}
}
